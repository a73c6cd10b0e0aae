package domain

// Repository is the metadata kept for a single starred repository.
type Repository struct {
	// FullName is "owner/name" exactly as the API reports it.
	FullName string

	// URL is the canonical web URL of the repository.
	URL string

	// Description is empty when the repository has none.
	Description string

	// Stars is the stargazer count at fetch time.
	Stars int
}

// RepoRef identifies a repository scraped from a list page.
type RepoRef struct {
	Owner string
	Name  string
}

// FullName returns "owner/name".
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Name
}

// Catalog maps full repository names to their metadata, remembering the
// order in which names were first added.
type Catalog struct {
	order []string
	repos map[string]Repository
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{repos: make(map[string]Repository)}
}

// Add inserts or replaces a repository. A replaced entry keeps its original position.
func (c *Catalog) Add(repo Repository) {
	if c.repos == nil {
		c.repos = make(map[string]Repository)
	}
	if _, ok := c.repos[repo.FullName]; !ok {
		c.order = append(c.order, repo.FullName)
	}
	c.repos[repo.FullName] = repo
}

// Get returns the repository with the given full name.
func (c *Catalog) Get(fullName string) (Repository, bool) {
	if c == nil {
		return Repository{}, false
	}
	repo, ok := c.repos[fullName]
	return repo, ok
}

// Has reports whether the catalog contains fullName.
func (c *Catalog) Has(fullName string) bool {
	_, ok := c.Get(fullName)
	return ok
}

// Len returns the number of repositories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Names returns full names in insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Repositories returns all repositories in insertion order.
func (c *Catalog) Repositories() []Repository {
	if c == nil {
		return nil
	}
	repos := make([]Repository, 0, len(c.order))
	for _, name := range c.order {
		repos = append(repos, c.repos[name])
	}
	return repos
}

// ListedSet records which repositories have been emitted under at least one list.
type ListedSet map[string]struct{}

// Has reports whether fullName has been listed.
func (s ListedSet) Has(fullName string) bool {
	_, ok := s[fullName]
	return ok
}

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s ListedSet) Clone() ListedSet {
	out := make(ListedSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
