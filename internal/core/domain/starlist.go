package domain

// StarList is a user-curated, named grouping of starred repositories.
type StarList struct {
	// ID is the list's URL fragment on the hosting site. It is opaque.
	ID string

	// Name is the display name, trimmed. It may contain HTML entities and emoji.
	Name string
}

// Memberships maps a list ID to the repositories scraped from that list,
// in scrape order. Duplicates are kept.
type Memberships map[string][]RepoRef

// ListSummary describes a discovered list and how many members it has.
type ListSummary struct {
	List StarList

	// Members is the number of scraped references, including ones that are
	// not in the starred catalog.
	Members int
}

// GenerateResult summarises a completed generate run.
type GenerateResult struct {
	Repositories int
	Lists        int
	Listed       int
	Unlisted     int
	OutputPath   string
	SnapshotPath string
}
