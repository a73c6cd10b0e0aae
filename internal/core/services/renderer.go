package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

// UnlistedSectionName is the heading of the section holding repositories
// that belong to no list.
const UnlistedSectionName = "Unlisted"

const (
	starGlyph = "⭐"

	tableHeader    = "| Repository | Description | Stars |"
	tableDivider   = "|------------|-------------|-------|"
	tableEmptyRow  = "| *No repositories* | | |"
	listEmptyEntry = "- No repositories"
)

// RenderOptions controls layout and ordering.
type RenderOptions struct {
	SortBy          domain.SortMode
	Style           domain.Style
	TableOfContents bool
	Unlisted        bool
}

// RenderInput is everything the renderer reads.
type RenderInput struct {
	Catalog     *domain.Catalog
	Lists       []domain.StarList
	Memberships domain.Memberships
	Options     RenderOptions
}

// RenderOutput is the rendered body and the updated listed set.
type RenderOutput struct {
	// Body is the text substituted into the template.
	Body string

	// Listed holds every repository emitted under a list, including those
	// already present in the set passed to Render.
	Listed domain.ListedSet

	// Unlisted is the number of catalog entries not in Listed.
	Unlisted int
}

// Renderer turns fetched data into the Markdown body.
type Renderer struct {
	webBaseURL string
}

// NewRenderer creates a renderer. webBaseURL is used to link repositories
// whose metadata carries no URL.
func NewRenderer(webBaseURL string) *Renderer {
	if webBaseURL == "" {
		webBaseURL = domain.DefaultWebBaseURL
	}
	return &Renderer{webBaseURL: strings.TrimSuffix(webBaseURL, "/")}
}

type section struct {
	name  string
	slug  string
	repos []domain.Repository
}

// Render builds the document body. The listed set passed in is not modified.
func (r *Renderer) Render(in RenderInput, listed domain.ListedSet) RenderOutput {
	listed = listed.Clone()
	anchors := newAnchorSet()

	sections := make([]section, 0, len(in.Lists)+1)
	for _, list := range in.Lists {
		repos := resolve(in.Catalog, in.Memberships[list.ID])
		repos = order(repos, in.Options.SortBy)
		for _, repo := range repos {
			listed[repo.FullName] = struct{}{}
		}
		sections = append(sections, section{
			name:  list.Name,
			slug:  anchors.next(list.Name),
			repos: repos,
		})
	}

	var unlisted []domain.Repository
	for _, repo := range in.Catalog.Repositories() {
		if !listed.Has(repo.FullName) {
			unlisted = append(unlisted, repo)
		}
	}
	if in.Options.Unlisted {
		sections = append(sections, section{
			name:  UnlistedSectionName,
			slug:  anchors.next(UnlistedSectionName),
			repos: order(unlisted, in.Options.SortBy),
		})
	}

	var toc string
	if in.Options.TableOfContents {
		toc = renderTOC(sections)
	}

	parts := make([]string, 0, len(sections)*4)
	for _, sec := range sections {
		parts = append(parts, r.renderSection(sec, in.Options.Style)...)
	}

	body := toc + "\n" + strings.Join(parts, "\n")
	return RenderOutput{
		Body:     strings.TrimSpace(body),
		Listed:   listed,
		Unlisted: len(unlisted),
	}
}

// resolve looks refs up in the catalog, dropping those it does not contain.
func resolve(catalog *domain.Catalog, refs []domain.RepoRef) []domain.Repository {
	repos := make([]domain.Repository, 0, len(refs))
	for _, ref := range refs {
		if repo, ok := catalog.Get(ref.FullName()); ok {
			repos = append(repos, repo)
		}
	}
	return repos
}

// order returns a sorted copy. Star order is stable; any other mode is the
// exact reverse of the input.
func order(repos []domain.Repository, mode domain.SortMode) []domain.Repository {
	out := slices.Clone(repos)
	if mode == domain.SortByStars {
		slices.SortStableFunc(out, func(a, b domain.Repository) int {
			return cmp.Compare(b.Stars, a.Stars)
		})
		return out
	}
	slices.Reverse(out)
	return out
}

func renderTOC(sections []section) string {
	if len(sections) == 0 {
		return ""
	}
	lines := []string{"## Contents", ""}
	for _, sec := range sections {
		lines = append(lines, fmt.Sprintf("- [%s](#%s)", sec.name, sec.slug))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderSection(sec section, style domain.Style) []string {
	parts := []string{fmt.Sprintf("<a name=\"%s\"></a>\n\n## %s\n", sec.slug, sec.name)}

	if style == domain.StyleList {
		if len(sec.repos) == 0 {
			parts = append(parts, listEmptyEntry)
		}
		for _, repo := range sec.repos {
			parts = append(parts, r.listEntry(repo))
		}
		return append(parts, "")
	}

	parts = append(parts, tableHeader, tableDivider)
	if len(sec.repos) == 0 {
		parts = append(parts, tableEmptyRow)
	}
	for _, repo := range sec.repos {
		parts = append(parts, r.tableRow(repo))
	}
	return append(parts, "")
}

func (r *Renderer) tableRow(repo domain.Repository) string {
	return fmt.Sprintf("| [%s](%s) | %s | %s%d |",
		repo.FullName, r.repoURL(repo), escapeCell(repo.Description), starGlyph, repo.Stars)
}

func (r *Renderer) listEntry(repo domain.Repository) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- [%s](%s)", repo.FullName, r.repoURL(repo))
	if desc := singleLine(repo.Description); desc != "" {
		b.WriteString(" - ")
		b.WriteString(desc)
	}
	fmt.Fprintf(&b, " %s%d", starGlyph, repo.Stars)
	return b.String()
}

func (r *Renderer) repoURL(repo domain.Repository) string {
	if repo.URL != "" {
		return repo.URL
	}
	return r.webBaseURL + "/" + repo.FullName
}

// escapeCell keeps a description inside one table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(singleLine(s), "|", `\|`)
}

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func singleLine(s string) string {
	return newlines.Replace(s)
}
