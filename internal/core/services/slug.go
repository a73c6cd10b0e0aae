package services

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// symbolPattern matches emoji, dingbats, pictographs and the joiners
	// and variation selectors that glue them together.
	symbolPattern = regexp.MustCompile(`[` +
		`\x{1F600}-\x{1F64F}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F1E0}-\x{1F1FF}` +
		`\x{2500}-\x{2BEF}` +
		`\x{2702}-\x{27B0}` +
		`\x{24C2}-\x{1F251}` +
		`\x{1F926}-\x{1F937}` +
		`\x{10000}-\x{10FFFF}` +
		`\x{2640}-\x{2642}` +
		`\x{2600}-\x{2B55}` +
		`\x{2300}-\x{23FF}` +
		`\x{200D}\x{23CF}\x{23E9}\x{231A}\x{FE0F}\x{3030}` +
		`]+`)

	// nonWordPattern matches anything that is not a letter, digit, underscore,
	// whitespace or hyphen.
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\x1c-\x1f\p{Z}\x{85}-]`)

	// separatorRun matches hyphens and every character Unicode treats as
	// whitespace, including the ASCII separators \x1c-\x1f.
	separatorRun = regexp.MustCompile(`[-\s\v\x1c-\x1f\p{Z}\x{85}]+`)

	lower = cases.Lower(language.Und)
)

// Slugify converts a list display name into an in-document anchor.
func Slugify(name string) string {
	s := html.UnescapeString(name)
	s = symbolPattern.ReplaceAllString(s, "")
	s = nonWordPattern.ReplaceAllString(s, "")
	s = lower.String(s)
	s = separatorRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// anchorSet hands out unique anchors within one document.
type anchorSet struct {
	counts map[string]int
	used   map[string]struct{}
}

func newAnchorSet() *anchorSet {
	return &anchorSet{
		counts: make(map[string]int),
		used:   make(map[string]struct{}),
	}
}

// next returns the slug of name, suffixed with -1, -2, ... when an earlier
// name already produced it.
func (a *anchorSet) next(name string) string {
	base := Slugify(name)
	n := a.counts[base]
	candidate := suffixed(base, n)
	for {
		if _, taken := a.used[candidate]; !taken {
			break
		}
		n++
		candidate = suffixed(base, n)
	}
	a.counts[base] = n + 1
	a.used[candidate] = struct{}{}
	return candidate
}

func suffixed(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// UniqueSlugs slugifies names in order, disambiguating collisions.
func UniqueSlugs(names []string) []string {
	anchors := newAnchorSet()
	slugs := make([]string, len(names))
	for i, name := range names {
		slugs[i] = anchors.next(name)
	}
	return slugs
}
