package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// SortMode defines how repositories are ordered within a section.
type SortMode string

// Available sort modes.
const (
	// SortByStars orders by star count, highest first. Ties keep scrape order.
	SortByStars SortMode = "stars"

	// SortByInsertion reverses scrape order.
	SortByInsertion SortMode = "insertion"
)

// ParseSortMode maps a user value to a SortMode.
// Anything other than "stars" selects insertion order.
func ParseSortMode(s string) SortMode {
	if strings.EqualFold(strings.TrimSpace(s), string(SortByStars)) {
		return SortByStars
	}
	return SortByInsertion
}

// IsValid returns true if the sort mode is recognised.
func (m SortMode) IsValid() bool {
	return m == SortByStars || m == SortByInsertion
}

// String returns the string representation.
func (m SortMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m SortMode) Description() string {
	switch m {
	case SortByStars:
		return "Stars (most starred first)"
	case SortByInsertion:
		return "Insertion (reverse list order)"
	default:
		return unknownDescription
	}
}

// Style selects the rendering layout of each section.
type Style string

// Available styles.
const (
	StyleTable Style = "table"
	StyleList  Style = "list"
)

// ParseStyle maps a user value to a Style. Anything other than "list" is a table.
func ParseStyle(s string) Style {
	if strings.EqualFold(strings.TrimSpace(s), string(StyleList)) {
		return StyleList
	}
	return StyleTable
}

// IsValid returns true if the style is recognised.
func (s Style) IsValid() bool {
	return s == StyleTable || s == StyleList
}

// String returns the string representation.
func (s Style) String() string {
	return string(s)
}

// Configuration defaults.
const (
	DefaultTemplatePath = "template/template.md"
	DefaultOutputPath   = "README.md"
	DefaultSnapshotPath = "data.json"
	DefaultPlaceholder  = "[[GENERATE HERE]]"
	DefaultAPIBaseURL   = "https://api.github.com/"
	DefaultWebBaseURL   = "https://github.com"
	DefaultRequestRate  = 1.2
	DefaultTimeout      = 30 * time.Second
)

// Config holds everything a generate run needs.
type Config struct {
	// Username is the account whose stars and lists are read.
	Username string

	// Token is the API access token. It is never written anywhere.
	Token string

	TemplatePath string
	OutputPath   string
	SnapshotPath string

	SortBy SortMode
	Style  Style

	// TableOfContents prepends a "Contents" section linking every list.
	TableOfContents bool

	// Unlisted appends a section with starred repositories that are in no list.
	Unlisted bool

	// Placeholder is the token in the template replaced by the generated body.
	Placeholder string

	APIBaseURL string
	WebBaseURL string

	// RequestRate is the maximum requests per second. Zero means unlimited.
	RequestRate float64

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		TemplatePath:    DefaultTemplatePath,
		OutputPath:      DefaultOutputPath,
		SnapshotPath:    DefaultSnapshotPath,
		SortBy:          SortByStars,
		Style:           StyleTable,
		TableOfContents: true,
		Unlisted:        true,
		Placeholder:     DefaultPlaceholder,
		APIBaseURL:      DefaultAPIBaseURL,
		WebBaseURL:      DefaultWebBaseURL,
		RequestRate:     DefaultRequestRate,
		Timeout:         DefaultTimeout,
	}
}

// Validate checks the configuration is usable for a generate run.
func (c Config) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidConfig)
	}
	if c.Token == "" {
		return fmt.Errorf("%w: token is required", ErrAuthRequired)
	}
	return c.ValidateOutput()
}

// ValidateOutput checks only the fields used when writing artefacts.
func (c Config) ValidateOutput() error {
	if c.TemplatePath == "" {
		return fmt.Errorf("%w: template path is required", ErrInvalidConfig)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}
	if c.Placeholder == "" {
		return fmt.Errorf("%w: placeholder is required", ErrInvalidConfig)
	}
	if !c.SortBy.IsValid() {
		return fmt.Errorf("%w: unknown sort mode %q", ErrInvalidConfig, c.SortBy)
	}
	if !c.Style.IsValid() {
		return fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, c.Style)
	}
	if c.RequestRate < 0 {
		return fmt.Errorf("%w: request rate must not be negative", ErrInvalidConfig)
	}
	return nil
}
