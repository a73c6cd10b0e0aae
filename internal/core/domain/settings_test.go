package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSortMode tests mapping of user values to sort modes
func TestParseSortMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SortMode
	}{
		{name: "stars", input: "stars", expected: SortByStars},
		{name: "upper case stars", input: "STARS", expected: SortByStars},
		{name: "padded stars", input: "  stars ", expected: SortByStars},
		{name: "insertion", input: "insertion", expected: SortByInsertion},
		{name: "anything else", input: "updated", expected: SortByInsertion},
		{name: "empty", input: "", expected: SortByInsertion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSortMode(tt.input))
		})
	}
}

func TestSortMode_IsValid(t *testing.T) {
	assert.True(t, SortByStars.IsValid())
	assert.True(t, SortByInsertion.IsValid())
	assert.False(t, SortMode("").IsValid())
	assert.False(t, SortMode("name").IsValid())
}

func TestSortMode_Description(t *testing.T) {
	assert.Contains(t, SortByStars.Description(), "Stars")
	assert.Contains(t, SortByInsertion.Description(), "Insertion")
	assert.Equal(t, "Unknown", SortMode("x").Description())
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, StyleList, ParseStyle("list"))
	assert.Equal(t, StyleList, ParseStyle("LIST"))
	assert.Equal(t, StyleTable, ParseStyle("table"))
	assert.Equal(t, StyleTable, ParseStyle("cards"))
	assert.Equal(t, StyleTable, ParseStyle(""))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "template/template.md", cfg.TemplatePath)
	assert.Equal(t, "README.md", cfg.OutputPath)
	assert.Equal(t, "data.json", cfg.SnapshotPath)
	assert.Equal(t, "[[GENERATE HERE]]", cfg.Placeholder)
	assert.Equal(t, SortByStars, cfg.SortBy)
	assert.Equal(t, StyleTable, cfg.Style)
	assert.True(t, cfg.TableOfContents)
	assert.True(t, cfg.Unlisted)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Username = "octocat"
		cfg.Token = "ghp_test"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing username", func(t *testing.T) {
		cfg := valid()
		cfg.Username = ""

		err := cfg.Validate()

		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := valid()
		cfg.Token = ""

		err := cfg.Validate()

		assert.True(t, errors.Is(err, ErrAuthRequired))
	})

	t.Run("missing output path", func(t *testing.T) {
		cfg := valid()
		cfg.OutputPath = ""

		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("unknown style", func(t *testing.T) {
		cfg := valid()
		cfg.Style = Style("grid")

		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("negative rate", func(t *testing.T) {
		cfg := valid()
		cfg.RequestRate = -1

		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}
