// Package env reads Stargazer settings from the process environment,
// optionally seeded from a .env file.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
	"github.com/custodia-labs/stargazer/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.ConfigSource = (*Loader)(nil)

// Environment variable names.
const (
	VarUsername    = "GITHUB_USERNAME"
	VarToken       = "GITHUB_TOKEN"
	VarTemplate    = "TEMPLATE_PATH"
	VarOutput      = "OUTPUT_PATH"
	VarSnapshot    = "SNAPSHOT_PATH"
	VarSort        = "SORT_BY"
	VarStyle       = "STYLE"
	VarTOC         = "TOC"
	VarUnlisted    = "UNLISTED"
	VarRequestRate = "REQUEST_RATE"
)

// DotEnvFiles are tried in order when no file is named.
var DotEnvFiles = []string{".env", ".env.local"}

// LoadDotEnv loads KEY=VALUE pairs into the process environment without
// overriding variables that are already set. With an empty path the first
// existing file of DotEnvFiles is used and having none is not an error.
func LoadDotEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		logger.Debug("loaded environment from %s", path)
		return nil
	}

	for _, candidate := range DotEnvFiles {
		err := godotenv.Load(candidate)
		if err == nil {
			logger.Debug("loaded environment from %s", candidate)
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", candidate, err)
		}
	}
	return nil
}

// Loader overlays environment variables onto a Config.
type Loader struct {
	lookup func(string) (string, bool)
}

// NewLoader creates a loader reading from lookup. A nil lookup reads the
// process environment.
func NewLoader(lookup func(string) (string, bool)) *Loader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Loader{lookup: lookup}
}

// Apply overrides cfg with every non-empty variable that is set.
func (l *Loader) Apply(cfg *domain.Config) error {
	fields := []struct {
		name string
		dst  *string
	}{
		{VarUsername, &cfg.Username},
		{VarToken, &cfg.Token},
		{VarTemplate, &cfg.TemplatePath},
		{VarOutput, &cfg.OutputPath},
		{VarSnapshot, &cfg.SnapshotPath},
	}
	for _, f := range fields {
		if val, ok := l.get(f.name); ok {
			*f.dst = val
		}
	}

	if val, ok := l.get(VarSort); ok {
		cfg.SortBy = domain.ParseSortMode(val)
	}
	if val, ok := l.get(VarStyle); ok {
		cfg.Style = domain.ParseStyle(val)
	}

	// Checked in order so the first invalid variable is always the one reported.
	bools := []struct {
		name string
		dst  *bool
	}{
		{VarTOC, &cfg.TableOfContents},
		{VarUnlisted, &cfg.Unlisted},
	}
	for _, f := range bools {
		val, ok := l.get(f.name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", domain.ErrInvalidConfig, f.name, val)
		}
		*f.dst = b
	}

	if val, ok := l.get(VarRequestRate); ok {
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", domain.ErrInvalidConfig, VarRequestRate, val)
		}
		cfg.RequestRate = rate
	}

	return nil
}

// get returns a trimmed variable, treating empty values as unset.
func (l *Loader) get(name string) (string, bool) {
	val, ok := l.lookup(name)
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, val != ""
}
