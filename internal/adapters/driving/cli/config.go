package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stargazer/internal/adapters/driven/config/env"
	configfile "github.com/custodia-labs/stargazer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
	"github.com/custodia-labs/stargazer/internal/logger"
)

// Generate flags, shared by the root and generate commands.
var (
	flagTemplate string
	flagOutput   string
	flagSnapshot string
	flagSort     string
	flagStyle    string
	flagTOC      bool
	flagUnlisted bool
)

func addGenerateFlags(cmd *cobra.Command) {
	defaults := domain.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVarP(&flagTemplate, "template", "t", defaults.TemplatePath, "template file containing the placeholder")
	flags.StringVarP(&flagOutput, "output", "o", defaults.OutputPath, "document to write")
	flags.StringVar(&flagSnapshot, "snapshot", defaults.SnapshotPath, "JSON snapshot of fetched metadata")
	flags.StringVar(&flagSort, "sort", defaults.SortBy.String(), "sort order: stars or insertion")
	flags.StringVar(&flagStyle, "style", defaults.Style.String(), "section style: table or list")
	flags.BoolVar(&flagTOC, "toc", defaults.TableOfContents, "include a table of contents")
	flags.BoolVar(&flagUnlisted, "unlisted", defaults.Unlisted, "include starred repositories that are in no list")
}

// resolveConfig layers defaults, the config file, .env, the environment and
// explicitly set flags, later sources winning.
func resolveConfig(cmd *cobra.Command) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	store, err := configfile.NewConfigStore(configPath, configPath != "")
	if err != nil {
		return cfg, fmt.Errorf("load config file: %w", err)
	}
	if err := env.LoadDotEnv(""); err != nil {
		return cfg, err
	}

	sources := []struct {
		name   string
		source driven.ConfigSource
	}{
		{"config file " + store.Path(), store},
		{"environment", env.NewLoader(nil)},
	}
	for _, s := range sources {
		if err := s.source.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", s.name, err)
		}
	}

	applyFlags(cmd, &cfg)

	logger.Debug("config: user=%q template=%s output=%s snapshot=%s sort=%s style=%s toc=%t unlisted=%t",
		cfg.Username, cfg.TemplatePath, cfg.OutputPath, cfg.SnapshotPath,
		cfg.SortBy, cfg.Style, cfg.TableOfContents, cfg.Unlisted)
	return cfg, nil
}

// applyFlags copies only the flags the user set on the command line.
func applyFlags(cmd *cobra.Command, cfg *domain.Config) {
	flags := cmd.Flags()
	if flags.Changed("template") {
		cfg.TemplatePath = flagTemplate
	}
	if flags.Changed("output") {
		cfg.OutputPath = flagOutput
	}
	if flags.Changed("snapshot") {
		cfg.SnapshotPath = flagSnapshot
	}
	if flags.Changed("sort") {
		cfg.SortBy = domain.ParseSortMode(flagSort)
	}
	if flags.Changed("style") {
		cfg.Style = domain.ParseStyle(flagStyle)
	}
	if flags.Changed("toc") {
		cfg.TableOfContents = flagTOC
	}
	if flags.Changed("unlisted") {
		cfg.Unlisted = flagUnlisted
	}
}
