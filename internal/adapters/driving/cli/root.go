package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driving"
	"github.com/custodia-labs/stargazer/internal/logger"
)

// Build information, set by SetBuildInfo.
var (
	version = "dev"
	commit  = ""
)

// GeneratorFactory builds a Generator for a resolved configuration.
type GeneratorFactory func(cfg domain.Config) (driving.Generator, error)

// newGenerator is installed by the entry point and replaced in tests.
var newGenerator GeneratorFactory

// Persistent flags.
var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "stargazer",
	Short: "Generate a Markdown index of your GitHub stars",
	Long: `Stargazer fetches every repository a GitHub account has starred, groups
them by the account's star lists and writes a Markdown document from a
template.

Running stargazer without a subcommand is the same as "stargazer generate".

Settings are read from stargazer.toml, a .env file, the environment
(GITHUB_USERNAME, GITHUB_TOKEN, TEMPLATE_PATH, OUTPUT_PATH, SNAPSHOT_PATH,
SORT_BY, STYLE, TOC, UNLISTED, REQUEST_RATE) and flags, later sources
taking precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default stargazer.toml if present)")
	addGenerateFlags(rootCmd)
}

// SetGeneratorFactory installs the factory used by generate and lists.
func SetGeneratorFactory(f GeneratorFactory) {
	newGenerator = f
}

// SetBuildInfo records the version reported by the version command.
func SetBuildInfo(v, c string) {
	if v != "" {
		version = v
	}
	commit = c
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command, for ExecuteContext and tests.
func Root() *cobra.Command {
	return rootCmd
}
