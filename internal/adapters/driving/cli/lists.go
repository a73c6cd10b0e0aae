package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the account's star lists",
	Long: `Reads the account's star lists from its public profile and prints each
list with the number of repositories in it. No token is required and nothing
is written.`,
	Args: cobra.NoArgs,
	RunE: runLists,
}

func init() {
	rootCmd.AddCommand(listsCmd)
}

func runLists(cmd *cobra.Command, _ []string) error {
	if newGenerator == nil {
		return errors.New("generate service not configured")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidConfig)
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	summaries, err := gen.Lists(cmd.Context())
	if err != nil {
		return fmt.Errorf("list discovery failed: %w", err)
	}

	if len(summaries) == 0 {
		cmd.Printf("No star lists found for %s.\n", cfg.Username)
		return nil
	}

	cmd.Printf("Star lists for %s:\n\n", cfg.Username)
	for _, s := range summaries {
		cmd.Printf("  %-30s %-30s %d repositories\n", s.List.Name, s.List.ID, s.Members)
	}
	return nil
}
