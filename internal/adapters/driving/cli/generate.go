package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the starred repositories document",
	Long: `Fetches all starred repositories, saves the JSON snapshot, reads the
account's star lists and replaces the placeholder in the template with one
section per list. Every run starts from scratch.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if newGenerator == nil {
		return errors.New("generate service not configured")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	cmd.Printf("Generating star index for %s...\n", cfg.Username)

	result, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, result *domain.GenerateResult) {
	cmd.Printf("Wrote %s: %d repositories in %d lists (%d listed, %d unlisted)\n",
		result.OutputPath, result.Repositories, result.Lists, result.Listed, result.Unlisted)
	if result.SnapshotPath != "" {
		cmd.Printf("Snapshot saved to %s\n", result.SnapshotPath)
	}
}
