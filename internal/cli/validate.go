package cli

import (
	"fmt"

	"github.com/regkit-labs/regkit/internal/config"
	"github.com/regkit-labs/regkit/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a registry manifest against the schema",
	Long: `Validate a registry.json document against the embedded registry schema.
Without an argument the configured manifest path is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	config.LoadProject()

	path := config.Get(config.KeyOutput)
	if path == "" {
		path = "registry.json"
	}
	if len(args) == 1 {
		path = args[0]
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s fails validation:\n", path)
	for _, issue := range result.Issues {
		fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s\n", formatIssue(issue))
	}
	return fmt.Errorf("%d validation issues", len(result.Issues))
}

func formatIssue(issue manifest.ValidationIssue) string {
	loc := issue.Path
	if loc == "" {
		loc = "/"
	}
	if issue.Keyword == "" {
		return fmt.Sprintf("%s: %s", loc, issue.Message)
	}
	return fmt.Sprintf("%s: %s [%s]", loc, issue.Message, issue.Keyword)
}
