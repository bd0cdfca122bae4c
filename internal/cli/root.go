package cli

import (
	"github.com/regkit-labs/regkit/internal/branding"
	"github.com/regkit-labs/regkit/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagVerbose bool
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scans a registry tree of components, hooks, and utilities,
infers each entity's dependencies from its import statements, and maintains
a shadcn-compatible registry.json manifest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case flagDebug:
			logger.SetLevel(logger.LevelDebug)
		case flagVerbose:
			logger.SetLevel(logger.LevelInfo)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print progress diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print classification traces to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
