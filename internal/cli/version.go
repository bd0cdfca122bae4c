package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/regkit-labs/regkit/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

// versionInfo is the --json rendering of the build metadata.
type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the bare version number")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if versionShort {
			_, err := fmt.Fprintln(out, buildVersion)
			return err
		}

		if versionJSON {
			data, err := json.MarshalIndent(versionInfo{
				Version: buildVersion,
				Commit:  buildCommit,
				Date:    buildDate,
				Go:      runtime.Version(),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		return printVersion(out)
	},
}

// printVersion writes the long form: tool and version on the first line,
// build provenance indented below.
func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n  commit: %s\n  built:  %s\n  go:     %s\n",
		branding.CLIName(), buildVersion, buildCommit, buildDate, runtime.Version())
	return err
}
