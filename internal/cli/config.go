package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/regkit-labs/regkit/internal/config"
	"github.com/spf13/cobra"
)

// settingKeys are the keys the build commands read, in display order.
var settingKeys = []string{
	config.KeyRegistryRoot,
	config.KeyOutput,
	config.KeyPackageJSON,
	config.KeyRegistryName,
	config.KeyRegistryHomepage,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Inspect and edit the settings that back the build commands.

Settings resolve in order: command-line flag, REGKIT_* environment
variable, ` + config.ProjectFile + ` in the working directory, then the
user file under ~/.regkit/. config set writes the user file; project
files are edited by hand.

Keys read by the build commands:
  registry_root       source tree scanned for entities
  output              manifest path read and written
  package_json        package file supplying pinned versions
  registry_name       name stamped on fresh manifests
  registry_homepage   homepage stamped on fresh manifests`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one setting to the user config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (written to %s)\n", key, value, config.FilePath())
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the build settings and their effective values",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadProject()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE")
		for _, key := range settingKeys {
			fmt.Fprintf(w, "%s\t%s\n", key, displayValue(config.Get(key)))
		}
		return w.Flush()
	},
}

func displayValue(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
