package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/regkit-labs/regkit/internal/branding"
	"github.com/regkit-labs/regkit/internal/config"
	"github.com/regkit-labs/regkit/internal/registry"
	"github.com/spf13/cobra"
)

var initName string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a registry project",
	Long: `Create a ` + config.ProjectFile + ` project file and the category directories
(components, hooks, lib, types, styles) in the current directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Registry name (default: current directory name)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.ProjectFile)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", configPath)
	}

	name := initName
	if name == "" {
		name = registry.CanonicalName(filepath.Base(cwd))
	}

	content := fmt.Sprintf(`# %s project settings. Values here override ~/%s/config.yaml.
registry_name: %s
output: registry.json
package_json: package.json
`, branding.CLIName(), branding.HomeDir(), name)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	cfg := registry.DefaultConfig()
	for _, cat := range cfg.Categories {
		if err := os.MkdirAll(filepath.Join(cwd, cat.Dir), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", cat.Dir, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized registry %q in %s\n", name, cwd)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s and category directories.\n", config.ProjectFile)
	fmt.Fprintf(cmd.OutOrStdout(), "\nUse '%s create component <name>' to scaffold your first entity.\n", branding.CLIName())
	return nil
}
