package cli

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/regkit-labs/regkit/internal/branding"
	"github.com/regkit-labs/regkit/internal/config"
	"github.com/regkit-labs/regkit/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// createKinds maps a scaffold kind to its category directory.
var createKinds = map[string]string{
	"component": "components",
	"hook":      "hooks",
	"lib":       "lib",
	"style":     "styles",
}

var createRegistry string

var createCmd = &cobra.Command{
	Use:   "create <kind> <name>",
	Short: "Scaffold a new registry entity",
	Long: `Create a starter entity in the registry tree from a built-in template.

Kinds: component, hook, lib, style.

Examples:
  regkit create component date-picker
  regkit create hook use-focus`,
	Args: cobra.ExactArgs(2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createRegistry, "registry", "", "Registry source root (default: config registry_root or .)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	kind, name := args[0], args[1]

	categoryDir, ok := createKinds[kind]
	if !ok {
		return fmt.Errorf("unknown entity kind %q (component, hook, lib, style)", kind)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	if kind == "hook" && !strings.HasPrefix(name, "use-") {
		return fmt.Errorf("hook names must start with use-, got %q", name)
	}

	config.LoadProject()
	root := setting(cmd, "registry", config.KeyRegistryRoot, ".")

	data := scaffold.NewData(name)
	outDir := filepath.Join(root, categoryDir, name)

	result, err := scaffold.Generate(kind, data, outDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s at %s/\n", kind, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nRun '%s build' to add it to the manifest.\n", branding.CLIName())
	return nil
}
