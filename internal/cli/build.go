package cli

import (
	"encoding/json"
	"fmt"

	"github.com/regkit-labs/regkit/internal/config"
	"github.com/regkit-labs/regkit/internal/manifest"
	"github.com/regkit-labs/regkit/internal/registry"
	"github.com/spf13/cobra"
)

var (
	buildRegistry     string
	buildOutput       string
	buildPackageJSON  string
	buildName         string
	buildHomepage     string
	buildSkipExisting bool
	buildNoValidate   bool
	buildJSON         bool
)

var buildCmd = &cobra.Command{
	Use:   "build [entity...]",
	Short: "Scan the registry tree and update the manifest",
	Long: `Scan the registry tree, infer each entity's dependencies from its import
statements, and merge the results into the persisted manifest.

Entities may be targeted as "category/name" or by bare name; with no
arguments every entity in the tree is processed.

Examples:
  regkit build
  regkit build components/button use-debounce
  regkit build --skip-existing`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildRegistry, "registry", "", "Registry source root (default: config registry_root or .)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "Manifest path (default: config output or registry.json)")
	buildCmd.Flags().StringVar(&buildPackageJSON, "package-json", "", "package.json path (default: config package_json or package.json)")
	buildCmd.Flags().StringVar(&buildName, "name", "", "Registry name recorded in the manifest")
	buildCmd.Flags().StringVar(&buildHomepage, "homepage", "", "Registry homepage recorded in the manifest")
	buildCmd.Flags().BoolVar(&buildSkipExisting, "skip-existing", false, "Leave entities already in the manifest untouched")
	buildCmd.Flags().BoolVar(&buildNoValidate, "no-validate", false, "Skip schema validation of the merged manifest")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "Report results as JSON")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	config.LoadProject()

	opts := registry.BuildOptions{
		Root:         setting(cmd, "registry", config.KeyRegistryRoot, "."),
		ManifestPath: setting(cmd, "output", config.KeyOutput, "registry.json"),
		PackageJSON:  setting(cmd, "package-json", config.KeyPackageJSON, "package.json"),
		Targets:      args,
		SkipExisting: buildSkipExisting,
		Name:         setting(cmd, "name", config.KeyRegistryName, ""),
		Homepage:     setting(cmd, "homepage", config.KeyRegistryHomepage, ""),
	}

	result, err := registry.Build(opts, registry.DefaultConfig())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !buildJSON {
		for _, e := range result.Entities {
			if e.Status == registry.StatusSkipped {
				fmt.Fprintf(out, "  - %s: %s\n", e.Key, e.Reason)
				continue
			}
			fmt.Fprintf(out, "  ✓ %s: %s (%s)\n", e.Key, e.Name, e.Status)
		}
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	// Never persist a document the schema rejects.
	if !buildNoValidate {
		vres, err := manifest.ValidateManifest(result.Manifest)
		if err != nil {
			return fmt.Errorf("validating merged manifest: %w", err)
		}
		if !vres.Valid {
			for _, issue := range vres.Issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ %s\n", formatIssue(issue))
			}
			return fmt.Errorf("merged manifest fails schema validation, %s not written", opts.ManifestPath)
		}
	}

	if err := manifest.Save(opts.ManifestPath, result.Manifest); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	if buildJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	fmt.Fprintf(out, "\n✓ Wrote %s: %d added, %d updated, %d skipped.\n",
		opts.ManifestPath, result.Added, result.Updated, result.Skipped)
	return nil
}

// setting resolves a string option: an explicitly set flag wins, then the
// merged config (environment over project file over user file), then the
// built-in fallback.
func setting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := config.Get(key); v != "" {
		return v
	}
	return fallback
}
