package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/regkit-labs/regkit/internal/config"
	"github.com/regkit-labs/regkit/internal/manifest"
	"github.com/regkit-labs/regkit/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listRegistry string
	listOutput   string
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entities discovered in the registry tree",
	Long: `List every entity in the registry tree with its canonical name, category,
eligible file count, and whether it already appears in the manifest.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listRegistry, "registry", "", "Registry source root (default: config registry_root or .)")
	listCmd.Flags().StringVar(&listOutput, "output", "", "Manifest path (default: config output or registry.json)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category directory (components, hooks, lib, types, styles)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a discovered entity for display.
type listEntry struct {
	Category   string `json:"category"`
	Name       string `json:"name"`
	Files      int    `json:"files"`
	InManifest bool   `json:"inManifest"`
}

func runList(cmd *cobra.Command, args []string) error {
	config.LoadProject()

	root := setting(cmd, "registry", config.KeyRegistryRoot, ".")
	manifestPath := setting(cmd, "output", config.KeyOutput, "registry.json")

	// The manifest is optional here; without one every entity shows as new.
	persisted, err := manifest.Load(manifestPath)
	if err != nil {
		persisted = nil
	}

	cfg := registry.DefaultConfig()
	entries, err := collectEntries(root, cfg, persisted, listCategory)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		if listCategory != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No entities under %s/\n", listCategory)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No entities found.")
		}
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func collectEntries(root string, cfg *registry.Config, persisted *manifest.Manifest, category string) ([]listEntry, error) {
	var entries []listEntry
	for _, cat := range cfg.Categories {
		if category != "" && cat.Dir != category {
			continue
		}
		dirs, err := registry.Entities(root, cat)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			files, err := registry.EntityFiles(root, cat, dir, cfg)
			if err != nil {
				return nil, fmt.Errorf("listing %s/%s: %w", cat.Dir, dir, err)
			}

			entry := listEntry{
				Category: cat.Dir,
				Name:     registry.CanonicalName(dir),
				Files:    len(files),
			}
			if persisted != nil {
				_, entry.InManifest = persisted.Item(entry.Name)
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tNAME\tFILES\tMANIFEST")
	for _, e := range entries {
		inManifest := "-"
		if e.InManifest {
			inManifest = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.Category, e.Name, e.Files, inManifest)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
