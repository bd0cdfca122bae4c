package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/regkit-labs/regkit/internal/branding"
	"github.com/regkit-labs/regkit/internal/logger"
	"github.com/regkit-labs/regkit/internal/manifest"
	"github.com/regkit-labs/regkit/internal/npm"
)

// DefaultRegistryName is used when neither the persisted manifest nor the
// caller names the registry.
const DefaultRegistryName = "registry"

// Status is the per-entity outcome of a build run.
type Status string

const (
	StatusAdded   Status = "added"
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
)

// BuildOptions control one build run.
type BuildOptions struct {
	Root         string   // registry source root
	ManifestPath string   // persisted manifest location
	PackageJSON  string   // package table source
	Targets      []string // "category/entity" or bare entity selectors; empty targets everything
	SkipExisting bool     // leave already-persisted entities untouched
	Name         string   // override for the registry name
	Homepage     string   // override for the registry homepage
}

// EntityResult reports what happened to one targeted entity.
type EntityResult struct {
	Key        string   `json:"key"`  // "category/dirName"
	Name       string   `json:"name"` // canonical item name
	Status     Status   `json:"status"`
	Reason     string   `json:"reason,omitempty"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// BuildResult is the outcome of a full run. The manifest is merged and
// ready to persist; writing it is the caller's decision.
type BuildResult struct {
	Manifest *manifest.Manifest `json:"-"`
	Entities []EntityResult     `json:"entities"`
	Added    int                `json:"added"`
	Updated  int                `json:"updated"`
	Skipped  int                `json:"skipped"`
	Warnings []string           `json:"warnings,omitempty"`
}

type target struct {
	cat Category
	dir string
}

// Build runs the pipeline: index the tree, analyze every targeted entity,
// and merge the computed items into the persisted manifest. Recoverable
// conditions surface as warnings; a missing root and low-level I/O
// failures abort the run before anything is written.
func Build(opts BuildOptions, cfg *Config) (*BuildResult, error) {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.ManifestPath == "" {
		opts.ManifestPath = "registry.json"
	}
	if opts.PackageJSON == "" {
		opts.PackageJSON = "package.json"
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("registry root %s: %w", opts.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("registry root %s is not a directory", opts.Root)
	}

	result := &BuildResult{}

	persisted, err := manifest.Load(opts.ManifestPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		persisted = nil
	case errors.Is(err, manifest.ErrMalformed):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("existing manifest %s is unparseable, rebuilding from scratch", opts.ManifestPath))
		persisted = nil
	default:
		return nil, err
	}

	packages, err := npm.Load(opts.PackageJSON)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no package file at %s, third-party imports will be unresolved", opts.PackageJSON))
		packages = npm.Table{}
	}

	index, err := BuildIndex(opts.Root, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("indexed %d entities under %s", len(index), opts.Root)

	resolver := NewResolver(cfg, index, packages)

	targets, warnings, err := selectTargets(opts.Root, cfg, opts.Targets)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, warnings...)

	var computed []manifest.Item
	for _, t := range targets {
		key := t.cat.Dir + "/" + t.dir
		name := CanonicalName(t.dir)

		if opts.SkipExisting && persisted != nil {
			if _, ok := persisted.Item(name); ok {
				result.Entities = append(result.Entities, EntityResult{
					Key: key, Name: name, Status: StatusSkipped, Reason: "already in manifest",
				})
				result.Skipped++
				continue
			}
		}

		analysis, err := AnalyzeEntity(opts.Root, t.cat, t.dir, resolver)
		if errors.Is(err, ErrNoSourceFiles) {
			result.Entities = append(result.Entities, EntityResult{
				Key: key, Name: name, Status: StatusSkipped, Reason: "no eligible source files",
			})
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}

		status := StatusAdded
		if persisted != nil {
			if _, ok := persisted.Item(name); ok {
				status = StatusUpdated
			}
		}
		if status == StatusAdded {
			result.Added++
		} else {
			result.Updated++
		}

		if len(analysis.Unresolved) > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unresolved packages: %s", key, strings.Join(analysis.Unresolved, ", ")))
		}

		computed = append(computed, analysis.Item)
		result.Entities = append(result.Entities, EntityResult{
			Key: key, Name: name, Status: status, Unresolved: analysis.Unresolved,
		})
	}

	result.Manifest = Merge(persisted, computed, Metadata{
		Schema: branding.SchemaURL(),
		Name:   DefaultRegistryName,
	})
	if opts.Name != "" {
		result.Manifest.Name = opts.Name
	}
	if opts.Homepage != "" {
		result.Manifest.Homepage = opts.Homepage
	}
	return result, nil
}

// selectTargets expands the selector list into concrete entities. With no
// selectors every entity of every category is targeted. Selectors that
// match nothing produce warnings, not errors.
func selectTargets(root string, cfg *Config, selectors []string) ([]target, []string, error) {
	if len(selectors) == 0 {
		var targets []target
		for _, cat := range cfg.Categories {
			dirs, err := Entities(root, cat)
			if err != nil {
				return nil, nil, err
			}
			for _, dir := range dirs {
				targets = append(targets, target{cat: cat, dir: dir})
			}
		}
		return targets, nil, nil
	}

	var (
		targets  []target
		warnings []string
		seen     = make(map[string]bool)
	)
	add := func(t target) {
		key := t.cat.Dir + "/" + t.dir
		if !seen[key] {
			seen[key] = true
			targets = append(targets, t)
		}
	}

	for _, sel := range selectors {
		if catDir, dir, qualified := strings.Cut(sel, "/"); qualified {
			cat, ok := cfg.Category(catDir)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("selector %q names no configured category", sel))
				continue
			}
			add(target{cat: cat, dir: dir})
			continue
		}

		cat, dir, found, err := findEntity(root, cfg, sel)
		if err != nil {
			return nil, nil, err
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("no category contains an entity named %q", sel))
			continue
		}
		add(target{cat: cat, dir: dir})
	}
	return targets, warnings, nil
}

// findEntity locates a bare selector, scanning categories in configured
// order and matching each entity by directory name or canonical form, so
// "date-picker" finds a directory named DatePicker. Returns the on-disk
// directory of the first hit.
func findEntity(root string, cfg *Config, sel string) (Category, string, bool, error) {
	want := CanonicalName(sel)
	for _, cat := range cfg.Categories {
		dirs, err := Entities(root, cat)
		if err != nil {
			return Category{}, "", false, err
		}
		for _, dir := range dirs {
			if dir == sel || CanonicalName(dir) == want {
				return cat, dir, true, nil
			}
		}
	}
	return Category{}, "", false, nil
}
