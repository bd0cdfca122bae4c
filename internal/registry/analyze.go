package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/regkit-labs/regkit/internal/logger"
	"github.com/regkit-labs/regkit/internal/manifest"
)

// ErrNoSourceFiles reports an entity directory with nothing eligible to
// publish. Callers skip the entity and continue with the rest of the run.
var ErrNoSourceFiles = errors.New("no eligible source files")

// Filename conventions that override the category's default file kind.
var (
	hookFileRE = regexp.MustCompile(`^use(-|[A-Z])`)
	utilFileRE = regexp.MustCompile(`(^|[-.])(utils?|helpers?)$`)
)

// Analysis is the computed record for one entity: its manifest item plus
// diagnostics that never reach the manifest.
type Analysis struct {
	Item       manifest.Item
	Unresolved []string // package names with no pinned version
}

// AnalyzeEntity scans one entity directory, extracts and classifies the
// imports of every eligible source file, and aggregates the results into
// a manifest item. Style files contribute file entries but are not parsed
// for imports. The entity's own name never survives in its registry
// dependencies, even when an aliased self-import resolves to it.
func AnalyzeEntity(root string, cat Category, dir string, r *Resolver) (*Analysis, error) {
	entityDir := filepath.Join(root, cat.Dir, dir)
	files, err := entityFiles(entityDir, r.cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSourceFiles
		}
		return nil, fmt.Errorf("listing entity %s/%s: %w", cat.Dir, dir, err)
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	name := CanonicalName(dir)
	logger.Debug("analyzing %s/%s (%d files)", cat.Dir, dir, len(files))

	packages := make(map[string]bool)
	registryDeps := make(map[string]bool)
	unresolved := make(map[string]bool)

	for _, file := range files {
		if !r.cfg.sourceFile(file) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(entityDir, file))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path.Join(cat.Dir, dir, file), err)
		}
		for _, imp := range ExtractImports(string(data)) {
			switch res := r.Resolve(imp); res.Kind {
			case DepPackage:
				packages[res.Name] = true
			case DepRegistry:
				registryDeps[res.Name] = true
			case DepUnresolved:
				unresolved[res.Name] = true
			}
		}
	}

	delete(registryDeps, name)

	item := manifest.Item{
		Name:                 name,
		Type:                 cat.ItemType,
		Title:                DisplayTitle(name),
		Dependencies:         sortedKeys(packages),
		RegistryDependencies: sortedKeys(registryDeps),
		Files:                fileDescriptors(cat, dir, files, r.cfg),
	}
	return &Analysis{Item: item, Unresolved: sortedKeys(unresolved)}, nil
}

// fileDescriptors maps each eligible file to its manifest descriptor.
// Paths and targets are slash-separated regardless of host platform.
func fileDescriptors(cat Category, dir string, files []string, cfg *Config) []manifest.File {
	descriptors := make([]manifest.File, 0, len(files))
	for _, file := range files {
		descriptors = append(descriptors, manifest.File{
			Path:   path.Join(cat.Dir, dir, file),
			Type:   fileKind(file, cat, cfg),
			Target: path.Join(cat.Target, dir, file),
		})
	}
	return descriptors
}

// fileKind infers a file's kind from its name: style sheets, hook-named
// files, and utility modules override the category default.
func fileKind(name string, cat Category, cfg *Config) string {
	if cfg.styleFile(name) {
		return manifest.TypeStyle
	}
	base := strings.TrimSuffix(name, path.Ext(name))
	switch {
	case hookFileRE.MatchString(base):
		return manifest.TypeHook
	case utilFileRE.MatchString(base):
		return manifest.TypeLib
	default:
		return cat.FileType
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
