package registry

import (
	"strings"

	"github.com/regkit-labs/regkit/internal/logger"
	"github.com/regkit-labs/regkit/internal/npm"
)

// DepKind classifies what a single import path means for the entity that
// contains it.
type DepKind int

const (
	// DepIgnored covers relative paths, builtins, and aliased paths
	// that resolve to nothing.
	DepIgnored DepKind = iota
	// DepRegistry is a dependency on another item in this registry or
	// on a UI-library component.
	DepRegistry
	// DepPackage is a third-party package pinned via the package table.
	DepPackage
	// DepUnresolved is a package reference with no known version.
	// Reported as a diagnostic, never persisted.
	DepUnresolved
)

// Resolution is the outcome of classifying one import path. Name holds the
// canonical item name for DepRegistry, the "name@version" pin for
// DepPackage, and the bare package name for DepUnresolved.
type Resolution struct {
	Kind DepKind
	Name string
}

// Resolver classifies import paths against the run's configuration, the
// entity index, and the installed package table.
type Resolver struct {
	cfg      *Config
	index    Index
	packages npm.Table
}

// NewResolver returns a Resolver over the given rules and lookup tables.
func NewResolver(cfg *Config, index Index, packages npm.Table) *Resolver {
	return &Resolver{cfg: cfg, index: index, packages: packages}
}

// Resolve classifies one import path. Checks run in priority order and the
// first match wins: UI-library patterns, then alias resolution against the
// entity index, then relative paths, then builtins and the package table.
func (r *Resolver) Resolve(importPath string) Resolution {
	if name, ok := r.cfg.UIComponent(importPath); ok {
		return Resolution{Kind: DepRegistry, Name: name}
	}

	if !strings.HasPrefix(importPath, ".") {
		for _, prefix := range r.cfg.AliasPrefixes {
			if !strings.HasPrefix(importPath, prefix) {
				continue
			}
			// First matching alias decides the outcome; a lookup
			// miss drops the import rather than trying the next
			// alias or falling through to package resolution.
			if name, ok := r.index.Lookup(strings.TrimPrefix(importPath, prefix)); ok {
				return Resolution{Kind: DepRegistry, Name: name}
			}
			logger.Debug("alias import %q matched no registry entity", importPath)
			return Resolution{Kind: DepIgnored}
		}
	}

	if r.cfg.IsLocal(importPath) {
		return Resolution{Kind: DepIgnored}
	}

	name := PackageName(importPath)
	if r.cfg.IsBuiltin(name) {
		return Resolution{Kind: DepIgnored}
	}
	if pinned, ok := r.packages.Pinned(name); ok {
		return Resolution{Kind: DepPackage, Name: pinned}
	}
	return Resolution{Kind: DepUnresolved, Name: name}
}
