// Package registry implements the registry build pipeline: scanning category
// directories for entities, extracting import paths from their source files,
// classifying each import as a package dependency, a dependency on another
// registry item, or noise, and merging the computed items into the persisted
// registry manifest.
package registry
