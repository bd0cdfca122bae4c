package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Entities lists the entity directories of one category, in directory
// order. A category directory that does not exist yields no entities.
func Entities(root string, cat Category) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, cat.Dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing category %s: %w", cat.Dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// EntityFiles lists the eligible files of one entity, relative to the
// entity directory.
func EntityFiles(root string, cat Category, dir string, cfg *Config) ([]string, error) {
	return entityFiles(filepath.Join(root, cat.Dir, dir), cfg)
}

// entityFiles lists the eligible files directly inside an entity
// directory. Nested directories are not descended into.
func entityFiles(dir string, cfg *Config) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if cfg.eligible(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
