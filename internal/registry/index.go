package registry

import "strings"

// Index maps "category/dirName" to the entity's canonical item name. It is
// rebuilt from the directory tree on every run and never persisted.
type Index map[string]string

// BuildIndex scans every configured category one level deep and records
// each entity directory under its category-qualified key.
func BuildIndex(root string, cfg *Config) (Index, error) {
	index := make(Index)
	for _, cat := range cfg.Categories {
		dirs, err := Entities(root, cat)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			index[cat.Dir+"/"+dir] = CanonicalName(dir)
		}
	}
	return index, nil
}

// Lookup resolves the remainder of an aliased import path: first the
// remainder itself, then its first two path segments. The two-segment
// fallback lets "lib/utils/utils" find the entity at "lib/utils".
func (ix Index) Lookup(remainder string) (string, bool) {
	if name, ok := ix[remainder]; ok {
		return name, true
	}
	parts := strings.SplitN(remainder, "/", 3)
	if len(parts) >= 2 {
		if name, ok := ix[parts[0]+"/"+parts[1]]; ok {
			return name, true
		}
	}
	return "", false
}
