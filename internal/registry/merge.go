package registry

import "github.com/regkit-labs/regkit/internal/manifest"

// Metadata is the top-level manifest identity applied when the persisted
// manifest carries none.
type Metadata struct {
	Schema   string
	Name     string
	Homepage string
}

// Merge overlays freshly computed items onto the previously persisted
// manifest. Items are keyed by canonical name: a computed item replaces
// the persisted item of the same name wholesale, computed items sharing a
// name collapse to the last one, and every other persisted item passes
// through untouched. The merged items are sorted by name so repeated runs
// write identical bytes.
func Merge(persisted *manifest.Manifest, computed []manifest.Item, defaults Metadata) *manifest.Manifest {
	out := &manifest.Manifest{
		Schema:   defaults.Schema,
		Name:     defaults.Name,
		Homepage: defaults.Homepage,
		Items:    []manifest.Item{},
	}
	if persisted != nil {
		if persisted.Schema != "" {
			out.Schema = persisted.Schema
		}
		if persisted.Name != "" {
			out.Name = persisted.Name
		}
		if persisted.Homepage != "" {
			out.Homepage = persisted.Homepage
		}
	}

	replaced := make(map[string]bool, len(computed))
	for _, item := range computed {
		replaced[item.Name] = true
	}
	if persisted != nil {
		for _, item := range persisted.Items {
			if !replaced[item.Name] {
				out.Items = append(out.Items, item)
			}
		}
	}

	// Two entities can canonicalize to the same name (lib/utils and
	// types/utils both become "utils"); the later one wins, just as
	// computed wins over persisted.
	position := make(map[string]int, len(computed))
	for _, item := range computed {
		if i, ok := position[item.Name]; ok {
			out.Items[i] = item
			continue
		}
		position[item.Name] = len(out.Items)
		out.Items = append(out.Items, item)
	}
	out.SortItems()
	return out
}
