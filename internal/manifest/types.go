package manifest

import "sort"

// Item type identifiers. These mirror the registry item vocabulary that
// consumer tooling understands; categories map onto a subset of them.
const (
	TypeComponent = "registry:component"
	TypeHook      = "registry:hook"
	TypeLib       = "registry:lib"
	TypeStyle     = "registry:style"
	TypeUI        = "registry:ui"
	TypeBlock     = "registry:block"
	TypePage      = "registry:page"
	TypeFile      = "registry:file"
	TypeTheme     = "registry:theme"
)

// Manifest is the persisted registry document.
type Manifest struct {
	Schema   string `json:"$schema,omitempty"`
	Name     string `json:"name"`
	Homepage string `json:"homepage,omitempty"`
	Items    []Item `json:"items"`
}

// Item is one published registry entry. Dependencies holds pinned npm
// package specifiers; RegistryDependencies holds names of other items in
// the same registry. Both are kept sorted and deduplicated.
type Item struct {
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	Title                string   `json:"title,omitempty"`
	Description          string   `json:"description,omitempty"`
	Dependencies         []string `json:"dependencies,omitempty"`
	RegistryDependencies []string `json:"registryDependencies,omitempty"`
	Files                []File   `json:"files"`
}

// File describes one source file belonging to an item. Path is relative to
// the registry root; Target is where consumers should place the file.
type File struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
}

// Item returns the item with the given name, if present.
func (m *Manifest) Item(name string) (*Item, bool) {
	for i := range m.Items {
		if m.Items[i].Name == name {
			return &m.Items[i], true
		}
	}
	return nil, false
}

// SortItems orders the items array by name so repeated builds emit the
// document in a stable form.
func (m *Manifest) SortItems() {
	sort.Slice(m.Items, func(i, j int) bool {
		return m.Items[i].Name < m.Items[j].Name
	})
}

// normalized returns a copy safe to marshal: a nil items slice becomes an
// empty array instead of JSON null.
func (m *Manifest) normalized() *Manifest {
	out := *m
	if out.Items == nil {
		out.Items = []Item{}
	}
	return &out
}
