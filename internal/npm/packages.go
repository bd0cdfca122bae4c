// Package npm reads a project's package.json and exposes its declared
// dependencies as a pinned-version lookup table.
package npm

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Table maps a package name to its pinned "name@version" rendering.
type Table map[string]string

// packageJSON is the subset of package.json the table is built from.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Load reads package.json at path and builds the pinned table from its
// dependencies and devDependencies blocks. When a name appears in both,
// the runtime dependency wins.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	table := make(Table, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, rng := range pkg.DevDependencies {
		table[name] = Pin(name, rng)
	}
	for name, rng := range pkg.Dependencies {
		table[name] = Pin(name, rng)
	}
	return table, nil
}

// Pinned returns the "name@version" rendering for a declared package.
func (t Table) Pinned(name string) (string, bool) {
	pinned, ok := t[name]
	return pinned, ok
}

// Pin renders name@version with the range operator stripped. Versions that
// parse as semver are normalized (v prefix dropped, missing segments filled);
// anything else, like "latest" tags or workspace refs, is kept verbatim.
func Pin(name, rng string) string {
	v := cleanVersion(rng)
	if parsed, err := semver.NewVersion(v); err == nil {
		v = parsed.String()
	}
	return name + "@" + v
}

// cleanVersion strips range operator prefixes like ^, ~, >=, ~>.
func cleanVersion(v string) string {
	v = strings.TrimSpace(v)
	for _, prefix := range []string{"^", "~>", "~", ">=", "<=", "==", "!=", ">", "<", "="} {
		v = strings.TrimPrefix(v, prefix)
	}
	return strings.TrimSpace(v)
}
