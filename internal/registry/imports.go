package registry

import (
	"regexp"
	"sort"
)

// Import-path extraction is lexical on purpose: only literal quoted paths
// are recognized, and computed or templated specifiers stay invisible.
var (
	// Static forms: import defaults/namespaces/bindings from "x",
	// export ... from "x", and bare side-effect imports. The clause
	// character class spans newlines so multi-line imports match.
	staticImportRE = regexp.MustCompile(`(?:\bimport|\bexport)\s+(?:[\w*\s{},$]*?from\s*)?["']([^"']+)["']`)

	// Call forms: require("x") and dynamic import("x").
	callImportRE = regexp.MustCompile(`(?:\brequire|\bimport)\s*\(\s*["']([^"']+)["']\s*\)`)
)

// ExtractImports returns the distinct literal import paths referenced by
// the given source text, sorted for deterministic downstream processing.
func ExtractImports(source string) []string {
	seen := make(map[string]bool)
	for _, re := range []*regexp.Regexp{staticImportRE, callImportRE} {
		for _, m := range re.FindAllStringSubmatch(source, -1) {
			seen[m[1]] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
