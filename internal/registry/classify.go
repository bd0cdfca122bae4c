package registry

import "strings"

// IsLocal reports whether an import path points inside the scanned project:
// a relative path or one starting with a configured alias prefix.
func (c *Config) IsLocal(importPath string) bool {
	if strings.HasPrefix(importPath, ".") {
		return true
	}
	for _, prefix := range c.AliasPrefixes {
		if strings.HasPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

// IsBuiltin reports whether a package name is a runtime builtin. The
// explicit "node:" scheme counts as its unprefixed form.
func (c *Config) IsBuiltin(name string) bool {
	name = strings.TrimPrefix(name, "node:")
	for _, builtin := range c.Builtins {
		if builtin == name {
			return true
		}
	}
	return false
}

// UIComponent matches an import path against the configured UI-library
// patterns and returns the captured component name.
func (c *Config) UIComponent(importPath string) (string, bool) {
	for _, pattern := range c.UIPatterns {
		if m := pattern.FindStringSubmatch(importPath); len(m) > 1 {
			return m[1], true
		}
	}
	return "", false
}

// PackageName derives the canonical npm package name from an import path:
// the first two segments for scoped packages, otherwise the first segment.
// Callers must rule out local and aliased paths first.
func PackageName(importPath string) string {
	parts := strings.SplitN(importPath, "/", 3)
	if strings.HasPrefix(importPath, "@") && len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}
