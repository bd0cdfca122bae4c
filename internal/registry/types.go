package registry

import (
	"path"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/regkit-labs/regkit/internal/manifest"
)

// Category describes one top-level bucket of the registry tree.
type Category struct {
	Dir      string // directory under the registry root, e.g. "components"
	ItemType string // manifest item type, e.g. "registry:component"
	FileType string // default type for files that match no naming convention
	Target   string // install target prefix, e.g. "components"
}

// Config carries the scanning and classification rules for one run. It is
// built once at startup and treated as immutable afterwards.
type Config struct {
	Categories    []Category
	AliasPrefixes []string         // local-alias prefixes, tried in order
	UIPatterns    []*regexp.Regexp // first capture group names the UI component
	Builtins      []string         // runtime built-in module names
	SourceExts    []string         // extensions parsed for imports
	StyleExts     []string         // extensions included as files but never parsed
	ExcludeGlobs  []string         // filename globs excluded from entities
}

// DefaultConfig returns the stock configuration: the standard category
// layout, "@/" and "~/" aliases, shadcn-style ui paths, and the Node
// builtin module set.
func DefaultConfig() *Config {
	return &Config{
		Categories: []Category{
			{Dir: "components", ItemType: manifest.TypeComponent, FileType: manifest.TypeComponent, Target: "components"},
			{Dir: "hooks", ItemType: manifest.TypeHook, FileType: manifest.TypeHook, Target: "hooks"},
			{Dir: "lib", ItemType: manifest.TypeLib, FileType: manifest.TypeLib, Target: "lib"},
			{Dir: "types", ItemType: manifest.TypeLib, FileType: manifest.TypeLib, Target: "types"},
			{Dir: "styles", ItemType: manifest.TypeStyle, FileType: manifest.TypeStyle, Target: "styles"},
		},
		AliasPrefixes: []string{"@/", "~/"},
		UIPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^@/components/ui/([\w-]+)`),
			regexp.MustCompile(`^~/components/ui/([\w-]+)`),
		},
		Builtins: []string{
			"assert", "async_hooks", "buffer", "child_process", "cluster",
			"console", "constants", "crypto", "dgram", "diagnostics_channel",
			"dns", "domain", "events", "fs", "http", "http2", "https",
			"inspector", "module", "net", "os", "path", "perf_hooks",
			"process", "punycode", "querystring", "readline", "repl",
			"stream", "string_decoder", "timers", "tls", "trace_events",
			"tty", "url", "util", "v8", "vm", "wasi", "worker_threads",
			"zlib",
		},
		SourceExts:   []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"},
		StyleExts:    []string{".css", ".scss"},
		ExcludeGlobs: []string{"*.test.*", "*.spec.*", "*.stories.*"},
	}
}

// Category returns the configured category with the given directory name.
func (c *Config) Category(dir string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Dir == dir {
			return cat, true
		}
	}
	return Category{}, false
}

func (c *Config) sourceFile(name string) bool {
	return hasExt(name, c.SourceExts)
}

func (c *Config) styleFile(name string) bool {
	return hasExt(name, c.StyleExts)
}

// eligible reports whether a file belongs to an entity: a source or style
// extension, and no exclusion glob match.
func (c *Config) eligible(name string) bool {
	if !c.sourceFile(name) && !c.styleFile(name) {
		return false
	}
	for _, pattern := range c.ExcludeGlobs {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return false
		}
	}
	return true
}

func hasExt(name string, exts []string) bool {
	ext := path.Ext(name)
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
