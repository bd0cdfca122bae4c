//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/regkit-labs/regkit/internal/manifest"
)

// testEnv holds paths to an isolated registry tree.
type testEnv struct {
	Root         string // registry source root
	ManifestPath string // persisted manifest location
	PackageJSON  string // package table location
}

// setupTestEnv creates an isolated temp registry root.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	return &testEnv{
		Root:         root,
		ManifestPath: filepath.Join(root, "registry.json"),
		PackageJSON:  filepath.Join(root, "package.json"),
	}
}

// setupRegistryTree populates the root with a small but complete registry:
// two components (one self-referencing another), a hook, a shared utility,
// and a package.json pinning the third-party packages they import.
func setupRegistryTree(t *testing.T, env *testEnv) {
	t.Helper()

	writeFile(t, filepath.Join(env.Root, "components/button/button.tsx"), `import * as React from "react"
import { Slot } from "@radix-ui/react-slot"

import { cn } from "@/lib/utils"

export function Button({ className, ...props }) {
  return <Slot className={cn("button", className)} {...props} />
}
`)

	writeFile(t, filepath.Join(env.Root, "components/card/card.tsx"), `import * as React from "react"

import { cn } from "@/lib/utils"
import { Button } from "@/components/button"

import "./card.css"

export function Card({ className, ...props }) {
  return <div className={cn("card", className)} {...props} />
}
`)
	writeFile(t, filepath.Join(env.Root, "components/card/card.css"), ".card { display: block; }\n")

	writeFile(t, filepath.Join(env.Root, "hooks/use-debounce/use-debounce.ts"), `import * as React from "react"

export function useDebounce(value, delay) {
  const [debounced, setDebounced] = React.useState(value)
  React.useEffect(() => {
    const timer = setTimeout(() => setDebounced(value), delay)
    return () => clearTimeout(timer)
  }, [value, delay])
  return debounced
}
`)

	writeFile(t, filepath.Join(env.Root, "lib/utils/utils.ts"), `import { clsx } from "clsx"
import { twMerge } from "tailwind-merge"

export function cn(...inputs) {
  return twMerge(clsx(inputs))
}
`)

	writeFile(t, env.PackageJSON, `{
  "name": "acme-registry",
  "dependencies": {
    "react": "^18.2.0",
    "@radix-ui/react-slot": "^1.1.0",
    "clsx": "^2.1.1",
    "tailwind-merge": "^2.5.2"
  }
}
`)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readManifest loads the persisted manifest or fails the test.
func readManifest(t *testing.T, path string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("loading manifest %s: %v", path, err)
	}
	return m
}

// manifestItem returns the named item or fails the test.
func manifestItem(t *testing.T, m *manifest.Manifest, name string) *manifest.Item {
	t.Helper()
	item, ok := m.Item(name)
	if !ok {
		var names []string
		for _, it := range m.Items {
			names = append(names, it.Name)
		}
		t.Fatalf("item %q not in manifest; have %v", name, names)
	}
	return item
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertStrings fails the test unless got equals want element-wise.
func assertStrings(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", label, got, want)
			return
		}
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
