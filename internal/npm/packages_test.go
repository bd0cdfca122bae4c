package npm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuildsPinnedTable(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "package.json")
	content := `{
  "name": "acme-registry",
  "dependencies": {
    "react": "^18.2.0",
    "@radix-ui/react-slot": "~1.1.0",
    "clsx": "2.1.1"
  },
  "devDependencies": {
    "typescript": ">=5.4.0",
    "vitest": "latest"
  }
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []struct {
		name   string
		pinned string
	}{
		{"react", "react@18.2.0"},
		{"@radix-ui/react-slot", "@radix-ui/react-slot@1.1.0"},
		{"clsx", "clsx@2.1.1"},
		{"typescript", "typescript@5.4.0"},
		{"vitest", "vitest@latest"},
	}
	for _, w := range want {
		got, ok := table.Pinned(w.name)
		if !ok {
			t.Errorf("Pinned(%q): missing", w.name)
			continue
		}
		if got != w.pinned {
			t.Errorf("Pinned(%q) = %q, want %q", w.name, got, w.pinned)
		}
	}

	if _, ok := table.Pinned("left-pad"); ok {
		t.Error("Pinned(left-pad): expected miss for undeclared package")
	}
}

func TestLoadRuntimeWinsOverDev(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "package.json")
	content := `{
  "dependencies": {"react": "^18.2.0"},
  "devDependencies": {"react": "^17.0.2"}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, _ := table.Pinned("react"); got != "react@18.2.0" {
		t.Errorf("Pinned(react) = %q, want runtime version react@18.2.0", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "package.json"))
	if err == nil {
		t.Fatal("expected error for missing package.json")
	}
}

func TestLoadUnparseable(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "package.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable package.json")
	}
}

func TestPin(t *testing.T) {
	tests := []struct {
		name string
		rng  string
		want string
	}{
		{"react", "^18.2.0", "react@18.2.0"},
		{"next", "~>14.1", "next@14.1.0"},
		{"zod", "v3.23.8", "zod@3.23.8"},
		{"tailwindcss", "latest", "tailwindcss@latest"},
		{"pkg", "workspace:*", "pkg@workspace:*"},
		{"esbuild", " >= 0.21.0 ", "esbuild@0.21.0"},
	}
	for _, tt := range tests {
		if got := Pin(tt.name, tt.rng); got != tt.want {
			t.Errorf("Pin(%q, %q) = %q, want %q", tt.name, tt.rng, got, tt.want)
		}
	}
}
