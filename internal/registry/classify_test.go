package registry

import "testing"

func TestPackageName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"react", "react"},
		{"react-dom/client", "react-dom"},
		{"@radix-ui/react-slot", "@radix-ui/react-slot"},
		{"@radix-ui/react-slot/dist/index", "@radix-ui/react-slot"},
		{"lodash/fp/merge", "lodash"},
		{"node:path", "node:path"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := PackageName(tt.path); got != tt.want {
				t.Errorf("PackageName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsLocal(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{"./button", true},
		{"../lib/utils", true},
		{"@/components/card", true},
		{"~/hooks/use-toast", true},
		{"react", false},
		{"@radix-ui/react-slot", false},
	}

	for _, tt := range tests {
		if got := cfg.IsLocal(tt.path); got != tt.want {
			t.Errorf("IsLocal(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsBuiltin(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		want bool
	}{
		{"fs", true},
		{"path", true},
		{"crypto", true},
		{"node:fs", true},
		{"node:worker_threads", true},
		{"react", false},
		{"fsevents", false},
	}

	for _, tt := range tests {
		if got := cfg.IsBuiltin(tt.name); got != tt.want {
			t.Errorf("IsBuiltin(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUIComponent(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path  string
		want  string
		match bool
	}{
		{"@/components/ui/input", "input", true},
		{"~/components/ui/dropdown-menu", "dropdown-menu", true},
		{"@/components/ui/button/button", "button", true},
		{"@/components/card", "", false},
		{"react", "", false},
	}

	for _, tt := range tests {
		got, ok := cfg.UIComponent(tt.path)
		if ok != tt.match || got != tt.want {
			t.Errorf("UIComponent(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.match)
		}
	}
}
