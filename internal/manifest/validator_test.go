package manifest

import (
	"strings"
	"testing"
)

const validManifestJSON = `{
  "$schema": "https://ui.shadcn.com/schema/registry.json",
  "name": "acme",
  "homepage": "https://ui.acme.dev",
  "items": [
    {
      "name": "button",
      "type": "registry:component",
      "title": "Button",
      "dependencies": ["@radix-ui/react-slot@1.1.0"],
      "registryDependencies": ["utils"],
      "files": [
        {
          "path": "components/button/button.tsx",
          "type": "registry:component",
          "target": "components/button/button.tsx"
        }
      ]
    },
    {
      "name": "utils",
      "type": "registry:lib",
      "title": "Utils",
      "files": [
        {
          "path": "lib/utils/utils.ts",
          "type": "registry:lib",
          "target": "lib/utils/utils.ts"
        }
      ]
    }
  ]
}`

func TestValidateValidManifest(t *testing.T) {
	result, err := Validate([]byte(validManifestJSON))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateInvalidManifests(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		desc string
	}{
		{
			"missing name",
			`{"items": []}`,
			"name is required",
		},
		{
			"missing items",
			`{"name": "acme"}`,
			"items is required",
		},
		{
			"unknown item type",
			`{"name": "acme", "items": [{"name": "button", "type": "registry:gizmo", "files": [{"path": "a.tsx", "type": "registry:component"}]}]}`,
			"type must be a known registry type",
		},
		{
			"item without files",
			`{"name": "acme", "items": [{"name": "button", "type": "registry:component", "files": []}]}`,
			"files must not be empty",
		},
		{
			"file missing path",
			`{"name": "acme", "items": [{"name": "button", "type": "registry:component", "files": [{"type": "registry:component"}]}]}`,
			"file path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatalf("expected invalid (%s), got valid", tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue (%s)", tt.desc)
			}
		})
	}
}

func TestValidateIssueLocations(t *testing.T) {
	doc := `{"name": "acme", "items": [{"type": "registry:component", "files": [{"path": "a.tsx", "type": "registry:component"}]}]}`

	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid for item missing name")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.HasPrefix(issue.Path, "/items/0") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue located under /items/0, got %+v", result.Issues)
	}
}

func TestValidateFileTolerantSyntax(t *testing.T) {
	path := writeManifestFile(t, `{
  // index of published items
  "name": "acme",
  "items": [],
}`)

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %d issues", len(result.Issues))
	}
}

func TestValidateManifestInMemory(t *testing.T) {
	good := &Manifest{
		Name: "acme",
		Items: []Item{{
			Name:  "button",
			Type:  TypeComponent,
			Files: []File{{Path: "components/button/button.tsx", Type: TypeComponent}},
		}},
	}
	result, err := ValidateManifest(good)
	if err != nil {
		t.Fatalf("ValidateManifest error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %d issues", len(result.Issues))
	}

	bad := &Manifest{
		Name: "acme",
		Items: []Item{{
			Name:  "button",
			Type:  "widget",
			Files: []File{{Path: "components/button/button.tsx", Type: TypeComponent}},
		}},
	}
	result, err = ValidateManifest(bad)
	if err != nil {
		t.Fatalf("ValidateManifest error: %v", err)
	}
	if result.Valid {
		t.Error("expected invalid for unknown item type")
	}
}

func TestValidateManifestEmpty(t *testing.T) {
	// A fresh registry with no items is still a valid document.
	result, err := ValidateManifest(&Manifest{Name: "acme"})
	if err != nil {
		t.Fatalf("ValidateManifest error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %d issues", len(result.Issues))
	}
}
