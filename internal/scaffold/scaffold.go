package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/regkit-labs/regkit/internal/registry"
)

//go:embed templates
var templateFS embed.FS

// Data holds the template variables available to entity templates.
type Data struct {
	Name   string // kebab-case entity name, e.g. "date-picker"
	Title  string // display title, e.g. "Date Picker"
	Export string // PascalCase identifier, e.g. "DatePicker"
	Camel  string // camelCase identifier, e.g. "datePicker"
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// NewData derives the identifier forms templates interpolate from the
// entity name.
func NewData(name string) *Data {
	title := registry.DisplayTitle(name)
	export := strings.ReplaceAll(title, " ", "")
	camel := export
	if camel != "" {
		camel = strings.ToLower(camel[:1]) + camel[1:]
	}
	return &Data{
		Name:   registry.CanonicalName(name),
		Title:  title,
		Export: export,
		Camel:  camel,
	}
}

// Generate creates a new entity directory from the template set for kind.
func Generate(kind string, data *Data, outputDir string) (*Result, error) {
	templatesDir := "templates/" + kind

	entries, err := fs.ReadDir(templateFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", kind, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Refuse to scaffold over existing work.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplBytes, err := fs.ReadFile(templateFS, templatesDir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := outputName(entry.Name(), kind, data.Name)
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	return result, nil
}

// outputName strips the .tmpl extension and renames the kind stem to the
// entity name, so component.tsx.tmpl becomes date-picker.tsx.
func outputName(templateName, kind, entityName string) string {
	name := strings.TrimSuffix(templateName, ".tmpl")
	if stem, ext, ok := strings.Cut(name, "."); ok && stem == kind {
		return entityName + "." + ext
	}
	return name
}
