package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/muhammadmuzzammil1998/jsonc"
)

// ErrMalformed reports that a manifest file exists but does not contain a
// parseable JSON document. Callers typically treat this as "no previous
// manifest" and surface a warning rather than aborting.
var ErrMalformed = errors.New("malformed manifest")

// Load reads the manifest at path. Comments and trailing commas are
// tolerated so hand-edited files still load. A missing file surfaces as an
// error satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformed, path, err)
	}
	return &m, nil
}

// Save writes the manifest to path as indented JSON with a trailing
// newline. Output is deterministic for a given document, so unchanged
// builds rewrite the file byte for byte.
func Save(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m.normalized(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
