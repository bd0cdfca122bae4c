// Package manifest defines the persisted registry document and its JSON
// Schema validation. A registry manifest is a single JSON file listing every
// published item together with its source files and resolved dependencies.
package manifest
