// Package cli defines the Cobra command tree for the regkit CLI. Each file
// in this package registers one top-level command (build, list, validate,
// etc.) with the root command. Command implementations delegate to internal
// packages for the pipeline work and only handle flag parsing, settings
// resolution, and output formatting.
package cli
