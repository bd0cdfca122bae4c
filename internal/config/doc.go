// Package config manages regkit settings: user-level keys stored at
// ~/.regkit/config.yaml plus optional per-project overrides read from a
// regkit.yaml in the working directory. Build commands take their flag
// defaults from here.
package config
