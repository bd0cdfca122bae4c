package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/regkit-labs/regkit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// ProjectFile is the per-project settings file read from the working
// directory. Its values override the user-level config.
const ProjectFile = "regkit.yaml"

// Keys understood by the settings layer. Build flags fall back to these
// when not set on the command line.
const (
	KeyRegistryRoot     = "registry_root"
	KeyOutput           = "output"
	KeyPackageJSON      = "package_json"
	KeyRegistryName     = "registry_name"
	KeyRegistryHomepage = "registry_homepage"
)

// Dir returns the path to the regkit config directory (~/.regkit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file
// (~/.regkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the user config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// LoadProject loads the user config, then overlays the project file from
// the working directory when one exists. Commands that operate on a
// registry tree use this; config get/set stick to Load so project values
// never leak into the user file.
func LoadProject() {
	Load()

	if _, err := os.Stat(ProjectFile); err != nil {
		return
	}
	viper.SetConfigFile(ProjectFile)
	_ = viper.MergeInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the user config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
