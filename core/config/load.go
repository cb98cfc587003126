package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs loads the configuration from a directory in the given filesystem.
func LoadFs(fs afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	out.configFs = fs
	out.configurationDir = path
	return &out, nil
}

// Initialize writes the default configuration to dir, it leaves an existing
// configuration untouched.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	fs := afero.NewOsFs()

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch _, err := fs.Stat(configPath); {
	case err == nil:
		logger.Printf("%s already exists, leaving it in place\n", configPath)
	case os.IsNotExist(err):
		if err := afero.WriteFile(fs, configPath, defaultConfigData, 0644); err != nil {
			return nil, err
		}
		logger.Printf("Wrote %s\n", configPath)
	default:
		return nil, err
	}

	return LoadFs(fs, dir)
}
