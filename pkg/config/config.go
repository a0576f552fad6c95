package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file depwatch looks for when no explicit config
// path is given.
const ConfigFileName = ".depwatch.yaml"

// Config represents the configuration for the dependency auditor
type Config struct {
	// Output configuration
	Output struct {
		Format string `yaml:"format"` // csv, json, sarif, text
		File   string `yaml:"file"`   // Report file path
	} `yaml:"output"`

	// Report controls the CSV column headers and the stale marker
	Report struct {
		NameHeader    string `yaml:"nameHeader"`
		VersionHeader string `yaml:"versionHeader"`
		WarningHeader string `yaml:"warningHeader"`
		StaleMarker   string `yaml:"staleMarker"`
	} `yaml:"report"`

	// Ignore specific packages
	IgnorePackages []string `yaml:"ignorePackages"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	config := &Config{}

	// Set default output format and report path
	config.Output.Format = "csv"
	config.Output.File = "depwatch-report.csv"

	// Set default report columns
	config.Report.NameHeader = "name"
	config.Report.VersionHeader = "version"
	config.Report.WarningHeader = "warning"
	config.Report.StaleMarker = "×"

	return config
}

// LoadConfig loads the configuration from the specified file path
// If no path is provided, it looks for .depwatch.yaml in the current directory
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path provided, look in current directory
	if configPath == "" {
		configPath = ConfigFileName
	}

	// Check if the file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Config file doesn't exist, return default config
		return config, nil
	}

	// Read the config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse the YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// FindAndLoadConfig searches for a config file in the project directory and its parents
func FindAndLoadConfig(projectPath string) (*Config, error) {
	config := DefaultConfig()

	// Start from the project directory and work up to the root
	currentDir := projectPath
	for {
		configPath := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			// Found a config file, load it
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
			}

			// Parse the YAML
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("error parsing config file %s: %w", configPath, err)
			}

			return config, nil
		}

		// Move up to the parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the root directory, no config file found
			break
		}
		currentDir = parentDir
	}

	// No config file found, return default config
	return config, nil
}

// IsPackageIgnored checks if a package should be ignored based on the configuration
func (c *Config) IsPackageIgnored(packageName string) bool {
	for _, ignoredPackage := range c.IgnorePackages {
		if ignoredPackage == packageName {
			return true
		}
	}
	return false
}
