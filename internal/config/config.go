package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for statlang
type Config struct {
	Package    string           `yaml:"package"`
	RootName   string           `yaml:"root_name"`
	Formatting FormattingConfig `yaml:"formatting"`
	Naming     NamingConfig     `yaml:"naming"`
	Output     OutputConfig     `yaml:"output"`
}

// FormattingConfig controls code formatting options
type FormattingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NamingConfig controls constant naming.
//
// ScreamingSnake switches constant identifiers from the default pure
// case-fold ("someKey" -> "SOMEKEY") to word-boundary conversion
// ("someKey" -> "SOME_KEY"). Off by default: the case-fold reproduces
// the names callers already rely on.
type NamingConfig struct {
	ScreamingSnake bool `yaml:"screaming_snake"`
}

// OutputConfig controls output generation options
type OutputConfig struct {
	FileHeader string `yaml:"file_header"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Package:  "main",
		RootName: "lang",
		Formatting: FormattingConfig{
			Enabled: true,
		},
		Naming: NamingConfig{
			ScreamingSnake: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so absent keys keep their default values
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".statlang.yml", ".statlang.yaml", "statlang.yml", "statlang.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// CLI values override file values only when they differ from the
// built-in defaults, so a config file still wins over untouched flags.
func LoadConfigWithCLI(configPath, cliPackage, cliRootName string, cliFormat bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliPackage != "" && cliPackage != "main" {
		cfg.Package = cliPackage
	}
	if cliRootName != "" && cliRootName != "lang" {
		cfg.RootName = cliRootName
	}
	if !cliFormat {
		cfg.Formatting.Enabled = false
	}

	return cfg, nil
}
