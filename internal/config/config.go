package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes one rewrite batch: the toast import path to insert and
// the ordered list of files to process. List order is processing order;
// duplicate paths are allowed and simply processed twice.
type Config struct {
	ImportPath string   `yaml:"importPath"`
	Files      []string `yaml:"files"`
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the -c flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.ImportPath == "" {
		config.ImportPath = DefaultImportPath
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads the config at path, falling back to the compiled-in
// defaults when the file does not exist. Any other read or parse failure is
// surfaced.
func LoadOrDefault(path string) (*Config, error) {
	config, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return config, nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if c.ImportPath == "" {
		return errors.New("importPath is required and cannot be empty")
	}

	if len(c.Files) == 0 {
		return errors.New("config must contain at least one target file")
	}

	for i, file := range c.Files {
		if file == "" {
			return fmt.Errorf("target file %d is empty", i+1)
		}
		if !filepath.IsAbs(file) {
			return fmt.Errorf("target file %d is not an absolute path: %s", i+1, file)
		}
	}

	return nil
}
