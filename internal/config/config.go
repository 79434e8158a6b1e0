package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileNames are the config files Load looks for, in order.
var FileNames = []string{"docx-render.yml", "docx-render.yaml"}

// Config holds settings loaded from docx-render.yml. Empty fields leave the
// command's defaults in place.
type Config struct {
	Data       string `yaml:"data,omitempty"`
	Template   string `yaml:"template,omitempty"`
	Output     string `yaml:"output,omitempty"`
	MissingKey string `yaml:"missingKey,omitempty"`
	Sanitize   bool   `yaml:"sanitize,omitempty"`
	Verbose    bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read docx-render.yml or docx-render.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return &Config{}, nil
}

// LoadFile reads the config file at path. Unlike Load, a missing file is an
// error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}
