package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pavanmanishd/adt"
	"gopkg.in/yaml.v3"
)

const (
	DirPermissions  = 0o700
	FilePermissions = 0o600
)

// Config represents the adt command configuration
type Config struct {
	// Logging settings
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json

	// Container settings
	InitialCapacity int `yaml:"initial_capacity"` // capacity hint for arrays built from input

	// Rendering settings
	DefaultLayout string                `yaml:"default_layout"`
	Layouts       map[string]adt.Layout `yaml:"layouts,omitempty"` // custom layouts, checked before built-in presets
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "warn",
		LogFormat:       "text",
		InitialCapacity: adt.DefaultCapacity,
		DefaultLayout:   adt.LayoutString,
	}
}

// LoadConfig loads configuration from file, falling back to defaults.
// An empty path searches the standard locations; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithExplicitFlag(configPath, false)
}

// LoadConfigWithExplicitFlag loads configuration with a flag indicating if the path was explicitly provided
func LoadConfigWithExplicitFlag(configPath string, explicit bool) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" && !fileExists(configPath) {
		if explicit {
			return nil, fmt.Errorf("failed to load config: config file not found: %s", configPath)
		}
		return config, nil
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

// Validate checks that every custom layout can be rendered and the default layout resolves
func (c *Config) Validate() error {
	for name, l := range c.Layouts {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("layout %q: %w", name, err)
		}
	}
	if _, err := c.Layout(c.DefaultLayout); err != nil {
		return err
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("initial_capacity must be >= 0, got %d", c.InitialCapacity)
	}
	return nil
}

// Layout resolves a layout by name. Custom layouts shadow built-in presets.
func (c *Config) Layout(name string) (adt.Layout, error) {
	if l, ok := c.Layouts[name]; ok {
		return l, nil
	}
	if l, ok := adt.LookupPreset(name); ok {
		return l, nil
	}
	return adt.Layout{}, fmt.Errorf("unknown layout %q", name)
}

// LayoutNames returns all resolvable layout names in sorted order
func (c *Config) LayoutNames() []string {
	names := adt.PresetNames()
	for name := range c.Layouts {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	if err := os.WriteFile(configPath, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// findConfigFile looks for config files in standard locations
func findConfigFile() string {
	locations := []string{
		".adt.yaml",
		".adt.yml",
	}

	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".adt.yaml"),
			filepath.Join(home, ".adt.yml"),
		)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		locations = append(locations,
			filepath.Join(dir, "adt", "config.yaml"),
			filepath.Join(dir, "adt", "config.yml"),
		)
	}

	for _, path := range locations {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GenerateExampleConfig creates an example configuration file
func GenerateExampleConfig() string {
	config := DefaultConfig()
	config.LogLevel = "info"
	config.Layouts = map[string]adt.Layout{
		"csv": {Columns: 10, Separator: ",", SeparatorAtWrap: true},
	}

	data, _ := yaml.Marshal(config)

	header := `# adt configuration file
# Place this file at ~/.adt.yaml or in the adt directory under your user config dir
# Built-in layouts: small-int, wide-int, long-int, string

`

	return header + string(data)
}
