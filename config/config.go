package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for friendlyenum.
type Config struct {
	Header   HeaderConfig   `yaml:"header" toml:"header"`
	Generate GenerateConfig `yaml:"generate" toml:"generate"`
	Walk     WalkConfig     `yaml:"walk" toml:"walk"`
	State    StateConfig    `yaml:"state" toml:"state"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// HeaderConfig controls how headers are recognised and parsed.
type HeaderConfig struct {
	Extension       string   `yaml:"extension" toml:"extension"`
	SkipUnmatched   bool     `yaml:"skip_unmatched" toml:"skip_unmatched"` // Skip, not just report, paths without Extension
	UnknownSynonyms []string `yaml:"unknown_synonyms" toml:"unknown_synonyms"`
	Strict          bool     `yaml:"strict" toml:"strict"`
}

// GenerateConfig controls the implementation file.
type GenerateConfig struct {
	ImplementationExtension string   `yaml:"implementation_extension" toml:"implementation_extension"`
	SystemIncludes          []string `yaml:"system_includes" toml:"system_includes"`
}

// WalkConfig holds the patterns used when a directory is passed as an argument.
type WalkConfig struct {
	Includes []string `yaml:"includes" toml:"includes"`
	Excludes []string `yaml:"excludes" toml:"excludes"`
}

// StateConfig holds generation state configuration.
type StateConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"` // Relative to the root directory
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"` // "info", "debug", "trace"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Header: HeaderConfig{
			Extension:       ".h",
			SkipUnmatched:   false,
			UnknownSynonyms: []string{"Unknown", "Undefined", "Error"},
			Strict:          false,
		},
		Generate: GenerateConfig{
			ImplementationExtension: ".cpp",
			SystemIncludes:          []string{"map", "sstream", "iostream"},
		},
		Walk: WalkConfig{
			Includes: []string{"**/*.h"},
			Excludes: []string{"**/.git/**", "**/build/**", "**/out/**", "**/vendor/**", "**/third_party/**"},
		},
		State: StateConfig{
			Enabled: false,
			Path:    filepath.Join(".friendlyenum", "state.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	candidates := []string{
		filepath.Join(dir, "friendlyenum.yaml"),
		filepath.Join(dir, ".friendlyenum", "config.yaml"),
		filepath.Join(dir, "friendlyenum.toml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML or TOML file, chosen by extension.
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StateDBPath returns the path to the generation state database.
func (c *Config) StateDBPath(rootDir string) string {
	if filepath.IsAbs(c.State.Path) {
		return c.State.Path
	}
	return filepath.Join(rootDir, c.State.Path)
}

// EnsureStateDir ensures the directory holding the state database exists.
func (c *Config) EnsureStateDir(rootDir string) error {
	return os.MkdirAll(filepath.Dir(c.StateDBPath(rootDir)), 0755)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
