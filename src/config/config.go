package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// defaultConfigFiles are tried in order when no path is given.
var defaultConfigFiles = []string{
	".lintcompose.yml",
	".lintcompose.yaml",
	".lintcompose.toml",
}

// Config is the top-level lintcompose configuration.
type Config struct {
	Version int `mapstructure:"version"`

	// Root is where auto-detection starts. Relative paths resolve against
	// the config file's directory.
	Root string `mapstructure:"root"`

	ComposeConfig `mapstructure:",squash"`

	// File is the path the config was read from, empty for defaults.
	File string `mapstructure:"-"`
}

// Load reads configuration from a YAML or TOML file.
// If path is empty, it tries the default files in the working directory.
// Returns sensible defaults if no file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg, err := Parse(data, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.File = path
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	return cfg, nil
}

// Format names a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes raw config data of the given format.
func Parse(data []byte, format Format) (*Config, error) {
	raw := map[string]any{}
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	}

	cfg := defaults()
	if err := decode(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Version:       1,
		ComposeConfig: DefaultComposeConfig(),
	}
}
