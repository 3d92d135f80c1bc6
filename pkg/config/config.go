// Package config loads the inflector settings from a TOML or YAML file and
// the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfig   = "INFLECTOR_CONFIG"
	EnvAcronyms = "INFLECTOR_ACRONYMS"
	EnvLogLevel = "INFLECTOR_LOG_LEVEL"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	// Acronyms rendered upper case by acronym aware conversions, e.g. ["API", "URL"]
	Acronyms []string `toml:"acronyms" yaml:"acronyms"`
	// LogLevel one of debug, info, warn, error
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Load reads the file at path, picking the decoder by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	cfg := &Config{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q of %s", ext, path)
	}

	return cfg, nil
}

// FromEnv loads the file named by INFLECTOR_CONFIG when set, then applies
// INFLECTOR_ACRONYMS (comma separated) and INFLECTOR_LOG_LEVEL on top.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv(EnvConfig); path != "" {
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	cfg.ApplyEnv()

	return cfg, nil
}

func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvAcronyms); ok {
		c.Acronyms = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// AcronymsCSV returns the acronyms in the comma separated form the registry parses.
func (c *Config) AcronymsCSV() string {
	return strings.Join(c.Acronyms, ",")
}
