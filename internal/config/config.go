package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

const (
	// YAMLFile is the project-local YAML configuration file.
	YAMLFile = ".kopen.yaml"

	// TOMLFile is the project-local TOML configuration file, read when no
	// YAML file exists.
	TOMLFile = ".kopen.toml"

	// DefaultKicad is the launcher binary looked up in PATH.
	DefaultKicad = "kicad"

	// DefaultTimeout is the search budget.
	DefaultTimeout = time.Second
)

// Config is the main configuration structure for kopen.
type Config struct {
	// Kicad is the binary started with the resolved project.
	Kicad string `yaml:"kicad,omitempty" toml:"kicad,omitempty"`

	// Timeout is the search budget as a Go duration string ("1s", "500ms").
	Timeout string `yaml:"timeout,omitempty" toml:"timeout,omitempty"`

	// Strict fails a search that skipped unreadable entries.
	Strict bool `yaml:"strict,omitempty" toml:"strict,omitempty"`

	// Pick prompts for a project when several are found on a terminal.
	Pick bool `yaml:"pick,omitempty" toml:"pick,omitempty"`

	// Theme is the prompt theme name.
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Kicad:   DefaultKicad,
		Timeout: DefaultTimeout.String(),
	}
}

// LoadConfigFn is swapped in tests.
var LoadConfigFn = loadConfig

// loadConfig reads the configuration with the following priority:
// environment variables, then .kopen.yaml, then .kopen.toml, then defaults.
func loadConfig() (*Config, error) {
	cfg, err := readConfigFile()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// readConfigFile returns nil, nil when neither file exists.
func readConfigFile() (*Config, error) {
	data, err := os.ReadFile(YAMLFile)
	if err == nil {
		cfg, err := decodeYAML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", YAMLFile, err)
		}
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	data, err = os.ReadFile(TOMLFile)
	if err == nil {
		cfg, err := decodeTOML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", TOMLFile, err)
		}
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	return nil, nil
}

func decodeYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

func decodeTOML(data []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("KOPEN_KICAD")); v != "" {
		cfg.Kicad = v
	}
	if v := strings.TrimSpace(os.Getenv("KOPEN_TIMEOUT")); v != "" {
		cfg.Timeout = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Kicad == "" {
		cfg.Kicad = DefaultKicad
	}
	if cfg.Timeout == "" {
		cfg.Timeout = DefaultTimeout.String()
	}
}

// SearchTimeout returns the parsed timeout, falling back to DefaultTimeout
// when the value is empty or invalid. Validate reports invalid values.
func (c *Config) SearchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}
