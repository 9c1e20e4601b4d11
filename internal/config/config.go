// Package config loads the astscan YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no --config flag is given; it is fine for
// it to be absent.
const DefaultPath = ".astscan.yaml"

// Config is the tool configuration. Zero values fall back to engine
// defaults at wiring time.
type Config struct {
	// Engine is the default analysis engine when --engine is not given.
	Engine string `yaml:"engine"`

	PMD PMDConfig `yaml:"pmd"`
}

// PMDConfig configures the PMD engine adapter.
type PMDConfig struct {
	// Binary is the PMD executable name or path. Empty means "pmd" on PATH.
	Binary string `yaml:"binary"`

	// MaxOutputBytes caps how much AST XML is buffered from the engine.
	MaxOutputBytes int64 `yaml:"max_output_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Engine: "pmd"}
}

// Load reads path over the defaults. An explicit path that does not exist
// is an error; a missing DefaultPath is not.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
