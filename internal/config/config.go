// Package config loads the optional qsim.yaml defaults file. CLI flags
// always win over a config value; this package only supplies the
// fallback when a flag was left at its zero value.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a qsim.yaml file may override.
type Config struct {
	DefaultShots   int     `yaml:"default_shots"`
	DefaultWorkers int     `yaml:"default_workers"`
	MitigateP01    float64 `yaml:"mitigate_p01"`
	MitigateP10    float64 `yaml:"mitigate_p10"`
}

// Default returns the built-in defaults used when no config file is
// present.
func Default() Config {
	return Config{DefaultShots: 1, DefaultWorkers: 1}
}

// Load reads and parses a qsim.yaml file, starting from Default() so an
// incomplete file only overrides the fields it sets.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses yaml from r into a Config seeded with Default().
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional reads path if it exists, returning Default() silently
// when it does not — qsim.yaml is an optional convenience, not a
// required file.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
