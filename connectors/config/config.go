package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	dconfig "ev-metrics/domain/config"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "./config.yml"

// Load parses the YAML configuration file at path and fills unset fields
// with defaults.
func Load(path string) (*dconfig.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c dconfig.Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return c.WithDefaults(), nil
}

// Resolve loads the file named by CONFIG_PATH (or DefaultPath). A missing
// default file yields the built-in defaults; a missing explicit file is an error.
func Resolve() (*dconfig.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	c, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return dconfig.Default(), nil
		}
		return nil, err
	}
	return c, nil
}
