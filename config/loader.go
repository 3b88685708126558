package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when an explicitly requested config file cannot be read
var ErrNoConfig = errors.New("config file not readable")

// DefaultPaths are searched in order when no path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// LoadAppConfig loads and validates the application configuration. An empty
// path searches DefaultPaths and falls back to Default when none exists.
// Environment variables (see ApplyEnv) override the file.
func LoadAppConfig(path string) (AppConfig, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return AppConfig{}, fmt.Errorf("%w: %s: %v", ErrNoConfig, path, err)
		}
		data = b
	} else {
		for _, p := range DefaultPaths {
			if b, err := os.ReadFile(p); err == nil {
				data = b
				break
			}
		}
	}
	cfg, err := decode(data)
	if err != nil {
		return AppConfig{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, validate(cfg)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (AppConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return AppConfig{}, err
	}
	return cfg, validate(cfg)
}

func decode(data []byte) (AppConfig, error) {
	cfg := Default()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return cfg, nil
}

func validate(cfg AppConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
