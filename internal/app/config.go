package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Precision       int    `yaml:"precision"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	BuildDir        string `yaml:"build_dir"`
	DefaultFunction string `yaml:"default_function"`
}

func DefaultConfig() Config {
	return Config{
		Precision:       6,
		CacheTTLSeconds: 300,
		BuildDir:        "build",
		DefaultFunction: "f",
	}
}

// LoadConfig reads the YAML config at path. A missing file yields the
// defaults; out-of-range values are clamped back to sane ones.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Precision <= 0 {
		cfg.Precision = 6
	}
	if cfg.Precision > 17 {
		cfg.Precision = 17
	}
	if cfg.CacheTTLSeconds < 0 {
		cfg.CacheTTLSeconds = 0
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = "build"
	}
	if cfg.DefaultFunction == "" {
		cfg.DefaultFunction = "f"
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "glimpse", "config.yml")
}
