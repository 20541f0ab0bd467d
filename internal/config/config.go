// Package config loads the TOML configuration file, creating it with
// defaults on first run.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	DataDir              string `toml:"data_dir"`
	Store                string `toml:"store"`
	Theme                string `toml:"theme"`
	NotificationsEnabled bool   `toml:"notifications_enabled"`
	ReminderLocation     string `toml:"reminder_location"`
}

func defaultConfig(dataDir string) Config {
	return Config{
		DataDir:              dataDir,
		Store:                StoreSnapshot,
		Theme:                "default",
		NotificationsEnabled: false,
		ReminderLocation:     "Local",
	}
}

// LoadOrCreate reads the config at path, writing the defaults there
// first when no file exists.
func LoadOrCreate(path, dataDir string) (Config, error) {
	cfg := defaultConfig(dataDir)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.Store != StoreSnapshot && cfg.Store != StoreSQLite {
		cfg.Store = StoreSnapshot
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.ReminderLocation == "" {
		cfg.ReminderLocation = "Local"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
