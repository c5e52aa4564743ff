package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const defaultAPIURL = "http://localhost:5000"

// Config is the on-disk client configuration.
type Config struct {
	APIURL   string   `toml:"api_url"`
	Timeout  duration `toml:"timeout"`
	LogLevel string   `toml:"log_level"`
}

// duration lets the config file say timeout = "10s".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "records", "config.toml"), nil
}

// loadConfig reads path (or the default location) and applies
// RECORDS_API_URL on top. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		APIURL:   defaultAPIURL,
		Timeout:  duration(10 * time.Second),
		LogLevel: "warn",
	}

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || explicit {
				return Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("RECORDS_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = duration(10 * time.Second)
	}

	return cfg, nil
}
