// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv  = "CHRONOPING"
	configName = "chronoping"
)

// Config represents the global config object struct
type Config struct {
	Log struct {
		LevelName string     `fig:"level" default:"debug"`
		Level     slog.Level `fig:"-"`
		Format    string     `fig:"format" default:"text"`
		Schema    string     `fig:"schema" default:"ecs"`
		DontLogIP bool       `fig:"dont_log_ip"`
	} `fig:"log"`

	Server struct {
		BindAddress string        `fig:"address" default:"127.0.0.1"`
		BindPort    string        `fig:"port" default:"3000"`
		Timeout     time.Duration `fig:"timeout" default:"15s"`
	} `fig:"server"`
}

// New returns a new Config. It tries to load the config from the default location
// and falls back to the defaults or environment variables if no config file
// was found.
func New() (*Config, error) {
	conf := new(Config)

	configPath, configFile := findConfigFile()
	if configPath != "" && configFile != "" {
		return NewFromFile(configPath, configFile)
	}

	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.parseLogLevel()
}

// NewFromFile returns a new Config from the given path and file.
func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	if _, err := os.Stat(filepath.Join(path, file)); err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}

	if err := fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, conf.parseLogLevel()
}

// parseLogLevel resolves the configured level name (e.g. "debug", "info",
// "warn+2") into a slog.Level.
func (c *Config) parseLogLevel() error {
	if err := c.Log.Level.UnmarshalText([]byte(c.Log.LevelName)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.LevelName, err)
	}
	return nil
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	for _, ext := range []string{"toml", "yaml", "yml", "json"} {
		path := filepath.Join(homedir, ".config", configName, configName+"."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
