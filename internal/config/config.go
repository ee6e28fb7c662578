// Package config loads user preferences for the reminders shells.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultPath is where the config file is looked for when no --config flag
// is given.
const DefaultPath = "~/.reminders.yaml"

// EnvPrefix namespaces environment overrides, e.g. REMINDERS_THEME=neon or
// REMINDERS_LOG_FILE=~/reminders.log.
const EnvPrefix = "REMINDERS"

// LogConfig controls the optional debug log.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// File receives JSON log lines. Empty disables logging.
	File string `mapstructure:"file" yaml:"file"`
}

// Config is the top-level configuration.
type Config struct {
	// Theme is one of classic, neon or mono.
	Theme string `mapstructure:"theme" yaml:"theme"`

	// Confirm asks "is it correct? y/n" after every answer in the menu.
	Confirm bool `mapstructure:"confirm" yaml:"confirm"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Theme:   "classic",
		Confirm: true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path, layering REMINDERS_* environment
// variables on top. A missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path: %w", err)
	}

	d := Defaults()
	v := viper.New()
	v.SetConfigFile(expanded)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("confirm", d.Confirm)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", expanded, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Log.File != "" {
		if cfg.Log.File, err = homedir.Expand(cfg.Log.File); err != nil {
			return nil, fmt.Errorf("expand log file: %w", err)
		}
	}
	return cfg, nil
}
