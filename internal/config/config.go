// Package config loads recipedeck settings from defaults, an optional YAML
// file and the environment, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "recipedeck.yaml"

// Env var names.
const (
	EnvLogLevel = "RECIPEDECK_LOG_LEVEL"
	EnvLogFile  = "RECIPEDECK_LOG_FILE"
	EnvLocale   = "RECIPEDECK_LOCALE"
	EnvFilter   = "RECIPEDECK_FILTER"
	EnvSort     = "RECIPEDECK_SORT"
)

// Config holds all recipedeck settings.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Browse BrowseConfig `yaml:"browse"`
}

// LogConfig controls where and how much the application logs.
type LogConfig struct {
	Level string `yaml:"level"`
	// File is the log destination; "stderr" logs to the console.
	File string `yaml:"file"`
}

// BrowseConfig holds the starting selection and collation locale.
type BrowseConfig struct {
	Locale string `yaml:"locale"`
	Filter string `yaml:"filter"`
	Sort   string `yaml:"sort"`
}

// Default returns the built-in settings.
func Default() *Config {
	sel := domain.DefaultSelection()
	return &Config{
		Log: LogConfig{
			Level: logger.LevelNormal.String(),
			File:  ".recipedeck-logs/recipedeck.log",
		},
		Browse: BrowseConfig{
			Locale: "en",
			Filter: string(sel.Filter),
			Sort:   string(sel.Sort),
		},
	}
}

// Load builds the configuration. A missing file is not an error when path
// is DefaultPath or empty; an explicitly named file must exist. Values are
// not validated here so that callers can layer flag overrides first; call
// Validate once the final values are in place.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != "" && path != DefaultPath
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no file, keep defaults
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Log.File = getEnv(EnvLogFile, c.Log.File)
	c.Browse.Locale = getEnv(EnvLocale, c.Browse.Locale)
	c.Browse.Filter = getEnv(EnvFilter, c.Browse.Filter)
	c.Browse.Sort = getEnv(EnvSort, c.Browse.Sort)
}

// Validate checks the values that can be wrong. Unknown filter and sort
// tags are allowed: they mean "no filtering" and "store order".
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := language.Parse(c.Browse.Locale); err != nil {
		return fmt.Errorf("browse.locale %q: %w", c.Browse.Locale, err)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logger.Level {
	l, _ := logger.ParseLevel(c.Log.Level)
	return l
}

// Language returns the parsed collation locale, English when invalid.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Browse.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Selection returns the configured starting selection.
func (c *Config) Selection() domain.Selection {
	return domain.Selection{
		Filter: domain.Filter(c.Browse.Filter),
		Sort:   domain.Sort(c.Browse.Sort),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
