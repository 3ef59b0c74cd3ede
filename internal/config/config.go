// Package config provides configuration types and defaults for modcn.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration options for modcn.
type Config struct {
	// DBPath is the SQLite file backing drafts and presets.
	DBPath string `mapstructure:"db_path"`

	// PersistDebounce is the quiet period before a mutated draft is
	// written durably.
	PersistDebounce time.Duration `mapstructure:"persist_debounce"`

	// PreviewDebounce is the quiet period before a changed draft is
	// re-rendered to CSS.
	PreviewDebounce time.Duration `mapstructure:"preview_debounce"`

	// PreviewCSSPath, when set, mirrors the preview stylesheet to a
	// file on every resynthesis.
	PreviewCSSPath string `mapstructure:"preview_css_path"`

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the built-in defaults. DBPath lands under the
// user config dir so drafts survive across working directories.
func DefaultConfig() Config {
	return Config{
		DBPath:          filepath.Join(baseDir(), "modcn.db"),
		PersistDebounce: 500 * time.Millisecond,
		PreviewDebounce: 150 * time.Millisecond,
		LogLevel:        "info",
	}
}

func baseDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "modcn")
	}
	return ".modcn"
}

// Load reads configuration from an optional file plus MODCN_* env
// variables, layered over the defaults. An empty path falls back to
// config.yaml in the user config dir; a missing file is not an error,
// but an explicit path that fails to parse is.
func Load(path string) (Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("persist_debounce", defaults.PersistDebounce)
	v.SetDefault("preview_debounce", defaults.PreviewDebounce)
	v.SetDefault("preview_css_path", defaults.PreviewCSSPath)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("MODCN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(baseDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.PersistDebounce <= 0 {
		cfg.PersistDebounce = defaults.PersistDebounce
	}
	if cfg.PreviewDebounce <= 0 {
		cfg.PreviewDebounce = defaults.PreviewDebounce
	}
	return cfg, nil
}
