package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Breakpoint BreakpointConfig `mapstructure:"breakpoint"`
	Overlay    OverlayConfig    `mapstructure:"overlay"`
	Content    ContentConfig    `mapstructure:"content"`
	Log        LogConfig        `mapstructure:"log"`
	Site       SiteConfig       `mapstructure:"site"`
}

// BreakpointConfig holds the compact/wide threshold.
type BreakpointConfig struct {
	CompactBelow int `mapstructure:"compact_below"` // widths below this (cells) use the overlay
}

// OverlayConfig holds overlay panel settings.
type OverlayConfig struct {
	Transition time.Duration `mapstructure:"transition"`
	PanelWidth int           `mapstructure:"panel_width"`
}

// ContentConfig holds page source settings.
type ContentConfig struct {
	Dir   string `mapstructure:"dir"` // empty = pages compiled into the binary
	Watch bool   `mapstructure:"watch"`
	Style string `mapstructure:"style"` // glamour style name
}

// LogConfig holds logger settings.
type LogConfig struct {
	File    string `mapstructure:"file"`
	Verbose bool   `mapstructure:"verbose"`
}

// SiteConfig holds navigation settings.
type SiteConfig struct {
	StartPath string `mapstructure:"start_path"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"content-dir": "content.dir",
	"watch":       "content.watch",
	"log-file":    "log.file",
	"verbose":     "log.verbose",
}

// Load reads configuration from defaults, an optional file, env and flags, in
// increasing priority. Env overrides use prefix VMLSITE_ (VMLSITE_OVERLAY_PANEL_WIDTH).
// An explicit path must exist; the default location is optional.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("breakpoint.compact_below", 100)
	v.SetDefault("overlay.transition", 150*time.Millisecond)
	v.SetDefault("overlay.panel_width", 34)
	v.SetDefault("content.dir", "")
	v.SetDefault("content.watch", false)
	v.SetDefault("content.style", "dark")
	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)
	v.SetDefault("site.start_path", "/")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "vmlsite"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VMLSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the shell cannot work with.
func (c Config) Validate() error {
	if c.Breakpoint.CompactBelow <= 0 {
		return fmt.Errorf("breakpoint.compact_below must be positive, got %d", c.Breakpoint.CompactBelow)
	}
	if c.Overlay.Transition < 0 {
		return fmt.Errorf("overlay.transition must not be negative, got %s", c.Overlay.Transition)
	}
	if c.Overlay.PanelWidth < 16 {
		return fmt.Errorf("overlay.panel_width must be at least 16, got %d", c.Overlay.PanelWidth)
	}
	if c.Content.Watch && c.Content.Dir == "" {
		return errors.New("content.watch needs content.dir")
	}
	return nil
}
