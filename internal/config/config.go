package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. RAYMEASURE_WINDOW_WIDTH
const EnvPrefix = "RAYMEASURE"

// Config holds the viewer settings
type Config struct {
	Window   WindowConfig   `yaml:"window" mapstructure:"window"`
	Measure  MeasureConfig  `yaml:"measure" mapstructure:"measure"`
	Label    LabelConfig    `yaml:"label" mapstructure:"label"`
	Watch    WatchConfig    `yaml:"watch" mapstructure:"watch"`
	Snapshot SnapshotConfig `yaml:"snapshot" mapstructure:"snapshot"`
	Verbose  bool           `yaml:"verbose" mapstructure:"verbose"`
}

// WindowConfig sizes the interactive viewers
type WindowConfig struct {
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
	FPS    int `yaml:"fps" mapstructure:"fps"`
}

// MeasureConfig selects the key that is held to measure
type MeasureConfig struct {
	Modifier string `yaml:"modifier" mapstructure:"modifier"`
}

// LabelConfig styles the distance labels
type LabelConfig struct {
	FontSize int `yaml:"font_size" mapstructure:"font_size"`
}

// WatchConfig controls reloading when the source file changes
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// SnapshotConfig sizes headless PNG output
type SnapshotConfig struct {
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// Modifier keys accepted for measure.modifier
var modifiers = map[string]bool{
	"control": true,
	"shift":   true,
	"alt":     true,
	"super":   true,
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window:   WindowConfig{Width: 1400, Height: 900, FPS: 60},
		Measure:  MeasureConfig{Modifier: "control"},
		Label:    LabelConfig{FontSize: 14},
		Watch:    WatchConfig{Enabled: true, Debounce: 500 * time.Millisecond},
		Snapshot: SnapshotConfig{Width: 800, Height: 600},
	}
}

// SetDefaults registers the built-in settings on v and enables environment
// overrides with the RAYMEASURE prefix.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.fps", d.Window.FPS)
	v.SetDefault("measure.modifier", d.Measure.Modifier)
	v.SetDefault("label.font_size", d.Label.FontSize)
	v.SetDefault("watch.enabled", d.Watch.Enabled)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("snapshot.width", d.Snapshot.Width)
	v.SetDefault("snapshot.height", d.Snapshot.Height)
	v.SetDefault("verbose", d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the settings from v, falling back to defaults for missing keys
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Measure.Modifier = strings.ToLower(strings.TrimSpace(cfg.Measure.Modifier))

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.FPS <= 0 {
		return fmt.Errorf("window fps must be positive, got %d", cfg.Window.FPS)
	}
	if !modifiers[cfg.Measure.Modifier] {
		return fmt.Errorf("unsupported measure modifier %q", cfg.Measure.Modifier)
	}
	if cfg.Label.FontSize < 6 {
		return fmt.Errorf("label font size must be at least 6, got %d", cfg.Label.FontSize)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce cannot be negative")
	}
	if cfg.Snapshot.Width <= 0 || cfg.Snapshot.Height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", cfg.Snapshot.Width, cfg.Snapshot.Height)
	}
	return nil
}
