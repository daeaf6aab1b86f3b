package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/daydrag/internal/gesture"
	"github.com/depeter/daydrag/internal/grid"
	"github.com/depeter/daydrag/internal/timeline"
)

var (
	ErrInvalidInput  = errors.New("config: input timings must be positive")
	ErrInvalidWindow = errors.New("config: window size must be positive")
)

type Config struct {
	Debug      bool             `toml:"debug"`
	Timeline   TimelineConfig   `toml:"timeline"`
	AutoScroll AutoScrollConfig `toml:"autoscroll"`
	Input      InputConfig      `toml:"input"`
	UI         UIConfig         `toml:"ui"`
	Keys       KeyConfig        `toml:"keys"`
}

type TimelineConfig struct {
	Rows          int     `toml:"rows"`
	RowHeight     float64 `toml:"row_height"`
	VisibleHeight float64 `toml:"visible_height"`
	Width         float64 `toml:"width"`
	MinHeight     float64 `toml:"min_height"`
	DefaultHeight float64 `toml:"default_height"`
	DefaultY      float64 `toml:"default_y"`
}

type AutoScrollConfig struct {
	TriggerBand   float64 `toml:"trigger_band"`
	SnapTolerance float64 `toml:"snap_tolerance"`
	// AnimSpeed is the fraction of the remaining distance covered per tick.
	AnimSpeed float64 `toml:"anim_speed"`
}

type InputConfig struct {
	LongPressMS int     `toml:"long_press_ms"`
	TapSlop     float64 `toml:"tap_slop"`
	TPS         int     `toml:"tps"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type KeyConfig struct {
	Fullscreen string `toml:"fullscreen"`
	DebugLog   string `toml:"debug_log"`
}

func DefaultConfig() *Config {
	tc := timeline.DefaultConfig()
	return &Config{
		Timeline: TimelineConfig{
			Rows:          tc.Grid.Rows,
			RowHeight:     tc.Grid.RowHeight,
			VisibleHeight: tc.VisibleHeight,
			Width:         390,
			MinHeight:     tc.MinHeight,
			DefaultHeight: tc.DefaultHeight,
			DefaultY:      tc.DefaultY,
		},
		AutoScroll: AutoScrollConfig{
			TriggerBand:   tc.AutoScroll.TriggerBand,
			SnapTolerance: tc.AutoScroll.SnapTolerance,
			AnimSpeed:     0.12,
		},
		Input: InputConfig{
			LongPressMS: 1000,
			TapSlop:     6,
			TPS:         60,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      390,
			Height:     760,
		},
		Keys: KeyConfig{
			Fullscreen: "F",
			DebugLog:   "D",
		},
	}
}

// TimelineConfig converts the file settings into the timeline's own config.
func (c *Config) TimelineConfig() timeline.Config {
	return timeline.Config{
		Grid:          grid.New(c.Timeline.Rows, c.Timeline.RowHeight),
		VisibleHeight: c.Timeline.VisibleHeight,
		MinHeight:     c.Timeline.MinHeight,
		DefaultHeight: c.Timeline.DefaultHeight,
		DefaultY:      c.Timeline.DefaultY,
		HandleHeight:  timeline.DefaultHandleHeight,
		AutoScroll: timeline.AutoScrollConfig{
			TriggerBand:   c.AutoScroll.TriggerBand,
			SnapTolerance: c.AutoScroll.SnapTolerance,
		},
	}
}

// LongPress returns the hold duration that selects the block.
func (c *Config) LongPress() time.Duration {
	return time.Duration(c.Input.LongPressMS) * time.Millisecond
}

// GestureConfig returns the pointer recognizer settings.
func (c *Config) GestureConfig() gesture.Config {
	return gesture.Config{LongPress: c.LongPress(), Slop: c.Input.TapSlop}
}

func (c *Config) Validate() error {
	if err := c.TimelineConfig().Validate(); err != nil {
		return err
	}
	if c.Timeline.Width <= 0 {
		return fmt.Errorf("config: timeline width must be positive, got %v", c.Timeline.Width)
	}
	if c.Input.LongPressMS <= 0 || c.Input.TPS <= 0 {
		return fmt.Errorf("%w (long_press_ms=%d, tps=%d)", ErrInvalidInput, c.Input.LongPressMS, c.Input.TPS)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w (width=%d, height=%d)", ErrInvalidWindow, c.UI.Width, c.UI.Height)
	}
	if c.AutoScroll.AnimSpeed <= 0 || c.AutoScroll.AnimSpeed > 1 {
		return fmt.Errorf("config: anim_speed must be in (0, 1], got %v", c.AutoScroll.AnimSpeed)
	}
	return nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "daydrag"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not exist.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Encode(f)
}

// Encode writes the config as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
