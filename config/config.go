// Package config loads player, match, key, audio and display settings
// from a TOML file, environment variables and command-line flags, in that order
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/pong"
)

// Config is the complete runtime configuration
type Config struct {
	Debug   bool                `toml:"debug"`
	Players PlayersConfig       `toml:"players"`
	Match   MatchConfig         `toml:"match"`
	Keys    map[string][]string `toml:"keys"`
	Audio   AudioConfig         `toml:"audio"`
	Display DisplayConfig       `toml:"display"`
	Input   InputConfig         `toml:"input"`
}

// PlayersConfig holds display names
type PlayersConfig struct {
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

// MatchConfig holds rules and the initial court size
type MatchConfig struct {
	WinScore int     `toml:"win_score"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0 to 1.0
	SampleRate   int     `toml:"sample_rate"`
}

// DisplayConfig holds presentation settings
type DisplayConfig struct {
	Fullscreen    bool   `toml:"fullscreen"`
	LockLandscape bool   `toml:"lock_landscape"`
	Color         string `toml:"color"` // auto, truecolor, 256
}

// InputConfig holds key handling settings
type InputConfig struct {
	HoldTimeoutMS int `toml:"hold_timeout_ms"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Players: PlayersConfig{
			Left:  constants.DefaultLeftName,
			Right: constants.DefaultRightName,
		},
		Match: MatchConfig{
			WinScore: constants.WinScore,
			Width:    constants.CourtWidth,
			Height:   constants.CourtHeight,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constants.AudioSampleRate,
		},
		Display: DisplayConfig{
			Color: "auto",
		},
		Input: InputConfig{
			HoldTimeoutMS: int(constants.KeyHoldTimeout / time.Millisecond),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/vi-pong/config.toml, falling back to ~/.config
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vi-pong", "config.toml")
}

// Load reads path over the defaults
// A missing file is an error only when explicit is set
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from VI_PONG_* environment variables
// Malformed values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("VI_PONG_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v := getenv("VI_PONG_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}

	if v := getenv("VI_PONG_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// Validate rejects unusable values and fills blank names with defaults
func (c *Config) Validate() error {
	c.Players.Left = strings.TrimSpace(c.Players.Left)
	c.Players.Right = strings.TrimSpace(c.Players.Right)
	if c.Players.Left == "" {
		c.Players.Left = constants.DefaultLeftName
	}
	if c.Players.Right == "" {
		c.Players.Right = constants.DefaultRightName
	}

	if c.Match.Width <= 0 || c.Match.Height <= 0 {
		return fmt.Errorf("match: court size must be positive, got %vx%v", c.Match.Width, c.Match.Height)
	}
	if c.Match.WinScore < 1 {
		return fmt.Errorf("match: win_score must be at least 1, got %d", c.Match.WinScore)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio: master_volume must be within [0, 1], got %v", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio: sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Input.HoldTimeoutMS < 0 {
		return fmt.Errorf("input: hold_timeout_ms must not be negative, got %d", c.Input.HoldTimeoutMS)
	}
	switch c.Display.Color {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("display: unknown color mode %q", c.Display.Color)
	}
	return nil
}

// Rules returns the simulation rules derived from the settings
func (c *Config) Rules() pong.Config {
	mc := pong.DefaultConfig()
	mc.Width = c.Match.Width
	mc.Height = c.Match.Height
	mc.WinScore = c.Match.WinScore
	mc.LeftName = c.Players.Left
	mc.RightName = c.Players.Right
	return mc
}

// HoldTimeout returns the synthesized key release delay
func (c *Config) HoldTimeout() time.Duration {
	return time.Duration(c.Input.HoldTimeoutMS) * time.Millisecond
}
