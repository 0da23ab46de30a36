package config

import (
	"flag"
)

// Flags holds command-line overrides; only flags set explicitly are applied
type Flags struct {
	fs *flag.FlagSet

	ConfigPath string
	Left       string
	Right      string
	Debug      bool
	Mute       bool
	Fullscreen bool
}

// RegisterFlags defines the shared flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/vi-pong/config.toml)")
	fs.StringVar(&f.Left, "p1", "", "Left player name")
	fs.StringVar(&f.Right, "p2", "", "Right player name")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug log to logs/")
	fs.BoolVar(&f.Mute, "mute", false, "Disable sound")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Request fullscreen (windowed frontend)")
	return f
}

// Apply copies explicitly set flags over cfg
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "p1":
			cfg.Players.Left = f.Left
		case "p2":
			cfg.Players.Right = f.Right
		case "debug":
			cfg.Debug = f.Debug
		case "mute":
			if f.Mute {
				cfg.Audio.Enabled = false
			}
		case "fullscreen":
			cfg.Display.Fullscreen = f.Fullscreen
		}
	})
}

// Resolve loads the file named by -config or the default path, then applies
// environment and flag overrides and validates the result
func (f *Flags) Resolve(getenv func(string) string) (*Config, error) {
	path, explicit := f.ConfigPath, f.ConfigPath != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg, err := Load(path, explicit)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(getenv)
	f.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
