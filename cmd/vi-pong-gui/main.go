package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/gui"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/status"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong-gui: %v\n", err)
		os.Exit(2)
	}

	logFile := core.SetupLogging(cfg.Debug, "vi-pong-gui")
	if logFile != nil {
		defer logFile.Close()
	}

	keymap := input.DefaultKeyMap()
	if err := keymap.Apply(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong-gui: %v\n", err)
		os.Exit(2)
	}

	sounds := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate))
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}

	game := engine.NewGame(cfg.Rules(), nil, status.NewRegistry())
	game.RegisterEventHandler(sounds)

	app := gui.NewApp(game, keymap)
	if cfg.Display.Fullscreen {
		app.RequestFullscreen()
	}
	if cfg.Display.LockLandscape {
		app.RequestLandscape()
	}

	ebiten.SetTPS(constants.TicksPerSecond)
	ebiten.SetWindowSize(int(cfg.Match.Width), int(cfg.Match.Height))
	ebiten.SetWindowTitle("vi-pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Printf("game exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "vi-pong-gui: %v\n", err)
		os.Exit(1)
	}
}
