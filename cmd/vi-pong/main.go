package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
)

func main() {
	// Centralized crash handling for the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	colorFlag := flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	flag.Parse()

	cfg, err := flags.Resolve(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(2)
	}
	if *colorFlag != "" {
		cfg.Display.Color = *colorFlag
	}

	logFile := core.SetupLogging(cfg.Debug, "vi-pong")
	if logFile != nil {
		defer logFile.Close()
	}

	keymap := input.DefaultKeyMap()
	if err := keymap.Apply(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(2)
	}

	render.ParseColorMode(cfg.Display.Color).Apply()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbForeground))

	sounds := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate))
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}

	if cfg.Display.Fullscreen || cfg.Display.LockLandscape {
		log.Printf("fullscreen and orientation requests not applicable to the terminal, ignoring")
	}

	s := newSession(screen, cfg, keymap, sounds)
	s.start()
	defer s.stop()

	run(s)
}

// run is the frame loop: input from a poller goroutine, rendering after each tick
func run(s *session) {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			// Nil event means the screen was finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !s.handleEvent(ev, time.Now()) {
				return
			}

		case <-s.updates():
			s.render()

		case <-s.loopDone:
			s.loopFinished()

		case now := <-frameTicker.C:
			s.frame(now)
		}
	}
}
