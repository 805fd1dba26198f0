package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadwood/audio"
	"github.com/lixenwraith/deadwood/config"
	"github.com/lixenwraith/deadwood/core"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/input"
	"github.com/lixenwraith/deadwood/render"
	"github.com/lixenwraith/deadwood/scene"
	"github.com/lixenwraith/deadwood/service"
	"github.com/lixenwraith/deadwood/status"
	"github.com/lixenwraith/deadwood/systems"
)

// runPlay runs an interactive session until the player quits
func runPlay(cfg config.Config, logger zerolog.Logger) error {
	hub := service.NewHub()
	screenSvc := render.NewScreenService(nil)
	audioSvc := audio.NewService(nil, logger)
	for _, svc := range []service.Service{screenSvc, audioSvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	audioCfg := audio.Config{
		Enabled:       cfg.Audio.Enabled,
		MasterVolume:  cfg.Audio.MasterVolume,
		AmbientVolume: cfg.Audio.AmbientVolume,
	}
	if err := hub.InitAll(audioCfg); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer hub.StopAll()

	// Dependency Injection: crash reports restore the terminal first
	core.SetCleanup(hub.StopAll)
	defer core.SetCleanup(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash("GAME", r)
		}
	}()

	screen := screenSvc.Screen()
	graph := scene.NewGraph()
	reg := status.NewRegistry()
	renderer := render.NewRenderer(screen, graph, reg, nil)
	keyboard := input.NewKeyboard(engine.NewMonotonicTimeProvider(), graph)
	sounds := service.NewSafeAudio(audioSvc, func(cue service.Cue, r any) {
		logger.Error().Str("cue", cue.String()).Interface("panic", r).Msg("audio disabled after panic")
	})

	ctx := engine.NewGameContext(engine.Options{
		Seed:   resolveSeed(cfg.Seed),
		Status: reg,
		Services: engine.Services{
			Visuals:   graph,
			Input:     keyboard,
			Audio:     sounds,
			Display:   renderer,
			Presenter: renderer,
		},
		Logger: logger,
	})
	systems.Register(ctx)

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	// Input polling runs on its own goroutine as it blocks on the terminal
	core.Go("EVENT POLLER", func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			intent := keyboard.Process(ev)
			switch intent.Type {
			case input.IntentQuit:
				logger.Info().
					Int("kills", ctx.Session.Kills).
					Dur("survived", ctx.Session.Survived(ctx.Now())).
					Msg("player quit")
				return nil
			case input.IntentPause:
				paused := ctx.TogglePause()
				if cfg.Audio.AmbientVolume > 0 {
					audioSvc.SetAmbient(!paused)
				}
				logger.Debug().Bool("paused", paused).Msg("pause toggled")
			case input.IntentResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			// During pause: skip game updates but still render
			if ctx.Clock.IsPaused() {
				renderer.Present()
				continue
			}
			ctx.Frame()
		}
	}
}
