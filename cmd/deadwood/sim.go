package main

import (
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadwood/config"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/input"
	"github.com/lixenwraith/deadwood/scene"
	"github.com/lixenwraith/deadwood/service"
	"github.com/lixenwraith/deadwood/systems"
)

// simEpoch anchors simulated time so summaries do not depend on the wall clock
var simEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Summary is the result of a headless run
type Summary struct {
	Session         string         `json:"session"`
	Seed            uint64         `json:"seed"`
	Frames          int            `json:"frames"`
	Step            string         `json:"step"`
	GameOver        bool           `json:"game_over"`
	Health          int            `json:"health"`
	Kills           int            `json:"kills"`
	Survived        string         `json:"survived"`
	SurvivedSeconds float64        `json:"survived_seconds"`
	EnemiesAlive    int            `json:"enemies_alive"`
	BotSwings       int            `json:"bot_swings"`
	Cues            map[string]int `json:"cues"`
	Metrics         map[string]any `json:"metrics"`
}

// simulate steps a session with the scripted bot until cfg.Sim.Frames or game over
func simulate(cfg config.Config, id uuid.UUID, logger zerolog.Logger) Summary {
	src := engine.NewSteppedTimeProvider(simEpoch, cfg.Sim.Step)
	graph := scene.NewGraph()
	bot := input.NewBot(simEpoch, graph, nil)
	sounds := service.NewRecordingAudio(nil)
	display := &service.RecordingDisplay{}

	ctx := engine.NewGameContext(engine.Options{
		ID:     id,
		Seed:   cfg.Seed,
		Source: src,
		Services: engine.Services{
			Visuals: graph,
			Input:   bot,
			Audio:   sounds,
			Display: display,
		},
		Logger: logger,
	})
	systems.Register(ctx)

	for src.Steps() < cfg.Sim.Frames && !ctx.Session.IsOver() {
		bot.Advance(src.Step())
		ctx.Frame()
	}
	frames := src.Steps()

	survived := ctx.Session.Survived(ctx.Now())
	summary := Summary{
		Session:         ctx.ID.String(),
		Seed:            cfg.Seed,
		Frames:          frames,
		Step:            cfg.Sim.Step.String(),
		GameOver:        ctx.Session.IsOver(),
		Health:          ctx.Session.Player.Health,
		Kills:           ctx.Session.Kills,
		Survived:        engine.FormatSurvival(survived),
		SurvivedSeconds: survived.Seconds(),
		EnemiesAlive:    ctx.World.Enemies.AliveCount(),
		BotSwings:       bot.Swings(),
		Cues:            sounds.Counts(),
		Metrics:         ctx.Status.Snapshot(),
	}
	logger.Info().
		Int("frames", frames).
		Int("kills", summary.Kills).
		Bool("game_over", summary.GameOver).
		Dur("simulated", src.Elapsed()).
		Msg("simulation finished")
	return summary
}

// runSim runs the headless session and writes the summary as indented JSON
func runSim(cfg config.Config, logger zerolog.Logger, out io.Writer) error {
	cfg.Seed = resolveSeed(cfg.Seed)
	summary := simulate(cfg, uuid.New(), logger)

	bz, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return eris.Wrap(err, "failed to encode summary")
	}
	bz = append(bz, '\n')
	if _, err := out.Write(bz); err != nil {
		return eris.Wrap(err, "failed to write summary")
	}
	return nil
}
