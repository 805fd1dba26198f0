package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/physics"
	"github.com/lixenwraith/deadwood/service"
	"github.com/lixenwraith/deadwood/status"
	"github.com/lixenwraith/deadwood/vmath"
	"github.com/lixenwraith/deadwood/world"
)

// System is a per-frame update step; lower Priority runs first
type System interface {
	Priority() int
	Update(now time.Time, dt time.Duration)
}

// Services bundles the external collaborators; nil members fall back to no-ops
type Services struct {
	Visuals   service.Visuals
	Input     service.Input
	Audio     service.Audio
	Display   service.Display
	Presenter service.Presenter
}

func (s *Services) fillDefaults() {
	if s.Visuals == nil {
		s.Visuals = service.NopVisuals{}
	}
	if s.Input == nil {
		s.Input = service.NopInput{}
	}
	if s.Audio == nil {
		s.Audio = service.NopAudio{}
	}
	if s.Display == nil {
		s.Display = service.NopDisplay{}
	}
	if s.Presenter == nil {
		s.Presenter = service.NopPresenter{}
	}
}

// Options configures a new GameContext
type Options struct {
	// ID names the session in logs and summaries; zero means a fresh random id
	ID   uuid.UUID
	Seed uint64
	// Source drives game time; nil means the wall clock
	Source   TimeProvider
	Services Services
	Logger   zerolog.Logger
	// Status is shared with renderers built before the context; nil means a fresh registry
	Status *status.Registry
	// EmptyWorld skips obstacle placement
	EmptyWorld bool
}

// GameContext owns one session and everything its frame loop touches
type GameContext struct {
	// ===== Immutable After Init =====

	ID        uuid.UUID
	Seed      uint64
	Clock     *PausableClock
	Scheduler *Scheduler
	Session   *Session
	World     *world.World
	Resolver  *physics.Resolver
	Rand      *vmath.FastRand
	Status    *status.Registry
	Logger    zerolog.Logger

	Visuals   service.Visuals
	Input     service.Input
	Audio     service.Audio
	Display   service.Display
	Presenter service.Presenter

	// ===== Frame-Loop Exclusive =====

	systems   []System
	lastFrame time.Time

	statFrames *atomic.Int64
	statTasks  *atomic.Int64
}

// NewGameContext builds the world, places the player and starts the session clock
func NewGameContext(opts Options) *GameContext {
	opts.Services.fillDefaults()

	var clock *PausableClock
	if opts.Source != nil {
		clock = NewPausableClockWithSource(opts.Source)
	} else {
		clock = NewPausableClock()
	}
	rng := vmath.NewFastRand(opts.Seed)

	var w *world.World
	if opts.EmptyWorld {
		w = world.NewEmpty()
	} else {
		w = world.New(rng)
	}

	id := opts.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	logger := opts.Logger.With().Str("session", id.String()).Logger()

	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	sched := NewScheduler()
	now := clock.Now()

	ctx := &GameContext{
		ID:        id,
		Seed:      opts.Seed,
		Clock:     clock,
		Scheduler: sched,
		World:     w,
		Resolver:  physics.NewResolver(w.Arena, w.Obstacles),
		Rand:      rng,
		Status:    reg,
		Logger:    logger,
		Visuals:   opts.Services.Visuals,
		Input:     opts.Services.Input,
		Audio:     opts.Services.Audio,
		Display:   opts.Services.Display,
		Presenter: opts.Services.Presenter,
		lastFrame: now,

		statFrames: reg.Counter(status.FramesRun),
		statTasks:  reg.Counter(status.TasksRun),
	}
	ctx.Session = NewSession(now, ctx.Display, ctx.Audio, sched, logger)

	ctx.createProxies()

	logger.Info().
		Uint64("seed", opts.Seed).
		Int("obstacles", w.Obstacles.Len()).
		Msg("session started")

	return ctx
}

func (ctx *GameContext) createProxies() {
	ctx.Visuals.Create(components.PlayerID, components.VisualPlayer)
	ctx.Visuals.SetPosition(components.PlayerID, components.PartRoot, ctx.Session.Player.Position)
	ctx.Visuals.Create(components.MoonID, components.VisualMoon)

	for i, o := range ctx.World.Obstacles.All() {
		id := components.FirstObstacleID + components.EntityID(i)
		ctx.Visuals.Create(id, o.Kind.Visual())
		ctx.Visuals.SetPosition(id, components.PartRoot, mgl64.Vec3{o.X, 0, o.Z})
	}
}

// AddSystem registers a system; systems run in ascending priority, ties in insertion order
func (ctx *GameContext) AddSystem(sys System) {
	ctx.systems = append(ctx.systems, sys)
	sort.SliceStable(ctx.systems, func(i, j int) bool {
		return ctx.systems[i].Priority() < ctx.systems[j].Priority()
	})
}

// Now returns the current game time
func (ctx *GameContext) Now() time.Time {
	return ctx.Clock.Now()
}

// Frame advances the simulation by one step:
// systems in priority order, due scheduled tasks, enemy compaction, then presentation
func (ctx *GameContext) Frame() {
	now := ctx.Clock.Now()
	dt := now.Sub(ctx.lastFrame)
	if dt < 0 {
		dt = 0
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}
	ctx.lastFrame = now

	for _, sys := range ctx.systems {
		sys.Update(now, dt)
	}

	ran := ctx.Scheduler.RunDue(now)
	ctx.statTasks.Add(int64(ran))

	ctx.World.Enemies.Sweep()
	ctx.statFrames.Add(1)

	ctx.Presenter.Present()
}

// SetPaused pauses or resumes game time; paused time never reaches dt
func (ctx *GameContext) SetPaused(paused bool) {
	if paused {
		ctx.Clock.Pause()
	} else {
		ctx.Clock.Resume()
	}
	ctx.Status.Bools.Get(status.Paused).Store(paused)
}

// TogglePause flips the pause state
func (ctx *GameContext) TogglePause() bool {
	paused := !ctx.Clock.IsPaused()
	ctx.SetPaused(paused)
	return paused
}
