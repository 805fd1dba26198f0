package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/scene"
	"github.com/lixenwraith/deadwood/service"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const frameStep = 16 * time.Millisecond

// stubInput is a controllable input collaborator
type stubInput struct {
	presenting bool
	sources    []service.InputSource
	handlers   []func()
}

func (in *stubInput) Presenting() bool {
	return in.presenting
}

func (in *stubInput) Sources() []service.InputSource {
	return in.sources
}

func (in *stubInput) OnActivate(fn func()) {
	in.handlers = append(in.handlers, fn)
}

func (in *stubInput) fire() {
	for _, fn := range in.handlers {
		fn()
	}
}

type harness struct {
	ctx     *engine.GameContext
	clock   *engine.MockTimeProvider
	graph   *scene.Graph
	input   *stubInput
	audio   *service.RecordingAudio
	display *service.RecordingDisplay
}

// newHarness builds an obstacle-free session on a mock clock
func newHarness(t *testing.T, seed uint64) *harness {
	t.Helper()
	h := &harness{
		clock:   engine.NewMockTimeProvider(epoch),
		graph:   scene.NewGraph(),
		input:   &stubInput{presenting: true},
		audio:   service.NewRecordingAudio(nil),
		display: &service.RecordingDisplay{},
	}
	h.ctx = engine.NewGameContext(engine.Options{
		ID:     uuid.MustParse("00000000-0000-4000-8000-000000000001"),
		Seed:   seed,
		Source: h.clock,
		Services: engine.Services{
			Visuals: h.graph,
			Input:   h.input,
			Audio:   h.audio,
			Display: h.display,
		},
		Logger:     zerolog.Nop(),
		EmptyWorld: true,
	})
	return h
}

// step advances the clock and runs one frame
func (h *harness) step(d time.Duration) {
	h.clock.Advance(d)
	h.ctx.Frame()
}

// run steps frames of frameStep until total has elapsed
func (h *harness) run(total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frameStep {
		h.step(frameStep)
	}
}

// addEnemy places a living enemy at pos with a proxy
func (h *harness) addEnemy(pos mgl64.Vec3) *components.Enemy {
	store := h.ctx.World.Enemies
	e := &components.Enemy{
		ID:             store.NextID(),
		Position:       pos,
		Health:         constants.ZombieHealth,
		Alive:          true,
		GrowlInterval:  constants.ZombieGrowlMin,
		DetectionRange: constants.ZombieDetectionRange,
		AttackRange:    constants.ZombieAttackRange,
	}
	store.Add(e)
	h.graph.Create(e.ID, components.VisualZombie)
	h.graph.SetPosition(e.ID, components.PartRoot, pos)
	return e
}
