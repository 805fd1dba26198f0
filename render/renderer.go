// Package render draws the session on a terminal: a heading-up map of the
// graveyard centred on the player, the health bar, the status line and the
// game-over panel. The Renderer is the terminal's service.Display and
// service.Presenter.
package render

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/status"
)

// Scene is the read side of the scene graph the map is drawn from
type Scene interface {
	Each(fn func(id components.EntityID, kind components.VisualKind, world mgl64.Vec3))
	Position(id components.EntityID, part string) (mgl64.Vec3, bool)
	Rotation(id components.EntityID, part string) (mgl64.Vec3, bool)
	Color(id components.EntityID, part string) (uint32, bool)
	Yaw() float64
}

type hud struct {
	health     int
	fill       float64
	kills      int
	time       string
	flash      bool
	gameOver   bool
	finalKills int
	finalTime  string
}

// Renderer handles all terminal rendering
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	scene  Scene
	clock  engine.TimeProvider
	hud    hud

	paused  *atomic.Bool
	fps     *status.AtomicFloat
	enemies int

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
}

// NewRenderer creates a renderer; a nil clock uses the monotonic wall clock
func NewRenderer(screen tcell.Screen, scene Scene, reg *status.Registry, clock engine.TimeProvider) *Renderer {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Renderer{
		screen:        screen,
		scene:         scene,
		clock:         clock,
		hud:           hud{health: constants.MaxHealth, fill: 1, time: "0:00"},
		paused:        reg.Bools.Get(status.Paused),
		fps:           reg.Floats.Get(status.FrameRate),
		lastFpsUpdate: clock.Now(),
	}
}

func (r *Renderer) SetHealth(value int, fraction float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hud.health = value
	r.hud.fill = fraction
}

func (r *Renderer) SetKills(kills int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hud.kills = kills
}

func (r *Renderer) SetTime(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hud.time = text
}

func (r *Renderer) SetDamageFlash(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hud.flash = on
}

func (r *Renderer) ShowGameOver(kills int, survived string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hud.gameOver = true
	r.hud.finalKills = kills
	r.hud.finalTime = survived
}

// Present renders the entire frame
func (r *Renderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updateFps()

	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.screen.Clear()
	ctx := layout(width, height)

	r.drawHealthBar(ctx)
	r.drawArena(ctx)
	r.drawStatusBar(ctx)
	if r.hud.gameOver {
		r.drawGameOver(ctx)
	}

	r.screen.Show()
}

// FPS over one-second windows
func (r *Renderer) updateFps() {
	r.frameCount++
	now := r.clock.Now()
	if elapsed := now.Sub(r.lastFpsUpdate); elapsed >= time.Second {
		r.fps.Set(float64(r.frameCount) / elapsed.Seconds())
		r.frameCount = 0
		r.lastFpsUpdate = now
	}
}

// sprite is one proxy projected for drawing
type sprite struct {
	id    components.EntityID
	kind  components.VisualKind
	world mgl64.Vec3
}

// sprites collects the drawable proxies sorted by id; the moon is sky, not map
func (r *Renderer) sprites() []sprite {
	var out []sprite
	r.scene.Each(func(id components.EntityID, kind components.VisualKind, world mgl64.Vec3) {
		if kind == components.VisualMoon || kind == components.VisualPlayer {
			return
		}
		out = append(out, sprite{id: id, kind: kind, world: world})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (r *Renderer) setText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
