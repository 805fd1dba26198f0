package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/engine"
	"github.com/lixenwraith/deadwood/scene"
	"github.com/lixenwraith/deadwood/status"
)

// 61x13 puts the player at column 30, row 6
const (
	testWidth  = 61
	testHeight = 13
	centerX    = 30
	centerY    = 6
)

type fixture struct {
	screen tcell.SimulationScreen
	graph  *scene.Graph
	reg    *status.Registry
	clock  *engine.MockTimeProvider
	r      *Renderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(testWidth, testHeight)

	graph := scene.NewGraph()
	graph.Create(components.PlayerID, components.VisualPlayer)
	graph.Create(components.MoonID, components.VisualMoon)

	reg := status.NewRegistry()
	clock := engine.NewMockTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return &fixture{
		screen: screen,
		graph:  graph,
		reg:    reg,
		clock:  clock,
		r:      NewRenderer(screen, graph, reg, clock),
	}
}

func (f *fixture) place(id components.EntityID, kind components.VisualKind, p mgl64.Vec3) {
	f.graph.Create(id, kind)
	f.graph.SetPosition(id, components.PartRoot, p)
}

func (f *fixture) cell(x, y int) (rune, tcell.Style) {
	ch, _, style, _ := f.screen.GetContent(x, y)
	return ch, style
}

func (f *fixture) row(y int) string {
	var b strings.Builder
	for x := 0; x < testWidth; x++ {
		ch, _ := f.cell(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func (f *fixture) screenText() string {
	var rows []string
	for y := 0; y < testHeight; y++ {
		rows = append(rows, f.row(y))
	}
	return strings.Join(rows, "\n")
}

func TestArenaIsHeadingUp(t *testing.T) {
	f := newFixture(t)
	f.place(components.FirstEnemyID, components.VisualZombie, mgl64.Vec3{0, 0, -4})
	f.place(components.FirstObstacleID, components.VisualTree, mgl64.Vec3{3, 0, 0})
	f.r.Present()

	ch, _ := f.cell(centerX, centerY)
	assert.Equal(t, '@', ch)
	ch, _ = f.cell(centerX, centerY-2)
	assert.Equal(t, 'Z', ch, "4 units ahead is two rows up")
	ch, _ = f.cell(centerX+3, centerY)
	assert.Equal(t, 'T', ch)

	// A quarter turn left puts the zombie on the right
	f.graph.Turn(math.Pi / 2)
	f.r.Present()
	ch, _ = f.cell(centerX+4, centerY)
	assert.Equal(t, 'Z', ch)
}

func TestArenaEdgeAndCorpse(t *testing.T) {
	f := newFixture(t)
	f.graph.SetPosition(components.PlayerID, components.PartRoot, mgl64.Vec3{constants.WorldRadius - 5, 0, 0})
	f.place(components.FirstEnemyID, components.VisualZombie, mgl64.Vec3{constants.WorldRadius - 7, 0, 0})
	f.graph.SetRotation(components.FirstEnemyID, components.PartRoot, mgl64.Vec3{1, 0, 0})
	f.r.Present()

	ch, _ := f.cell(centerX+4, centerY)
	assert.Equal(t, ' ', ch)
	ch, _ = f.cell(centerX+5, centerY)
	assert.Equal(t, '░', ch, "the arena edge is drawn")

	ch, _ = f.cell(centerX-2, centerY)
	assert.Equal(t, 'z', ch, "a falling zombie is drawn lower case")
	assert.Contains(t, f.row(testHeight-1), "Zombies 0")
}

func TestHealthBarFill(t *testing.T) {
	f := newFixture(t)
	f.r.SetHealth(50, 0.5)
	f.r.Present()

	ch, style := f.cell(0, constants.HealthBarRow)
	assert.Equal(t, '█', ch)
	fg, _, _ := style.Decompose()
	assert.Equal(t, HealthColor(0.1), fg)

	_, style = f.cell(testWidth-1, constants.HealthBarRow)
	fg, _, _ = style.Decompose()
	assert.Equal(t, RgbEmpty, fg)
}

func TestStatusBar(t *testing.T) {
	f := newFixture(t)
	f.place(components.FirstEnemyID, components.VisualZombie, mgl64.Vec3{0, 0, -40})
	f.place(components.FirstEnemyID+1, components.VisualZombie, mgl64.Vec3{10, 0, 10})
	f.r.SetHealth(70, 0.7)
	f.r.SetKills(3)
	f.r.SetTime("1:01")
	f.r.Present()

	bar := f.row(testHeight - 1)
	assert.Contains(t, bar, "HP 70")
	assert.Contains(t, bar, "Kills 3")
	assert.Contains(t, bar, "Time 1:01")
	assert.Contains(t, bar, "Zombies 2", "off-map zombies still count")
	assert.NotContains(t, bar, "PAUSED")
}

func TestStatusBarPausedAndFps(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 20; i++ {
		f.clock.Advance(50 * time.Millisecond)
		f.r.Present()
	}
	assert.InDelta(t, 20.0, f.reg.Floats.Get(status.FrameRate).Get(), 1e-9)

	f.reg.Bools.Get(status.Paused).Store(true)
	f.r.Present()
	row := f.row(testHeight - 1)
	assert.Contains(t, row, "FPS 20")
	assert.Contains(t, row, "PAUSED")
}

func TestDamageFlashTintsGround(t *testing.T) {
	f := newFixture(t)
	f.r.Present()
	_, style := f.cell(0, centerY)
	_, bg, _ := style.Decompose()
	assert.Equal(t, Hex(constants.GroundColor), bg)

	f.r.SetDamageFlash(true)
	f.r.Present()
	_, style = f.cell(0, centerY)
	_, bg, _ = style.Decompose()
	assert.Equal(t, Hex(constants.FlashColor), bg)
}

func TestGameOverPanel(t *testing.T) {
	f := newFixture(t)
	f.r.Present()
	assert.NotContains(t, f.screenText(), "GAME OVER")

	f.r.ShowGameOver(7, "1:05")
	f.r.Present()
	text := f.screenText()
	assert.Contains(t, text, "GAME OVER")
	assert.Contains(t, text, "Kills: 7")
	assert.Contains(t, text, "Survived: 1:05")
}

func TestHex(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(0xff, 0x44, 0x44), Hex(constants.ZombieHitColor))
}

func TestHealthColorEnds(t *testing.T) {
	assert.Equal(t, RgbEmpty, HealthColor(0))
	assert.Equal(t, tcell.NewRGBColor(40, 200, 60), HealthColor(1))
	assert.Equal(t, HealthColor(1), HealthColor(1.7), "overfill clamps to green")
	assert.Equal(t, tcell.NewRGBColor(255, 180, 20), HealthColor(0.5))
}

func TestScreenServiceLifecycle(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	svc := NewScreenService(func() (tcell.Screen, error) { return sim, nil })

	assert.Equal(t, "screen", svc.Name())
	require.Error(t, svc.Start(), "start before init")
	require.NoError(t, svc.Init())
	require.NoError(t, svc.Start())
	assert.Same(t, sim, svc.Screen())
	require.NoError(t, svc.Stop())
	require.NoError(t, svc.Stop())
}
