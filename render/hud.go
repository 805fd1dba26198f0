package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadwood/constants"
)

const healthSegments = 10

// frame is the screen layout for one Present
type frame struct {
	width, height int
	mapTop        int // first map row
	mapBottom     int // one past the last map row
	statusY       int
	centerX       int
	centerY       int
}

func layout(width, height int) frame {
	f := frame{
		width:     width,
		height:    height,
		mapTop:    constants.HealthBarRow + 1,
		mapBottom: height - constants.StatusBarRowFromBottom,
		statusY:   height - constants.StatusBarRowFromBottom,
		centerX:   width / 2,
	}
	if f.mapBottom < f.mapTop {
		f.mapBottom = f.mapTop
	}
	f.centerY = f.mapTop + (f.mapBottom-f.mapTop)/2
	return f
}

// drawHealthBar draws a 10-segment bar across the full width
func (r *Renderer) drawHealthBar(ctx frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	filled := int(r.hud.fill * healthSegments)
	if filled > healthSegments {
		filled = healthSegments
	}
	if filled < 0 {
		filled = 0
	}

	segmentWidth := float64(ctx.width) / healthSegments
	for segment := 0; segment < healthSegments; segment++ {
		segmentStart := int(float64(segment) * segmentWidth)
		segmentEnd := int(float64(segment+1) * segmentWidth)

		style := defaultStyle.Foreground(RgbEmpty)
		if segment < filled {
			style = defaultStyle.Foreground(HealthColor(float64(segment+1) / healthSegments))
		}
		for x := segmentStart; x < segmentEnd && x < ctx.width; x++ {
			r.screen.SetContent(x, constants.HealthBarRow, '█', nil, style)
		}
	}
}

// drawStatusBar draws health, kills, time, enemies and fps on the bottom row
func (r *Renderer) drawStatusBar(ctx frame) {
	if ctx.statusY <= constants.HealthBarRow {
		return
	}
	base := tcell.StyleDefault.Background(RgbBackground)
	label := base.Foreground(RgbStatusDim)
	value := base.Foreground(RgbStatusBar)

	for x := 0; x < ctx.width; x++ {
		r.screen.SetContent(x, ctx.statusY, ' ', nil, base)
	}

	x := 1
	fields := []struct{ name, text string }{
		{"HP ", fmt.Sprintf("%d", r.hud.health)},
		{"Kills ", fmt.Sprintf("%d", r.hud.kills)},
		{"Time ", r.hud.time},
		{"Zombies ", fmt.Sprintf("%d", r.enemies)},
		{"FPS ", fmt.Sprintf("%.0f", r.fps.Get())},
	}
	for _, f := range fields {
		x = r.setText(x, ctx.statusY, f.name, label)
		x = r.setText(x, ctx.statusY, f.text, value)
		x += 2
	}
	if r.paused.Load() {
		r.setText(x, ctx.statusY, "PAUSED", base.Foreground(RgbPaused).Bold(true))
	}
}

// drawGameOver draws a centred panel with the final score
func (r *Renderer) drawGameOver(ctx frame) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Kills: %d", r.hud.finalKills),
		fmt.Sprintf("Survived: %s", r.hud.finalTime),
		"",
		"Esc to quit",
	}
	panelWidth := 0
	for _, l := range lines {
		if len(l) > panelWidth {
			panelWidth = len(l)
		}
	}
	panelWidth += 4
	panelHeight := len(lines) + 2

	left := ctx.centerX - panelWidth/2
	top := ctx.centerY - panelHeight/2
	style := tcell.StyleDefault.Background(RgbPanel).Foreground(RgbPanelText)

	for y := top; y < top+panelHeight; y++ {
		for x := left; x < left+panelWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for i, l := range lines {
		x := ctx.centerX - len(l)/2
		s := style
		if i == 0 {
			s = s.Bold(true)
		}
		r.setText(x, top+1+i, l, s)
	}
}
