package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadwood/vmath"
)

var (
	RgbBackground = tcell.NewRGBColor(12, 14, 18)    // Night sky
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(140, 140, 140) // Gray for labels
	RgbPaused     = tcell.NewRGBColor(255, 200, 0)   // Amber
	RgbOutside    = tcell.NewRGBColor(30, 34, 30)    // Beyond the arena edge
	RgbPlayer     = tcell.NewRGBColor(240, 240, 240) // Near white
	RgbEmpty      = tcell.NewRGBColor(0, 0, 0)       // Unfilled bar segment
	RgbPanel      = tcell.NewRGBColor(60, 0, 0)      // Game-over panel
	RgbPanelText  = tcell.NewRGBColor(255, 220, 220) // Game-over text
)

// Hex converts a 0xRRGGBB value to a terminal colour
func Hex(rgb uint32) tcell.Color {
	return tcell.NewRGBColor(int32(rgb>>16&0xff), int32(rgb>>8&0xff), int32(rgb&0xff))
}

// HealthColor maps a filled segment's position in [0, 1] to red → amber → green
func HealthColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return RgbEmpty
	}
	progress = vmath.Clamp(progress, 0, 1)

	if progress < 0.5 { // Red to Amber
		t := progress / 0.5
		r := int32(180 + (255-180)*t)
		g := int32(20 + (180-20)*t)
		return tcell.NewRGBColor(r, g, 20)
	}
	// Amber to Green
	t := (progress - 0.5) / 0.5
	r := int32(255 - (255-40)*t)
	g := int32(180 + (200-180)*t)
	b := int32(20 + (60-20)*t)
	return tcell.NewRGBColor(r, g, b)
}
