package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/deadwood/vmath"
)

// drone is the endless night-time background: two low sines under a slow swell with a little wind
type drone struct {
	rate beep.SampleRate
	pos  int
	rng  *vmath.FastRand
	wind float64
}

// NewAmbient creates the background drone; it never drains
func NewAmbient(rate beep.SampleRate, seed uint64) beep.Streamer {
	return &drone{rate: rate, rng: vmath.NewFastRand(seed)}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(d.pos) / float64(d.rate)

		swell := 0.5 + 0.5*math.Sin(2*math.Pi*0.08*t)

		// One-pole low-pass over white noise
		d.wind += 0.02 * ((d.rng.Float64()*2 - 1) - d.wind)

		val := 0.35*math.Sin(2*math.Pi*55*t) +
			0.2*swell*math.Sin(2*math.Pi*82.41*t) +
			0.3*swell*d.wind

		samples[i][0] = val
		samples[i][1] = val
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
