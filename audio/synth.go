package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/deadwood/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// tone is a single enveloped oscillator voice of fixed length
type tone struct {
	freq  float64
	wave  WaveType
	rate  beep.SampleRate
	phase float64

	pos     int
	total   int
	attack  int
	release int
}

// NewTone creates an oscillator shaped by a linear attack and a linear release ending at silence
func NewTone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att > total {
		att = total
	}
	if rel > total-att {
		rel = total - att
	}
	return &tone{freq: freq, wave: wave, rate: rate, total: total, attack: att, release: rel}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		}

		val *= t.gainAt(t.pos)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) gainAt(pos int) float64 {
	if t.attack > 0 && pos < t.attack {
		return float64(pos) / float64(t.attack)
	}
	if releaseStart := t.total - t.release; t.release > 0 && pos >= releaseStart {
		return float64(t.total-pos) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// newVolume scales a stream linearly; zero or negative volume is silent
// (effects.Volume works in log space, where 0 would be -Inf)
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Note is one voice of a cue, starting Offset after the cue fires
type Note struct {
	Midi     int
	Offset   time.Duration
	Duration time.Duration
}

// NoteFreq returns the equal-tempered frequency of a MIDI note (A4 = 69 = 440Hz)
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// MIDI numbers of the pitches the cues use
const (
	noteA1 = 33
	noteD2 = 38
	noteA2 = 45
	noteC3 = 48
	noteE3 = 52
	noteG3 = 55
	noteD4 = 62
	noteG4 = 67
)

// NoteLength is the playing length of a set of notes including offsets
func NoteLength(notes []Note) time.Duration {
	var end time.Duration
	for _, n := range notes {
		if e := n.Offset + n.Duration; e > end {
			end = e
		}
	}
	return end
}

// Compose renders notes as square-wave voices mixed at the given gain
func Compose(notes []Note, gain float64, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		voice := NewTone(NoteFreq(n.Midi), WaveSquare, n.Duration, constants.CueAttack, constants.CueRelease, rate)
		if n.Offset > 0 {
			voice = beep.Seq(beep.Silence(rate.N(n.Offset)), voice)
		}
		voices = append(voices, voice)
	}
	return newVolume(beep.Mix(voices...), gain)
}
