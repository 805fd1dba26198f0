package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/deadwood/service"
)

// Segment is one step of a bot script
type Segment struct {
	Duration time.Duration
	Strafe   float64 // stick x
	Forward  float64 // stick z, negative is forward
	TurnRate float64 // radians per second, positive turns left
	// SwingEvery is the swing period within the segment; zero never swings
	SwingEvery time.Duration
}

// DefaultScript circles the arena centre while sweeping the view and swinging
func DefaultScript() []Segment {
	return []Segment{
		{Duration: 3 * time.Second, Forward: -1, TurnRate: 0.4, SwingEvery: 700 * time.Millisecond},
		{Duration: 2 * time.Second, Strafe: 1, TurnRate: -0.8, SwingEvery: 500 * time.Millisecond},
		{Duration: 2 * time.Second, Forward: 1, SwingEvery: 600 * time.Millisecond},
		{Duration: 3 * time.Second, Strafe: -1, Forward: -0.5, TurnRate: 1.2, SwingEvery: 400 * time.Millisecond},
		{Duration: time.Second},
	}
}

// Bot is a scripted service.Input for headless runs
// The script loops; identical start times and frame steps give identical input
type Bot struct {
	mu        sync.Mutex
	script    []Segment
	total     time.Duration
	turner    Turner
	start     time.Time
	last      time.Time
	lastSwing time.Time
	strafe    float64
	forward   float64
	handlers  []func()
	swings    int
}

// NewBot creates a bot starting its script at start
func NewBot(start time.Time, turner Turner, script []Segment) *Bot {
	if len(script) == 0 {
		script = DefaultScript()
	}
	var total time.Duration
	for _, s := range script {
		total += s.Duration
	}
	return &Bot{
		script:    script,
		total:     total,
		turner:    turner,
		start:     start,
		last:      start,
		lastSwing: start,
	}
}

func (b *Bot) segment(now time.Time) Segment {
	if b.total <= 0 {
		return Segment{}
	}
	offset := now.Sub(b.start) % b.total
	for _, s := range b.script {
		if offset < s.Duration {
			return s
		}
		offset -= s.Duration
	}
	return b.script[len(b.script)-1]
}

// Advance applies the script up to now: sets the stick, turns, and fires due swings
func (b *Bot) Advance(now time.Time) {
	b.mu.Lock()
	seg := b.segment(now)
	dt := now.Sub(b.last)
	if dt < 0 {
		dt = 0
	}
	b.last = now
	b.strafe = seg.Strafe
	b.forward = seg.Forward

	swing := seg.SwingEvery > 0 && now.Sub(b.lastSwing) >= seg.SwingEvery
	if swing {
		b.lastSwing = now
		b.swings++
	}
	var handlers []func()
	if swing {
		handlers = make([]func(), len(b.handlers))
		copy(handlers, b.handlers)
	}
	b.mu.Unlock()

	if seg.TurnRate != 0 && dt > 0 && b.turner != nil {
		b.turner.Turn(seg.TurnRate * dt.Seconds())
	}
	for _, fn := range handlers {
		fn()
	}
}

// Swings returns how many activate events the bot has fired
func (b *Bot) Swings() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.swings
}

func (b *Bot) Presenting() bool {
	return true
}

func (b *Bot) Sources() []service.InputSource {
	b.mu.Lock()
	defer b.mu.Unlock()
	return []service.InputSource{{
		Handedness: service.HandLeft,
		Axes:       []float64{0, 0, b.strafe, b.forward},
	}}
}

func (b *Bot) OnActivate(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, fn)
}
