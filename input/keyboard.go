// Package input turns terminal key presses and scripted bot steps into the
// controller state the simulation reads: latched stick axes, view turns and
// activate (swing) events.
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/service"
)

// Clock supplies the time used for latch expiry
type Clock interface {
	Now() time.Time
}

// Turner yaws the player's view
type Turner interface {
	Turn(delta float64)
}

// Keyboard is a service.Input driven by terminal keys
// Terminals report presses but not releases, so a move key holds its axis for constants.InputHold
type Keyboard struct {
	mu       sync.Mutex
	table    *KeyTable
	clock    Clock
	turner   Turner
	strafe   latch
	forward  latch
	handlers []func()
}

type latch struct {
	value   float64
	expires time.Time
}

func (l latch) at(now time.Time) float64 {
	if now.Before(l.expires) {
		return l.value
	}
	return 0
}

// NewKeyboard creates a keyboard input using the default key table
func NewKeyboard(clock Clock, turner Turner) *Keyboard {
	return &Keyboard{
		table:  DefaultKeyTable(),
		clock:  clock,
		turner: turner,
	}
}

// Process parses a terminal event and applies its effect
// Moves latch an axis, turns yaw the view, swings fire activate handlers
// Quit, pause and resize are returned for the caller to act on
func (k *Keyboard) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return k.processKey(ev)
	}
	return Intent{}
}

func (k *Keyboard) processKey(ev *tcell.EventKey) Intent {
	entry, ok := k.table.Lookup(ev)
	if !ok {
		return Intent{}
	}
	intent := Intent{Type: entry.IntentType, Axis: entry.Axis, Value: entry.Value}

	switch entry.IntentType {
	case IntentMove:
		k.mu.Lock()
		l := latch{value: entry.Value, expires: k.clock.Now().Add(constants.InputHold)}
		if entry.Axis == AxisStrafe {
			k.strafe = l
		} else {
			k.forward = l
		}
		k.mu.Unlock()
	case IntentTurn:
		if k.turner != nil {
			k.turner.Turn(entry.Value)
		}
	case IntentSwing:
		k.fire()
	}
	return intent
}

func (k *Keyboard) fire() {
	k.mu.Lock()
	handlers := make([]func(), len(k.handlers))
	copy(handlers, k.handlers)
	k.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// Presenting is always true; the terminal session is immersive from the start
func (k *Keyboard) Presenting() bool {
	return true
}

// Sources reports a single left-hand controller with axes [0, 0, x, z]
func (k *Keyboard) Sources() []service.InputSource {
	now := k.clock.Now()
	k.mu.Lock()
	defer k.mu.Unlock()
	return []service.InputSource{{
		Handedness: service.HandLeft,
		Axes:       []float64{0, 0, k.strafe.at(now), k.forward.at(now)},
	}}
}

func (k *Keyboard) OnActivate(fn func()) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.handlers = append(k.handlers, fn)
}
