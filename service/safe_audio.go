package service

import (
	"sync/atomic"
)

// SafeAudio shields gameplay from a misbehaving audio backend
// A panic in Play disables the wrapped backend for the rest of the session
type SafeAudio struct {
	inner    Audio
	disabled atomic.Bool
	onPanic  func(cue Cue, r any)
}

// NewSafeAudio wraps inner; onPanic may be nil
func NewSafeAudio(inner Audio, onPanic func(cue Cue, r any)) *SafeAudio {
	if inner == nil {
		inner = NopAudio{}
	}
	return &SafeAudio{inner: inner, onPanic: onPanic}
}

// Play forwards the cue unless the backend has been disabled
func (s *SafeAudio) Play(cue Cue) {
	if s.disabled.Load() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.disabled.Store(true)
			if s.onPanic != nil {
				s.onPanic(cue, r)
			}
		}
	}()
	s.inner.Play(cue)
}

// IsDisabled reports whether a backend failure muted the wrapper
func (s *SafeAudio) IsDisabled() bool {
	return s.disabled.Load()
}
