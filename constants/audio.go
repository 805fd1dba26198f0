package constants

import "time"

// Synth envelope shared by every cue
const (
	CueAttack     = 5 * time.Millisecond
	CueRelease    = 100 * time.Millisecond
	CueMasterGain = 0.3
)

// AmbientVolume is the default level of the background drone
const AmbientVolume = 0.25

// AudioSampleRate is the speaker rate in Hz
const AudioSampleRate = 48000

// AudioBufferDuration sizes the speaker buffer
const AudioBufferDuration = 100 * time.Millisecond
