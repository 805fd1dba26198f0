package audio

import (
	"time"

	"github.com/lixenwraith/deadwood/service"
)

const ms = time.Millisecond

// cueNotes maps each gameplay cue to its notes
var cueNotes = map[service.Cue][]Note{
	service.CueSwing: {
		{Midi: noteC3, Duration: 50 * ms},
		{Midi: noteE3, Offset: 20 * ms, Duration: 80 * ms},
	},
	service.CueHit: {
		{Midi: noteG4, Duration: 100 * ms},
		{Midi: noteD4, Offset: 50 * ms, Duration: 150 * ms},
	},
	service.CueGrowl: {
		{Midi: noteA1, Duration: 300 * ms},
		{Midi: noteD2, Offset: 100 * ms, Duration: 400 * ms},
	},
	service.CueDamage: {
		{Midi: noteA2, Duration: 200 * ms},
	},
	service.CueGameOver: {
		{Midi: noteG3, Duration: 200 * ms},
		{Midi: noteE3, Offset: 250 * ms, Duration: 300 * ms},
		{Midi: noteC3, Offset: 600 * ms, Duration: 400 * ms},
	},
}

// CueNotes returns the notes of a cue; nil for unknown cues
func CueNotes(cue service.Cue) []Note {
	return cueNotes[cue]
}
