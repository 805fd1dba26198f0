package service

import "sync"

// RecordingAudio counts cues; used by the headless simulation and tests
type RecordingAudio struct {
	mu     sync.Mutex
	cues   []Cue
	counts map[Cue]int
	next   Audio
}

// NewRecordingAudio creates a recorder that also forwards to next when non-nil
func NewRecordingAudio(next Audio) *RecordingAudio {
	return &RecordingAudio{counts: make(map[Cue]int), next: next}
}

func (r *RecordingAudio) Play(cue Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, cue)
	r.counts[cue]++
	r.mu.Unlock()
	if r.next != nil {
		r.next.Play(cue)
	}
}

// Count returns how many times cue was played
func (r *RecordingAudio) Count(cue Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[cue]
}

// Cues returns a copy of the played cues in order
func (r *RecordingAudio) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

// Counts returns cue counts keyed by cue name
func (r *RecordingAudio) Counts() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.counts))
	for c, n := range r.counts {
		out[c.String()] = n
	}
	return out
}

// HUDState is the last value pushed to each display field
type HUDState struct {
	Health     int
	HealthFill float64
	Kills      int
	Time       string
	Flash      bool
	GameOver   bool
	ShowCount  int // times the game-over panel was shown
	FinalKills int
	FinalTime  string
}

// RecordingDisplay keeps the latest HUD state
type RecordingDisplay struct {
	mu    sync.Mutex
	state HUDState
}

func (d *RecordingDisplay) SetHealth(value int, fraction float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Health = value
	d.state.HealthFill = fraction
}

func (d *RecordingDisplay) SetKills(kills int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Kills = kills
}

func (d *RecordingDisplay) SetTime(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Time = text
}

func (d *RecordingDisplay) SetDamageFlash(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Flash = on
}

func (d *RecordingDisplay) ShowGameOver(kills int, survived string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.GameOver = true
	d.state.ShowCount++
	d.state.FinalKills = kills
	d.state.FinalTime = survived
}

// State returns a copy of the current HUD state
func (d *RecordingDisplay) State() HUDState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}
