package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/service"
)

// Config selects whether and how loud audio plays
type Config struct {
	Enabled       bool
	MasterVolume  float64
	AmbientVolume float64
}

// DefaultConfig returns audio enabled at full master volume with the ambient drone on
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		MasterVolume:  1,
		AmbientVolume: constants.AmbientVolume,
	}
}

// Output is the device the mixer is played on
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

// speakerOutput is the system audio device through beep/speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

func (speakerOutput) Lock() {
	speaker.Lock()
}

func (speakerOutput) Unlock() {
	speaker.Unlock()
}

func (speakerOutput) Clear() {
	speaker.Clear()
}

// Service plays gameplay cues through a single mixer
// Handles graceful degradation: a missing device leaves the service disabled, never failing the game
type Service struct {
	mu sync.Mutex

	cfg     Config
	out     Output
	rate    beep.SampleRate
	mixer   *beep.Mixer
	ambient *beep.Ctrl
	logger  zerolog.Logger

	running  atomic.Bool
	disabled atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewService creates an audio service; a nil output means the system speaker
func NewService(out Output, logger zerolog.Logger) *Service {
	if out == nil {
		out = speakerOutput{}
	}
	return &Service{
		cfg:    DefaultConfig(),
		out:    out,
		rate:   beep.SampleRate(constants.AudioSampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// The first Config among args replaces the defaults; a disabled config turns the service off
func (s *Service) Init(args ...any) error {
	for _, arg := range args {
		if cfg, ok := arg.(Config); ok {
			s.cfg = cfg
			break
		}
	}
	if !s.cfg.Enabled {
		s.disabled.Store(true)
	}
	return nil
}

// Start implements service.Service
// Opens the device and starts the ambient loop; sets disabled on failure (no error returned)
func (s *Service) Start() error {
	if s.disabled.Load() || s.running.Load() {
		return nil
	}

	if err := s.out.Init(s.rate, s.rate.N(constants.AudioBufferDuration)); err != nil {
		s.disabled.Store(true)
		s.logger.Warn().Err(err).Msg("audio device unavailable, continuing silent")
		return nil
	}
	s.out.Play(s.mixer)
	s.running.Store(true)

	if s.cfg.AmbientVolume > 0 {
		s.SetAmbient(true)
	}
	s.logger.Info().Float64("master", s.cfg.MasterVolume).Float64("ambient", s.cfg.AmbientVolume).Msg("audio started")
	return nil
}

// Stop implements service.Service; idempotent
func (s *Service) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	s.out.Lock()
	if s.ambient != nil {
		s.ambient.Paused = true
	}
	s.mixer.Clear()
	s.out.Unlock()
	s.out.Clear()
	return nil
}

// Play implements service.Audio; cues are dropped while the device is not running
func (s *Service) Play(cue service.Cue) {
	if !s.running.Load() {
		s.dropped.Add(1)
		return
	}
	notes := CueNotes(cue)
	if notes == nil {
		return
	}

	stream := Compose(notes, constants.CueMasterGain*s.cfg.MasterVolume, s.rate)
	s.out.Lock()
	s.mixer.Add(stream)
	s.out.Unlock()
	s.played.Add(1)
}

// SetAmbient starts or pauses the background loop
func (s *Service) SetAmbient(on bool) {
	if !s.running.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.Lock()
	defer s.out.Unlock()
	if s.ambient == nil {
		if !on {
			return
		}
		seed := uint64(time.Now().UnixNano())
		s.ambient = &beep.Ctrl{Streamer: newVolume(NewAmbient(s.rate, seed), s.cfg.AmbientVolume*s.cfg.MasterVolume)}
		s.mixer.Add(s.ambient)
		return
	}
	s.ambient.Paused = !on
}

// IsDisabled returns true if audio is unavailable or turned off
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Stats returns how many cues were played and dropped
func (s *Service) Stats() (played, dropped uint64) {
	return s.played.Load(), s.dropped.Load()
}
