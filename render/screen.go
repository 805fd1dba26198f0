package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
)

// ScreenService owns the terminal screen lifecycle
type ScreenService struct {
	mu      sync.Mutex
	factory func() (tcell.Screen, error)
	screen  tcell.Screen
	started bool
}

// NewScreenService creates the service; a nil factory opens the real terminal
func NewScreenService(factory func() (tcell.Screen, error)) *ScreenService {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &ScreenService{factory: factory}
}

func (s *ScreenService) Name() string {
	return "screen"
}

// Dependencies is empty; audio may start without a terminal
func (s *ScreenService) Dependencies() []string {
	return nil
}

// Init allocates the screen without touching the terminal
func (s *ScreenService) Init(args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != nil {
		return nil
	}
	screen, err := s.factory()
	if err != nil {
		return eris.Wrap(err, "failed to create screen")
	}
	s.screen = screen
	return nil
}

// Start switches the terminal into full-screen mode
func (s *ScreenService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == nil {
		return eris.New("screen not initialized")
	}
	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return eris.Wrap(err, "failed to initialize screen")
	}
	s.screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	s.screen.HideCursor()
	s.screen.Clear()
	s.started = true
	return nil
}

// Stop restores the terminal; idempotent
func (s *ScreenService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil
	}
	s.screen.Fini()
	s.started = false
	return nil
}

// Screen returns the underlying screen; nil before Init
func (s *ScreenService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}
