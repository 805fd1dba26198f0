package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadwood/components"
	"github.com/lixenwraith/deadwood/constants"
	"github.com/lixenwraith/deadwood/service"
)

// Session is the per-run game state: the player, kill count and survival clock
// Game over is terminal; nothing in a session resets
type Session struct {
	Player    components.Player
	Kills     int
	StartTime time.Time
	// GameTime is whole seconds survived, refreshed each frame while alive
	GameTime int

	gameOver  bool
	endTime   time.Time
	display   service.Display
	audio     service.Audio
	scheduler *Scheduler
	logger    zerolog.Logger
}

// NewSession starts a session at the given time with a full-health player at the centre
func NewSession(start time.Time, display service.Display, audio service.Audio, scheduler *Scheduler, logger zerolog.Logger) *Session {
	s := &Session{
		Player: components.Player{
			Position: mgl64.Vec3{0, constants.PlayerHeight, 0},
			Radius:   constants.PlayerRadius,
			Speed:    constants.PlayerSpeed,
			Health:   constants.MaxHealth,
			Alive:    true,
		},
		StartTime: start,
		display:   display,
		audio:     audio,
		scheduler: scheduler,
		logger:    logger,
	}
	s.display.SetHealth(s.Player.Health, 1)
	s.display.SetKills(0)
	s.display.SetTime(FormatSurvival(0))
	return s
}

// Alive reports whether the session is still running
func (s *Session) Alive() bool {
	return s.Player.Alive
}

// DamagePlayer subtracts health, flashes the screen and ends the session at zero
// No-op once the player is dead
func (s *Session) DamagePlayer(amount int, now time.Time) int {
	if !s.Player.Alive {
		return 0
	}

	before := s.Player.Health
	health := before - amount
	if health < 0 {
		health = 0
	}
	if health > constants.MaxHealth {
		health = constants.MaxHealth
	}
	s.Player.Health = health
	s.display.SetHealth(health, float64(health)/float64(constants.MaxHealth))

	s.audio.Play(service.CueDamage)

	s.display.SetDamageFlash(true)
	s.scheduler.After(now, constants.DamageFlashDuration, components.PlayerID, func(time.Time) {
		// Game over keeps the screen red
		if s.Player.Alive {
			s.display.SetDamageFlash(false)
		}
	})

	s.logger.Debug().Int("damage", amount).Int("health", health).Msg("player damaged")

	if health <= 0 {
		s.endSession(now)
	}
	return before - health
}

// AddKill increments the kill counter and refreshes the HUD
func (s *Session) AddKill() {
	s.Kills++
	s.display.SetKills(s.Kills)
}

// Tick refreshes the survival clock; no-op after game over
func (s *Session) Tick(now time.Time) {
	if !s.Player.Alive {
		return
	}
	elapsed := now.Sub(s.StartTime)
	secs := int(elapsed / time.Second)
	if secs == s.GameTime {
		return
	}
	s.GameTime = secs
	s.display.SetTime(FormatSurvival(elapsed))
}

// Survived returns the session length; frozen at game over
func (s *Session) Survived(now time.Time) time.Duration {
	if s.gameOver {
		return s.endTime.Sub(s.StartTime)
	}
	return now.Sub(s.StartTime)
}

// IsOver reports whether game over has fired
func (s *Session) IsOver() bool {
	return s.gameOver
}

func (s *Session) endSession(now time.Time) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.endTime = now
	s.Player.Alive = false

	s.audio.Play(service.CueGameOver)

	survived := FormatSurvival(now.Sub(s.StartTime))
	s.display.ShowGameOver(s.Kills, survived)
	s.logger.Info().Int("kills", s.Kills).Str("survived", survived).Msg("game over")
}

// FormatSurvival renders a duration as m:ss, truncating partial seconds
func FormatSurvival(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
