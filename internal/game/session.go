package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/entity"
)

// Mode selects the session rules.
type Mode int

const (
	ModeNormal    Mode = iota // lives, a caught bomb ends the game
	ModeUnlimited             // countdown, a caught bomb costs points
)

// Modes lists every mode.
var Modes = []Mode{ModeNormal, ModeUnlimited}

// String returns the mode name used in storage and on the command line.
func (m Mode) String() string {
	if m == ModeUnlimited {
		return "unlimited"
	}
	return "normal"
}

// ParseMode converts a mode name.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "normal":
		return ModeNormal, nil
	case "unlimited":
		return ModeUnlimited, nil
	default:
		return ModeNormal, fmt.Errorf("game: unknown mode %q", name)
	}
}

// Session is one play-through. All of its timers run on elapsed session
// time, which stands still while the session is paused.
type Session struct {
	mode  Mode
	rules config.ModeConfig

	score int
	lives int
	level int

	elapsed  time.Duration
	duration time.Duration // countdown length, 0 without a countdown
	paused   bool
	over     bool
	overAt   time.Duration // game clock time the session ended

	basket   *entity.Basket
	entities *entity.Set

	// Difficulty curve.
	speed         float64
	delay         time.Duration
	fruitsPerDrop int
	pattern       Pattern
	lastMilestone int
	boosted       bool

	fruitTimer   timer
	bombTimer    timer
	patternTimer timer
	powerUpTimer timer

	effects     []Effect
	banner      string
	bannerUntil time.Duration
}

func newSession(mode Mode, cfg config.CatcherConfig) *Session {
	rules := cfg.Modes.Normal
	if mode == ModeUnlimited {
		rules = cfg.Modes.Unlimited
	}
	b := cfg.Basket
	return &Session{
		mode:          mode,
		rules:         rules,
		lives:         rules.Lives,
		level:         1,
		duration:      rules.Duration(),
		basket:        entity.NewBasket(cfg.Playfield.Width, cfg.Playfield.Height-b.BottomOffset, b.Width, b.Height, b.Speed, b.Smoothing),
		entities:      entity.NewSet(),
		speed:         cfg.Difficulty.InitialSpeed,
		delay:         ms(rules.FruitDelayMS),
		fruitsPerDrop: rules.FruitsPerDrop,
		pattern:       PatternSingle,
	}
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives. Modes without lives report 0.
func (s *Session) Lives() int { return s.lives }

// Level returns the cosmetic level counter.
func (s *Session) Level() int { return s.level }

// Elapsed returns the running time of the session.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Timed reports whether the session has a countdown.
func (s *Session) Timed() bool { return s.rules.DurationMS > 0 }

// Remaining returns the countdown time left, or 0 without a countdown.
func (s *Session) Remaining() time.Duration {
	if !s.Timed() {
		return 0
	}
	return max(0, s.duration-s.elapsed)
}

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.over }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Basket returns the player's basket.
func (s *Session) Basket() *entity.Basket { return s.basket }

// Entities returns the live falling objects.
func (s *Session) Entities() []*entity.Falling { return s.entities.Items() }

// Speed returns the base fall speed in pixels per tick.
func (s *Session) Speed() float64 { return s.speed }

// Delay returns the base fruit spawn delay.
func (s *Session) Delay() time.Duration { return s.delay }

// FruitsPerDrop returns the current batch size before bonus fruit.
func (s *Session) FruitsPerDrop() int { return s.fruitsPerDrop }

// Pattern returns the active spawn pattern.
func (s *Session) Pattern() Pattern { return s.pattern }

// LastMilestone returns the last milestone score reached.
func (s *Session) LastMilestone() int { return s.lastMilestone }

// Boosted reports whether the one-time speed boost has fired.
func (s *Session) Boosted() bool { return s.boosted }

// Banner returns the celebration text currently shown, if any.
func (s *Session) Banner() string {
	if s.elapsed >= s.bannerUntil {
		return ""
	}
	return s.banner
}

// Effects returns the active power-up effects.
func (s *Session) Effects() []Effect { return s.effects }

func (s *Session) showBanner(text string, d time.Duration) {
	s.banner = text
	s.bannerUntil = s.elapsed + d
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
