package game

import (
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/entity"
)

// Effect is a timed power-up bonus.
type Effect struct {
	Variant entity.PowerUpVariant
	Until   time.Duration // session time the effect ends
}

// Remaining returns how long the effect still lasts at session time now.
func (e Effect) Remaining(now time.Duration) time.Duration {
	return max(0, e.Until-now)
}

// addEffect starts an effect, or refreshes it if already running.
func (s *Session) addEffect(v entity.PowerUpVariant, d time.Duration) {
	for i := range s.effects {
		if s.effects[i].Variant == v {
			s.effects[i].Until = s.elapsed + d
			return
		}
	}
	s.effects = append(s.effects, Effect{Variant: v, Until: s.elapsed + d})
}

// expireEffects drops effects that ran out.
func (s *Session) expireEffects() {
	active := s.effects[:0]
	for _, e := range s.effects {
		if e.Until > s.elapsed {
			active = append(active, e)
		}
	}
	s.effects = active
}

// hasEffect reports whether an effect is running.
func (s *Session) hasEffect(v entity.PowerUpVariant) bool {
	for _, e := range s.effects {
		if e.Variant == v {
			return true
		}
	}
	return false
}

// basketBoost is the basket speed multiplier.
func (s *Session) basketBoost() float64 {
	if s.hasEffect(entity.PowerUpSpeed) {
		return 2
	}
	return 1
}

// applyPowerUp grants a caught power-up. The countdown is fixed, so the time
// power-up pays out bonus points instead of extending it.
func (g *Game) applyPowerUp(v entity.PowerUpVariant) {
	s := g.session
	switch v {
	case entity.PowerUpTime:
		s.score += g.cfg.Difficulty.BonusPoints
	case entity.PowerUpSpeed:
		s.addEffect(v, ms(g.cfg.Timers.SpeedBoostMS))
	}
}
