package game

import (
	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/entity"
)

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventCatch     EventKind = iota // fruit caught
	EventMiss                       // fruit lost off the bottom, costing a life
	EventBomb                       // bomb caught, session over
	EventPenalty                    // bomb caught, points deducted
	EventPowerUp                    // power-up caught
	EventPattern                    // spawn pattern rotated
	EventMilestone                  // milestone reached
	EventBoost                      // one-time speed boost
	EventLevel                      // level counter advanced
	EventGameOver                   // session ended
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventCatch:
		return "catch"
	case EventMiss:
		return "miss"
	case EventBomb:
		return "bomb"
	case EventPenalty:
		return "penalty"
	case EventPowerUp:
		return "powerup"
	case EventPattern:
		return "pattern"
	case EventMilestone:
		return "milestone"
	case EventBoost:
		return "boost"
	case EventLevel:
		return "level"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Event is one gameplay event of the last tick.
type Event struct {
	Kind   EventKind
	Entity entity.ID // zero for events not tied to an entity
	Pos    core.Vec
	Value  int // score for milestones, level number, pattern, final score
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// resolve is the collision and scoring pass. Every live entity is looked at
// once: objects past the bottom edge are missed, objects overlapping the
// basket are caught, and both leave the set in the same tick.
func (g *Game) resolve() {
	s := g.session
	h := g.cfg.Playfield.Height
	basket := s.basket.Bounds()

	s.entities.Retain(func(f *entity.Falling) bool {
		if s.over {
			return true
		}
		switch {
		case f.BelowField(h):
			f.State = entity.StateMissed
			g.onMiss(f)
			return false
		case f.Bounds().Intersects(basket):
			f.State = entity.StateCaught
			g.onCatch(f)
			return false
		}
		return true
	})
}

func (g *Game) onMiss(f *entity.Falling) {
	s := g.session
	if _, ok := f.Kind.(entity.Fruit); !ok || !s.rules.MissCostsLife {
		return
	}
	s.lives--
	pos := core.Vec{X: f.Pos.X, Y: g.cfg.Playfield.Height}
	g.audio.Play(audio.SoundMiss)
	g.fx.Burst(pos, core.ColorRed, g.cfg.Particles.MissBurst)
	g.emit(Event{Kind: EventMiss, Entity: f.ID, Pos: pos})
	if s.lives <= 0 {
		g.endSession()
	}
}

func (g *Game) onCatch(f *entity.Falling) {
	s := g.session
	pc := g.cfg.Particles

	switch k := f.Kind.(type) {
	case entity.Fruit:
		s.score += g.cfg.Difficulty.FruitPoints
		g.audio.Play(audio.SoundCorrect)
		g.fx.Burst(f.Pos, k.Variant.Color(), pc.CatchBurst)
		g.emit(Event{Kind: EventCatch, Entity: f.ID, Pos: f.Pos, Value: s.score})

	case entity.Bomb:
		if s.rules.BombEndsGame {
			s.lives = 0
			g.audio.Play(audio.SoundBomb)
			g.fx.Burst(f.Pos, core.ColorRed, pc.BombBurst)
			g.emit(Event{Kind: EventBomb, Entity: f.ID, Pos: f.Pos})
			g.endSession()
			return
		}
		s.score = max(0, s.score-s.rules.BombPenalty)
		g.audio.Play(audio.SoundWrong)
		g.fx.Burst(f.Pos, core.ColorRed, pc.PenaltyBurst)
		g.emit(Event{Kind: EventPenalty, Entity: f.ID, Pos: f.Pos, Value: s.score})

	case entity.PowerUp:
		g.applyPowerUp(k.Variant)
		g.audio.Play(audio.SoundPowerUp)
		g.fx.Burst(f.Pos, entity.Color(k), pc.PowerUpBurst)
		g.emit(Event{Kind: EventPowerUp, Entity: f.ID, Pos: f.Pos, Value: int(k.Variant)})
	}
}
