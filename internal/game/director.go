package game

import (
	"fmt"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Celebration particle layout.
const (
	milestoneBursts = 50
	boostBursts     = 80
	boostSize       = 25
	levelBursts     = 60
	levelSize       = 20
)

// checkMilestone runs the difficulty curve. Each time the score passes the
// next multiple of the milestone step, fruit fall faster, drops come sooner
// and grow, and the spawn pattern is re-rolled for the new batch size.
func (g *Game) checkMilestone() {
	d := g.cfg.Difficulty
	s := g.session
	if !d.Enabled || d.MilestoneStep <= 0 || s.score < s.lastMilestone+d.MilestoneStep {
		return
	}

	s.lastMilestone = s.score / d.MilestoneStep * d.MilestoneStep
	s.speed += d.SpeedStep
	s.delay = max(ms(d.MinDelayMS), s.delay-ms(d.DelayStepMS))

	m := s.lastMilestone / d.MilestoneStep
	s.fruitsPerDrop = min(s.rules.FruitsPerDrop+m/2, s.rules.MaxFruitsPerDrop)
	s.pattern = rerollPattern(s.fruitsPerDrop, g.rng)

	s.showBanner(fmt.Sprintf("MILESTONE %d: %d POINTS!", m, s.lastMilestone), ms(g.cfg.Timers.BannerMS))
	g.scatter(milestoneBursts, g.cfg.Particles.MilestoneSize, core.ColorYellow, g.cfg.Playfield.Height/4, g.cfg.Playfield.Height/2)
	g.emit(Event{Kind: EventMilestone, Value: s.lastMilestone})
	g.logger.Debug("milestone", "score", s.lastMilestone, "speed", s.speed, "delay", s.delay, "fruits", s.fruitsPerDrop)

	if !s.boosted && s.lastMilestone >= d.BoostAt {
		s.boosted = true
		s.speed += d.BoostSpeed
		s.delay = max(ms(d.BoostMinDelayMS), s.delay-ms(d.BoostDelayMS))
		s.showBanner("SPEED BOOST!", ms(g.cfg.Timers.BannerMS))
		g.scatter(boostBursts, boostSize, core.ColorRed, 0, g.cfg.Playfield.Height)
		g.emit(Event{Kind: EventBoost, Value: s.lastMilestone})
	}
}

// checkLevel advances the cosmetic level counter. It is independent of the
// milestone curve.
func (g *Game) checkLevel() {
	s := g.session
	size := g.cfg.Difficulty.LevelSize
	if size <= 0 || s.score <= s.level*size {
		return
	}
	s.level++
	g.scatter(levelBursts, levelSize, core.ColorCyan, 0, g.cfg.Playfield.Height/2)
	g.emit(Event{Kind: EventLevel, Value: s.level})
}

// scatter spawns n bursts at random points in the horizontal band [y0, y1).
func (g *Game) scatter(n, size int, color core.Color, y0, y1 float64) {
	w := g.cfg.Playfield.Width
	for i := 0; i < n; i++ {
		pos := core.Vec{X: uniform(g.rng, 0, w), Y: uniform(g.rng, y0, y1)}
		g.fx.Burst(pos, color, size)
	}
}
