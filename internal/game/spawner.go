package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/entity"
)

// timer fires once interval has passed since it last fired.
type timer struct {
	last     time.Duration
	interval time.Duration
}

func (t timer) due(now time.Duration) bool {
	return now-t.last >= t.interval
}

func (t *timer) rearm(now, interval time.Duration) {
	t.last = now
	t.interval = interval
}

// randMS returns a whole number of milliseconds in [lo, hi].
func randMS(rng *rand.Rand, lo, hi int) time.Duration {
	if hi < lo {
		hi = lo
	}
	return ms(lo + rng.Intn(hi-lo+1))
}

// armTimers sets the first intervals of a new session.
func (g *Game) armTimers() {
	sp := g.cfg.Spawn
	s := g.session
	s.fruitTimer.rearm(0, randMS(g.rng, sp.InitialMinMS, sp.InitialMaxMS))
	s.bombTimer.rearm(0, randMS(g.rng, sp.InitialMinMS, sp.InitialMaxMS))
	s.patternTimer.rearm(0, ms(sp.PatternChangeMS))
	if s.rules.PowerUps {
		s.powerUpTimer.rearm(0, randMS(g.rng, sp.PowerUpMinMS, sp.PowerUpMaxMS))
	}
}

// spawn runs the pattern, fruit, bomb and power-up timers.
func (g *Game) spawn() {
	sp := g.cfg.Spawn
	s := g.session
	now := s.elapsed

	if s.patternTimer.due(now) {
		s.patternTimer.rearm(now, ms(sp.PatternChangeMS))
		s.pattern = rotation[g.rng.Intn(len(rotation))]
		g.announcePattern()
	}

	if s.fruitTimer.due(now) {
		g.dropFruit()
		delay := int(s.delay / time.Millisecond)
		s.fruitTimer.rearm(now, randMS(g.rng,
			max(sp.MinIntervalMS, delay-sp.FruitJitterLowMS),
			delay+sp.FruitJitterUpMS))
	}

	if s.bombTimer.due(now) {
		if g.rng.Float64() < sp.BombChance {
			g.spawnBomb()
		}
		s.bombTimer.rearm(now, randMS(g.rng,
			max(sp.MinIntervalMS, sp.BombDelayMS-sp.BombJitterLowMS),
			sp.BombDelayMS+sp.BombJitterUpMS))
	}

	if s.rules.PowerUps && s.powerUpTimer.due(now) {
		if g.rng.Float64() < sp.PowerUpChance {
			g.spawnPowerUp()
		}
		s.powerUpTimer.rearm(now, randMS(g.rng, sp.PowerUpMinMS, sp.PowerUpMaxMS))
	}
}

// announcePattern sprinkles bursts along the top edge in the pattern's color.
func (g *Game) announcePattern() {
	pc := g.cfg.Particles
	w := g.cfg.Playfield.Width
	color := g.session.pattern.Color()
	for i := 0; i < pc.PatternBursts; i++ {
		pos := core.Vec{X: uniform(g.rng, 0, w), Y: uniform(g.rng, 0, 50)}
		g.fx.Burst(pos, color, pc.PatternSize)
	}
	g.emit(Event{Kind: EventPattern, Value: int(g.session.pattern)})
	g.logger.Debug("spawn pattern changed", "pattern", g.session.pattern)
}

// dropSize returns how many fruit the next drop holds.
func (g *Game) dropSize() int {
	r := g.session.rules
	n := min(g.session.fruitsPerDrop, r.MaxFruitsPerDrop)
	if r.BonusChance > 0 && r.BonusMax > 0 && g.rng.Float64() < r.BonusChance {
		n = min(n+1+g.rng.Intn(r.BonusMax), r.MaxFruitsPerDrop)
	}
	return max(1, n)
}

// dropFruit spawns one batch in the active pattern.
func (g *Game) dropFruit() {
	for _, x := range positions(g.session.pattern, g.dropSize(), g.cfg.Playfield.Width, g.rng) {
		g.spawnFruit(x)
	}
}

func (g *Game) spawnFruit(x float64) *entity.Falling {
	ec := g.cfg.Entities
	speed := g.session.speed * uniform(g.rng, 1-ec.SpeedJitter, 1+ec.SpeedJitter)
	return g.addEntity(entity.Fruit{Variant: g.pickFruit()}, x, speed)
}

func (g *Game) spawnBomb() *entity.Falling {
	ec := g.cfg.Entities
	w := g.cfg.Playfield.Width
	speed := g.session.speed * ec.BombSpeedFactor * uniform(g.rng, 1-ec.BombSpeedJitter, 1+ec.BombSpeedJitter)
	f := g.addEntity(entity.Bomb{}, uniform(g.rng, w/6, 5*w/6), speed)
	if g.rng.Float64() < g.cfg.Spawn.BombWarnChance {
		g.audio.Play(audio.SoundSpawnBomb)
	}
	return f
}

func (g *Game) spawnPowerUp() *entity.Falling {
	w := g.cfg.Playfield.Width
	v := entity.PowerUpTime
	if g.rng.Intn(2) == 1 {
		v = entity.PowerUpSpeed
	}
	return g.addEntity(entity.PowerUp{Variant: v}, uniform(g.rng, w/6, 5*w/6), g.cfg.Entities.PowerUpSpeed)
}

// addEntity creates a falling object centered at x on the top edge.
func (g *Game) addEntity(kind entity.Kind, x, speed float64) *entity.Falling {
	ec := g.cfg.Entities
	set := g.session.entities
	f := &entity.Falling{
		ID:            set.NextID(),
		Kind:          kind,
		State:         entity.StateSpawned,
		Pos:           core.Vec{X: x, Y: 0},
		Size:          ec.Size,
		Speed:         speed,
		Wobble:        ec.Wobble,
		RotationSpeed: uniform(g.rng, -ec.RotationSpeed, ec.RotationSpeed),
		PulseSpeed:    uniform(g.rng, ec.PulseMin, ec.PulseMax),
	}
	set.Add(f)
	return f
}

// pickFruit draws a fruit variant from the configured weights.
func (g *Game) pickFruit() entity.FruitVariant {
	w := g.cfg.Entities.FruitWeights
	weights := []int{w.Apple, w.Banana, w.Orange, w.StarFruit, w.Blueberry}
	total := 0
	for _, n := range weights {
		total += n
	}
	if total <= 0 {
		return entity.FruitVariants[g.rng.Intn(len(entity.FruitVariants))]
	}
	r := g.rng.Intn(total)
	for i, n := range weights {
		if r < n {
			return entity.FruitVariants[i]
		}
		r -= n
	}
	return entity.Apple
}
