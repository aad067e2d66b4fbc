package game

import (
	"math"

	"github.com/vovakirdan/fruit-catcher/internal/entity"
)

// Snapshot is a flat summary of the controller used by determinism tests
// and debug logging. Float positions are stored in hundredths of a pixel.
type Snapshot struct {
	Tick      uint64
	Screen    int
	Mode      int
	Score     int
	Lives     int
	Level     int
	ElapsedMS int64

	BasketX       int
	Speed         int // thousandths of a pixel per tick
	DelayMS       int64
	FruitsPerDrop int
	Pattern       int
	LastMilestone int

	// Each entity is 4 ints: ID, kind code, X, Y.
	EntityCount int
	EntityData  []int

	ParticleCount int
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.ticks,
		Screen:        int(g.screen),
		ParticleCount: g.fx.Len(),
	}
	s := g.session
	if s == nil {
		return snap
	}

	snap.Mode = int(s.mode)
	snap.Score = s.score
	snap.Lives = s.lives
	snap.Level = s.level
	snap.ElapsedMS = s.elapsed.Milliseconds()
	snap.BasketX = hundredths(s.basket.X)
	snap.Speed = int(math.Round(s.speed * 1000))
	snap.DelayMS = s.delay.Milliseconds()
	snap.FruitsPerDrop = s.fruitsPerDrop
	snap.Pattern = int(s.pattern)
	snap.LastMilestone = s.lastMilestone

	items := s.entities.Items()
	snap.EntityCount = len(items)
	snap.EntityData = make([]int, 0, len(items)*4)
	for _, f := range items {
		snap.EntityData = append(snap.EntityData, int(f.ID), kindCode(f), hundredths(f.Pos.X), hundredths(f.Pos.Y))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Screen)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ElapsedMS)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BasketX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DelayMS)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FruitsPerDrop) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pattern)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastMilestone) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation

	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func hundredths(v float64) int {
	return int(math.Round(v * 100))
}

// kindCode packs an entity kind into one int: fruit 0-4, bomb 10, power-ups 20+.
func kindCode(f *entity.Falling) int {
	switch k := f.Kind.(type) {
	case entity.Fruit:
		return int(k.Variant)
	case entity.Bomb:
		return 10
	case entity.PowerUp:
		return 20 + int(k.Variant)
	default:
		return -1
	}
}
