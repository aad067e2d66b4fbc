// Package particles simulates short-lived visual particles: round sparks
// flying straight out of a burst, and zig-zagging crackle strokes.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Variant selects a particle's motion rule and how it is drawn.
type Variant int

const (
	Spark   Variant = iota // straight line, drawn as a disc
	Crackle                // zig-zag, drawn as a short directional stroke
	Debris                 // straight line, keeps its size; background explosions
)

// Particle is one live particle. Angle is the heading in radians.
type Particle struct {
	Pos     core.Vec
	Angle   float64
	Speed   float64
	Life    int
	MaxLife int
	Size    float64
	Color   core.Color
	Variant Variant

	zigFreq  float64
	zigCount float64
	zigAngle float64
}

// Tail returns the far end of a crackle stroke, opposite the heading.
func (p Particle) Tail() core.Vec {
	return p.Pos.Add(core.Polar(p.Angle, -p.Size*3))
}

// Fade returns the remaining life as a fraction in (0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Shape parameters.
const (
	sparkShrink   = 0.1
	crackleShrink = 0.05
	crackleCount  = 20
)

// Engine owns the live particle set.
type Engine struct {
	rng       *rand.Rand
	particles []Particle
	max       int
}

// NewEngine creates an engine holding at most max particles (0 = unlimited).
func NewEngine(rng *rand.Rand, max int) *Engine {
	return &Engine{rng: rng, max: max}
}

// Burst adds count sparks at pos flying in random directions.
func (e *Engine) Burst(pos core.Vec, color core.Color, count int) {
	for i, n := 0, e.room(count); i < n; i++ {
		life := 20 + e.rng.Intn(41)
		e.particles = append(e.particles, Particle{
			Pos:     pos,
			Angle:   e.rng.Float64() * 2 * math.Pi,
			Speed:   1 + e.rng.Float64()*2,
			Life:    life,
			MaxLife: life,
			Size:    2 + e.rng.Float64()*3,
			Color:   color,
			Variant: Spark,
		})
	}
}

// Crackle adds an electric spark burst at pos.
func (e *Engine) Crackle(pos core.Vec, color core.Color) {
	for i, n := 0, e.room(crackleCount); i < n; i++ {
		life := 10 + e.rng.Intn(21)
		e.particles = append(e.particles, Particle{
			Pos:      pos,
			Angle:    e.rng.Float64() * 2 * math.Pi,
			Speed:    2 + e.rng.Float64()*3,
			Life:     life,
			MaxLife:  life,
			Size:     1 + e.rng.Float64()*2,
			Color:    color,
			Variant:  Crackle,
			zigFreq:  0.2 + e.rng.Float64()*0.2,
			zigAngle: e.rng.Float64() - 0.5,
		})
	}
}

// Explode adds count debris particles at pos. Debris is slower than sparks
// and does not shrink.
func (e *Engine) Explode(pos core.Vec, color core.Color, count int) {
	for i, n := 0, e.room(count); i < n; i++ {
		life := 10 + e.rng.Intn(21)
		e.particles = append(e.particles, Particle{
			Pos:     pos,
			Angle:   e.rng.Float64() * 2 * math.Pi,
			Speed:   0.5 + e.rng.Float64()*2.5,
			Life:    life,
			MaxLife: life,
			Size:    1 + e.rng.Float64()*3,
			Color:   color,
			Variant: Debris,
		})
	}
}

// room returns how many of n new particles fit under the cap.
func (e *Engine) room(n int) int {
	if e.max <= 0 {
		return n
	}
	return core.Max(0, core.Min(n, e.max-len(e.particles)))
}

// Tick moves every particle, ages it by one tick, and drops the ones whose
// life ran out, all in the same pass.
func (e *Engine) Tick() {
	live := e.particles[:0]
	for _, p := range e.particles {
		switch p.Variant {
		case Crackle:
			p.zigCount += p.zigFreq
			if p.zigCount >= 1 {
				p.Angle += p.zigAngle * (0.5 + e.rng.Float64()) * math.Pi
				p.zigCount = 0
			}
			p.Size = math.Max(0, p.Size-crackleShrink)
		case Spark:
			p.Size = math.Max(0, p.Size-sparkShrink)
		}
		p.Pos = p.Pos.Add(core.Polar(p.Angle, p.Speed))
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	e.particles = live
}

// Particles returns the live set. The slice is only valid until the next
// call that mutates the engine.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Len returns the number of live particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Clear removes every particle.
func (e *Engine) Clear() {
	e.particles = e.particles[:0]
}
