// Package decor animates the background: a scrolling star field, a planet,
// two squadrons of ships trading laser fire, and the bouncing fruit shown on
// the home screen. None of it interacts with gameplay.
package decor

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/particles"
)

const (
	starCount   = 150
	scrollSpeed = 0.5

	tieCount   = 4
	xwingCount = 3

	laserEvery  = 20 // ticks
	laserChance = 0.3
	laserSpeed  = 8
	laserLife   = 20
	laserReach  = 10 // distance at which a laser counts as arrived

	explosionSize = 15
)

// Star is a fixed point of the star field. Y is the unscrolled position.
type Star struct {
	Pos        core.Vec
	Size       int
	Brightness uint8
}

// Side tells the two squadrons apart.
type Side int

const (
	Empire Side = iota // TIE fighters, fly right, fire green
	Rebel              // X-wings, fly left, fire red
)

// Color returns the squadron's laser color.
func (s Side) Color() core.Color {
	if s == Empire {
		return core.ColorGreen
	}
	return core.ColorRed
}

// Ship is a background fighter.
type Ship struct {
	Side  Side
	Pos   core.Vec
	Size  float64
	Speed float64
}

// Laser travels from where it was fired toward a fixed target point.
type Laser struct {
	Pos    core.Vec
	Target core.Vec
	Color  core.Color
	Life   int
}

// Sky is the animated background.
type Sky struct {
	W, H float64

	Stars  []Star
	Offset float64

	Planet       core.Vec
	PlanetRadius float64

	Ships  []Ship
	Lasers []Laser

	rng        *rand.Rand
	laserTimer int
	debris     *particles.Engine
}

// NewSky creates a background for a w×h playfield.
func NewSky(w, h float64, rng *rand.Rand) *Sky {
	s := &Sky{
		W:            w,
		H:            h,
		Planet:       core.Vec{X: w * 0.8, Y: h * 0.2},
		PlanetRadius: 80,
		rng:          rng,
		debris:       particles.NewEngine(rng, 0),
	}

	s.Stars = make([]Star, starCount)
	for i := range s.Stars {
		s.Stars[i] = Star{
			Pos:        core.Vec{X: float64(rng.Intn(int(w) + 1)), Y: float64(rng.Intn(int(h) + 1))},
			Size:       1 + rng.Intn(3),
			Brightness: uint8(100 + rng.Intn(156)),
		}
	}

	for i := 0; i < tieCount; i++ {
		s.Ships = append(s.Ships, Ship{
			Side:  Empire,
			Pos:   core.Vec{X: float64(rng.Intn(int(w) + 1)), Y: s.laneY(Empire)},
			Size:  float64(15 + rng.Intn(11)),
			Speed: 0.5 + rng.Float64()*0.7,
		})
	}
	for i := 0; i < xwingCount; i++ {
		s.Ships = append(s.Ships, Ship{
			Side:  Rebel,
			Pos:   core.Vec{X: float64(rng.Intn(int(w) + 1)), Y: s.laneY(Rebel)},
			Size:  float64(15 + rng.Intn(11)),
			Speed: 0.7 + rng.Float64()*0.8,
		})
	}
	return s
}

// laneY picks a random altitude for a squadron: TIEs in the top third,
// X-wings between a quarter and half of the height.
func (s *Sky) laneY(side Side) float64 {
	h := int(s.H)
	if side == Empire {
		return float64(s.rng.Intn(h/3 + 1))
	}
	return float64(h/4 + s.rng.Intn(h/2-h/4+1))
}

// StarPos returns a star's on-screen position after scrolling.
func (s *Sky) StarPos(st Star) core.Vec {
	return core.Vec{X: st.Pos.X, Y: math.Mod(st.Pos.Y+s.Offset, s.H)}
}

// Debris returns the live explosion particles.
func (s *Sky) Debris() []particles.Particle {
	return s.debris.Particles()
}

// Update advances the background one tick.
func (s *Sky) Update() {
	s.Offset = math.Mod(s.Offset+scrollSpeed, s.H)

	for i := range s.Ships {
		sh := &s.Ships[i]
		if sh.Side == Empire {
			sh.Pos.X += sh.Speed
			if sh.Pos.X > s.W+sh.Size {
				sh.Pos.X = -sh.Size
				sh.Pos.Y = s.laneY(Empire)
			}
		} else {
			sh.Pos.X -= sh.Speed
			if sh.Pos.X < -sh.Size {
				sh.Pos.X = s.W + sh.Size
				sh.Pos.Y = s.laneY(Rebel)
			}
		}
	}

	s.laserTimer++
	if s.laserTimer >= laserEvery {
		s.laserTimer = 0
		s.fire(Rebel)
		s.fire(Empire)
	}

	s.moveLasers()
	s.debris.Tick()
}

// fire gives every ship of one side a chance to shoot at the nearest enemy.
func (s *Sky) fire(side Side) {
	for _, sh := range s.Ships {
		if sh.Side != side || s.rng.Float64() >= laserChance {
			continue
		}
		target, ok := s.nearestEnemy(sh)
		if !ok {
			continue
		}
		s.Lasers = append(s.Lasers, Laser{
			Pos:    sh.Pos,
			Target: target.Pos,
			Color:  side.Color(),
			Life:   laserLife,
		})
	}
}

func (s *Sky) nearestEnemy(from Ship) (Ship, bool) {
	var best Ship
	found := false
	bestDist := math.Inf(1)
	for _, sh := range s.Ships {
		if sh.Side == from.Side {
			continue
		}
		d := math.Hypot(sh.Pos.X-from.Pos.X, sh.Pos.Y-from.Pos.Y)
		if d < bestDist {
			bestDist = d
			best = sh
			found = true
		}
	}
	return best, found
}

func (s *Sky) moveLasers() {
	live := s.Lasers[:0]
	for _, l := range s.Lasers {
		dx := l.Target.X - l.Pos.X
		dy := l.Target.Y - l.Pos.Y
		length := math.Max(0.1, math.Hypot(dx, dy))
		l.Pos.X += dx / length * laserSpeed
		l.Pos.Y += dy / length * laserSpeed
		l.Life--

		arrived := math.Abs(l.Pos.X-l.Target.X) < laserReach && math.Abs(l.Pos.Y-l.Target.Y) < laserReach
		if l.Life <= 0 || arrived {
			s.debris.Explode(l.Target, l.Color, explosionSize)
			continue
		}
		live = append(live, l)
	}
	s.Lasers = live
}
