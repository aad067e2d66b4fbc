package decor

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/entity"
)

// Bouncer is a decorative fruit swinging around its anchor on the home screen.
type Bouncer struct {
	Variant entity.FruitVariant
	Anchor  core.Vec
	Pos     core.Vec
	Size    float64

	speedX, speedY float64
	amplitude      float64
	offset         float64
}

// Bouncers is the set of decorative home-screen fruit.
type Bouncers struct {
	W, H  float64
	Items []Bouncer
}

// NewBouncers places one fruit near each corner of a w×h field.
func NewBouncers(w, h, size float64, rng *rand.Rand) *Bouncers {
	anchors := []core.Vec{
		{X: w * 3 / 16, Y: h / 4},
		{X: w * 13 / 16, Y: h / 4},
		{X: w * 3 / 16, Y: h * 3 / 4},
		{X: w * 13 / 16, Y: h * 3 / 4},
	}
	variants := []entity.FruitVariant{entity.Apple, entity.Banana, entity.Orange, entity.StarFruit}

	b := &Bouncers{W: w, H: h}
	for i, a := range anchors {
		b.Items = append(b.Items, Bouncer{
			Variant:   variants[i],
			Anchor:    a,
			Pos:       a,
			Size:      size,
			speedX:    rng.Float64()*4 - 2,
			speedY:    rng.Float64()*4 - 2,
			amplitude: 0.5 + rng.Float64(),
			offset:    rng.Float64() * 2 * math.Pi,
		})
	}
	return b
}

// Update positions every fruit for time t (seconds since start). A fruit
// that would leave the field is pushed back in and its swing reversed.
func (b *Bouncers) Update(t float64) {
	for i := range b.Items {
		f := &b.Items[i]
		f.Pos.X = f.Anchor.X + math.Sin(t*f.speedX+f.offset)*50*f.amplitude
		f.Pos.Y = f.Anchor.Y + math.Cos(t*f.speedY+f.offset)*30*f.amplitude

		half := f.Size / 2
		if f.Pos.X-half < 0 {
			f.Pos.X = half
			f.speedX = -f.speedX
		}
		if f.Pos.X+half > b.W {
			f.Pos.X = b.W - half
			f.speedX = -f.speedX
		}
		if f.Pos.Y-half < 0 {
			f.Pos.Y = half
			f.speedY = -f.speedY
		}
		if f.Pos.Y+half > b.H {
			f.Pos.Y = b.H - half
			f.speedY = -f.speedY
		}
	}
}
