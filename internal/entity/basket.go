package entity

import "github.com/vovakirdan/fruit-catcher/internal/core"

// Basket is the player's catcher. X is the center; it eases toward TargetX,
// which moves directly with input.
type Basket struct {
	X, Y          float64
	TargetX       float64
	Width, Height float64
	Speed         float64
	Smoothing     float64
	FieldWidth    float64
}

// NewBasket creates a basket centered horizontally in a field.
func NewBasket(fieldW, y, width, height, speed, smoothing float64) *Basket {
	return &Basket{
		X:          fieldW / 2,
		Y:          y,
		TargetX:    fieldW / 2,
		Width:      width,
		Height:     height,
		Speed:      speed,
		Smoothing:  smoothing,
		FieldWidth: fieldW,
	}
}

// Bounds returns the collision box.
func (b *Basket) Bounds() core.Box {
	return core.BoxAround(core.Vec{X: b.X, Y: b.Y}, b.Width, b.Height)
}

// Move shifts the target by dir * Speed * boost. dir is -1, 0 or 1.
func (b *Basket) Move(dir int, boost float64) {
	b.TargetX += float64(dir) * b.Speed * boost
	b.TargetX = b.clamp(b.TargetX)
}

// Update eases the basket toward its target.
func (b *Basket) Update() {
	b.X += (b.TargetX - b.X) * b.Smoothing
	b.X = b.clamp(b.X)
}

// clamp keeps the whole basket inside the field.
func (b *Basket) clamp(x float64) float64 {
	half := b.Width / 2
	return core.ClampF(x, half, b.FieldWidth-half)
}
