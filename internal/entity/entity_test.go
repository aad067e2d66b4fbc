package entity

import (
	"math/rand"
	"testing"
)

func TestKindDispatch(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		glyph  rune
		isBomb bool
	}{
		{Fruit{Variant: Apple}, "apple", '●', false},
		{Fruit{Variant: StarFruit}, "star_fruit", '★', false},
		{Bomb{}, "bomb", '✹', true},
		{PowerUp{Variant: PowerUpTime}, "powerup:time", 'T', false},
	}

	for _, tt := range tests {
		if tt.kind.String() != tt.name {
			t.Errorf("String() = %q, expected %q", tt.kind.String(), tt.name)
		}
		if Glyph(tt.kind) != tt.glyph {
			t.Errorf("%s: Glyph() = %q, expected %q", tt.name, Glyph(tt.kind), tt.glyph)
		}
		if IsBomb(tt.kind) != tt.isBomb {
			t.Errorf("%s: IsBomb() = %v", tt.name, IsBomb(tt.kind))
		}
	}
}

func TestFallingUpdate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := &Falling{
		ID:            1,
		Kind:          Fruit{Variant: Banana},
		Size:          48,
		Speed:         2.5,
		Wobble:        1,
		RotationSpeed: -2,
		PulseSpeed:    0.3,
	}

	f.Update(rng)
	if f.State != StateFalling {
		t.Errorf("state after first update = %v, expected falling", f.State)
	}
	if f.Pos.Y != 2.5 {
		t.Errorf("y = %v, expected 2.5", f.Pos.Y)
	}
	if f.Pos.X < -1 || f.Pos.X > 1 {
		t.Errorf("wobble moved x to %v, expected within ±1", f.Pos.X)
	}
	if f.Rotation != 358 {
		t.Errorf("rotation = %v, expected 358", f.Rotation)
	}

	for i := 0; i < 10; i++ {
		f.Update(rng)
		if f.Pulse < 0 || f.Pulse >= 1 {
			t.Fatalf("pulse %v outside [0, 1)", f.Pulse)
		}
	}

	f.State = StateCaught
	y := f.Pos.Y
	f.Update(rng)
	if f.Pos.Y != y {
		t.Error("terminal objects should not move")
	}
}

func TestBelowField(t *testing.T) {
	f := &Falling{Size: 48}
	f.Pos.Y = 600 + 24
	if f.BelowField(600) {
		t.Error("top edge exactly at the bottom is not yet missed")
	}
	f.Pos.Y += 0.1
	if !f.BelowField(600) {
		t.Error("top edge past the bottom should be missed")
	}
}

func TestSetUniqueMembership(t *testing.T) {
	s := NewSet()
	a := &Falling{ID: s.NextID()}
	b := &Falling{ID: s.NextID()}

	if !s.Add(a) || !s.Add(b) {
		t.Fatal("fresh IDs should be accepted")
	}
	if s.Add(&Falling{ID: a.ID}) {
		t.Error("duplicate ID should be rejected")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}

	s.Retain(func(f *Falling) bool { return f.ID != a.ID })
	if s.Len() != 1 || s.Items()[0] != b {
		t.Error("Retain should drop a and keep b")
	}
	if !s.Add(&Falling{ID: a.ID}) {
		t.Error("a removed ID may be added again")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear should empty the set")
	}
}

func TestBasketStaysInField(t *testing.T) {
	b := NewBasket(800, 500, 100, 50, 10, 0.2)

	moves := []struct {
		dir   int
		ticks int
	}{
		{-1, 200},
		{1, 500},
		{-1, 30},
		{0, 50},
	}
	for _, m := range moves {
		for i := 0; i < m.ticks; i++ {
			b.Move(m.dir, 1)
			b.Update()
			box := b.Bounds()
			if box.X < 0 || box.Right() > 800 {
				t.Fatalf("basket left the field: [%v, %v]", box.X, box.Right())
			}
			if b.X < 0 || b.X > 800 {
				t.Fatalf("basket center %v outside [0, 800]", b.X)
			}
		}
	}
}

func TestBasketEasesTowardTarget(t *testing.T) {
	b := NewBasket(800, 500, 100, 50, 10, 0.2)
	b.Move(1, 1)
	b.Update()
	if b.TargetX != 410 {
		t.Errorf("target = %v, expected 410", b.TargetX)
	}
	if b.X != 402 {
		t.Errorf("x = %v, expected 402 after one smoothing step", b.X)
	}

	b.Move(1, 2)
	if b.TargetX != 430 {
		t.Errorf("boosted move should double the step, target = %v", b.TargetX)
	}
}
