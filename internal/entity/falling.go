package entity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// State is the lifecycle of a falling object.
type State int

const (
	StateSpawned State = iota
	StateFalling
	StateCaught
	StateMissed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSpawned:
		return "spawned"
	case StateFalling:
		return "falling"
	case StateCaught:
		return "caught"
	case StateMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// ID identifies an entity within a session.
type ID uint64

// Falling is a fruit, bomb or power-up on its way down.
type Falling struct {
	ID    ID
	Kind  Kind
	State State

	Pos    core.Vec // center
	Size   float64
	Speed  float64 // pixels per tick
	Wobble float64 // max horizontal jitter per tick

	Rotation      float64 // degrees
	RotationSpeed float64 // degrees per tick
	Pulse         float64 // [0, 1)
	PulseSpeed    float64
}

// Bounds returns the collision box.
func (f *Falling) Bounds() core.Box {
	return core.BoxAround(f.Pos, f.Size, f.Size)
}

// Update moves the object one tick: fall, horizontal wobble, spin and pulse.
func (f *Falling) Update(rng *rand.Rand) {
	if f.State == StateSpawned {
		f.State = StateFalling
	}
	if f.State != StateFalling {
		return
	}
	f.Pos.Y += f.Speed
	if f.Wobble > 0 {
		f.Pos.X += (rng.Float64()*2 - 1) * f.Wobble
	}
	f.Rotation = math.Mod(f.Rotation+f.RotationSpeed+360, 360)
	f.Pulse += f.PulseSpeed
	if f.Pulse >= 1 {
		f.Pulse -= math.Floor(f.Pulse)
	}
}

// BelowField reports whether the object's top edge is past the bottom of a
// playfield of the given height.
func (f *Falling) BelowField(height float64) bool {
	return f.Bounds().Y > height
}

// Set is the collection of live falling objects. It keeps insertion order and
// never holds two objects with the same ID.
type Set struct {
	items []*Falling
	ids   map[ID]struct{}
	next  ID
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{ids: make(map[ID]struct{})}
}

// NextID returns a fresh ID.
func (s *Set) NextID() ID {
	s.next++
	return s.next
}

// Add inserts f. It returns false and leaves the set unchanged when an object
// with the same ID is already present.
func (s *Set) Add(f *Falling) bool {
	if _, dup := s.ids[f.ID]; dup {
		return false
	}
	s.ids[f.ID] = struct{}{}
	s.items = append(s.items, f)
	return true
}

// Items returns the live objects. The slice is only valid until the next
// mutation.
func (s *Set) Items() []*Falling {
	return s.items
}

// Len returns the number of live objects.
func (s *Set) Len() int {
	return len(s.items)
}

// Retain keeps only the objects for which keep returns true.
func (s *Set) Retain(keep func(*Falling) bool) {
	live := s.items[:0]
	for _, f := range s.items {
		if keep(f) {
			live = append(live, f)
		} else {
			delete(s.ids, f.ID)
		}
	}
	for i := len(live); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = live
}

// Clear removes every object.
func (s *Set) Clear() {
	s.Retain(func(*Falling) bool { return false })
}
