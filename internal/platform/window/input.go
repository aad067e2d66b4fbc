package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Binding maps keys to an action. Held bindings fire every frame the key is
// down; the others fire once per press.
type Binding struct {
	Action core.Action
	Keys   []ebiten.Key
	Held   bool
}

// Keys is the window key map, matching the terminal bindings.
type Keys []Binding

// DefaultKeys returns the default window bindings.
func DefaultKeys() Keys {
	return Keys{
		{Action: core.ActionLeft, Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, Held: true},
		{Action: core.ActionRight, Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, Held: true},
		{Action: core.ActionStartNormal, Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyN}},
		{Action: core.ActionStartUnlimited, Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyU}},
		{Action: core.ActionInfo, Keys: []ebiten.Key{ebiten.KeyI}},
		{Action: core.ActionConfirm, Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
		{Action: core.ActionBack, Keys: []ebiten.Key{ebiten.KeyEscape}},
		{Action: core.ActionMute, Keys: []ebiten.Key{ebiten.KeyM}},
		{Action: core.ActionPause, Keys: []ebiten.Key{ebiten.KeyP}},
		{Action: core.ActionQuit, Keys: []ebiten.Key{ebiten.KeyQ}},
	}
}

// Lookup returns the binding of an action.
func (k Keys) Lookup(a core.Action) (Binding, bool) {
	for _, b := range k {
		if b.Action == a {
			return b, true
		}
	}
	return Binding{}, false
}

// Frame polls the keyboard.
func (k Keys) Frame() core.InputFrame {
	return k.frame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// frame builds an input frame from key probes.
func (k Keys) frame(down, pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range k {
		probe := pressed
		if b.Held {
			probe = down
		}
		for _, key := range b.Keys {
			if probe(key) {
				in.Set(b.Action)
				break
			}
		}
	}
	return in
}

// clicked reports a left click this frame in logical screen pixels, which
// equal playfield pixels.
func clicked() (core.Vec, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return core.Vec{}, false
	}
	x, y := ebiten.CursorPosition()
	return core.Vec{X: float64(x), Y: float64(y)}, true
}
