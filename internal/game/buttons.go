package game

import "github.com/vovakirdan/fruit-catcher/internal/core"

// ButtonID identifies an on-screen button.
type ButtonID int

const (
	ButtonNormal ButtonID = iota
	ButtonUnlimited
	ButtonInfo
	ButtonMute
)

// Button is a clickable region in playfield coordinates.
type Button struct {
	ID    ButtonID
	Label string
	Box   core.Box
	Color core.Color
}

// Action returns the input action the button triggers.
func (b Button) Action() core.Action {
	switch b.ID {
	case ButtonNormal:
		return core.ActionStartNormal
	case ButtonUnlimited:
		return core.ActionStartUnlimited
	case ButtonInfo:
		return core.ActionInfo
	case ButtonMute:
		return core.ActionMute
	default:
		return core.ActionNone
	}
}

// Buttons returns the buttons of the active screen.
func (g *Game) Buttons() []Button {
	w := g.cfg.Playfield.Width
	h := g.cfg.Playfield.Height

	mute := Button{
		ID:    ButtonMute,
		Label: "♪",
		Box:   core.BoxAround(core.Vec{X: w - 30, Y: 80}, 40, 40),
		Color: core.ColorRed,
	}
	if g.muted {
		mute.Label = "×"
	}

	switch g.screen {
	case ScreenHome:
		return []Button{
			{ID: ButtonNormal, Label: "NORMAL MODE", Box: core.BoxAround(core.Vec{X: w / 2, Y: h/2 - 40}, 200, 60), Color: core.ColorGreen},
			{ID: ButtonUnlimited, Label: "UNLIMITED", Box: core.BoxAround(core.Vec{X: w / 2, Y: h/2 + 40}, 200, 60), Color: core.ColorPurple},
			{ID: ButtonInfo, Label: "i", Box: core.BoxAround(core.Vec{X: w - 30, Y: 30}, 40, 40), Color: core.ColorBlue},
			mute,
		}
	case ScreenGame:
		return []Button{mute}
	default:
		return nil
	}
}

// ButtonAt returns the button of the active screen under p.
func (g *Game) ButtonAt(p core.Vec) (Button, bool) {
	for _, b := range g.Buttons() {
		if b.Box.Contains(p) {
			return b, true
		}
	}
	return Button{}, false
}

// button returns the active screen's button with the given ID.
func (g *Game) button(id ButtonID) (Button, bool) {
	for _, b := range g.Buttons() {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}
