// Package entity holds the falling objects and the player's basket.
package entity

import "github.com/vovakirdan/fruit-catcher/internal/core"

// Kind is the closed set of falling object kinds: Fruit, Bomb and PowerUp.
// Dispatch on it with a type switch.
type Kind interface {
	isKind()
	String() string
}

// FruitVariant enumerates the fruit types.
type FruitVariant int

const (
	Apple FruitVariant = iota
	Banana
	Orange
	StarFruit
	Blueberry
)

// FruitVariants lists every variant in weight-table order.
var FruitVariants = []FruitVariant{Apple, Banana, Orange, StarFruit, Blueberry}

// String returns the variant's name.
func (v FruitVariant) String() string {
	switch v {
	case Apple:
		return "apple"
	case Banana:
		return "banana"
	case Orange:
		return "orange"
	case StarFruit:
		return "star_fruit"
	case Blueberry:
		return "blueberry"
	default:
		return "fruit"
	}
}

// Color returns the fruit's display color, also used for its catch burst.
func (v FruitVariant) Color() core.Color {
	switch v {
	case Apple:
		return core.ColorRed
	case Banana:
		return core.ColorYellow
	case Orange:
		return core.ColorOrange
	case StarFruit:
		return core.ColorGreen
	case Blueberry:
		return core.ColorBlue
	default:
		return core.ColorWhite
	}
}

// Glyph returns the terminal character for the fruit.
func (v FruitVariant) Glyph() rune {
	switch v {
	case Apple:
		return '●'
	case Banana:
		return ')'
	case Orange:
		return 'o'
	case StarFruit:
		return '★'
	case Blueberry:
		return '•'
	default:
		return '?'
	}
}

// PowerUpVariant enumerates the power-up types.
type PowerUpVariant int

const (
	PowerUpTime  PowerUpVariant = iota // extends the countdown
	PowerUpSpeed                       // speeds up the basket for a while
)

// String returns the variant's name.
func (v PowerUpVariant) String() string {
	switch v {
	case PowerUpTime:
		return "time"
	case PowerUpSpeed:
		return "speed"
	default:
		return "powerup"
	}
}

// Glyph returns the terminal character for the power-up.
func (v PowerUpVariant) Glyph() rune {
	if v == PowerUpTime {
		return 'T'
	}
	return 'S'
}

// Fruit is a catchable fruit.
type Fruit struct{ Variant FruitVariant }

// Bomb must be avoided.
type Bomb struct{}

// PowerUp grants a temporary bonus.
type PowerUp struct{ Variant PowerUpVariant }

func (Fruit) isKind()   {}
func (Bomb) isKind()    {}
func (PowerUp) isKind() {}

func (f Fruit) String() string   { return f.Variant.String() }
func (Bomb) String() string      { return "bomb" }
func (p PowerUp) String() string { return "powerup:" + p.Variant.String() }

// Color returns the display color of a kind.
func Color(k Kind) core.Color {
	switch k := k.(type) {
	case Fruit:
		return k.Variant.Color()
	case Bomb:
		return core.ColorGray
	case PowerUp:
		if k.Variant == PowerUpTime {
			return core.ColorCyan
		}
		return core.ColorPurple
	default:
		return core.ColorWhite
	}
}

// Glyph returns the terminal character of a kind.
func Glyph(k Kind) rune {
	switch k := k.(type) {
	case Fruit:
		return k.Variant.Glyph()
	case Bomb:
		return '✹'
	case PowerUp:
		return k.Variant.Glyph()
	default:
		return '?'
	}
}

// IsBomb reports whether k is a bomb.
func IsBomb(k Kind) bool {
	_, ok := k.(Bomb)
	return ok
}
