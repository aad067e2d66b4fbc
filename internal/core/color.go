package core

// Color represents the color of a screen cell or a drawn object.
// Frontends map it to ANSI colors (terminal) or RGB (window).
type Color uint8

// Palette used by the game. The neon values come from RGB().
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorPurple
	ColorGray
)

// RGB returns the neon RGB triple for the color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 255, 60, 120
	case ColorGreen:
		return 60, 255, 120
	case ColorYellow:
		return 255, 255, 60
	case ColorBlue:
		return 60, 120, 255
	case ColorMagenta:
		return 255, 60, 255
	case ColorCyan:
		return 60, 255, 255
	case ColorOrange:
		return 255, 150, 60
	case ColorPink:
		return 255, 100, 200
	case ColorPurple:
		return 200, 60, 255
	case ColorGray:
		return 120, 120, 140
	default:
		return 255, 255, 255
	}
}

// NeonColors lists the bright colors used for celebratory effects.
var NeonColors = []Color{
	ColorRed, ColorGreen, ColorBlue, ColorYellow,
	ColorOrange, ColorPurple, ColorPink, ColorCyan,
}
