package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// palette lists every color the game draws with.
var palette = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
	core.ColorMagenta, core.ColorCyan, core.ColorWhite, core.ColorOrange,
	core.ColorPink, core.ColorPurple, core.ColorGray,
}

// colorStyles maps core.Color to lipgloss styles using the neon RGB values.
// Lipgloss downsamples them on terminals without true color.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for _, c := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(hexColor(c))
	}
	return styles
}()

func hexColor(c core.Color) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
