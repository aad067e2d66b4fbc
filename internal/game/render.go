package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/decor"
	"github.com/vovakirdan/fruit-catcher/internal/entity"
	"github.com/vovakirdan/fruit-catcher/internal/particles"
)

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Glyphs.
const (
	starDim    = '·'
	starBright = '*'
	planetChar = '░'
	laserChar  = '-'
)

var infoLines = []struct {
	text  string
	color core.Color
}{
	{"CATCH THE FRUITS WITH YOUR BASKET!", core.ColorGreen},
	{"AVOID BOMBS! BOMBS END THE GAME INSTANTLY!", core.ColorRed},
	{"USE A AND D (OR ARROWS) TO MOVE", core.ColorBlue},
	{"GAME ENDS WHEN YOU RUN OUT OF LIVES", core.ColorYellow},
	{"", core.ColorWhite},
	{"UNLIMITED MODE:", core.ColorPurple},
	{"- MANY FRUITS DROP AT ONCE", core.ColorPurple},
	{"- BOMBS DEDUCT 50 POINTS WHEN CAUGHT", core.ColorPurple},
	{"- 55 SECOND TIME LIMIT, CATCH T FOR MORE", core.ColorPurple},
	{"", core.ColorWhite},
	{"CLICK ANYWHERE OR PRESS ESC TO RETURN", core.ColorPink},
}

// view maps playfield pixels onto terminal cells.
type view struct {
	sx, sy float64
}

func newView(dst *core.Screen, w, h float64) view {
	return view{sx: float64(dst.Width()) / w, sy: float64(dst.Height()) / h}
}

func (v view) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

func (v view) rect(b core.Box) core.Rect {
	x, y := v.cell(core.Vec{X: b.X, Y: b.Y})
	w := max(1, int(math.Round(b.W*v.sx)))
	h := max(1, int(math.Round(b.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

// Render draws the active screen into dst, scaled to its size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	w, h := g.Playfield()
	v := newView(dst, w, h)

	g.renderSky(dst, v)

	switch g.screen {
	case ScreenHome:
		g.renderHome(dst, v)
	case ScreenInfo:
		g.renderInfo(dst)
	case ScreenGame, ScreenGameOver:
		g.renderSession(dst, v)
	}

	g.renderButtons(dst, v)
	renderParticles(dst, v, g.fx.Particles())

	if g.screen == ScreenGameOver {
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("FINAL SCORE: %d", g.session.score), core.ColorRed)
	} else if s := g.session; s != nil && s.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorCyan)
	}
}

func (g *Game) renderSky(dst *core.Screen, v view) {
	sky := g.sky
	for _, st := range sky.Stars {
		x, y := v.cell(sky.StarPos(st))
		r := starDim
		if st.Size == 3 {
			r = starBright
		}
		c := core.ColorGray
		if st.Brightness > 200 {
			c = core.ColorWhite
		}
		dst.SetColor(x, y, r, c)
	}

	// Planet as a filled ellipse in cell space.
	px, py := v.cell(sky.Planet)
	rx := sky.PlanetRadius * v.sx
	ry := sky.PlanetRadius * v.sy
	for y := py - int(ry); y <= py+int(ry); y++ {
		for x := px - int(rx); x <= px+int(rx); x++ {
			dx := float64(x-px) / math.Max(rx, 1)
			dy := float64(y-py) / math.Max(ry, 1)
			if dx*dx+dy*dy <= 1 {
				dst.SetColor(x, y, planetChar, core.ColorOrange)
			}
		}
	}

	for _, sh := range sky.Ships {
		x, y := v.cell(sh.Pos)
		if sh.Side == decor.Empire {
			dst.DrawTextColor(x-1, y, "|o|", core.ColorGray)
		} else {
			dst.DrawTextColor(x-1, y, ">=<", core.ColorWhite)
		}
	}
	for _, l := range sky.Lasers {
		x, y := v.cell(l.Pos)
		dst.SetColor(x, y, laserChar, l.Color)
	}
	for _, p := range sky.Debris() {
		x, y := v.cell(p.Pos)
		dst.SetColor(x, y, '.', p.Color)
	}
}

func (g *Game) renderHome(dst *core.Screen, v view) {
	dst.DrawTextCenteredColor(dst.Height()/4, "NEON FRUIT CATCHER", core.ColorCyan)

	for _, f := range g.bouncers.Items {
		x, y := v.cell(f.Pos)
		dst.SetColor(x, y, f.Variant.Glyph(), f.Variant.Color())
	}

	best := fmt.Sprintf("BEST  NORMAL: %d  UNLIMITED: %d", g.best[ModeNormal], g.best[ModeUnlimited])
	if g.best[ModeNormal] > 0 || g.best[ModeUnlimited] > 0 {
		dst.DrawTextColor(1, dst.Height()-2, best, core.ColorYellow)
	}
}

func (g *Game) renderInfo(dst *core.Screen) {
	dst.DrawTextCenteredColor(dst.Height()/6, "HOW TO PLAY", core.ColorYellow)
	top := dst.Height()/6 + 2
	for i, line := range infoLines {
		dst.DrawTextCenteredColor(top+i, line.text, line.color)
	}
}

func (g *Game) renderSession(dst *core.Screen, v view) {
	s := g.session

	for _, f := range s.entities.Items() {
		x, y := v.cell(f.Pos)
		dst.SetColor(x, y, entity.Glyph(f.Kind), entity.Color(f.Kind))
	}

	b := v.rect(s.basket.Bounds())
	basket := core.ColorOrange
	if s.hasEffect(entity.PowerUpSpeed) {
		basket = core.ColorPurple
	}
	dst.SetColor(b.X, b.Y, '\\', basket)
	dst.SetColor(b.Right()-1, b.Y, '/', basket)
	dst.DrawHLine(b.X+1, b.Y, b.W-2, '_', basket)

	g.renderHUD(dst)

	if banner := s.Banner(); banner != "" {
		dst.DrawTextCenteredColor(dst.Height()/3, banner, core.ColorYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	w := dst.Width()

	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE: %d", s.score), core.ColorGreen)
	dst.DrawTextCenteredColor(0, "A: LEFT | D: RIGHT", core.ColorCyan)

	if s.Timed() {
		secs := int(s.Remaining().Seconds())
		timeColor := core.ColorYellow
		if secs <= 10 {
			timeColor = core.ColorRed
		}
		text := fmt.Sprintf("TIME: %ds", secs)
		dst.DrawTextColor(w-utf8.RuneCountInString(text)-6, 0, text, timeColor)
		dst.DrawTextCenteredColor(1, "UNLIMITED MODE", core.ColorPurple)
	} else {
		dst.DrawTextColor(1, 1, fmt.Sprintf("LIVES: %d", s.lives), core.ColorRed)
		text := fmt.Sprintf("LEVEL: %d", s.level)
		dst.DrawTextColor(w-utf8.RuneCountInString(text)-6, 0, text, core.ColorYellow)
		dst.DrawTextCenteredColor(1, fmt.Sprintf("NEXT MILESTONE: %d", s.lastMilestone+g.cfg.Difficulty.MilestoneStep), core.ColorYellow)
	}

	row := 2
	if s.boosted {
		dst.DrawTextColor(w-19, row, "SPEED BOOST ACTIVE", core.ColorRed)
		row++
	}
	for _, e := range s.effects {
		text := fmt.Sprintf("%s x2 %.0fs", e.Variant, e.Remaining(s.elapsed).Seconds())
		dst.DrawTextColor(w-utf8.RuneCountInString(text)-1, row, text, core.ColorPurple)
		row++
	}

	if best := g.best[s.mode]; best > 0 {
		dst.DrawTextColor(1, dst.Height()-1, fmt.Sprintf("BEST: %d", best), core.ColorYellow)
	}
}

func (g *Game) renderButtons(dst *core.Screen, v view) {
	for _, b := range g.Buttons() {
		r := v.rect(b.Box)
		if r.H >= 3 && r.W >= 3 {
			dst.DrawBox(r, b.Color)
			dst.DrawTextColor(r.X+(r.W-utf8.RuneCountInString(b.Label))/2, r.Y+r.H/2, b.Label, b.Color)
			continue
		}
		label := "[" + b.Label + "]"
		dst.DrawTextColor(r.X+(r.W-utf8.RuneCountInString(label))/2, r.Y+r.H/2, label, b.Color)
	}
}

func renderParticles(dst *core.Screen, v view, ps []particles.Particle) {
	for _, p := range ps {
		x, y := v.cell(p.Pos)
		dst.SetColor(x, y, particleGlyph(p), p.Color)
	}
}

// particleGlyph picks a character for a particle: sparks by size, crackle
// strokes by heading.
func particleGlyph(p particles.Particle) rune {
	if p.Variant == particles.Crackle {
		a := math.Mod(p.Angle, math.Pi)
		if a < 0 {
			a += math.Pi
		}
		switch {
		case a < math.Pi/8 || a >= 7*math.Pi/8:
			return '-'
		case a < 3*math.Pi/8:
			return '\\'
		case a < 5*math.Pi/8:
			return '|'
		default:
			return '/'
		}
	}
	switch {
	case p.Size >= 3:
		return '*'
	case p.Size >= 1:
		return '+'
	default:
		return '.'
	}
}

// drawCenteredBox draws a framed two-line message in the middle of dst.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)
	dst.DrawTextColor(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, c)
	dst.DrawTextColor(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle, core.ColorYellow)
}
