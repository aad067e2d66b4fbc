package window

import (
	"fmt"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	gotext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/decor"
	"github.com/vovakirdan/fruit-catcher/internal/entity"
	"github.com/vovakirdan/fruit-catcher/internal/game"
	"github.com/vovakirdan/fruit-catcher/internal/particles"
)

// Font cell size.
const (
	glyphW = 7
	glyphH = 13
)

var face = basicfont.Face7x13

var (
	background = color.RGBA{R: 5, G: 5, B: 20, A: 255}
	fuse       = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	overlay    = color.RGBA{A: 170}
)

// rgba converts a palette color with an opacity in [0, 1].
func rgba(c core.Color, alpha float64) color.RGBA {
	r, g, b := c.RGB()
	a := math.Max(0, math.Min(1, alpha))
	// Premultiplied, as image/color expects.
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}

func draw(dst *ebiten.Image, g *game.Game) {
	dst.Fill(background)
	w, h := g.Playfield()

	drawSky(dst, g.Sky())

	switch g.Screen() {
	case game.ScreenHome:
		drawHome(dst, g, w, h)
	case game.ScreenInfo:
		drawInfo(dst, w, h)
	case game.ScreenGame, game.ScreenGameOver:
		drawSession(dst, g, w, h)
	}

	drawButtons(dst, g.Buttons())
	drawParticles(dst, g.Particles())

	if g.Screen() == game.ScreenGameOver {
		drawBanner(dst, w, h, "GAME OVER", fmt.Sprintf("FINAL SCORE: %d", g.Session().Score()), core.ColorRed)
	} else if s := g.Session(); s != nil && s.Paused() {
		drawBanner(dst, w, h, "PAUSED", "Press P to resume", core.ColorCyan)
	}
}

func drawSky(dst *ebiten.Image, sky *decor.Sky) {
	for _, st := range sky.Stars {
		p := sky.StarPos(st)
		alpha := float64(st.Brightness) / 255
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(st.Size)/2, rgba(core.ColorWhite, alpha), false)
	}

	vector.DrawFilledCircle(dst, float32(sky.Planet.X), float32(sky.Planet.Y), float32(sky.PlanetRadius), rgba(core.ColorOrange, 0.35), true)
	vector.StrokeCircle(dst, float32(sky.Planet.X), float32(sky.Planet.Y), float32(sky.PlanetRadius), 2, rgba(core.ColorOrange, 0.8), true)

	for _, sh := range sky.Ships {
		x, y, s := float32(sh.Pos.X), float32(sh.Pos.Y), float32(sh.Size)
		if sh.Side == decor.Empire {
			vector.DrawFilledCircle(dst, x, y, s/4, rgba(core.ColorGray, 1), true)
			vector.DrawFilledRect(dst, x-s/2, y-s/2, 2, s, rgba(core.ColorGray, 1), false)
			vector.DrawFilledRect(dst, x+s/2-2, y-s/2, 2, s, rgba(core.ColorGray, 1), false)
			continue
		}
		vector.StrokeLine(dst, x-s/2, y-s/2, x+s/2, y+s/2, 2, rgba(core.ColorWhite, 0.9), true)
		vector.StrokeLine(dst, x-s/2, y+s/2, x+s/2, y-s/2, 2, rgba(core.ColorWhite, 0.9), true)
	}

	for _, l := range sky.Lasers {
		heading := math.Atan2(l.Target.Y-l.Pos.Y, l.Target.X-l.Pos.X)
		tail := l.Pos.Add(core.Polar(heading, -10))
		vector.StrokeLine(dst, float32(tail.X), float32(tail.Y), float32(l.Pos.X), float32(l.Pos.Y), 2, rgba(l.Color, 1), true)
	}
	for _, p := range sky.Debris() {
		vector.DrawFilledCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), rgba(p.Color, p.Fade()), true)
	}
}

func drawHome(dst *ebiten.Image, g *game.Game, w, h float64) {
	text(dst, "NEON FRUIT CATCHER", w/2, h/4, core.ColorCyan, true)

	for _, f := range g.Bouncers().Items {
		vector.DrawFilledCircle(dst, float32(f.Pos.X), float32(f.Pos.Y), float32(f.Size/2), rgba(f.Variant.Color(), 1), true)
	}

	if best := [2]int{g.Best(game.ModeNormal), g.Best(game.ModeUnlimited)}; best[0] > 0 || best[1] > 0 {
		text(dst, fmt.Sprintf("BEST  NORMAL: %d  UNLIMITED: %d", best[0], best[1]), 10, h-2*glyphH, core.ColorYellow, false)
	}
}

var infoLines = []struct {
	text  string
	color core.Color
}{
	{"HOW TO PLAY", core.ColorYellow},
	{"", core.ColorWhite},
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

func drawInfo(dst *ebiten.Image, w, h float64) {
	top := h / 6
	for i, line := range infoLines {
		text(dst, line.text, w/2, top+float64(i*glyphH*2), line.color, true)
	}
}

func drawSession(dst *ebiten.Image, g *game.Game, w, h float64) {
	s := g.Session()

	for _, f := range s.Entities() {
		drawFalling(dst, f)
	}

	b := s.Basket().Bounds()
	c := core.ColorOrange
	for _, e := range s.Effects() {
		if e.Variant == entity.PowerUpSpeed {
			c = core.ColorPurple
		}
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(c, 0.3), false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 3, rgba(c, 1), false)

	drawHUD(dst, g, w, h)

	if banner := s.Banner(); banner != "" {
		text(dst, banner, w/2, h/3, core.ColorYellow, true)
	}
}

// drawFalling draws a fruit as a pulsing disc, a bomb as a dark disc with a
// lit fuse, and a power-up as a ring around its letter.
func drawFalling(dst *ebiten.Image, f *entity.Falling) {
	x, y := float32(f.Pos.X), float32(f.Pos.Y)
	r := float32(f.Size / 2)

	switch k := f.Kind.(type) {
	case entity.Fruit:
		glow := 1 + 0.1*float32(math.Sin(2*math.Pi*f.Pulse))
		vector.DrawFilledCircle(dst, x, y, r*glow, rgba(k.Variant.Color(), 0.25), true)
		vector.DrawFilledCircle(dst, x, y, r*0.8, rgba(k.Variant.Color(), 1), true)
	case entity.Bomb:
		vector.DrawFilledCircle(dst, x, y, r*0.8, rgba(core.ColorGray, 1), true)
		a := f.Rotation * math.Pi / 180
		fx := x + r*float32(math.Cos(a))
		fy := y - r*float32(math.Abs(math.Sin(a)))
		vector.StrokeLine(dst, x, y-r*0.8, fx, fy, 2, fuse, true)
		vector.DrawFilledCircle(dst, fx, fy, 3, rgba(core.ColorRed, 1), true)
	case entity.PowerUp:
		c := entity.Color(k)
		vector.StrokeCircle(dst, x, y, r, 3, rgba(c, 1), true)
		text(dst, string(k.Variant.Glyph()), f.Pos.X, f.Pos.Y-glyphH/2, c, true)
	}
}

func drawHUD(dst *ebiten.Image, g *game.Game, w, h float64) {
	s := g.Session()

	const line = glyphH + 6

	text(dst, fmt.Sprintf("SCORE: %d", s.Score()), 10, 10, core.ColorGreen, false)
	text(dst, "A: LEFT | D: RIGHT", w/2, 10, core.ColorCyan, true)

	if s.Timed() {
		secs := int(s.Remaining().Seconds())
		c := core.ColorYellow
		if secs <= 10 {
			c = core.ColorRed
		}
		right(dst, fmt.Sprintf("TIME: %ds", secs), w-10, 10, c)
		text(dst, "UNLIMITED MODE", w/2, 10+line, core.ColorPurple, true)
	} else {
		text(dst, fmt.Sprintf("LIVES: %d", s.Lives()), 10, 10+line, core.ColorRed, false)
		right(dst, fmt.Sprintf("LEVEL: %d", s.Level()), w-10, 10, core.ColorYellow)
		next := s.LastMilestone() + g.Config().Difficulty.MilestoneStep
		text(dst, fmt.Sprintf("NEXT MILESTONE: %d", next), w/2, 10+line, core.ColorYellow, true)
	}

	y := 10.0 + 2*line
	if s.Boosted() {
		right(dst, "SPEED BOOST ACTIVE", w-10, y, core.ColorRed)
		y += line
	}
	for _, e := range s.Effects() {
		right(dst, fmt.Sprintf("%s x2 %.0fs", e.Variant, e.Remaining(s.Elapsed()).Seconds()), w-10, y, core.ColorPurple)
		y += line
	}

	if best := g.Best(s.Mode()); best > 0 {
		text(dst, fmt.Sprintf("BEST: %d", best), 10, h-glyphH-10, core.ColorYellow, false)
	}
}

func drawButtons(dst *ebiten.Image, buttons []game.Button) {
	for _, b := range buttons {
		x, y, bw, bh := float32(b.Box.X), float32(b.Box.Y), float32(b.Box.W), float32(b.Box.H)
		vector.DrawFilledRect(dst, x, y, bw, bh, rgba(b.Color, 0.2), false)
		vector.StrokeRect(dst, x, y, bw, bh, 2, rgba(b.Color, 1), false)
		c := b.Box.Center()
		text(dst, b.Label, c.X, c.Y-glyphH/2, b.Color, true)
	}
}

func drawParticles(dst *ebiten.Image, ps []particles.Particle) {
	for _, p := range ps {
		c := rgba(p.Color, p.Fade())
		if p.Variant == particles.Crackle {
			t := p.Tail()
			vector.StrokeLine(dst, float32(t.X), float32(t.Y), float32(p.Pos.X), float32(p.Pos.Y), float32(math.Max(1, p.Size/2)), c, true)
			continue
		}
		vector.DrawFilledCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(math.Max(0.5, p.Size)), c, true)
	}
}

func drawBanner(dst *ebiten.Image, w, h float64, title, subtitle string, c core.Color) {
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), overlay, false)

	bw := float64(max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle))*glyphW + 80)
	bh := float64(5 * glyphH)
	x, y := (w-bw)/2, (h-bh)/2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(bw), float32(bh), background, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(bw), float32(bh), 3, rgba(c, 1), false)

	text(dst, title, w/2, y+glyphH, c, true)
	text(dst, subtitle, w/2, y+3*glyphH, core.ColorYellow, true)
}

// text prints s with its top-left corner at (x, y), or horizontally centered
// on x.
func text(dst *ebiten.Image, s string, x, y float64, c core.Color, centered bool) {
	if centered {
		x -= float64(textWidth(s)) / 2
	}
	gotext.Draw(dst, s, face, int(x), int(y)+face.Ascent, rgba(c, 1))
}

// right prints s ending at x.
func right(dst *ebiten.Image, s string, x, y float64, c core.Color) {
	text(dst, s, x-float64(textWidth(s)), y, c, false)
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s) * glyphW
}
