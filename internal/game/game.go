// Package game is the fruit catcher controller: the screen state machine,
// session rules for both modes, spawn scheduling and the difficulty curve.
// It runs on a simulated clock advanced by one tick per Step, so a session is
// fully determined by its seed and input sequence.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/decor"
	"github.com/vovakirdan/fruit-catcher/internal/particles"
)

// Screen is the active top-level screen.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenInfo
	ScreenGame
	ScreenGameOver
)

// String returns the screen name reported in core.GameState.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenInfo:
		return "info"
	case ScreenGame:
		return "game"
	case ScreenGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Audio is the part of the mixer the controller drives.
type Audio interface {
	Play(name string)
	SetMuted(muted bool)
	FadeInMusic(d time.Duration)
	Tick(dt time.Duration)
}

// Options configure a Game.
type Options struct {
	Config config.CatcherConfig
	Audio  Audio       // nil plays nothing
	Logger *log.Logger // nil discards
	Best   map[Mode]int
}

// Game is the controller. It owns the app context (best scores, mute), the
// background, the particle engine and, while one is running, the session.
type Game struct {
	cfg    config.CatcherConfig
	audio  Audio
	logger *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    time.Duration
	ticks   uint64
	now     time.Duration

	screen   Screen
	session  *Session
	best     map[Mode]int
	muted    bool
	quit     bool
	lastMode Mode

	fx       *particles.Engine
	sky      *decor.Sky
	bouncers *decor.Bouncers
	events   []Event
}

// New creates a controller. Call Reset before the first Step.
func New(opts Options) *Game {
	g := &Game{
		cfg:    opts.Config,
		audio:  opts.Audio,
		logger: opts.Logger,
		best:   make(map[Mode]int),
	}
	if g.audio == nil {
		g.audio = audio.NewMixer(nil, opts.Config.Audio, nil)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	for m, score := range opts.Best {
		g.best[m] = score
	}
	return g
}

// Reset puts the controller on the home screen with a fresh background and
// starts the music fade-in. Best scores and the mute flag are kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = time.Second / time.Duration(runtime.TickRate)
	g.ticks = 0
	g.now = 0
	g.screen = ScreenHome
	g.session = nil
	g.quit = false
	g.events = g.events[:0]

	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	g.fx = particles.NewEngine(g.rng, g.cfg.Particles.MaxParticles)
	g.sky = decor.NewSky(w, h, g.rng)
	g.bouncers = decor.NewBouncers(w, h, g.cfg.Entities.Size, g.rng)

	g.audio.FadeInMusic(g.cfg.Audio.Fade())
}

// Step advances the controller by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.now += g.tick
	g.events = g.events[:0]

	g.handleInput(in)

	g.sky.Update()
	g.fx.Tick()
	g.audio.Tick(g.tick)

	finished := false
	switch g.screen {
	case ScreenHome:
		g.bouncers.Update(g.now.Seconds())
	case ScreenGame:
		finished = g.stepSession(in)
	case ScreenGameOver:
		if g.now-g.session.overAt >= ms(g.cfg.Timers.GameOverDelayMS) {
			g.goHome()
		}
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

// stepSession runs one tick of play and reports whether the session ended.
func (g *Game) stepSession(in core.InputFrame) bool {
	s := g.session
	if s.paused {
		return false
	}
	s.elapsed += g.tick

	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	s.basket.Move(dir, s.basketBoost())
	s.basket.Update()
	for _, f := range s.entities.Items() {
		f.Update(g.rng)
	}
	s.expireEffects()

	if s.Timed() && s.elapsed >= s.duration {
		g.endSession()
		return true
	}

	g.resolve()
	if s.over {
		return true
	}

	g.spawn()
	g.checkMilestone()
	g.checkLevel()
	return false
}

// handleInput applies the screen-level actions of a frame.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		g.quit = true
	}
	if in.Has(core.ActionMute) {
		g.toggleMute()
	}

	if in.Click != nil {
		p := *in.Click
		g.fx.Crackle(p, core.ColorCyan)
		if g.screen == ScreenInfo {
			g.confirm(p, core.ColorBlue)
			g.screen = ScreenHome
			return
		}
		if b, ok := g.ButtonAt(p); ok {
			g.press(b, p)
		}
	}

	switch g.screen {
	case ScreenHome:
		switch {
		case in.Has(core.ActionBack):
			g.quit = true
		case in.Has(core.ActionStartNormal):
			g.pressID(ButtonNormal)
		case in.Has(core.ActionStartUnlimited):
			g.pressID(ButtonUnlimited)
		case in.Has(core.ActionInfo):
			g.pressID(ButtonInfo)
		}
	case ScreenInfo:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) || in.Has(core.ActionInfo) {
			g.screen = ScreenHome
		}
	case ScreenGame:
		switch {
		case in.Has(core.ActionBack):
			g.logger.Info("session abandoned", "mode", g.session.mode, "score", g.session.score)
			g.goHome()
		case in.Has(core.ActionPause):
			g.session.paused = !g.session.paused
		}
	case ScreenGameOver:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
			g.goHome()
		}
	}
}

// pressID activates a button of the active screen as if it was clicked at
// its center.
func (g *Game) pressID(id ButtonID) {
	if b, ok := g.button(id); ok {
		g.press(b, b.Box.Center())
	}
}

// press activates a button clicked at p.
func (g *Game) press(b Button, p core.Vec) {
	if b.ID == ButtonMute {
		g.toggleMute()
		return
	}
	g.confirm(p, b.Color)
	switch b.ID {
	case ButtonNormal:
		g.startSession(ModeNormal)
	case ButtonUnlimited:
		g.startSession(ModeUnlimited)
	case ButtonInfo:
		g.screen = ScreenInfo
	}
}

// confirm gives the audible and visual feedback of a button press.
func (g *Game) confirm(p core.Vec, color core.Color) {
	g.audio.Play(audio.SoundCorrect)
	g.fx.Burst(p, color, g.cfg.Particles.CatchBurst)
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	g.audio.SetMuted(g.muted)
}

func (g *Game) startSession(mode Mode) {
	g.session = newSession(mode, g.cfg)
	g.lastMode = mode
	g.armTimers()
	g.screen = ScreenGame
	g.logger.Info("session started", "mode", mode)
}

// endSession makes the session terminal and records the best score.
func (g *Game) endSession() {
	s := g.session
	if s.over {
		return
	}
	s.over = true
	s.overAt = g.now
	g.screen = ScreenGameOver

	if s.score > g.best[s.mode] {
		g.best[s.mode] = s.score
	}

	color := core.ColorRed
	if s.mode == ModeUnlimited {
		color = core.ColorYellow
	}
	g.audio.Play(audio.SoundGameOver)
	g.scatter(g.cfg.Particles.GameOverBursts, g.cfg.Particles.GameOverSize, color, 0, g.cfg.Playfield.Height)
	g.emit(Event{Kind: EventGameOver, Value: s.score})
	g.logger.Info("game over", "mode", s.mode, "score", s.score, "level", s.level, "elapsed", s.elapsed)
}

// goHome discards the session.
func (g *Game) goHome() {
	g.session = nil
	g.screen = ScreenHome
}

// State returns the frontend view of the controller.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Screen:   g.screen.String(),
		GameOver: g.screen == ScreenGameOver,
		Muted:    g.muted,
		Quit:     g.quit,
		Best:     g.best[g.lastMode],
	}
	if s := g.session; s != nil {
		st.Mode = s.mode.String()
		st.Score = s.score
		st.Paused = s.paused
	}
	return st
}

// Screen returns the active screen.
func (g *Game) Screen() Screen { return g.screen }

// Session returns the running session, or nil outside of play.
func (g *Game) Session() *Session { return g.session }

// Best returns the best score of a mode.
func (g *Game) Best(m Mode) int { return g.best[m] }

// Muted reports whether audio is muted.
func (g *Game) Muted() bool { return g.muted }

// Events returns the gameplay events of the last tick.
func (g *Game) Events() []Event { return g.events }

// Particles returns the live effect particles.
func (g *Game) Particles() []particles.Particle { return g.fx.Particles() }

// Sky returns the animated background.
func (g *Game) Sky() *decor.Sky { return g.sky }

// Bouncers returns the home screen decoration.
func (g *Game) Bouncers() *decor.Bouncers { return g.bouncers }

// Playfield returns the logical playfield size in pixels.
func (g *Game) Playfield() (w, h float64) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}

// Config returns the game configuration.
func (g *Game) Config() config.CatcherConfig { return g.cfg }

// Ticks returns the number of steps since Reset.
func (g *Game) Ticks() uint64 { return g.ticks }
