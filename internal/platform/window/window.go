// Package window runs the game in a desktop window through ebiten. The
// playfield is drawn at its native pixel size and scaled by ebiten when the
// window is resized.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/game"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

// Title is the window title.
const Title = "Neon Fruit Catcher"

// Options configure a Window.
type Options struct {
	Game   *game.Game
	Store  *storage.Store // nil disables persistence
	Logger *log.Logger    // nil discards
	Config core.RuntimeConfig
	Scale  float64 // initial window size relative to the playfield; 0 means 1
}

// Window adapts a game controller to ebiten.Game.
type Window struct {
	game   *game.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   Keys

	state   core.GameState
	showFPS bool
}

// New creates a window around g. The controller is reset with the runtime
// config before the first frame.
func New(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	w := &Window{
		game:   opts.Game,
		store:  opts.Store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeys(),
	}
	w.game.Reset(cfg)
	return w
}

// Update advances the game one tick with the keys and clicks seen this frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		w.showFPS = !w.showFPS
	}

	in := w.keys.Frame()
	if p, ok := clicked(); ok {
		in.ClickAt(p)
	}

	result := w.game.Step(in)
	w.state = result.State
	if result.Finished {
		w.saveResult()
	}
	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the active screen.
func (w *Window) Draw(screen *ebiten.Image) {
	draw(screen, w.game)
	if w.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, screen.Bounds().Dy()-20)
	}
}

// Layout keeps the logical screen at the playfield size.
func (w *Window) Layout(int, int) (int, int) {
	pw, ph := w.game.Playfield()
	return int(pw), int(ph)
}

// State returns the game state after the last Update.
func (w *Window) State() core.GameState {
	return w.state
}

// saveResult records the session that just ended. Errors are logged.
func (w *Window) saveResult() {
	s := w.game.Session()
	if w.store == nil || s == nil || s.Score() <= 0 {
		return
	}
	_, err := w.store.SaveResult(storage.Result{
		Mode:     s.Mode().String(),
		Score:    s.Score(),
		Level:    s.Level(),
		Duration: s.Elapsed(),
	})
	if err != nil {
		w.logger.Warn("could not save score", "mode", s.Mode(), "score", s.Score(), "error", err)
		return
	}
	w.logger.Info("score saved", "mode", s.Mode(), "score", s.Score())
}

// Run opens the window and blocks until the player quits or closes it.
func Run(opts Options) error {
	w := New(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	pw, ph := w.game.Playfield()
	ebiten.SetWindowSize(int(pw*scale), int(ph*scale))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
