package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/game"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, cfg config.CatcherConfig, store *storage.Store) (Model, *game.Game) {
	t.Helper()
	g := game.New(game.Options{Config: cfg})
	m := NewModel(Options{
		Game:  g,
		Store: store,
		Config: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  25,
			TickRate: 60,
			Seed:     1,
		},
	})
	m.Init()
	return m, g
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("1"), core.ActionStartNormal},
		{runes("n"), core.ActionStartNormal},
		{runes("2"), core.ActionStartUnlimited},
		{runes("u"), core.ActionStartUnlimited},
		{runes("i"), core.ActionInfo},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runes("m"), core.ActionMute},
		{runes("p"), core.ActionPause},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestStartFromKey(t *testing.T) {
	m, g := newTestModel(t, config.DefaultCatcherConfig(), nil)

	m, _ = send(t, m, runes("2"))
	m = tick(t, m, 1)

	if g.Screen() != game.ScreenGame || g.Session().Mode() != game.ModeUnlimited {
		t.Fatalf("expected an unlimited session, screen = %v", g.Screen())
	}
	if m.State().Mode != "unlimited" {
		t.Errorf("State().Mode = %q", m.State().Mode)
	}

	// One-shot actions do not repeat.
	m = tick(t, m, 1)
	if g.Screen() != game.ScreenGame {
		t.Error("start key fired twice")
	}
}

func TestHeldKeyWindow(t *testing.T) {
	m, g := newTestModel(t, config.DefaultCatcherConfig(), nil)
	m, _ = send(t, m, runes("1"))
	m = tick(t, m, 1)
	start := g.Session().Basket().TargetX

	m, _ = send(t, m, runes("d"))
	m = tick(t, m, m.holdTicks)
	moved := g.Session().Basket().TargetX - start
	if want := float64(m.holdTicks) * 10; moved != want {
		t.Errorf("basket target moved %v during the hold window, expected %v", moved, want)
	}

	m = tick(t, m, 5)
	if after := g.Session().Basket().TargetX - start; after != moved {
		t.Errorf("basket kept moving after the hold window: %v", after)
	}
}

func TestOppositeKeyCancelsHold(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultCatcherConfig(), nil)

	m, _ = send(t, m, runes("d"))
	m, _ = send(t, m, runes("a"))

	if _, ok := m.held[core.ActionRight]; ok {
		t.Error("right should be released when left is pressed")
	}
	if m.held[core.ActionLeft] != m.holdTicks {
		t.Errorf("left held for %d ticks, expected %d", m.held[core.ActionLeft], m.holdTicks)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultCatcherConfig(), nil)

	m, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestBackOnHomeQuits(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultCatcherConfig(), nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := send(t, m, TickMsg(time.Now()))
	if cmd == nil || !m.State().Quit {
		t.Fatal("esc on home should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestToPlayfield(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultCatcherConfig(), nil)

	p, ok := m.toPlayfield(40, 12)
	if !ok {
		t.Fatal("cell inside the screen was rejected")
	}
	if p.X != 405 || p.Y != 312.5 {
		t.Errorf("toPlayfield(40, 12) = %+v, expected {405 312.5}", p)
	}

	if _, ok := m.toPlayfield(80, 0); ok {
		t.Error("cell right of the screen was accepted")
	}
	if _, ok := m.toPlayfield(0, 24); ok {
		t.Error("help bar row was accepted")
	}
}

func TestMouseClickPressesButton(t *testing.T) {
	m, g := newTestModel(t, config.DefaultCatcherConfig(), nil)

	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)

	if g.Screen() != game.ScreenGame || g.Session().Mode() != game.ModeUnlimited {
		t.Errorf("clicking the unlimited button gave screen %v", g.Screen())
	}

	// Releases and motion are ignored.
	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.pending.Click != nil {
		t.Error("a release should not click")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, config.DefaultCatcherConfig(), nil)
	m, _ = send(t, m, runes("1"))
	m = tick(t, m, 1)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.Screen() != game.ScreenGame {
		t.Error("resizing should not interrupt the session")
	}
}

func TestViewHasHelpBar(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultCatcherConfig(), nil)
	out := m.View()
	if !strings.Contains(out, "quit") || !strings.Contains(out, "mute") {
		t.Errorf("help bar missing from view")
	}
}

func TestFinishedSessionIsSaved(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Basket.Width = cfg.Playfield.Width
	cfg.Difficulty.InitialSpeed = 50
	cfg.Spawn.InitialMinMS = 100
	cfg.Spawn.InitialMaxMS = 100
	cfg.Spawn.BombChance = 0
	cfg.Modes.Unlimited.DurationMS = 2000
	cfg.Modes.Unlimited.PowerUps = false

	store := openStore(t)
	m, g := newTestModel(t, cfg, store)
	m, _ = send(t, m, runes("u"))

	for i := 0; i < 300 && !m.State().GameOver; i++ {
		m = tick(t, m, 1)
	}
	if !m.State().GameOver {
		t.Fatal("session did not end")
	}

	scores, err := store.TopScores("unlimited", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved score, got %d", len(scores))
	}
	if scores[0].Score != g.Session().Score() || scores[0].Score <= 0 {
		t.Errorf("saved %d, session scored %d", scores[0].Score, g.Session().Score())
	}

	// The game over screen does not save again.
	m = tick(t, m, 30)
	scores, _ = store.TopScores("unlimited", 10)
	if len(scores) != 1 {
		t.Errorf("score saved %d times", len(scores))
	}
}

func TestLoadBest(t *testing.T) {
	logger := log.New(io.Discard)
	if best := LoadBest(nil, logger); len(best) != 0 {
		t.Errorf("LoadBest(nil) = %v", best)
	}

	store := openStore(t)
	store.SaveScore("normal", 1200)
	store.SaveScore("normal", 800)
	store.SaveScore("unlimited", 3100)
	store.SaveScore("legacy", 99)

	best := LoadBest(store, logger)
	if best[game.ModeNormal] != 1200 || best[game.ModeUnlimited] != 3100 || len(best) != 2 {
		t.Errorf("LoadBest() = %v", best)
	}
}
