package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/game"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

// holdWindow is how long a movement key counts as held after the last
// press or repeat event.
const holdWindow = 100 * time.Millisecond

var (
	screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configure a Model.
type Options struct {
	Game   *game.Game
	Store  *storage.Store // nil disables persistence
	Logger *log.Logger    // nil discards
	Config core.RuntimeConfig
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	pending   core.InputFrame     // one-shot actions since the last tick
	held      map[core.Action]int // movement action -> ticks left
	holdTicks int
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      opts.Game,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		pending:   core.NewInputFrame(),
		held:      make(map[core.Action]int),
		holdTicks: max(1, int(holdWindow*time.Duration(cfg.TickRate)/time.Second)),
	}
}

// playHeight leaves the bottom row for the help bar.
func playHeight(h int) int {
	return max(1, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, screenshotKey) {
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	switch {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case isHeld(a):
		delete(m.held, opposite(a))
		m.held[a] = m.holdTicks
	case a != core.ActionNone:
		m.pending.Set(a)
	}
	return m, nil
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// handleMouse turns a left click into a playfield click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.toPlayfield(msg.X, msg.Y); ok {
		m.pending.ClickAt(p)
	}
	return m, nil
}

// toPlayfield maps the center of a terminal cell to playfield pixels.
func (m Model) toPlayfield(x, y int) (core.Vec, bool) {
	sw, sh := m.screen.Width(), m.screen.Height()
	if x < 0 || y < 0 || x >= sw || y >= sh {
		return core.Vec{}, false
	}
	w, h := m.game.Playfield()
	return core.Vec{
		X: (float64(x) + 0.5) * w / float64(sw),
		Y: (float64(y) + 0.5) * h / float64(sh),
	}, true
}

// handleResize processes window resize events. The playfield is resolution
// independent, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.pending.Clone()
	for a, n := range m.held {
		in.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.pending.Clear()

	if result.Finished {
		m.saveResult()
	}
	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult records the session that just ended. Storage errors are logged;
// the game continues regardless.
func (m Model) saveResult() {
	s := m.game.Session()
	if m.store == nil || s == nil || s.Score() <= 0 {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Mode:     s.Mode().String(),
		Score:    s.Score(),
		Level:    s.Level(),
		Duration: s.Elapsed(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "mode", s.Mode(), "score", s.Score(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".catcher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("catcher_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
