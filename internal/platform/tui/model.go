package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	tickGen    uint64 // Ticks from other loops are dropped
	embedded   bool   // Inside a SessionModel: Back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(DefaultHoldDuration),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		tickGen:    nextTickGen(),
	}
}

// WithLogger returns a copy of the model that reports storage failures to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.finish()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case IsMovement(action):
		m.held.Press(action, m.now())

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.inputFrame.Clone()
	m.held.Apply(&frame, m.now())

	result := m.game.Step(frame)
	m.gameState = result.State

	m.saveRuns()
	switch {
	case !m.gameState.GameOver:
		m.scoreSaved = false
	case !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveRuns persists the level attempts the game finished since the last tick.
func (m *Model) saveRuns() {
	reporter, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	runs := reporter.DrainRuns()
	if m.store == nil || len(runs) == 0 {
		return
	}
	if err := m.store.SaveRuns(m.game.ID(), runs); err != nil {
		m.logger.Warn("could not save level runs", "game", m.game.ID(), "err", err)
	}
}

func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
	}
}

// finish flushes pending runs and releases the game's resources.
func (m *Model) finish() {
	m.saveRuns()
	m.held.Reset()
	if c, ok := m.game.(io.Closer); ok {
		if err := c.Close(); err != nil {
			m.logger.Warn("could not close game", "game", m.game.ID(), "err", err)
		}
	}
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game until the user quits or goes back.
// It reports whether the user asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
