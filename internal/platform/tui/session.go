package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPicker
	screenScores
	screenGame
)

// SessionModel manages the full flow of one player:
// menu -> level picker -> game -> menu, with the scoreboard off the menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	levels   []levels.Level
	logger   *log.Logger
	screen   sessionScreen
	menu     MenuModel
	picker   LevelPickerModel
	board    ScoreboardModel
	gameID   string
	game     Model
	quitting bool
}

// NewSessionModel creates a session starting at the menu. list feeds the
// level picker; when it is empty games start at their first level.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, list []levels.Level, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		config: cfg,
		levels: list,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPicker:
		return m.updatePicker(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil // Stale tick from a game that just ended
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		m.gameID = m.menu.Selected().GameID
		if m.canPickLevel() {
			m.screen = screenPicker
			m.picker = NewLevelPickerModel(m.levels, m.store, m.gameID, m.config.ScreenW, m.config.ScreenH)
			return m, m.picker.Init()
		}
		return m.startGame("")
	}

	return m, cmd
}

// canPickLevel reports whether the selected game can start mid-campaign.
func (m SessionModel) canPickLevel() bool {
	if len(m.levels) == 0 {
		return false
	}
	game, err := registry.Create(m.gameID)
	if err != nil {
		return false
	}
	_, ok := game.(registry.LevelStarter)
	return ok
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if picker, ok := next.(LevelPickerModel); ok {
		m.picker = picker
	}

	switch {
	case m.picker.IsQuitting():
		return m.quit()
	case m.picker.WantsBack():
		return m.toMenu()
	case m.picker.Selected() != nil:
		return m.startGame(m.picker.Selected().LevelID)
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	switch {
	case m.board.IsQuitting():
		return m.quit()
	case m.board.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) startGame(levelID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", m.gameID, "err", err)
		return m.toMenu()
	}
	if starter, ok := game.(registry.LevelStarter); ok {
		starter.StartAt(levelID)
	}

	m.logger.Info("game started", "game", m.gameID, "level", levelID)
	m.game = NewModel(game, m.store, m.config).WithLogger(m.logger)
	m.game.embedded = true
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.logger.Info("game ended", "game", m.gameID, "score", m.game.gameState.Score)
		return m.quit()
	case m.game.BackToMenu():
		m.logger.Info("game ended", "game", m.gameID, "score", m.game.gameState.Score)
		return m.toMenu()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPicker:
		return m.picker.View()
	case screenScores:
		return m.board.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, list []levels.Level, logger *log.Logger) error {
	p := tea.NewProgram(NewSessionModel(store, cfg, list, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
