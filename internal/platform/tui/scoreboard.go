package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 20  // Width of game list sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	View     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.View, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.View, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev game"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "scores/levels"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardView selects what the scoreboard table lists.
type ScoreboardView int

const (
	ViewScores ScoreboardView = iota // Top scores of the game
	ViewLevels                       // Per-level attempts and records
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games       []registry.GameInfo // List of available games
	gameCursor  int                 // Currently selected game index
	store       *storage.Store      // Score storage
	view        ScoreboardView
	scores      []storage.ScoreEntry
	stats       []storage.LevelStat
	theme       Theme
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show game list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	games := registry.List()

	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:       games,
		gameCursor:  0,
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		theme:       CurrentTheme(),
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.reload()

	return m
}

// columns returns the table columns for the current view and width.
func (m *ScoreboardModel) columns() []table.Column {
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}

	if m.view == ViewLevels {
		return []table.Column{
			{Title: "Level", Width: max(min(tableWidth-44, 20), 8)},
			{Title: "Tries", Width: 6},
			{Title: "Clears", Width: 7},
			{Title: "Deaths", Width: 7},
			{Title: "Best", Width: 8},
			{Title: "Coins", Width: 6},
		}
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[2].Width = min(tableWidth-22, 20)
	}
	return columns
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(m.theme.SelectedFg).
		Background(m.theme.SelectedBg).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload reads the current game's records for the current view.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		gameID := m.games[m.gameCursor].ID
		if m.view == ViewLevels {
			//nolint:errcheck // Unreadable stats show as empty
			m.stats, _ = m.store.LevelStats(gameID)
		} else {
			//nolint:errcheck // Unreadable scores show as empty
			m.scores, _ = m.store.TopScores(gameID, maxScores)
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded records.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == ViewLevels {
		rows = make([]table.Row, len(m.stats))
		for i, st := range m.stats {
			best := "-"
			if st.Clears > 0 {
				best = formatDuration(st.BestTime)
			}
			rows[i] = table.Row{
				st.LevelID,
				fmt.Sprintf("%d", st.Attempts),
				fmt.Sprintf("%d", st.Clears),
				fmt.Sprintf("%d", st.Deaths),
				best,
				fmt.Sprintf("%d", st.MostCoins),
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}

	// Columns change with the view, so clear rows first to keep them in step.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor--
				if m.gameCursor < 0 {
					m.gameCursor = len(m.games) - 1
				}
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.View):
			if m.view == ViewScores {
				m.view = ViewLevels
			} else {
				m.view = ViewScores
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	heading := "HIGH SCORES"
	if m.view == ViewLevels {
		heading = "LEVEL RECORDS"
	}
	title := heading
	if len(m.games) > 0 {
		title = fmt.Sprintf("%s - %s", heading, m.games[m.gameCursor].Title)
	}

	b.WriteString(centerText(m.theme.Title.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))

	return b.String()
}

// panel wraps content in the themed rounded border.
func (m ScoreboardModel) panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
}

// truncate shortens name to at most n cells.
func truncate(name string, n int) string {
	r := []rune(name)
	if len(r) <= n {
		return name
	}
	return string(r[:n-1]) + "."
}

// renderWideLayout renders the game list as a sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor, style := "  ", m.theme.ItemNormal
		if i == m.gameCursor {
			cursor, style = "> ", m.theme.ItemActive
		}
		sidebar.WriteString(style.Render(cursor + truncate(g.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel().Width(sidebarWidth).Render(sidebar.String()),
		"  ",
		m.panel().Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders game tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.games) > 0 {
		active := lipgloss.NewStyle().
			Bold(true).
			Foreground(m.theme.SelectedFg).
			Background(m.theme.SelectedBg).
			Padding(0, 1)

		tabs := make([]string, len(m.games))
		for i, g := range m.games {
			name := truncate(g.Title, 10)
			if i == m.gameCursor {
				tabs[i] = active.Render(name)
			} else {
				tabs[i] = m.theme.Controls.Render(" " + name + " ")
			}
		}

		tabLine := strings.Join(tabs, " ")
		if lipgloss.Width(tabLine) > m.width-4 {
			tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
		}
		b.WriteString(centerText(tabLine, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(m.panel().Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.view == ViewLevels && len(m.stats) == 0 {
		return m.theme.EmptyNotice.Render("No level attempts yet.\nClear a level to set a record!")
	}
	if m.view == ViewScores && len(m.scores) == 0 {
		return m.theme.EmptyNotice.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
