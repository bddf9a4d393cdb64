package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// LevelSelection is the user's choice in the level picker.
type LevelSelection struct {
	LevelID string // Empty means start from the beginning
}

// LevelPickerModel lets the player choose where the campaign starts.
type LevelPickerModel struct {
	levels       []levels.Level
	best         map[string]storage.LevelStat
	cursor       int // 0 is "Start from Beginning", i is levels[i-1]
	scrollOffset int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewLevelPickerModel creates a picker over list. Stats for gameID are read
// from store when it is not nil.
func NewLevelPickerModel(list []levels.Level, store *storage.Store, gameID string, width, height int) LevelPickerModel {
	best := make(map[string]storage.LevelStat)
	if store != nil {
		if stats, err := store.LevelStats(gameID); err == nil {
			for _, st := range stats {
				best[st.LevelID] = st
			}
		}
	}

	return LevelPickerModel{
		levels:    list,
		best:      best,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     CurrentTheme(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor > 0 {
			m.selection = LevelSelection{LevelID: m.levels[m.cursor-1].ID}
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m LevelPickerModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll keeps the cursor inside the visible window of levels.
func (m *LevelPickerModel) updateScroll() {
	if m.cursor == 0 {
		m.scrollOffset = 0
		return
	}
	idx := m.cursor - 1
	visible := m.visibleItems()
	if idx < m.scrollOffset {
		m.scrollOffset = idx
	} else if idx >= m.scrollOffset+visible {
		m.scrollOffset = idx - visible + 1
	}
}

// bestLabel describes the player's record on a level.
func (m LevelPickerModel) bestLabel(id string) string {
	st, ok := m.best[id]
	switch {
	case !ok:
		return "new"
	case st.Clears == 0:
		return fmt.Sprintf("%d tries", st.Attempts)
	default:
		return "best " + formatDuration(st.BestTime)
	}
}

// View renders the level list.
func (m LevelPickerModel) View() string {
	if m.quitting || !m.choosing || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("P L A T F O R M E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Subtitle.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	item := func(active bool, label, detail string) {
		cursor, style := "  ", m.theme.ItemNormal
		if active {
			cursor, style = "> ", m.theme.ItemActive
		}
		line := style.Render(cursor + label)
		if detail != "" {
			line += "  " + m.theme.ItemDetail.Render(detail)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset == 0 {
		item(m.cursor == 0, "Start from Beginning", "")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	for i := m.scrollOffset; i < end; i++ {
		lvl := m.levels[i]
		item(m.cursor == i+1, fmt.Sprintf("%2d. %s", i+1, lvl.Name), m.bestLabel(lvl.ID))
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.Subtitle.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levels) {
		b.WriteString(centerText(m.theme.Subtitle.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelPickerModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelPickerModel) WantsBack() bool {
	return m.back
}

// formatDuration renders a run time as seconds with one decimal.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// RunLevelPicker shows the level picker and returns the selection, or nil
// when the user backed out or quit.
func RunLevelPicker(list []levels.Level, store *storage.Store, gameID string, cfg core.RuntimeConfig) (*LevelSelection, error) {
	model := NewLevelPickerModel(list, store, gameID, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(LevelPickerModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
