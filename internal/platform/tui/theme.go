package tui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles shared by the menu, level picker and scoreboard.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemDetail  lipgloss.Style // Best time next to a level
	Controls    lipgloss.Style
	Border      lipgloss.Color
	SelectedFg  lipgloss.Color
	SelectedBg  lipgloss.Color
	EmptyNotice lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemDetail:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:      lipgloss.Color("240"),
		SelectedFg:  lipgloss.Color("229"),
		SelectedBg:  lipgloss.Color("57"),
		EmptyNotice: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	}
}

// LavaTheme returns a warm theme.
func LavaTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	theme.SelectedFg = lipgloss.Color("230")
	theme.SelectedBg = lipgloss.Color("124")
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.ItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Reverse(true)
	theme.SelectedFg = lipgloss.Color("232")
	theme.SelectedBg = lipgloss.Color("250")
	return theme
}

var themes = map[string]func() Theme{
	"default":    DefaultTheme,
	"lava":       LavaTheme,
	"monochrome": MonochromeTheme,
}

// ThemeNames lists the themes accepted by ThemeByName.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, bool) {
	f, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return f(), true
}

// Global theme (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// CurrentTheme returns the global theme.
func CurrentTheme() Theme {
	return currentTheme
}
