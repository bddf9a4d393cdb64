package tui

import (
	"slices"
	"testing"
)

func TestThemeByName(t *testing.T) {
	names := ThemeNames()
	if !slices.IsSorted(names) {
		t.Errorf("ThemeNames not sorted: %v", names)
	}
	for _, name := range names {
		if _, ok := ThemeByName(name); !ok {
			t.Errorf("ThemeByName(%q) not found", name)
		}
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Error("unknown theme should not be found")
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme())

	SetTheme(LavaTheme())
	if CurrentTheme().SelectedBg != LavaTheme().SelectedBg {
		t.Error("SetTheme did not change the current theme")
	}
}
