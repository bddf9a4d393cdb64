package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func boardKeys(m ScoreboardModel, msgs ...tea.KeyMsg) ScoreboardModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}
	return m
}

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{70, 210} {
		if _, err := store.SaveScore("fake", score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	err := store.SaveRuns("fake", []core.LevelRun{
		{LevelID: "01-first-steps", Outcome: core.OutcomeCleared, Duration: 2500 * time.Millisecond, Coins: 3},
	})
	if err != nil {
		t.Fatalf("SaveRuns failed: %v", err)
	}

	tests := []struct {
		name  string
		width int
		keys  []tea.KeyMsg
		want  []string
	}{
		{"scores wide", 100, nil, []string{"HIGH SCORES - Fake", "#1", "210", "70"}},
		{"scores narrow", 60, nil, []string{"HIGH SCORES", "210"}},
		{"levels", 100, []tea.KeyMsg{runeKey("v")}, []string{"LEVEL RECORDS", "01-first-steps", "2.5s"}},
		{"back to scores", 100, []tea.KeyMsg{runeKey("v"), runeKey("v")}, []string{"HIGH SCORES", "210"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := boardKeys(NewScoreboardModel(store, tt.width, 30), tt.keys...)
			view := m.View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	m = boardKeys(m, runeKey("v"))
	if !strings.Contains(m.View(), "No level attempts yet") {
		t.Error("empty level records should say so")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := boardKeys(NewScoreboardModel(nil, 100, 30), tea.KeyMsg{Type: tea.KeyEscape})
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}

	m = boardKeys(NewScoreboardModel(nil, 100, 30), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = next.(ScoreboardModel)
	if m.showSidebar {
		t.Error("narrow terminals should hide the sidebar")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Platformer (Practice)", 10); got != "Platforme." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Fake", 10); got != "Fake" {
		t.Errorf("truncate = %q", got)
	}
}
