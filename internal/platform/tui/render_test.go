package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightWhite; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "Score", core.ColorBrightYellow)
	s.DrawText(6, 0, "10")
	s.DrawTextColor(2, 2, "@@", core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "Score") || !strings.Contains(lines[0], "10") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "@@") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}
