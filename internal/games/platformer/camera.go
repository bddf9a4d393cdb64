package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

// Viewport is the visible area in tiles.
type Viewport struct {
	W, H float64
}

// Camera is the top-left corner of the viewport in level tiles.
type Camera struct {
	Left, Top float64
}

// Follow scrolls just enough to keep the player at least margin
// (a fraction of the viewport) away from the view edges.
func (c *Camera) Follow(view Viewport, lvl *engine.Level, margin float64) {
	center := playerCenter(lvl)
	c.Left = scrollAxis(c.Left, center.X, view.W, float64(lvl.Width()), margin)
	c.Top = scrollAxis(c.Top, center.Y, view.H, float64(lvl.Height()), margin)
}

// Snap centers the view on the player.
func (c *Camera) Snap(view Viewport, lvl *engine.Level, _ float64) {
	center := playerCenter(lvl)
	c.Left = clampAxis(center.X-view.W/2, view.W, float64(lvl.Width()))
	c.Top = clampAxis(center.Y-view.H/2, view.H, float64(lvl.Height()))
}

func playerCenter(lvl *engine.Level) engine.Vec {
	p := lvl.Player()
	return p.Pos().Plus(p.Size().Scale(0.5))
}

func scrollAxis(pos, center, view, level, margin float64) float64 {
	m := view * core.ClampF(margin, 0, 0.5)
	switch {
	case center < pos+m:
		pos = center - m
	case center > pos+view-m:
		pos = center + m - view
	}
	return clampAxis(pos, view, level)
}

// clampAxis keeps the view inside the level, or centers a level that is
// smaller than the view.
func clampAxis(pos, view, level float64) float64 {
	if level <= view {
		return -(view - level) / 2
	}
	return core.ClampF(pos, 0, level-view)
}
