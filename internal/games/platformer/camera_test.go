package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

func wideLevel(t *testing.T, playerCol int) *engine.Level {
	t.Helper()
	top := []byte("                                        ")
	top[playerCol] = '@'
	lvl, err := engine.NewLevel([]string{
		"                                        ",
		string(top),
		"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	})
	require.NoError(t, err)
	return lvl
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name             string
		pos, view, level float64
		want             float64
	}{
		{"inside", 5, 10, 40, 5},
		{"before start", -3, 10, 40, 0},
		{"past end", 35, 10, 40, 30},
		{"level smaller than view", 7, 10, 6, -2},
		{"level equals view", 3, 10, 10, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, clampAxis(tc.pos, tc.view, tc.level), 1e-9)
		})
	}
}

func TestCameraSnapCentersPlayer(t *testing.T) {
	lvl := wideLevel(t, 20)
	var c Camera
	c.Snap(Viewport{W: 10, H: 3}, lvl, 0.33)

	// Player center x = 20 + 0.4.
	assert.InDelta(t, 15.4, c.Left, 1e-9)
	assert.InDelta(t, 0, c.Top, 1e-9)
}

func TestCameraSnapClampsAtEdges(t *testing.T) {
	var c Camera
	c.Snap(Viewport{W: 10, H: 3}, wideLevel(t, 1), 0.33)
	assert.InDelta(t, 0, c.Left, 1e-9)

	c.Snap(Viewport{W: 10, H: 3}, wideLevel(t, 39), 0.33)
	assert.InDelta(t, 30, c.Left, 1e-9)
}

func TestCameraFollowKeepsMargin(t *testing.T) {
	lvl := wideLevel(t, 20)
	view := Viewport{W: 10, H: 3}

	c := Camera{Left: 15}
	c.Follow(view, lvl, 0.25)
	assert.InDelta(t, 15, c.Left, 1e-9, "player inside the margins should not scroll")

	c = Camera{Left: 5}
	c.Follow(view, lvl, 0.25)
	assert.InDelta(t, 20.4+2.5-10, c.Left, 1e-9, "player past the right margin pulls the view")

	c = Camera{Left: 19}
	c.Follow(view, lvl, 0.25)
	assert.InDelta(t, 20.4-2.5, c.Left, 1e-9, "player past the left margin pulls the view")
}
