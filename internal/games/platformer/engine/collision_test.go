package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObstacleAtOutOfBounds(t *testing.T) {
	l := newTestLevel(t,
		"     ",
		"  @  ",
		"     ",
	)

	tests := []struct {
		name string
		pos  Vec
		size Vec
		want Tile
	}{
		{"left", V(-2, 1), V(1, 1), TileWall},
		{"partly left", V(-0.1, 1), V(1, 1), TileWall},
		{"right", V(5, 1), V(1, 1), TileWall},
		{"partly right", V(4.5, 1), V(0.8, 1), TileWall},
		{"above", V(2, -3), V(1, 1), TileWall},
		{"partly above", V(2, -0.5), V(0.8, 1.5), TileWall},
		{"below", V(2, 4), V(1, 1), TileLava},
		{"partly below", V(2, 2.5), V(1, 1), TileLava},
		{"below and left", V(-1, 4), V(1, 1), TileWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.ObstacleAt(tt.pos, tt.size))
		})
	}
}

func TestObstacleAtEmptyRegion(t *testing.T) {
	l := newTestLevel(t,
		"xxxxxx",
		"x    x",
		"x  @ x",
		"x    x",
		"xxxxxx",
	)

	rects := []struct{ pos, size Vec }{
		{V(1, 1), V(4, 3)},
		{V(1.3, 1.2), V(3.7, 2.8)},
		{V(2.5, 2.5), V(0.1, 0.1)},
		{V(1, 1), V(1, 1)},
	}
	for _, r := range rects {
		assert.Equal(t, TileEmpty, l.ObstacleAt(r.pos, r.size), "rect at %v size %v", r.pos, r.size)
	}

	// Touching a wall edge without crossing it is not a hit.
	assert.Equal(t, TileEmpty, l.ObstacleAt(V(4, 1), V(1, 1)))
	assert.Equal(t, TileWall, l.ObstacleAt(V(4.01, 1), V(1, 1)))
}

func TestObstacleAtFirstHitWins(t *testing.T) {
	wallFirst := newTestLevel(t, "x! ", "!x ", "  @")
	assert.Equal(t, TileWall, wallFirst.ObstacleAt(V(0, 0), V(2, 2)))

	lavaFirst := newTestLevel(t, "!x ", "x! ", "  @")
	assert.Equal(t, TileLava, lavaFirst.ObstacleAt(V(0, 0), V(2, 2)))
}

func TestActorAt(t *testing.T) {
	t.Run("lava above player", func(t *testing.T) {
		l := newTestLevel(t, "=", "@")
		lava := l.Actors()[0]
		assert.Same(t, lava, l.ActorAt(l.Player()))
		assert.Same(t, Actor(l.Player()), l.ActorAt(lava))
	})

	t.Run("coin above player", func(t *testing.T) {
		l := newTestLevel(t, "o", "@")
		assert.Equal(t, KindCoin, l.ActorAt(l.Player()).Kind())
	})

	t.Run("neighbours do not overlap", func(t *testing.T) {
		l := newTestLevel(t, "@o=")
		assert.Nil(t, l.ActorAt(l.Player()))
	})

	t.Run("first in list order wins", func(t *testing.T) {
		l := newTestLevel(t, "=o", "@ ")
		coin := l.Actors()[1].(*Coin)
		coin.pos = V(0.2, 0.6)
		assert.Equal(t, KindLava, l.ActorAt(l.Player()).Kind())

		l = newTestLevel(t, "o=", "@ ")
		lava := l.Actors()[1].(*Lava)
		lava.pos = V(0, 0)
		assert.Equal(t, KindCoin, l.ActorAt(l.Player()).Kind())
	})

	t.Run("collected coin is ignored", func(t *testing.T) {
		l := newTestLevel(t, "o", "@")
		coin := l.Actors()[0]
		l.removed[coin] = struct{}{}
		assert.Nil(t, l.ActorAt(l.Player()))
	})
}
