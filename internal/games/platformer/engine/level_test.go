package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLevel builds a level with a fixed coin phase source.
func newTestLevel(t *testing.T, plan ...string) *Level {
	t.Helper()
	l, err := NewLevel(plan, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return l
}

func TestNewLevelPlacesTilesAndActors(t *testing.T) {
	l := newTestLevel(t,
		"x   x",
		"x@o x",
		"x=|vx",
		"xx!xx",
	)

	assert.Equal(t, 5, l.Width())
	assert.Equal(t, 4, l.Height())

	assert.Equal(t, TileWall, l.Tile(0, 0))
	assert.Equal(t, TileLava, l.Tile(2, 3))
	assert.Equal(t, TileEmpty, l.Tile(1, 1), "player cell is empty")
	assert.Equal(t, TileEmpty, l.Tile(2, 1), "coin cell is empty")
	assert.Equal(t, TileEmpty, l.Tile(1, 2), "lava actor cell is empty")
	assert.Equal(t, TileEmpty, l.Tile(-1, 0), "outside the grid")

	actors := l.Actors()
	require.Len(t, actors, 5)

	kinds := make([]ActorKind, len(actors))
	for i, a := range actors {
		kinds[i] = a.Kind()
	}
	assert.Equal(t, []ActorKind{KindPlayer, KindCoin, KindLava, KindLava, KindLava}, kinds)

	p := l.Player()
	assert.Same(t, actors[0], Actor(p))
	assert.Equal(t, V(1, 0.5), p.Pos())
	assert.Equal(t, V(0.8, 1.5), p.Size())
	assert.Equal(t, V(0, 0), p.Velocity())

	coin := actors[1].(*Coin)
	assert.Equal(t, V(2.2, 1.1), coin.BasePos())
	assert.Equal(t, V(0.6, 0.6), coin.Size())

	horizontal := actors[2].(*Lava)
	assert.Equal(t, LavaHorizontal, horizontal.Motion())
	assert.Equal(t, V(1, 2), horizontal.Pos())
	assert.Equal(t, V(1, 1), horizontal.Size())
	assert.Equal(t, V(2, 0), horizontal.Velocity())

	bounce := actors[3].(*Lava)
	assert.Equal(t, LavaBounce, bounce.Motion())
	assert.Equal(t, V(0, 2), bounce.Velocity())

	drip := actors[4].(*Lava)
	assert.Equal(t, LavaDrip, drip.Motion())
	assert.Equal(t, V(0, 3), drip.Velocity())
	assert.Equal(t, V(3, 2), drip.ResetPos())

	assert.Equal(t, StatusRunning, l.Status())
	assert.Equal(t, 1, l.CoinsLeft())
	assert.False(t, l.IsFinished())
}

func TestNewLevelUnknownCharactersAreEmpty(t *testing.T) {
	l := newTestLevel(t,
		"x#?x",
		"x@ x",
	)
	assert.Equal(t, TileEmpty, l.Tile(1, 0))
	assert.Equal(t, TileEmpty, l.Tile(2, 0))
}

func TestNewLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		plan []string
		want error
		row  int
		col  int
	}{
		{"nil plan", nil, ErrEmptyPlan, -1, -1},
		{"empty first row", []string{""}, ErrEmptyPlan, -1, -1},
		{"ragged rows", []string{"x@x", "xx"}, ErrRaggedPlan, 1, -1},
		{"no player", []string{"xxx", "x x"}, ErrNoPlayer, -1, -1},
		{"two players", []string{"x@ x", "x @x"}, ErrMultiplePlayers, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLevel(tt.plan)
			require.Error(t, err)
			assert.Nil(t, l)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var planErr *PlanError
			require.ErrorAs(t, err, &planErr)
			assert.Equal(t, tt.row, planErr.Row)
			assert.Equal(t, tt.col, planErr.Col)
		})
	}
}

func TestPlanErrorMessage(t *testing.T) {
	assert.Equal(t, "level plan has no player",
		(&PlanError{Row: -1, Col: -1, Err: ErrNoPlayer}).Error())
	assert.Equal(t, "row 2: level plan rows differ in length",
		(&PlanError{Row: 2, Col: -1, Err: ErrRaggedPlan}).Error())
	assert.Equal(t, "row 1 col 3: level plan has more than one player",
		(&PlanError{Row: 1, Col: 3, Err: ErrMultiplePlayers}).Error())
}

func TestWithRandMakesCoinPhasesReproducible(t *testing.T) {
	plan := []string{"o o o", "  @  "}

	a, err := NewLevel(plan, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	b, err := NewLevel(plan, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	require.Len(t, a.Actors(), len(b.Actors()))
	for i := range a.Actors() {
		ca, ok := a.Actors()[i].(*Coin)
		if !ok {
			continue
		}
		cb := b.Actors()[i].(*Coin)
		assert.Equal(t, ca.Phase(), cb.Phase())
		assert.GreaterOrEqual(t, ca.Phase(), 0.0)
		assert.Less(t, ca.Phase(), 2*math.Pi)
	}
}

func TestWithParamsOverridesTuning(t *testing.T) {
	params := DefaultParams()
	params.Gravity = 10

	l, err := NewLevel([]string{"@"}, WithParams(params))
	require.NoError(t, err)
	assert.Equal(t, 10.0, l.Params().Gravity)

	params.MaxStep = 0
	l, err = NewLevel([]string{"@"}, WithParams(params))
	require.NoError(t, err)
	assert.Equal(t, DefaultParams().MaxStep, l.Params().MaxStep)
}
