package engine

import (
	"math"
	"math/rand"
	"time"
)

// Option configures level construction.
type Option func(*options)

type options struct {
	params Params
	rng    *rand.Rand
}

// WithParams overrides the tuning constants.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithRand sets the source for coin wobble phases.
// Phases never affect collisions, so the default time-seeded source is fine
// outside of tests.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// Level is one running level: an immutable tile grid plus live actors.
type Level struct {
	width  int
	height int
	grid   [][]Tile // [y][x], immutable after construction
	actors []Actor  // Plan scan order
	player int      // Index of the player in actors

	status      Status
	finishDelay float64

	params  Params
	removed map[Actor]struct{} // Coins picked up during the current sub-step
	events  []Event
}

// NewLevel parses a level plan into a Level.
//
// Plan characters:
//
//	'x' = wall        '!' = static lava
//	'@' = player      'o' = coin
//	'=' = lava moving horizontally
//	'|' = lava bouncing vertically
//	'v' = dripping lava
//
// Anything else is empty space. All rows must have the same length and the
// plan must contain exactly one player.
func NewLevel(plan []string, opts ...Option) (*Level, error) {
	o := options{params: DefaultParams()}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.params.MaxStep > 0) {
		o.params.MaxStep = DefaultParams().MaxStep
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- cosmetic only
	}

	if len(plan) == 0 || len(plan[0]) == 0 {
		return nil, &PlanError{Row: -1, Col: -1, Err: ErrEmptyPlan}
	}

	l := &Level{
		width:   len(plan[0]),
		height:  len(plan),
		grid:    make([][]Tile, len(plan)),
		player:  -1,
		status:  StatusRunning,
		params:  o.params,
		removed: make(map[Actor]struct{}),
	}

	for y, line := range plan {
		if len(line) != l.width {
			return nil, &PlanError{Row: y, Col: -1, Err: ErrRaggedPlan}
		}

		row := make([]Tile, l.width)
		for x := 0; x < l.width; x++ {
			ch := line[x]
			cell := V(float64(x), float64(y))

			switch ch {
			case '@':
				if l.player >= 0 {
					return nil, &PlanError{Row: y, Col: x, Err: ErrMultiplePlayers}
				}
				l.player = len(l.actors)
				l.actors = append(l.actors, newPlayer(cell))
			case 'o':
				l.actors = append(l.actors, newCoin(cell, o.rng.Float64()*2*math.Pi))
			case '=', '|', 'v':
				l.actors = append(l.actors, newLava(cell, ch))
			default:
				row[x] = tileFor(ch)
			}
		}
		l.grid[y] = row
	}

	if l.player < 0 {
		return nil, &PlanError{Row: -1, Col: -1, Err: ErrNoPlayer}
	}

	return l, nil
}

// Width returns the number of columns.
func (l *Level) Width() int { return l.width }

// Height returns the number of rows.
func (l *Level) Height() int { return l.height }

// Params returns the tuning the level was built with.
func (l *Level) Params() Params { return l.params }

// Tile returns the tile at (x, y), or TileEmpty outside the grid.
func (l *Level) Tile(x, y int) Tile {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return TileEmpty
	}
	return l.grid[y][x]
}

// Actors returns the live actors in scan order.
// The slice is owned by the level and must not be modified.
func (l *Level) Actors() []Actor {
	return l.actors
}

// Player returns the level's player.
func (l *Level) Player() *Player {
	return l.actors[l.player].(*Player)
}

// CoinsLeft returns the number of coins not yet collected.
func (l *Level) CoinsLeft() int {
	n := 0
	for _, a := range l.actors {
		if a.Kind() != KindCoin {
			continue
		}
		if _, gone := l.removed[a]; gone {
			continue
		}
		n++
	}
	return n
}
