package platformer

import "math"

// Snapshot is the observable game state in primitive types.
type Snapshot struct {
	Tick          int
	Score         int
	Lives         int
	LevelIndex    int
	LevelID       string
	LevelsCleared int
	State         string
	Mode          int // 0=Campaign, 1=Practice

	// Level state
	Status      string
	FinishDelay float64
	CoinsLeft   int
	PlayerX     float64
	PlayerY     float64
	PlayerVX    float64
	PlayerVY    float64
	PlayerH     float64

	// Every actor in list order, 3 values each: kind, x, y.
	ActorData []float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tickCount,
		Score:         g.score,
		Lives:         g.lives,
		LevelIndex:    g.levelIndex,
		LevelsCleared: g.levelsCleared,
		State:         g.state,
		Mode:          int(g.mode),
	}
	if g.level == nil {
		return snap
	}

	snap.LevelID = g.list[g.levelIndex].ID
	snap.Status = g.level.Status().String()
	snap.FinishDelay = g.level.FinishDelay()
	snap.CoinsLeft = g.level.CoinsLeft()

	p := g.level.Player()
	snap.PlayerX, snap.PlayerY = p.Pos().X, p.Pos().Y
	snap.PlayerVX, snap.PlayerVY = p.Velocity().X, p.Velocity().Y
	snap.PlayerH = p.Size().Y

	actors := g.level.Actors()
	snap.ActorData = make([]float64, 0, len(actors)*3)
	for _, a := range actors {
		snap.ActorData = append(snap.ActorData, float64(a.Kind()), a.Pos().X, a.Pos().Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelsCleared) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CoinsLeft)     //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.LevelID)
	h = h*31 + hashString(snap.State)
	h = h*31 + hashString(snap.Status)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVX)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + math.Float64bits(snap.PlayerH)
	h = h*31 + math.Float64bits(snap.FinishDelay)

	for _, v := range snap.ActorData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
