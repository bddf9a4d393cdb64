package platformer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

const (
	// The player drops onto the only coin.
	winLevel = `plan: ["x x", "x@x", "x x", "xox", "xxx"]`
	// The player drops into lava.
	loseLevel = `plan: ["x x", "x@x", "x x", "x!x", "xxx"]`
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

// newTestGame builds a game over in-memory level files, keyed by id.
func newTestGame(t *testing.T, mode GameMode, plans map[string]string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	fsys := fstest.MapFS{}
	for id, body := range plans {
		fsys[id+".yaml"] = &fstest.MapFile{Data: []byte("id: " + id + "\nname: Level " + strings.ToUpper(id) + "\n" + body + "\n")}
	}

	g := newGame(mode)
	g.configPath = ""
	g.preset = ""
	g.levelsDir = ""
	g.watch = false
	g.startID = ""
	g.loader = levels.NewFSLoader(fsys, "test")
	return g
}

// stepUntil steps with no input until done reports true or limit ticks pass.
func stepUntil(g *Game, limit int, done func() bool) bool {
	for range limit {
		if done() {
			return true
		}
		g.Step(core.NewInputFrame())
	}
	return done()
}

func TestCampaignAdvancesOnWin(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"a": winLevel, "b": winLevel})
	g.Reset(testRuntime())
	require.NoError(t, g.loadErr)

	assert.Equal(t, "a", g.Snapshot().LevelID)

	require.True(t, stepUntil(g, 500, func() bool { return g.levelIndex == 1 }))
	snap := g.Snapshot()
	assert.Equal(t, "b", snap.LevelID)
	assert.Equal(t, 110, snap.Score)
	assert.Equal(t, 3, snap.Lives)
	assert.Equal(t, "running", snap.Status)

	require.True(t, stepUntil(g, 500, func() bool { return g.state == StateWin }))
	state := g.State()
	assert.True(t, state.GameOver)
	assert.Equal(t, 220, state.Score)
	assert.Equal(t, 2, g.levelsCleared)

	runs := g.DrainRuns()
	require.Len(t, runs, 2)
	for i, id := range []string{"a", "b"} {
		assert.Equal(t, id, runs[i].LevelID)
		assert.Equal(t, core.OutcomeCleared, runs[i].Outcome)
		assert.Equal(t, 1, runs[i].Coins)
		assert.Greater(t, runs[i].Duration, time.Second)
	}
	assert.Empty(t, g.DrainRuns(), "runs are drained once")
}

func TestCampaignLosesLives(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"lava": loseLevel})
	g.Reset(testRuntime())

	require.True(t, stepUntil(g, 100, func() bool { return g.level.Status() == engine.StatusLost }))
	assert.Equal(t, 3, g.lives, "a life is lost only after the death animation")

	require.True(t, stepUntil(g, 200, func() bool { return g.lives == 2 }))
	assert.Equal(t, "running", g.Snapshot().Status, "the same level restarts")
	assert.Equal(t, "lava", g.Snapshot().LevelID)

	require.True(t, stepUntil(g, 1000, func() bool { return g.State().GameOver }))
	assert.Equal(t, StateGameOver, g.state)
	assert.Equal(t, 0, g.lives)

	runs := g.DrainRuns()
	require.Len(t, runs, 3)
	for _, r := range runs {
		assert.Equal(t, core.OutcomeDied, r.Outcome)
		assert.Zero(t, r.Coins)
	}

	// Nothing moves after game over.
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	assert.Equal(t, before, g.Snapshot())

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	assert.Equal(t, StatePlaying, g.state)
	assert.Equal(t, 3, g.lives)
	assert.Zero(t, g.score)
}

func TestPracticeNeverEnds(t *testing.T) {
	g := newTestGame(t, ModePractice, map[string]string{"lava": loseLevel})
	g.Reset(testRuntime())

	for range 600 {
		g.Step(core.NewInputFrame())
	}
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 3, g.lives)
	assert.GreaterOrEqual(t, len(g.DrainRuns()), 3)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"lava": loseLevel})
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	require.True(t, g.State().Paused)
	frozen := g.Snapshot()

	for range 30 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, frozen, g.Snapshot())

	g.Step(pause)
	assert.False(t, g.State().Paused)
	assert.Greater(t, g.Snapshot().PlayerY, frozen.PlayerY, "gravity resumes")
}

func TestFrameTimeIsClamped(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"lava": loseLevel})
	rt := testRuntime()
	rt.TickRate = 2 // 0.5s per tick
	g.Reset(rt)

	g.Step(core.NewInputFrame())

	// Two 0.05s sub-steps from rest: 1.5*0.05 + 3*0.05.
	assert.InDelta(t, 0.5+0.225, g.Snapshot().PlayerY, 1e-9)
	assert.Equal(t, "running", g.Snapshot().Status)
}

func TestStartLevel(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"a": winLevel, "b": winLevel})
	g.StartAt("b")
	g.Reset(testRuntime())
	assert.Equal(t, "b", g.Snapshot().LevelID)

	g = newTestGame(t, ModeCampaign, map[string]string{"a": winLevel})
	g.startID = "missing"
	g.Reset(testRuntime())
	assert.Equal(t, "a", g.Snapshot().LevelID)
}

func TestNoLevels(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"broken": `plan: ["@@"]`})
	g.Reset(testRuntime())
	require.Error(t, g.loadErr)

	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "NO LEVELS")
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 50:
			inputs[i].Set(core.ActionRight)
		case i%90 < 60:
			inputs[i].Set(core.ActionLeft)
		}
		if i%45 == 20 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		t.Setenv("HOME", t.TempDir())
		g := New()
		g.configPath, g.preset, g.levelsDir, g.startID = "", "", "", ""
		g.Reset(testRuntime())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)
	assert.Positive(t, snap1.Tick)
}

func TestRenderDrawsLevel(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"a": winLevel})
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "1/1 Level A")
	assert.Contains(t, screen.Row(0), "Coins: 1")
	assert.Contains(t, screen.Row(0), "Lives: 3")

	var player, coin, wall bool
	for y := hudRows; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			switch {
			case c.Rune == PlayerChar && c.Color == core.ColorCyan:
				player = true
			case c.Rune == CoinChar:
				coin = true
			case c.Rune == WallChar && c.Color == core.ColorGray:
				wall = true
			}
		}
	}
	assert.True(t, player, "player not drawn")
	assert.True(t, coin, "coin not drawn")
	assert.True(t, wall, "walls not drawn")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, ModePractice, map[string]string{"a": winLevel})
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Lives: ∞")

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"a": winLevel})
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 6
	g.Reset(rt)

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, ModeCampaign, map[string]string{"a": winLevel, "b": winLevel})
	g.Reset(testRuntime())
	require.True(t, stepUntil(g, 600, func() bool { return g.levelIndex == 1 }))
	score := g.score

	g.Resize(20, 6)
	assert.True(t, g.screenTooSmall)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 1, g.levelIndex)

	g.Resize(100, 30)
	assert.False(t, g.screenTooSmall)
	assert.Equal(t, 1, g.levelIndex)
	assert.Equal(t, score, g.score)

	screen := core.NewScreen(100, 30)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Level B")
}

func TestHotReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: a\nplan: [\"@ o\", \"xxx\"]\n"), 0o644))

	g := newGame(ModeCampaign)
	g.configPath, g.preset, g.startID = "", "", ""
	g.levelsDir = dir
	g.watch = true
	g.Reset(testRuntime())
	defer g.Close()

	require.NotNil(t, g.watcher)
	require.Equal(t, 3, g.Level().Width())

	require.NoError(t, os.WriteFile(path, []byte("id: a\nplan: [\"@  o\", \"xxxx\"]\n"), 0o644))

	deadline := time.Now().Add(3 * time.Second)
	for g.Level().Width() != 4 && time.Now().Before(deadline) {
		g.Step(core.NewInputFrame())
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 4, g.Level().Width(), "changed plan should restart the level")
	assert.Equal(t, "Levels reloaded", g.notice)
	assert.Equal(t, 3, g.lives, "reloading costs no life")

	require.NoError(t, g.Close())
	assert.Nil(t, g.watcher)
}

func TestReloadDuringDeathKeepsOutcome(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	fsys := fstest.MapFS{"lava.yaml": &fstest.MapFile{Data: []byte("id: lava\n" + loseLevel + "\n")}}
	g.loader = levels.NewFSLoader(fsys, "test")
	g.Reset(testRuntime())
	require.NoError(t, g.loadErr)

	require.True(t, stepUntil(g, 100, func() bool { return g.level.Status() == engine.StatusLost }))

	fsys["lava.yaml"] = &fstest.MapFile{Data: []byte(`id: lava
plan: ["x x x", "x@x x", "x x x", "x!x x", "xxxxx"]
`)}
	g.reloadLevels()
	assert.Equal(t, engine.StatusLost, g.level.Status(), "the death plays out")
	assert.Equal(t, 3, g.Level().Width())

	require.True(t, stepUntil(g, 200, func() bool { return g.lives == 2 }))
	assert.Equal(t, 5, g.Level().Width(), "the retry uses the new plan")
	runs := g.DrainRuns()
	require.Len(t, runs, 1)
	assert.Equal(t, core.OutcomeDied, runs[0].Outcome)
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("hard")
	assert.Equal(t, "hard", string(New().preset))

	SetDifficultyPreset("bogus")
	assert.Empty(t, New().preset)
}

func TestRegistered(t *testing.T) {
	for id, title := range map[string]string{
		"platformer":          "Platformer",
		"platformer_practice": "Platformer (Practice)",
	} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		assert.Equal(t, title, g.Title())

		_, ok := g.(registry.RunReporter)
		assert.True(t, ok, "%s should report level runs", id)
		_, ok = g.(registry.Resizer)
		assert.True(t, ok, "%s should follow resizes", id)
		_, ok = g.(registry.LevelStarter)
		assert.True(t, ok, "%s should start at a chosen level", id)
	}
}
