// Package platformer is the arcade front for the platformer engine: it
// strings levels into a campaign, keeps score and lives, and draws the
// running level into a core.Screen.
package platformer

import (
	"io"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // Out of lives
	StateWin      = "win"      // Last level cleared
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Limited lives
	ModePractice                 // Deaths only restart the level
)

// Minimum playable screen size.
const (
	minScreenW = 24
	minScreenH = 8
)

// noticeTicks is how long the level-reload notice stays on screen.
const noticeTicks = 120

// Settings from the CLI, picked up by New.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	watchLevels      bool
	startLevelID     string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetLevelsDir plays levels from dir instead of the built-in campaign.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetWatch enables reloading the levels directory when its files change.
func SetWatch(enabled bool) {
	watchLevels = enabled
}

// SetStartLevel starts the campaign at the level with the given id.
func SetStartLevel(id string) {
	startLevelID = id
}

// SetLogger sets the logger used for level loading and reloads.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements the platformer campaign.
type Game struct {
	mode GameMode

	// Settings
	configPath string
	preset     config.DifficultyPreset
	levelsDir  string
	watch      bool
	startID    string
	logger     *log.Logger

	// Level source
	loader  *levels.Loader
	watcher *levels.Watcher
	list    []levels.Level
	loadErr error

	// Current level
	levelIndex int
	level      *engine.Level
	levelTicks int
	runTime    float64 // Simulated seconds in the current attempt
	runCoins   int

	// Game state
	state         string
	score         int
	lives         int
	levelsCleared int
	tickCount     int
	notice        string
	noticeUntil   int
	runs          []core.LevelRun

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	camera         Camera
	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewPractice creates a game with unlimited lives.
func NewPractice() *Game {
	return newGame(ModePractice)
}

func newGame(mode GameMode) *Game {
	return &Game{
		mode:       mode,
		configPath: configPath,
		preset:     difficultyPreset,
		levelsDir:  levelsDir,
		watch:      watchLevels,
		startID:    startLevelID,
		logger:     logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "platformer_practice"
	}
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Platformer (Practice)"
	}
	return "Platformer"
}

// Reset loads configuration and levels and starts from the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(g.configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if g.preset != "" {
		config.ApplyPlatformerPreset(&cfg, g.preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- game randomness

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.levelsCleared = 0
	g.tickCount = 0
	g.notice = ""
	g.runs = nil
	g.state = StatePlaying

	g.loadLevels()
	if g.loadErr != nil {
		return
	}

	start := 0
	if g.startID != "" {
		if i := g.indexOf(g.startID); i >= 0 {
			start = i
		} else {
			g.logger.Warn("start level not found, starting from the first", "id", g.startID)
		}
	}
	g.startLevel(start)
}

// loadLevels reads the level list and starts the watcher once.
func (g *Game) loadLevels() {
	if g.loader == nil {
		if g.levelsDir != "" {
			g.loader = levels.NewLoader(g.levelsDir)
		} else {
			g.loader = levels.Builtin()
		}
		g.loader.SetLogger(g.logger)
	}

	list, err := g.loader.LoadAll()
	switch {
	case err != nil:
		g.loadErr = err
	case len(list) == 0:
		g.loadErr = errNoLevels{root: g.loader.Root()}
	default:
		g.list = list
		g.loadErr = nil
	}

	if g.watch && g.levelsDir != "" && g.watcher == nil {
		w, err := levels.NewWatcher(g.levelsDir)
		if err != nil {
			g.logger.Warn("level watcher disabled", "dir", g.levelsDir, "err", err)
			return
		}
		g.watcher = w
		g.logger.Info("watching levels", "dir", g.levelsDir)
	}
}

type errNoLevels struct{ root string }

func (e errNoLevels) Error() string { return "no playable levels in " + e.root }

func (g *Game) indexOf(id string) int {
	return slices.IndexFunc(g.list, func(l levels.Level) bool { return l.ID == id })
}

// startLevel builds the level at index i and resets the attempt counters.
func (g *Game) startLevel(i int) {
	g.levelIndex = i
	lvl, err := g.list[i].Build(
		engine.WithParams(g.cfg.Physics.Params()),
		engine.WithRand(g.rng),
	)
	if err != nil {
		g.loadErr = err
		return
	}
	g.level = lvl
	g.levelTicks = 0
	g.runTime = 0
	g.runCoins = 0
	g.camera = Camera{}
	g.camera.Snap(g.viewport(), g.level, g.cfg.Gameplay.CameraMargin)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}

	g.pollWatcher()

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.levelTicks++

	dt := g.runtime.TickSeconds() * g.difficulty.Speed(1, g.progress())
	dt = min(dt, g.cfg.Gameplay.MaxFrameTime)

	keys := engine.Keys{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionJump),
	}
	g.level.Advance(dt, keys)
	g.runTime += dt

	for _, ev := range g.level.Events() {
		switch ev.Kind {
		case engine.EventCoinCollected:
			g.score += g.cfg.Gameplay.CoinScore
			g.runCoins++
		case engine.EventWon:
			g.score += g.cfg.Gameplay.LevelScore
		}
	}

	if g.level.IsFinished() {
		g.finishLevel()
	} else {
		g.camera.Follow(g.viewport(), g.level, g.cfg.Gameplay.CameraMargin)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) progress() config.Progress {
	return config.Progress{
		Levels: g.levelsCleared,
		Score:  g.score,
		Ticks:  g.tickCount,
	}
}

// finishLevel records the attempt and moves on once the end animation is done.
func (g *Game) finishLevel() {
	won := g.level.Status() == engine.StatusWon

	run := core.LevelRun{
		LevelID:  g.list[g.levelIndex].ID,
		Outcome:  core.OutcomeDied,
		Duration: time.Duration(g.runTime * float64(time.Second)),
		Coins:    g.runCoins,
	}
	if won {
		run.Outcome = core.OutcomeCleared
	}
	g.runs = append(g.runs, run)

	if won {
		g.levelsCleared++
		if g.levelIndex+1 >= len(g.list) {
			g.state = StateWin
			return
		}
		g.startLevel(g.levelIndex + 1)
		return
	}

	if g.mode == ModeCampaign {
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
			return
		}
	}
	g.startLevel(g.levelIndex)
}

// pollWatcher applies pending level file changes without blocking.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}

	changed := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Debug("level file changed", "path", path)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("level watcher", "err", err)
		default:
			if changed {
				g.reloadLevels()
			}
			return
		}
	}
}

// reloadLevels swaps in the current files. The level being played restarts
// if its plan changed while it is still running; a finished level picks up
// the new plan when it is next started.
func (g *Game) reloadLevels() {
	list, err := g.loader.LoadAll()
	if err != nil || len(list) == 0 {
		g.logger.Warn("level reload failed, keeping previous levels", "err", err)
		g.setNotice("Reload failed")
		return
	}

	current := g.list[g.levelIndex]
	g.list = list
	g.setNotice("Levels reloaded")
	g.logger.Info("levels reloaded", "count", len(list))

	i := g.indexOf(current.ID)
	if i < 0 {
		// The running level was deleted: keep it in the list so play
		// continues with whatever now follows it.
		at, _ := slices.BinarySearchFunc(list, current.ID, func(l levels.Level, id string) int {
			return strings.Compare(l.ID, id)
		})
		g.list = slices.Insert(slices.Clone(list), at, current)
		g.levelIndex = at
		return
	}
	g.levelIndex = i

	if g.state == StatePlaying && !g.level.Status().Terminal() &&
		!slices.Equal(list[i].Plan, current.Plan) {
		g.startLevel(i)
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeUntil = g.tickCount + noticeTicks
}

// StartAt makes the next Reset begin at the level with the given id.
// An empty id starts from the first level.
func (g *Game) StartAt(levelID string) {
	g.startID = levelID
}

// Resize adopts a new terminal size and keeps the run going.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < minScreenW || h < minScreenH
	if g.level != nil {
		g.camera.Snap(g.viewport(), g.level, g.cfg.Gameplay.CameraMargin)
	}
}

// DrainRuns returns the level attempts finished since the last call.
func (g *Game) DrainRuns() []core.LevelRun {
	runs := g.runs
	g.runs = nil
	return runs
}

// Close stops watching the levels directory.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Level returns the running engine level, or nil before Reset.
func (g *Game) Level() *engine.Level {
	return g.level
}

// Levels returns the loaded level list.
func (g *Game) Levels() []levels.Level {
	return g.list
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
	registry.Register("platformer_practice", func() registry.Game {
		return NewPractice()
	})
}
