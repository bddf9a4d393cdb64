// Package registry keeps the table of playable games.
// Games register a factory from init(), so front ends only need a blank
// import of the game package to make it available.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is the contract between a game and the platform.
// Implementations hold pure logic; input mapping, timing and drawing to the
// terminal live in the platform.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts the game over with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score and flags.
	State() core.GameState
}

// RunReporter is implemented by games made of discrete levels.
// DrainRuns returns the attempts finished since the previous call.
type RunReporter interface {
	DrainRuns() []core.LevelRun
}

// Resizer is implemented by games that can follow a terminal resize
// without starting over.
type Resizer interface {
	Resize(w, h int)
}

// LevelStarter is implemented by games that can begin at a chosen level.
// The choice applies from the next Reset.
type LevelStarter interface {
	StartAt(levelID string)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
