// Package registry provides a global registry of playable modes.
// Each mode registers a factory in an init() function, so the platform
// can list and start modes without importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/trapfall/internal/core"
)

// Game is the interface every registered mode implements.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles key mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g., "trapfall", "trapfall_daily").
	// Used for CLI commands and as the mode key of the run board.
	ID() string

	// Title returns a human-readable name for display (e.g., "Trap Fall").
	Title() string

	// Reset starts a fresh run.
	// The RuntimeConfig provides screen dimensions and an optional seed override.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Left, Jump, Pause, etc.).
	// Returns the resulting state and any events raised during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// Implementations clear dst before drawing.
	Render(dst *core.Screen)

	// State returns the current game state (level, attempts, paused).
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting the run. Other games are Reset on resize.
type Resizer interface {
	Resize(screenW, screenH int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Creating an instance must be cheap; Reset does the real work.
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
