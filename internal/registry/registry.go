// Package registry maps game IDs to factories. Games register themselves in
// init() functions with the package-level Register, so the CLI and TUI can
// list and start them without importing each game by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Game is implemented by every playable game. Implementations hold pure,
// tick-driven logic; the platform owns input mapping, timing and output.
type Game interface {
	// ID returns the unique identifier used on the command line and in the
	// score store, e.g. "skyhop".
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh game with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. It must not change the state.
	Render(dst *core.Screen)

	// State returns the current score and status flags.
	State() core.GameState
}

// Describer is implemented by games that offer a one-line description for
// menus and listings.
type Describer interface {
	Description() string
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string // empty unless the game implements Describer
}

// Factory creates a new game instance.
type Factory func() Game

// ErrUnknownGame is wrapped by Create when no game has the requested ID.
var ErrUnknownGame = errors.New("unknown game")

type entry struct {
	factory Factory
	info    GameInfo
}

// Registry is a set of game factories. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a factory. Title and description are read from one
// throwaway instance.
// It panics on an empty or duplicate ID, both of which are programming errors.
func (r *Registry) Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	r.entries[id] = entry{factory: f, info: info}
}

// List returns all registered games sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// defaultRegistry holds the games linked into the binary.
var defaultRegistry = New()

// Register adds a factory to the default registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List returns the games in the default registry.
func List() []GameInfo { return defaultRegistry.List() }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists reports whether id is in the default registry.
func Exists(id string) bool { return defaultRegistry.Exists(id) }
