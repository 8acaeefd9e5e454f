// Package registry provides a global registry for simulation factories.
// Surfaces register themselves in init() functions, allowing the platform
// to discover and instantiate walks without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

// Simulation is the interface every registered surface implements.
// Simulations contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Simulation interface {
	// ID returns a unique identifier (e.g., "plane", "curved-torus").
	// Used for CLI arguments and run records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh walk.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	// Depending on the configured rate a frame runs zero or more walk steps.
	Step(in core.InputFrame) core.StepResult

	// Resize adapts to a new screen size without restarting the walk.
	Resize(w, h int)

	// Render draws the current path and status into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current status.
	State() core.SimState

	// Engine exposes the walk for read-only sinks such as the PNG exporter.
	Engine() *walk.Engine
}

// SimInfo contains metadata about a registered simulation.
type SimInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new simulation instance.
type Factory func() Simulation

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a simulation factory to the registry.
// Panics if a simulation with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered simulations, sorted by ID.
func List() []SimInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SimInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SimInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new simulation by its ID.
func Create(id string) (Simulation, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown surface %q", id)
	}

	return f(), nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
