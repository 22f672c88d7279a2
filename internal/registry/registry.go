// Package registry maps scene IDs to scene constructors. Scene packages
// register in init(); the CLI resolves the ID given on the command line
// here and hands the fresh scene to the runner. The same ID names the
// scene's YAML file, so a scene must report the ID it was registered under.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
)

// ErrUnknownScene is returned by Create for an unregistered scene ID.
var ErrUnknownScene = errors.New("registry: unknown scene")

// Scene is a self-contained simulation: a physics universe plus the boxes
// living in it. Timing, scripted input and reporting belong to the runner.
type Scene interface {
	// ID is the registry key and the base name of the scene's YAML file.
	ID() string

	Title() string

	// Reset discards every body and rebuilds the scene for cfg. Two resets
	// with the same cfg must produce identical snapshots.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the input held during it.
	Step(in core.InputFrame) core.StepResult

	// Snapshot returns the state of every body, ordered by key.
	Snapshot() physics.Snapshot

	State() core.SceneState
}

// SceneInfo describes a registered scene. Bodies is only filled by Survey.
type SceneInfo struct {
	ID     string
	Title  string
	Bodies int
}

// Factory builds an unreset scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene under id. It panics on an empty or duplicate id and
// when the scene built by f reports a different ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty scene id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	s := f()
	if s.ID() != id {
		panic(fmt.Sprintf("registry: scene registered as %q reports id %q", id, s.ID()))
	}
	factories[id] = f
	titles[id] = s.Title()
}

// List returns the registered scenes sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b SceneInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Survey builds and resets every registered scene with cfg and reports how
// many bodies each one starts with.
func Survey(cfg core.RuntimeConfig) []SceneInfo {
	infos := List()
	for i := range infos {
		s, err := Create(infos[i].ID)
		if err != nil {
			continue
		}
		s.Reset(cfg)
		infos[i].Bodies = s.State().Bodies
	}
	return infos
}

// Create builds a fresh scene. Callers must Reset it before stepping.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
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
