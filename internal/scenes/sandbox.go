package scenes

import (
	"fmt"

	"github.com/vovakirdan/boxsim/internal/config"
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/registry"
)

// configPath stores the custom scene file set via CLI
var configPath string

// SetConfigPath sets the custom scene file for the sandbox.
func SetConfigPath(path string) {
	configPath = path
}

// Sandbox builds its bodies from a YAML scene description. Restitution and
// tick rate come from the scene file rather than the runtime config.
//
// A scene file that cannot be read or fails validation does not stop Reset:
// the sandbox builds the default scene instead and reports the failure
// through Err.
type Sandbox struct {
	world[float64]
	cfg   config.SceneConfig
	fixed *config.SceneConfig
	err   error
}

// NewSandbox creates a sandbox that loads its scene from the config search
// path on every Reset.
func NewSandbox() *Sandbox {
	return &Sandbox{}
}

// NewSandboxFrom creates a sandbox that always builds cfg.
func NewSandboxFrom(cfg config.SceneConfig) *Sandbox {
	return &Sandbox{fixed: &cfg}
}

func (s *Sandbox) ID() string    { return "sandbox" }
func (s *Sandbox) Title() string { return "Sandbox" }

// Err returns why the last Reset fell back to the default scene, or nil.
func (s *Sandbox) Err() error {
	return s.err
}

// Config returns the scene description used by the last Reset.
func (s *Sandbox) Config() config.SceneConfig {
	return s.cfg
}

func (s *Sandbox) Reset(rt core.RuntimeConfig) {
	s.err = nil
	if s.fixed != nil {
		s.cfg = *s.fixed
		if err := s.cfg.Validate(); err != nil {
			s.err = fmt.Errorf("sandbox: %w", err)
			s.cfg = config.DefaultSceneConfig()
		}
	} else {
		cfg, err := config.Load(s.ID(), configPath)
		if err != nil {
			s.err = fmt.Errorf("sandbox: %w", err)
			cfg = config.DefaultSceneConfig()
		}
		s.cfg = cfg
	}

	rt.TickRate = s.cfg.TickRate
	rt.Restitution = s.cfg.Restitution
	s.reset(rt, s.cfg.Restitution)

	if walls := s.cfg.Walls; walls.Enabled {
		rt.WorldW, rt.WorldH = walls.Width, walls.Height
		s.runtime = rt
		s.addOuterWalls(0, 0, walls.Width, walls.Height, walls.Thickness)
	}

	gravity := core.V(s.cfg.Gravity.X, s.cfg.Gravity.Y)

	grid := s.cfg.Grid
	for row := range grid.Rows {
		for col := range grid.Cols {
			step := float64(grid.Size + grid.Spacing)
			x := grid.Origin.X + float64(col)*step
			y := grid.Origin.Y + float64(row)*step
			s.addBody("grid", x, y, grid.Size, grid.Size, grid.Mass, core.Vec2[float64]{}, gravity)
		}
	}

	for _, b := range s.cfg.Bodies {
		box := s.addBody(b.Name, b.Pos.X, b.Pos.Y, b.Width, b.Height, b.Mass, core.V(b.Acc.X, b.Acc.Y), gravity)
		box.hb.Mov.Vel = core.V(b.Vel.X, b.Vel.Y)
	}
}

func (s *Sandbox) addBody(name string, x, y float64, w, h int, m config.MassConfig, acc, gravity core.Vec2[float64]) *Box[float64] {
	mass := massOf(m)
	box := s.spawn(name, x, y, w, h, mass)
	if mass.Kind != physics.MassInfinite {
		acc = acc.Add(gravity)
	}
	box.hb.Mov.Acc = acc
	return box
}

func (s *Sandbox) Step(in core.InputFrame) core.StepResult {
	return s.step(in)
}

// massOf converts a validated mass description.
func massOf(m config.MassConfig) physics.Mass[float64] {
	switch m.Kind {
	case config.MassDensity:
		return physics.Density(m.Value)
	case config.MassFixed:
		return physics.Fixed(m.Value)
	default:
		return physics.Infinite[float64]()
	}
}

func init() {
	registry.Register("sandbox", func() registry.Scene {
		return NewSandbox()
	})
}
