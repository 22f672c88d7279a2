package scenes

import (
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/registry"
)

const (
	wallThrowSpeed = 120.0
	wallX          = 200.0
)

// Wall throws a single box at an immovable wall.
type Wall struct {
	world[float64]
	box *Box[float64]
}

// NewWall creates the scene.
func NewWall() *Wall {
	return &Wall{}
}

func (s *Wall) ID() string    { return "wall" }
func (s *Wall) Title() string { return "Wall Bounce" }

func (s *Wall) Reset(cfg core.RuntimeConfig) {
	s.reset(cfg, cfg.Restitution)

	s.wall(wallX, 0, 20, 300)
	s.box = s.spawn("box", 50.5, 100, 20, 20, physics.Density(1.0))
	s.box.hb.Mov.Vel = core.V(wallThrowSpeed, 0)
}

func (s *Wall) Step(in core.InputFrame) core.StepResult {
	return s.step(in)
}

func init() {
	registry.Register("wall", func() registry.Scene {
		return NewWall()
	})
}
