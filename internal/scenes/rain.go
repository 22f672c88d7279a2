package scenes

import (
	"math/rand"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/registry"
)

const (
	rainDrops   = 40
	rainGravity = 60.0
	rainWalls   = 20
)

// Rain scatters boxes of random size, mass and velocity inside a closed
// room. The layout depends only on the runtime seed.
type Rain struct {
	world[float64]
}

// NewRain creates the scene.
func NewRain() *Rain {
	return &Rain{}
}

func (s *Rain) ID() string    { return "rain" }
func (s *Rain) Title() string { return "Rain" }

func (s *Rain) Reset(cfg core.RuntimeConfig) {
	s.reset(cfg, cfg.Restitution)
	s.addOuterWalls(0, 0, cfg.WorldW, cfg.WorldH, rainWalls)

	rng := rand.New(rand.NewSource(cfg.Seed))
	for range rainDrops {
		size := 4 + rng.Intn(13)
		x := rng.Float64() * float64(cfg.WorldW-size)
		y := rng.Float64() * float64(cfg.WorldH-size)

		var mass physics.Mass[float64]
		if rng.Intn(4) == 0 {
			mass = physics.Fixed(1 + rng.Float64()*9)
		} else {
			mass = physics.Density(0.05 + rng.Float64()*0.1)
		}

		b := s.spawn("drop", x, y, size, size, mass)
		b.hb.Mov.Vel = core.V(rng.Float64()*120-60, rng.Float64()*120-60)
		b.hb.Mov.Acc = core.V(0, rainGravity)
	}
}

func (s *Rain) Step(in core.InputFrame) core.StepResult {
	return s.step(in)
}

func init() {
	registry.Register("rain", func() registry.Scene {
		return NewRain()
	})
}
