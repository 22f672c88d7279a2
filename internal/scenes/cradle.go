package scenes

import (
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/registry"
)

// Cradle layout.
const (
	cradleBalls   = 5
	cradleSize    = 10
	cradleGap     = 2
	cradleRowX    = 100.0
	cradleSpeed   = 90.0
	cradleStartX  = 50.7
	cradleCenterY = 100.0
)

// Cradle is a Newton's cradle: a striker hits a row of equal boxes and the
// momentum travels down the row to the last one. Collisions are elastic.
type Cradle struct {
	world[float64]
	striker *Box[float64]
	row     []*Box[float64]
}

// NewCradle creates the scene.
func NewCradle() *Cradle {
	return &Cradle{}
}

func (s *Cradle) ID() string    { return "cradle" }
func (s *Cradle) Title() string { return "Newton's Cradle" }

// Reset places the row and the striker. The runtime restitution is ignored.
func (s *Cradle) Reset(cfg core.RuntimeConfig) {
	s.reset(cfg, 1)

	mass := physics.Density(1.0)
	s.striker = s.spawn("striker", cradleStartX, cradleCenterY, cradleSize, cradleSize, mass)
	s.striker.hb.Mov.Vel = core.V(cradleSpeed, 0)

	s.row = s.row[:0]
	for i := range cradleBalls {
		x := cradleRowX + float64(i*(cradleSize+cradleGap))
		s.row = append(s.row, s.spawn("ball", x, cradleCenterY, cradleSize, cradleSize, mass))
	}
}

func (s *Cradle) Step(in core.InputFrame) core.StepResult {
	return s.step(in)
}

func init() {
	registry.Register("cradle", func() registry.Scene {
		return NewCradle()
	})
}
