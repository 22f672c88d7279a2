package scenes

import (
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/registry"
)

const (
	pileupBoxes   = 6
	pileupSize    = 20
	pileupGravity = 100.0
	pileupWalls   = 20
)

// Pileup drops a column of boxes that start out overlapping each other.
// Resting contact pushes them apart until the stack settles on the floor.
type Pileup struct {
	world[float64]
}

// NewPileup creates the scene.
func NewPileup() *Pileup {
	return &Pileup{}
}

func (s *Pileup) ID() string    { return "pileup" }
func (s *Pileup) Title() string { return "Pileup" }

func (s *Pileup) Reset(cfg core.RuntimeConfig) {
	s.reset(cfg, cfg.Restitution)
	s.addOuterWalls(0, 0, cfg.WorldW, cfg.WorldH, pileupWalls)

	x0 := float64(cfg.WorldW/2 - pileupSize)
	y0 := float64(cfg.WorldH - 2*pileupSize)
	for i := range pileupBoxes {
		// Each box overlaps the previous one by 8 units vertically.
		x := x0 + float64(3*i)
		y := y0 - float64(12*i)
		b := s.spawn("box", x, y, pileupSize, pileupSize, physics.Density(0.01))
		b.hb.Mov.Acc = core.V(0, pileupGravity)
	}
}

func (s *Pileup) Step(in core.InputFrame) core.StepResult {
	return s.step(in)
}

func init() {
	registry.Register("pileup", func() registry.Scene {
		return NewPileup()
	})
}
