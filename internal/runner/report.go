package runner

import (
	"time"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/registry"
)

// Report summarizes a run.
type Report struct {
	Scene     string
	Title     string
	Steps     int // Calls to Step, paused ones included
	Ticks     int // Simulated ticks
	Bodies    int
	Elapsed   time.Duration
	Cancelled bool

	Hash     uint64
	Momentum core.Vec2[float64]
	Energy   float64
	Snapshot physics.Snapshot
}

func newReport(scene registry.Scene, steps int, elapsed time.Duration, cancelled bool) Report {
	snap := scene.Snapshot()
	state := scene.State()
	return Report{
		Scene:     scene.ID(),
		Title:     scene.Title(),
		Steps:     steps,
		Ticks:     state.Tick,
		Bodies:    state.Bodies,
		Elapsed:   elapsed,
		Cancelled: cancelled,
		Hash:      snap.Hash(),
		Momentum:  snap.Momentum(),
		Energy:    snap.KineticEnergy(),
		Snapshot:  snap,
	}
}

// TicksPerSecond returns the simulation throughput of the run.
func (r Report) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Elapsed.Seconds()
}
