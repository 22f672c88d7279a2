// Package runner drives a scene: it owns the timestep, feeds scripted input
// and reports the final state. Runs are either fixed-step (as fast as
// possible) or paced in real time by a ticker.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/registry"
)

// ErrNegativeTicks is returned when a run is asked for fewer than zero ticks.
var ErrNegativeTicks = errors.New("runner: negative tick count")

// InputScript returns the input held during the given tick.
type InputScript func(tick int) core.InputFrame

// NoInput is the script that never presses anything.
func NoInput(int) core.InputFrame {
	return core.NewInputFrame()
}

// Option configures a Runner.
type Option func(*Runner)

// WithConfig sets the runtime config passed to Scene.Reset.
func WithConfig(cfg core.RuntimeConfig) Option {
	return func(r *Runner) { r.cfg = cfg }
}

// WithInput sets the input script.
func WithInput(script InputScript) Option {
	return func(r *Runner) { r.input = script }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithProgress logs a debug line every n ticks. Zero disables it.
func WithProgress(n int) Option {
	return func(r *Runner) { r.progress = n }
}

// WithObserver registers a callback invoked after every tick.
func WithObserver(fn func(scene registry.Scene, res core.StepResult)) Option {
	return func(r *Runner) { r.observe = fn }
}

// NewLogger creates the logger used by runs.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "boxsim",
	})
}

// resetErrer is implemented by scenes that can fail to build from their inputs,
// such as a sandbox with an unreadable scene file.
type resetErrer interface {
	Err() error
}

// Runner steps a single scene.
type Runner struct {
	scene    registry.Scene
	cfg      core.RuntimeConfig
	input    InputScript
	logger   *log.Logger
	progress int
	observe  func(registry.Scene, core.StepResult)
}

// New creates a runner for scene.
func New(scene registry.Scene, opts ...Option) *Runner {
	r := &Runner{
		scene:  scene,
		cfg:    core.DefaultConfig(),
		input:  NoInput,
		logger: NewLogger(os.Stderr),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scene returns the scene being run.
func (r *Runner) Scene() registry.Scene {
	return r.scene
}

// Run resets the scene and steps it ticks times without pacing.
// Cancellation is checked between ticks; a cancelled run is reported, not
// returned as an error.
func (r *Runner) Run(ctx context.Context, ticks int) (Report, error) {
	if ticks < 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrNegativeTicks, ticks)
	}

	if err := r.begin(ticks, false); err != nil {
		return Report{}, err
	}
	start := time.Now()
	steps := 0
	for steps < ticks {
		if ctx.Err() != nil {
			return r.finish(steps, time.Since(start), true), nil
		}
		if err := r.stepOnce(steps); err != nil {
			return r.finish(steps, time.Since(start), false), err
		}
		steps++
	}
	return r.finish(steps, time.Since(start), false), nil
}

// RunRealtime resets the scene and steps it once per tick period, as set by
// the runtime tick rate. A tick count of zero runs until ctx is cancelled.
func (r *Runner) RunRealtime(ctx context.Context, ticks int) (Report, error) {
	if ticks < 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrNegativeTicks, ticks)
	}

	if err := r.begin(ticks, true); err != nil {
		return Report{}, err
	}
	tickDuration := time.Duration(r.cfg.DeltaTime() * float64(time.Second))
	ticker := time.NewTicker(tickDuration)
	defer ticker.Stop()

	start := time.Now()
	steps := 0
	for ticks == 0 || steps < ticks {
		select {
		case <-ctx.Done():
			return r.finish(steps, time.Since(start), true), nil
		case <-ticker.C:
			if err := r.stepOnce(steps); err != nil {
				return r.finish(steps, time.Since(start), false), err
			}
			steps++
		}
	}
	return r.finish(steps, time.Since(start), false), nil
}

// begin resets the scene. A scene reporting a setup error is not run.
func (r *Runner) begin(ticks int, realtime bool) error {
	r.scene.Reset(r.cfg)
	if f, ok := r.scene.(resetErrer); ok {
		if err := f.Err(); err != nil {
			r.logger.Error("reset failed", "scene", r.scene.ID(), "err", err)
			return fmt.Errorf("runner: %s: reset: %w", r.scene.ID(), err)
		}
	}
	r.logger.Info("starting",
		"scene", r.scene.ID(),
		"ticks", ticks,
		"bodies", r.scene.State().Bodies,
		"realtime", realtime,
		"tick_rate", r.cfg.TickRate,
	)
	return nil
}

// stepOnce advances one tick. Invariant violations inside the physics panic
// with an error value; those are returned instead.
func (r *Runner) stepOnce(tick int) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			e, ok := rec.(error)
			if !ok {
				panic(rec)
			}
			err = fmt.Errorf("runner: %s: tick %d: %w", r.scene.ID(), tick, e)
		}
	}()

	res := r.scene.Step(r.input(tick))
	if r.observe != nil {
		r.observe(r.scene, res)
	}
	if r.progress > 0 && (tick+1)%r.progress == 0 {
		r.logger.Debug("tick", "tick", res.State.Tick, "bodies", res.State.Bodies, "paused", res.State.Paused)
	}
	return nil
}

func (r *Runner) finish(steps int, elapsed time.Duration, cancelled bool) Report {
	rep := newReport(r.scene, steps, elapsed, cancelled)
	if cancelled {
		r.logger.Warn("cancelled", "scene", rep.Scene, "steps", rep.Steps, "elapsed", rep.Elapsed)
	} else {
		r.logger.Info("finished",
			"scene", rep.Scene,
			"steps", rep.Steps,
			"ticks", rep.Ticks,
			"elapsed", rep.Elapsed,
			"hash", fmt.Sprintf("%016x", rep.Hash),
		)
	}
	return rep
}
