package scenes

import (
	"github.com/vovakirdan/boxsim/internal/config"
	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/registry"
)

// Player acceleration per dpad direction, in world units per ms².
const dpadAccel = 0.0005

// BouncyBox is a room of heavy squares and a light player square steered
// with the dpad. It runs in float32 with time measured in milliseconds.
//
// Pressing Spawn drops a light box above the player carrying the player's
// velocity; SpawnWall drops a wall there instead. Holding either key spawns
// once.
type BouncyBox struct {
	world[float32]
	player *Box[float32]
	size   int
	held   core.Action
}

// NewBouncyBox creates the scene. Call Reset before stepping it.
func NewBouncyBox() *BouncyBox {
	return &BouncyBox{}
}

// ID returns the unique identifier for this scene.
func (s *BouncyBox) ID() string { return "bouncybox" }

// Title returns the display name for this scene.
func (s *BouncyBox) Title() string { return "Bouncy Box" }

// Reset rebuilds the room for the configured world size.
func (s *BouncyBox) Reset(cfg core.RuntimeConfig) {
	cor := core.ClampF(cfg.Restitution, config.MinRestitution, config.MaxRestitution)
	s.reset(cfg, float32(cor))
	s.timeScale = 1000
	s.held = core.ActionNone

	w, h := cfg.WorldW, cfg.WorldH
	s.size = (w + h) / 40
	padding := s.size

	// One-unit walls along the edges of the world.
	s.addOuterWalls(1, 1, w-2, h-2, 1)

	s.player = s.spawn("player", float32(w/2), float32(h/2), s.size, s.size, physics.Density[float32](1))

	for y := padding; y < h-s.size-padding; y += s.size + padding {
		for x := padding; x < w-s.size-padding; x += s.size + padding {
			s.spawn("square", float32(x), float32(y), s.size, s.size, physics.Density[float32](100))
		}
	}
}

// Step applies the dpad to the player and advances one tick.
func (s *BouncyBox) Step(in core.InputFrame) core.StepResult {
	s.spawnOnPress(in)
	s.player.hb.Mov.Acc = core.DpadVector[float32](in).Scale(dpadAccel)
	return s.step(in)
}

func (s *BouncyBox) spawnOnPress(in core.InputFrame) {
	pressed := core.ActionNone
	switch {
	case in.Has(core.ActionSpawn):
		pressed = core.ActionSpawn
	case in.Has(core.ActionSpawnWall):
		pressed = core.ActionSpawnWall
	}
	if pressed == s.held {
		return
	}
	s.held = pressed

	pos := s.player.hb.Mov.Pos
	x, y := pos.X, pos.Y-float32(2*s.size)
	switch pressed {
	case core.ActionSpawn:
		box := s.spawn("spawned", x, y, s.size, s.size, physics.Density[float32](1))
		box.hb.Mov.Vel = s.player.hb.Mov.Vel
	case core.ActionSpawnWall:
		s.wall(x, y, s.size, s.size)
	}
}

// Player returns the steerable box.
func (s *BouncyBox) Player() *Box[float32] {
	return s.player
}

func init() {
	registry.Register("bouncybox", func() registry.Scene {
		return NewBouncyBox()
	})
}
