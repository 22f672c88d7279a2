package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/boxsim/internal/core"
)

// ErrInvalid is returned when a scene configuration cannot be simulated.
var ErrInvalid = errors.New("config: invalid scene")

// Restitution limits. Slightly above 1 lets a scene gain energy on impact.
const (
	MinRestitution = -1.01
	MaxRestitution = 1.01
)

// Validate checks the configuration and normalizes it in place: a missing
// tick rate becomes 60 and restitution is clamped to
// [MinRestitution, MaxRestitution].
func (c *SceneConfig) Validate() error {
	c.Restitution = core.ClampF(c.Restitution, MinRestitution, MaxRestitution)

	if c.TickRate == 0 {
		c.TickRate = 60
	}
	if c.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate %d is negative", ErrInvalid, c.TickRate)
	}

	if c.Walls.Enabled {
		if c.Walls.Width <= 0 || c.Walls.Height <= 0 || c.Walls.Thickness <= 0 {
			return fmt.Errorf("%w: walls need positive width, height and thickness", ErrInvalid)
		}
	}

	if c.Grid.Rows < 0 || c.Grid.Cols < 0 {
		return fmt.Errorf("%w: grid has negative rows or cols", ErrInvalid)
	}
	if c.Grid.Rows > 0 && c.Grid.Cols > 0 {
		if c.Grid.Size < 0 || c.Grid.Spacing < 0 {
			return fmt.Errorf("%w: grid has negative size or spacing", ErrInvalid)
		}
		if err := c.Grid.Mass.validate(); err != nil {
			return fmt.Errorf("%w: grid: %w", ErrInvalid, err)
		}
	}

	for i, b := range c.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if b.Width < 0 || b.Height < 0 {
			return fmt.Errorf("%w: body %s has negative size %dx%d", ErrInvalid, name, b.Width, b.Height)
		}
		if err := b.Mass.validate(); err != nil {
			return fmt.Errorf("%w: body %s: %w", ErrInvalid, name, err)
		}
	}
	return nil
}

func (m MassConfig) validate() error {
	switch m.Kind {
	case MassInfinite:
		return nil
	case MassDensity, MassFixed:
		if m.Value < 0 {
			return fmt.Errorf("negative %s mass %v", m.Kind, m.Value)
		}
		return nil
	case "":
		return errors.New("missing mass kind")
	default:
		return fmt.Errorf("unknown mass kind %q", m.Kind)
	}
}
