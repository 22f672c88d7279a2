// Package config provides YAML-based scene configuration loading for the
// simulator.
package config

// SceneConfig describes a scene as a list of bodies inside optional outer
// walls.
type SceneConfig struct {
	Restitution float64      `yaml:"restitution"` // Coefficient of restitution, clamped to [-1.01, 1.01]
	TickRate    int          `yaml:"tick_rate"`
	Gravity     Vec          `yaml:"gravity"` // Acceleration applied to every finite body
	Walls       WallsConfig  `yaml:"walls"`
	Grid        GridConfig   `yaml:"grid"`
	Bodies      []BodyConfig `yaml:"bodies"`
}

// Vec is a 2D vector in world units.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WallsConfig defines the infinite-mass walls enclosing the scene.
// Width and Height are the inner size; walls sit outside it.
type WallsConfig struct {
	Enabled   bool `yaml:"enabled"`
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Thickness int  `yaml:"thickness"`
}

// GridConfig spawns a rectangular grid of identical boxes.
type GridConfig struct {
	Rows    int        `yaml:"rows"`
	Cols    int        `yaml:"cols"`
	Origin  Vec        `yaml:"origin"`
	Size    int        `yaml:"size"`
	Spacing int        `yaml:"spacing"` // Gap between neighbouring boxes
	Mass    MassConfig `yaml:"mass"`
}

// BodyConfig defines a single body.
type BodyConfig struct {
	Name   string     `yaml:"name"`
	Pos    Vec        `yaml:"pos"`
	Vel    Vec        `yaml:"vel"`
	Acc    Vec        `yaml:"acc"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Mass   MassConfig `yaml:"mass"`
}

// MassKind names one of the three mass regimes.
type MassKind string

const (
	MassInfinite MassKind = "infinite"
	MassDensity  MassKind = "density"
	MassFixed    MassKind = "fixed"
)

// MassConfig selects a mass regime. Value is the density for "density",
// the mass for "fixed" and ignored for "infinite".
type MassConfig struct {
	Kind  MassKind `yaml:"kind"`
	Value float64  `yaml:"value"`
}

// BodyCount returns how many bodies the scene spawns, walls excluded.
func (c SceneConfig) BodyCount() int {
	n := len(c.Bodies)
	if c.Grid.Rows > 0 && c.Grid.Cols > 0 {
		n += c.Grid.Rows * c.Grid.Cols
	}
	return n
}
