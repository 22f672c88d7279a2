package core

import (
	"math"
	"testing"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set(ActionUp) not recorded")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear() left ActionUp set")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clear() leaked into clone")
	}
}

func TestDpadVector(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		x, y    float64
	}{
		{"none", nil, 0, 0},
		{"up", []Action{ActionUp}, 0, -1},
		{"down", []Action{ActionDown}, 0, 1},
		{"left", []Action{ActionLeft}, -1, 0},
		{"right", []Action{ActionRight}, 1, 0},
		{"opposing cancel", []Action{ActionLeft, ActionRight}, 0, 0},
		{"diagonal", []Action{ActionUp, ActionRight}, math.Sqrt2 / 2, -math.Sqrt2 / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			d := DpadVector[float64](f)
			if math.Abs(d.X-tc.x) > 1e-9 || math.Abs(d.Y-tc.y) > 1e-9 {
				t.Errorf("DpadVector() = (%v, %v), expected (%v, %v)", d.X, d.Y, tc.x, tc.y)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if ActionSpawnWall.String() != "SpawnWall" {
		t.Errorf("ActionSpawnWall.String() = %q", ActionSpawnWall.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
