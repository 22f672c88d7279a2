package config

import (
	_ "embed"
)

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

// DefaultSceneConfig returns the hardcoded sandbox configuration.
// It is used when the embedded YAML cannot be parsed.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Restitution: 0.9,
		TickRate:    60,
		Gravity:     Vec{X: 0, Y: 40},
		Walls: WallsConfig{
			Enabled:   true,
			Width:     400,
			Height:    300,
			Thickness: 20,
		},
		Bodies: []BodyConfig{
			{
				Name:   "striker",
				Pos:    Vec{X: 20, Y: 200},
				Vel:    Vec{X: 120, Y: -60},
				Width:  24,
				Height: 24,
				Mass:   MassConfig{Kind: MassFixed, Value: 20},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene, or nil if
// the scene has none.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case "sandbox":
		return defaultSandboxYAML
	default:
		return nil
	}
}
