package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a scene.
// Search order: customPath -> ~/.boxsim/scenes/<id>.yaml -> ./scenes/<id>.yaml -> embedded default
// The result is validated; files that fail to parse or validate are skipped,
// except customPath, whose errors are returned.
func Load(sceneID, customPath string) (SceneConfig, error) {
	var cfg SceneConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := sceneID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if c, ok := readFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local scenes directory
	if c, ok := readFile(filepath.Join("scenes", filename)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(sceneID); data != nil {
		if c, ok := parse(data); ok {
			return c, nil
		}
	}
	return DefaultSceneConfig(), nil // Fallback to hardcoded if embed fails
}

// Parse decodes and validates a scene configuration.
func Parse(data []byte) (SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg SceneConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func readFile(path string) (SceneConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, false
	}
	return parse(data)
}

func parse(data []byte) (SceneConfig, bool) {
	cfg, err := Parse(data)
	return cfg, err == nil
}

// userConfigPath returns the path to a user scene file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boxsim", "scenes", filename)
}
