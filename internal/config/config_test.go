package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const customYAML = `
restitution: 0.5
tick_rate: 120
walls: {enabled: true, width: 100, height: 80, thickness: 5}
bodies:
  - name: a
    pos: {x: 10, y: 10}
    vel: {x: 3, y: 0}
    width: 8
    height: 8
    mass: {kind: density, value: 1}
`

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomPath(t *testing.T) {
	path := writeScene(t, t.TempDir(), "custom.yaml", customYAML)

	cfg, err := Load("sandbox", path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Restitution != 0.5 || cfg.TickRate != 120 {
		t.Errorf("got restitution=%v tick_rate=%d", cfg.Restitution, cfg.TickRate)
	}
	if len(cfg.Bodies) != 1 || cfg.Bodies[0].Vel.X != 3 {
		t.Errorf("bodies not decoded: %+v", cfg.Bodies)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load("sandbox", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	broken := writeScene(t, dir, "broken.yaml", "bodies: [\n")
	if _, err := Load("sandbox", broken); err == nil {
		t.Error("expected parse error")
	}

	invalid := writeScene(t, dir, "invalid.yaml", "tick_rate: -5\n")
	_, err := Load("sandbox", invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Embedded default when nothing is on disk.
	cfg, err := Load("sandbox", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Rows != 3 || len(cfg.Bodies) != 2 {
		t.Errorf("expected embedded sandbox, got %+v", cfg)
	}

	// Local scenes directory wins over the embedded default.
	writeScene(t, filepath.Join(work, "scenes"), "sandbox.yaml", "restitution: 0.1\n")
	cfg, _ = Load("sandbox", "")
	if cfg.Restitution != 0.1 {
		t.Errorf("expected local scene, got restitution %v", cfg.Restitution)
	}

	// User directory wins over the local one.
	writeScene(t, filepath.Join(home, ".boxsim", "scenes"), "sandbox.yaml", "restitution: 0.2\n")
	cfg, _ = Load("sandbox", "")
	if cfg.Restitution != 0.2 {
		t.Errorf("expected user scene, got restitution %v", cfg.Restitution)
	}

	// Broken user file falls through to the local one.
	writeScene(t, filepath.Join(home, ".boxsim", "scenes"), "sandbox.yaml", "walls: {enabled: true}\n")
	cfg, _ = Load("sandbox", "")
	if cfg.Restitution != 0.1 {
		t.Errorf("expected fallback to local scene, got restitution %v", cfg.Restitution)
	}
}

func TestLoadUnknownSceneUsesHardcodedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("nope", "")
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultSceneConfig()
	if cfg.Restitution != want.Restitution || len(cfg.Bodies) != len(want.Bodies) {
		t.Errorf("expected hardcoded default, got %+v", cfg)
	}
}

func TestEmbeddedDefaultIsValid(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML("sandbox"))
	if err != nil {
		t.Fatalf("embedded sandbox invalid: %v", err)
	}
	if cfg.BodyCount() != 3*6+2 {
		t.Errorf("BodyCount() = %d", cfg.BodyCount())
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("expected nil for unknown scene")
	}
}

func TestDefaultSceneConfigIsValid(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultSceneConfig() invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	density := MassConfig{Kind: MassDensity, Value: 1}

	tests := []struct {
		name    string
		cfg     SceneConfig
		wantErr bool
	}{
		{"empty scene", SceneConfig{}, false},
		{"negative tick rate", SceneConfig{TickRate: -1}, true},
		{"walls without size", SceneConfig{Walls: WallsConfig{Enabled: true}}, true},
		{"disabled walls ignored", SceneConfig{Walls: WallsConfig{Width: -1}}, false},
		{"negative grid", SceneConfig{Grid: GridConfig{Rows: -1}}, true},
		{"grid without mass", SceneConfig{Grid: GridConfig{Rows: 1, Cols: 1, Size: 4}}, true},
		{"grid ok", SceneConfig{Grid: GridConfig{Rows: 2, Cols: 2, Size: 4, Mass: density}}, false},
		{"negative size", SceneConfig{Bodies: []BodyConfig{{Width: -1, Height: 2, Mass: density}}}, true},
		{"zero size allowed", SceneConfig{Bodies: []BodyConfig{{Mass: density}}}, false},
		{"negative mass", SceneConfig{Bodies: []BodyConfig{{Width: 1, Height: 1, Mass: MassConfig{Kind: MassFixed, Value: -2}}}}, true},
		{"unknown mass kind", SceneConfig{Bodies: []BodyConfig{{Width: 1, Height: 1, Mass: MassConfig{Kind: "heavy"}}}}, true},
		{"infinite ignores value", SceneConfig{Bodies: []BodyConfig{{Width: 1, Height: 1, Mass: MassConfig{Kind: MassInfinite, Value: -1}}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestValidateNormalizes(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{3, MaxRestitution},
		{-7, MinRestitution},
		{1.01, 1.01},
	}

	for _, tt := range tests {
		cfg := SceneConfig{Restitution: tt.in}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
		if cfg.Restitution != tt.want {
			t.Errorf("restitution %v -> %v, want %v", tt.in, cfg.Restitution, tt.want)
		}
		if cfg.TickRate != 60 {
			t.Errorf("TickRate = %d, want 60", cfg.TickRate)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSceneConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v", err)
	}
	if cfg.Bodies[0].Name != "striker" || cfg.Bodies[0].Mass.Kind != MassFixed {
		t.Errorf("unexpected body %+v", cfg.Bodies[0])
	}
}
