package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded snake.yaml does not load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded YAML and DefaultSnakeConfig() disagree:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultPresets(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	want := []string{PresetBeginner, PresetEasy, PresetLittleHarder, PresetExtreme, PresetGodMode}
	if got := cfg.PresetIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("PresetIDs() = %v, expected %v", got, want)
	}

	p, err := cfg.Preset(PresetBeginner)
	if err != nil {
		t.Fatalf("Preset(beginner) failed: %v", err)
	}
	beginner := Difficulty{LengthIncreasePerFood: 2, StartingLength: 5, InitialSpeed: 1.0, SpeedIncreasePerFood: 0.1}
	if p.Difficulty != beginner {
		t.Errorf("beginner difficulty = %+v, expected %+v", p.Difficulty, beginner)
	}

	if _, err := cfg.Preset("impossible"); err == nil {
		t.Error("Preset() should fail for an unknown id")
	}
}

func TestDefaultPresetDescriptions(t *testing.T) {
	tests := []struct {
		id          string
		description string
	}{
		{PresetBeginner, "You suck!"},
		{PresetEasy, "Weaksauce."},
		{PresetLittleHarder, "Break a sweat"},
		{PresetExtreme, "Fast as fuck boiii"},
		{PresetGodMode, "Don't bother..."},
	}

	cfg := DefaultSnakeConfig()
	for _, tc := range tests {
		p, err := cfg.Preset(tc.id)
		if err != nil {
			t.Fatalf("Preset(%s) failed: %v", tc.id, err)
		}
		if p.Description != tc.description {
			t.Errorf("%s description = %q, expected %q", tc.id, p.Description, tc.description)
		}
	}
}

func TestDifficultyValidate(t *testing.T) {
	valid := Difficulty{LengthIncreasePerFood: 2, StartingLength: 5, InitialSpeed: 1, SpeedIncreasePerFood: 0.1, WallPlacementProbability: 0.5}

	tests := []struct {
		name   string
		mutate func(*Difficulty)
		ok     bool
	}{
		{"valid", func(*Difficulty) {}, true},
		{"zero growth allowed", func(d *Difficulty) { d.LengthIncreasePerFood = 0 }, true},
		{"zero speed-up allowed", func(d *Difficulty) { d.SpeedIncreasePerFood = 0 }, true},
		{"zero probability allowed", func(d *Difficulty) { d.WallPlacementProbability = 0 }, true},
		{"negative growth", func(d *Difficulty) { d.LengthIncreasePerFood = -1 }, false},
		{"zero starting length", func(d *Difficulty) { d.StartingLength = 0 }, false},
		{"negative starting length", func(d *Difficulty) { d.StartingLength = -3 }, false},
		{"zero initial speed", func(d *Difficulty) { d.InitialSpeed = 0 }, false},
		{"negative initial speed", func(d *Difficulty) { d.InitialSpeed = -1 }, false},
		{"negative speed-up", func(d *Difficulty) { d.SpeedIncreasePerFood = -0.1 }, false},
		{"probability one", func(d *Difficulty) { d.WallPlacementProbability = 1 }, false},
		{"negative probability", func(d *Difficulty) { d.WallPlacementProbability = -0.01 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			err := d.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("Validate() = nil, expected error")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v should wrap ErrInvalidConfig", err)
				}
			}
		})
	}
}

func TestGeometryValidate(t *testing.T) {
	g := DefaultSnakeConfig().Geometry
	if err := g.Validate(); err != nil {
		t.Fatalf("default geometry invalid: %v", err)
	}

	if got := g.MinSelfCollisionSkip(); got != 3 {
		t.Errorf("MinSelfCollisionSkip() = %d, expected 3 for radius 5 / spacing 5", got)
	}

	tooSmall := g
	tooSmall.SelfCollisionSkip = 2
	if err := tooSmall.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("skip below geometric minimum should be rejected, got %v", err)
	}

	noSpacing := g
	noSpacing.SegmentSpacing = 0
	if err := noSpacing.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero spacing should be rejected, got %v", err)
	}

	noRadius := g
	noRadius.WallRadius = -1
	if err := noRadius.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative wall radius should be rejected, got %v", err)
	}
}

func TestSnakeConfigValidateDuplicatePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Presets = append(cfg.Presets, cfg.Presets[0])
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("duplicate preset id should be rejected, got %v", err)
	}

	cfg.Presets = nil
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty preset list should be rejected, got %v", err)
	}
}

func TestLoadSnakeCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte(`
geometry:
  wall_radius: 8
presets:
  - id: custom
    name: Custom
    difficulty:
      length_increase_per_food: 1
      starting_length: 3
      initial_speed: 0.5
      speed_increase_per_food: 0.05
      wall_placement_probability: 0.01
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Geometry.WallRadius != 8 {
		t.Errorf("wall_radius = %g, expected override 8", cfg.Geometry.WallRadius)
	}
	// Untouched fields keep their defaults
	if cfg.Geometry.SnakeRadius != DefaultSnakeConfig().Geometry.SnakeRadius {
		t.Errorf("snake_radius = %g, expected default", cfg.Geometry.SnakeRadius)
	}
	if ids := cfg.PresetIDs(); len(ids) != 1 || ids[0] != "custom" {
		t.Errorf("presets = %v, expected only [custom]", ids)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("geometry: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	yml := "presets:\n  - id: broken\n    difficulty:\n      starting_length: 0\n      initial_speed: 1\n"
	if err := os.WriteFile(invalid, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid preset should fail with ErrInvalidConfig, got %v", err)
	}
}
