// Package config provides YAML-based game configuration loading and
// validation of difficulty presets and board geometry.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig contains all configuration for the gravity snake game.
type SnakeConfig struct {
	Geometry  Geometry  `yaml:"geometry"`
	Placement Placement `yaml:"placement"`
	Presets   []Preset  `yaml:"presets"`
}

// Geometry holds the difficulty-independent sizes, in simulation units.
type Geometry struct {
	SnakeRadius       float64 `yaml:"snake_radius"`
	FoodRadius        float64 `yaml:"food_radius"`
	WallRadius        float64 `yaml:"wall_radius"`
	SegmentSpacing    float64 `yaml:"segment_spacing"`
	SelfCollisionSkip int     `yaml:"self_collision_skip"` // Head-adjacent segments ignored for self collision
	CellWidth         float64 `yaml:"cell_width"`          // Units per terminal column
	CellHeight        float64 `yaml:"cell_height"`         // Units per terminal row
}

// Placement controls food and wall spawning.
type Placement struct {
	MaxAttempts       int     `yaml:"max_attempts"`        // Rejection sampling budget per spawn
	WallHeadClearance float64 `yaml:"wall_head_clearance"` // No wall spawns within this distance of the head
}

// MinSelfCollisionSkip returns the smallest skip that keeps a snake moving
// in a straight line from touching its own neck.
func (g Geometry) MinSelfCollisionSkip() int {
	if g.SegmentSpacing <= 0 {
		return 0
	}
	return int(math.Floor(2*g.SnakeRadius/g.SegmentSpacing)) + 1
}

// Validate checks geometry for values the simulation cannot run with.
func (g Geometry) Validate() error {
	switch {
	case g.SnakeRadius <= 0:
		return fmt.Errorf("%w: snake_radius must be positive, got %g", ErrInvalidConfig, g.SnakeRadius)
	case g.FoodRadius <= 0:
		return fmt.Errorf("%w: food_radius must be positive, got %g", ErrInvalidConfig, g.FoodRadius)
	case g.WallRadius <= 0:
		return fmt.Errorf("%w: wall_radius must be positive, got %g", ErrInvalidConfig, g.WallRadius)
	case g.SegmentSpacing <= 0:
		return fmt.Errorf("%w: segment_spacing must be positive, got %g", ErrInvalidConfig, g.SegmentSpacing)
	case g.CellWidth <= 0 || g.CellHeight <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %gx%g", ErrInvalidConfig, g.CellWidth, g.CellHeight)
	}
	if minSkip := g.MinSelfCollisionSkip(); g.SelfCollisionSkip < minSkip {
		return fmt.Errorf("%w: self_collision_skip must be at least %d for this geometry, got %d",
			ErrInvalidConfig, minSkip, g.SelfCollisionSkip)
	}
	return nil
}

// Validate checks placement settings.
func (p Placement) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be at least 1, got %d", ErrInvalidConfig, p.MaxAttempts)
	}
	if p.WallHeadClearance < 0 {
		return fmt.Errorf("%w: wall_head_clearance must not be negative, got %g", ErrInvalidConfig, p.WallHeadClearance)
	}
	return nil
}

// Validate checks the whole configuration, including every preset.
func (c SnakeConfig) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if err := c.Placement.Validate(); err != nil {
		return err
	}
	if len(c.Presets) == 0 {
		return fmt.Errorf("%w: at least one difficulty preset is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("%w: preset %q has no id", ErrInvalidConfig, p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate preset id %q", ErrInvalidConfig, p.ID)
		}
		seen[p.ID] = true
		if err := p.Difficulty.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", p.ID, err)
		}
	}
	return nil
}

// Preset looks up a difficulty preset by ID.
func (c SnakeConfig) Preset(id string) (Preset, error) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("config: unknown difficulty %q", id)
}

// PresetIDs returns preset IDs in configuration order.
func (c SnakeConfig) PresetIDs() []string {
	ids := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		ids[i] = p.ID
	}
	return ids
}
