package config

import "fmt"

// Difficulty holds the five tunables of a session. Values are fixed once a
// session starts.
type Difficulty struct {
	LengthIncreasePerFood    int     `yaml:"length_increase_per_food"`
	StartingLength           int     `yaml:"starting_length"`
	InitialSpeed             float64 `yaml:"initial_speed"`              // Units per tick
	SpeedIncreasePerFood     float64 `yaml:"speed_increase_per_food"`    // Units per tick
	WallPlacementProbability float64 `yaml:"wall_placement_probability"` // Per-tick chance in [0, 1)
}

// Validate rejects difficulties that would produce undefined runtime behavior.
func (d Difficulty) Validate() error {
	switch {
	case d.LengthIncreasePerFood < 0:
		return fmt.Errorf("%w: length_increase_per_food must not be negative, got %d", ErrInvalidConfig, d.LengthIncreasePerFood)
	case d.StartingLength < 1:
		return fmt.Errorf("%w: starting_length must be at least 1, got %d", ErrInvalidConfig, d.StartingLength)
	case d.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial_speed must be positive, got %g", ErrInvalidConfig, d.InitialSpeed)
	case d.SpeedIncreasePerFood < 0:
		return fmt.Errorf("%w: speed_increase_per_food must not be negative, got %g", ErrInvalidConfig, d.SpeedIncreasePerFood)
	case d.WallPlacementProbability < 0 || d.WallPlacementProbability >= 1:
		return fmt.Errorf("%w: wall_placement_probability must be in [0, 1), got %g", ErrInvalidConfig, d.WallPlacementProbability)
	}
	return nil
}

// Preset is a named difficulty shown in the selection menu.
type Preset struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Difficulty  Difficulty `yaml:"difficulty"`
}

// Preset IDs shipped with the game.
const (
	PresetBeginner     = "beginner"
	PresetEasy         = "easy"
	PresetLittleHarder = "little-harder"
	PresetExtreme      = "extreme"
	PresetGodMode      = "god-mode"
)

// DefaultPresetID is used when nothing else was selected or remembered.
const DefaultPresetID = PresetBeginner
