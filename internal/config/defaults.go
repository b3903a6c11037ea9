package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embed cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Geometry: Geometry{
			SnakeRadius:       5,
			FoodRadius:        5,
			WallRadius:        6,
			SegmentSpacing:    5,
			SelfCollisionSkip: 4,
			CellWidth:         10,
			CellHeight:        20,
		},
		Placement: Placement{
			MaxAttempts:       64,
			WallHeadClearance: 40,
		},
		Presets: []Preset{
			{
				ID:          PresetBeginner,
				Name:        "Beginner",
				Description: "You suck!",
				Difficulty:  Difficulty{LengthIncreasePerFood: 2, StartingLength: 5, InitialSpeed: 1.0, SpeedIncreasePerFood: 0.1, WallPlacementProbability: 0},
			},
			{
				ID:          PresetEasy,
				Name:        "Easy",
				Description: "Weaksauce.",
				Difficulty:  Difficulty{LengthIncreasePerFood: 2, StartingLength: 10, InitialSpeed: 1.5, SpeedIncreasePerFood: 0.15, WallPlacementProbability: 0.001},
			},
			{
				ID:          PresetLittleHarder,
				Name:        "Little Harder",
				Description: "Break a sweat",
				Difficulty:  Difficulty{LengthIncreasePerFood: 3, StartingLength: 12, InitialSpeed: 2.0, SpeedIncreasePerFood: 0.2, WallPlacementProbability: 0.0025},
			},
			{
				ID:          PresetExtreme,
				Name:        "Extreme",
				Description: "Fast as fuck boiii",
				Difficulty:  Difficulty{LengthIncreasePerFood: 4, StartingLength: 15, InitialSpeed: 2.5, SpeedIncreasePerFood: 0.3, WallPlacementProbability: 0.004},
			},
			{
				ID:          PresetGodMode,
				Name:        "God Mode",
				Description: "Don't bother...",
				Difficulty:  Difficulty{LengthIncreasePerFood: 5, StartingLength: 20, InitialSpeed: 3.0, SpeedIncreasePerFood: 0.5, WallPlacementProbability: 0.0075},
			},
		},
	}
}
