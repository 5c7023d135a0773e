package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default gameplay configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Speed: SpeedConfig{
			NormalIntervalMs: 100,
			BoostDivisor:     2,
		},
		Scoring: ScoringConfig{
			FoodPoints:      10,
			SuperFoodPoints: 50,
		},
		SuperFood: SuperFoodConfig{
			ChanceDenominator: 8,
			SpawnAttempts:     10,
			TTLTicks:          150,
			ExtraGrowth:       4,
		},
		Board: BoardConfig{
			MinScreenW: 30,
			MinScreenH: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
