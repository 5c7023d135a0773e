// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the snake game.
package config

import "fmt"

// SnakeConfig contains all tunable gameplay parameters.
type SnakeConfig struct {
	Speed     SpeedConfig     `yaml:"speed"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	SuperFood SuperFoodConfig `yaml:"super_food"`
	Board     BoardConfig     `yaml:"board"`
}

// SpeedConfig defines the tick timing.
type SpeedConfig struct {
	NormalIntervalMs int `yaml:"normal_interval_ms"` // Delay between ticks at normal speed
	BoostDivisor     int `yaml:"boost_divisor"`      // Normal interval is divided by this while boosting
}

// ScoringConfig defines the points awarded per item.
type ScoringConfig struct {
	FoodPoints      int `yaml:"food_points"`
	SuperFoodPoints int `yaml:"super_food_points"`
}

// SuperFoodConfig defines the bonus item behavior.
type SuperFoodConfig struct {
	ChanceDenominator int `yaml:"chance_denominator"` // Spawn odds are 1-in-N per opportunity
	SpawnAttempts     int `yaml:"spawn_attempts"`     // Placement samples before giving up
	TTLTicks          int `yaml:"ttl_ticks"`          // Lifetime in ticks
	ExtraGrowth       int `yaml:"extra_growth"`       // Tail copies appended on top of the head prepend
}

// BoardConfig defines terminal size requirements.
type BoardConfig struct {
	MinScreenW int `yaml:"min_screen_w"`
	MinScreenH int `yaml:"min_screen_h"`
}

// Validate checks that the configuration is playable.
func (c SnakeConfig) Validate() error {
	if c.Speed.NormalIntervalMs <= 0 {
		return fmt.Errorf("config: speed.normal_interval_ms must be positive, got %d", c.Speed.NormalIntervalMs)
	}
	if c.Speed.BoostDivisor < 1 {
		return fmt.Errorf("config: speed.boost_divisor must be at least 1, got %d", c.Speed.BoostDivisor)
	}
	if c.Scoring.FoodPoints < 0 || c.Scoring.SuperFoodPoints < 0 {
		return fmt.Errorf("config: scoring points must be non-negative")
	}
	if c.SuperFood.ChanceDenominator < 1 {
		return fmt.Errorf("config: super_food.chance_denominator must be at least 1, got %d", c.SuperFood.ChanceDenominator)
	}
	if c.SuperFood.SpawnAttempts < 1 {
		return fmt.Errorf("config: super_food.spawn_attempts must be at least 1, got %d", c.SuperFood.SpawnAttempts)
	}
	if c.SuperFood.TTLTicks < 1 {
		return fmt.Errorf("config: super_food.ttl_ticks must be at least 1, got %d", c.SuperFood.TTLTicks)
	}
	if c.SuperFood.ExtraGrowth < 0 {
		return fmt.Errorf("config: super_food.extra_growth must be non-negative, got %d", c.SuperFood.ExtraGrowth)
	}
	if c.Board.MinScreenW < 10 || c.Board.MinScreenH < 5 {
		return fmt.Errorf("config: board minimum %dx%d is below the smallest playable size",
			c.Board.MinScreenW, c.Board.MinScreenH)
	}
	return nil
}
