package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultBrickBreakerYAML []byte

// DefaultBrickBreakerConfig returns the built-in configuration. It matches
// the embedded YAML and is used when that cannot be parsed.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		Playfield: PlayfieldConfig{
			Width:       960,
			Height:      640,
			WallMargin:  8,
			FloorMargin: 50,
		},
		Paddle: PaddleConfig{
			Width:         160,
			Height:        16,
			BottomOffset:  50,
			Speed:         900,
			FollowRate:    15,
			EdgeMargin:    10,
			MinWidth:      40,
			MaxWidthInset: 40,
		},
		Ball: BallConfig{
			Radius:         10,
			Speed:          480,
			LaunchMinAngle: -0.7,
			LaunchMaxAngle: -0.3,
			SlowFactor:     0.6,
			MaxBounce:      0.4,
		},
		Powerups: PowerupConfig{
			Chance:           0.22,
			Size:             32,
			FallSpeed:        140,
			Drift:            50,
			Lifetime:         8,
			ExpandAmount:     70,
			SlowDuration:     8,
			FullDuration:     8,
			DoubleDuration:   10,
			DoubleMultiplier: 2,
			MultiBalls:       2,
		},
		Gameplay: GameplayConfig{
			Lives:              3,
			MaxLives:           9,
			ComboWindow:        1.5,
			ComboStep:          5,
			ComboBonus:         50,
			HitPoints:          10,
			LevelBonus:         500,
			LevelBonusPerLevel: 100,
			StartLevel:         0,
			BrickParticles:     10,
			CatchParticles:     12,
			MaxStep:            0.033,
		},
		Levels: LevelsConfig{
			Columns:     12,
			MinRows:     5,
			MaxRows:     12,
			Padding:     6,
			MarginX:     32,
			MarginY:     80,
			BrickHeight: 24,
		},
		Difficulty: RampConfig{
			Enabled:         false,
			MaxAtLevel:      LevelCount - 1,
			SpeedMultiplier: 0.35,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBrickBreakerYAML
}
