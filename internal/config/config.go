// Package config provides YAML-based game configuration loading and
// difficulty management for brick breaker.
package config

// LevelCount is the number of levels in a campaign.
const LevelCount = 15

// BrickBreakerConfig contains all tunable parameters of the game.
type BrickBreakerConfig struct {
	Playfield  PlayfieldConfig `yaml:"playfield"`
	Paddle     PaddleConfig    `yaml:"paddle"`
	Ball       BallConfig      `yaml:"ball"`
	Powerups   PowerupConfig   `yaml:"powerups"`
	Gameplay   GameplayConfig  `yaml:"gameplay"`
	Levels     LevelsConfig    `yaml:"levels"`
	Difficulty RampConfig      `yaml:"difficulty"`
}

// PlayfieldConfig defines the logical playfield in pixels.
type PlayfieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	WallMargin  float64 `yaml:"wall_margin"`  // Inset of side walls and ceiling
	FloorMargin float64 `yaml:"floor_margin"` // How far below the bottom a ball may fall before it is lost
}

// PaddleConfig defines paddle geometry and motion.
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomOffset  float64 `yaml:"bottom_offset"` // Distance from the playfield bottom to the paddle top
	Speed         float64 `yaml:"speed"`         // Keyboard speed in px/s
	FollowRate    float64 `yaml:"follow_rate"`   // Pointer lerp rate per second
	EdgeMargin    float64 `yaml:"edge_margin"`   // Minimum gap to the side edges
	MinWidth      float64 `yaml:"min_width"`
	MaxWidthInset float64 `yaml:"max_width_inset"` // Max width is playfield width minus this
}

// BallConfig defines ball geometry and launch behavior.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	LaunchMinAngle float64 `yaml:"launch_min_angle"` // Fraction of π, measured from +x (negative = upward)
	LaunchMaxAngle float64 `yaml:"launch_max_angle"`
	SlowFactor     float64 `yaml:"slow_factor"`
	MaxBounce      float64 `yaml:"max_bounce"` // Paddle deflection at the edge, fraction of π
}

// PowerupConfig defines powerup drops and effect strengths.
type PowerupConfig struct {
	Chance           float64 `yaml:"chance"`
	Size             float64 `yaml:"size"`
	FallSpeed        float64 `yaml:"fall_speed"`
	Drift            float64 `yaml:"drift"`
	Lifetime         float64 `yaml:"lifetime"`
	ExpandAmount     float64 `yaml:"expand_amount"`
	SlowDuration     float64 `yaml:"slow_duration"`
	FullDuration     float64 `yaml:"full_duration"`
	DoubleDuration   float64 `yaml:"double_duration"`
	DoubleMultiplier float64 `yaml:"double_multiplier"`
	MultiBalls       int     `yaml:"multi_balls"`
}

// GameplayConfig defines scoring, lives and progression.
type GameplayConfig struct {
	Lives              int     `yaml:"lives"`
	MaxLives           int     `yaml:"max_lives"`
	ComboWindow        float64 `yaml:"combo_window"` // Seconds
	ComboStep          int     `yaml:"combo_step"`
	ComboBonus         int     `yaml:"combo_bonus"` // Points per combo at a milestone
	HitPoints          int     `yaml:"hit_points"`
	LevelBonus         int     `yaml:"level_bonus"`
	LevelBonusPerLevel int     `yaml:"level_bonus_per_level"`
	StartLevel         int     `yaml:"start_level"`
	BrickParticles     int     `yaml:"brick_particles"`
	CatchParticles     int     `yaml:"catch_particles"`
	MaxStep            float64 `yaml:"max_step"` // Largest simulated step in seconds
}

// LevelsConfig defines the brick grid layout.
type LevelsConfig struct {
	Columns     int     `yaml:"columns"`
	MinRows     int     `yaml:"min_rows"`
	MaxRows     int     `yaml:"max_rows"`
	Padding     float64 `yaml:"padding"`
	MarginX     float64 `yaml:"margin_x"`
	MarginY     float64 `yaml:"margin_y"`
	BrickHeight float64 `yaml:"brick_height"`
}

// RampConfig defines how ball speed increases with the level index.
type RampConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MaxAtLevel      int     `yaml:"max_at_level"`     // Level index at which the ramp peaks
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed fraction at the peak
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. The empty string is allowed and
// means "no preset".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
