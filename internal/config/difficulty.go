package config

import "math"

// SpeedRamp scales the ball speed with the level index.
// A disabled ramp always returns the base speed.
type SpeedRamp struct {
	cfg RampConfig
}

// NewSpeedRamp creates a new speed ramp.
func NewSpeedRamp(cfg RampConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled reports whether the ramp changes anything.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.SpeedMultiplier != 0
}

// Progress returns how far along the ramp a level is (0.0 to 1.0).
func (r *SpeedRamp) Progress(level int) float64 {
	if !r.IsEnabled() {
		return 0
	}
	maxAt := float64(r.cfg.MaxAtLevel)
	if maxAt <= 0 {
		return 1
	}
	return clampF(float64(level)/maxAt, 0.0, 1.0)
}

// Speed returns the ball speed to use on the given level.
func (r *SpeedRamp) Speed(base float64, level int) float64 {
	return base * (1.0 + r.Progress(level)*r.cfg.SpeedMultiplier)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
