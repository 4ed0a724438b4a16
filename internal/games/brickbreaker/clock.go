package brickbreaker

import "time"

// DefaultMaxStep is the largest step the clock hands to the simulation.
const DefaultMaxStep = 33 * time.Millisecond

// Clock turns frame-to-frame wall time into simulation steps. Long gaps
// (a suspended terminal, a dragged window) are clamped to MaxStep.
type Clock struct {
	MaxStep time.Duration
}

// NewClock creates a clock with the given step cap.
func NewClock(maxStep time.Duration) *Clock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{MaxStep: maxStep}
}

// Advance returns the step to simulate for an elapsed frame time. While
// halted (paused or game over) nothing advances and ok is false.
func (c *Clock) Advance(elapsed time.Duration, halted bool) (dt float64, ok bool) {
	if halted || elapsed <= 0 {
		return 0, false
	}
	return min(elapsed, c.MaxStep).Seconds(), true
}
