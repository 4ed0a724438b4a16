package brickbreaker

import (
	"testing"
	"time"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(0)

	tests := []struct {
		name    string
		elapsed time.Duration
		halted  bool
		wantDT  float64
		wantOK  bool
	}{
		{"normal frame", 16 * time.Millisecond, false, 0.016, true},
		{"long gap is clamped", 2 * time.Second, false, 0.033, true},
		{"halted", 16 * time.Millisecond, true, 0, false},
		{"no time passed", 0, false, 0, false},
		{"clock went backwards", -time.Millisecond, false, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dt, ok := c.Advance(tc.elapsed, tc.halted)
			if ok != tc.wantOK || dt != tc.wantDT {
				t.Errorf("Advance(%v, %v) = (%v, %v), expected (%v, %v)",
					tc.elapsed, tc.halted, dt, ok, tc.wantDT, tc.wantOK)
			}
		})
	}
}

func TestSessionTickUsesClampedStep(t *testing.T) {
	s := newTestSession(t, constRand(0.5))
	s.Launch()
	y := s.world.Balls[0].Y

	s.Tick(5 * time.Second)
	moved := y - s.world.Balls[0].Y
	if want := 480 * 0.033; moved < want-1e-6 || moved > want+1e-6 {
		t.Errorf("ball moved %v, expected %v for one clamped step", moved, want)
	}
}
