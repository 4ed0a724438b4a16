package brickbreaker

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

func (r constRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return min(int(float64(r)*float64(n)), n-1)
}

func (r constRand) State() uint64 { return math.Float64bits(float64(r)) }

// noDrops never passes the powerup drop roll.
const noDrops = constRand(0.99)

func newTestSession(t *testing.T, rng Rand, mutate ...func(*config.BrickBreakerConfig)) *Session {
	t.Helper()
	cfg := config.DefaultBrickBreakerConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	s, err := NewSession(cfg, ModeCampaign, rng)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// destroyAllBut marks every brick destroyed except the ones listed.
func destroyAllBut(s *Session, keep ...int) {
	keepSet := make(map[int]bool, len(keep))
	for _, k := range keep {
		keepSet[k] = true
	}
	for i := range s.world.Bricks {
		if !keepSet[i] {
			s.world.Bricks[i].Destroyed = true
		}
	}
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
