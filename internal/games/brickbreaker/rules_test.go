package brickbreaker

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

const frame = 16 * time.Millisecond

func TestNewSessionStartsAwaitingLaunch(t *testing.T) {
	s := newTestSession(t, noDrops)

	if s.Level() != 0 || s.Lives() != 3 || s.Score() != 0 {
		t.Errorf("level=%d lives=%d score=%d, expected 0/3/0", s.Level(), s.Lives(), s.Score())
	}
	if !s.AwaitingLaunch() || len(s.world.Balls) != 1 || !s.world.Balls[0].Sticky {
		t.Fatal("a new session should hold one sticky ball")
	}
	b := s.world.Balls[0]
	if b.X != s.paddle.CenterX() || b.Y != s.paddle.Y-b.R-2 {
		t.Errorf("sticky ball at (%v, %v), expected above paddle center", b.X, b.Y)
	}
}

func TestNewSessionRejectsBadStartLevel(t *testing.T) {
	cfg := config.DefaultBrickBreakerConfig()
	cfg.Gameplay.StartLevel = config.LevelCount
	if _, err := NewSession(cfg, ModeCampaign, noDrops); err == nil {
		t.Fatal("expected an error for a start level past the last level")
	}
}

func TestStickyBallTracksPaddle(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.SetMovement(false, true)
	s.Tick(frame)

	b := s.world.Balls[0]
	if b.X != s.paddle.CenterX() {
		t.Errorf("sticky ball x = %v, paddle center = %v", b.X, s.paddle.CenterX())
	}
	if s.paddle.X <= 400 {
		t.Errorf("paddle should have moved right, x = %v", s.paddle.X)
	}
}

func TestPaddleClampAndPointer(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.SetMovement(true, false)
	for i := 0; i < 100; i++ {
		s.Tick(frame)
	}
	if s.paddle.X != 10 {
		t.Errorf("paddle should stop at the left margin, x = %v", s.paddle.X)
	}

	s.SetMovement(false, false)
	s.SetPaddleTarget(700)
	for i := 0; i < 200; i++ {
		s.Tick(frame)
	}
	if math.Abs(s.paddle.CenterX()-700) > pointerDeadZone {
		t.Errorf("paddle center = %v, expected to settle near 700", s.paddle.CenterX())
	}

	s.SetPaddleTarget(5000)
	for i := 0; i < 200; i++ {
		s.Tick(frame)
	}
	if s.paddle.X != 960-160-10 {
		t.Errorf("paddle should stop at the right margin, x = %v", s.paddle.X)
	}
}

func TestLaunchIsIdempotent(t *testing.T) {
	s := newTestSession(t, constRand(0.5))
	s.Launch()
	events := s.DrainEvents()

	if countKind(events, EventBallLaunch) != 1 {
		t.Fatalf("expected one launch event, got %v", events)
	}
	b := s.world.Balls[0]
	if b.Sticky || s.AwaitingLaunch() {
		t.Fatal("ball should be free after launch")
	}
	// Midpoint of [-0.7π, -0.3π] is straight up.
	if math.Abs(b.VX) > 1e-6 || math.Abs(b.VY+480) > 1e-6 {
		t.Errorf("velocity = (%v, %v), expected (0, -480)", b.VX, b.VY)
	}

	s.Launch()
	if len(s.DrainEvents()) != 0 {
		t.Error("second launch should do nothing")
	}
	if s.world.Balls[0] != b || len(s.world.Balls) != 1 {
		t.Error("second launch should not touch the ball")
	}
}

func TestLaunchIgnoredWhilePaused(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.TogglePause()
	s.Launch()
	if !s.AwaitingLaunch() {
		t.Error("launch while paused should be ignored")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.Launch()
	s.TogglePause()
	before := s.View()

	for i := 0; i < 10; i++ {
		s.Tick(frame)
	}
	after := s.View()
	if before.Hash() != after.Hash() {
		t.Error("paused session should not change")
	}

	s.TogglePause()
	s.Tick(frame)
	if s.View().Balls[0].Y == before.Balls[0].Y {
		t.Error("resumed session should move the ball")
	}
}

func TestLevelZeroClearAdvances(t *testing.T) {
	s := newTestSession(t, noDrops)
	last := len(s.world.Bricks) - 1
	destroyAllBut(s, last)

	target := s.world.Bricks[last].Rect()
	s.world.Balls[0] = Ball{X: target.CenterX(), Y: target.Bottom() + 16, R: 10, VY: -480, Speed: 480}
	s.awaitingLaunch = false

	events := s.Tick(frame)

	if s.Level() != 1 {
		t.Fatalf("level = %d, expected 1", s.Level())
	}
	if s.Score() != 56+500 {
		t.Errorf("score = %d, expected %d", s.Score(), 56+500)
	}
	if countKind(events, EventBrickDestroyed) != 1 || countKind(events, EventLevelClear) != 1 {
		t.Errorf("unexpected events: %v", events)
	}
	for _, e := range events {
		if e.Kind == EventLevelClear && (e.Level != 0 || e.Bonus != 500) {
			t.Errorf("level clear event = %+v", e)
		}
	}
	if !s.AwaitingLaunch() || len(s.world.Balls) != 1 || !s.world.Balls[0].Sticky {
		t.Error("next level should start with one sticky ball")
	}
	if s.world.LiveBricks() != 60 {
		t.Errorf("level 2 should have 60 live bricks, got %d", s.world.LiveBricks())
	}
	if len(s.world.Particles) != 10 {
		t.Errorf("particles from the last brick should survive the level change, got %d", len(s.world.Particles))
	}
}

func TestBallLossWithTwoLives(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.lives = 2
	s.world.Balls[0] = Ball{X: 300, Y: 705, R: 10, VY: 480, Speed: 480}
	s.awaitingLaunch = false

	events := s.Tick(frame)

	if s.Lives() != 1 {
		t.Errorf("lives = %d, expected 1", s.Lives())
	}
	if s.Level() != 0 {
		t.Errorf("level = %d, expected 0", s.Level())
	}
	if len(s.world.Balls) != 1 || !s.world.Balls[0].Sticky || !s.AwaitingLaunch() {
		t.Error("expected exactly one new sticky ball")
	}
	if countKind(events, EventLifeLost) != 1 || s.GameOver() {
		t.Errorf("unexpected events %v or game over", events)
	}
}

func TestGameOverFreezesUntilRestart(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.lives = 1
	s.combo = 3
	s.world.Balls[0] = Ball{X: 300, Y: 705, R: 10, VY: 480, Speed: 480}
	s.awaitingLaunch = false

	events := s.Tick(frame)
	if !s.GameOver() || !s.Paused() || s.Won() || s.Lives() != 0 {
		t.Fatalf("gameOver=%v paused=%v won=%v lives=%d", s.GameOver(), s.Paused(), s.Won(), s.Lives())
	}
	if countKind(events, EventGameOver) != 1 || s.Combo() != 0 {
		t.Error("expected a game over event and a reset combo")
	}
	if countKind(events, EventLifeLost) != 0 {
		t.Error("the last life should only raise game over")
	}

	frozen := s.View()
	s.TogglePause()
	s.Launch()
	for i := 0; i < 30; i++ {
		s.Tick(frame)
	}
	if v := s.View(); v.Hash() != frozen.Hash() || !v.Paused {
		t.Error("nothing should change after game over")
	}

	s.Restart()
	if s.GameOver() || s.Paused() || s.Lives() != 3 || s.Score() != 0 {
		t.Error("restart should produce a fresh session")
	}
	if countKind(s.DrainEvents(), EventRestart) != 1 {
		t.Error("expected a restart event")
	}
}

func TestComboMilestones(t *testing.T) {
	s := newTestSession(t, noDrops)

	var milestones []int
	for i := 0; i < 15; i++ {
		s.world.Bricks[i].HP--
		s.resolveBrickHit(i)
		for _, e := range s.DrainEvents() {
			if e.Kind == EventComboMilestone {
				milestones = append(milestones, e.Combo)
				if e.Bonus != e.Combo*50 {
					t.Errorf("bonus at combo %d = %d", e.Combo, e.Bonus)
				}
			}
		}
	}

	if len(milestones) != 3 || milestones[0] != 5 || milestones[1] != 10 || milestones[2] != 15 {
		t.Errorf("milestones = %v, expected [5 10 15]", milestones)
	}
	want := 15*56 + (5+10+15)*50
	if s.Score() != want {
		t.Errorf("score = %d, expected %d", s.Score(), want)
	}
}

func TestComboWindowExpires(t *testing.T) {
	s := newTestSession(t, noDrops)

	s.world.Bricks[0].HP--
	s.resolveBrickHit(0)
	s.update(1.0)
	s.world.Bricks[1].HP--
	s.resolveBrickHit(1)
	if s.Combo() != 2 {
		t.Fatalf("hit inside the window should extend the streak, combo = %d", s.Combo())
	}

	s.update(1.6)
	if s.Combo() != 0 {
		t.Fatalf("combo should reset once the window passes, got %d", s.Combo())
	}
	s.world.Bricks[2].HP--
	s.resolveBrickHit(2)
	if s.Combo() != 1 {
		t.Errorf("new streak should start at 1, got %d", s.Combo())
	}
}

func TestNonDestroyingHitScoresFlatPoints(t *testing.T) {
	s := newTestSession(t, noDrops)
	b := &s.world.Bricks[0]
	b.HP, b.MaxHP = 1, 2

	s.resolveBrickHit(0)
	if s.Score() != 10 || s.Combo() != 0 || b.Destroyed {
		t.Errorf("score=%d combo=%d destroyed=%v", s.Score(), s.Combo(), b.Destroyed)
	}

	s.applyPowerup(PowerupDouble)
	s.resolveBrickHit(0)
	if s.Score() != 30 {
		t.Errorf("doubled hit should add 20, score = %d", s.Score())
	}
}

func TestSlowDoesNotStack(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.Launch()

	s.applyPowerup(PowerupSlow)
	if got := s.world.Balls[0].SlowTimer; got != 8 {
		t.Fatalf("slow timer = %v, expected 8", got)
	}
	s.update(0.5)
	s.applyPowerup(PowerupSlow)
	if got := s.world.Balls[0].SlowTimer; got != 8 {
		t.Errorf("reapplied slow timer = %v, expected 8", got)
	}
	if s.world.Balls[0].Speed != 480 {
		t.Error("slow must not change the stored speed")
	}
}

func TestPowerupEffects(t *testing.T) {
	t.Run("multi", func(t *testing.T) {
		s := newTestSession(t, NewSimpleRNG(3))
		s.Launch()
		s.applyPowerup(PowerupMulti)
		if len(s.world.Balls) != 3 {
			t.Fatalf("balls = %d, expected 3", len(s.world.Balls))
		}
		for i, b := range s.world.Balls {
			if math.Abs(speedOf(&b)-480) > 1e-6 {
				t.Errorf("ball %d speed = %v", i, speedOf(&b))
			}
			if i > 0 && (b.VY >= 0 || b.Sticky) {
				t.Errorf("clone %d should fly upward", i)
			}
		}
	})

	t.Run("expand caps", func(t *testing.T) {
		s := newTestSession(t, noDrops)
		s.applyPowerup(PowerupExpand)
		if s.paddle.W != 230 {
			t.Errorf("width = %v, expected 230", s.paddle.W)
		}
		s.paddle.W = 900
		s.applyPowerup(PowerupExpand)
		if s.paddle.W != 920 {
			t.Errorf("width = %v, expected cap 920", s.paddle.W)
		}
	})

	t.Run("life caps", func(t *testing.T) {
		s := newTestSession(t, noDrops)
		s.applyPowerup(PowerupLife)
		if s.Lives() != 4 {
			t.Errorf("lives = %d, expected 4", s.Lives())
		}
		s.lives = 9
		s.applyPowerup(PowerupLife)
		if s.Lives() != 9 {
			t.Errorf("lives = %d, expected cap 9", s.Lives())
		}
	})

	t.Run("full reverts", func(t *testing.T) {
		s := newTestSession(t, noDrops)
		s.applyPowerup(PowerupFull)
		if s.paddle.W != 920 {
			t.Fatalf("width = %v, expected 920", s.paddle.W)
		}
		s.powerups.tick(7.9, &s.paddle)
		if s.paddle.W != 920 {
			t.Error("full width ended early")
		}
		s.powerups.tick(0.2, &s.paddle)
		if s.paddle.W != 160 {
			t.Errorf("width = %v, expected revert to 160", s.paddle.W)
		}
	})

	t.Run("double reverts", func(t *testing.T) {
		s := newTestSession(t, noDrops)
		s.applyPowerup(PowerupDouble)
		s.world.Bricks[0].HP--
		s.resolveBrickHit(0)
		if s.Score() != 112 {
			t.Errorf("score = %d, expected 112", s.Score())
		}
		s.powerups.tick(10.1, &s.paddle)
		if s.powerups.Multiplier != 1 {
			t.Error("multiplier should revert to 1")
		}
	})
}

func TestPowerupCatchExpiryAndExit(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.world.Powerups = []Powerup{
		{X: s.paddle.CenterX(), Y: s.paddle.Y - 10, VY: 140, W: 32, H: 32, Kind: PowerupLife, Life: 8},
		{X: 100, Y: 100, VY: 140, W: 32, H: 32, Kind: PowerupLife, Life: 0.01},
		{X: -20, Y: 300, VX: -50, VY: 140, W: 32, H: 32, Kind: PowerupLife, Life: 8},
		{X: 200, Y: 300, VY: 140, W: 32, H: 32, Kind: PowerupExpand, Life: 8},
	}

	events := s.Tick(frame)

	if s.Lives() != 4 {
		t.Errorf("only the caught pickup should apply, lives = %d", s.Lives())
	}
	if countKind(events, EventPowerupCaught) != 1 {
		t.Errorf("expected one catch event, got %v", events)
	}
	if len(s.world.Powerups) != 1 || s.world.Powerups[0].Kind != PowerupExpand {
		t.Errorf("only the free-falling pickup should remain, got %+v", s.world.Powerups)
	}
	if len(s.world.Particles) != 12 {
		t.Errorf("catch burst = %d particles, expected 12", len(s.world.Particles))
	}
}

func TestPowerupDrop(t *testing.T) {
	s := newTestSession(t, constRand(0.1))
	s.world.Bricks[0].HP--
	s.resolveBrickHit(0)

	if len(s.world.Powerups) != 1 {
		t.Fatalf("a roll under the drop chance should spawn a pickup, got %d", len(s.world.Powerups))
	}
	p := s.world.Powerups[0]
	r := s.world.Bricks[0].Rect()
	if p.X != r.CenterX() || p.Y != r.CenterY() || p.VY != 140 || p.Life != 8 {
		t.Errorf("pickup = %+v", p)
	}
	if p.Kind != PowerupMulti {
		t.Errorf("kind = %v, expected multi for a 0.1 roll", p.Kind)
	}
}

func TestMultiIgnoresBallLostThisTick(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.world.Balls[0] = Ball{X: 100, Y: 699, R: 10, VY: 480, Speed: 480}
	s.awaitingLaunch = false
	s.world.Powerups = []Powerup{
		{X: s.paddle.CenterX(), Y: s.paddle.Y - 10, VY: 140, W: 32, H: 32, Kind: PowerupMulti, Life: 8},
	}

	events := s.Tick(frame)

	if countKind(events, EventPowerupCaught) != 1 {
		t.Fatalf("the pickup should still be caught, got %v", events)
	}
	if s.Lives() != 2 || countKind(events, EventLifeLost) != 1 {
		t.Errorf("lives = %d, expected the fallen ball to cost a life", s.Lives())
	}
	if len(s.world.Balls) != 1 || !s.world.Balls[0].Sticky || !s.AwaitingLaunch() {
		t.Fatalf("expected only a new sticky ball, got %+v", s.world.Balls)
	}

	for range 60 {
		s.Tick(frame)
	}
	if s.Lives() != 2 || len(s.world.Balls) != 1 || !s.world.Balls[0].Sticky {
		t.Errorf("no clone should come back into play: lives=%d balls=%+v", s.Lives(), s.world.Balls)
	}
}

func TestMultiClonesLiveBallPastLostOne(t *testing.T) {
	s := newTestSession(t, noDrops)
	s.world.Balls = []Ball{
		{X: 300, Y: 300, R: 10, VY: 480, Speed: 480, lost: true},
		{X: 500, Y: 200, R: 10, VY: -480, Speed: 480},
	}
	s.awaitingLaunch = false

	s.applyPowerup(PowerupMulti)
	s.world.Compact()

	if len(s.world.Balls) != 3 {
		t.Fatalf("balls = %d, expected the live ball and two clones", len(s.world.Balls))
	}
	for i, b := range s.world.Balls[1:] {
		if b.X != 500 || b.Y != 200 {
			t.Errorf("clone %d spawned at (%v, %v), expected the live ball", i, b.X, b.Y)
		}
	}
}

func TestPowerupCaughtWhileBallIsSticky(t *testing.T) {
	t.Run("multi", func(t *testing.T) {
		s := newTestSession(t, noDrops)
		s.world.Powerups = []Powerup{
			{X: s.paddle.CenterX(), Y: s.paddle.Y - 10, VY: 140, W: 32, H: 32, Kind: PowerupMulti, Life: 8},
		}

		s.Tick(frame)

		if len(s.world.Balls) != 3 {
			t.Fatalf("balls = %d, expected 3", len(s.world.Balls))
		}
		if !s.world.Balls[0].Sticky || !s.AwaitingLaunch() {
			t.Error("the held ball should stay on the paddle")
		}
		for i, b := range s.world.Balls[1:] {
			if b.Sticky || b.VY >= 0 {
				t.Errorf("clone %d should fly upward, got %+v", i, b)
			}
		}

		s.Launch()
		if s.AwaitingLaunch() || s.world.Balls[0].Sticky {
			t.Error("launch should release the held ball")
		}
		if s.Lives() != 3 {
			t.Errorf("lives = %d, expected 3", s.Lives())
		}
	})

	t.Run("full at the right wall", func(t *testing.T) {
		s := newTestSession(t, noDrops)
		w := s.cfg.Playfield.Width
		s.paddle.X = w - s.paddle.W - s.paddle.Margin
		s.world.Powerups = []Powerup{
			{X: s.paddle.CenterX(), Y: s.paddle.Y - 10, VY: 140, W: 32, H: 32, Kind: PowerupFull, Life: 8},
		}

		s.Tick(frame)

		v := s.View()
		if v.Paddle.W != 920 {
			t.Fatalf("width = %v, expected 920", v.Paddle.W)
		}
		if v.Paddle.X < s.paddle.Margin || v.Paddle.Right() > w-s.paddle.Margin {
			t.Errorf("paddle %+v overhangs the playfield", v.Paddle)
		}
		if b := s.world.Balls[0]; !b.Sticky || b.X != s.paddle.CenterX() {
			t.Errorf("sticky ball at %v, expected paddle center %v", b.X, s.paddle.CenterX())
		}
	})
}

func TestDeferredRemovalIsOrderStable(t *testing.T) {
	w := World{
		Balls: []Ball{{X: 1}, {X: 2, lost: true}, {X: 3}},
		Powerups: []Powerup{
			{Kind: PowerupLife, gone: true},
			{Kind: PowerupSlow},
		},
		Particles: []Particle{{Life: 0}, {Life: 0.2}, {Life: -1}},
	}
	w.Compact()

	if len(w.Balls) != 2 || w.Balls[0].X != 1 || w.Balls[1].X != 3 {
		t.Errorf("balls = %+v", w.Balls)
	}
	if len(w.Powerups) != 1 || w.Powerups[0].Kind != PowerupSlow {
		t.Errorf("powerups = %+v", w.Powerups)
	}
	if len(w.Particles) != 1 || w.Particles[0].Life != 0.2 {
		t.Errorf("particles = %+v", w.Particles)
	}
}

func TestLastLevel(t *testing.T) {
	lastLevel := func(cfg *config.BrickBreakerConfig) { cfg.Gameplay.StartLevel = config.LevelCount - 1 }

	t.Run("campaign wins", func(t *testing.T) {
		s := newTestSession(t, noDrops, lastLevel)
		destroyAllBut(s)
		events := s.Tick(frame)

		if !s.GameOver() || !s.Won() || !s.Paused() {
			t.Fatalf("gameOver=%v won=%v paused=%v", s.GameOver(), s.Won(), s.Paused())
		}
		if s.Score() != 500+14*100 {
			t.Errorf("score = %d, expected %d", s.Score(), 500+14*100)
		}
		for _, e := range events {
			if e.Kind == EventGameOver && !e.Won {
				t.Error("game over event should report a win")
			}
		}
	})

	t.Run("endless wraps", func(t *testing.T) {
		cfg := config.DefaultBrickBreakerConfig()
		lastLevel(&cfg)
		s, err := NewSession(cfg, ModeEndless, noDrops)
		if err != nil {
			t.Fatal(err)
		}
		destroyAllBut(s)
		s.Tick(frame)

		if s.GameOver() || s.Level() != 14 || s.Cycle() != 1 {
			t.Errorf("gameOver=%v level=%d cycle=%d", s.GameOver(), s.Level(), s.Cycle())
		}
		if s.world.LiveBricks() == 0 {
			t.Error("the last layout should be regenerated")
		}
	})
}

func TestRestartReturnsToStartLevel(t *testing.T) {
	s := newTestSession(t, noDrops, func(cfg *config.BrickBreakerConfig) { cfg.Gameplay.StartLevel = 3 })
	s.score = 1234
	s.applyPowerup(PowerupDouble)
	s.applyPowerup(PowerupExpand)

	s.Restart()
	if s.Level() != 3 || s.Score() != 0 || s.paddle.W != 160 || s.powerups.Multiplier != 1 {
		t.Errorf("level=%d score=%d width=%v mult=%v", s.Level(), s.Score(), s.paddle.W, s.powerups.Multiplier)
	}
}

func TestSpeedRampAppliesPerLevel(t *testing.T) {
	s := newTestSession(t, noDrops, func(cfg *config.BrickBreakerConfig) {
		cfg.Difficulty.Enabled = true
		cfg.Gameplay.StartLevel = 14
	})
	want := 480 * 1.35
	if got := s.world.Balls[0].Speed; math.Abs(got-want) > 1e-9 {
		t.Errorf("ball speed on the last level = %v, expected %v", got, want)
	}
}
