package brickbreaker

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Mode selects what happens after the last level.
type Mode int

const (
	ModeCampaign Mode = iota // Win after the last level
	ModeEndless              // Replay the last layout forever
)

const (
	shakeOnMilestone = 0.3
	shakeDecay       = 8
	pointerDeadZone  = 2
)

// Session is one play-through: the paddle, the entities of the live level,
// timed effects and the scoring state. It is not safe for concurrent use.
type Session struct {
	cfg    config.BrickBreakerConfig
	mode   Mode
	rng    Rand
	layout LevelLayout
	ramp   *config.SpeedRamp
	clock  *Clock

	paddle   Paddle
	world    World
	powerups PowerupState

	score          int
	lives          int
	level          int
	cycle          int
	combo          int
	comboTimer     float64
	shake          float64
	simTime        float64
	paused         bool
	gameOver       bool
	won            bool
	awaitingLaunch bool

	moveLeft  bool
	moveRight bool
	target    float64
	hasTarget bool

	events []Event
}

// NewSession validates the configuration and starts a session on the
// configured start level.
func NewSession(cfg config.BrickBreakerConfig, mode Mode, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("brickbreaker: invalid config: %w", err)
	}
	maxStep := time.Duration(math.Round(cfg.Gameplay.MaxStep * float64(time.Second)))
	s := &Session{
		cfg:    cfg,
		mode:   mode,
		rng:    rng,
		layout: NewLevelLayout(cfg),
		ramp:   config.NewSpeedRamp(cfg.Difficulty),
		clock:  NewClock(maxStep),
	}
	s.reset()
	return s, nil
}

// reset replaces all mutable state with a fresh session.
func (s *Session) reset() {
	*s = Session{
		cfg:    s.cfg,
		mode:   s.mode,
		rng:    s.rng,
		layout: s.layout,
		ramp:   s.ramp,
		clock:  s.clock,
		events: s.events,
	}

	pf, pc := s.cfg.Playfield, s.cfg.Paddle
	s.paddle = Paddle{
		X:      pf.Width/2 - pc.Width/2,
		Y:      pf.Height - pc.BottomOffset,
		W:      pc.Width,
		H:      pc.Height,
		Speed:  pc.Speed,
		BaseW:  pc.Width,
		MinW:   pc.MinWidth,
		MaxW:   pf.Width - pc.MaxWidthInset,
		Margin: pc.EdgeMargin,
	}
	s.powerups = newPowerupState()
	s.lives = s.cfg.Gameplay.Lives
	s.loadLevel(s.cfg.Gameplay.StartLevel)
}

func (s *Session) field() Field {
	pf := s.cfg.Playfield
	return Field{
		W:           pf.Width,
		H:           pf.Height,
		WallMargin:  pf.WallMargin,
		FloorMargin: pf.FloorMargin,
		SlowFactor:  s.cfg.Ball.SlowFactor,
		MaxBounce:   s.cfg.Ball.MaxBounce * math.Pi,
	}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// loadLevel makes index the live level with a single sticky ball.
func (s *Session) loadLevel(index int) {
	s.level = core.Clamp(index, 0, TotalLevels-1)
	s.world.LoadBricks(GenerateLevel(s.level, s.layout, s.rng))
	s.combo = 0
	s.comboTimer = 0
	s.spawnBall()
}

// spawnBall attaches a new ball to the paddle and waits for a launch.
func (s *Session) spawnBall() {
	b := Ball{
		R:      s.cfg.Ball.Radius,
		Speed:  s.ramp.Speed(s.cfg.Ball.Speed, s.level),
		Sticky: true,
	}
	AttachToPaddle(&b, &s.paddle)
	s.world.Balls = append(s.world.Balls, b)
	s.awaitingLaunch = true
}

// SetPaddleTarget makes the paddle center follow x, in playfield units.
func (s *Session) SetPaddleTarget(x float64) {
	s.target = x
	s.hasTarget = true
}

// SetMovement sets the held keyboard directions for the next ticks.
// Keyboard movement cancels pointer following.
func (s *Session) SetMovement(left, right bool) {
	s.moveLeft, s.moveRight = left, right
	if left || right {
		s.hasTarget = false
	}
}

// Launch releases every sticky ball. It only acts while a ball is waiting
// and the session is running.
func (s *Session) Launch() {
	if !s.awaitingLaunch || s.paused || s.gameOver {
		return
	}
	s.awaitingLaunch = false
	bc := s.cfg.Ball
	for i := range s.world.Balls {
		b := &s.world.Balls[i]
		if !b.Sticky {
			continue
		}
		b.Sticky = false
		angle := uniform(s.rng, bc.LaunchMinAngle*math.Pi, bc.LaunchMaxAngle*math.Pi)
		b.VX = math.Cos(angle) * b.Speed
		b.VY = math.Sin(angle) * b.Speed
		s.emit(Event{Kind: EventBallLaunch, X: b.X, Y: b.Y})
	}
}

// TogglePause flips the pause flag. Ignored once the game is over.
func (s *Session) TogglePause() {
	if s.gameOver {
		return
	}
	s.paused = !s.paused
}

// Restart throws the session away and starts over from the start level.
func (s *Session) Restart() {
	s.reset()
	s.emit(Event{Kind: EventRestart})
}

// Tick advances the session by one frame and returns the events raised since
// the previous tick.
func (s *Session) Tick(elapsed time.Duration) []Event {
	if dt, ok := s.clock.Advance(elapsed, s.paused || s.gameOver); ok {
		s.update(dt)
	}
	return s.DrainEvents()
}

// DrainEvents returns and clears the pending events.
func (s *Session) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

// update runs one simulation pass of dt seconds.
func (s *Session) update(dt float64) {
	s.simTime += dt
	s.powerups.tick(dt, &s.paddle)

	if s.comboTimer > 0 {
		s.comboTimer -= dt
		if s.comboTimer <= 0 {
			s.comboTimer = 0
			s.combo = 0
		}
	}
	if s.shake > 0 {
		s.shake = math.Max(0, s.shake-dt*shakeDecay)
	}

	s.movePaddle(dt)
	s.updateBalls(dt)
	MoveBricks(s.world.Bricks, s.simTime, s.field())
	s.updatePowerups(dt)
	s.world.Compact()

	s.checkBallLoss()
	if !s.gameOver {
		s.checkLevelClear()
	}

	s.updateParticles(dt)
	s.world.Compact()
}

func (s *Session) movePaddle(dt float64) {
	p := &s.paddle
	if s.hasTarget && math.Abs(s.target-p.CenterX()) > pointerDeadZone {
		p.X += (s.target - p.W/2 - p.X) * core.ClampF(s.cfg.Paddle.FollowRate*dt, 0, 1)
	}
	if s.moveLeft {
		p.X -= p.Speed * dt
	}
	if s.moveRight {
		p.X += p.Speed * dt
	}
	p.clampX(s.cfg.Playfield.Width)
}

func (s *Session) updateBalls(dt float64) {
	f := s.field()
	for i := range s.world.Balls {
		b := &s.world.Balls[i]
		if b.Sticky {
			AttachToPaddle(b, &s.paddle)
			continue
		}
		c := StepBall(b, dt, f, &s.paddle, s.world.Bricks)
		if c.Wall {
			s.emit(Event{Kind: EventWallBounce, X: b.X, Y: b.Y})
		}
		if c.Paddle {
			s.emit(Event{Kind: EventPaddleBounce, X: b.X, Y: b.Y})
		}
		if c.Brick >= 0 {
			s.resolveBrickHit(c.Brick)
		}
	}
}

// resolveBrickHit scores a brick whose hit points were just decremented.
func (s *Session) resolveBrickHit(i int) {
	b := &s.world.Bricks[i]
	cx, cy := b.Rect().CenterX(), b.Rect().CenterY()
	gp := s.cfg.Gameplay

	if b.HP > 0 {
		s.score += int(math.Round(float64(gp.HitPoints) * s.powerups.Multiplier))
		s.emit(Event{Kind: EventBrickHit, X: cx, Y: cy})
		return
	}

	b.Destroyed = true
	s.score += int(math.Round(float64(b.Points) * s.powerups.Multiplier))
	s.combo++
	s.comboTimer = gp.ComboWindow
	s.emit(Event{Kind: EventBrickDestroyed, Combo: s.combo, X: cx, Y: cy})

	if s.combo >= gp.ComboStep && s.combo%gp.ComboStep == 0 {
		bonus := s.combo * gp.ComboBonus
		s.score += bonus
		s.shake = shakeOnMilestone
		s.emit(Event{Kind: EventComboMilestone, Combo: s.combo, Bonus: bonus, X: cx, Y: cy})
	}

	s.maybeSpawnPowerup(cx, cy)
	s.burst(cx, cy, BrickColor(b.HPRatio(), false), gp.BrickParticles)
}

func (s *Session) checkBallLoss() {
	if len(s.world.Balls) > 0 || s.awaitingLaunch {
		return
	}
	s.lives = max(0, s.lives-1)
	s.combo = 0
	s.comboTimer = 0

	// The last life ends the game with a single GameOver event.
	if s.lives == 0 {
		s.endGame(false)
		return
	}
	s.emit(Event{Kind: EventLifeLost})
	s.spawnBall()
}

func (s *Session) checkLevelClear() {
	if s.world.LiveBricks() > 0 {
		return
	}
	gp := s.cfg.Gameplay
	bonus := gp.LevelBonus + s.level*gp.LevelBonusPerLevel
	s.score += bonus
	s.emit(Event{Kind: EventLevelClear, Level: s.level, Bonus: bonus})

	switch {
	case s.level < TotalLevels-1:
		s.loadLevel(s.level + 1)
	case s.mode == ModeEndless:
		s.cycle++
		s.loadLevel(s.level)
	default:
		s.endGame(true)
	}
}

func (s *Session) endGame(won bool) {
	s.gameOver = true
	s.paused = true
	s.won = won
	s.emit(Event{Kind: EventGameOver, Won: won})
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the zero-based index of the live level.
func (s *Session) Level() int { return s.level }

// Combo returns the current destruction streak.
func (s *Session) Combo() int { return s.combo }

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool { return s.paused }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Won reports whether the session ended by clearing the last level.
func (s *Session) Won() bool { return s.won }

// AwaitingLaunch reports whether a ball is waiting on the paddle.
func (s *Session) AwaitingLaunch() bool { return s.awaitingLaunch }

// Cycle returns how many times endless mode has wrapped around.
func (s *Session) Cycle() int { return s.cycle }
