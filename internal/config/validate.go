package config

import (
	"errors"
	"fmt"
)

// Validate reports every inconsistent setting at once.
func (c BrickBreakerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	pf := c.Playfield
	check(pf.Width > 0 && pf.Height > 0, "playfield: size must be positive, got %vx%v", pf.Width, pf.Height)
	check(pf.WallMargin >= 0, "playfield: wall_margin must not be negative")

	p := c.Paddle
	maxWidth := pf.Width - p.MaxWidthInset
	check(p.MinWidth > 0, "paddle: min_width must be positive")
	check(p.MinWidth <= maxWidth, "paddle: min_width %v exceeds max width %v", p.MinWidth, maxWidth)
	check(p.Width >= p.MinWidth && p.Width <= maxWidth,
		"paddle: width %v outside [%v, %v]", p.Width, p.MinWidth, maxWidth)
	check(p.Height > 0, "paddle: height must be positive")
	check(p.Speed > 0, "paddle: speed must be positive")
	check(p.FollowRate > 0, "paddle: follow_rate must be positive")
	check(p.BottomOffset > 0 && p.BottomOffset < pf.Height, "paddle: bottom_offset outside playfield")

	b := c.Ball
	check(b.Radius > 0, "ball: radius must be positive")
	check(b.Speed > 0, "ball: speed must be positive")
	check(b.LaunchMinAngle <= b.LaunchMaxAngle, "ball: launch_min_angle greater than launch_max_angle")
	check(b.LaunchMaxAngle < 0 && b.LaunchMinAngle > -1, "ball: launch angles must point upward")
	check(b.SlowFactor > 0 && b.SlowFactor <= 1, "ball: slow_factor must be in (0, 1]")
	check(b.MaxBounce > 0 && b.MaxBounce < 0.5, "ball: max_bounce must be in (0, 0.5)")

	pw := c.Powerups
	check(pw.Chance >= 0 && pw.Chance <= 1, "powerups: chance %v outside [0, 1]", pw.Chance)
	check(pw.Size > 0, "powerups: size must be positive")
	check(pw.Lifetime > 0, "powerups: lifetime must be positive")
	check(pw.DoubleMultiplier >= 1, "powerups: double_multiplier must be at least 1")
	check(pw.MultiBalls >= 0, "powerups: multi_balls must not be negative")

	g := c.Gameplay
	check(g.MaxLives > 0, "gameplay: max_lives must be positive")
	check(g.Lives > 0 && g.Lives <= g.MaxLives, "gameplay: lives %d outside [1, %d]", g.Lives, g.MaxLives)
	check(g.ComboWindow > 0, "gameplay: combo_window must be positive")
	check(g.ComboStep > 0, "gameplay: combo_step must be positive")
	check(g.StartLevel >= 0 && g.StartLevel < LevelCount,
		"gameplay: start_level %d outside [0, %d]", g.StartLevel, LevelCount-1)
	check(g.MaxStep > 0, "gameplay: max_step must be positive")

	l := c.Levels
	check(l.Columns > 0, "levels: columns must be positive")
	check(l.MinRows > 0 && l.MinRows <= l.MaxRows, "levels: rows range [%d, %d] invalid", l.MinRows, l.MaxRows)
	check(l.BrickHeight > 0, "levels: brick_height must be positive")
	brickW := (pf.Width - 2*l.MarginX - float64(l.Columns-1)*l.Padding) / float64(max(l.Columns, 1))
	check(brickW > 0, "levels: bricks do not fit horizontally")
	bottom := l.MarginY + float64(l.MaxRows)*(l.BrickHeight+l.Padding)
	check(bottom < pf.Height-p.BottomOffset, "levels: brick grid overlaps the paddle row")
	check(l.MarginX >= pf.WallMargin, "levels: margin_x inside the wall")

	return errors.Join(errs...)
}
