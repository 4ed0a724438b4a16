package brickbreaker

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Terminal glyphs
const (
	PaddleChar         = '▀'
	BallChar           = '●'
	ParticleChar       = '·'
	IndestructibleChar = '▒'
	BorderHoriz        = '─'
)

// BrickGlyphs by remaining hit points, strongest first.
var BrickGlyphs = []rune{'█', '▓', '▒'}

const (
	minScreenW = 40
	minScreenH = 16
	hudRows    = 2
)

var powerupColors = map[PowerupKind]core.Color{
	PowerupMulti:  core.ColorBrightGreen,
	PowerupExpand: core.ColorBrightYellow,
	PowerupSlow:   core.ColorMagenta,
	PowerupLife:   core.ColorBrightRed,
	PowerupFull:   core.ColorCyan,
	PowerupDouble: core.ColorOrange,
}

// cellMapper converts playfield coordinates to screen cells below the HUD.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(v *View, dst *core.Screen) cellMapper {
	rows := dst.Height() - hudRows
	return cellMapper{
		sx: v.Width / float64(dst.Width()),
		sy: v.Height / float64(rows),
	}
}

func (m cellMapper) x(px float64) int { return int(math.Floor(px / m.sx)) }
func (m cellMapper) y(py float64) int { return int(math.Floor(py/m.sy)) + hudRows }

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := g.View()
	m := newCellMapper(&v, dst)

	renderHUD(dst, &v)
	renderBricks(dst, &v, m)
	renderParticles(dst, &v, m)
	renderPowerups(dst, &v, m)
	renderPaddle(dst, &v, m)
	renderBalls(dst, &v, m)
	renderOverlay(dst, &v)
}

func renderHUD(dst *core.Screen, v *View) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", v.Score), core.ColorBrightWhite)

	lives := strings.Repeat("♥", v.Lives)
	dst.DrawTextCenteredColored(0, lives, core.ColorBrightRed)

	levelText := fmt.Sprintf("Level: %d/%d", v.Level+1, v.TotalLevels)
	if v.Endless && v.Cycle > 0 {
		levelText = fmt.Sprintf("Level: %d/%d +%d", v.Level+1, v.TotalLevels, v.Cycle)
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
	var tags []string
	if v.Combo > 1 {
		tags = append(tags, fmt.Sprintf(" COMBO x%d ", v.Combo))
	}
	if v.Multiplier > 1 {
		tags = append(tags, fmt.Sprintf(" %gx SCORE ", v.Multiplier))
	}
	if len(tags) > 0 {
		dst.DrawTextColored(2, 1, strings.Join(tags, "─"), core.ColorOrange)
	}
}

// terminalBrickColor approximates BrickColor's blue-to-red ramp with the
// terminal palette.
func terminalBrickColor(b BrickView) core.Color {
	switch {
	case b.Indestructible:
		return core.ColorGray
	case b.HPRatio > 0.75:
		return core.ColorBrightBlue
	case b.HPRatio > 0.5:
		return core.ColorBlue
	case b.HPRatio > 0.25:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

func brickGlyph(b BrickView) rune {
	if b.Indestructible {
		return IndestructibleChar
	}
	idx := int((1 - b.HPRatio) * float64(len(BrickGlyphs)))
	return BrickGlyphs[core.Clamp(idx, 0, len(BrickGlyphs)-1)]
}

func renderBricks(dst *core.Screen, v *View, m cellMapper) {
	for _, b := range v.Bricks {
		x0 := int(math.Ceil(b.Rect.X / m.sx))
		x1 := m.x(b.Rect.Right()) - 1
		if x1 < x0 {
			x1 = x0
		}
		y := m.y(b.Rect.CenterY())
		glyph, c := brickGlyph(b), terminalBrickColor(b)
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, glyph, c)
		}
	}
}

func renderParticles(dst *core.Screen, v *View, m cellMapper) {
	for _, p := range v.Particles {
		c := core.ColorBrightYellow
		if p.Life < 0.5 {
			c = core.ColorYellow
		}
		dst.SetColored(m.x(p.X), m.y(p.Y), ParticleChar, c)
	}
}

func renderPowerups(dst *core.Screen, v *View, m cellMapper) {
	for _, p := range v.Powerups {
		x, y := m.x(p.Rect.CenterX()), m.y(p.Rect.CenterY())
		c := powerupColors[p.Kind]
		dst.SetColored(x-1, y, '[', c)
		dst.DrawTextColored(x, y, p.Icon, c)
		dst.SetColored(x+len([]rune(p.Icon)), y, ']', c)
	}
}

func renderPaddle(dst *core.Screen, v *View, m cellMapper) {
	x0 := m.x(v.Paddle.X)
	x1 := m.x(v.Paddle.Right())
	y := m.y(v.Paddle.Y)
	for x := x0; x < x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightCyan)
	}
}

func renderBalls(dst *core.Screen, v *View, m cellMapper) {
	for _, b := range v.Balls {
		c := core.ColorBrightRed
		if b.Slowed {
			c = core.ColorMagenta
		}
		dst.SetColored(m.x(b.X), m.y(b.Y), BallChar, c)
	}
}

func renderOverlay(dst *core.Screen, v *View) {
	switch {
	case v.GameOver && v.Won:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", v.Score))
	case v.GameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", v.Score))
	case v.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case v.AwaitingLaunch:
		dst.DrawTextCenteredColored(dst.Height()-1, "Press SPACE to launch", core.ColorGray)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
