package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

const (
	hudHeight     = 36
	hudFontSize   = 18
	titleFontSize = 44
	shakePixels   = 24 // offset at shake strength 1
	brickGap      = 2
)

var (
	backgroundColor = color.RGBA{0x10, 0x12, 0x1c, 0xff}
	hudColor        = color.RGBA{0x1a, 0x1d, 0x2b, 0xff}
	textColor       = color.RGBA{0xee, 0xee, 0xee, 0xff}
	dimTextColor    = color.RGBA{0x88, 0x8c, 0x99, 0xff}
	livesColor      = color.RGBA{0xff, 0x55, 0x66, 0xff}
	comboColor      = color.RGBA{0xff, 0xa5, 0x30, 0xff}
	paddleColor     = color.RGBA{0x5a, 0xc8, 0xfa, 0xff}
	ballColor       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	slowBallColor   = color.RGBA{0xb4, 0x8c, 0xff, 0xff}
	steelEdgeColor  = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	movingEdgeColor = color.RGBA{0xff, 0xff, 0xff, 0x80}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

type hudFont struct {
	body  font.Face
	title font.Face
}

func newHUDFont(size float64) (*hudFont, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot parse font: %w", err)
	}
	body, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gui: cannot create font face: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    titleFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gui: cannot create font face: %w", err)
	}
	return &hudFont{body: body, title: title}, nil
}

func drawView(screen *ebiten.Image, v *brickbreaker.View, f *hudFont, frame int) {
	screen.Fill(backgroundColor)

	dx, dy := shakeOffset(v.Shake, frame)
	ox, oy := float32(dx), float32(hudHeight+dy)

	for _, b := range v.Bricks {
		x, y := ox+float32(b.Rect.X), oy+float32(b.Rect.Y)
		w, h := float32(b.Rect.W)-brickGap, float32(b.Rect.H)-brickGap
		vector.DrawFilledRect(screen, x, y, w, h, b.Color, true)
		switch {
		case b.Indestructible:
			vector.StrokeRect(screen, x, y, w, h, 2, steelEdgeColor, true)
		case b.Moving:
			vector.StrokeRect(screen, x, y, w, h, 1, movingEdgeColor, true)
		}
	}

	for _, p := range v.Particles {
		c := fade(p.Color, p.Life)
		s := float32(p.Size)
		vector.DrawFilledRect(screen, ox+float32(p.X)-s/2, oy+float32(p.Y)-s/2, s, s, c, true)
	}

	for _, p := range v.Powerups {
		x, y := ox+float32(p.Rect.X), oy+float32(p.Rect.Y)
		vector.DrawFilledRect(screen, x, y, float32(p.Rect.W), float32(p.Rect.H), p.Color, true)
		b := text.BoundString(f.body, p.Icon)
		tx := int(x) + (int(p.Rect.W)-b.Dx())/2
		ty := int(y) + (int(p.Rect.H)+b.Dy())/2
		text.Draw(screen, p.Icon, f.body, tx, ty, backgroundColor)
	}

	pd := v.Paddle
	vector.DrawFilledRect(screen, ox+float32(pd.X), oy+float32(pd.Y), float32(pd.W), float32(pd.H), paddleColor, true)

	for _, b := range v.Balls {
		c := ballColor
		if b.Slowed {
			c = slowBallColor
		}
		vector.DrawFilledCircle(screen, ox+float32(b.X), oy+float32(b.Y), float32(b.R), c, true)
	}

	drawHUD(screen, v, f)
	drawOverlay(screen, v, f)
}

func drawHUD(screen *ebiten.Image, v *brickbreaker.View, f *hudFont) {
	width := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(width), hudHeight, hudColor, false)

	baseline := hudHeight/2 + hudFontSize/3
	text.Draw(screen, fmt.Sprintf("Score: %d", v.Score), f.body, 12, baseline, textColor)

	for i := range v.Lives {
		vector.DrawFilledCircle(screen, float32(width/2-(v.Lives-1)*10+i*20), hudHeight/2, 6, livesColor, true)
	}

	level := levelLabel(v)
	b := text.BoundString(f.body, level)
	text.Draw(screen, level, f.body, width-b.Dx()-12, baseline, textColor)

	if tags := comboLabel(v); tags != "" {
		text.Draw(screen, tags, f.body, 180, baseline, comboColor)
	}
}

func drawOverlay(screen *ebiten.Image, v *brickbreaker.View, f *hudFont) {
	title, hint := overlayText(v)
	if title == "" && hint == "" {
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if title == "" {
		b := text.BoundString(f.body, hint)
		text.Draw(screen, hint, f.body, (w-b.Dx())/2, h-24, dimTextColor)
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
	tb := text.BoundString(f.title, title)
	text.Draw(screen, title, f.title, (w-tb.Dx())/2, h/2-10, textColor)
	hb := text.BoundString(f.body, hint)
	text.Draw(screen, hint, f.body, (w-hb.Dx())/2, h/2+30, dimTextColor)
}

// overlayText returns the centered message for the current phase. An empty
// title with a hint is drawn as a footer only.
func overlayText(v *brickbreaker.View) (title, hint string) {
	switch {
	case v.GameOver && v.Won:
		return "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart, Esc to quit", v.Score)
	case v.GameOver:
		return "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart, Esc to quit", v.Score)
	case v.Paused:
		return "PAUSED", "Press P to resume, Esc to quit"
	case v.AwaitingLaunch:
		return "", "Press SPACE or click to launch"
	}
	return "", ""
}

func levelLabel(v *brickbreaker.View) string {
	if v.Endless && v.Cycle > 0 {
		return fmt.Sprintf("Level %d/%d  +%d", v.Level+1, v.TotalLevels, v.Cycle)
	}
	return fmt.Sprintf("Level %d/%d", v.Level+1, v.TotalLevels)
}

func comboLabel(v *brickbreaker.View) string {
	var s string
	if v.Combo > 1 {
		s = fmt.Sprintf("COMBO x%d", v.Combo)
	}
	if v.Multiplier > 1 {
		if s != "" {
			s += "  "
		}
		s += fmt.Sprintf("%gx SCORE", v.Multiplier)
	}
	return s
}

// shakeOffset jitters the playfield while shake decays.
func shakeOffset(shake float64, frame int) (float64, float64) {
	if shake <= 0 {
		return 0, 0
	}
	f := float64(frame)
	return shake * shakePixels * math.Sin(f*1.9), shake * shakePixels * math.Cos(f*2.7)
}

// fade blends c toward the background as life runs out.
func fade(c color.RGBA, life float64) color.RGBA {
	fg, ok := colorful.MakeColor(c)
	if !ok || life <= 0 {
		return backgroundColor
	}
	if life >= 1 {
		return c
	}
	bg, _ := colorful.MakeColor(backgroundColor)
	r, g, b := bg.BlendLab(fg, life).Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}
