package brickbreaker

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// TotalLevels is the number of levels in a campaign.
const TotalLevels = config.LevelCount

// Level-gated generation rules, keyed on the one-based level number.
const (
	diagonalGapsFrom   = 5
	movingBricksFrom   = 6
	stripeGapsFrom     = 8
	indestructibleFrom = 10
	randomGapsFrom     = 12

	randomGapChance      = 0.1
	indestructibleChance = 0.04
	movingChance         = 0.07
)

// LevelLayout is the grid geometry shared by every level.
type LevelLayout struct {
	FieldWidth  float64
	Columns     int
	MinRows     int
	MaxRows     int
	Padding     float64
	MarginX     float64
	MarginY     float64
	BrickHeight float64
}

// NewLevelLayout derives the grid geometry from the game configuration.
func NewLevelLayout(cfg config.BrickBreakerConfig) LevelLayout {
	return LevelLayout{
		FieldWidth:  cfg.Playfield.Width,
		Columns:     cfg.Levels.Columns,
		MinRows:     cfg.Levels.MinRows,
		MaxRows:     cfg.Levels.MaxRows,
		Padding:     cfg.Levels.Padding,
		MarginX:     cfg.Levels.MarginX,
		MarginY:     cfg.Levels.MarginY,
		BrickHeight: cfg.Levels.BrickHeight,
	}
}

// BrickWidth returns the width every brick in the grid shares.
func (l LevelLayout) BrickWidth() float64 {
	return (l.FieldWidth - 2*l.MarginX - float64(l.Columns-1)*l.Padding) / float64(l.Columns)
}

// Rows returns the row count for a zero-based level index.
func (l LevelLayout) Rows(index int) int {
	lvl := float64(index + 1)
	return core.Clamp(4+int(math.Floor(lvl/1.5)), l.MinRows, l.MaxRows)
}

// GenerateLevel builds the bricks of a level in row-major order.
// Indexes outside [0, TotalLevels) are clamped.
func GenerateLevel(index int, layout LevelLayout, rng Rand) []Brick {
	index = core.Clamp(index, 0, TotalLevels-1)
	lvl := index + 1
	rows := layout.Rows(index)
	brickW := layout.BrickWidth()

	bricks := make([]Brick, 0, rows*layout.Columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < layout.Columns; col++ {
			if skipCell(lvl, row, col, rng) {
				continue
			}

			x := layout.MarginX + float64(col)*(brickW+layout.Padding)
			y := layout.MarginY + float64(row)*(layout.BrickHeight+layout.Padding)
			b := Brick{
				X:         x,
				Y:         y,
				W:         brickW,
				H:         layout.BrickHeight,
				HP:        1 + lvl/4 + row/5,
				BaseX:     x,
				Direction: 1,
			}

			if lvl >= indestructibleFrom && rng.Float64() < indestructibleChance {
				b.Indestructible = true
				b.HP = InfiniteHP
			}
			b.MaxHP = b.HP

			if lvl >= movingBricksFrom && rng.Float64() < movingChance {
				b.Moving = true
				b.Range = uniform(rng, 50, 120)
				b.MoveSpeed = uniform(rng, 40, 80)
			}
			if rng.Float64() >= 0.5 {
				b.Direction = -1
			}

			if !b.Indestructible {
				b.Points = int(math.Round(50 * float64(b.HP) * (1 + float64(lvl)/8)))
			}
			bricks = append(bricks, b)
		}
	}
	return bricks
}

func skipCell(lvl, row, col int, rng Rand) bool {
	if lvl >= diagonalGapsFrom && (row+col)%8 == 0 {
		return true
	}
	if lvl >= stripeGapsFrom && col%2 == 0 && row%3 == 0 {
		return true
	}
	return lvl >= randomGapsFrom && rng.Float64() < randomGapChance
}

// LevelInfo describes the deterministic shape of a level.
type LevelInfo struct {
	Index          int
	Rows           int
	Columns        int
	MinHP          int
	MaxHP          int
	DiagonalGaps   bool
	StripeGaps     bool
	RandomGaps     bool
	MovingBricks   bool
	Indestructible bool
}

// DescribeLevel returns the shape of a level without generating it.
func DescribeLevel(index int, layout LevelLayout) LevelInfo {
	index = core.Clamp(index, 0, TotalLevels-1)
	lvl := index + 1
	rows := layout.Rows(index)
	return LevelInfo{
		Index:          index,
		Rows:           rows,
		Columns:        layout.Columns,
		MinHP:          1 + lvl/4,
		MaxHP:          1 + lvl/4 + (rows-1)/5,
		DiagonalGaps:   lvl >= diagonalGapsFrom,
		StripeGaps:     lvl >= stripeGapsFrom,
		RandomGaps:     lvl >= randomGapsFrom,
		MovingBricks:   lvl >= movingBricksFrom,
		Indestructible: lvl >= indestructibleFrom,
	}
}
