package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Describe the campaign levels",
	Long: `Shows the brick layout of every campaign level for the current
config: rows, hit points, gap patterns, moving rows and steel bricks.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := brickbreaker.LoadConfig()
	if err != nil {
		return err
	}
	layout := brickbreaker.NewLevelLayout(cfg)

	fmt.Printf("  %-5s  %-4s  %-7s  %-5s  %-6s  %s\n", "Level", "Rows", "Columns", "HP", "Moving", "Features")
	fmt.Printf("  %-5s  %-4s  %-7s  %-5s  %-6s  %s\n", "-----", "----", "-------", "--", "------", "--------")
	for i := range brickbreaker.TotalLevels {
		info := brickbreaker.DescribeLevel(i, layout)

		var features []string
		if info.DiagonalGaps {
			features = append(features, "diagonal gaps")
		}
		if info.StripeGaps {
			features = append(features, "stripes")
		}
		if info.RandomGaps {
			features = append(features, "random gaps")
		}
		if info.Indestructible {
			features = append(features, "steel")
		}

		moving := "no"
		if info.MovingBricks {
			moving = "yes"
		}

		fmt.Printf("  %-5d  %-4d  %-7d  %-5s  %-6s  %s\n",
			info.Index+1, info.Rows, info.Columns,
			fmt.Sprintf("%d-%d", info.MinHP, info.MaxHP), moving,
			strings.Join(features, ", "))
	}
	return nil
}
