package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagScoresLimit int
	flagShowRuns    bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display statistics and the top scores for a game mode.
The mode defaults to the campaign; run 'brickbreaker list' for the others.

Examples:
  brickbreaker scores
  brickbreaker scores brickbreaker_endless
  brickbreaker scores --runs --limit 20
  brickbreaker scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Show recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "brickbreaker"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game mode %q, run 'brickbreaker list' to see them", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", title)
	if stats.GamesCount == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickbreaker play' to set the first high score!")
		return nil
	}

	fmt.Printf("  Best: %d   Average: %.0f   Games: %d   Wins: %d   Best level: %d\n",
		stats.HighScore, stats.AvgScore, stats.GamesCount, stats.Wins, stats.BestLevel+1)
	fmt.Printf("  Time played: %s\n\n", stats.TotalPlayed.Round(time.Second))

	if flagShowRuns {
		return printRuns(store, gameID)
	}
	return printTopScores(store, gameID)
}

func printTopScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("  %-10s  %-7s  %-6s  %-8s  %s\n", "Score", "Level", "Result", "Time", "Date")
	fmt.Printf("  %-10s  %-7s  %-6s  %-8s  %s\n", "-----", "-----", "------", "----", "----")
	for _, r := range runs {
		level := fmt.Sprintf("%d", r.Level+1)
		if r.Cycle > 0 {
			level = fmt.Sprintf("%d+%d", r.Level+1, r.Cycle)
		}
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-10d  %-7s  %-6s  %-8s  %s\n",
			r.Score, level, result, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
