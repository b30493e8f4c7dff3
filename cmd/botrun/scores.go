package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/botrun/internal/platform/tui"
)

var (
	flagClear   bool
	flagHistory bool
	flagBrowse  bool
	flagLimit   int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 3 runs. With the sqlite store every finished run is
also kept in a history.

Examples:
  botrun scores
  botrun scores --history --limit 20
  botrun scores --browse
  botrun scores --clear
  botrun scores --store file`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Clear the top 3 and the run history")
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Also list recent runs and stats")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive run history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent runs to list")
}

func runScores(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "botrun")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scores, err := openScores(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores store: %v\n", err)
		os.Exit(1)
	}
	defer scores.Close()

	if flagClear {
		clearScores(scores)
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(scores.store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("High Scores - BotRun")
	fmt.Println()
	for i, slot := range scores.board.Slots() {
		fmt.Printf("  %d. %s\n", i+1, slot)
	}

	if !flagHistory {
		return
	}

	fmt.Println()
	if scores.store == nil {
		fmt.Println("Run history is only kept with --store sqlite.")
		return
	}
	printHistory(scores)
}

func clearScores(scores scoreStores) {
	if err := scores.board.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing high scores: %v\n", err)
		os.Exit(1)
	}
	if scores.store != nil {
		if err := scores.store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("High scores cleared.")
}

func printHistory(scores scoreStores) {
	runs, err := scores.store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'botrun play' to set the first high score!")
		return
	}

	fmt.Println("Recent runs")
	fmt.Printf("  %-10s  %-8s  %-8s  %s\n", "Name", "Score", "Time", "Date")
	fmt.Printf("  %-10s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-8d  %-8s  %s\n", r.Name, r.Score, r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := scores.store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Played: %s\n",
		stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalPlayTime.Round(time.Second))
}
