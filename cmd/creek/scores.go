package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuze-creek/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs and how rounds have ended.

Examples:
  creek scores
  creek scores --limit 25
  creek scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Fuze Creek - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'creek play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-9s  %-8s  %s\n", "Rank", "Score", "Patches", "Cause", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-9s  %-8s  %s\n", "----", "-----", "-------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-7d  %-9s  %-8s  %s\n",
			i+1, r.Score, r.Patches, r.Cause, formatMillis(r.ElapsedMS), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	counts, err := store.CauseCounts()
	if err != nil {
		return err
	}
	causes := make([]string, 0, len(counts))
	for c := range counts {
		causes = append(causes, c)
	}
	sort.Strings(causes)

	fmt.Println()
	fmt.Println("Rounds ended by:")
	for _, c := range causes {
		fmt.Printf("  %-9s %d\n", c, counts[c])
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}

func formatMillis(ms int64) string {
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}
