package main

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuze-creek/internal/config"
	"github.com/vovakirdan/fuze-creek/internal/creek"
	"github.com/vovakirdan/fuze-creek/internal/platform/tui"
	"github.com/vovakirdan/fuze-creek/internal/storage"
)

var (
	flagRounds      int
	flagSteer       string
	flagMaxAdvances int
	flagSave        bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless rounds",
	Long: `Play rounds without a terminal and report how they ended.

Round i uses seed+i, so a fixed --seed reproduces every round.

Steering:
  auto - avoid hazards directly ahead and drift toward the creek centre
  none - never steer

Examples:
  creek simulate --rounds 100
  creek simulate --seed 42 --steer none
  creek simulate --rounds 20 --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Number of rounds to run")
	simulateCmd.Flags().StringVar(&flagSteer, "steer", "auto", "Steering: auto or none")
	simulateCmd.Flags().IntVar(&flagMaxAdvances, "max-advances", 100000, "Stop a round after this many advances")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished rounds in the run history")
}

// steerFunc picks the shift for the next advance.
type steerFunc func(g *creek.Game) int

func parseSteer(name string) (steerFunc, error) {
	switch strings.ToLower(name) {
	case "auto":
		return (*creek.Game).AutoSteer, nil
	case "none":
		return func(*creek.Game) int { return 0 }, nil
	default:
		return nil, fmt.Errorf("unknown steering %q (want auto or none)", name)
	}
}

// simulateRound plays one round to the end, or until maxAdvances.
func simulateRound(cfg config.CreekConfig, seed int64, steer steerFunc, maxAdvances int) (creek.Snapshot, error) {
	g, err := creek.NewGame(cfg, creek.NopView, rand.New(rand.NewSource(seed)))
	if err != nil {
		return creek.Snapshot{}, err
	}
	for !g.IsOver() && g.CountAdvances() < maxAdvances {
		g.Advance(steer(g))
	}
	return g.Snapshot(), nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if flagRounds < 1 {
		return fmt.Errorf("--rounds must be at least 1, got %d", flagRounds)
	}
	steer, err := parseSteer(flagSteer)
	if err != nil {
		return err
	}
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSave {
		if store, err = storage.Open(flagDBPath); err != nil {
			return err
		}
		defer store.Close()
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	logger.Info("simulating", "rounds", flagRounds, "seed", base, "steer", flagSteer,
		"config", source, "difficulty", difficultyName())

	causes := make(map[string]int)
	total, best := 0, 0
	for i := 0; i < flagRounds; i++ {
		seed := base + int64(i)
		s, err := simulateRound(cfg, seed, steer, flagMaxAdvances)
		if err != nil {
			return err
		}
		causes[s.Cause.String()]++
		total += s.Score
		best = max(best, s.Score)

		logger.Info("round", "n", i+1, "seed", seed, "cause", s.Cause,
			"score", s.Score, "patches", s.Patches, "advances", s.Advances)

		if store != nil && s.Cause != creek.CauseNone {
			res := tui.RoundResult{Seed: seed, Snapshot: s}
			if _, err := store.SaveRun(tui.RunRecord(res, difficultyName())); err != nil {
				logger.Warn("run not saved", "error", err)
			}
		}
	}

	logger.Info("summary", "rounds", flagRounds, "best", best,
		"mean", fmt.Sprintf("%.1f", float64(total)/float64(flagRounds)),
		"causes", formatCauses(causes))
	return nil
}

// formatCauses renders cause counts in a stable order.
func formatCauses(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for c := range counts {
		names = append(names, c)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, c := range names {
		parts[i] = fmt.Sprintf("%s=%d", c, counts[c])
	}
	return strings.Join(parts, " ")
}
