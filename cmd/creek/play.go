package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fuze-creek/internal/core"
	"github.com/vovakirdan/fuze-creek/internal/platform/tui"
	"github.com/vovakirdan/fuze-creek/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Fuze Creek",
	Long: `Start a round in the terminal.

Controls:
  Left/A     - Steer left on the next advance
  Right/D    - Steer right on the next advance
  R          - Restart (after game over)
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 30 patches, half the hazards
  normal - 20 patches, configured hazards
  hard   - 10 patches, double the hazards

Examples:
  creek play
  creek play --difficulty easy
  creek play --seed 42
  creek play --config ./my-creek.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 30 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if height-1 < cfg.VisibleRows() {
		logger.Warn("terminal too short to show the whole creek",
			"rows", height, "needed", cfg.VisibleRows()+1)
	}

	rt := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height - 1, // help bar
		FPS:        flagFPS,
		Seed:       flagSeed,
		Difficulty: difficultyName(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open run history", "error", err)
		store = nil
	}

	results, runErr := tui.Run(cfg, store, rt)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	logger.Info("session ended", "config", source, "profile", cfg.View.Profile,
		"difficulty", rt.Difficulty, "rounds", len(results))
	for _, res := range results {
		s := res.Snapshot
		logger.Info("round ended", "seed", res.Seed, "cause", s.Cause,
			"score", s.Score, "patches", s.Patches, "advances", s.Advances, "elapsed", s.Elapsed)
		if res.SaveErr != nil {
			logger.Warn("run not saved", "error", res.SaveErr)
		}
	}
	if n := len(results); n > 0 {
		fmt.Println(tui.FinalScoreLine(results[n-1].Snapshot.Score))
	}
	return nil
}
