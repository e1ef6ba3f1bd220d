// creek is a terminal rafting game: steer a raft down a winding creek,
// dodging rocks, mines and the banks.
//
// Usage:
//
//	creek play               - Shoot the creek
//	creek simulate           - Run headless rounds
//	creek scores             - Print the best runs
//	creek board              - Browse run history
//	creek config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - RNG seed for a reproducible creek
//	--db <path>           - Run history database (default: ~/.fuzecreek/runs.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--profile <name>      - console, 2d or 3d lookahead
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuze-creek/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagProfile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "creek",
	Short: "Fuze Creek - raft down a creek in your terminal",
	Long: `Fuze Creek is a terminal rafting game. The raft drifts downstream one
row at a time; steer it left or right to stay between the banks, patch it
when it hits rocks, and never touch a mine.

Available commands:
  play      - Play in the terminal
  simulate  - Run headless rounds (useful for seeds and tuning)
  scores    - Print the best runs and how rounds ended
  board     - Browse the run history
  config    - Print the effective configuration

Examples:
  creek play
  creek play --difficulty hard --seed 42
  creek simulate --rounds 100 --steer auto
  creek scores
  creek config --profile 3d`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fuzecreek/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom creek config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Lookahead profile: console, 2d, 3d")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI logger.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "creek",
	})
}

// loadConfig loads the creek config and applies the difficulty and profile
// flags. It returns the config and where it was loaded from.
func loadConfig() (config.CreekConfig, string, error) {
	cfg, source, err := config.LoadCreekWithSource(flagConfig)
	if err != nil {
		return config.CreekConfig{}, "", err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.CreekConfig{}, "", err
	}
	config.ApplyDifficulty(&cfg, preset)

	profile, err := config.ParseProfile(flagProfile)
	if err != nil {
		return config.CreekConfig{}, "", err
	}
	config.ApplyProfile(&cfg, profile)

	if err := cfg.Validate(); err != nil {
		return config.CreekConfig{}, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, source, nil
}

// difficultyName is the preset recorded with each run.
func difficultyName() string {
	if preset, err := config.ParseDifficulty(flagDifficulty); err == nil && preset != "" {
		return string(preset)
	}
	return "custom"
}
