package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fuze-creek/internal/platform/tui"
	"github.com/vovakirdan/fuze-creek/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the run history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening run history: %w", err)
		}
		defer store.Close()

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	},
}
