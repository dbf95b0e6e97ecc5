package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/session"
	"github.com/vovakirdan/tui-platformer/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window.

Controls:
  A/D, Left/Right   - Move
  Space/W/Up        - Jump
  Shift/X           - Dash
  Left mouse, F     - Shoot toward the cursor
  P                 - Pause
  R                 - Restart
  Esc/Q             - Save and quit

Examples:
  platformer window
  platformer window --endless --difficulty easy
  platformer window --seed 7 --record run.replay`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addRunFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	cfg := runtimeConfig()
	game := newGame()
	game.Reset(cfg)

	store := openStore(logger)
	sess := session.New(game, store, newKeeper(logger), newRecorder(game, cfg), logger)

	runErr := window.Run(window.Options{
		Game:     game,
		Session:  sess,
		Logger:   logger,
		TickRate: cfg.TickRate,
	})
	closeErr := sess.Close(flagRecord)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running window: %v", runErr)
	}
	if closeErr != nil {
		fail("saving recording: %v", closeErr)
	}
}
