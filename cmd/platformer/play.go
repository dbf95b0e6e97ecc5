package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/replay"
)

var (
	flagEndless bool
	flagStage   int
	flagRecord  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  A/D, Left/Right   - Move
  Space/W/Up        - Jump (again in the air for a double jump)
  X, Shift+Arrow    - Dash
  F, mouse button   - Shoot toward the mouse cursor
  P/Esc             - Pause
  R                 - Restart
  B/Esc             - Back (while paused or after the run)
  Q/Ctrl+C          - Save and quit

Terminals do not report key releases, so a held key stays down for
render.hold_ticks ticks after its last repeat.

Difficulty options:
  easy   - More lives, fewer and slower enemies
  normal - The configured tiers
  hard   - Fewer lives, more and faster enemies
  fixed  - Every stage uses the first tier

Examples:
  platformer play
  platformer play --endless
  platformer play --stage 4 --difficulty hard
  platformer play --seed 42 --record run.replay
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addRunFlags(playCmd)
}

// addRunFlags registers the flags shared by every command that starts a run.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode instead of the campaign")
	cmd.Flags().IntVar(&flagStage, "stage", 1, "Stage to start on")
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record inputs to this replay file")
}

// newGame creates the game the run flags select.
func newGame() *platformer.Game {
	game := platformer.New()
	if flagEndless {
		game = platformer.NewEndless()
	}
	game.StartAt(flagStage)
	return game
}

// newRecorder returns a recorder when --record is set.
func newRecorder(game *platformer.Game, cfg core.RuntimeConfig) *replay.Recorder {
	if flagRecord == "" {
		return nil
	}
	return replay.NewRecorder(game.ID(), cfg.Seed, flagStage, flagDifficulty)
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger(io.Discard)
	cfg := runtimeConfig()
	game := newGame()

	store := openStore(logger)
	opts := tui.Options{
		Store:      store,
		Keeper:     newKeeper(logger),
		Recorder:   newRecorder(game, cfg),
		RecordPath: flagRecord,
		Logger:     logger,
	}

	_, runErr := tui.Run(game, cfg, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
