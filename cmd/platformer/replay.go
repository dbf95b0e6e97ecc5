package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/replay"
)

var flagExpectHash uint64

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Plays a recording back without a screen and prints where the run ended.

A recording stores the seed, start stage, difficulty and every input
frame. The game config is not stored: replay with the same --config the
run was recorded with.

Examples:
  platformer play --seed 42 --record run.replay
  platformer replay run.replay
  platformer replay run.replay --expect-hash 1234567890`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Uint64Var(&flagExpectHash, "expect-hash", 0, "Fail unless the final state hash matches")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	d, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	var game *platformer.Game
	switch d.GameID {
	case platformer.GameID:
		game = platformer.New()
	case platformer.EndlessGameID:
		game = platformer.NewEndless()
	default:
		return fmt.Errorf("replay: recording is for unknown mode %q", d.GameID)
	}
	game.StartAt(d.StartStage)
	platformer.SetDifficultyPreset(d.Preset)

	logger.Debug("replaying", "file", args[0], "mode", d.GameID, "seed", d.Seed, "frames", len(d.Frames))
	res := replay.Run(game, d)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode:     %s\n", game.Title())
	fmt.Fprintf(out, "Recorded: %s\n", d.StartTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Frames:   %d (%s)\n", res.Frames, d.Duration(flagFPS))
	fmt.Fprintf(out, "Restarts: %d\n", res.Restarts)
	fmt.Fprintf(out, "Score:    %d\n", res.Final.Score)
	fmt.Fprintf(out, "Stage:    %d\n", res.Final.Level)
	fmt.Fprintf(out, "Lives:    %d\n", res.Final.Lives)
	fmt.Fprintf(out, "Status:   %s\n", res.Final.Status)
	fmt.Fprintf(out, "Hash:     %d\n", res.Hash)

	if flagExpectHash != 0 && res.Hash != flagExpectHash {
		return fmt.Errorf("replay: state hash %d does not match expected %d", res.Hash, flagExpectHash)
	}
	return nil
}
