// platformer is a side-scrolling platformer for the terminal, the desktop
// and SSH.
//
// Usage:
//
//	platformer list              - List game modes
//	platformer levels [stage]    - Preview stage templates
//	platformer play              - Play in the terminal
//	platformer window            - Play in a desktop window
//	platformer menu              - Start menu to pick a mode interactively
//	platformer serve             - Start SSH server for remote play
//	platformer scores [mode]     - Show recorded runs
//	platformer replay <file>     - Re-simulate a recorded run
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set run history path (default: ~/.platformer/runs.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/save"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagDifficulty  string
	flagSavePath    string
	flagSaveBackend string
	flagLogFile     string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - jump, dash and shoot through tile stages",
	Long: `Platformer is a side-scrolling platformer. Clear every enemy and
collectible on a stage to advance; touch the checkpoint flag to move
your respawn point.

Available commands:
  list     - Show game modes
  levels   - Preview stage templates
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  replay   - Re-simulate a recording

Examples:
  platformer play
  platformer play --endless --difficulty hard
  platformer window --stage 3
  platformer serve --ssh :2222
  platformer replay run.replay`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		platformer.SetConfigPath(flagConfig)
		platformer.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagSavePath, "save", save.DefaultPath, "Path to the high score save file")
	pf.StringVar(&flagSaveBackend, "save-backend", "file", "High score backend: file or gdata")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger writes to --log-file when set, otherwise to fallback.
// Terminal front-ends pass io.Discard so logs do not tear the screen.
func newLogger(fallback io.Writer) *log.Logger {
	w := fallback
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err == nil {
			if f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				w = f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	platformer.SetLogger(logger)
	return logger
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the run history. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// newKeeper loads the saved high score. It returns nil when no backend
// can be opened.
func newKeeper(logger *log.Logger) *save.Keeper {
	backend, err := save.NewBackend(flagSaveBackend, flagSavePath)
	if err != nil {
		logger.Warn("high score will not be saved", "err", err)
		return nil
	}
	return save.NewKeeper(backend, logger)
}

// loadConfig returns the game config the flags select.
func loadConfig(logger *log.Logger) config.PlatformerConfig {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPlatformerPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
