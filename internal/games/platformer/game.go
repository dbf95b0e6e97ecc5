// Package platformer implements a side-scrolling platformer: tile levels,
// a jumping and shooting player, patrolling, chasing and shooting enemies,
// and checkpoint-gated stages.
package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game IDs
const (
	GameID        = "platformer"
	EndlessGameID = "platformer_endless"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives lifecycle and invariant messages
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes simulation logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the controller to the game registry.
type Game struct {
	mode       Mode
	startStage int

	ctrl      *Controller
	cfg       config.PlatformerConfig
	runtime   core.RuntimeConfig
	restarts  int64
	highScore int
	renderer  TermRenderer
}

// New creates a new platformer game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign, startStage: 1}
}

// NewEndless creates a new platformer game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, startStage: 1}
}

// StartAt makes the next Reset start on stage instead of stage 1.
func (g *Game) StartAt(stage int) {
	g.startStage = max(1, stage)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Platformer (Endless)"
	}
	return "Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}

	config.ApplyPlatformerPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.renderer = TermRenderer{CellW: cfg.Render.CellWidth, CellH: cfg.Render.CellHeight}
	g.restarts = 0
	g.newSession()
}

// newSession starts a fresh controller. Each restart reseeds
// deterministically so a recorded run can be replayed across restarts.
func (g *Game) newSession() {
	g.ctrl = NewController(g.cfg, Options{
		Mode:       g.mode,
		StartStage: g.startStage,
		Seed:       g.runtime.Seed + g.restarts,
		Logger:     logger,
	})
}

// Step advances the game by one tick. On restart the returned state is the
// final state of the run that just ended.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl.Step(in) == core.SignalRestart {
		prev := g.State()
		g.restarts++
		g.newSession()
		return core.StepResult{State: prev, Signal: core.SignalRestart}
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Draw(dst, g.ctrl.View(), g.highScore)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.ctrl.Status()
	p := g.ctrl.Player()
	return core.GameState{
		Score:    p.Score(),
		Lives:    p.Lives(),
		Level:    g.ctrl.Stage(),
		GameOver: status == StatusGameOver,
		Won:      status == StatusWin,
		Paused:   status == StatusPaused,
		Status:   status.String(),
	}
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best score shown in the HUD.
func (g *Game) HighScore() int {
	return g.highScore
}

// Config returns the configuration the current session runs with.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// View returns the renderer view of the current frame.
func (g *Game) View() View {
	return g.ctrl.View()
}

// Snapshot returns the gameplay state of the current session.
func (g *Game) Snapshot() Snapshot {
	return g.ctrl.Snapshot()
}

// StateHash fingerprints the gameplay state for replay verification.
func (g *Game) StateHash() uint64 {
	snap := g.ctrl.Snapshot()
	return snap.Hash()
}

// Controller exposes the running session.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Register the games with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessGameID, func() registry.Game {
		return NewEndless()
	})
}
