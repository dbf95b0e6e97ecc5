package platformer

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusTransitioning
	StatusGameOver
	StatusWin
)

// String returns the state name reported in core.GameState.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusTransitioning:
		return "transition"
	case StatusGameOver:
		return "gameover"
	case StatusWin:
		return "win"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Frozen reports whether the simulation is halted in this state.
func (s Status) Frozen() bool {
	return s != StatusPlaying
}

// Mode selects how a session ends.
type Mode int

const (
	ModeCampaign Mode = iota // Win after the last stage
	ModeEndless              // Stages continue until game over
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// Options configure a new controller.
type Options struct {
	Mode       Mode
	StartStage int
	Seed       int64
	Logger     *log.Logger
}

// Controller runs one play session: it owns the level, the player and the
// state machine, and advances them one frame per Step.
type Controller struct {
	cfg       config.PlatformerConfig
	mode      Mode
	templates [][]string
	table     *config.DifficultyTable
	rng       *rand.Rand
	fx        *Emitter
	log       *log.Logger

	level   *LevelContext
	player  *Player
	respawn core.Point

	status      Status
	transition  core.Countdown
	clearFrames int
	frame       uint64
}

// NewController builds the starting stage and places the player on it.
func NewController(cfg config.PlatformerConfig, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	templates := cfg.Levels.Templates
	if len(templates) == 0 {
		templates = BuiltinTemplates()
	}

	c := &Controller{
		cfg:       cfg,
		mode:      opts.Mode,
		templates: templates,
		table:     config.NewDifficultyTable(cfg.Difficulty),
		rng:       rand.New(rand.NewSource(opts.Seed)),
		fx:        NewEmitter(opts.Seed+1, cfg.Particles.Lifespan),
		log:       logger,
		status:    StatusPlaying,
	}

	stage := max(1, opts.StartStage)
	if c.mode == ModeCampaign {
		stage = min(stage, cfg.Lifecycle.MaxStage)
	}

	c.level = c.buildLevel(stage)
	c.player = NewPlayer(c.level.Spawn, cfg.Player, cfg.Physics.Gravity)
	c.respawn = c.level.Spawn
	c.level.Camera.Follow(c.player.Rect())

	c.log.Debug("session started", "stage", stage, "mode", c.mode, "seed", opts.Seed)
	return c
}

// buildLevel produces the context of a stage from its template and tier.
func (c *Controller) buildLevel(stage int) *LevelContext {
	tier := c.table.Tier(stage)
	bp := ParseTemplate(TemplateFor(c.templates, stage), c.cfg, c.rng)
	FillEnemies(&bp, tier, c.rng)
	return newLevelContext(stage, tier, bp, c.cfg, c.rng)
}

// Step advances the session by one frame. It returns core.SignalRestart
// when the player asks for a fresh session; the caller rebuilds it.
func (c *Controller) Step(in core.InputFrame) core.Signal {
	if in.Has(core.ActionRestart) {
		return core.SignalRestart
	}

	if in.Has(core.ActionPause) {
		switch c.status {
		case StatusPlaying:
			c.status = StatusPaused
		case StatusPaused:
			c.status = StatusPlaying
		}
	}

	switch c.status {
	case StatusTransitioning:
		c.transition.Tick()
		if c.transition.Expired() {
			c.advance()
		}
		return core.SignalNone
	case StatusPlaying:
	default:
		return core.SignalNone
	}

	c.frame++
	for _, p := range framePasses {
		p.run(c, in)
	}
	return core.SignalNone
}

// startTransition begins the stage-complete countdown.
func (c *Controller) startTransition() {
	c.status = StatusTransitioning
	c.transition.Arm(c.cfg.Lifecycle.TransitionFrames)
	c.clearFrames = 0
}

// advance moves to the next stage, or ends a campaign past its last stage.
func (c *Controller) advance() {
	next := c.level.Stage + 1
	if c.mode == ModeCampaign && next > c.cfg.Lifecycle.MaxStage {
		c.status = StatusWin
		c.log.Info("campaign won", "score", c.player.Score())
		return
	}

	c.level = c.buildLevel(next)
	c.respawn = c.level.Spawn
	c.player.Respawn(c.respawn)
	c.player.EnsureLives(1)
	c.player.AddScore(c.cfg.Scoring.StageBonus * next)
	c.level.Camera.Follow(c.player.Rect())
	c.status = StatusPlaying

	c.log.Debug("stage advanced", "stage", next, "enemies", len(c.level.Enemies), "score", c.player.Score())
}

// hurt takes a life and ends the session when none are left.
func (c *Controller) hurt() {
	c.player.LoseLife()
	if c.player.Lives() == 0 {
		c.status = StatusGameOver
	}
}

// guard reports a broken invariant. In strict mode it panics; otherwise
// it logs and lets the caller skip the offending action.
func (c *Controller) guard(ok bool, what string, keyvals ...any) bool {
	if ok {
		return true
	}
	if c.cfg.Debug.StrictInvariants {
		panic(fmt.Sprintf("platformer: invariant violated: %s", what))
	}
	c.log.Warn("invariant violated, skipping", append([]any{"what", what, "frame", c.frame}, keyvals...)...)
	return false
}

// Status returns the lifecycle state.
func (c *Controller) Status() Status { return c.status }

// Mode returns the session mode.
func (c *Controller) Mode() Mode { return c.mode }

// Stage returns the current 1-based stage number.
func (c *Controller) Stage() int { return c.level.Stage }

// Player returns the player.
func (c *Controller) Player() *Player { return c.player }

// Level returns the current level context.
func (c *Controller) Level() *LevelContext { return c.level }

// RespawnPoint returns where the player reappears after a fall.
func (c *Controller) RespawnPoint() core.Point { return c.respawn }

// Frame returns the number of simulated frames.
func (c *Controller) Frame() uint64 { return c.frame }

// ClearFrames returns how long the level has been continuously cleared.
func (c *Controller) ClearFrames() int { return c.clearFrames }

// TransitionRemaining returns the frames left in the stage-complete countdown.
func (c *Controller) TransitionRemaining() int { return c.transition.Remaining() }
