package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/session"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/replay"
	"github.com/vovakirdan/tui-platformer/internal/save"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Options carry the optional services a game model reports to.
type Options struct {
	Store      *storage.Store
	Keeper     *save.Keeper
	Recorder   *replay.Recorder
	RecordPath string
	Logger     *log.Logger
}

// configured is implemented by games whose terminal rendering is tunable.
type configured interface {
	Config() config.PlatformerConfig
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	session    *session.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	latch      *HoldLatch
	inputFrame core.InputFrame
	cellW      int // World pixels per column, for mouse aim
	cellH      int
	quitting   bool
	backToMenu bool
	embedded   bool // Hosted inside another program; back does not quit
}

// NewModel resets the game and wraps it in a model.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	render := config.DefaultPlatformerConfig().Render
	if c, ok := game.(configured); ok {
		render = c.Config().Render
	}

	return Model{
		game:       game,
		session:    session.New(game, opts.Store, opts.Keeper, opts.Recorder, opts.Logger),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		latch:      NewHoldLatch(render.HoldTicks),
		inputFrame: core.NewInputFrame(),
		cellW:      render.CellWidth,
		cellH:      render.CellHeight,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// B or Esc leaves a paused or finished run
	state := m.session.State()
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (state.Paused || state.Finished()) {
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case held(action):
		m.latch.Press(action)
		if dir := dashDirection(msg); dir != core.ActionNone {
			m.latch.Press(dir)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse aims at the cursor and fires while the left button is down.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Aim at the middle of the cell under the HUD.
	x := msg.X*m.cellW + m.cellW/2
	y := (msg.Y-platformer.HUDRows)*m.cellH + m.cellH/2
	m.inputFrame.SetAim(x, y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.latch.Hold(core.ActionFire)
		}
	case tea.MouseActionRelease:
		m.latch.Release(core.ActionFire)
	}

	return m, nil
}

// handleResize processes window resize events. The world view keeps its
// size; a smaller terminal shows less of it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.latch.Apply(&m.inputFrame)

	result := m.session.Step(m.inputFrame)
	if result.Signal == core.SignalRestart {
		m.latch.Reset()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen, platformer.HUDRows)
}

// Session returns the session the model drives.
func (m Model) Session() *session.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game until the player quits or goes back, then flushes the
// high score and saves the recording.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the cursor
	)

	finalModel, err := p.Run()
	if cerr := model.session.Close(opts.RecordPath); cerr != nil && err == nil {
		err = cerr
	}
	if m, ok := finalModel.(Model); ok {
		backToMenu = m.BackToMenu()
	}
	return backToMenu, err
}
