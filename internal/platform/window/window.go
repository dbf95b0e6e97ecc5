// Package window runs the platformer in a desktop window using ebiten.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/session"
)

// Options configure a window run.
type Options struct {
	Game     *platformer.Game
	Session  *session.Session
	Logger   *log.Logger
	TickRate int
	Title    string
}

// Window is an ebiten.Game driving one platformer session.
type Window struct {
	game    *platformer.Game
	session *session.Session
	log     *log.Logger
	input   *inputState

	viewW, viewH int

	banner     string
	bannerY    float32
	bannerAnim *gween.Tween
	tickRate   int
}

var _ ebiten.Game = (*Window)(nil)

// New creates a window for a game that has already been Reset.
func New(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	cfg := opts.Game.Config()
	return &Window{
		game:     opts.Game,
		session:  opts.Session,
		log:      logger,
		input:    newInputState(),
		viewW:    cfg.Viewport.Width,
		viewH:    cfg.Viewport.Height,
		tickRate: tickRate,
	}
}

// Update reads input and advances the simulation by one tick.
func (w *Window) Update() error {
	frame, quit := w.input.poll()
	if quit {
		return ebiten.Termination
	}

	res := w.session.Step(frame)
	if res.Signal == core.SignalRestart {
		w.log.Info("session restarted", "prev_score", res.State.Score)
	}

	w.updateBanner(w.game.View().Banner)
	return nil
}

// updateBanner slides a newly shown banner in from above the viewport.
func (w *Window) updateBanner(banner string) {
	if banner != w.banner {
		w.banner = banner
		w.bannerAnim = nil
		if banner != "" {
			w.bannerAnim = gween.New(-bannerH, float32(w.viewH-bannerH)/2, 0.4, easeBanner)
		}
	}
	if w.bannerAnim != nil {
		y, done := w.bannerAnim.Update(1 / float32(w.tickRate))
		w.bannerY = y
		if done {
			w.bannerAnim = nil
		}
	}
}

// Layout keeps the logical screen at the configured viewport size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.viewW, w.viewH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := New(opts)

	title := opts.Title
	if title == "" {
		title = opts.Game.Title()
	}
	ebiten.SetWindowSize(w.viewW, w.viewH)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(w.tickRate)

	w.log.Info("window opened", "game", opts.Game.ID(), "size", [2]int{w.viewW, w.viewH})
	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	w.log.Info("window closed", "score", w.session.State().Score)
	return nil
}
