package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar    = '█'
	CollectibleChar = '$'
	PlayerChar      = '@'
	ShotChar        = '•'
	FlagChar        = '⚑'
	ParticleChar    = '·'
	BackdropChar    = '.'
)

// EnemyGlyphs by variant
var EnemyGlyphs = map[Variant]rune{
	VariantPatrol:  'M',
	VariantChaser:  'W',
	VariantShooter: 'T',
}

// Minimum terminal size
const (
	MinScreenW = 40
	MinScreenH = 12
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// backdropLayers scroll slower than the camera to suggest depth.
var backdropLayers = []struct {
	factor  float64
	spacing int // World pixels between dots
	row     int // Fraction of playfield height, in eighths
}{
	{0.2, 96, 1},
	{0.4, 72, 3},
	{0.6, 60, 5},
}

// TermRenderer draws views onto a character screen, one cell per
// CellW×CellH world pixels.
type TermRenderer struct {
	CellW, CellH int
}

// Draw renders a full frame: HUD, backdrop, sprites and overlay.
func (t TermRenderer) Draw(dst *core.Screen, v View, highScore int) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	t.drawBackdrop(dst, v)
	for _, s := range v.Sprites {
		t.drawSprite(dst, s)
	}
	t.drawHUD(dst, v, highScore)
	t.drawOverlay(dst, v)
}

// cells converts a view rectangle to the screen cells it covers.
func (t TermRenderer) cells(r core.Rect) core.Rect {
	x0 := core.FloorDiv(r.Left(), t.CellW)
	y0 := core.FloorDiv(r.Top(), t.CellH)
	x1 := core.FloorDiv(r.Right()-1, t.CellW)
	y1 := core.FloorDiv(r.Bottom()-1, t.CellH)
	return core.NewRect(x0, y0+HUDRows, x1-x0+1, y1-y0+1)
}

func (t TermRenderer) drawSprite(dst *core.Screen, s Sprite) {
	area := t.cells(s.Rect)

	switch s.Kind {
	case SpritePlatform:
		dst.DrawRectColor(area, PlatformChar, core.ColorGray)
	case SpriteCollectible:
		dst.DrawRectColor(area, CollectibleChar, core.ColorBrightYellow)
	case SpriteEnemy:
		color := core.ColorRed
		switch s.Variant {
		case VariantChaser:
			color = core.ColorMagenta
		case VariantShooter:
			color = core.ColorOrange
		}
		dst.DrawRectColor(area, EnemyGlyphs[s.Variant], color)
	case SpritePlayerShot:
		dst.DrawRectColor(area, ShotChar, core.ColorBrightGreen)
	case SpriteEnemyShot:
		dst.DrawRectColor(area, ShotChar, core.ColorBrightRed)
	case SpritePlayer:
		dst.DrawRectColor(area, PlayerChar, core.ColorBrightCyan)
	case SpriteCheckpoint:
		color := core.ColorRed
		if s.Activated {
			color = core.ColorGreen
		}
		dst.DrawRectColor(area, FlagChar, color)
	case SpriteParticle:
		dst.SetColor(area.X, area.Y, ParticleChar, core.ColorOrange)
	}
}

// drawBackdrop draws dotted parallax bands behind the playfield.
func (t TermRenderer) drawBackdrop(dst *core.Screen, v View) {
	fieldH := min(dst.Height()-HUDRows, core.FloorDiv(v.ViewH, t.CellH))
	cols := min(dst.Width(), core.FloorDiv(v.ViewW, t.CellW))

	for _, layer := range backdropLayers {
		y := HUDRows + fieldH*layer.row/8
		offset := int(float64(v.CameraX) * layer.factor)
		for x := range cols {
			if core.FloorMod(x*t.CellW+offset, layer.spacing) < t.CellW {
				dst.SetColor(x, y, BackdropChar, core.ColorGray)
			}
		}
	}
}

// drawHUD draws lives, score, stage and high score on the top row.
func (t TermRenderer) drawHUD(dst *core.Screen, v View, highScore int) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')

	left := fmt.Sprintf("Lives: %d  Score: %d", v.Lives, v.Score)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	stage := fmt.Sprintf("Level: %d", v.Stage)
	if v.Mode == ModeCampaign {
		stage = fmt.Sprintf("Level: %d/%d", v.Stage, v.MaxStage)
	}
	right := fmt.Sprintf("Highscore: %d  %s", highScore, stage)
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorBrightWhite)
}

// drawOverlay draws the banner box shown whenever the simulation is frozen.
func (t TermRenderer) drawOverlay(dst *core.Screen, v View) {
	if v.Banner == "" {
		return
	}

	boxW := min(dst.Width()-2, max(len(v.Hint), len(v.Banner))+4)
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	color := core.ColorBrightWhite
	switch v.Status {
	case StatusGameOver:
		color = core.ColorBrightRed
	case StatusWin, StatusTransitioning:
		color = core.ColorBrightGreen
	}
	dst.DrawTextCenteredColor(box.Y+1, v.Banner, color)
	dst.DrawTextCenteredColor(box.Y+3, v.Hint, core.ColorGray)
}
