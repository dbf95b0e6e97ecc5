package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

const bannerH = 60

var easeBanner = ease.OutCubic

// Palette
var (
	colorSky        = color.RGBA{0x1b, 0x1f, 0x3a, 0xff}
	colorPlatform   = color.RGBA{0x8a, 0x8f, 0x98, 0xff}
	colorCollect    = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colorPlayer     = color.RGBA{0x4f, 0xe3, 0xf0, 0xff}
	colorPlayerShot = color.RGBA{0x8c, 0xf5, 0x7a, 0xff}
	colorEnemyShot  = color.RGBA{0xff, 0x5c, 0x5c, 0xff}
	colorFlagOff    = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	colorFlagOn     = color.RGBA{0x27, 0xae, 0x60, 0xff}
	colorParticle   = color.RGBA{0xf3, 0x9c, 0x12, 0xff}
	colorBannerBox  = color.RGBA{0x00, 0x00, 0x00, 0xc0}

	enemyColors = map[platformer.Variant]color.RGBA{
		platformer.VariantPatrol:  {0xe7, 0x4c, 0x3c, 0xff},
		platformer.VariantChaser:  {0xbe, 0x4b, 0xdb, 0xff},
		platformer.VariantShooter: {0xff, 0x8c, 0x1a, 0xff},
	}
)

// parallaxBands are drawn back to front.
var parallaxBands = []struct {
	factor  float64
	spacing int
	width   int
	height  int
	clr     color.RGBA
}{
	{0.2, 320, 180, 220, color.RGBA{0x26, 0x2b, 0x4f, 0xff}},
	{0.4, 240, 120, 150, color.RGBA{0x2f, 0x36, 0x5f, 0xff}},
	{0.6, 180, 70, 90, color.RGBA{0x3a, 0x43, 0x70, 0xff}},
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	v := w.game.View()

	screen.Fill(colorSky)
	w.drawParallax(screen, v)
	for _, s := range v.Sprites {
		drawSprite(screen, s)
	}
	w.drawHUD(screen, v)
	w.drawBanner(screen, v)
}

// drawParallax draws hill bands that scroll slower than the camera.
func (w *Window) drawParallax(screen *ebiten.Image, v platformer.View) {
	for _, band := range parallaxBands {
		offset := int(float64(v.CameraX)*band.factor) % band.spacing
		for x := -offset; x < w.viewW; x += band.spacing {
			fillRect(screen, x, w.viewH-band.height, band.width, band.height, band.clr)
		}
	}
}

func drawSprite(screen *ebiten.Image, s platformer.Sprite) {
	r := s.Rect
	switch s.Kind {
	case platformer.SpritePlatform:
		fillRect(screen, r.X, r.Y, r.W, r.H, colorPlatform)
	case platformer.SpriteCollectible:
		fillRect(screen, r.X, r.Y, r.W, r.H, colorCollect)
	case platformer.SpriteEnemy:
		fillRect(screen, r.X, r.Y, r.W, r.H, enemyColors[s.Variant])
	case platformer.SpritePlayerShot:
		fillRect(screen, r.X, r.Y, r.W, r.H, colorPlayerShot)
	case platformer.SpriteEnemyShot:
		fillRect(screen, r.X, r.Y, r.W, r.H, colorEnemyShot)
	case platformer.SpritePlayer:
		fillRect(screen, r.X, r.Y, r.W, r.H, colorPlayer)
		// Eye on the facing side
		eyeX := r.X + r.W/4
		if s.Facing > 0 {
			eyeX = r.X + r.W*3/4 - 4
		}
		fillRect(screen, eyeX, r.Y+r.H/4, 4, 4, colorSky)
	case platformer.SpriteCheckpoint:
		clr := colorFlagOff
		if s.Activated {
			clr = colorFlagOn
		}
		fillRect(screen, r.X, r.Y, 3, r.H, colorPlatform)
		fillRect(screen, r.X+3, r.Y, r.W-3, r.H/2, clr)
	case platformer.SpriteParticle:
		fillRect(screen, r.X, r.Y, r.W, r.H, colorParticle)
	}
}

// drawHUD prints lives and score on the left, best and stage on the right.
func (w *Window) drawHUD(screen *ebiten.Image, v platformer.View) {
	left := fmt.Sprintf("Lives: %d  Score: %d", v.Lives, v.Score)
	ebitenutil.DebugPrintAt(screen, left, 8, 4)

	stage := fmt.Sprintf("Level: %d", v.Stage)
	if v.Mode == platformer.ModeCampaign {
		stage = fmt.Sprintf("Level: %d/%d", v.Stage, v.MaxStage)
	}
	right := fmt.Sprintf("Highscore: %d  %s", w.game.HighScore(), stage)
	ebitenutil.DebugPrintAt(screen, right, w.viewW-len(right)*glyphW-8, 4)
}

func (w *Window) drawBanner(screen *ebiten.Image, v platformer.View) {
	if v.Banner == "" {
		return
	}

	boxW := max(len(v.Banner), len(v.Hint))*glyphW + 32
	x := (w.viewW - boxW) / 2
	y := int(w.bannerY)
	fillRect(screen, x, y, boxW, bannerH, colorBannerBox)

	ebitenutil.DebugPrintAt(screen, v.Banner, (w.viewW-len(v.Banner)*glyphW)/2, y+8)
	ebitenutil.DebugPrintAt(screen, v.Hint, (w.viewW-len(v.Hint)*glyphW)/2, y+8+glyphH+8)
}

func fillRect(screen *ebiten.Image, x, y, width, height int, clr color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), clr, false)
}
