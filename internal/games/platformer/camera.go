package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Camera is the viewport into the level, kept inside the level bounds.
type Camera struct {
	X, Y           int
	ViewW, ViewH   int
	LevelW, LevelH int
}

// NewCamera creates a camera at the level origin.
func NewCamera(viewW, viewH, levelW, levelH int) Camera {
	return Camera{ViewW: viewW, ViewH: viewH, LevelW: levelW, LevelH: levelH}
}

// Follow centers the view on target. A level smaller than the view pins
// the camera to the origin.
func (c *Camera) Follow(target core.Rect) {
	c.X = max(0, min(target.CenterX()-c.ViewW/2, c.LevelW-c.ViewW))
	c.Y = max(0, min(target.CenterY()-c.ViewH/2, c.LevelH-c.ViewH))
}

// Apply converts a world rectangle into view coordinates.
func (c Camera) Apply(r core.Rect) core.Rect {
	return r.Move(-c.X, -c.Y)
}

// ScreenToWorld converts a view position into a world position.
func (c Camera) ScreenToWorld(x, y int) core.Point {
	return core.Point{X: x + c.X, Y: y + c.Y}
}

// Viewport returns the visible world rectangle.
func (c Camera) Viewport() core.Rect {
	return core.NewRect(c.X, c.Y, c.ViewW, c.ViewH)
}
