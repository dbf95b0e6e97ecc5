package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Body is a moving rectangle with a continuous velocity.
type Body struct {
	Rect     core.Rect
	Vel      core.Vec2
	Grounded bool
}

// MoveAndCollide integrates gravity and moves the body against static
// platforms one axis at a time: X is moved and fully resolved before Y.
// A diagonal hit on a tile corner therefore resolves against the X face.
// Grounded is set only by a downward Y contact.
func MoveAndCollide(b *Body, platforms []core.Rect, gravity float64) {
	b.Vel.Y += gravity

	b.Rect.X += core.Round(b.Vel.X)
	resolveX(b, platforms)

	b.Rect.Y += core.Round(b.Vel.Y)
	resolveY(b, platforms)
}

func resolveX(b *Body, platforms []core.Rect) {
	hit := false
	edge := 0
	for _, p := range platforms {
		if !b.Rect.Intersects(p) {
			continue
		}
		switch {
		case b.Vel.X > 0:
			if !hit || p.Left() < edge {
				edge = p.Left()
			}
		case b.Vel.X < 0:
			if !hit || p.Right() > edge {
				edge = p.Right()
			}
		}
		hit = true
	}
	if !hit {
		return
	}

	switch {
	case b.Vel.X > 0:
		b.Rect.X = edge - b.Rect.W
	case b.Vel.X < 0:
		b.Rect.X = edge
	}
	b.Vel.X = 0
}

func resolveY(b *Body, platforms []core.Rect) {
	hit := false
	edge := 0
	for _, p := range platforms {
		if !b.Rect.Intersects(p) {
			continue
		}
		switch {
		case b.Vel.Y > 0:
			if !hit || p.Top() < edge {
				edge = p.Top()
			}
		case b.Vel.Y < 0:
			if !hit || p.Bottom() > edge {
				edge = p.Bottom()
			}
		}
		hit = true
	}
	if !hit {
		return
	}

	switch {
	case b.Vel.Y > 0:
		b.Rect.Y = edge - b.Rect.H
		b.Grounded = true
		b.Vel.Y = 0
	case b.Vel.Y < 0:
		b.Rect.Y = edge
		b.Vel.Y = 0
	}
}

// SettleVertical is the enemies' resolution: only downward rests are
// resolved, so an enemy is never pushed out of a wall sideways.
func SettleVertical(r core.Rect, vy float64, platforms []core.Rect) (core.Rect, float64) {
	if vy <= 0 {
		return r, vy
	}

	rested := false
	top := 0
	for _, p := range platforms {
		if !r.Intersects(p) || r.Bottom() <= p.Top() {
			continue
		}
		if !rested || p.Top() < top {
			top = p.Top()
		}
		rested = true
	}
	if rested {
		r.Y = top - r.H
		vy = 0
	}
	return r, vy
}

// anyIntersects reports whether r overlaps any of the rectangles.
func anyIntersects(r core.Rect, rects []core.Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
