package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Owner tags which side fired a projectile. Player shots only hit enemies
// and enemy shots only hit the player.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a straight-flying shot.
type Projectile struct {
	Rect  core.Rect
	Vel   core.Vec2
	Owner Owner
	alive bool
}

// NewProjectile creates a square shot centered on from, travelling along
// angle (radians, screen coordinates) at a fixed speed.
func NewProjectile(from core.Point, angle, speed float64, size int, owner Owner) *Projectile {
	return &Projectile{
		Rect:  core.RectFromCenter(from.X, from.Y, size, size),
		Vel:   core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Owner: owner,
		alive: true,
	}
}

// Alive reports whether the projectile is still in flight.
func (p *Projectile) Alive() bool {
	return p.alive
}

// Step moves the projectile and destroys it once it is entirely outside
// the level bounds.
func (p *Projectile) Step(levelW, levelH int) {
	p.Rect.X += core.Round(p.Vel.X)
	p.Rect.Y += core.Round(p.Vel.Y)

	r := p.Rect
	if r.Right() < 0 || r.Left() > levelW || r.Top() > levelH || r.Bottom() < 0 {
		p.alive = false
	}
}

// aimAngle returns the angle from one point toward another.
func aimAngle(from, to core.Point) float64 {
	return math.Atan2(float64(to.Y-from.Y), float64(to.X-from.X))
}

func liveProjectiles(shots []*Projectile) int {
	n := 0
	for _, s := range shots {
		if s.alive {
			n++
		}
	}
	return n
}

func sweepProjectiles(shots []*Projectile) []*Projectile {
	out := shots[:0]
	for _, s := range shots {
		if s.alive {
			out = append(out, s)
		}
	}
	clear(shots[len(out):])
	return out
}
