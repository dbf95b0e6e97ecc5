package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ParticleSize is the side of a particle's square in pixels.
const ParticleSize = 4

// Particle is a cosmetic spark. Particles never take part in gameplay collision.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life int
}

// Step advances the particle by one frame.
func (p *Particle) Step(gravity float64) {
	p.Vel.Y += gravity
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	p.Life--
}

// Alive reports whether the particle still has frames left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Rect returns the particle's square centered on its rounded position.
func (p *Particle) Rect() core.Rect {
	return core.RectFromCenter(core.Round(p.Pos.X), core.Round(p.Pos.Y), ParticleSize, ParticleSize)
}

// Burst describes a spray of particles: how many and the ranges their
// initial velocity is drawn from.
type Burst struct {
	Count        int
	MinVX, MaxVX float64
	MinVY, MaxVY float64
}

// Bursts emitted by gameplay events.
var (
	BurstDash       = Burst{Count: 12, MinVX: -3, MaxVX: 3, MinVY: -2, MaxVY: 2}
	BurstDoubleJump = Burst{Count: 6, MinVX: -2, MaxVX: 2, MinVY: -6, MaxVY: -1}
	BurstKill       = Burst{Count: 10, MinVX: -3, MaxVX: 3, MinVY: -6, MaxVY: 2}
	BurstHit        = Burst{Count: 12, MinVX: -4, MaxVX: 4, MinVY: -6, MaxVY: -1}
	BurstTouch      = Burst{Count: 8, MinVX: -3, MaxVX: 3, MinVY: -6, MaxVY: -1}
	BurstPickup     = Burst{Count: 6, MinVX: -2, MaxVX: 2, MinVY: -6, MaxVY: -1}
	BurstCheckpoint = Burst{Count: 16, MinVX: -4, MaxVX: 4, MinVY: -6, MaxVY: -1}
	BurstDust       = Burst{Count: 1, MinVX: -1, MaxVX: 1, MinVY: -4, MaxVY: -1}
)

// Emitter spawns particles from its own random stream, so cosmetic
// effects never shift the gameplay random sequence.
type Emitter struct {
	rng      *rand.Rand
	lifespan int
}

// NewEmitter creates an emitter seeded independently of gameplay.
func NewEmitter(seed int64, lifespan int) *Emitter {
	return &Emitter{
		rng:      rand.New(rand.NewSource(seed)),
		lifespan: lifespan,
	}
}

// Emit appends a burst of particles centered on at.
func (e *Emitter) Emit(dst *[]*Particle, at core.Point, b Burst) {
	for range b.Count {
		*dst = append(*dst, &Particle{
			Pos:  core.Vec2{X: float64(at.X), Y: float64(at.Y)},
			Vel:  core.Vec2{X: e.uniform(b.MinVX, b.MaxVX), Y: e.uniform(b.MinVY, b.MaxVY)},
			Life: e.lifespan,
		})
	}
}

// Chance returns true with probability p.
func (e *Emitter) Chance(p float64) bool {
	return e.rng.Float64() < p
}

func (e *Emitter) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func sweepParticles(ps []*Particle) []*Particle {
	out := ps[:0]
	for _, p := range ps {
		if p.Alive() {
			out = append(out, p)
		}
	}
	clear(ps[len(out):])
	return out
}
