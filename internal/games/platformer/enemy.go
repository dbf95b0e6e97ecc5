package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Enemy is one of the closed set of behaviors: *Patrol, *Chaser or *Shooter.
type Enemy interface {
	Rect() core.Rect
	Variant() Variant
	Facing() int
	Alive() bool

	step(env *enemyEnv)
	base() *mob
}

// enemyEnv is the per-frame world an enemy senses and acts on.
type enemyEnv struct {
	platforms []core.Rect
	player    core.Rect
	gravity   float64
	cfg       config.EnemyConfig
	shotCfg   config.ProjectileConfig
	rng       *rand.Rand
	shots     *[]*Projectile
	particles *[]*Particle
	fx        *Emitter
}

// mob is the state shared by every variant.
type mob struct {
	rect  core.Rect
	vy    float64
	dir   int
	speed float64
	alive bool
}

func (m *mob) Rect() core.Rect { return m.rect }
func (m *mob) Facing() int     { return m.dir }
func (m *mob) Alive() bool     { return m.alive }
func (m *mob) base() *mob      { return m }

// fall applies gravity and rests the mob on the first platform below it.
func (m *mob) fall(env *enemyEnv) {
	m.vy += env.gravity
	m.rect.Y += core.Round(m.vy)
	m.rect, m.vy = SettleVertical(m.rect, m.vy, env.platforms)

	if env.fx.Chance(env.cfg.DustChance) {
		env.fx.Emit(env.particles, m.rect.MidBottom(), BurstDust)
	}
}

// walker senses the ground and walls ahead of a walking mob.
type walker struct {
	mob
}

// blocked probes a small square just ahead of the leading foot and the
// body shifted by one step. The probe does not grow with speed.
func (w *walker) blocked(env *enemyEnv) bool {
	feetX := w.rect.CenterX() + w.dir*(w.rect.W/2+env.cfg.ProbeGap)
	probe := core.NewRect(feetX-env.cfg.ProbeSize/2, w.rect.Bottom(), env.cfg.ProbeSize, env.cfg.ProbeSize)
	ground := anyIntersects(probe, env.platforms)
	wall := anyIntersects(w.rect.Move(w.stride(), 0), env.platforms)
	return !ground || wall
}

func (w *walker) stride() int {
	return core.Round(w.speed * float64(w.dir))
}

// patrol turns around at edges and walls, otherwise takes one step.
func (w *walker) patrol(env *enemyEnv) {
	if w.blocked(env) {
		w.dir = -w.dir
		return
	}
	w.rect.X += w.stride()
}

// Patrol walks back and forth on its platform.
type Patrol struct {
	walker
}

func (e *Patrol) Variant() Variant { return VariantPatrol }

func (e *Patrol) step(env *enemyEnv) {
	e.patrol(env)
	e.fall(env)
}

// Chaser patrols until the player comes within range, then follows the
// player horizontally for the rest of the stage.
type Chaser struct {
	walker
	aggro bool
}

func (e *Chaser) Variant() Variant { return VariantChaser }

// Aggro reports whether the chaser has noticed the player.
func (e *Chaser) Aggro() bool { return e.aggro }

func (e *Chaser) step(env *enemyEnv) {
	if core.Abs(env.player.CenterX()-e.rect.CenterX()) < env.cfg.AggroRange {
		e.aggro = true
	}

	// Aggro ignores ledges but not walls.
	if e.aggro {
		e.dir = 1
		if env.player.CenterX() < e.rect.CenterX() {
			e.dir = -1
		}
		step := core.Round(e.speed) * e.dir
		if !anyIntersects(e.rect.Move(step, 0), env.platforms) {
			e.rect.X += step
		}
	} else {
		e.patrol(env)
	}
	e.fall(env)
}

// Shooter stands still and fires at the player on a random cadence.
type Shooter struct {
	mob
	shoot core.Countdown
}

func (e *Shooter) Variant() Variant { return VariantShooter }

// ShotIn returns the frames until the next shot.
func (e *Shooter) ShotIn() int { return e.shoot.Remaining() }

func (e *Shooter) step(env *enemyEnv) {
	e.shoot.Tick()
	if e.shoot.Expired() {
		e.shoot.Arm(randInt(env.rng, env.cfg.ShootRearmMin, env.cfg.ShootRearmMax))

		from := core.Point{X: e.rect.CenterX(), Y: e.rect.CenterY()}
		to := core.Point{X: env.player.CenterX(), Y: env.player.CenterY()}
		*env.shots = append(*env.shots, NewProjectile(from, aimAngle(from, to), env.shotCfg.EnemySpeed, env.shotCfg.Size, OwnerEnemy))
	}
	e.fall(env)
}

// NewEnemy instantiates a spawn record.
func NewEnemy(s EnemySpawn, cfg config.EnemyConfig, rng *rand.Rand) Enemy {
	m := mob{
		rect:  core.RectFromMidBottom(s.At.X, s.At.Y, cfg.Width, cfg.Height),
		dir:   1,
		speed: s.Speed,
		alive: true,
	}
	if rng.Intn(2) == 0 {
		m.dir = -1
	}

	switch s.Variant {
	case VariantChaser:
		return &Chaser{walker: walker{mob: m}}
	case VariantShooter:
		e := &Shooter{mob: m}
		e.shoot.Arm(randInt(rng, cfg.ShootFirstMin, cfg.ShootFirstMax))
		return e
	default:
		return &Patrol{walker: walker{mob: m}}
	}
}

func aliveEnemies(enemies []Enemy) int {
	n := 0
	for _, e := range enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

func sweepEnemies(enemies []Enemy) []Enemy {
	out := enemies[:0]
	for _, e := range enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	clear(enemies[len(out):])
	return out
}
