package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Outcome is the result of a player step.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDied         // Fell below the level; caller must respawn
)

// Player is the controlled actor.
type Player struct {
	body       Body
	facing     int
	doubleJump bool

	coyote  core.Countdown // Frames a ground jump is still allowed after leaving ground
	jumpBuf core.Countdown // Frames a jump press stays buffered
	dash    core.Countdown // Dash cooldown

	lives int
	score int

	cfg     config.PlayerConfig
	gravity float64
}

// playerEnv is what a player step reads from and writes into.
type playerEnv struct {
	platforms []core.Rect
	camera    Camera
	levelH    int
	shots     *[]*Projectile
	particles *[]*Particle
	fx        *Emitter
	shotCfg   config.ProjectileConfig
}

// NewPlayer creates a player standing with its feet at spawn.
func NewPlayer(spawn core.Point, cfg config.PlayerConfig, gravity float64) *Player {
	return &Player{
		body:       Body{Rect: core.RectFromMidBottom(spawn.X, spawn.Y, cfg.Width, cfg.Height)},
		facing:     1,
		doubleJump: true,
		lives:      cfg.Lives,
		cfg:        cfg,
		gravity:    gravity,
	}
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect { return p.body.Rect }

// Vel returns the player's velocity.
func (p *Player) Vel() core.Vec2 { return p.body.Vel }

// Facing returns -1 or 1.
func (p *Player) Facing() int { return p.facing }

// Grounded reports whether the last step ended standing on a platform.
func (p *Player) Grounded() bool { return p.body.Grounded }

// DoubleJumpReady reports whether the air jump charge is available.
func (p *Player) DoubleJumpReady() bool { return p.doubleJump }

// DashCooldown returns the frames left before the next dash.
func (p *Player) DashCooldown() int { return p.dash.Remaining() }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// AddScore adds points to the score.
func (p *Player) AddScore(points int) { p.score += points }

// LoseLife takes one life away. Lives never drop below zero.
func (p *Player) LoseLife() {
	if p.lives > 0 {
		p.lives--
	}
}

// EnsureLives raises lives to at least n.
func (p *Player) EnsureLives(n int) {
	p.lives = max(p.lives, n)
}

// Knockback shoves the player horizontally without collision.
func (p *Player) Knockback(dx int) {
	p.body.Rect.X += dx
}

// Respawn puts the player's feet at point and stops it. Lives and score are kept.
func (p *Player) Respawn(point core.Point) {
	p.body.Rect = p.body.Rect.WithMidBottom(point)
	p.body.Vel = core.Vec2{}
}

// HandleInput buffers a jump on the frame the jump key is pressed.
func (p *Player) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		p.jumpBuf.Arm(p.cfg.JumpBuffer)
	}
}

// Step advances the player by one frame.
func (p *Player) Step(env *playerEnv, in core.InputFrame) Outcome {
	prevGrounded := p.body.Grounded
	p.body.Grounded = false

	p.body.Vel.X = 0
	if in.Has(core.ActionLeft) {
		p.body.Vel.X = -p.cfg.Speed
		p.facing = -1
	}
	if in.Has(core.ActionRight) {
		p.body.Vel.X = p.cfg.Speed
		p.facing = 1
	}

	if in.Has(core.ActionDash) && p.dash.Expired() {
		p.body.Vel.X = p.cfg.DashSpeed * float64(p.facing)
		p.dash.Arm(p.cfg.DashCooldown)
		env.fx.Emit(env.particles, p.center(), BurstDash)
	}
	p.dash.Tick()

	if p.jumpBuf.Active() {
		switch {
		case prevGrounded || p.coyote.Active():
			p.body.Vel.Y = p.cfg.JumpPower
			p.doubleJump = true
			p.coyote.Clear()
			p.jumpBuf.Clear()
		case p.doubleJump:
			p.body.Vel.Y = p.cfg.JumpPower * p.cfg.DoubleJumpMult
			p.doubleJump = false
			p.jumpBuf.Clear()
			env.fx.Emit(env.particles, p.body.Rect.MidBottom(), BurstDoubleJump)
		}
	}
	p.jumpBuf.Tick()

	MoveAndCollide(&p.body, env.platforms, p.gravity)

	if p.body.Grounded {
		p.coyote.Arm(p.cfg.CoyoteFrames)
		p.doubleJump = true
	} else {
		p.coyote.Tick()
	}

	if in.Has(core.ActionFire) && liveProjectiles(*env.shots) < env.shotCfg.PlayerCap {
		*env.shots = append(*env.shots, NewProjectile(p.center(), p.aim(env.camera, in), env.shotCfg.PlayerSpeed, env.shotCfg.Size, OwnerPlayer))
	}

	if p.body.Rect.Top() > env.levelH+p.cfg.FallMargin {
		p.LoseLife()
		return OutcomeDied
	}
	return OutcomeNone
}

// aim returns the firing angle toward the cursor's world position, or
// straight ahead when the input carries no cursor.
func (p *Player) aim(cam Camera, in core.InputFrame) float64 {
	if !in.Aiming {
		if p.facing < 0 {
			return math.Pi
		}
		return 0
	}
	return aimAngle(p.center(), cam.ScreenToWorld(in.AimX, in.AimY))
}

func (p *Player) center() core.Point {
	x, y := p.body.Rect.Center()
	return core.Point{X: x, Y: y}
}
