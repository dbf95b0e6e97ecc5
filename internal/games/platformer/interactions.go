package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// pass is one stage of a simulated frame.
type pass struct {
	name string
	run  func(c *Controller, in core.InputFrame)
}

// framePasses is the order of work inside a Playing frame. Later passes
// see everything earlier passes did: a shot fired by the player this
// frame can hit an enemy this frame.
var framePasses = []pass{
	{"player", (*Controller).passPlayer},
	{"enemies", (*Controller).passEnemies},
	{"projectiles", (*Controller).passProjectiles},
	{"particles", (*Controller).passParticles},
	{"interactions", (*Controller).passInteractions},
	{"clear-check", (*Controller).passClearCheck},
	{"camera", (*Controller).passCamera},
}

// PassOrder returns the names of the frame passes in execution order.
func PassOrder() []string {
	names := make([]string, len(framePasses))
	for i, p := range framePasses {
		names[i] = p.name
	}
	return names
}

func (c *Controller) passPlayer(in core.InputFrame) {
	l := c.level
	env := &playerEnv{
		platforms: l.Platforms,
		camera:    l.Camera,
		levelH:    l.Height,
		shots:     &l.PlayerShots,
		particles: &l.Particles,
		fx:        c.fx,
		shotCfg:   c.cfg.Projectiles,
	}

	c.player.HandleInput(in)
	if c.player.Step(env, in) == OutcomeDied {
		c.player.Respawn(c.respawn)
		if c.player.Lives() == 0 {
			c.status = StatusGameOver
		}
		c.log.Debug("player fell", "lives", c.player.Lives(), "stage", l.Stage)
	}
}

func (c *Controller) passEnemies(_ core.InputFrame) {
	l := c.level
	env := &enemyEnv{
		platforms: l.Platforms,
		player:    c.player.Rect(),
		gravity:   c.cfg.Physics.Gravity,
		cfg:       c.cfg.Enemies,
		shotCfg:   c.cfg.Projectiles,
		rng:       c.rng,
		shots:     &l.EnemyShots,
		particles: &l.Particles,
		fx:        c.fx,
	}

	for _, e := range l.Enemies {
		if !e.Alive() {
			continue
		}
		e.step(env)
	}
}

func (c *Controller) passProjectiles(_ core.InputFrame) {
	l := c.level
	for _, s := range l.PlayerShots {
		s.Step(l.Width, l.Height)
	}
	for _, s := range l.EnemyShots {
		s.Step(l.Width, l.Height)
	}
	l.PlayerShots = sweepProjectiles(l.PlayerShots)
	l.EnemyShots = sweepProjectiles(l.EnemyShots)
}

func (c *Controller) passParticles(_ core.InputFrame) {
	l := c.level
	for _, p := range l.Particles {
		p.Step(c.cfg.Particles.Gravity)
	}
	l.Particles = sweepParticles(l.Particles)
}

// passInteractions resolves contacts between entity groups. Each rule runs
// independently, in a fixed order.
func (c *Controller) passInteractions(_ core.InputFrame) {
	c.resolvePlayerShots()
	c.resolveEnemyShots()
	c.resolveEnemyTouch()
	c.resolveCollectibles()
	c.resolveCheckpoints()

	l := c.level
	l.PlayerShots = sweepProjectiles(l.PlayerShots)
	l.EnemyShots = sweepProjectiles(l.EnemyShots)
	l.Enemies = sweepEnemies(l.Enemies)
	l.sweepCollectibles()
}

// resolvePlayerShots destroys the first enemy each player shot overlaps.
func (c *Controller) resolvePlayerShots() {
	l := c.level
	for _, s := range l.PlayerShots {
		if !s.alive {
			continue
		}
		for _, e := range l.Enemies {
			if !e.Alive() || !s.Rect.Intersects(e.Rect()) {
				continue
			}
			if !c.guard(s.Owner == OwnerPlayer, "player shot owner", "owner", s.Owner) {
				break
			}
			s.alive = false
			e.base().alive = false
			c.player.AddScore(c.cfg.Scoring.EnemyKill)
			c.fx.Emit(&l.Particles, rectCenter(e.Rect()), BurstKill)
			break
		}
	}
}

func (c *Controller) resolveEnemyShots() {
	l := c.level
	for _, s := range l.EnemyShots {
		if !s.alive || !s.Rect.Intersects(c.player.Rect()) {
			continue
		}
		if !c.guard(s.Owner == OwnerEnemy, "enemy shot owner", "owner", s.Owner) {
			continue
		}
		s.alive = false
		c.hurt()
		c.fx.Emit(&l.Particles, rectCenter(c.player.Rect()), BurstHit)
	}
}

// resolveEnemyTouch costs at most one life per frame, however many
// enemies overlap the player.
func (c *Controller) resolveEnemyTouch() {
	l := c.level
	for _, e := range l.Enemies {
		if !e.Alive() || !e.Rect().Intersects(c.player.Rect()) {
			continue
		}
		c.hurt()
		c.player.Knockback(-c.cfg.Player.Knockback)
		c.fx.Emit(&l.Particles, rectCenter(c.player.Rect()), BurstTouch)
		return
	}
}

func (c *Controller) resolveCollectibles() {
	l := c.level
	for _, item := range l.Collectibles {
		if !item.alive || !item.Rect.Intersects(c.player.Rect()) {
			continue
		}
		item.alive = false
		c.player.AddScore(c.cfg.Scoring.Collectible)
		c.fx.Emit(&l.Particles, rectCenter(item.Rect), BurstPickup)
	}
}

// resolveCheckpoints activates a touched flag and moves the respawn point
// to it in the same step. Only a first touch starts the stage transition.
func (c *Controller) resolveCheckpoints() {
	l := c.level
	for _, cp := range l.Checkpoints {
		if !cp.Rect.Intersects(c.player.Rect()) || !cp.Activate() {
			continue
		}
		c.respawn = cp.Respawn
		c.fx.Emit(&l.Particles, rectCenter(cp.Rect), BurstCheckpoint)
		if c.status == StatusPlaying {
			c.startTransition()
		}
		c.log.Debug("checkpoint reached", "stage", l.Stage, "score", c.player.Score())
	}
}

// passClearCheck starts the transition once the level has stayed empty of
// enemies and collectibles for longer than the debounce window.
func (c *Controller) passClearCheck(_ core.InputFrame) {
	if c.status != StatusPlaying {
		return
	}
	if !c.level.Cleared() {
		c.clearFrames = 0
		return
	}

	c.clearFrames++
	if c.clearFrames > c.cfg.Lifecycle.ClearDebounce {
		c.startTransition()
	}
}

func (c *Controller) passCamera(_ core.InputFrame) {
	c.level.Camera.Follow(c.player.Rect())
}

func rectCenter(r core.Rect) core.Point {
	x, y := r.Center()
	return core.Point{X: x, Y: y}
}
