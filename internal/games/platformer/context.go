package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// LevelContext is everything that belongs to the current stage. The
// controller owns exactly one and swaps it whole on stage advance, so
// nothing from the previous stage leaks into the next.
type LevelContext struct {
	Stage  int
	Tier   config.DifficultyTier
	Width  int
	Height int

	Platforms    []core.Rect
	Enemies      []Enemy
	Collectibles []*Collectible
	Checkpoints  []*Checkpoint
	Spawn        core.Point

	Camera Camera

	PlayerShots []*Projectile
	EnemyShots  []*Projectile
	Particles   []*Particle
}

// newLevelContext instantiates the entities of a blueprint.
func newLevelContext(stage int, tier config.DifficultyTier, bp Blueprint, cfg config.PlatformerConfig, rng *rand.Rand) *LevelContext {
	ctx := &LevelContext{
		Stage:     stage,
		Tier:      tier,
		Width:     bp.Width,
		Height:    bp.Height,
		Platforms: append([]core.Rect(nil), bp.Platforms...),
		Spawn:     bp.PlayerSpawn,
		Camera:    NewCamera(cfg.Viewport.Width, cfg.Viewport.Height, bp.Width, bp.Height),
	}

	ctx.Enemies = make([]Enemy, 0, len(bp.Enemies))
	for _, s := range bp.Enemies {
		ctx.Enemies = append(ctx.Enemies, NewEnemy(s, cfg.Enemies, rng))
	}

	ctx.Collectibles = make([]*Collectible, 0, len(bp.Collectibles))
	for _, r := range bp.Collectibles {
		ctx.Collectibles = append(ctx.Collectibles, NewCollectible(r))
	}

	if bp.Checkpoint != nil {
		ctx.Checkpoints = []*Checkpoint{NewCheckpoint(*bp.Checkpoint)}
	}

	return ctx
}

// EnemiesLeft returns the number of live enemies.
func (l *LevelContext) EnemiesLeft() int {
	return aliveEnemies(l.Enemies)
}

// CollectiblesLeft returns the number of collectibles not yet picked up.
func (l *LevelContext) CollectiblesLeft() int {
	n := 0
	for _, c := range l.Collectibles {
		if c.alive {
			n++
		}
	}
	return n
}

// Cleared reports whether every enemy and collectible is gone.
func (l *LevelContext) Cleared() bool {
	return l.EnemiesLeft() == 0 && l.CollectiblesLeft() == 0
}

func (l *LevelContext) sweepCollectibles() {
	out := l.Collectibles[:0]
	for _, c := range l.Collectibles {
		if c.alive {
			out = append(out, c)
		}
	}
	clear(l.Collectibles[len(out):])
	l.Collectibles = out
}
