package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpritePlatform SpriteKind = iota
	SpriteCollectible
	SpriteEnemy
	SpritePlayerShot
	SpriteEnemyShot
	SpritePlayer
	SpriteCheckpoint
	SpriteParticle
)

// Sprite is one drawable entity in view coordinates.
type Sprite struct {
	Kind      SpriteKind
	Rect      core.Rect // Camera-relative
	Variant   Variant   // Enemies only
	Facing    int       // Player and enemies
	Activated bool      // Checkpoints only
}

// Overlay texts
const (
	BannerPaused     = "PAUSED"
	BannerTransition = "LEVEL COMPLETE"
	BannerGameOver   = "GAME OVER"
	BannerWin        = "YOU WIN!"
	OverlayHint      = "P to resume | R to restart | Q to save and quit"
)

// View is a renderer-facing picture of one frame. Sprites are listed in
// draw order and culled to the viewport.
type View struct {
	Sprites []Sprite

	CameraX, CameraY int
	ViewW, ViewH     int
	LevelW, LevelH   int

	Stage    int
	MaxStage int
	Lives    int
	Score    int
	Status   Status
	Mode     Mode

	// Banner is empty while playing.
	Banner string
	Hint   string
}

// View builds the renderer view of the current frame.
func (c *Controller) View() View {
	l := c.level
	cam := l.Camera
	vp := cam.Viewport()

	v := View{
		CameraX:  cam.X,
		CameraY:  cam.Y,
		ViewW:    cam.ViewW,
		ViewH:    cam.ViewH,
		LevelW:   l.Width,
		LevelH:   l.Height,
		Stage:    l.Stage,
		MaxStage: c.cfg.Lifecycle.MaxStage,
		Lives:    c.player.Lives(),
		Score:    c.player.Score(),
		Status:   c.status,
		Mode:     c.mode,
		Banner:   bannerFor(c.status),
	}
	if v.Banner != "" {
		v.Hint = OverlayHint
	}

	add := func(s Sprite, world core.Rect) {
		if world.Intersects(vp) {
			s.Rect = cam.Apply(world)
			v.Sprites = append(v.Sprites, s)
		}
	}

	for _, p := range l.Platforms {
		add(Sprite{Kind: SpritePlatform}, p)
	}
	for _, item := range l.Collectibles {
		if item.alive {
			add(Sprite{Kind: SpriteCollectible}, item.Rect)
		}
	}
	for _, e := range l.Enemies {
		if e.Alive() {
			add(Sprite{Kind: SpriteEnemy, Variant: e.Variant(), Facing: e.Facing()}, e.Rect())
		}
	}
	for _, s := range l.PlayerShots {
		add(Sprite{Kind: SpritePlayerShot}, s.Rect)
	}
	for _, s := range l.EnemyShots {
		add(Sprite{Kind: SpriteEnemyShot}, s.Rect)
	}
	add(Sprite{Kind: SpritePlayer, Facing: c.player.Facing()}, c.player.Rect())
	for _, cp := range l.Checkpoints {
		add(Sprite{Kind: SpriteCheckpoint, Activated: cp.Activated()}, cp.Rect)
	}
	for _, p := range l.Particles {
		add(Sprite{Kind: SpriteParticle}, p.Rect())
	}

	return v
}

func bannerFor(s Status) string {
	switch s {
	case StatusPaused:
		return BannerPaused
	case StatusTransitioning:
		return BannerTransition
	case StatusGameOver:
		return BannerGameOver
	case StatusWin:
		return BannerWin
	default:
		return ""
	}
}

// Snapshot contains the gameplay state of a session for determinism
// checks and replay verification. Particles are cosmetic and left out.
type Snapshot struct {
	Frame       uint64
	Stage       int
	Status      Status
	Score       int
	Lives       int
	PlayerX     int
	PlayerY     int
	PlayerVX    int // Velocity in thousandths of a pixel per frame
	PlayerVY    int
	RespawnX    int
	RespawnY    int
	ClearFrames int
	Transition  int

	// Each enemy is 6 ints: X, Y, Variant, Facing, Aggro (chasers, 0 or 1)
	// and ShotIn (shooters, frames to the next shot)
	EnemyData []int

	// Each shot is 3 ints: X, Y, Owner
	ShotData []int

	CollectiblesLeft  int
	CheckpointsActive int
}

// Snapshot returns the current gameplay state.
func (c *Controller) Snapshot() Snapshot {
	l := c.level
	p := c.player

	enemyData := make([]int, 0, len(l.Enemies)*6)
	for _, e := range l.Enemies {
		r := e.Rect()
		aggro, shotIn := 0, 0
		switch e := e.(type) {
		case *Chaser:
			if e.Aggro() {
				aggro = 1
			}
		case *Shooter:
			shotIn = e.ShotIn()
		}
		enemyData = append(enemyData, r.X, r.Y, int(e.Variant()), e.Facing(), aggro, shotIn)
	}

	shotData := make([]int, 0, (len(l.PlayerShots)+len(l.EnemyShots))*3)
	for _, s := range l.PlayerShots {
		shotData = append(shotData, s.Rect.X, s.Rect.Y, int(s.Owner))
	}
	for _, s := range l.EnemyShots {
		shotData = append(shotData, s.Rect.X, s.Rect.Y, int(s.Owner))
	}

	active := 0
	for _, cp := range l.Checkpoints {
		if cp.Activated() {
			active++
		}
	}

	return Snapshot{
		Frame:             c.frame,
		Stage:             l.Stage,
		Status:            c.status,
		Score:             p.Score(),
		Lives:             p.Lives(),
		PlayerX:           p.Rect().X,
		PlayerY:           p.Rect().Y,
		PlayerVX:          core.Round(p.Vel().X * 1000),
		PlayerVY:          core.Round(p.Vel().Y * 1000),
		RespawnX:          c.respawn.X,
		RespawnY:          c.respawn.Y,
		ClearFrames:       c.clearFrames,
		Transition:        c.transition.Remaining(),
		EnemyData:         enemyData,
		ShotData:          shotData,
		CollectiblesLeft:  l.CollectiblesLeft(),
		CheckpointsActive: active,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Stage)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RespawnX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RespawnY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ClearFrames)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Transition)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CollectiblesLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CheckpointsActive) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ShotData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
