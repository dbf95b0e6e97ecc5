package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Collectible is a score pickup, consumed on contact.
type Collectible struct {
	Rect  core.Rect
	alive bool
}

// NewCollectible creates a live collectible.
func NewCollectible(r core.Rect) *Collectible {
	return &Collectible{Rect: r, alive: true}
}

// Alive reports whether the collectible is still in the level.
func (c *Collectible) Alive() bool {
	return c.alive
}

// Checkpoint is the stage's flag. Activation is one-way.
type Checkpoint struct {
	Rect      core.Rect
	Respawn   core.Point
	activated bool
}

// NewCheckpoint creates an inactive checkpoint from its spawn record.
func NewCheckpoint(s CheckpointSpawn) *Checkpoint {
	return &Checkpoint{Rect: s.Rect, Respawn: s.Respawn}
}

// Activated reports whether the flag has been touched.
func (c *Checkpoint) Activated() bool {
	return c.activated
}

// Activate marks the checkpoint as reached. It returns true only on the
// first call.
func (c *Checkpoint) Activate() bool {
	if c.activated {
		return false
	}
	c.activated = true
	return true
}
