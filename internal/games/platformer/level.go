package platformer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Template glyphs
const (
	GlyphEmpty       = '.'
	GlyphPlatform    = '#'
	GlyphPlayer      = 'P'
	GlyphEnemy       = 'E'
	GlyphCollectible = 'C'
)

// Variant identifies an enemy behavior.
type Variant int

const (
	VariantPatrol Variant = iota
	VariantChaser
	VariantShooter
)

// String returns the variant name used in logs and level summaries.
func (v Variant) String() string {
	switch v {
	case VariantPatrol:
		return "patrol"
	case VariantChaser:
		return "chaser"
	case VariantShooter:
		return "shooter"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// EnemySpawn describes an enemy to place when a level is instantiated.
type EnemySpawn struct {
	At      core.Point // Midbottom of the enemy body
	Variant Variant
	Speed   float64
}

// CheckpointSpawn describes the stage's checkpoint flag.
type CheckpointSpawn struct {
	Rect    core.Rect
	Respawn core.Point
}

// Blueprint is the typed output of the level builder. It holds spawn
// records only; entities are created from it by the lifecycle controller.
type Blueprint struct {
	Tile          int
	Cols, Rows    int
	Width, Height int // Pixel bounds

	Platforms    []core.Rect
	PlayerSpawn  core.Point
	Enemies      []EnemySpawn
	Collectibles []core.Rect
	Checkpoint   *CheckpointSpawn // nil when the grid has no platforms
}

// ParseTemplate converts a textual grid into spawn records.
// Level width comes from the first row; unknown glyphs are empty space.
func ParseTemplate(grid []string, cfg config.PlatformerConfig, rng *rand.Rand) Blueprint {
	tile := cfg.TileSize
	bp := Blueprint{
		Tile:        tile,
		Rows:        len(grid),
		PlayerSpawn: core.Point{X: cfg.Player.DefaultSpawnX, Y: cfg.Player.DefaultSpawnY},
	}
	if len(grid) > 0 {
		bp.Cols = len(grid[0])
	}
	bp.Width = bp.Cols * tile
	bp.Height = bp.Rows * tile

	for r, row := range grid {
		for c := 0; c < len(row); c++ {
			x, y := c*tile, r*tile
			switch row[c] {
			case GlyphPlatform:
				bp.Platforms = append(bp.Platforms, core.NewRect(x, y, tile, tile))
			case GlyphPlayer:
				bp.PlayerSpawn = core.Point{X: x + tile/2, Y: y + tile}
			case GlyphEnemy:
				variant := Variant(rng.Intn(3))
				speed := cfg.Enemies.SpawnSpeedMin + rng.Float64()*(cfg.Enemies.SpawnSpeedMax-cfg.Enemies.SpawnSpeedMin)
				bp.Enemies = append(bp.Enemies, EnemySpawn{
					At:      core.Point{X: x + tile/2, Y: y + tile},
					Variant: variant,
					Speed:   speed,
				})
			case GlyphCollectible:
				size := cfg.Pickups.CollectibleSize
				bp.Collectibles = append(bp.Collectibles, core.RectFromCenter(x+tile/2, y+tile/2, size, size))
			}
		}
	}

	bp.Checkpoint = placeCheckpoint(bp.Platforms, cfg.Pickups)
	return bp
}

// placeCheckpoint puts the flag on the rightmost platform, preferring the
// highest one when several share the same column.
func placeCheckpoint(platforms []core.Rect, cfg config.PickupConfig) *CheckpointSpawn {
	if len(platforms) == 0 {
		return nil
	}

	best := platforms[0]
	for _, p := range platforms[1:] {
		if p.Left() > best.Left() || (p.Left() == best.Left() && p.Top() < best.Top()) {
			best = p
		}
	}

	flag := core.RectFromMidBottom(best.CenterX(), best.Top(), cfg.CheckpointWidth, cfg.CheckpointHeight)
	return &CheckpointSpawn{
		Rect:    flag,
		Respawn: core.Point{X: flag.CenterX(), Y: flag.Top()},
	}
}

// FillEnemies tops the blueprint up to the tier's minimum enemy count with
// patrol and chaser enemies at random tile positions.
func FillEnemies(bp *Blueprint, tier config.DifficultyTier, rng *rand.Rand) {
	missing := tier.EnemyCount - len(bp.Enemies)
	for range max(0, missing) {
		col := randInt(rng, 2, max(3, bp.Cols-3))
		row := randInt(rng, 1, max(2, bp.Rows-2))
		bp.Enemies = append(bp.Enemies, EnemySpawn{
			At:      core.Point{X: col * bp.Tile, Y: row * bp.Tile},
			Variant: Variant(rng.Intn(2)),
			Speed:   tier.EnemySpeed,
		})
	}
}

// TemplateFor returns the template of a 1-based stage, wrapping around the set.
func TemplateFor(templates [][]string, stage int) []string {
	if len(templates) == 0 {
		return nil
	}
	return templates[core.FloorMod(stage-1, len(templates))]
}

// BuiltinTemplates returns a copy of the authored stages.
func BuiltinTemplates() [][]string {
	out := make([][]string, len(builtinTemplates))
	for i, tpl := range builtinTemplates {
		out[i] = append([]string(nil), tpl...)
	}
	return out
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

var builtinTemplates = [][]string{
	{
		"..................................................",
		"..................................................",
		"..................................................",
		"....................C.............................",
		"..........#####..........#####....................",
		"..................................................",
		"......P...........................................",
		"##########......#####.............######..........",
		"..................................................",
		"..................................................",
	},
	{
		"..................................................",
		"....................C.............................",
		"...............#####.............#####............",
		"..................................................",
		"......P.....E......#####.....E....................",
		"....##########....................###########.....",
		"..................................................",
		"..................#####......................E....",
		"..................................................",
		"..................................................",
	},
	{
		"..................................................",
		"....................................C.............",
		"..........#####..............####...............E.",
		"..................................................",
		"........P...........#####.........................",
		"....##########....................######..........",
		".............................E....................",
		"....................#####.........................",
		"..................................................",
		"..................................................",
	},
}
