package config

// DifficultyTable maps stage numbers to difficulty tiers.
// Stage 1 uses the first tier; stages past the end of the table reuse the hardest tier.
type DifficultyTable struct {
	tiers []DifficultyTier
}

// NewDifficultyTable creates a table from the configured tiers.
func NewDifficultyTable(cfg DifficultyConfig) *DifficultyTable {
	tiers := make([]DifficultyTier, len(cfg.Tiers))
	copy(tiers, cfg.Tiers)
	return &DifficultyTable{tiers: tiers}
}

// Len returns the number of authored tiers.
func (d *DifficultyTable) Len() int {
	return len(d.tiers)
}

// Tier returns the difficulty of the given stage.
func (d *DifficultyTable) Tier(stage int) DifficultyTier {
	if len(d.tiers) == 0 {
		return DifficultyTier{}
	}
	idx := clampInt(stage-1, 0, len(d.tiers)-1)
	return d.tiers[idx]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
