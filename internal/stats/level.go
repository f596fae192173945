package stats

// Tier is a closed-open XP range [Min, Max). Max == 0 marks the open-ended top tier.
type Tier struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Min   int    `json:"min"`
	Max   int    `json:"max,omitempty"`
}

var Tiers = []Tier{
	{Level: 1, Title: "Seeker", Min: 0, Max: 500},
	{Level: 2, Title: "Explorer", Min: 500, Max: 1500},
	{Level: 3, Title: "Practitioner", Min: 1500, Max: 3000},
	{Level: 4, Title: "Achiever", Min: 3000, Max: 5000},
	{Level: 5, Title: "Master", Min: 5000, Max: 8000},
	{Level: 6, Title: "Enlightened", Min: 8000},
}

type LevelInfo struct {
	Tier
	XP int `json:"xp"`
	// XPToNext is 0 on the top tier.
	XPToNext int `json:"xpToNext"`
	// Progress within the tier, 0..1. Always 1 on the top tier.
	Progress float64 `json:"progress"`
}

func LevelFor(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}
	for _, t := range Tiers {
		if t.Max == 0 || xp < t.Max {
			info := LevelInfo{Tier: t, XP: xp, Progress: 1}
			if t.Max != 0 {
				info.XPToNext = t.Max - xp
				info.Progress = float64(xp-t.Min) / float64(t.Max-t.Min)
			}
			return info
		}
	}
	// unreachable: the last tier is open-ended
	return LevelInfo{Tier: Tiers[len(Tiers)-1], XP: xp, Progress: 1}
}
