package quest

import "chosenoffset.com/pixelrealm/internal/inventory"

// DefaultQuests returns the shipped quest set
func DefaultQuests() []*Quest {
	return []*Quest{
		{
			ID:          "slime_cull",
			Title:       "Slime Cull",
			Description: "The slimes are multiplying again.",
			Objective:   Kill{Kind: "slime", Count: 5},
			Reward:      Reward{Experience: 30, Gold: 15},
		},
		{
			ID:          "monster_hunter",
			Title:       "Monster Hunter",
			Description: "Thin out whatever prowls the wilds.",
			Objective:   Kill{Count: 12},
			Reward:      Reward{Experience: 80, Gold: 40},
		},
		{
			ID:          "golem_breaker",
			Title:       "Golem Breaker",
			Description: "Topple a volcanic golem.",
			Objective:   Kill{Kind: "golem", Count: 1},
			Reward:      Reward{Experience: 120, Gold: 60, Items: []inventory.Slot{{ItemID: "ember_charm", Count: 1}}},
		},
		{
			ID:          "herbalist",
			Title:       "The Herbalist",
			Description: "Bring fresh herbs to the castle.",
			Objective:   Collect{ItemID: "herb", Count: 3},
			Reward:      Reward{Experience: 25, Items: []inventory.Slot{{ItemID: "health_potion", Count: 2}}},
		},
		{
			ID:          "bone_collector",
			Title:       "Bone Collector",
			Description: "Old bones make good charms.",
			Objective:   Collect{ItemID: "bone", Count: 4},
			Reward:      Reward{Experience: 30, Gold: 20},
		},
		{
			ID:          "audience",
			Title:       "An Audience",
			Description: "Present yourself at the castle.",
			Objective:   Visit{Place: "castle"},
			Reward:      Reward{Experience: 10, Gold: 5},
		},
	}
}
