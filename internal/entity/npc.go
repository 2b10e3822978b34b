package entity

import (
	"math"
	"math/rand"

	"chosenoffset.com/pixelrealm/internal/core/geom"
	"chosenoffset.com/pixelrealm/internal/dialogue"
)

// NPC is a friendly castle resident offering services
type NPC struct {
	ID       string
	Name     string
	Sprite   string
	Greeting string
	Services []dialogue.Service

	Pos    geom.Vec3
	Home   geom.Vec3
	Size   float64
	Speed  float64
	Roam   float64 // Max wander distance from Home
	Facing geom.Vec3

	wanderDir   geom.Vec3
	wanderTimer float64
}

// Update wanders near home. NPCs stand still while the player is within
// talk range.
func (n *NPC) Update(dt float64, player geom.Vec3, talkRange float64, area Blocker, rng *rand.Rand) {
	if geom.Within(n.Pos, player, talkRange) {
		n.Facing = player.Sub(n.Pos).Normalize()
		return
	}

	n.wanderTimer -= dt
	if n.wanderTimer <= 0 {
		n.wanderTimer = 1.5 + rng.Float64()*2.5
		switch {
		case !geom.Within(n.Pos, n.Home, n.Roam):
			n.wanderDir = n.Home.Sub(n.Pos).Normalize()
		case rng.Float64() < 0.5:
			n.wanderDir = geom.Vec3{}
		default:
			n.wanderDir = geom.FromAngle(rng.Float64() * 2 * math.Pi)
		}
	}
	if n.wanderDir.IsZero() {
		return
	}

	next := n.Pos.Add(n.wanderDir.Scale(n.Speed * dt))
	if area.Blocked(next, n.Size) {
		n.wanderTimer = 0
		return
	}
	n.Pos = next
	n.Facing = n.wanderDir
}

// InReach reports whether pos is close enough to talk
func (n *NPC) InReach(pos geom.Vec3, reach float64) bool {
	return geom.Within(n.Pos, pos, reach+n.Size/2)
}

// DefaultNPCs builds the castle residents at the given spawn points. Extra
// spawn points are ignored; missing ones drop residents.
func DefaultNPCs(spawns []geom.Vec3) []*NPC {
	templates := []NPC{
		{
			ID: "merchant", Name: "Mara the Merchant", Sprite: "npc",
			Greeting: "Finest goods this side of the caldera.",
			Services: []dialogue.Service{
				dialogue.Shop{Stock: []dialogue.Offer{
					{ItemID: "health_potion", Price: 12},
					{ItemID: "frost_tonic", Price: 15},
				}},
			},
		},
		{
			ID: "healer", Name: "Brother Aldous", Sprite: "npc",
			Greeting: "Rest a moment, traveller.",
			Services: []dialogue.Service{
				dialogue.Heal{Cost: 5},
				dialogue.QuestOffer{QuestID: "herbalist"},
			},
		},
		{
			ID: "captain", Name: "Captain Reyna", Sprite: "npc",
			Greeting: "The wilds need clearing.",
			Services: []dialogue.Service{
				dialogue.QuestOffer{QuestID: "slime_cull"},
				dialogue.QuestOffer{QuestID: "monster_hunter"},
				dialogue.QuestOffer{QuestID: "golem_breaker"},
				dialogue.QuestOffer{QuestID: "bone_collector"},
			},
		},
	}

	npcs := make([]*NPC, 0, len(templates))
	for i := range templates {
		if i >= len(spawns) {
			break
		}
		n := templates[i]
		n.Pos = spawns[i]
		n.Home = spawns[i]
		n.Size = 22
		n.Speed = 30
		n.Roam = 60
		n.Facing = geom.V2(0, 1)
		npcs = append(npcs, &n)
	}
	return npcs
}
