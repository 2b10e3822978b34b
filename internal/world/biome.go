package world

import (
	"fmt"
	"image/color"
	"strings"

	"chosenoffset.com/pixelrealm/internal/core/dice"
)

// Biome names a terrain theme. Biome names double as region identifiers.
type Biome string

// Shipped biomes
const (
	Forest  Biome = "FOREST"
	Desert  Biome = "DESERT"
	Snow    Biome = "SNOW"
	Swamp   Biome = "SWAMP"
	Volcano Biome = "VOLCANO"
)

// Resource is one entry of a biome's loot table
type Resource struct {
	Item   string    // Item ID in the inventory library
	Count  dice.Expr // Quantity rolled on drop
	Chance float64   // Drop probability per defeat
}

// BiomeInfo describes everything the generator and controller need to know
// about a biome
type BiomeInfo struct {
	Name        Biome
	Title       string
	Description string
	Difficulty  int // Added to the encounter base count

	Ground  color.RGBA
	Accent  color.RGBA
	Pattern string // sprite.Pattern* name for ground tiles

	Obstacles   []string // Sprite names of solid obstacles
	Decorations []color.RGBA
	Roster      []string // Monster kinds that spawn here
	Resources   []Resource
}

var biomes = []BiomeInfo{
	{
		Name:        Forest,
		Title:       "Whispering Forest",
		Description: "Dense woods. Slimes and wolves.",
		Difficulty:  0,
		Ground:      color.RGBA{70, 130, 60, 255},
		Accent:      color.RGBA{95, 165, 75, 255},
		Pattern:     "speckle",
		Obstacles:   []string{"tree", "tree", "rock"},
		Decorations: []color.RGBA{{230, 80, 120, 255}, {250, 230, 90, 255}, {120, 190, 90, 255}},
		Roster:      []string{"slime", "wolf"},
		Resources: []Resource{
			{Item: "wood", Count: dice.MustParse("1d2"), Chance: 0.6},
			{Item: "herb", Count: dice.MustParse("1"), Chance: 0.3},
		},
	},
	{
		Name:        Desert,
		Title:       "Scorched Dunes",
		Description: "Open sand and scorpions.",
		Difficulty:  1,
		Ground:      color.RGBA{215, 190, 120, 255},
		Accent:      color.RGBA{190, 160, 95, 255},
		Pattern:     "waves",
		Obstacles:   []string{"cactus", "rock"},
		Decorations: []color.RGBA{{235, 230, 215, 255}, {170, 140, 90, 255}},
		Roster:      []string{"scorpion", "slime"},
		Resources: []Resource{
			{Item: "bone", Count: dice.MustParse("1d2"), Chance: 0.5},
			{Item: "stone", Count: dice.MustParse("1"), Chance: 0.4},
		},
	},
	{
		Name:        Snow,
		Title:       "Frostpeak Tundra",
		Description: "Frozen plains. Yetis roam.",
		Difficulty:  2,
		Ground:      color.RGBA{225, 235, 245, 255},
		Accent:      color.RGBA{190, 210, 230, 255},
		Pattern:     "speckle",
		Obstacles:   []string{"ice_rock", "snow_tree"},
		Decorations: []color.RGBA{{255, 255, 255, 255}, {170, 200, 230, 255}},
		Roster:      []string{"yeti", "wisp"},
		Resources: []Resource{
			{Item: "ice_shard", Count: dice.MustParse("1d2"), Chance: 0.5},
			{Item: "stone", Count: dice.MustParse("1"), Chance: 0.3},
		},
	},
	{
		Name:        Swamp,
		Title:       "Murkwater Bog",
		Description: "Sinking ground and lurkers.",
		Difficulty:  2,
		Ground:      color.RGBA{75, 95, 60, 255},
		Accent:      color.RGBA{60, 80, 70, 255},
		Pattern:     "waves",
		Obstacles:   []string{"dead_tree", "rock"},
		Decorations: []color.RGBA{{110, 140, 80, 255}, {90, 70, 110, 255}},
		Roster:      []string{"bog_lurker", "slime", "wisp"},
		Resources: []Resource{
			{Item: "moss", Count: dice.MustParse("1d3"), Chance: 0.6},
			{Item: "herb", Count: dice.MustParse("1"), Chance: 0.3},
		},
	},
	{
		Name:        Volcano,
		Title:       "Ashen Caldera",
		Description: "Lava fields. Golems.",
		Difficulty:  3,
		Ground:      color.RGBA{60, 45, 40, 255},
		Accent:      color.RGBA{200, 70, 20, 255},
		Pattern:     "cracks",
		Obstacles:   []string{"lava_rock", "rock"},
		Decorations: []color.RGBA{{255, 120, 30, 255}, {90, 80, 75, 255}},
		Roster:      []string{"fire_imp", "golem"},
		Resources: []Resource{
			{Item: "ember", Count: dice.MustParse("1d2"), Chance: 0.5},
			{Item: "stone", Count: dice.MustParse("1d2"), Chance: 0.4},
		},
	},
}

// Biomes returns every biome in menu order
func Biomes() []BiomeInfo {
	out := make([]BiomeInfo, len(biomes))
	copy(out, biomes)
	return out
}

// LookupBiome finds a biome by name, case-insensitively
func LookupBiome(name string) (BiomeInfo, error) {
	for _, b := range biomes {
		if strings.EqualFold(string(b.Name), name) {
			return b, nil
		}
	}
	return BiomeInfo{}, fmt.Errorf("unknown biome %q", name)
}
