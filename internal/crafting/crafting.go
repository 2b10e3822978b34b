// Package crafting turns ingredients into items over time. A Crafter is a
// state machine advanced by the simulation tick:
//
//	Idle -> InProgress -> Complete -> Idle
//
// Ingredients are taken on Start and refunded on Cancel. Output is
// delivered on the tick the timer runs out; if the inventory has no room it
// waits in Complete and delivery is retried each tick.
package crafting

import (
	"errors"
	"fmt"

	"chosenoffset.com/pixelrealm/internal/inventory"
)

// State is the crafter's phase
type State int

const (
	Idle State = iota
	InProgress
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Recipe defines one craftable item
type Recipe struct {
	ID          string
	Output      inventory.Slot
	Ingredients []inventory.Slot
	Duration    float64 // Seconds at speed 1
}

// DefaultRecipes returns the shipped recipes in priority order
func DefaultRecipes() []Recipe {
	return []Recipe{
		{
			ID:          "health_potion",
			Output:      inventory.Slot{ItemID: "health_potion", Count: 1},
			Ingredients: []inventory.Slot{{ItemID: "herb", Count: 2}},
			Duration:    3,
		},
		{
			ID:          "frost_tonic",
			Output:      inventory.Slot{ItemID: "frost_tonic", Count: 1},
			Ingredients: []inventory.Slot{{ItemID: "ice_shard", Count: 2}, {ItemID: "herb", Count: 1}},
			Duration:    4,
		},
		{
			ID:          "bone_charm",
			Output:      inventory.Slot{ItemID: "bone_charm", Count: 1},
			Ingredients: []inventory.Slot{{ItemID: "bone", Count: 3}, {ItemID: "wood", Count: 1}},
			Duration:    6,
		},
		{
			ID:          "ember_charm",
			Output:      inventory.Slot{ItemID: "ember_charm", Count: 1},
			Ingredients: []inventory.Slot{{ItemID: "ember", Count: 3}, {ItemID: "stone", Count: 2}},
			Duration:    8,
		},
	}
}

// Errors returned by Start and Cancel
var (
	ErrBusy               = errors.New("already crafting")
	ErrMissingIngredients = errors.New("missing ingredients")
	ErrUnknownRecipe      = errors.New("unknown recipe")
	ErrNotCrafting        = errors.New("nothing to cancel")
)

// Crafter runs one recipe at a time against an inventory
type Crafter struct {
	inv     *inventory.Inventory
	recipes []Recipe
	speed   float64

	state   State
	current *Recipe
	elapsed float64
}

// NewCrafter creates a crafter. speed scales how fast time passes for
// recipes; values <= 0 mean 1.
func NewCrafter(inv *inventory.Inventory, recipes []Recipe, speed float64) *Crafter {
	if speed <= 0 {
		speed = 1
	}
	return &Crafter{inv: inv, recipes: recipes, speed: speed}
}

// State returns the current phase
func (c *Crafter) State() State {
	return c.state
}

// Current returns the recipe being crafted, or nil when idle
func (c *Crafter) Current() *Recipe {
	return c.current
}

// Elapsed returns the recipe seconds accumulated on the current recipe
func (c *Crafter) Elapsed() float64 {
	return c.elapsed
}

// Progress returns completion of the current recipe in [0, 1]
func (c *Crafter) Progress() float64 {
	switch c.state {
	case InProgress:
		if c.current.Duration <= 0 {
			return 1
		}
		return min(c.elapsed/c.current.Duration, 1)
	case Complete:
		return 1
	default:
		return 0
	}
}

// Recipes returns every known recipe
func (c *Crafter) Recipes() []Recipe {
	return c.recipes
}

// CanCraft reports whether the inventory holds the recipe's ingredients
func (c *Crafter) CanCraft(r *Recipe) bool {
	for _, in := range r.Ingredients {
		if !c.inv.Has(in.ItemID, in.Count) {
			return false
		}
	}
	return true
}

// FirstAvailable returns the first recipe whose ingredients are on hand
func (c *Crafter) FirstAvailable() (*Recipe, bool) {
	for i := range c.recipes {
		if c.CanCraft(&c.recipes[i]) {
			return &c.recipes[i], true
		}
	}
	return nil, false
}

// Start takes the ingredients and begins crafting
func (c *Crafter) Start(recipeID string) (*Recipe, error) {
	if c.state != Idle {
		return nil, ErrBusy
	}
	r := c.find(recipeID)
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecipe, recipeID)
	}
	if !c.inv.RemoveAll(r.Ingredients) {
		return nil, ErrMissingIngredients
	}

	c.state = InProgress
	c.current = r
	c.elapsed = 0
	return r, nil
}

// Resume puts a recipe back in progress with elapsed seconds already done.
// It is used when loading a save; the ingredients were taken before the
// save was written, so none are taken here.
func (c *Crafter) Resume(recipeID string, elapsed float64) error {
	if c.state != Idle {
		return ErrBusy
	}
	r := c.find(recipeID)
	if r == nil {
		return fmt.Errorf("%w: %s", ErrUnknownRecipe, recipeID)
	}
	c.state = InProgress
	c.current = r
	c.elapsed = max(elapsed, 0)
	if c.elapsed >= r.Duration {
		c.state = Complete
	}
	return nil
}

func (c *Crafter) find(id string) *Recipe {
	for i := range c.recipes {
		if c.recipes[i].ID == id {
			return &c.recipes[i]
		}
	}
	return nil
}

// Step advances the timer and returns the recipe whose output was delivered
// this tick, if any.
func (c *Crafter) Step(dt float64) *Recipe {
	switch c.state {
	case InProgress:
		c.elapsed += dt * c.speed
		if c.elapsed < c.current.Duration {
			return nil
		}
		c.state = Complete
		fallthrough
	case Complete:
		out := c.current.Output
		if !c.inv.CanAdd(out.ItemID, out.Count) {
			return nil
		}
		c.inv.Add(out.ItemID, out.Count)
		done := c.current
		c.reset()
		return done
	default:
		return nil
	}
}

// Cancel stops an in-progress recipe and refunds its ingredients. Refunds
// bypass slot limits so nothing is lost.
func (c *Crafter) Cancel() (*Recipe, error) {
	if c.state != InProgress {
		return nil, ErrNotCrafting
	}
	r := c.current
	refund := make([]inventory.Slot, 0, len(r.Ingredients))
	refund = append(refund, c.inv.Items()...)
	refund = append(refund, r.Ingredients...)
	c.inv.Restore(refund)

	c.reset()
	return r, nil
}

func (c *Crafter) reset() {
	c.state = Idle
	c.current = nil
	c.elapsed = 0
}
