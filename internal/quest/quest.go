// Package quest tracks quest objectives and completion. Objectives are a
// closed sum type: Kill, Collect and Visit. The tracker never reaches into
// the game; callers feed it events and apply the returned rewards.
package quest

import (
	"errors"
	"fmt"
	"sort"

	"chosenoffset.com/pixelrealm/internal/inventory"
)

// Objective is what a quest asks for
type Objective interface {
	// Target is the count needed to complete
	Target() int
	Describe(names func(id string) string) string
	isObjective()
}

// Kill asks for monsters of a kind to be defeated. An empty Kind counts any
// monster.
type Kill struct {
	Kind  string
	Count int
}

// Collect asks for items to be held. The items are handed over on
// completion.
type Collect struct {
	ItemID string
	Count  int
}

// Visit asks the player to reach a place: a region name or "castle".
type Visit struct {
	Place string
}

func (k Kill) Target() int    { return max(k.Count, 1) }
func (c Collect) Target() int { return max(c.Count, 1) }
func (Visit) Target() int     { return 1 }

func (Kill) isObjective()    {}
func (Collect) isObjective() {}
func (Visit) isObjective()   {}

func (k Kill) Describe(names func(string) string) string {
	if k.Kind == "" {
		return fmt.Sprintf("Defeat %d monsters", k.Target())
	}
	return fmt.Sprintf("Defeat %d %s", k.Target(), names(k.Kind))
}

func (c Collect) Describe(names func(string) string) string {
	return fmt.Sprintf("Bring %d %s", c.Target(), names(c.ItemID))
}

func (v Visit) Describe(names func(string) string) string {
	return fmt.Sprintf("Visit %s", names(v.Place))
}

// Reward is granted on completion
type Reward struct {
	Experience int
	Gold       int
	Items      []inventory.Slot
}

// Quest is a quest definition
type Quest struct {
	ID          string
	Title       string
	Description string
	Objective   Objective
	Reward      Reward
}

// Progress is an accepted quest and how far along it is
type Progress struct {
	Quest   *Quest
	Current int
}

// Done reports whether the objective is met
func (p *Progress) Done() bool {
	return p.Current >= p.Quest.Objective.Target()
}

// Errors returned by Accept
var (
	ErrUnknownQuest    = errors.New("unknown quest")
	ErrAlreadyActive   = errors.New("quest already active")
	ErrAlreadyComplete = errors.New("quest already completed")
)

// Tracker holds active and completed quests
type Tracker struct {
	library   map[string]*Quest
	active    map[string]*Progress
	order     []string // Acceptance order of active quests
	completed map[string]bool
}

// NewTracker creates a tracker over a quest library
func NewTracker(library []*Quest) *Tracker {
	t := &Tracker{
		library:   make(map[string]*Quest, len(library)),
		active:    make(map[string]*Progress),
		completed: make(map[string]bool),
	}
	for _, q := range library {
		t.library[q.ID] = q
	}
	return t
}

// Lookup returns a quest definition
func (t *Tracker) Lookup(id string) (*Quest, bool) {
	q, ok := t.library[id]
	return q, ok
}

// Accept starts a quest
func (t *Tracker) Accept(id string) (*Quest, error) {
	q, ok := t.library[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuest, id)
	}
	if t.completed[id] {
		return nil, ErrAlreadyComplete
	}
	if _, ok := t.active[id]; ok {
		return nil, ErrAlreadyActive
	}
	t.active[id] = &Progress{Quest: q}
	t.order = append(t.order, id)
	return q, nil
}

// Active returns active quests in acceptance order
func (t *Tracker) Active() []*Progress {
	out := make([]*Progress, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.active[id])
	}
	return out
}

// IsComplete reports whether a quest has been completed
func (t *Tracker) IsComplete(id string) bool {
	return t.completed[id]
}

// CompletedCount returns how many quests have been completed
func (t *Tracker) CompletedCount() int {
	return len(t.completed)
}

// Available returns library quests neither active nor completed, sorted by ID
func (t *Tracker) Available() []*Quest {
	var out []*Quest
	for id, q := range t.library {
		if _, ok := t.active[id]; ok || t.completed[id] {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OnKill records a monster defeat and returns quests completed by it
func (t *Tracker) OnKill(kind string) []*Quest {
	return t.advance(func(o Objective, cur int) int {
		if k, ok := o.(Kill); ok && (k.Kind == "" || k.Kind == kind) {
			return cur + 1
		}
		return cur
	}, nil)
}

// OnVisit records reaching a place and returns quests completed by it
func (t *Tracker) OnVisit(place string) []*Quest {
	return t.advance(func(o Objective, cur int) int {
		if v, ok := o.(Visit); ok && v.Place == place {
			return 1
		}
		return cur
	}, nil)
}

// CheckItems refreshes collect objectives from the inventory. Completed
// collect quests take their items from inv.
func (t *Tracker) CheckItems(inv *inventory.Inventory) []*Quest {
	return t.advance(func(o Objective, cur int) int {
		if c, ok := o.(Collect); ok {
			return min(inv.Count(c.ItemID), c.Target())
		}
		return cur
	}, func(q *Quest) bool {
		c := q.Objective.(Collect)
		return inv.Remove(c.ItemID, c.Target())
	})
}

// advance applies step to every active objective. finish, if set, must
// succeed before a quest is marked complete.
func (t *Tracker) advance(step func(Objective, int) int, finish func(*Quest) bool) []*Quest {
	var done []*Quest
	kept := t.order[:0]
	for _, id := range t.order {
		p := t.active[id]
		switch p.Quest.Objective.(type) {
		case Kill, Collect, Visit:
			p.Current = step(p.Quest.Objective, p.Current)
		default:
			panic(fmt.Sprintf("quest: unhandled objective %T", p.Quest.Objective))
		}
		if p.Done() && (finish == nil || finish(p.Quest)) {
			delete(t.active, id)
			t.completed[id] = true
			done = append(done, p.Quest)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
	return done
}

// ActiveState is the persisted form of an active quest
type ActiveState struct {
	ID       string `json:"id"`
	Progress int    `json:"progress"`
}

// State is the persisted form of the tracker
type State struct {
	Active    []ActiveState `json:"active"`
	Completed []string      `json:"completed"`
}

// Export captures the tracker for saving
func (t *Tracker) Export() State {
	s := State{Active: []ActiveState{}, Completed: []string{}}
	for _, id := range t.order {
		s.Active = append(s.Active, ActiveState{ID: id, Progress: t.active[id].Current})
	}
	for id := range t.completed {
		s.Completed = append(s.Completed, id)
	}
	sort.Strings(s.Completed)
	return s
}

// Import replaces tracker contents from a save. Unknown quest IDs are
// skipped and returned.
func (t *Tracker) Import(s State) (skipped []string) {
	t.active = make(map[string]*Progress)
	t.order = nil
	t.completed = make(map[string]bool)

	for _, id := range s.Completed {
		if _, ok := t.library[id]; !ok {
			skipped = append(skipped, id)
			continue
		}
		t.completed[id] = true
	}
	for _, a := range s.Active {
		q, ok := t.library[a.ID]
		if !ok || t.completed[a.ID] {
			skipped = append(skipped, a.ID)
			continue
		}
		if _, dup := t.active[a.ID]; dup {
			continue
		}
		t.active[a.ID] = &Progress{Quest: q, Current: a.Progress}
		t.order = append(t.order, a.ID)
	}
	return skipped
}
