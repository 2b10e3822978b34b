package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/pixelrealm/internal/inventory"
)

func ids(qs []*Quest) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestAccept(t *testing.T) {
	tr := NewTracker(DefaultQuests())

	q, err := tr.Accept("slime_cull")
	require.NoError(t, err)
	assert.Equal(t, "Slime Cull", q.Title)

	_, err = tr.Accept("slime_cull")
	assert.ErrorIs(t, err, ErrAlreadyActive)
	_, err = tr.Accept("nope")
	assert.ErrorIs(t, err, ErrUnknownQuest)
	assert.NotContains(t, ids(tr.Available()), "slime_cull")
}

func TestKillObjective(t *testing.T) {
	tr := NewTracker(DefaultQuests())
	_, _ = tr.Accept("slime_cull")
	_, _ = tr.Accept("monster_hunter")

	for i := 0; i < 4; i++ {
		assert.Empty(t, tr.OnKill("slime"))
	}
	assert.Empty(t, tr.OnKill("wolf"))
	done := tr.OnKill("slime")
	assert.Equal(t, []string{"slime_cull"}, ids(done))
	assert.True(t, tr.IsComplete("slime_cull"))

	// Any-kind kill quest counted all six kills
	require.Len(t, tr.Active(), 1)
	assert.Equal(t, 6, tr.Active()[0].Current)

	_, err := tr.Accept("slime_cull")
	assert.ErrorIs(t, err, ErrAlreadyComplete)
}

func TestCollectObjective_TakesItems(t *testing.T) {
	tr := NewTracker(DefaultQuests())
	inv := inventory.New(inventory.DefaultLibrary(), 0)
	_, _ = tr.Accept("herbalist")

	inv.Add("herb", 2)
	assert.Empty(t, tr.CheckItems(inv))
	assert.Equal(t, 2, tr.Active()[0].Current)

	inv.Add("herb", 2)
	done := tr.CheckItems(inv)
	assert.Equal(t, []string{"herbalist"}, ids(done))
	assert.Equal(t, 1, inv.Count("herb"))
	assert.Empty(t, tr.Active())
}

func TestVisitObjective(t *testing.T) {
	tr := NewTracker(DefaultQuests())
	_, _ = tr.Accept("audience")

	assert.Empty(t, tr.OnVisit("FOREST"))
	assert.Equal(t, []string{"audience"}, ids(tr.OnVisit("castle")))
	assert.Equal(t, 1, tr.CompletedCount())
}

func TestDescribe(t *testing.T) {
	name := func(id string) string { return "[" + id + "]" }
	assert.Equal(t, "Defeat 5 [slime]", Kill{Kind: "slime", Count: 5}.Describe(name))
	assert.Equal(t, "Defeat 1 monsters", Kill{}.Describe(name))
	assert.Equal(t, "Bring 3 [herb]", Collect{ItemID: "herb", Count: 3}.Describe(name))
	assert.Equal(t, "Visit [castle]", Visit{Place: "castle"}.Describe(name))
}

func TestExportImport(t *testing.T) {
	tr := NewTracker(DefaultQuests())
	_, _ = tr.Accept("monster_hunter")
	_, _ = tr.Accept("audience")
	tr.OnKill("wolf")
	tr.OnKill("wolf")
	tr.OnVisit("castle")

	state := tr.Export()
	assert.Equal(t, []ActiveState{{ID: "monster_hunter", Progress: 2}}, state.Active)
	assert.Equal(t, []string{"audience"}, state.Completed)

	other := NewTracker(DefaultQuests())
	state.Active = append(state.Active, ActiveState{ID: "retired_quest", Progress: 1})
	skipped := other.Import(state)
	assert.Equal(t, []string{"retired_quest"}, skipped)

	state.Active = state.Active[:1]
	assert.Equal(t, state, other.Export())
}

func TestExport_EmptyIsNotNil(t *testing.T) {
	s := NewTracker(nil).Export()
	assert.NotNil(t, s.Active)
	assert.NotNil(t, s.Completed)
}
