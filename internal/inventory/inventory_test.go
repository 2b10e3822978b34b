package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_StackLimit(t *testing.T) {
	inv := New(DefaultLibrary(), 0)

	assert.Equal(t, 8, inv.Add("health_potion", 8))
	assert.Equal(t, 2, inv.Add("health_potion", 5), "clamped at max stack 10")
	assert.Equal(t, 0, inv.Add("health_potion", 1))
	assert.Equal(t, 10, inv.Count("health_potion"))

	// Gold has no stack limit
	assert.Equal(t, 5000, inv.Add(Gold, 5000))
}

func TestAdd_SlotLimit(t *testing.T) {
	inv := New(DefaultLibrary(), 2)
	assert.Equal(t, 1, inv.Add("wood", 1))
	assert.Equal(t, 1, inv.Add("stone", 1))
	assert.True(t, inv.IsFull())

	assert.Equal(t, 0, inv.Add("herb", 1), "new type refused when full")
	assert.False(t, inv.CanAdd("herb", 1))
	assert.Equal(t, 3, inv.Add("wood", 3), "existing type still stacks")
	assert.True(t, inv.CanAdd("wood", 95))
	assert.False(t, inv.CanAdd("wood", 96))
}

func TestAdd_NonPositive(t *testing.T) {
	inv := New(nil, 0)
	assert.Equal(t, 0, inv.Add("x", 0))
	assert.Equal(t, 0, inv.Add("x", -3))
	assert.Equal(t, 0, inv.Distinct())
}

func TestRemove(t *testing.T) {
	inv := New(nil, 0)
	inv.Add("wood", 3)

	assert.False(t, inv.Remove("wood", 4))
	assert.Equal(t, 3, inv.Count("wood"))
	assert.True(t, inv.Remove("wood", 3))
	assert.Equal(t, 0, inv.Distinct(), "emptied slot is freed")
	assert.True(t, inv.Remove("wood", 0))
}

func TestRemoveAll_AllOrNothing(t *testing.T) {
	inv := New(nil, 0)
	inv.Add("herb", 2)
	inv.Add("moss", 1)

	ok := inv.RemoveAll([]Slot{{ItemID: "herb", Count: 2}, {ItemID: "moss", Count: 2}})
	assert.False(t, ok)
	assert.Equal(t, 2, inv.Count("herb"))

	ok = inv.RemoveAll([]Slot{{ItemID: "herb", Count: 2}, {ItemID: "moss", Count: 1}})
	assert.True(t, ok)
	assert.Equal(t, 0, inv.Total())
}

func TestItemsSortedAndRestore(t *testing.T) {
	inv := New(DefaultLibrary(), 0)
	inv.Add("wood", 2)
	inv.Add("bone", 1)
	items := inv.Items()
	assert.Equal(t, []Slot{{ItemID: "bone", Count: 1}, {ItemID: "wood", Count: 2}}, items)

	other := New(DefaultLibrary(), 1)
	other.Restore(append(items, Slot{ItemID: "ghost", Count: 0}))
	assert.Equal(t, items, other.Items(), "restore ignores limits and drops empty slots")
}

func TestOnChange(t *testing.T) {
	inv := New(nil, 0)
	calls := 0
	inv.OnChange = func() {
		calls++
		_ = inv.Total() // callback may read without deadlocking
	}
	inv.Add("a", 1)
	inv.Add("a", 0)
	inv.Remove("a", 1)
	inv.Clear()
	assert.Equal(t, 3, calls)
	assert.Equal(t, "Inventory{0 items, 0 total}", inv.String())
}

func TestLoadLibrary_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	data := `{"name":"mod","items":{"crystal":{"kind":"resource","max_stack":5},"wood":{"name":"Oak","max_stack":3}}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, "mod", lib.Name)
	assert.Equal(t, "crystal", lib.DisplayName("crystal"))
	assert.Equal(t, 5, lib.StackLimit("crystal"))
	assert.Equal(t, "Oak", lib.DisplayName("wood"))
	assert.NotNil(t, lib.Get(Gold))
	assert.Contains(t, lib.IDs(), "health_potion")

	_, err = LoadLibrary(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDisplayName_Fallback(t *testing.T) {
	lib := DefaultLibrary()
	assert.Equal(t, "Ice Shard", lib.DisplayName("ice_shard"))
	assert.Equal(t, "mystery", lib.DisplayName("mystery"))
	assert.Equal(t, 0, lib.StackLimit("mystery"))
}
