package save

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/pixelrealm/internal/inventory"
	"chosenoffset.com/pixelrealm/internal/quest"
)

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Version:   Version,
		Timestamp: time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC),
		Player: PlayerState{
			Level:      4,
			Experience: 37,
			Health:     81,
			MaxHealth:  130,
			Position:   Position{X: 1204.5, Y: 88.25},
			Weapon:     2,
		},
		CurrentRegion:     "SNOW",
		Location:          "castle",
		Seed:              424242,
		TimeOfDay:         0.625,
		DiscoveredRegions: []string{"FOREST", "SNOW"},
		Inventory: []inventory.Slot{
			{ItemID: "gold", Count: 55},
			{ItemID: "ice_shard", Count: 3},
		},
		Quests: quest.State{
			Active:    []quest.ActiveState{{ID: "slime_cull", Progress: 2}},
			Completed: []string{"audience"},
		},
		UsedShrines: []string{"shrine-1"},
		Score:       930,
		Crafting:    &CraftingState{Recipe: "frost_tonic", Elapsed: 1.5},
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := sampleSnapshot()
	data, err := Encode(s)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecode_FillsDefaults(t *testing.T) {
	got, err := Decode([]byte(`{"version":"0.9","score":12}`))
	require.NoError(t, err)

	assert.Equal(t, "0.9", got.Version, "version string is kept")
	assert.Equal(t, 12, got.Score)
	assert.Equal(t, 1, got.Player.Level)
	assert.Equal(t, 100, got.Player.MaxHealth)
	assert.Equal(t, 100, got.Player.Health)
	assert.Equal(t, "overworld", got.Location)
	assert.NotNil(t, got.Quests.Active)
	assert.NotNil(t, got.Quests.Completed)
}

func TestDecode_ClampsHealth(t *testing.T) {
	got, err := Decode([]byte(`{"player":{"health":500,"max_health":120}}`))
	require.NoError(t, err)
	assert.Equal(t, 120, got.Player.Health)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"score":`))
	assert.Error(t, err)
}

func TestPreferences_DefaultsAndClamp(t *testing.T) {
	p, err := DecodePreferences([]byte(`{"music_volume":3,"muted":true}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.MusicVolume)
	assert.Equal(t, DefaultPreferences().MasterVolume, p.MasterVolume)
	assert.True(t, p.Muted)

	data, err := EncodePreferences(p)
	require.NoError(t, err)
	again, err := DecodePreferences(data)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	log := zerolog.Nop()

	fs, err := NewFileStore(filepath.Join(t.TempDir(), "saves"), log)
	require.NoError(t, err)

	mem, err := OpenSQLite("", log)
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })

	onDisk, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "saves.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { onDisk.Close() })

	return map[string]Store{"file": fs, "sqlite-memory": mem, "sqlite-file": onDisk}
}

func TestStores_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSnapshot(ctx, store, DefaultSlot)
			assert.ErrorIs(t, err, ErrNotFound)

			s := sampleSnapshot()
			require.NoError(t, SaveSnapshot(ctx, store, DefaultSlot, s))
			got, err := LoadSnapshot(ctx, store, DefaultSlot)
			require.NoError(t, err)
			assert.Equal(t, s, got)

			// Overwrite in place
			s.Score = 1000
			require.NoError(t, SaveSnapshot(ctx, store, DefaultSlot, s))
			got, err = LoadSnapshot(ctx, store, DefaultSlot)
			require.NoError(t, err)
			assert.Equal(t, 1000, got.Score)

			require.NoError(t, store.Delete(ctx, DefaultSlot))
			_, err = store.Load(ctx, DefaultSlot)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.NoError(t, store.Delete(ctx, DefaultSlot), "deleting twice is fine")
		})
	}
}

func TestStores_PreferencesAreSeparate(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			p, err := LoadPreferences(ctx, store)
			require.NoError(t, err)
			assert.Equal(t, DefaultPreferences(), p)

			p.Muted = true
			p.SfxVolume = 0.25
			require.NoError(t, SavePreferences(ctx, store, p))
			require.NoError(t, SaveSnapshot(ctx, store, DefaultSlot, sampleSnapshot()))
			require.NoError(t, store.Delete(ctx, DefaultSlot))

			got, err := LoadPreferences(ctx, store)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}
}

func TestStores_RejectBadKeys(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, store.Save(ctx, "../escape", []byte(`{}`)))
			_, err := store.Load(ctx, "")
			assert.Error(t, err)
		})
	}
}

func TestFileStore_CancelledContext(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, fs.Save(ctx, DefaultSlot, []byte(`{}`)), context.Canceled)
}
