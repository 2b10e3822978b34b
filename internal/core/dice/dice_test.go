package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		count    int
		sides    int
		modifier int
		min, max int
	}{
		{"1d3", 1, 3, 0, 1, 3},
		{"2d4+1", 2, 4, 1, 3, 9},
		{"3d6-2", 3, 6, -2, 1, 16},
		{"5", 0, 0, 5, 5, 5},
		{" 1D6 + 2 ", 1, 6, 2, 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.count, e.Count)
			assert.Equal(t, tt.sides, e.Sides)
			assert.Equal(t, tt.modifier, e.Modifier)
			assert.Equal(t, tt.min, e.Min())
			assert.Equal(t, tt.max, e.Max())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "d6", "0d6", "2d0", "abc", "2d6+x"} {
		_, err := Parse(in)
		assert.Error(t, err, "expected error for %q", in)
	}
}

func TestRoll_StaysInRange(t *testing.T) {
	r := NewRoller(rand.New(rand.NewSource(7)))
	e := MustParse("2d6+1")
	for i := 0; i < 1000; i++ {
		v := r.Roll(e)
		assert.GreaterOrEqual(t, v, e.Min())
		assert.LessOrEqual(t, v, e.Max())
	}
}

func TestRollString(t *testing.T) {
	r := NewRoller(rand.New(rand.NewSource(1)))
	v, err := r.RollString("4")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = r.RollString("nope")
	assert.Error(t, err)
}

func TestChance_Extremes(t *testing.T) {
	r := NewRoller(rand.New(rand.NewSource(3)))
	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0))
		assert.True(t, r.Chance(1))
	}
}
