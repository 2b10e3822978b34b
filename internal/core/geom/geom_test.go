package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func trueDistanceOverlap(a Vec3, sizeA float64, b Vec3, sizeB float64) bool {
	return Distance(a, b) < (sizeA+sizeB)/2
}

func TestOverlaps_BoundaryValues(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		sa   float64
		sb   float64
		want bool
	}{
		{"exactly touching", V2(0, 0), V2(10, 0), 10, 10, false},
		{"just inside", V2(0, 0), V2(9.999999, 0), 10, 10, true},
		{"just outside", V2(0, 0), V2(10.000001, 0), 10, 10, false},
		{"same point", V2(5, 5), V2(5, 5), 1, 1, true},
		{"zero sizes same point", V2(5, 5), V2(5, 5), 0, 0, false},
		{"3-4-5 triangle touching", V2(0, 0), V2(3, 4), 5, 5, false},
		{"3-4-5 triangle inside", V2(0, 0), V2(3, 4), 5, 5.0001, true},
		{"elevation counts", Vec3{0, 0, 0}, Vec3{0, 0, 2}, 2, 2, false},
		{"negative coords", V2(-3, -4), V2(0, 0), 6, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.a, tt.sa, tt.b, tt.sb)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, trueDistanceOverlap(tt.a, tt.sa, tt.b, tt.sb), got)
		})
	}
}

func TestOverlaps_AgreesWithTrueDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		// Integer grid keeps the comparison exact on both sides.
		a := V2(float64(rng.Intn(200)-100), float64(rng.Intn(200)-100))
		b := V2(float64(rng.Intn(200)-100), float64(rng.Intn(200)-100))
		sa := float64(rng.Intn(60))
		sb := float64(rng.Intn(60))
		if got, want := Overlaps(a, sa, b, sb), trueDistanceOverlap(a, sa, b, sb); got != want {
			t.Fatalf("Overlaps(%v,%v,%v,%v) = %v, true distance says %v", a, sa, b, sb, got, want)
		}
	}
}

func TestVectorHelpers(t *testing.T) {
	v := V2(3, 4)
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 25.0, v.LengthSquared())
	assert.InDelta(t, 1.0, v.Normalize().Length(), 1e-12)
	assert.True(t, Vec3{}.Normalize().IsZero())
	assert.Equal(t, V2(4, 6), v.Add(V2(1, 2)))
	assert.Equal(t, V2(2, 2), v.Sub(V2(1, 2)))
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 0.0, Clamp(-1, 0, 2))
	assert.InDelta(t, 1.0, FromAngle(math.Pi/3).Length(), 1e-12)
	assert.True(t, Within(V2(0, 0), V2(1, 1), 2))
	assert.False(t, Within(V2(0, 0), V2(2, 0), 2))
}
