package world

import (
	"math"
	"math/rand"
)

// Noise is seeded 2D value noise. The same seed always yields the same field.
type Noise struct {
	perm [512]int
	vals [256]float64
}

// NewNoise builds the lattice from rng
func NewNoise(rng *rand.Rand) *Noise {
	n := &Noise{}
	p := rng.Perm(256)
	for i := 0; i < 256; i++ {
		n.perm[i] = p[i]
		n.perm[i+256] = p[i]
		n.vals[i] = rng.Float64()
	}
	return n
}

func (n *Noise) lattice(x, y int) float64 {
	return n.vals[n.perm[n.perm[x&255]+(y&255)]]
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

// At samples the field at (x, y). The result is in [0, 1].
func (n *Noise) At(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	tx := smooth(x - x0)
	ty := smooth(y - y0)
	ix, iy := int(x0), int(y0)

	a := n.lattice(ix, iy)
	b := n.lattice(ix+1, iy)
	c := n.lattice(ix, iy+1)
	d := n.lattice(ix+1, iy+1)

	top := a + (b-a)*tx
	bottom := c + (d-c)*tx
	return top + (bottom-top)*ty
}

// Fractal sums octaves of the field, halving amplitude and doubling
// frequency each time. The result is normalised to [0, 1].
func (n *Noise) Fractal(x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		sum += n.At(x*freq, y*freq) * amp
		norm += amp
		amp /= 2
		freq *= 2
	}
	return sum / norm
}
