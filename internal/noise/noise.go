// Package noise implements the gradient noise source described in spec
// §4.2: a simplex-style 2D noise field whose permutation table is built
// from the pipeline's own forked RNG, plus fBm and ridge-noise variants
// layered on top of it.
package noise

import (
	"math"

	"github.com/talgya/legends-sub001/internal/rng"
)

var grad3 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

const (
	f2 = 0.36602540378443864676 // 0.5*(sqrt(3)-1)
	g2 = 0.21132486540518711775 // (3-sqrt(3))/6
)

// Noise2D is a seeded 2D simplex-style noise field.
type Noise2D struct {
	perm [512]int
}

// New builds a noise field by shuffling the identity permutation 0..255
// with the given stream, then doubling it to 512 entries to avoid
// modular wrap-around in the lattice-corner lookups.
func New(s *rng.Stream) *Noise2D {
	base := make([]int, 256)
	for i := range base {
		base[i] = i
	}
	rng.Shuffle(s, base)

	n := &Noise2D{}
	for i := 0; i < 512; i++ {
		n.perm[i] = base[i%256]
	}
	return n
}

// Eval returns simplex-style noise at (x,y), scaled to approximately
// [-1,1].
func (n *Noise2D) Eval(x, y float64) float64 {
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0Origin := i - t
	y0Origin := j - t
	x0 := x - x0Origin
	y0 := y - y0Origin

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	gi0 := n.perm[ii+n.perm[jj]] % 12
	gi1 := n.perm[ii+i1+n.perm[jj+j1]] % 12
	gi2 := n.perm[ii+1+n.perm[jj+1]] % 12

	n0 := corner(gi0, x0, y0)
	n1 := corner(gi1, x1, y1)
	n2 := corner(gi2, x2, y2)

	return 70 * (n0 + n1 + n2)
}

func corner(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y)
}

// FBM sums amplitude-weighted noise at geometrically growing
// frequencies, normalised by the summed amplitude.
func (n *Noise2D) FBM(x, y float64, octaves int, lacunarity, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		total += n.Eval(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}

// Ridge computes ridged noise: 1-|noise|, squared per octave to sharpen
// ridgelines, summed and normalised the same way as FBM.
func (n *Noise2D) Ridge(x, y float64, octaves int, lacunarity, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		v := 1 - math.Abs(n.Eval(x*frequency, y*frequency))
		v *= v
		total += v * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}
