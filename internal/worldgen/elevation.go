// Package worldgen builds the scalar fields and classifies terrain and
// biome for every tile (spec §4.3–§4.9 / layers 3–10 of spec §2): the
// elevation, temperature, and moisture fields, the water-distance
// transform, the terrain and biome decision trees, tile assembly, and
// resource placement.
package worldgen

import (
	"math"

	"github.com/talgya/legends-sub001/internal/noise"
	"github.com/talgya/legends-sub001/internal/rng"
)

var elevationFrequencies = []float64{3, 6, 12, 24}
var elevationAmplitudes = []float64{1, 0.5, 0.25, 0.12}

// ElevationField computes the [0,1] elevation scalar field using the
// layer's own forked noise stream (spec §4.3).
func ElevationField(stream *rng.Stream, width, height int) [][]float64 {
	n := noise.New(stream)
	field := make([][]float64, height)

	for y := 0; y < height; y++ {
		field[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			nx := float64(x) / float64(width)
			ny := float64(y) / float64(height)
			field[y][x] = elevationAt(n, nx, ny)
		}
	}
	return field
}

func elevationAt(n *noise.Noise2D, nx, ny float64) float64 {
	var fbmSum, ampSum float64
	for i, f := range elevationFrequencies {
		fbmSum += n.Eval(nx*f, ny*f) * elevationAmplitudes[i]
		ampSum += elevationAmplitudes[i]
	}
	fbm := fbmSum / ampSum

	ridge := n.Ridge(nx*4, ny*4, 4, 2, 0.5)

	base := 0.7*fbm + 0.3*ridge
	elev := (base + 1) / 2 // remap [-1,1] to [0,1]

	mask1 := continentMask(nx, ny, 0.5, 0.5, 1.8)
	coastJitter := n.Eval(nx*8, ny*8) * 0.05
	elev *= clamp01(mask1 + coastJitter)

	mask2 := continentMask(nx, ny, 0.25, 0.7, 2.0)
	shape2 := (n.FBM(nx*5+100, ny*5+100, 3, 2, 0.5) + 1) / 2
	elev2 := mask2 * shape2 * 0.7

	mask3 := continentMask(nx, ny, 0.75, 0.3, 2.5)
	shape3 := (n.FBM(nx*5+200, ny*5+200, 3, 2, 0.5) + 1) / 2
	elev3 := mask3 * shape3 * 0.55

	elev = math.Max(elev, math.Max(elev2, elev3))

	return clamp01(elev)
}

// continentMask returns an ellipse-falloff weight in [0,1]: 1 at the
// mask center, decaying to 0 with the given distance exponent.
func continentMask(nx, ny, cx, cy, exponent float64) float64 {
	dx := (nx - cx) * 2
	dy := (ny - cy) * 2
	dist := math.Sqrt(dx*dx + dy*dy)
	v := 1 - math.Pow(dist, exponent)
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
