package worldgen

import (
	"math"

	"github.com/talgya/legends-sub001/internal/noise"
	"github.com/talgya/legends-sub001/internal/rng"
)

var moistureFrequencies = []float64{3, 6, 12}
var moistureAmplitudes = []float64{1, 0.5, 0.25}

// MoistureField computes the [0,1] moisture scalar field (spec §4.6)
// using the layer's own forked noise stream, modulated by water
// distance and elevation.
func MoistureField(stream *rng.Stream, width, height int, waterDist [][]int, elevation [][]float64) [][]float64 {
	n := noise.New(stream)
	field := make([][]float64, height)

	for y := 0; y < height; y++ {
		field[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			nx := float64(x) / float64(width)
			ny := float64(y) / float64(height)

			var sum, ampSum float64
			for i, f := range moistureFrequencies {
				sum += n.Eval(nx*f, ny*f) * moistureAmplitudes[i]
				ampSum += moistureAmplitudes[i]
			}
			m := (sum/ampSum + 1) / 2 // remap to [0,1]

			waterInfluence := math.Max(0, 1-float64(waterDist[y][x])/15)
			m = 0.6*m + 0.4*waterInfluence

			m += (1 - elevation[y][x]) * 0.2

			field[y][x] = clamp01(m)
		}
	}
	return field
}
