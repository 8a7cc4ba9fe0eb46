package worldgen

import (
	"math"

	"github.com/talgya/legends-sub001/internal/noise"
	"github.com/talgya/legends-sub001/internal/rng"
)

// TemperatureField computes the [0,1] temperature scalar field (spec
// §4.5): latitude-based, cooled by elevation, jittered by noise from
// the layer's own forked stream.
func TemperatureField(stream *rng.Stream, width, height int, elevation [][]float64) [][]float64 {
	n := noise.New(stream)
	field := make([][]float64, height)

	for y := 0; y < height; y++ {
		field[y] = make([]float64, width)
		ny := float64(y) / float64(height)
		latitudeTemp := 1 - 2*math.Abs(ny-0.5)

		for x := 0; x < width; x++ {
			nx := float64(x) / float64(width)
			elev := elevation[y][x]

			t := latitudeTemp
			t -= 1.5 * math.Max(0, elev-0.5)
			t += 0.15 * n.Eval(4*nx, 4*ny)

			field[y][x] = clamp01(t)
		}
	}
	return field
}
