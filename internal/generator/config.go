// Package generator orchestrates the full world-generation pipeline:
// it forks one child RNG stream per layer, in the fixed order spec §9
// requires, runs each layer's package in turn, and assembles the
// result into a *model.World.
package generator

import (
	"time"

	"github.com/talgya/legends-sub001/internal/catalog"
)

// ProgressFunc is invoked synchronously after each of the 11 named
// phases of generation (spec §6's progress callback).
type ProgressFunc func(phase string, progress float64)

// GenConfig holds the parameters of one generation run (spec §6's
// input configuration).
type GenConfig struct {
	Width   int
	Height  int
	Seed    int64
	Catalog *catalog.Catalog // nil uses catalog.Default()

	// Progress, if set, is invoked synchronously after each of the 11
	// named phases.
	Progress ProgressFunc
}

// DefaultGenConfig returns a reasonable starting configuration: a
// 256x256 world seeded from the current time.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:  256,
		Height: 256,
		Seed:   time.Now().UnixNano(),
	}
}

// SmallTestConfig returns a tiny, fast-generating world, for tests.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Width:  32,
		Height: 32,
		Seed:   42,
	}
}
