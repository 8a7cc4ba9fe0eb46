// Package roads connects settlements with a minimum-spanning network
// of A*-routed roads (spec §4.10–§4.11).
package roads

import (
	"math"

	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/model"
)

// MovementCost implements spec §4.11: infinite on water, otherwise
// the tile's biome base cost discounted by its road level and
// penalized by 0.15 per unit of scaled elevation (elevation*10) above
// 8, floored at 0.5.
func MovementCost(cat *catalog.Catalog, tile *model.Tile) float64 {
	if tile.TerrainType.IsWater() {
		return math.Inf(1)
	}

	cost := cat.BiomeOrDefault(tile.Biome).MovementCost

	switch {
	case tile.RoadLevel >= 3:
		cost *= 0.35
	case tile.RoadLevel >= 2:
		cost *= 0.5
	case tile.RoadLevel >= 1:
		cost *= 0.7
	}

	scaledElev := tile.Elevation * 10
	cost += math.Max(0, (scaledElev-8)*0.15)

	if cost < 0.5 {
		cost = 0.5
	}
	return cost
}
