package worldgen

import (
	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
)

// PlaceResources walks every tile once (spec §4.8, layer 10) and rolls
// chance(p) for every placement row whose biome list contains the
// tile's biome — not just the first match. Every row that hits is a
// candidate; the deposit placed is the candidate with the highest
// value = amount * baseValue[resourceId], with table order as the
// only tie-break among equal-value candidates. stream must already be
// the layer's own forked stream.
func PlaceResources(s *rng.Stream, cat *catalog.Catalog, tiles [][]*model.Tile) {
	for _, row := range tiles {
		for _, tile := range row {
			if tile.TerrainType.IsWater() {
				continue
			}

			var best *model.ResourceDeposit
			bestValue := 0.0
			for _, placement := range cat.ResourcePlacements {
				if !biomeInList(placement.Biomes, tile.Biome) {
					continue
				}
				if !s.Chance(placement.Chance) {
					continue
				}
				amount := s.NextFloat(placement.AmountMin, placement.AmountMax)
				value := amount * cat.Resources[placement.ResourceID].BaseValue
				if best != nil && value <= bestValue {
					continue
				}
				bestValue = value
				best = &model.ResourceDeposit{
					ResourceID:    placement.ResourceID,
					Amount:        amount,
					MaxAmount:     placement.AmountMax,
					ReplenishRate: placement.ReplenishRate,
				}
			}
			tile.ResourceDeposit = best
		}
	}
}

func biomeInList(biomes []model.Biome, b model.Biome) bool {
	for _, candidate := range biomes {
		if candidate == b {
			return true
		}
	}
	return false
}
