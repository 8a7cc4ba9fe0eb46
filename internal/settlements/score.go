package settlements

import (
	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/model"
)

// ScoreTile implements spec §4.9(a). Returns 0 when the biome
// disallows settlement, in which case the tile is never a candidate.
func ScoreTile(cat *catalog.Catalog, tiles [][]*model.Tile, x, y int) float64 {
	tile := tiles[y][x]
	def := cat.BiomeOrDefault(tile.Biome)
	if !def.CanBuildSettlement {
		return 0
	}

	score := 0.0

	scaledElev := int(tile.Elevation * 10)
	switch {
	case scaledElev >= 4 && scaledElev <= 7:
		score += 3
	case scaledElev >= 8 && scaledElev <= 9:
		score += 1
	}

	if nearWater(tiles, x, y, 3) {
		score += 3
	}

	score += depositScore(tiles, x, y, 4)

	switch tile.Biome {
	case model.BiomeGrassland:
		score += 2
	case model.BiomeForest, model.BiomeHills, model.BiomeBeach:
		score += 1
	}

	if tile.Temperature > 0.3 && tile.Temperature < 0.7 {
		score += 1
	}

	return score
}

func nearWater(tiles [][]*model.Tile, x, y, radius int) bool {
	height := len(tiles)
	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= height {
			continue
		}
		width := len(tiles[ny])
		for dx := -radius; dx <= radius; dx++ {
			nx := x + dx
			if nx < 0 || nx >= width {
				continue
			}
			t := tiles[ny][nx].TerrainType
			if t == model.TerrainShallowOcean || t == model.TerrainCoast {
				return true
			}
		}
	}
	return false
}

func depositScore(tiles [][]*model.Tile, x, y, radius int) float64 {
	height := len(tiles)
	sum := 0.0
	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= height {
			continue
		}
		width := len(tiles[ny])
		for dx := -radius; dx <= radius; dx++ {
			nx := x + dx
			if nx < 0 || nx >= width {
				continue
			}
			if d := tiles[ny][nx].ResourceDeposit; d != nil {
				sum += d.Amount * 0.01
			}
		}
	}
	if sum > 5 {
		return 5
	}
	return sum
}
