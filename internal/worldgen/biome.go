package worldgen

import "github.com/talgya/legends-sub001/internal/model"

// ClassifyBiome runs the ordered decision tree from spec §4.7. The
// first matching rule wins; this is written as a single if-chain
// rather than a predicate table, per spec §9 ("Decision-tree
// classifiers").
func ClassifyBiome(terrain model.TerrainType, elevation, moisture, temperature float64) model.Biome {
	if terrain.IsWater() {
		return model.BiomeOcean
	}
	if terrain == model.TerrainCoast {
		if temperature > 0.6 && moisture < 0.3 {
			return model.BiomeDesert
		}
		return model.BiomeBeach
	}
	if terrain == model.TerrainPeak {
		return model.BiomeSnowMountain
	}
	if terrain == model.TerrainMountain {
		if temperature < 0.3 {
			return model.BiomeSnowMountain
		}
		return model.BiomeMountain
	}
	if terrain == model.TerrainHighland {
		return model.BiomeHills
	}
	if temperature < 0.2 {
		return model.BiomeTundra
	}
	if temperature > 0.65 && moisture < 0.2 {
		return model.BiomeDesert
	}
	if temperature > 0.6 && moisture < 0.4 {
		return model.BiomeSavanna
	}
	if temperature > 0.7 && moisture > 0.7 {
		return model.BiomeJungle
	}
	if moisture > 0.75 && elevation < 0.38 {
		return model.BiomeSwamp
	}
	if moisture > 0.65 {
		return model.BiomeDenseForest
	}
	if moisture > 0.4 {
		return model.BiomeForest
	}
	return model.BiomeGrassland
}
