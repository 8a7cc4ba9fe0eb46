package worldgen

import "github.com/talgya/legends-sub001/internal/model"

type terrainThreshold struct {
	upperBound float64
	terrain    model.TerrainType
}

// terrainThresholds is the ordered table from spec §4.4. The first
// threshold whose upper bound the elevation is strictly below wins;
// an elevation of 1.0 or more falls through to peak.
var terrainThresholds = []terrainThreshold{
	{0.22, model.TerrainDeepOcean},
	{0.30, model.TerrainShallowOcean},
	{0.33, model.TerrainCoast},
	{0.50, model.TerrainLowland},
	{0.65, model.TerrainHighland},
	{0.82, model.TerrainMountain},
	{1.00, model.TerrainPeak},
}

// ClassifyTerrain maps an elevation value to its terrain type.
func ClassifyTerrain(elevation float64) model.TerrainType {
	for _, t := range terrainThresholds {
		if elevation < t.upperBound {
			return t.terrain
		}
	}
	return model.TerrainPeak
}

// TerrainField classifies every tile of an elevation field.
func TerrainField(elevation [][]float64) [][]model.TerrainType {
	height := len(elevation)
	field := make([][]model.TerrainType, height)
	for y := 0; y < height; y++ {
		width := len(elevation[y])
		field[y] = make([]model.TerrainType, width)
		for x := 0; x < width; x++ {
			field[y][x] = ClassifyTerrain(elevation[y][x])
		}
	}
	return field
}
