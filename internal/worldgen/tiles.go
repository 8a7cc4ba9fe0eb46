package worldgen

import (
	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/model"
)

// AssembleTiles builds the final tile grid (spec §4.9, layer 9) from
// the scalar fields and terrain classification computed earlier in
// the pipeline. Vegetation is seeded from the assigned biome's
// vegetation density; per-tile jitter, if any, belongs to later
// layers and is not this function's concern.
func AssembleTiles(cat *catalog.Catalog, elevation, temperature, moisture [][]float64, terrain [][]model.TerrainType) [][]*model.Tile {
	height := len(elevation)
	tiles := make([][]*model.Tile, height)

	for y := 0; y < height; y++ {
		width := len(elevation[y])
		tiles[y] = make([]*model.Tile, width)
		for x := 0; x < width; x++ {
			t := terrain[y][x]
			biome := ClassifyBiome(t, elevation[y][x], moisture[y][x], temperature[y][x])
			def := cat.BiomeOrDefault(biome)

			tiles[y][x] = &model.Tile{
				X:           x,
				Y:           y,
				Elevation:   elevation[y][x],
				Moisture:    moisture[y][x],
				Temperature: temperature[y][x],
				TerrainType: t,
				Biome:       biome,
				Vegetation:  def.VegetationDensity,
			}
		}
	}
	return tiles
}
