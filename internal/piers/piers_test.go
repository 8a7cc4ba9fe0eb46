package piers

import (
	"testing"

	"github.com/talgya/legends-sub001/internal/model"
)

// lakeGrid builds a w x h grid of land with a sizable water body
// (>=10 tiles) occupying the left-hand columns, so a settlement on
// the shore at (shoreX, shoreY) has water within its 5x5 neighbourhood.
func lakeGrid(w, h, waterCols int) [][]*model.Tile {
	tiles := make([][]*model.Tile, h)
	for y := 0; y < h; y++ {
		tiles[y] = make([]*model.Tile, w)
		for x := 0; x < w; x++ {
			terrain := model.TerrainLowland
			if x < waterCols {
				terrain = model.TerrainShallowOcean
			}
			tiles[y][x] = &model.Tile{X: x, Y: y, TerrainType: terrain}
		}
	}
	return tiles
}

func TestPlace_EligibleTypeGetsPierOnShore(t *testing.T) {
	tiles := lakeGrid(10, 10, 4)
	loc := &model.Location{ID: "p1", Type: "port", Position: model.Position{X: 5, Y: 5}}
	Place(tiles, []*model.Location{loc})

	found := false
	for _, row := range tiles {
		for _, tile := range row {
			if tile.HasFeature(model.FeaturePier) {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("Place did not add a pier for a shoreside port")
	}
}

func TestPlace_IneligibleTypeFarFromWaterGetsNoPier(t *testing.T) {
	tiles := lakeGrid(20, 20, 2)
	loc := &model.Location{ID: "h1", Type: "hamlet", Position: model.Position{X: 17, Y: 17}}
	Place(tiles, []*model.Location{loc})

	for _, row := range tiles {
		for _, tile := range row {
			if tile.HasFeature(model.FeaturePier) {
				t.Fatal("inland hamlet should not receive a pier")
			}
		}
	}
}

func TestPlace_SkipsDestroyedLocations(t *testing.T) {
	tiles := lakeGrid(10, 10, 4)
	loc := &model.Location{ID: "p1", Type: "port", Position: model.Position{X: 5, Y: 5}, IsDestroyed: true}
	Place(tiles, []*model.Location{loc})

	for _, row := range tiles {
		for _, tile := range row {
			if tile.HasFeature(model.FeaturePier) {
				t.Fatal("destroyed location should not receive a pier")
			}
		}
	}
}

func TestInSizableWaterBody_TooSmallBodyRejected(t *testing.T) {
	tiles := lakeGrid(10, 10, 10)
	// carve a single isolated 2-tile puddle surrounded by land
	for y := range tiles {
		for x := range tiles[y] {
			tiles[y][x].TerrainType = model.TerrainLowland
		}
	}
	tiles[5][5].TerrainType = model.TerrainShallowOcean
	tiles[5][6].TerrainType = model.TerrainShallowOcean

	if inSizableWaterBody(tiles, 5, 5) {
		t.Fatal("a 2-tile puddle should not count as a sizable water body")
	}
}

func TestInSizableWaterBody_LargeBodyAccepted(t *testing.T) {
	tiles := lakeGrid(10, 10, 5)
	if !inSizableWaterBody(tiles, 0, 0) {
		t.Fatal("a 50-tile water column should count as a sizable water body")
	}
}

func TestIsIsland_SmallLandmassSurroundedByWaterIsIsland(t *testing.T) {
	tiles := make([][]*model.Tile, 30)
	for y := range tiles {
		tiles[y] = make([]*model.Tile, 30)
		for x := range tiles[y] {
			tiles[y][x] = &model.Tile{X: x, Y: y, TerrainType: model.TerrainShallowOcean}
		}
	}
	for y := 14; y <= 16; y++ {
		for x := 14; x <= 16; x++ {
			tiles[y][x].TerrainType = model.TerrainLowland
		}
	}
	if !isIsland(tiles, 15, 15) {
		t.Fatal("a 3x3 landmass surrounded by ocean should be classified as an island")
	}
}

func TestIsIsland_LargeContinentIsNotIsland(t *testing.T) {
	tiles := lakeGrid(40, 40, 0)
	if isIsland(tiles, 20, 20) {
		t.Fatal("a continuous 1600-tile landmass should not be classified as an island")
	}
}
