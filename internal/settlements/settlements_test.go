package settlements

import (
	"testing"

	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/ids"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
)

func grassCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Biomes: map[model.Biome]catalog.BiomeDef{
			model.BiomeGrassland: {CanBuildSettlement: true},
			model.BiomeOcean:     {CanBuildSettlement: false},
		},
	}
}

func flatTiles(cat *catalog.Catalog, w, h int) [][]*model.Tile {
	tiles := make([][]*model.Tile, h)
	for y := 0; y < h; y++ {
		tiles[y] = make([]*model.Tile, w)
		for x := 0; x < w; x++ {
			tiles[y][x] = &model.Tile{
				X: x, Y: y,
				TerrainType: model.TerrainLowland,
				Biome:       model.BiomeGrassland,
				Elevation:   0.5,
				Temperature: 0.5,
			}
		}
	}
	return tiles
}

func TestScoreTile_ZeroWhenBiomeDisallows(t *testing.T) {
	cat := grassCatalog()
	tiles := flatTiles(cat, 5, 5)
	tiles[2][2].Biome = model.BiomeOcean
	tiles[2][2].TerrainType = model.TerrainDeepOcean

	if got := ScoreTile(cat, tiles, 2, 2); got != 0 {
		t.Errorf("ScoreTile on disallowed biome = %v, want 0", got)
	}
}

func TestScoreTile_PositiveOnGoodGrassland(t *testing.T) {
	cat := grassCatalog()
	tiles := flatTiles(cat, 5, 5)
	if got := ScoreTile(cat, tiles, 2, 2); got <= 0 {
		t.Errorf("ScoreTile on favorable grassland = %v, want > 0", got)
	}
}

func TestPlace_RespectsMinSpacing(t *testing.T) {
	cat := grassCatalog()
	tiles := flatTiles(cat, 30, 30)
	stream := rng.New(1)
	gen := ids.New(1)

	locations := Place(stream, cat, gen, tiles)
	for i := range locations {
		for j := range locations {
			if i == j {
				continue
			}
			dx := float64(locations[i].Position.X - locations[j].Position.X)
			dy := float64(locations[i].Position.Y - locations[j].Position.Y)
			dist := dx*dx + dy*dy
			if dist < minSpacing*minSpacing {
				t.Fatalf("locations %d and %d are closer than minSpacing: %v", i, j, dist)
			}
		}
	}
}

func TestPlace_NeverExceedsMaxSettlements(t *testing.T) {
	cat := grassCatalog()
	tiles := flatTiles(cat, 60, 60)
	locations := Place(rng.New(2), cat, ids.New(2), tiles)
	if len(locations) > maxSettlements {
		t.Fatalf("Place returned %d locations, want <= %d", len(locations), maxSettlements)
	}
}

func TestPlace_Deterministic(t *testing.T) {
	cat := grassCatalog()
	a := Place(rng.New(5), cat, ids.New(5), flatTiles(cat, 20, 20))
	b := Place(rng.New(5), cat, ids.New(5), flatTiles(cat, 20, 20))

	if len(a) != len(b) {
		t.Fatalf("different counts across identical runs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Position != b[i].Position || a[i].Type != b[i].Type {
			t.Fatalf("location %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPlace_MarksTileWithLocationID(t *testing.T) {
	cat := grassCatalog()
	tiles := flatTiles(cat, 20, 20)
	locations := Place(rng.New(9), cat, ids.New(9), tiles)
	for _, loc := range locations {
		tile := tiles[loc.Position.Y][loc.Position.X]
		if tile.LocationID != loc.ID {
			t.Errorf("tile at %v has LocationID %q, want %q", loc.Position, tile.LocationID, loc.ID)
		}
	}
}

func TestApplyUpgrade_EarlyIndexUpgradesToCityOrCastle(t *testing.T) {
	tile := &model.Tile{Elevation: 0.8, Biome: model.BiomeHills}
	stream := rng.New(1)
	upgraded := applyUpgrade(stream, TypeHamlet, 0, tile)
	if upgraded != TypeCity && upgraded != TypeCastle {
		t.Errorf("index 0 upgrade = %q, want city or castle", upgraded)
	}
}

func TestApplyUpgrade_NonUpgradableTypePassesThrough(t *testing.T) {
	tile := &model.Tile{Elevation: 0.9, Biome: model.BiomeHills}
	got := applyUpgrade(rng.New(1), TypeCity, 0, tile)
	if got != TypeCity {
		t.Errorf("applyUpgrade on non-upgradable type changed it to %q", got)
	}
}

func TestIsDefensible_HighElevationOrRuggedBiome(t *testing.T) {
	if !isDefensible(&model.Tile{Elevation: 0.7, Biome: model.BiomeGrassland}) {
		t.Error("high elevation tile should be defensible regardless of biome")
	}
	if !isDefensible(&model.Tile{Elevation: 0.1, Biome: model.BiomeMountain}) {
		t.Error("mountain biome should be defensible regardless of elevation")
	}
	if isDefensible(&model.Tile{Elevation: 0.1, Biome: model.BiomeGrassland}) {
		t.Error("low, flat grassland should not be defensible")
	}
}

func TestPopulationRange_KnownAndFallback(t *testing.T) {
	lo, hi := PopulationRange(TypeCity)
	if lo != 200 || hi != 400 {
		t.Errorf("PopulationRange(city) = (%d,%d), want (200,400)", lo, hi)
	}
	lo, hi = PopulationRange("unknown_type")
	if lo != 2 || hi != 6 {
		t.Errorf("PopulationRange(unknown) = (%d,%d), want fallback (2,6)", lo, hi)
	}
}

func TestBuildLocation_HouseCountDrivesCapacity(t *testing.T) {
	tile := &model.Tile{}
	loc := buildLocation(rng.New(1), ids.New(1), TypeHamlet, 0, 0, tile)
	if loc.Size != 2 {
		t.Errorf("hamlet Size (house count) = %d, want 2", loc.Size)
	}
	if loc.PopulationCapacity != 12 {
		t.Errorf("hamlet PopulationCapacity = %d, want 12 (6 per house)", loc.PopulationCapacity)
	}
}
