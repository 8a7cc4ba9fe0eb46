package settlements

import (
	"math"
	"sort"

	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/ids"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
)

const (
	maxSettlements = 120
	minSpacing     = 6.0
)

type candidate struct {
	x, y  int
	score float64
}

// Place runs the full spec §4.9 pipeline: scores every tile, places
// settlements in jittered-score order with spacing rejection, assigns
// an initial type by the rule chain, applies the index-based upgrade
// policy, and seeds buildings and storage. stream must already be the
// layer's own forked stream.
func Place(stream *rng.Stream, cat *catalog.Catalog, gen *ids.Generator, tiles [][]*model.Tile) []*model.Location {
	var candidates []candidate
	for y, row := range tiles {
		for x := range row {
			if s := ScoreTile(cat, tiles, x, y); s > 0 {
				candidates = append(candidates, candidate{x, y, s})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ji := stream.Next()
		jj := stream.Next()
		return candidates[i].score+2*ji > candidates[j].score+2*jj
	})

	var locations []*model.Location
	for _, c := range candidates {
		if len(locations) >= maxSettlements {
			break
		}
		if tooClose(c, locations) {
			continue
		}

		tile := tiles[c.y][c.x]
		locType := chooseInitialType(stream, tiles, c.x, c.y, tile)
		locType = applyUpgrade(stream, locType, len(locations), tile)

		loc := buildLocation(stream, gen, locType, c.x, c.y, tile)
		locations = append(locations, loc)
		tile.LocationID = loc.ID
	}
	return locations
}

func tooClose(c candidate, placed []*model.Location) bool {
	for _, loc := range placed {
		dx := float64(c.x - loc.Position.X)
		dy := float64(c.y - loc.Position.Y)
		if math.Sqrt(dx*dx+dy*dy) < minSpacing {
			return true
		}
	}
	return false
}

func isDefensible(tile *model.Tile) bool {
	if int(tile.Elevation*10) >= 6 {
		return true
	}
	return tile.Biome == model.BiomeHills || tile.Biome == model.BiomeMountain
}

// chooseInitialType implements spec §4.9(d)'s rule chain.
func chooseInitialType(stream *rng.Stream, tiles [][]*model.Tile, x, y int, tile *model.Tile) string {
	if nearShallowOcean(tiles, x, y, 2) && stream.Chance(0.3) {
		return TypeFishingVillage
	}
	if d := tile.ResourceDeposit; d != nil && (d.ResourceID == "iron_ore" || d.ResourceID == "gold_ore" || d.ResourceID == "coal") && stream.Chance(0.2) {
		return TypeMine
	}
	if tile.Biome == model.BiomeGrassland && stream.Chance(0.2) {
		return TypeFarm
	}
	if (tile.Biome == model.BiomeForest || tile.Biome == model.BiomeDenseForest) && stream.Chance(0.15) {
		return TypeLumberCamp
	}
	if stream.Chance(0.5) {
		return TypeHamlet
	}
	return TypeHomestead
}

func nearShallowOcean(tiles [][]*model.Tile, x, y, radius int) bool {
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
			if tiles[ny][nx].TerrainType == model.TerrainShallowOcean {
				return true
			}
		}
	}
	return false
}

// applyUpgrade implements spec §4.9(e).
func applyUpgrade(stream *rng.Stream, locType string, index int, tile *model.Tile) string {
	if !upgradableTypes[locType] {
		return locType
	}
	defensible := isDefensible(tile)

	switch {
	case index <= 1:
		if defensible && stream.Chance(0.5) {
			return TypeCastle
		}
		return TypeCity
	case index <= 11:
		if defensible && stream.Chance(0.4) {
			return TypeCastle
		}
		if stream.Chance(0.25) {
			return TypeCity
		}
		return TypeTown
	case index <= 24:
		if defensible && stream.Chance(0.3) {
			return TypeCastle
		}
		if stream.Chance(0.35) {
			return TypeVillage
		}
		return TypeTown
	case index <= 39:
		if locType == TypeHamlet || locType == TypeHomestead {
			if stream.Chance(0.4) {
				return TypeVillage
			}
		}
		return locType
	default:
		return locType
	}
}

func buildLocation(stream *rng.Stream, gen *ids.Generator, locType string, x, y int, tile *model.Tile) *model.Location {
	loc := &model.Location{
		ID:              gen.Next("loc"),
		Type:            locType,
		Position:        model.Position{X: x, Y: y},
		StorageCapacity: map[string]float64{},
		MarketPrices:    map[string]float64{},
	}

	houseCount := 0
	for _, bType := range buildingRecipes[locType] {
		loc.Buildings = append(loc.Buildings, &model.Building{
			Type:          bType,
			Level:         1,
			Condition:     1,
			IsOperational: true,
		})
		if bType == "house" {
			houseCount++
		}
	}
	loc.Size = houseCount
	loc.PopulationCapacity = 6 * houseCount

	for _, base := range startingStock[locType] {
		qty := base.Quantity * (0.8 + stream.Next()*0.4)
		loc.Storage = append(loc.Storage, model.ResourceStack{
			ResourceID: base.ResourceID,
			Quantity:   qty,
		})
	}

	loc.Durability = 1
	loc.Prosperity = 0.5
	loc.Safety = 0.5
	loc.Happiness = 0.5

	return loc
}
