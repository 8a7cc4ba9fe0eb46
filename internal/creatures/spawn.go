// Package creatures spawns wildlife and monster groups across the
// tile grid (spec §4.15).
package creatures

import (
	"math"

	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/ids"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
)

const (
	maxSpawnPoints  = 60
	maxAttempts     = 600 // 10x maxSpawnPoints
	minSpawnSpacing = 5
	maxDragons      = 3
	maxBandits      = 8
	dragonTopUp     = 500
)

// Spawn implements spec §4.15: rejection-sampled spawn points, capped
// dragons/bandits, and a guaranteed-minimum dragon top-up pass.
// stream must already be the layer's own forked stream.
func Spawn(stream *rng.Stream, cat *catalog.Catalog, gen *ids.Generator, tiles [][]*model.Tile) []*model.Creature {
	height := len(tiles)
	if height == 0 {
		return nil
	}
	width := len(tiles[0])

	biomeIndex := buildBiomeIndex(cat)

	var creatures []*model.Creature
	var spawnPoints []model.Position
	dragons, bandits := 0, 0

	attempts := 0
	for len(spawnPoints) < maxSpawnPoints && attempts < maxAttempts {
		attempts++
		x := stream.NextInt(0, width-1)
		y := stream.NextInt(0, height-1)
		tile := tiles[y][x]

		if tile.TerrainType.IsWater() || tile.LocationID != "" {
			continue
		}
		if tooCloseToSpawn(x, y, spawnPoints) {
			continue
		}

		eligible := biomeIndex[tile.Biome]
		if len(eligible) == 0 {
			continue
		}
		typeID := rng.Pick(stream, eligible)

		if typeID == "dragon" {
			if dragons >= maxDragons || !stream.Chance(0.15) {
				continue
			}
			dragons++
		}
		if typeID == "bandit" {
			if bandits >= maxBandits || !stream.Chance(0.3) {
				continue
			}
			bandits++
		}

		def := cat.Creatures[typeID]
		c := spawnOne(stream, gen, typeID, def, model.Position{X: x, Y: y})
		creatures = append(creatures, c)
		spawnPoints = append(spawnPoints, model.Position{X: x, Y: y})
	}

	creatures = topUpDragons(stream, cat, gen, tiles, creatures, dragons)

	return creatures
}

func buildBiomeIndex(cat *catalog.Catalog) map[model.Biome][]string {
	index := map[model.Biome][]string{}
	for _, typeID := range cat.CreatureOrder {
		def, ok := cat.Creatures[typeID]
		if !ok {
			continue
		}
		for _, b := range def.PreferredBiomes {
			index[b] = append(index[b], typeID)
		}
	}
	return index
}

func tooCloseToSpawn(x, y int, points []model.Position) bool {
	for _, p := range points {
		if model.ManhattanDistance(model.Position{X: x, Y: y}, p) < minSpawnSpacing {
			return true
		}
	}
	return false
}

func spawnOne(stream *rng.Stream, gen *ids.Generator, typeID string, def catalog.CreatureDef, pos model.Position) *model.Creature {
	packSize := stream.NextInt(def.PackSize.Lo, def.PackSize.Hi)
	if packSize < 1 {
		packSize = 1
	}
	maxHealth := def.BaseHealth * float64(packSize)
	health := maxHealth * (0.8 + 0.4*stream.Next())
	scale := math.Sqrt(float64(packSize))

	c := &model.Creature{
		ID:           gen.Next("creature"),
		Type:         typeID,
		Position:     pos,
		HomePosition: pos,
		MaxHealth:    maxHealth,
		Health:       health,
		Attack:       def.BaseAttack * scale,
		Defense:      def.BaseDefense * scale,
		Speed:        def.BaseSpeed,
		Behavior:     def.DefaultBehavior,
		WanderRadius: def.WanderRadius,
		IsHostile:    def.Hostile,
	}

	for _, entry := range def.LootTable {
		if !stream.Chance(entry.Chance) {
			continue
		}
		qty := stream.NextInt(entry.Quantity.Lo, entry.Quantity.Hi) * packSize
		c.Loot = append(c.Loot, model.LootStack{
			ResourceID: entry.ResourceID,
			Quantity:   qty,
			Quality:    0.5 + 0.5*stream.Next(),
		})
	}

	return c
}

var dragonTopUpBiomes = map[model.Biome]bool{
	model.BiomeMountain:      true,
	model.BiomeSnowMountain:  true,
	model.BiomeHills:         true,
}

// topUpDragons guarantees at least 2 dragons by attempting up to 500
// placements restricted to mountain/snow_mountain/hills biomes, each
// with pre-set stats, behavior, wander radius, a fixed gold-ore loot
// stack, and a distinct name drawn from the catalog's dragon names (a
// name repeats only once every catalog name is already in use).
func topUpDragons(stream *rng.Stream, cat *catalog.Catalog, gen *ids.Generator, tiles [][]*model.Tile, creatures []*model.Creature, dragonCount int) []*model.Creature {
	if dragonCount >= 2 {
		return creatures
	}
	height := len(tiles)
	if height == 0 {
		return creatures
	}
	width := len(tiles[0])

	def := cat.Creatures["dragon"]
	usedNames := map[string]bool{}
	for _, c := range creatures {
		if c.Type == "dragon" {
			usedNames[c.Name] = true
		}
	}

	attempts := 0
	for dragonCount < 2 && attempts < dragonTopUp {
		attempts++
		x := stream.NextInt(0, width-1)
		y := stream.NextInt(0, height-1)
		tile := tiles[y][x]
		if tile.TerrainType.IsWater() || tile.LocationID != "" {
			continue
		}
		if !dragonTopUpBiomes[tile.Biome] {
			continue
		}

		name := pickDragonName(stream, cat.Names.DragonNames, usedNames)

		c := &model.Creature{
			ID:           gen.Next("creature"),
			Type:         "dragon",
			Name:         name,
			Position:     model.Position{X: x, Y: y},
			HomePosition: model.Position{X: x, Y: y},
			MaxHealth:    def.BaseHealth,
			Health:       def.BaseHealth,
			Attack:       def.BaseAttack,
			Defense:      def.BaseDefense,
			Speed:        def.BaseSpeed,
			Behavior:     "territorial",
			WanderRadius: 20,
			IsHostile:    true,
			Loot: []model.LootStack{
				{ResourceID: "gold_ore", Quantity: 50, Quality: 1},
			},
		}
		creatures = append(creatures, c)
		usedNames[name] = true
		dragonCount++
	}
	return creatures
}

func pickDragonName(stream *rng.Stream, names []string, used map[string]bool) string {
	if len(names) == 0 {
		return ""
	}
	name := rng.Pick(stream, names)
	for i := 0; i < len(names) && used[name]; i++ {
		name = rng.Pick(stream, names)
	}
	if used[name] {
		for _, candidate := range names {
			if !used[candidate] {
				return candidate
			}
		}
	}
	return name
}
