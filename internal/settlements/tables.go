// Package settlements places initial settlements on a tile grid and
// seeds their starting buildings and storage (spec §4.9).
package settlements

import "github.com/talgya/legends-sub001/internal/model"

// Location type constants, mirroring the building catalogue's "else"
// bucket from spec §6 plus the upgrade-chain types from spec §4.9.
const (
	TypeHamlet         = "hamlet"
	TypeHomestead      = "homestead"
	TypeFarm           = "farm"
	TypeMine           = "mine"
	TypeLumberCamp     = "lumber_camp"
	TypeFishingVillage = "fishing_village"
	TypeVillage        = "village"
	TypeTown           = "town"
	TypeCity           = "city"
	TypeCastle         = "castle"
	TypePort           = "port"
)

// upgradableTypes is the set of location types eligible for the
// index-based upgrade policy in spec §4.9(e).
var upgradableTypes = map[string]bool{
	TypeHamlet:     true,
	TypeHomestead:  true,
	TypeFarm:       true,
	TypeMine:       true,
	TypeLumberCamp: true,
}

// buildingRecipes lists the buildings a freshly-founded settlement of
// a given type starts with. house always seeds populationCapacity via
// its count (spec §4.9(f)); the remaining entries are the type's
// signature production building(s).
var buildingRecipes = map[string][]string{
	TypeHamlet:         {"house", "house"},
	TypeHomestead:      {"house", "house", "house"},
	TypeFarm:           {"house", "house", "farm_field"},
	TypeMine:           {"house", "house", "mine_shaft"},
	TypeLumberCamp:     {"house", "house", "sawmill"},
	TypeFishingVillage: {"house", "house", "house", "dock", "market"},
	TypeVillage:        {"house", "house", "house", "house", "market", "tavern"},
	TypeTown: {
		"house", "house", "house", "house", "house", "house",
		"market", "tavern", "blacksmith", "church", "warehouse", "barracks",
	},
	TypeCity: {
		"house", "house", "house", "house", "house", "house", "house", "house",
		"market", "tavern", "blacksmith", "weaponsmith", "armorer", "church",
		"warehouse", "barracks", "guild_hall", "wall",
	},
	TypeCastle: {
		"house", "house", "house", "house",
		"castle_keep", "barracks", "wall", "blacksmith", "stable", "warehouse",
	},
	TypePort: {
		"house", "house", "house", "house", "house",
		"dock", "market", "warehouse", "tavern", "blacksmith",
	},
}

// startingStock seeds the initial storage stacks for a freshly-founded
// settlement, before any RNG-drawn jitter is applied by the caller.
var startingStock = map[string][]model.ResourceStack{
	TypeHamlet:         {{ResourceID: "grain", Quantity: 20}},
	TypeHomestead:      {{ResourceID: "grain", Quantity: 30}, {ResourceID: "timber", Quantity: 10}},
	TypeFarm:           {{ResourceID: "grain", Quantity: 60}},
	TypeMine:           {{ResourceID: "stone", Quantity: 40}, {ResourceID: "iron_ore", Quantity: 15}},
	TypeLumberCamp:     {{ResourceID: "timber", Quantity: 60}},
	TypeFishingVillage: {{ResourceID: "fish", Quantity: 40}, {ResourceID: "grain", Quantity: 15}},
	TypeVillage:        {{ResourceID: "grain", Quantity: 40}, {ResourceID: "timber", Quantity: 20}},
	TypeTown:           {{ResourceID: "grain", Quantity: 80}, {ResourceID: "timber", Quantity: 40}, {ResourceID: "stone", Quantity: 20}},
	TypeCity:           {{ResourceID: "grain", Quantity: 150}, {ResourceID: "timber", Quantity: 80}, {ResourceID: "stone", Quantity: 60}},
	TypeCastle:         {{ResourceID: "grain", Quantity: 100}, {ResourceID: "stone", Quantity: 100}},
	TypePort:           {{ResourceID: "fish", Quantity: 60}, {ResourceID: "grain", Quantity: 40}},
}

// populationRangePerType gives the target-population range per type
// from spec §4.13's table.
var populationRangePerType = map[string][2]int{
	TypeHomestead:      {4, 8},
	TypeHamlet:         {15, 30},
	TypeVillage:        {40, 80},
	TypeTown:           {100, 200},
	TypeCity:           {200, 400},
	TypeMine:           {10, 25},
	TypeFarm:           {6, 15},
	TypeLumberCamp:     {8, 20},
	TypeFishingVillage: {20, 40},
	TypePort:           {60, 120},
	TypeCastle:         {40, 100},
}

// PopulationRange returns the target-population range for a location
// type, falling back to the spec's "else" bucket.
func PopulationRange(locationType string) (lo, hi int) {
	if r, ok := populationRangePerType[locationType]; ok {
		return r[0], r[1]
	}
	return 2, 6
}
