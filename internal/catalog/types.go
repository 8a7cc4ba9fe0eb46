// Package catalog holds the static, read-only input tables the pipeline
// consumes (spec §6 "External tables consumed"): biome parameters,
// resource definitions, creature definitions, and name tables. These are
// treated as external collaborators per spec §1 — the pipeline never
// mutates them — but a generator has to start from somewhere, so this
// package also ships an embedded default set (Default()) good enough to
// generate a complete world with zero configuration, and a YAML loader
// for callers who want to override it.
package catalog

import "github.com/talgya/legends-sub001/internal/model"

// BiomeDef describes the static parameters of one biome.
type BiomeDef struct {
	MovementCost        float64 `yaml:"movementCost"`
	CanBuildSettlement  bool    `yaml:"canBuildSettlement"`
	VegetationDensity   float64 `yaml:"vegetationDensity"`
}

// ResourceDef describes the static parameters of one resource type.
type ResourceDef struct {
	BaseValue    float64 `yaml:"baseValue"`
	StorageClass string  `yaml:"storageClass"`
}

// ResourcePlacementConfig is one row of the ordered resource-placement
// table used by spec §4.8. Configs are evaluated in table order; ties
// are broken by that same order.
type ResourcePlacementConfig struct {
	ResourceID    string        `yaml:"resourceId"`
	Biomes        []model.Biome `yaml:"-"`
	BiomeNames    []string      `yaml:"biomes"`
	Chance        float64       `yaml:"chance"`
	AmountMin     float64       `yaml:"amountMin"`
	AmountMax     float64       `yaml:"amountMax"`
	ReplenishRate float64       `yaml:"replenishRate"`
}

// IntRange is an inclusive [Lo,Hi] integer range.
type IntRange struct {
	Lo, Hi int
}

// LootEntry is one roll-able loot row in a creature's loot table.
type LootEntry struct {
	ResourceID string   `yaml:"resourceId"`
	Chance     float64  `yaml:"chance"`
	Quantity   IntRange `yaml:"-"`
}

// CreatureDef describes the static parameters of one creature type.
type CreatureDef struct {
	BaseHealth  float64  `yaml:"baseHealth"`
	BaseAttack  float64  `yaml:"baseAttack"`
	BaseDefense float64  `yaml:"baseDefense"`
	BaseSpeed   float64  `yaml:"baseSpeed"`
	PackSize    IntRange `yaml:"-"`

	PreferredBiomes []model.Biome `yaml:"-"`
	BiomeNames      []string      `yaml:"preferredBiomes"`

	WanderRadius    int    `yaml:"wanderRadius"`
	Hostile         bool   `yaml:"hostile"`
	DefaultBehavior string `yaml:"defaultBehavior"`

	LootTable []LootEntry `yaml:"lootTable"`
}

// Names holds the procedural name tables.
type Names struct {
	MaleFirst      []string `yaml:"maleFirst"`
	FemaleFirst    []string `yaml:"femaleFirst"`
	LastNames      []string `yaml:"lastNames"`
	CountryNames   []string `yaml:"countryNames"`
	SettlementPre  []string `yaml:"settlementPrefixes"`
	SettlementSuf  []string `yaml:"settlementSuffixes"`
	DragonNames    []string `yaml:"dragonNames"`
}

// Catalog bundles every external table the pipeline reads before and
// during generation.
type Catalog struct {
	Biomes             map[model.Biome]BiomeDef
	Resources          map[string]ResourceDef
	ResourcePlacements []ResourcePlacementConfig
	Creatures          map[string]CreatureDef
	CreatureOrder      []string // insertion order, for deterministic iteration
	Names              Names
}

// BiomeOrDefault returns the biome definition, falling back to a cost-5,
// no-settlement default for unknown biomes per spec §7.
func (c *Catalog) BiomeOrDefault(b model.Biome) BiomeDef {
	if def, ok := c.Biomes[b]; ok {
		return def
	}
	return BiomeDef{MovementCost: 5, CanBuildSettlement: false, VegetationDensity: 0.3}
}
