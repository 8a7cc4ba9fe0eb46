package catalog

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/talgya/legends-sub001/internal/model"
)

type yamlBiomeDef struct {
	MovementCost       float64 `yaml:"movementCost"`
	CanBuildSettlement bool    `yaml:"canBuildSettlement"`
	VegetationDensity  float64 `yaml:"vegetationDensity"`
}

type yamlResourceDef struct {
	BaseValue    float64 `yaml:"baseValue"`
	StorageClass string  `yaml:"storageClass"`
}

type yamlResourcePlacement struct {
	ResourceID    string   `yaml:"resourceId"`
	Biomes        []string `yaml:"biomes"`
	Chance        float64  `yaml:"chance"`
	AmountMin     float64  `yaml:"amountMin"`
	AmountMax     float64  `yaml:"amountMax"`
	ReplenishRate float64  `yaml:"replenishRate"`
}

type yamlLootEntry struct {
	ResourceID  string  `yaml:"resourceId"`
	Chance      float64 `yaml:"chance"`
	QuantityMin int     `yaml:"quantityMin"`
	QuantityMax int     `yaml:"quantityMax"`
}

type yamlCreatureDef struct {
	BaseHealth      float64         `yaml:"baseHealth"`
	BaseAttack      float64         `yaml:"baseAttack"`
	BaseDefense     float64         `yaml:"baseDefense"`
	BaseSpeed       float64         `yaml:"baseSpeed"`
	PackSizeMin     int             `yaml:"packSizeMin"`
	PackSizeMax     int             `yaml:"packSizeMax"`
	PreferredBiomes []string        `yaml:"preferredBiomes"`
	WanderRadius    int             `yaml:"wanderRadius"`
	Hostile         bool            `yaml:"hostile"`
	DefaultBehavior string          `yaml:"defaultBehavior"`
	LootTable       []yamlLootEntry `yaml:"lootTable"`
}

type yamlDoc struct {
	Biomes             map[string]yamlBiomeDef          `yaml:"biomes"`
	Resources          map[string]yamlResourceDef       `yaml:"resources"`
	ResourcePlacements []yamlResourcePlacement           `yaml:"resourcePlacements"`
	Creatures          map[string]yamlCreatureDef        `yaml:"creatures"`
	CreatureOrder      []string                          `yaml:"creatureOrder"`
	Names              Names                             `yaml:"names"`
}

// Load parses a catalog document from YAML bytes (spec §6 "External
// tables consumed").
func Load(data []byte) (*Catalog, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	c := &Catalog{
		Biomes:        make(map[model.Biome]BiomeDef, len(doc.Biomes)),
		Resources:     make(map[string]ResourceDef, len(doc.Resources)),
		Creatures:     make(map[string]CreatureDef, len(doc.Creatures)),
		CreatureOrder: doc.CreatureOrder,
		Names:         doc.Names,
	}

	for name, def := range doc.Biomes {
		b, ok := biomeByName[name]
		if !ok {
			return nil, fmt.Errorf("catalog: unknown biome name %q", name)
		}
		c.Biomes[b] = BiomeDef{
			MovementCost:       def.MovementCost,
			CanBuildSettlement: def.CanBuildSettlement,
			VegetationDensity:  def.VegetationDensity,
		}
	}

	for id, def := range doc.Resources {
		c.Resources[id] = ResourceDef{BaseValue: def.BaseValue, StorageClass: def.StorageClass}
	}

	for _, p := range doc.ResourcePlacements {
		c.ResourcePlacements = append(c.ResourcePlacements, ResourcePlacementConfig{
			ResourceID:    p.ResourceID,
			Biomes:        biomesByNames(p.Biomes),
			BiomeNames:    p.Biomes,
			Chance:        p.Chance,
			AmountMin:     p.AmountMin,
			AmountMax:     p.AmountMax,
			ReplenishRate: p.ReplenishRate,
		})
	}

	for id, def := range doc.Creatures {
		loot := make([]LootEntry, 0, len(def.LootTable))
		for _, l := range def.LootTable {
			loot = append(loot, LootEntry{
				ResourceID: l.ResourceID,
				Chance:     l.Chance,
				Quantity:   IntRange{Lo: l.QuantityMin, Hi: l.QuantityMax},
			})
		}
		c.Creatures[id] = CreatureDef{
			BaseHealth:      def.BaseHealth,
			BaseAttack:      def.BaseAttack,
			BaseDefense:     def.BaseDefense,
			BaseSpeed:       def.BaseSpeed,
			PackSize:        IntRange{Lo: def.PackSizeMin, Hi: def.PackSizeMax},
			PreferredBiomes: biomesByNames(def.PreferredBiomes),
			BiomeNames:      def.PreferredBiomes,
			WanderRadius:    def.WanderRadius,
			Hostile:         def.Hostile,
			DefaultBehavior: def.DefaultBehavior,
			LootTable:       loot,
		}
	}

	if len(c.CreatureOrder) == 0 {
		for id := range c.Creatures {
			c.CreatureOrder = append(c.CreatureOrder, id)
		}
		sort.Strings(c.CreatureOrder)
	}

	return c, nil
}
