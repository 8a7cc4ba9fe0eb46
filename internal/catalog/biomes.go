package catalog

import "github.com/talgya/legends-sub001/internal/model"

var biomeByName = map[string]model.Biome{
	"ocean":         model.BiomeOcean,
	"beach":         model.BiomeBeach,
	"desert":        model.BiomeDesert,
	"savanna":       model.BiomeSavanna,
	"jungle":        model.BiomeJungle,
	"swamp":         model.BiomeSwamp,
	"dense_forest":  model.BiomeDenseForest,
	"forest":        model.BiomeForest,
	"grassland":     model.BiomeGrassland,
	"tundra":        model.BiomeTundra,
	"hills":         model.BiomeHills,
	"mountain":      model.BiomeMountain,
	"snow_mountain": model.BiomeSnowMountain,
}

func biomesByNames(names []string) []model.Biome {
	out := make([]model.Biome, 0, len(names))
	for _, n := range names {
		if b, ok := biomeByName[n]; ok {
			out = append(out, b)
		}
	}
	return out
}
