package characters

import "github.com/talgya/legends-sub001/internal/settlements"

// jobWeight is one entry of a per-type weighted job table.
type jobWeight struct {
	Job    string
	Weight float64
}

// jobWeightsPerType implements spec §4.13's weightedPick(jobWeights
// [locationType]).
var jobWeightsPerType = map[string][]jobWeight{
	settlements.TypeFarm: {
		{"farmer", 6}, {"merchant", 1}, {"soldier", 1},
	},
	settlements.TypeMine: {
		{"miner", 6}, {"blacksmith", 2}, {"merchant", 1},
	},
	settlements.TypeLumberCamp: {
		{"lumberjack", 6}, {"hunter", 2}, {"merchant", 1},
	},
	settlements.TypeFishingVillage: {
		{"fisher", 6}, {"merchant", 2}, {"soldier", 1},
	},
	settlements.TypePort: {
		{"fisher", 4}, {"merchant", 4}, {"soldier", 2}, {"blacksmith", 1},
	},
	settlements.TypeCastle: {
		{"soldier", 5}, {"noble", 2}, {"blacksmith", 2}, {"priest", 1},
	},
	settlements.TypeCity: {
		{"merchant", 4}, {"blacksmith", 2}, {"soldier", 2}, {"scholar", 2},
		{"priest", 1}, {"noble", 1}, {"baker", 1}, {"weaver", 1},
	},
	settlements.TypeTown: {
		{"merchant", 3}, {"farmer", 2}, {"blacksmith", 2}, {"soldier", 2},
		{"priest", 1}, {"herbalist", 1}, {"baker", 1},
	},
}

var defaultJobWeights = []jobWeight{
	{"farmer", 4}, {"hunter", 2}, {"merchant", 1}, {"soldier", 1},
}

func jobWeightsFor(locationType string) []jobWeight {
	if w, ok := jobWeightsPerType[locationType]; ok {
		return w
	}
	return defaultJobWeights
}

// buildingWorkerEligibility implements spec §6's building→eligible-job
// map. Multiple eligible jobs are tried in the listed order.
var buildingWorkerEligibility = map[string][]string{
	"farm_field":   {"farmer"},
	"mine_shaft":   {"miner"},
	"sawmill":      {"lumberjack"},
	"blacksmith":   {"blacksmith"},
	"weaponsmith":  {"blacksmith", "soldier"},
	"armorer":      {"blacksmith"},
	"bakery":       {"baker"},
	"brewery":      {"brewer"},
	"weaver":       {"weaver"},
	"tanner":       {"tanner"},
	"dock":         {"fisher"},
	"apothecary":   {"herbalist"},
	"hunter_lodge": {"hunter"},
	"barracks":     {"soldier"},
	"church":       {"priest"},
	"market":       {"merchant"},
}
