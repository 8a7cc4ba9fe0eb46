// Package politics carves governable settlements into countries,
// mints rulers and vassals, and settles pairwise diplomacy (spec
// §4.16).
package politics

import (
	"math"
	"sort"

	"github.com/talgya/legends-sub001/internal/characters"
	"github.com/talgya/legends-sub001/internal/ids"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
)

var governableTypes = map[string]bool{
	"homestead":       true,
	"hamlet":          true,
	"village":         true,
	"town":            true,
	"city":            true,
	"castle":          true,
	"farm":            true,
	"mine":            true,
	"lumber_camp":     true,
	"fishing_village": true,
	"port":            true,
}

var typeWeight = map[string]int{
	"city":            10,
	"town":            8,
	"castle":          7,
	"port":            6,
	"village":         4,
	"hamlet":          2,
	"fishing_village": 2,
	"mine":            2,
	"homestead":       1,
	"farm":            1,
	"lumber_camp":     1,
}

type rankedLocation struct {
	loc   *model.Location
	order int
}

// Govern implements spec §4.16. stream must already be the layer's
// own forked stream. byID must contain every character referenced by
// any location's residentIds. Returns the minted countries and a
// parallel map from country ID to capital position, for Diplomacy.
func Govern(stream *rng.Stream, gen *ids.Generator, locations []*model.Location, byID map[string]*model.Character) ([]*model.Country, map[string]model.Position) {
	var governable []rankedLocation
	for i, loc := range locations {
		if !loc.IsDestroyed && governableTypes[loc.Type] {
			governable = append(governable, rankedLocation{loc, i})
		}
	}
	sort.SliceStable(governable, func(i, j int) bool {
		wi, wj := typeWeight[governable[i].loc.Type], typeWeight[governable[j].loc.Type]
		if wi != wj {
			return wi > wj
		}
		return governable[i].order < governable[j].order
	})

	numCountries := len(governable) / 8
	if numCountries < 2 {
		numCountries = 2
	}
	if numCountries > 10 {
		numCountries = 10
	}
	if numCountries > len(governable) {
		numCountries = len(governable)
	}
	if numCountries == 0 {
		return nil, nil
	}

	var countries []*model.Country
	capitalPos := map[string]model.Position{}

	for i := 0; i < numCountries; i++ {
		capital := governable[i].loc
		country := &model.Country{
			ID:                gen.Next("country"),
			Name:              capital.Name + " Realm",
			CapitalLocationID: capital.ID,
			LocationIDs:       []string{capital.ID},
			TaxRate:           0.1 + stream.NextFloat(0, 0.1),
		}
		capital.CountryID = country.ID
		capitalPos[country.ID] = capital.Position

		ruler := mintRuler(stream, gen, byID, capital)
		country.LeaderID = ruler.ID
		ruler.OwnedLocationIDs = append(ruler.OwnedLocationIDs, capital.ID)
		capital.OwnerID = ruler.ID

		countries = append(countries, country)
	}

	for _, r := range governable[numCountries:] {
		loc := r.loc
		nearest := nearestCapital(loc.Position, countries, capitalPos)
		if nearest == nil {
			continue
		}
		if euclidean(loc.Position, capitalPos[nearest.ID]) > 50 {
			continue
		}

		loc.CountryID = nearest.ID
		nearest.LocationIDs = append(nearest.LocationIDs, loc.ID)

		ruler := byID[nearest.LeaderID]
		mintVassal(stream, byID, loc, ruler)
	}

	for _, c := range countries {
		c.MilitaryStrength = militaryStrength(c, locations)
	}

	return countries, capitalPos
}

func nearestCapital(pos model.Position, countries []*model.Country, capitalPos map[string]model.Position) *model.Country {
	var best *model.Country
	bestDist := math.Inf(1)
	for _, c := range countries {
		d := euclidean(pos, capitalPos[c.ID])
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func euclidean(a, b model.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func mintRuler(stream *rng.Stream, gen *ids.Generator, byID map[string]*model.Character, capital *model.Location) *model.Character {
	for _, rid := range capital.ResidentIDs {
		if c := byID[rid]; c != nil && c.JobType == "noble" {
			return c
		}
	}
	if len(capital.ResidentIDs) > 0 {
		c := byID[capital.ResidentIDs[0]]
		if c != nil {
			c.JobType = "noble"
			c.Title = "King"
			if c.Personality.Ambition < 0.7 {
				c.Personality.Ambition = 0.7
			}
			return c
		}
	}

	lo, hi := characters.AgeRangeForJob("noble")
	c := &model.Character{
		ID:             gen.Next("char"),
		Name:           "Ruler of " + capital.Name,
		Age:            stream.NextInt(lo, hi),
		JobType:        "noble",
		Title:          "King",
		HomeLocationID: capital.ID,
		Position:       capital.Position,
	}
	c.Personality.Ambition = 0.8
	c.MaxHealth = 50
	c.Health = 50
	byID[c.ID] = c
	capital.ResidentIDs = append(capital.ResidentIDs, c.ID)
	return c
}

func mintVassal(stream *rng.Stream, byID map[string]*model.Character, loc *model.Location, ruler *model.Character) {
	var lord *model.Character
	for _, rid := range loc.ResidentIDs {
		c := byID[rid]
		if c != nil && c.Personality.Ambition > 0.5 && c.Age >= 20 {
			lord = c
			break
		}
	}
	if lord == nil {
		if len(loc.ResidentIDs) < 3 {
			return
		}
		lord = byID[loc.ResidentIDs[0]]
		if lord == nil {
			return
		}
	}

	lord.JobType = "noble"
	if loc.Type == "town" {
		lord.Title = "Baron"
	} else {
		lord.Title = "Lord"
	}
	lord.OwnedLocationIDs = append(lord.OwnedLocationIDs, loc.ID)
	loc.OwnerID = lord.ID

	if ruler != nil {
		lord.Relationships = append(lord.Relationships, model.Relationship{
			TargetID: ruler.ID, Type: model.RelationLord, Strength: 50 + stream.NextFloat(-20, 20),
		})
		ruler.Relationships = append(ruler.Relationships, model.Relationship{
			TargetID: lord.ID, Type: model.RelationVassal, Strength: 30 + stream.NextFloat(-20, 20),
		})
		ruler.VassalIDs = append(ruler.VassalIDs, lord.ID)
		lord.LordID = ruler.ID
	}
}

func militaryStrength(c *model.Country, locations []*model.Location) float64 {
	var total float64
	for _, loc := range locations {
		if loc.CountryID != c.ID {
			continue
		}
		total += float64(loc.DefenseLevel)*10 + float64(len(loc.GarrisonIDs))*5 + float64(loc.WallLevel)*20
	}
	return total
}

// Diplomacy implements spec §4.16's pairwise diplomacy pass. countries
// must be in insertion order; the returned relations preserve that
// order for each pair (A then B).
func Diplomacy(stream *rng.Stream, countries []*model.Country, capitalPos map[string]model.Position) []model.DiplomaticRelation {
	var relations []model.DiplomaticRelation
	for i := 0; i < len(countries); i++ {
		for j := i + 1; j < len(countries); j++ {
			a, b := countries[i], countries[j]
			dist := euclidean(capitalPos[a.ID], capitalPos[b.ID])

			var rel model.DiplomaticRelation
			rel.CountryAID, rel.CountryBID = a.ID, b.ID

			if dist < 30 {
				switch {
				case stream.Chance(0.3):
					rel.Type = model.DiplomacyAlliance
					rel.Strength = 20 + stream.NextFloat(0, 40)
					a.Alliances = append(a.Alliances, b.ID)
					b.Alliances = append(b.Alliances, a.ID)
				case stream.Chance(0.3):
					rel.Type = model.DiplomacyRivalry
					rel.Strength = -60 + stream.NextFloat(0, 40)
					a.Enemies = append(a.Enemies, b.ID)
					b.Enemies = append(b.Enemies, a.ID)
				default:
					rel.Type = model.DiplomacyTradeAgreement
					rel.Strength = 5 + stream.NextFloat(0, 25)
				}
			} else {
				rel.Type = model.DiplomacyNeutral
				rel.Strength = 0
			}

			relations = append(relations, rel)
		}
	}
	return relations
}
