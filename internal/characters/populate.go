package characters

import (
	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/ids"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
	"github.com/talgya/legends-sub001/internal/settlements"
)

// Populate implements spec §4.13: seeds families for every
// non-destroyed location, then assigns production-building workers
// and a handful of extra social bonds. stream must already be the
// layer's own forked stream. Returns the characters in creation
// order.
func Populate(stream *rng.Stream, cat *catalog.Catalog, gen *ids.Generator, locations []*model.Location) []*model.Character {
	var all []*model.Character
	byID := map[string]*model.Character{}

	for _, loc := range locations {
		if loc.IsDestroyed {
			continue
		}
		lo, hi := settlements.PopulationRange(loc.Type)
		target := stream.NextInt(lo, hi)
		weights := weightedJobs(loc.Type)

		for len(loc.ResidentIDs) < target {
			familySize := stream.NextInt(1, 4)
			remaining := target - len(loc.ResidentIDs)
			if familySize > remaining {
				familySize = remaining
			}
			if familySize < 1 {
				familySize = 1
			}

			head := newAdult(stream, gen, cat, loc, weights)
			if head.Age < 25 {
				head.Age = 25
			} else if head.Age > 50 {
				head.Age = 50
			}
			all = append(all, head)
			byID[head.ID] = head
			addResident(loc, head)

			if familySize >= 2 {
				spouse := newAdult(stream, gen, cat, loc, weights)
				spouse.Gender = opposite(head.Gender)
				spouse.Age = head.Age + stream.NextInt(-5, 5)
				if spouse.Age < 16 {
					spouse.Age = 16
				}
				all = append(all, spouse)
				byID[spouse.ID] = spouse
				addResident(loc, spouse)

				link(head, spouse, model.RelationSpouse, 60+stream.NextFloat(0, 30))
				link(spouse, head, model.RelationSpouse, 60+stream.NextFloat(0, 30))
			}

			extraChildren := familySize - 2
			for i := 0; i < extraChildren; i++ {
				maxAge := head.Age - 18
				if maxAge < 1 {
					maxAge = 1
				}
				child := newChild(stream, gen, cat, loc, stream.NextInt(1, maxAge))
				all = append(all, child)
				byID[child.ID] = child
				addResident(loc, child)

				link(head, child, model.RelationChild, 70+stream.NextFloat(0, 20))
				link(child, head, model.RelationParent, 60+stream.NextFloat(0, 30))
			}
		}
	}

	assignWorkers(locations, byID)
	addExtraBonds(stream, locations, byID)

	return all
}

func weightedJobs(locType string) []rng.Weighted[string] {
	src := jobWeightsFor(locType)
	out := make([]rng.Weighted[string], len(src))
	for i, w := range src {
		out[i] = rng.Weighted[string]{Item: w.Job, Weight: w.Weight}
	}
	return out
}

// newAdult implements the head/spouse creation rules of spec §4.13:
// gender by fair coin, name from the gender-appropriate table, job
// drawn from the location's weighted table, age drawn from the job's
// AgeRangeForJob range (Populate then forces a household head's age
// into [25,50]). A starting-gold roll in [5,40] is drawn but not
// stored: Character has no gold field.
func newAdult(stream *rng.Stream, gen *ids.Generator, cat *catalog.Catalog, loc *model.Location, weights []rng.Weighted[string]) *model.Character {
	gender := flipGender(stream)
	job := rng.WeightedPick(stream, weights)
	lo, hi := AgeRangeForJob(job)

	c := &model.Character{
		ID:             gen.Next("char"),
		Name:           pickName(stream, &cat.Names, gender),
		Gender:         gender,
		JobType:        job,
		Age:            stream.NextInt(lo, hi),
		Position:       loc.Position,
		HomeLocationID: loc.ID,
	}
	c.Stats = rollStats(stream, job)
	c.Personality = rollPersonality(stream)
	c.Needs = rollNeeds(stream)
	c.MaxHealth = 50 + c.Stats.Endurance*5
	c.Health = c.MaxHealth
	_ = stream.NextFloat(5, 40) // starting-gold roll; the value is not stored

	return c
}

// newChild creates a child resident: age forced into the caller-given
// bound, job is "child" while within AgeRangeForJob("child") else
// drawn from the weighted table.
func newChild(stream *rng.Stream, gen *ids.Generator, cat *catalog.Catalog, loc *model.Location, age int) *model.Character {
	gender := flipGender(stream)
	job := "child"
	_, childMaxAge := AgeRangeForJob("child")
	weights := weightedJobs(loc.Type)
	if age > childMaxAge {
		job = rng.WeightedPick(stream, weights)
	}

	c := &model.Character{
		ID:             gen.Next("char"),
		Name:           pickName(stream, &cat.Names, gender),
		Gender:         gender,
		JobType:        job,
		Age:            age,
		Position:       loc.Position,
		HomeLocationID: loc.ID,
	}
	c.Stats = rollStats(stream, job)
	c.Personality = rollPersonality(stream)
	c.Needs = rollNeeds(stream)
	c.MaxHealth = 50 + c.Stats.Endurance*5
	c.Health = c.MaxHealth

	return c
}

func addResident(loc *model.Location, c *model.Character) {
	loc.ResidentIDs = append(loc.ResidentIDs, c.ID)
}

func link(from, to *model.Character, relType model.RelationType, strength float64) {
	from.Relationships = append(from.Relationships, model.Relationship{
		TargetID: to.ID,
		Type:     relType,
		Strength: strength,
	})
}

func hasRelationship(c *model.Character, targetID string) bool {
	for _, r := range c.Relationships {
		if r.TargetID == targetID {
			return true
		}
	}
	return false
}

// assignWorkers implements the second half of spec §4.13: for every
// unstaffed production building, scan the location's residents in
// order and assign the first eligible, unassigned one.
func assignWorkers(locations []*model.Location, byID map[string]*model.Character) {
	for _, loc := range locations {
		assigned := map[string]bool{}
		for _, b := range loc.Buildings {
			if b.WorkerID != "" {
				assigned[b.WorkerID] = true
			}
		}
		for _, b := range loc.Buildings {
			if b.WorkerID != "" {
				continue
			}
			eligible, ok := buildingWorkerEligibility[b.Type]
			if !ok {
				continue
			}
			for _, residentID := range loc.ResidentIDs {
				if assigned[residentID] {
					continue
				}
				resident := byID[residentID]
				if resident == nil {
					continue
				}
				for _, job := range eligible {
					if resident.JobType == job {
						b.WorkerID = residentID
						assigned[residentID] = true
						break
					}
				}
				if b.WorkerID != "" {
					break
				}
			}
		}
	}
}

// addExtraBonds implements spec §4.13's closing paragraph: up to 5
// extra friendships/rivalries per location, picked uniformly among
// residents with no existing relationship.
func addExtraBonds(stream *rng.Stream, locations []*model.Location, byID map[string]*model.Character) {
	for _, loc := range locations {
		if len(loc.ResidentIDs) < 2 {
			continue
		}
		for i := 0; i < 5; i++ {
			aID := rng.Pick(stream, loc.ResidentIDs)
			bID := rng.Pick(stream, loc.ResidentIDs)
			if aID == bID {
				continue
			}
			a, b := byID[aID], byID[bID]
			if a == nil || b == nil || hasRelationship(a, bID) {
				continue
			}
			if stream.Chance(0.7) {
				link(a, b, model.RelationFriend, stream.NextFloat(20, 60))
				link(b, a, model.RelationFriend, stream.NextFloat(20, 60))
			} else {
				link(a, b, model.RelationRival, stream.NextFloat(-40, -10))
				link(b, a, model.RelationRival, stream.NextFloat(-40, -10))
			}
		}
	}
}
