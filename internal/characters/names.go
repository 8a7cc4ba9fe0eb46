// Package characters populates settled locations with families of
// characters and assigns them to jobs, stats, and social bonds (spec
// §4.13–§4.14).
package characters

import (
	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
)

func pickName(stream *rng.Stream, names *catalog.Names, gender model.Gender) string {
	var first string
	if gender == model.GenderMale {
		first = rng.Pick(stream, names.MaleFirst)
	} else {
		first = rng.Pick(stream, names.FemaleFirst)
	}
	last := rng.Pick(stream, names.LastNames)
	return first + " " + last
}

func flipGender(stream *rng.Stream) model.Gender {
	if stream.Chance(0.5) {
		return model.GenderMale
	}
	return model.GenderFemale
}

func opposite(g model.Gender) model.Gender {
	if g == model.GenderMale {
		return model.GenderFemale
	}
	return model.GenderMale
}
