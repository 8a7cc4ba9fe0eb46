package characters

import (
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/rng"
)

// AgeRangeForJob implements spec §4.14's per-job age ranges. Exported
// so callers minting characters outside the family loop (politics.go's
// ruler/vassal promotions) draw from the same table instead of
// duplicating a literal range.
func AgeRangeForJob(job string) (lo, hi int) {
	switch job {
	case "child":
		return 0, 14
	case "elder":
		return 55, 75
	case "noble":
		return 25, 55
	case "soldier", "guard":
		return 18, 40
	case "scholar", "priest":
		return 25, 60
	default:
		return 16, 50
	}
}

// rollStats draws the base 3-8 roll per stat and applies the job's
// bonus, per spec §4.14.
func rollStats(stream *rng.Stream, job string) model.Stats {
	s := model.Stats{
		Strength:     stream.NextInt(3, 8),
		Dexterity:    stream.NextInt(3, 8),
		Intelligence: stream.NextInt(3, 8),
		Charisma:     stream.NextInt(3, 8),
		Endurance:    stream.NextInt(3, 8),
	}
	switch job {
	case "farmer":
		s.Strength += 2
		s.Endurance += 2
	case "miner":
		s.Strength += 3
		s.Endurance += 2
	case "shepherd":
		s.Endurance += 2
		s.Charisma += 1
	case "blacksmith":
		s.Strength += 3
		s.Dexterity += 1
	case "soldier":
		s.Strength += 2
		s.Dexterity += 2
		s.Endurance += 2
	case "hunter":
		s.Dexterity += 3
		s.Endurance += 1
	case "merchant":
		s.Charisma += 3
		s.Intelligence += 1
	case "scholar":
		s.Intelligence += 4
	case "noble":
		s.Charisma += 2
		s.Intelligence += 2
	case "adventurer":
		s.Strength += 1
		s.Dexterity += 1
		s.Endurance += 1
		s.Charisma += 1
	}
	return s
}

func rollPersonality(stream *rng.Stream) model.Personality {
	return model.Personality{
		Ambition:  stream.Next(),
		Courage:   stream.Next(),
		Greed:     stream.Next(),
		Loyalty:   stream.Next(),
		Kindness:  stream.Next(),
		Curiosity: stream.Next(),
	}
}

func rollNeeds(stream *rng.Stream) model.Needs {
	jitter := func(base int) int {
		v := base + stream.NextInt(-5, 5)
		if v < 0 {
			return 0
		}
		if v > 100 {
			return 100
		}
		return v
	}
	return model.Needs{
		Food:    jitter(70),
		Shelter: jitter(70),
		Safety:  jitter(70),
		Social:  jitter(60),
		Purpose: jitter(60),
	}
}
