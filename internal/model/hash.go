package model

import (
	"encoding/hex"
	"fmt"
	"hash/fnv"
)

// ContentHash returns a stable fingerprint of the world's deterministic
// content: tiles, locations, characters, creatures, countries, and
// diplomatic relations, all in insertion order. GenerationID is
// intentionally excluded — it is a per-run correlation id, not
// generated content, so two runs of the same (width, height, seed)
// hash identically regardless of it.
func (w *World) ContentHash() string {
	h := fnv.New64a()
	write := func(format string, args ...any) {
		fmt.Fprintf(h, format, args...)
	}

	write("dims:%d,%d,%d\n", w.Width, w.Height, w.Seed)

	for _, row := range w.Tiles {
		for _, t := range row {
			write("tile:%d,%d,%.6f,%.6f,%.6f,%d,%d,%.6f,%d\n",
				t.X, t.Y, t.Elevation, t.Moisture, t.Temperature,
				t.TerrainType, t.Biome, t.Vegetation, t.RoadLevel)
			if t.ResourceDeposit != nil {
				write("deposit:%s,%.6f\n", t.ResourceDeposit.ResourceID, t.ResourceDeposit.Amount)
			}
			for _, f := range t.Features {
				write("feature:%d,%d\n", f.Type, f.Variant)
			}
		}
	}

	for _, id := range w.Locations.Keys() {
		loc := w.Locations.MustGet(id)
		write("loc:%s,%s,%d,%d,%d\n", loc.ID, loc.Type, loc.Position.X, loc.Position.Y, len(loc.ResidentIDs))
	}
	for _, id := range w.Characters.Keys() {
		c := w.Characters.MustGet(id)
		write("char:%s,%s,%s,%d\n", c.ID, c.Name, c.JobType, c.Age)
	}
	for _, id := range w.Creatures.Keys() {
		cr := w.Creatures.MustGet(id)
		write("creature:%s,%s,%d,%d\n", cr.ID, cr.Type, cr.Position.X, cr.Position.Y)
	}
	for _, id := range w.Countries.Keys() {
		co := w.Countries.MustGet(id)
		write("country:%s,%s,%s\n", co.ID, co.Name, co.CapitalLocationID)
	}
	for _, rel := range w.DiplomaticRelations {
		write("rel:%s,%s,%d,%.6f\n", rel.CountryAID, rel.CountryBID, rel.Type, rel.Strength)
	}

	return hex.EncodeToString(h.Sum(nil))
}
