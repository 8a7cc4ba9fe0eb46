package generator

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/characters"
	"github.com/talgya/legends-sub001/internal/creatures"
	"github.com/talgya/legends-sub001/internal/ids"
	"github.com/talgya/legends-sub001/internal/model"
	"github.com/talgya/legends-sub001/internal/piers"
	"github.com/talgya/legends-sub001/internal/politics"
	"github.com/talgya/legends-sub001/internal/rng"
	"github.com/talgya/legends-sub001/internal/roads"
	"github.com/talgya/legends-sub001/internal/settlements"
	"github.com/talgya/legends-sub001/internal/worldgen"
)

const phaseCount = 11

// Generate runs the full procedural pipeline described in spec §2: a
// fixed sequence of deterministic layers, 8 of which draw their own
// forked RNG stream from the root stream in a fixed order (elevation,
// temperature, moisture, resources, settlements, characters,
// creatures, politics), and assembles the result into a *model.World.
func Generate(cfg GenConfig) (*model.World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}

	cat := cfg.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogIncomplete, err)
		}
	}
	if len(cat.CreatureOrder) == 0 {
		return nil, fmt.Errorf("%w: no creature definitions", ErrCatalogIncomplete)
	}
	if len(cat.Biomes) == 0 {
		return nil, fmt.Errorf("%w: no biome definitions", ErrCatalogIncomplete)
	}

	runID := uuid.New().String()
	root := rng.New(cfg.Seed)
	gen := ids.New(cfg.Seed)

	report := func(phase int, label string) {
		slog.Info("generation phase", "run", runID, "phase", label, "step", phase, "of", phaseCount)
		if cfg.Progress != nil {
			cfg.Progress(label, float64(phase)/float64(phaseCount))
		}
	}

	elevStream := root.Fork()
	elevation := worldgen.ElevationField(elevStream, cfg.Width, cfg.Height)
	report(1, "Shaping continents")

	terrain := worldgen.TerrainField(elevation)
	report(2, "Classifying terrain")

	waterDist := worldgen.WaterDistanceField(terrain)
	tempStream := root.Fork()
	temperature := worldgen.TemperatureField(tempStream, cfg.Width, cfg.Height, elevation)
	moistStream := root.Fork()
	moisture := worldgen.MoistureField(moistStream, cfg.Width, cfg.Height, waterDist, elevation)
	report(3, "Simulating climate")

	tiles := worldgen.AssembleTiles(cat, elevation, temperature, moisture, terrain)
	report(4, "Growing biomes")

	resourceStream := root.Fork()
	worldgen.PlaceResources(resourceStream, cat, tiles)
	report(5, "Scattering resources")

	settlementStream := root.Fork()
	locations := settlements.Place(settlementStream, cat, gen, tiles)
	report(6, "Founding settlements")
	slog.Info("settlements founded", "run", runID, "count", humanize.Comma(int64(len(locations))))

	roads.Build(cat, tiles, locations)
	piers.Place(tiles, locations)
	report(7, "Building roads and piers")

	characterStream := root.Fork()
	charList := characters.Populate(characterStream, cat, gen, locations)
	byID := make(map[string]*model.Character, len(charList))
	for _, c := range charList {
		byID[c.ID] = c
	}
	report(8, "Populating the world")
	slog.Info("population grown", "run", runID, "count", humanize.Comma(int64(len(charList))))

	creatureStream := root.Fork()
	creatureList := creatures.Spawn(creatureStream, cat, gen, tiles)
	report(9, "Spawning creatures")

	politicsStream := root.Fork()
	countries, capitalPos := politics.Govern(politicsStream, gen, locations, byID)
	relations := politics.Diplomacy(politicsStream, countries, capitalPos)
	report(10, "Establishing kingdoms")

	world := model.NewWorld(cfg.Width, cfg.Height, cfg.Seed)
	world.Tiles = tiles
	world.GenerationID = runID

	for _, loc := range locations {
		world.Locations.Set(loc.ID, loc)
	}
	for _, c := range charList {
		world.Characters.Set(c.ID, c)
	}
	for _, c := range creatureList {
		world.Creatures.Set(c.ID, c)
	}
	for _, c := range countries {
		world.Countries.Set(c.ID, c)
	}
	world.DiplomaticRelations = relations

	report(11, "World complete")

	return world, nil
}
