// Command worldgen is a thin driver around internal/generator: it
// generates one world from a seed and writes it to stdout as JSON. It
// exists for manual inspection and local debugging, not as a product
// CLI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talgya/legends-sub001/internal/generator"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	width := flag.Int("width", 256, "world width in tiles")
	height := flag.Int("height", 256, "world height in tiles")
	seed := flag.Int64("seed", 42, "generation seed")
	flag.Parse()

	cfg := generator.GenConfig{
		Width:  *width,
		Height: *height,
		Seed:   *seed,
		Progress: func(label string, progress float64) {
			slog.Info("progress", "phase", label, "pct", fmt.Sprintf("%.0f%%", progress*100))
		},
	}

	slog.Info("generating world", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)
	world, err := generator.Generate(cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("generation complete",
		"locations", world.Locations.Len(),
		"characters", world.Characters.Len(),
		"creatures", world.Creatures.Len(),
		"countries", world.Countries.Len(),
		"content_hash", world.ContentHash(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(world); err != nil {
		slog.Error("failed to encode world", "error", err)
		os.Exit(1)
	}
}
