// Package piers places a single pier feature for settlements that
// need water access (spec §4.12).
package piers

import (
	"math"

	"github.com/talgya/legends-sub001/internal/model"
)

var pierTypes = map[string]bool{
	"fishing_village": true,
	"port":            true,
	"town":            true,
	"city":            true,
	"castle":          true,
}

var dirs4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Place runs spec §4.12 for every non-destroyed location: eligible
// settlements (by type, or island status) get a pier feature on the
// best-scoring candidate tile in their 5x5 neighbourhood, if any
// candidate exists.
func Place(tiles [][]*model.Tile, locations []*model.Location) {
	for _, loc := range locations {
		if loc.IsDestroyed {
			continue
		}
		if !pierTypes[loc.Type] && !isIsland(tiles, loc.Position.X, loc.Position.Y) {
			continue
		}
		placePierFor(tiles, loc)
	}
}

func placePierFor(tiles [][]*model.Tile, loc *model.Location) {
	height := len(tiles)
	cx, cy := loc.Position.X, loc.Position.Y

	bestScore := math.Inf(-1)
	var best *model.Tile

	for dy := -2; dy <= 2; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= height {
			continue
		}
		width := len(tiles[ny])
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := cx + dx
			if nx < 0 || nx >= width {
				continue
			}
			candidate := tiles[ny][nx]
			if !candidate.TerrainType.IsWater() {
				continue
			}
			if candidate.HasFeature(model.FeaturePier) {
				continue
			}

			landNeighbor := false
			waterNeighbors := 0
			for _, d := range dirs4 {
				px, py := nx+d[0], ny+d[1]
				if py < 0 || py >= height || px < 0 || px >= len(tiles[py]) {
					continue
				}
				if tiles[py][px].TerrainType.IsWater() {
					waterNeighbors++
				} else {
					landNeighbor = true
				}
			}
			if !landNeighbor || waterNeighbors == 0 {
				continue
			}
			if !inSizableWaterBody(tiles, nx, ny) {
				continue
			}

			score := float64(10*waterNeighbors) - float64(manhattan(nx, ny, cx, cy))
			if score > bestScore {
				bestScore = score
				best = candidate
			}
		}
	}

	if best != nil {
		best.Features = append(best.Features, model.Feature{Type: model.FeaturePier, Variant: 0})
	}
}

func manhattan(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// inSizableWaterBody bounded-flood-fills from (x,y) over water tiles,
// capped at 100, and reports whether the body has at least 10 tiles.
func inSizableWaterBody(tiles [][]*model.Tile, x, y int) bool {
	height := len(tiles)
	visited := map[[2]int]bool{{x, y}: true}
	queue := [][2]int{{x, y}}
	count := 0

	for head := 0; head < len(queue) && count < 100; head++ {
		p := queue[head]
		count++
		for _, d := range dirs4 {
			nx, ny := p[0]+d[0], p[1]+d[1]
			if ny < 0 || ny >= height || nx < 0 || nx >= len(tiles[ny]) {
				continue
			}
			if visited[[2]int{nx, ny}] {
				continue
			}
			if !tiles[ny][nx].TerrainType.IsWater() {
				continue
			}
			visited[[2]int{nx, ny}] = true
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return count >= 10
}

// isIsland BFS-floods land from (x,y) over 4-neighbours, capped at
// 200 tiles; fewer than 200 reachable land tiles means the settlement
// sits on an island (spec §4.12).
func isIsland(tiles [][]*model.Tile, x, y int) bool {
	height := len(tiles)
	visited := map[[2]int]bool{{x, y}: true}
	queue := [][2]int{{x, y}}
	count := 0

	for head := 0; head < len(queue) && count < 200; head++ {
		p := queue[head]
		count++
		for _, d := range dirs4 {
			nx, ny := p[0]+d[0], p[1]+d[1]
			if ny < 0 || ny >= height || nx < 0 || nx >= len(tiles[ny]) {
				continue
			}
			if visited[[2]int{nx, ny}] {
				continue
			}
			if tiles[ny][nx].TerrainType.IsWater() {
				continue
			}
			visited[[2]int{nx, ny}] = true
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return count < 200
}
