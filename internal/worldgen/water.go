package worldgen

import "github.com/talgya/legends-sub001/internal/model"

// WaterDistanceField runs a multi-source BFS (spec §4.6) over 4-
// neighbours starting from every water tile at distance 0, propagating
// dist+1 to land. Iteration order of the initial source set does not
// affect the result: BFS distance is well-defined regardless of the
// order sources are enqueued in.
func WaterDistanceField(terrain [][]model.TerrainType) [][]int {
	height := len(terrain)
	if height == 0 {
		return nil
	}
	width := len(terrain[0])

	dist := make([][]int, height)
	for y := range dist {
		dist[y] = make([]int, width)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}

	type point struct{ x, y int }
	var queue []point

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if terrain[y][x].IsWater() {
				dist[y][x] = 0
				queue = append(queue, point{x, y})
			}
		}
	}

	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, d := range dirs {
			nx, ny := p.x+d[0], p.y+d[1]
			if nx < 0 || ny < 0 || ny >= height || nx >= width {
				continue
			}
			if dist[ny][nx] != -1 {
				continue
			}
			dist[ny][nx] = dist[p.y][p.x] + 1
			queue = append(queue, point{nx, ny})
		}
	}

	return dist
}
