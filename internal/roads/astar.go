package roads

import (
	"container/heap"
	"math"

	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/model"
)

type astarNode struct {
	x, y  int
	g, f  float64
	seq   int // monotonic push counter, breaks f ties deterministically
	index int // heap.Interface bookkeeping
}

type astarQueue []*astarNode

func (q astarQueue) Len() int { return len(q) }
func (q astarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q astarQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *astarQueue) Push(x any) {
	n := len(*q)
	node := x.(*astarNode)
	node.index = n
	*q = append(*q, node)
}
func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

type gridKey struct{ x, y int }

func manhattan(ax, ay, bx, by int) float64 {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// FindPath runs A* over the 4-neighbour tile grid from (sx,sy) to
// (gx,gy), using MovementCost as the per-step cost and Manhattan
// distance as the admissible heuristic (spec §4.10). Returns nil if
// no path exists.
func FindPath(cat *catalog.Catalog, tiles [][]*model.Tile, sx, sy, gx, gy int) []model.Position {
	height := len(tiles)
	if height == 0 {
		return nil
	}
	width := len(tiles[0])

	gScore := map[gridKey]float64{{sx, sy}: 0}
	cameFrom := map[gridKey]gridKey{}
	closed := map[gridKey]bool{}

	pq := &astarQueue{}
	heap.Init(pq)
	seq := 0
	push := func(x, y int, g, f float64) {
		heap.Push(pq, &astarNode{x: x, y: y, g: g, f: f, seq: seq})
		seq++
	}
	push(sx, sy, 0, manhattan(sx, sy, gx, gy))

	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*astarNode)
		ck := gridKey{current.x, current.y}
		if closed[ck] {
			continue
		}
		closed[ck] = true

		if current.x == gx && current.y == gy {
			return reconstruct(cameFrom, sx, sy, gx, gy)
		}

		for _, d := range dirs {
			nx, ny := current.x+d[0], current.y+d[1]
			if nx < 0 || ny < 0 || ny >= height || nx >= width {
				continue
			}
			nk := gridKey{nx, ny}
			if closed[nk] {
				continue
			}
			stepCost := MovementCost(cat, tiles[ny][nx])
			if math.IsInf(stepCost, 1) {
				continue
			}
			tentativeG := current.g + stepCost
			if existing, ok := gScore[nk]; ok && tentativeG >= existing {
				continue
			}
			gScore[nk] = tentativeG
			cameFrom[nk] = ck
			push(nx, ny, tentativeG, tentativeG+manhattan(nx, ny, gx, gy))
		}
	}
	return nil
}

func reconstruct(cameFrom map[gridKey]gridKey, sx, sy, gx, gy int) []model.Position {
	path := []model.Position{{X: gx, Y: gy}}
	cur := gridKey{gx, gy}
	for cur != (gridKey{sx, sy}) {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, model.Position{X: prev.x, Y: prev.y})
		cur = prev
	}
	// reverse into start->goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
