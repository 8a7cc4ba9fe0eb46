package roads

import (
	"math"
	"sort"

	"github.com/talgya/legends-sub001/internal/catalog"
	"github.com/talgya/legends-sub001/internal/model"
)

// excludedTypes are location types the road builder never connects,
// per spec §4.10 — lair/ruin-style points of interest, should any
// ever be present among locations.
var excludedTypes = map[string]bool{
	"dungeon":     true,
	"ruins":       true,
	"dragon_lair": true,
	"bandit_camp": true,
}

// typeImportance implements spec §4.10's `w(type)` weight table.
var typeImportance = map[string]int{
	"city":            5,
	"town":            4,
	"castle":          4,
	"port":            3,
	"village":         2,
	"fishing_village": 2,
	"hamlet":          1,
	"mine":            1,
	"farm":            1,
	"lumber_camp":     1,
}

func importanceOf(t string) int {
	return typeImportance[t]
}

type pair struct {
	a, b       int // indices into the routable-settlements slice
	distance   float64
	importance int
	order      int // insertion order of this pair, for tie-breaks
}

func euclidean(a, b model.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Build runs the full spec §4.10 road builder: Kruskal MST over
// eligible settlement pairs, an extras pass adding a bounded number of
// bonus highways, and A*-routed tile painting for every selected edge.
func Build(cat *catalog.Catalog, tiles [][]*model.Tile, locations []*model.Location) {
	var routable []*model.Location
	for _, loc := range locations {
		if loc.IsDestroyed || excludedTypes[loc.Type] {
			continue
		}
		routable = append(routable, loc)
	}
	n := len(routable)
	if n < 2 {
		return
	}

	var pairs []pair
	order := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclidean(routable[i].Position, routable[j].Position)
			if d > 30 {
				continue
			}
			imp := importanceOf(routable[i].Type) + importanceOf(routable[j].Type)
			pairs = append(pairs, pair{a: i, b: j, distance: d, importance: imp, order: order})
			order++
		}
	}

	key := func(p pair) float64 {
		if p.importance == 0 {
			return math.Inf(1)
		}
		return p.distance / float64(p.importance)
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		ki, kj := key(pairs[i]), key(pairs[j])
		if ki != kj {
			return ki < kj
		}
		return pairs[i].order < pairs[j].order
	})

	uf := newUnionFind(n)
	var selected []pair
	edgesNeeded := n - 1
	for _, p := range pairs {
		if len(selected) >= edgesNeeded {
			break
		}
		if uf.union(p.a, p.b) {
			selected = append(selected, p)
		}
	}

	inMST := map[[2]int]bool{}
	for _, p := range selected {
		inMST[[2]int{p.a, p.b}] = true
	}

	maxExtras := n / 10
	if maxExtras < 2 {
		maxExtras = 2
	}
	majorTypes := map[string]bool{"town": true, "city": true, "castle": true, "port": true}
	extras := 0
	for _, p := range pairs {
		if extras >= maxExtras {
			break
		}
		if inMST[[2]int{p.a, p.b}] {
			continue
		}
		if p.distance > 20 {
			continue
		}
		if !majorTypes[routable[p.a].Type] || !majorTypes[routable[p.b].Type] {
			continue
		}
		selected = append(selected, p)
		extras++
	}

	for _, p := range selected {
		from, to := routable[p.a], routable[p.b]
		path := FindPath(cat, tiles, from.Position.X, from.Position.Y, to.Position.X, to.Position.Y)
		if path == nil {
			continue
		}
		level := 1
		if p.importance >= 6 {
			level = 3
		} else if p.importance >= 4 {
			level = 2
		}
		for _, pos := range path {
			t := tiles[pos.Y][pos.X]
			if level > t.RoadLevel {
				t.RoadLevel = level
			}
		}
	}
}
