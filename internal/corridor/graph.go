package corridor

import (
	"sort"

	"github.com/piwi3910/FloorFit/internal/model"
)

// Edge is a corridor projected onto the unit graph: the corridor's
// endpoints snapped to their nearest units.
type Edge struct {
	A, B     int // unit indices
	Corridor string
}

// Edges maps corridors onto the unit graph. Each corridor contributes one
// edge between the units nearest to its two endpoints.
func Edges(units []model.PlacedUnit, corridors []model.Corridor) []Edge {
	var edges []Edge
	for _, c := range corridors {
		if len(c.Points) < 2 {
			continue
		}
		a := nearestUnit(units, c.Start())
		b := nearestUnit(units, c.End())
		if a < 0 || b < 0 {
			continue
		}
		edges = append(edges, Edge{A: a, B: b, Corridor: c.ID})
	}
	return edges
}

// Components returns the connected components of the unit graph induced by
// the given corridors. Components are ordered by their smallest unit index
// and each component's members are sorted, keeping output deterministic.
func Components(units []model.PlacedUnit, corridors []model.Corridor) [][]int {
	if len(units) == 0 {
		return nil
	}

	parent := make([]int, len(units))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for _, e := range Edges(units, corridors) {
		union(e.A, e.B)
	}

	groups := make(map[int][]int)
	for i := range units {
		root := find(i)
		groups[root] = append(groups[root], i)
	}

	components := make([][]int, 0, len(groups))
	for _, members := range groups {
		sort.Ints(members)
		components = append(components, members)
	}
	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})
	return components
}

// nearestUnit returns the index of the unit whose center is closest to p,
// or -1 for an empty unit list.
func nearestUnit(units []model.PlacedUnit, p model.Point2D) int {
	best := -1
	bestDist := 0.0
	for i, u := range units {
		d := model.Distance(u.Center(), p)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
