// Package index provides a grid-bucket spatial index over named geometry
// collections. It answers proximity and overlap queries in roughly constant
// time per query, which keeps placement feasibility checks sub-linear even
// with thousands of wall segments.
package index

import (
	"math"
	"sort"
	"sync"

	"github.com/piwi3910/FloorFit/internal/model"
)

// Collection names used by the placement pipeline.
const (
	CollectionWalls      = "walls"
	CollectionRestricted = "restricted"
	CollectionUnits      = "units"
)

// Geometry is anything the index can store: wall segments, restricted-zone
// polygons, and unit boxes.
type Geometry interface {
	// BoundingRect returns the axis-aligned bounding box.
	BoundingRect() model.Rect
	// DistanceTo returns the shortest distance from p to the geometry.
	DistanceTo(p model.Point2D) float64
	// OverlapMeasure returns how much the geometry intersects r:
	// intersection area for polygons and boxes, clipped length for segments.
	OverlapMeasure(r model.Rect) float64
	// Valid reports whether the geometry is well formed. Invalid geometry
	// is skipped during Build rather than indexed.
	Valid() bool
}

type cellKey struct{ cx, cy int }

// collection is one independently rebuildable grid index. It is built
// fully before being swapped into the Index, so readers never observe a
// partial build.
type collection struct {
	cellSize float64
	buckets  map[cellKey][]int
	geoms    []Geometry
	skipped  int
}

// Index holds the three named collections used by placement and corridor
// synthesis. The zero value is not usable; call New.
type Index struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

// New returns an empty index. Each placement run owns its own instance;
// there is no shared or ambient index state.
func New() *Index {
	return &Index{collections: make(map[string]*collection)}
}

// Build replaces the named collection with a fresh index over geoms.
// Degenerate geometries are counted and skipped, never fatal. The new
// collection is assembled off to the side and swapped in atomically.
func (ix *Index) Build(name string, geoms []Geometry) {
	col := buildCollection(geoms)
	ix.mu.Lock()
	ix.collections[name] = col
	ix.mu.Unlock()
}

// Insert adds a single geometry to the named collection, creating the
// collection if it does not exist. Used by the placement engine to register
// each committed unit before the next spec is evaluated.
func (ix *Index) Insert(name string, g Geometry) {
	if g == nil || !g.Valid() {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	col, ok := ix.collections[name]
	if !ok {
		col = &collection{cellSize: defaultCellSize, buckets: make(map[cellKey][]int)}
		ix.collections[name] = col
	}
	idx := len(col.geoms)
	col.geoms = append(col.geoms, g)
	col.addToBuckets(idx, g.BoundingRect())
}

// QueryNearby returns all geometries in the named collection within radius
// of point. An unbuilt collection yields an empty result: no known
// obstacles is a valid answer.
func (ix *Index) QueryNearby(name string, point model.Point2D, radius float64) []Geometry {
	ix.mu.RLock()
	col := ix.collections[name]
	ix.mu.RUnlock()
	if col == nil || radius < 0 {
		return nil
	}

	probe := model.Rect{X: point.X - radius, Y: point.Y - radius, Width: 2 * radius, Height: 2 * radius}
	var result []Geometry
	for _, i := range col.candidates(probe) {
		if col.geoms[i].DistanceTo(point) <= radius {
			result = append(result, col.geoms[i])
		}
	}
	return result
}

// Overlaps reports whether rect intersects any geometry in the named
// collection by more than tolerance. An unbuilt collection never overlaps.
func (ix *Index) Overlaps(name string, rect model.Rect, tolerance float64) bool {
	ix.mu.RLock()
	col := ix.collections[name]
	ix.mu.RUnlock()
	if col == nil {
		return false
	}
	for _, i := range col.candidates(rect) {
		if col.geoms[i].OverlapMeasure(rect) > tolerance {
			return true
		}
	}
	return false
}

// Count returns the number of indexed geometries in the named collection.
func (ix *Index) Count(name string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if col := ix.collections[name]; col != nil {
		return len(col.geoms)
	}
	return 0
}

// Skipped returns how many degenerate geometries were dropped when the
// named collection was last built.
func (ix *Index) Skipped(name string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if col := ix.collections[name]; col != nil {
		return col.skipped
	}
	return 0
}

const defaultCellSize = 2.0

func buildCollection(geoms []Geometry) *collection {
	col := &collection{buckets: make(map[cellKey][]int)}

	var valid []Geometry
	sizeSum := 0.0
	for _, g := range geoms {
		if g == nil || !g.Valid() {
			col.skipped++
			continue
		}
		bb := g.BoundingRect()
		sizeSum += math.Max(bb.Width, bb.Height)
		valid = append(valid, g)
	}

	// Cell size tracks the average geometry extent so bucket occupancy
	// stays low for both short wall segments and large zone polygons.
	col.cellSize = defaultCellSize
	if len(valid) > 0 {
		if avg := sizeSum / float64(len(valid)); avg > col.cellSize {
			col.cellSize = avg
		}
	}

	col.geoms = valid
	for i, g := range valid {
		col.addToBuckets(i, g.BoundingRect())
	}
	return col
}

func (c *collection) addToBuckets(idx int, bb model.Rect) {
	x0, y0 := c.cell(bb.X, bb.Y)
	x1, y1 := c.cell(bb.MaxX(), bb.MaxY())
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey{cx, cy}
			c.buckets[key] = append(c.buckets[key], idx)
		}
	}
}

func (c *collection) cell(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellSize)), int(math.Floor(y / c.cellSize))
}

// candidates returns the deduplicated, ordered indices of geometries whose
// buckets intersect probe. Ordering keeps queries deterministic.
func (c *collection) candidates(probe model.Rect) []int {
	x0, y0 := c.cell(probe.X, probe.Y)
	x1, y1 := c.cell(probe.MaxX(), probe.MaxY())

	seen := make(map[int]struct{})
	var out []int
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			for _, i := range c.buckets[cellKey{cx, cy}] {
				if _, dup := seen[i]; dup {
					continue
				}
				seen[i] = struct{}{}
				out = append(out, i)
			}
		}
	}
	sort.Ints(out)
	return out
}
