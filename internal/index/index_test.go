package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FloorFit/internal/model"
)

func TestBuildAndQueryNearby(t *testing.T) {
	ix := New()
	ix.Build(CollectionWalls, []Geometry{
		Segment{A: model.Point2D{X: 0, Y: 0}, B: model.Point2D{X: 10, Y: 0}},
		Segment{A: model.Point2D{X: 0, Y: 50}, B: model.Point2D{X: 10, Y: 50}},
	})

	near := ix.QueryNearby(CollectionWalls, model.Point2D{X: 5, Y: 1}, 2)
	require.Len(t, near, 1)

	// Both walls within a large radius
	near = ix.QueryNearby(CollectionWalls, model.Point2D{X: 5, Y: 25}, 30)
	assert.Len(t, near, 2)

	// Nothing nearby
	assert.Empty(t, ix.QueryNearby(CollectionWalls, model.Point2D{X: 500, Y: 500}, 2))
}

func TestQueryUnbuiltCollection(t *testing.T) {
	ix := New()
	assert.Empty(t, ix.QueryNearby(CollectionUnits, model.Point2D{}, 10))
	assert.False(t, ix.Overlaps(CollectionUnits, model.Rect{Width: 5, Height: 5}, 0))
	assert.Equal(t, 0, ix.Count(CollectionUnits))
}

func TestOverlapsTolerance(t *testing.T) {
	ix := New()
	ix.Build(CollectionUnits, []Geometry{
		Box{Rect: model.Rect{X: 0, Y: 0, Width: 4, Height: 4}, UnitID: "a"},
	})

	probe := model.Rect{X: 3, Y: 3, Width: 4, Height: 4} // 1 m² overlap
	assert.True(t, ix.Overlaps(CollectionUnits, probe, 0))
	assert.True(t, ix.Overlaps(CollectionUnits, probe, 0.5))
	assert.False(t, ix.Overlaps(CollectionUnits, probe, 1.0))
	assert.False(t, ix.Overlaps(CollectionUnits, model.Rect{X: 10, Y: 10, Width: 2, Height: 2}, 0))
}

func TestOverlapsZoneArea(t *testing.T) {
	ix := New()
	ring := model.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	ix.Build(CollectionRestricted, []Geometry{Zone{Ring: ring}})

	assert.True(t, ix.Overlaps(CollectionRestricted, model.Rect{X: 8, Y: 8, Width: 4, Height: 4}, 0))
	assert.False(t, ix.Overlaps(CollectionRestricted, model.Rect{X: 11, Y: 11, Width: 4, Height: 4}, 0))
}

func TestOverlapsSegmentLength(t *testing.T) {
	ix := New()
	ix.Build(CollectionWalls, []Geometry{
		Segment{A: model.Point2D{X: 0, Y: 5}, B: model.Point2D{X: 20, Y: 5}},
	})

	// 10m of wall crosses the rect
	assert.True(t, ix.Overlaps(CollectionWalls, model.Rect{X: 5, Y: 0, Width: 10, Height: 10}, 5))
	assert.False(t, ix.Overlaps(CollectionWalls, model.Rect{X: 5, Y: 0, Width: 10, Height: 10}, 10))
}

func TestBuildSkipsDegenerateGeometry(t *testing.T) {
	ix := New()
	ix.Build(CollectionWalls, []Geometry{
		Segment{A: model.Point2D{X: 1, Y: 1}, B: model.Point2D{X: 1, Y: 1}}, // zero length
		Segment{A: model.Point2D{X: 0, Y: 0}, B: model.Point2D{X: 5, Y: 0}},
		nil,
		Zone{Ring: model.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}}, // too few points
	})

	assert.Equal(t, 1, ix.Count(CollectionWalls))
	assert.Equal(t, 3, ix.Skipped(CollectionWalls))
}

func TestBuildReplacesCollection(t *testing.T) {
	ix := New()
	ix.Build(CollectionUnits, []Geometry{
		Box{Rect: model.Rect{X: 0, Y: 0, Width: 2, Height: 2}},
	})
	require.Equal(t, 1, ix.Count(CollectionUnits))

	ix.Build(CollectionUnits, nil)
	assert.Equal(t, 0, ix.Count(CollectionUnits))
	assert.False(t, ix.Overlaps(CollectionUnits, model.Rect{Width: 10, Height: 10}, 0))
}

func TestInsertCreatesCollection(t *testing.T) {
	ix := New()
	ix.Insert(CollectionUnits, Box{Rect: model.Rect{X: 2, Y: 2, Width: 3, Height: 3}, UnitID: "u1"})
	ix.Insert(CollectionUnits, Box{}) // invalid, dropped

	assert.Equal(t, 1, ix.Count(CollectionUnits))
	assert.True(t, ix.Overlaps(CollectionUnits, model.Rect{X: 3, Y: 3, Width: 3, Height: 3}, 0))

	near := ix.QueryNearby(CollectionUnits, model.Point2D{X: 1, Y: 1}, 2)
	assert.Len(t, near, 1)
}

func TestSegmentsFromPolyline(t *testing.T) {
	pl := model.Polyline{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}
	segs := SegmentsFromPolyline(pl)
	require.Len(t, segs, 2)

	assert.Empty(t, SegmentsFromPolyline(model.Polyline{{X: 1, Y: 1}}))
}
