package index

import (
	"math"

	"github.com/piwi3910/FloorFit/internal/model"
)

// Segment is an indexed wall segment.
type Segment struct {
	A, B model.Point2D
}

func (s Segment) BoundingRect() model.Rect {
	minX := math.Min(s.A.X, s.B.X)
	minY := math.Min(s.A.Y, s.B.Y)
	return model.Rect{
		X: minX, Y: minY,
		Width:  math.Max(s.A.X, s.B.X) - minX,
		Height: math.Max(s.A.Y, s.B.Y) - minY,
	}
}

func (s Segment) DistanceTo(p model.Point2D) float64 {
	return model.SegmentDistance(s.A, s.B, p)
}

// OverlapMeasure returns the length of the segment portion inside r.
func (s Segment) OverlapMeasure(r model.Rect) float64 {
	p0, p1, ok := model.ClipSegmentToRect(s.A, s.B, r)
	if !ok {
		return 0
	}
	return model.Distance(p0, p1)
}

func (s Segment) Valid() bool {
	return model.Distance(s.A, s.B) > 1e-9
}

// SegmentsFromPolyline splits a wall polyline into indexable segments.
func SegmentsFromPolyline(pl model.Polyline) []Geometry {
	var segs []Geometry
	for i := 1; i < len(pl); i++ {
		segs = append(segs, Segment{A: pl[i-1], B: pl[i]})
	}
	return segs
}

// Zone is an indexed restricted-area polygon.
type Zone struct {
	Ring model.Polygon
}

func (z Zone) BoundingRect() model.Rect          { return z.Ring.BoundingRect() }
func (z Zone) DistanceTo(p model.Point2D) float64 { return z.Ring.DistanceTo(p) }

// OverlapMeasure returns the intersection area of the polygon and r.
func (z Zone) OverlapMeasure(r model.Rect) float64 {
	return z.Ring.IntersectionArea(r)
}

func (z Zone) Valid() bool {
	return len(z.Ring) >= 3 && z.Ring.Area() > 1e-9
}

// Box is an indexed unit footprint.
type Box struct {
	Rect model.Rect
	// UnitID references the placed unit this box was built from.
	UnitID string
}

func (b Box) BoundingRect() model.Rect { return b.Rect }

func (b Box) DistanceTo(p model.Point2D) float64 {
	dx := math.Max(math.Max(b.Rect.X-p.X, 0), p.X-b.Rect.MaxX())
	dy := math.Max(math.Max(b.Rect.Y-p.Y, 0), p.Y-b.Rect.MaxY())
	return math.Hypot(dx, dy)
}

// OverlapMeasure returns the intersection area of the two rectangles.
func (b Box) OverlapMeasure(r model.Rect) float64 {
	return b.Rect.IntersectionArea(r)
}

func (b Box) Valid() bool {
	return b.Rect.Width > 0 && b.Rect.Height > 0
}
