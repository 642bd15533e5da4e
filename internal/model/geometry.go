package model

import "math"

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point2D) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SegmentDistance returns the shortest distance from point p to the
// segment a-b.
func SegmentDistance(a, b, p Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(a, p)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Distance(Point2D{X: a.X + t*dx, Y: a.Y + t*dy}, p)
}

// ClipSegmentToRect clips segment a-b against rectangle r using the
// Liang-Barsky algorithm. Returns the clipped endpoints and whether any
// portion of the segment lies inside the rectangle.
func ClipSegmentToRect(a, b Point2D, r Rect) (Point2D, Point2D, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, a.X-r.X) || !clip(dx, r.MaxX()-a.X) ||
		!clip(-dy, a.Y-r.Y) || !clip(dy, r.MaxY()-a.Y) {
		return Point2D{}, Point2D{}, false
	}

	p0 := Point2D{X: a.X + t0*dx, Y: a.Y + t0*dy}
	p1 := Point2D{X: a.X + t1*dx, Y: a.Y + t1*dy}
	return p0, p1, true
}

// Length returns the total length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl); i++ {
		total += Distance(pl[i-1], pl[i])
	}
	return total
}

// BoundingRect returns the axis-aligned bounding rectangle of the polyline.
func (pl Polyline) BoundingRect() Rect {
	return boundingRect(pl)
}

// DistanceTo returns the shortest distance from p to any segment of the
// polyline. A single-point polyline degenerates to point distance.
func (pl Polyline) DistanceTo(p Point2D) float64 {
	if len(pl) == 0 {
		return math.Inf(1)
	}
	if len(pl) == 1 {
		return Distance(pl[0], p)
	}
	best := math.Inf(1)
	for i := 1; i < len(pl); i++ {
		if d := SegmentDistance(pl[i-1], pl[i], p); d < best {
			best = d
		}
	}
	return best
}

// Area returns the enclosed area of the polygon via the shoelace formula.
func (pg Polygon) Area() float64 {
	if len(pg) < 3 {
		return 0
	}
	sum := 0.0
	for i := range pg {
		j := (i + 1) % len(pg)
		sum += pg[i].X*pg[j].Y - pg[j].X*pg[i].Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the area-weighted centroid of the polygon. Degenerate
// polygons fall back to the vertex average.
func (pg Polygon) Centroid() Point2D {
	if len(pg) == 0 {
		return Point2D{}
	}
	var cx, cy, signed float64
	for i := range pg {
		j := (i + 1) % len(pg)
		cross := pg[i].X*pg[j].Y - pg[j].X*pg[i].Y
		signed += cross
		cx += (pg[i].X + pg[j].X) * cross
		cy += (pg[i].Y + pg[j].Y) * cross
	}
	if math.Abs(signed) < 1e-12 {
		// Zero-area ring: average the vertices instead.
		var sx, sy float64
		for _, p := range pg {
			sx += p.X
			sy += p.Y
		}
		n := float64(len(pg))
		return Point2D{X: sx / n, Y: sy / n}
	}
	f := signed * 3
	return Point2D{X: cx / f, Y: cy / f}
}

// BoundingRect returns the axis-aligned bounding rectangle of the polygon.
func (pg Polygon) BoundingRect() Rect {
	return boundingRect(pg)
}

// Contains reports whether p lies inside the polygon, using an even-odd
// ray cast.
func (pg Polygon) Contains(p Point2D) bool {
	if len(pg) < 3 {
		return false
	}
	inside := false
	j := len(pg) - 1
	for i := 0; i < len(pg); i++ {
		pi, pj := pg[i], pg[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DistanceTo returns the shortest distance from p to the polygon. Points
// inside the polygon have distance 0.
func (pg Polygon) DistanceTo(p Point2D) float64 {
	if len(pg) == 0 {
		return math.Inf(1)
	}
	if pg.Contains(p) {
		return 0
	}
	best := math.Inf(1)
	for i := range pg {
		j := (i + 1) % len(pg)
		if d := SegmentDistance(pg[i], pg[j], p); d < best {
			best = d
		}
	}
	return best
}

// ClipToRect clips the polygon to an axis-aligned rectangle using
// Sutherland-Hodgman. The result may be empty when they do not intersect.
func (pg Polygon) ClipToRect(r Rect) Polygon {
	if len(pg) < 3 {
		return nil
	}

	// inside predicates and line intersection per rectangle edge
	type edge struct {
		inside    func(Point2D) bool
		intersect func(a, b Point2D) Point2D
	}
	edges := []edge{
		{ // left
			func(p Point2D) bool { return p.X >= r.X },
			func(a, b Point2D) Point2D {
				t := (r.X - a.X) / (b.X - a.X)
				return Point2D{X: r.X, Y: a.Y + t*(b.Y-a.Y)}
			},
		},
		{ // right
			func(p Point2D) bool { return p.X <= r.MaxX() },
			func(a, b Point2D) Point2D {
				t := (r.MaxX() - a.X) / (b.X - a.X)
				return Point2D{X: r.MaxX(), Y: a.Y + t*(b.Y-a.Y)}
			},
		},
		{ // bottom
			func(p Point2D) bool { return p.Y >= r.Y },
			func(a, b Point2D) Point2D {
				t := (r.Y - a.Y) / (b.Y - a.Y)
				return Point2D{X: a.X + t*(b.X-a.X), Y: r.Y}
			},
		},
		{ // top
			func(p Point2D) bool { return p.Y <= r.MaxY() },
			func(a, b Point2D) Point2D {
				t := (r.MaxY() - a.Y) / (b.Y - a.Y)
				return Point2D{X: a.X + t*(b.X-a.X), Y: r.MaxY()}
			},
		},
	}

	output := Polygon(append([]Point2D(nil), pg...))
	for _, e := range edges {
		if len(output) == 0 {
			return nil
		}
		input := output
		output = nil
		prev := input[len(input)-1]
		for _, cur := range input {
			if e.inside(cur) {
				if !e.inside(prev) {
					output = append(output, e.intersect(prev, cur))
				}
				output = append(output, cur)
			} else if e.inside(prev) {
				output = append(output, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return output
}

// IntersectionArea returns the area of overlap between the polygon and a
// rectangle.
func (pg Polygon) IntersectionArea(r Rect) float64 {
	return pg.ClipToRect(r).Area()
}

func boundingRect(pts []Point2D) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = minf(minX, p.X)
		minY = minf(minY, p.Y)
		maxX = maxf(maxX, p.X)
		maxY = maxf(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
