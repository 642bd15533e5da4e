package model

// Point2D represents a 2D coordinate in the floor plan's unit system (meters).
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the axis-aligned extent of a floor plan.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// IsEmpty reports whether the bounds enclose no usable area.
// A floor plan with empty bounds is treated as empty by the whole pipeline.
func (b Bounds) IsEmpty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

func (b Bounds) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// Center returns the centroid of the bounds.
func (b Bounds) Center() Point2D {
	return Point2D{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Inset shrinks the bounds by d on all sides. The result may be empty.
func (b Bounds) Inset(d float64) Bounds {
	return Bounds{MinX: b.MinX + d, MinY: b.MinY + d, MaxX: b.MaxX - d, MaxY: b.MaxY - d}
}

// ContainsRect reports whether r lies entirely within the bounds.
func (b Bounds) ContainsRect(r Rect) bool {
	return r.X >= b.MinX && r.Y >= b.MinY &&
		r.X+r.Width <= b.MaxX && r.Y+r.Height <= b.MaxY
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }
func (r Rect) Area() float64 { return r.Width * r.Height }

func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Expand grows the rectangle by d on all sides.
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Intersects reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X &&
		r.Y < o.MaxY() && r.MaxY() > o.Y
}

// IntersectionArea returns the area of overlap between two rectangles,
// or 0 when they do not intersect.
func (r Rect) IntersectionArea(o Rect) float64 {
	w := minf(r.MaxX(), o.MaxX()) - maxf(r.X, o.X)
	h := minf(r.MaxY(), o.MaxY()) - maxf(r.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// ContainsPoint reports whether p lies inside or on the rectangle.
func (r Rect) ContainsPoint(p Point2D) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Polyline is an open chain of points, typically a wall run.
type Polyline []Point2D

// Polygon is a closed ring of points. The last point implicitly connects
// back to the first.
type Polygon []Point2D

// Entrance is a corridor origin: a door or opening in the floor plan.
// Boundary is optional; when present, Position should be its centroid.
type Entrance struct {
	ID       string  `json:"id"`
	Position Point2D `json:"position"`
	Boundary Polygon `json:"boundary,omitempty"`
}

// FloorPlan is the immutable input geometry for a placement run.
// It is owned by the caller and read-only to the placement pipeline.
type FloorPlan struct {
	Bounds     Bounds     `json:"bounds"`
	Walls      []Polyline `json:"walls"`
	Restricted []Polygon  `json:"restricted_areas"`
	Entrances  []Entrance `json:"entrances"`
}

// IsEmpty reports whether the plan has no usable area.
func (fp FloorPlan) IsEmpty() bool { return fp.Bounds.IsEmpty() }

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
