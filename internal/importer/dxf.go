package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/FloorFit/internal/model"
)

// PlanResult holds the outcome of a floor-plan import. Errors are fatal for
// the import; warnings report skipped geometry.
type PlanResult struct {
	Plan     model.FloorPlan
	Errors   []string
	Warnings []string
}

// ImportPlanDXF reads a floor plan from a DXF file. Entities are classified
// structurally: LINEs, ARCs, and open polylines become wall runs, closed
// polylines become restricted areas (stairwells, shafts), and CIRCLEs mark
// entrances at their centers. Plan bounds are the extent of all imported
// geometry. Degenerate entities are skipped with a warning, never fatal.
func ImportPlanDXF(path string) PlanResult {
	result := PlanResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	plan := model.FloorPlan{}
	entranceCount := 0

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := lwPolylinePoints(e)
			if len(pts) < 2 {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			if e.Closed {
				if len(pts) < 3 {
					result.Warnings = append(result.Warnings,
						"Skipped closed LWPOLYLINE with fewer than 3 vertices")
					continue
				}
				plan.Restricted = append(plan.Restricted, model.Polygon(pts))
			} else {
				plan.Walls = append(plan.Walls, model.Polyline(pts))
			}

		case *entity.Circle:
			entranceCount++
			plan.Entrances = append(plan.Entrances, model.Entrance{
				ID:       fmt.Sprintf("entrance-%d", entranceCount),
				Position: model.Point2D{X: e.Center[0], Y: e.Center[1]},
			})

		case *entity.Arc:
			pts := arcPoints(e, 16)
			if len(pts) >= 2 {
				plan.Walls = append(plan.Walls, model.Polyline(pts))
			}

		case *entity.Line:
			start := model.Point2D{X: e.Start[0], Y: e.Start[1]}
			end := model.Point2D{X: e.End[0], Y: e.End[1]}
			if model.Distance(start, end) < 1e-9 {
				result.Warnings = append(result.Warnings, "Skipped zero-length LINE")
				continue
			}
			plan.Walls = append(plan.Walls, model.Polyline{start, end})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	plan.Bounds = planBounds(plan)
	if plan.Bounds.IsEmpty() {
		result.Errors = append(result.Errors, "No usable floor-plan geometry found in DXF file")
		return result
	}

	result.Plan = plan
	return result
}

// lwPolylinePoints converts an LWPOLYLINE to a point list, interpolating
// bulge arcs.
func lwPolylinePoints(lw *entity.LwPolyline) []model.Point2D {
	var pts []model.Point2D
	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := model.Point2D{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 && i+1 < len(lw.Vertices) {
			next := model.Point2D{X: lw.Vertices[i+1][0], Y: lw.Vertices[i+1][1]}
			arc := bulgePoints(current, next, bulge, 16)
			pts = append(pts, arc[:len(arc)-1]...)
		} else {
			pts = append(pts, current)
		}
	}
	return pts
}

// bulgePoints interpolates the arc defined by two endpoints and a DXF bulge
// factor (the tangent of a quarter of the included angle).
func bulgePoints(p1, p2 model.Point2D, bulge float64, numSegments int) []model.Point2D {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Hypot(dx, dy)
	if chordLen < 1e-9 {
		return []model.Point2D{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	pts := make([]model.Point2D, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, model.Point2D{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// arcPoints converts a DXF ARC entity to a polyline approximation.
func arcPoints(a *entity.Arc, numSegments int) []model.Point2D {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point2D, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point2D{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// planBounds computes the extent of all imported geometry, including
// entrance positions.
func planBounds(plan model.FloorPlan) model.Bounds {
	b := model.Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	extend := func(p model.Point2D) {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}

	for _, wall := range plan.Walls {
		for _, p := range wall {
			extend(p)
		}
	}
	for _, zone := range plan.Restricted {
		for _, p := range zone {
			extend(p)
		}
	}
	for _, e := range plan.Entrances {
		extend(e.Position)
	}

	if math.IsInf(b.MinX, 1) {
		return model.Bounds{}
	}
	return b
}
