// Package engine implements the unit placement algorithm: a candidate-grid
// greedy search with local scoring, backed by a per-run spatial index.
package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/piwi3910/FloorFit/internal/index"
	"github.com/piwi3910/FloorFit/internal/model"
)

// Placement is the outcome of one placement pass. Units satisfy the
// non-overlap, containment, and restricted-exclusion invariants; specs that
// could not be placed anywhere are counted in Skipped rather than failing
// the run.
type Placement struct {
	Units   []model.PlacedUnit
	Skipped int
}

// Placer runs the placement algorithm. Each Placer owns its spatial index;
// runs do not share state.
type Placer struct {
	Settings model.PlaceSettings
	Index    *index.Index
}

// NewPlacer returns a placer with a fresh spatial index.
func NewPlacer(settings model.PlaceSettings) *Placer {
	return &Placer{Settings: settings, Index: index.New()}
}

// Place positions as many specs as possible inside the plan. Specs are
// processed largest-area first; each one gets the highest-scoring candidate
// position that satisfies all constraints, or is skipped when none exists.
// Identical (plan, specs, seed) inputs yield identical output.
func (p *Placer) Place(plan model.FloorPlan, specs []model.UnitSpec) Placement {
	usable := plan.Bounds.Inset(p.Settings.WallClearance)
	if plan.IsEmpty() || usable.IsEmpty() || len(specs) == 0 {
		return Placement{Skipped: len(specs)}
	}

	p.buildObstacleIndexes(plan)

	rng := rand.New(rand.NewSource(p.Settings.Seed))
	candidates := p.candidateGrid(plan.Bounds, len(specs), rng)
	if len(candidates) == 0 {
		return Placement{Skipped: len(specs)}
	}

	ordered := append([]model.UnitSpec(nil), specs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area > ordered[j].Area
	})

	score := scoreFunc(p.Settings.Strategy)
	used := make([]bool, len(candidates))
	result := Placement{}

	for _, spec := range ordered {
		bestIdx := -1
		bestScore := math.Inf(-1)

		for ci, cand := range candidates {
			if used[ci] {
				continue
			}
			rect := model.Rect{X: cand.X, Y: cand.Y, Width: spec.Width, Height: spec.Height}
			if !p.feasible(rect, usable) {
				continue
			}
			s := score(scoreInput{
				rect:     rect,
				plan:     plan,
				index:    p.Index,
				settings: p.Settings,
			})
			if s > bestScore {
				bestScore = s
				bestIdx = ci
			}
		}

		if bestIdx < 0 {
			result.Skipped++
			continue
		}

		cand := candidates[bestIdx]
		used[bestIdx] = true
		unit := model.NewPlacedUnit(unitID(p.Settings.Seed, len(result.Units)), spec, cand.X, cand.Y)
		result.Units = append(result.Units, unit)

		// Later specs must see this unit as an obstacle.
		p.Index.Insert(index.CollectionUnits, index.Box{Rect: unit.Rect(), UnitID: unit.ID})
	}

	return result
}

// feasible checks the three placement constraints: containment within the
// clearance-shrunk bounds, zero intersection with restricted zones, and
// overlap with already-placed units kept within the spacing tolerance.
func (p *Placer) feasible(rect model.Rect, usable model.Bounds) bool {
	if !usable.ContainsRect(rect) {
		return false
	}
	if p.Index.Overlaps(index.CollectionRestricted, rect, 0) {
		return false
	}
	if p.Index.Overlaps(index.CollectionUnits, rect, p.Settings.MinSpacing) {
		return false
	}
	return true
}

func (p *Placer) buildObstacleIndexes(plan model.FloorPlan) {
	var wallGeoms []index.Geometry
	for _, wall := range plan.Walls {
		wallGeoms = append(wallGeoms, index.SegmentsFromPolyline(wall)...)
	}
	p.Index.Build(index.CollectionWalls, wallGeoms)

	var zoneGeoms []index.Geometry
	for _, zone := range plan.Restricted {
		zoneGeoms = append(zoneGeoms, index.Zone{Ring: zone})
	}
	p.Index.Build(index.CollectionRestricted, zoneGeoms)

	p.Index.Build(index.CollectionUnits, nil)
}

// candidateGrid oversamples the bounds with roughly 3x targetCount jittered
// grid positions. Jitter breaks up axis-aligned clustering artifacts;
// shuffling spreads early (large) units across the whole plan.
func (p *Placer) candidateGrid(bounds model.Bounds, targetCount int, rng *rand.Rand) []model.Point2D {
	area := bounds.Area()
	if area <= 0 || targetCount <= 0 {
		return nil
	}

	spacing := math.Sqrt(area / float64(3*targetCount))
	if spacing <= 0 {
		return nil
	}

	var points []model.Point2D
	for x := bounds.MinX + spacing; x < bounds.MaxX-spacing/2; x += spacing {
		for y := bounds.MinY + spacing; y < bounds.MaxY-spacing/2; y += spacing {
			jx := (rng.Float64()*2 - 1) * spacing * 0.2
			jy := (rng.Float64()*2 - 1) * spacing * 0.2
			points = append(points, model.Point2D{X: x + jx, Y: y + jy})
		}
	}

	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})

	if limit := 3 * targetCount; len(points) > limit {
		points = points[:limit]
	}
	return points
}

// unitID derives a stable identifier from the run seed and placement
// ordinal, keeping placements reproducible.
func unitID(seed int64, ordinal int) string {
	name := fmt.Sprintf("floorfit-unit-%d-%d", seed, ordinal)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
