// Package corridor synthesizes the corridor network connecting entrances
// and unit rows: mandatory main and facing corridors first, secondary
// corridors to restore connectivity, then redundancy pruning.
package corridor

import (
	"fmt"

	"github.com/piwi3910/FloorFit/internal/model"
)

// Generator builds corridor networks for a placement. It holds no state
// between runs; Generate is a one-shot multi-stage pipeline.
type Generator struct {
	Settings model.PlaceSettings
}

// NewGenerator returns a corridor generator using the given parameters.
func NewGenerator(settings model.PlaceSettings) *Generator {
	return &Generator{Settings: settings}
}

// Generate produces the pruned corridor network for a placement. Every
// mandatory corridor survives pruning, and the resulting unit graph is
// connected whenever at least one unit was placed.
func (g *Generator) Generate(plan model.FloorPlan, units []model.PlacedUnit, rows []model.Row) []model.Corridor {
	if len(units) == 0 {
		return nil
	}

	var corridors []model.Corridor
	corridors = append(corridors, g.mainCorridors(plan, rows)...)
	corridors = append(corridors, g.facingCorridors(rows)...)
	corridors = append(corridors, g.secondaryCorridors(units, corridors)...)
	return g.prune(corridors)
}

// mainCorridors connects every entrance to every row centroid. These are
// the access routes and are always mandatory.
func (g *Generator) mainCorridors(plan model.FloorPlan, rows []model.Row) []model.Corridor {
	var corridors []model.Corridor
	for ei, entrance := range plan.Entrances {
		eid := entrance.ID
		if eid == "" {
			eid = fmt.Sprintf("entrance-%d", ei)
		}
		origin := entrance.Position
		if len(entrance.Boundary) >= 3 {
			origin = entrance.Boundary.Centroid()
		}
		for _, row := range rows {
			points := []model.Point2D{origin, row.Center}
			corridors = append(corridors, model.Corridor{
				ID:         fmt.Sprintf("main-%s-%d", eid, row.ID),
				Type:       model.CorridorMain,
				Points:     points,
				Width:      g.Settings.MainWidth(),
				Length:     model.PathLength(points),
				Mandatory:  true,
				RowIDs:     []int{row.ID},
				EntranceID: eid,
			})
		}
	}
	return corridors
}

// facingCorridors connects every facing row pair: rows aligned on roughly
// the same horizontal band but horizontally separated. Required by
// placement rules, so always mandatory.
func (g *Generator) facingCorridors(rows []model.Row) []model.Corridor {
	var corridors []model.Corridor
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			c1, c2 := rows[i].Center, rows[j].Center
			if !g.rowsFacing(c1, c2) {
				continue
			}
			mid := model.Point2D{X: (c1.X + c2.X) / 2, Y: (c1.Y + c2.Y) / 2}
			points := []model.Point2D{c1, mid, c2}
			corridors = append(corridors, model.Corridor{
				ID:        fmt.Sprintf("facing-%d-%d", rows[i].ID, rows[j].ID),
				Type:      model.CorridorFacing,
				Points:    points,
				Width:     g.Settings.CorridorWidth,
				Length:    model.PathLength(points),
				Mandatory: true,
				RowIDs:    []int{rows[i].ID, rows[j].ID},
			})
		}
	}
	return corridors
}

func (g *Generator) rowsFacing(c1, c2 model.Point2D) bool {
	yDiff := c1.Y - c2.Y
	if yDiff < 0 {
		yDiff = -yDiff
	}
	xDiff := c1.X - c2.X
	if xDiff < 0 {
		xDiff = -xDiff
	}
	return yDiff <= g.Settings.FacingAlignTol && xDiff >= g.Settings.FacingMinGap
}

// secondaryCorridors restores connectivity across unit groups that the
// mandatory corridors left disconnected. For each pair of adjacent
// components, the closest unit pair gets a straight corridor.
func (g *Generator) secondaryCorridors(units []model.PlacedUnit, existing []model.Corridor) []model.Corridor {
	components := Components(units, existing)
	if len(components) <= 1 {
		return nil
	}

	var corridors []model.Corridor
	for k := 0; k+1 < len(components); k++ {
		a, b := closestPair(units, components[k], components[k+1])
		points := []model.Point2D{units[a].Center(), units[b].Center()}
		corridors = append(corridors, model.Corridor{
			ID:        fmt.Sprintf("secondary-%d", k),
			Type:      model.CorridorSecondary,
			Points:    points,
			Width:     g.Settings.SecondaryWidth(),
			Length:    model.PathLength(points),
			Mandatory: false,
		})
	}
	return corridors
}

// closestPair returns the unit index pair with minimal center distance
// across two components.
func closestPair(units []model.PlacedUnit, compA, compB []int) (int, int) {
	bestA, bestB := compA[0], compB[0]
	best := model.Distance(units[bestA].Center(), units[bestB].Center())
	for _, a := range compA {
		for _, b := range compB {
			if d := model.Distance(units[a].Center(), units[b].Center()); d < best {
				best = d
				bestA, bestB = a, b
			}
		}
	}
	return bestA, bestB
}
