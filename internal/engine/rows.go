package engine

import (
	"sort"

	"github.com/piwi3910/FloorFit/internal/model"
)

// DetectRows partitions placed units into rows by vertical-center
// clustering. Units are scanned in vertical order; a unit joins the open
// row while its vertical center stays within threshold of the row's
// running mean, otherwise a new row opens. Every unit lands in exactly one
// row, and a single isolated unit forms a row of size one.
func DetectRows(units []model.PlacedUnit, threshold float64) []model.Row {
	if len(units) == 0 {
		return nil
	}

	order := make([]int, len(units))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return units[order[a]].Center().Y < units[order[b]].Center().Y
	})

	var rows []model.Row
	var open []int
	meanY := 0.0

	closeRow := func() {
		if len(open) == 0 {
			return
		}
		rows = append(rows, model.Row{
			ID:     len(rows),
			Units:  open,
			Center: rowCenter(units, open),
		})
	}

	for _, idx := range order {
		cy := units[idx].Center().Y
		if len(open) == 0 {
			open = []int{idx}
			meanY = cy
			continue
		}
		if abs(cy-meanY) <= threshold {
			open = append(open, idx)
			meanY += (cy - meanY) / float64(len(open))
			continue
		}
		closeRow()
		open = []int{idx}
		meanY = cy
	}
	closeRow()

	return rows
}

// AssignRows returns a copy of units with each unit's RowID set from the
// detected rows. Units are immutable once emitted, so reassignment creates
// new values.
func AssignRows(units []model.PlacedUnit, rows []model.Row) []model.PlacedUnit {
	out := append([]model.PlacedUnit(nil), units...)
	for _, row := range rows {
		for _, idx := range row.Units {
			out[idx].RowID = row.ID
		}
	}
	return out
}

func rowCenter(units []model.PlacedUnit, member []int) model.Point2D {
	var sx, sy float64
	for _, idx := range member {
		c := units[idx].Center()
		sx += c.X
		sy += c.Y
	}
	n := float64(len(member))
	return model.Point2D{X: sx / n, Y: sy / n}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
