package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FloorFit/internal/model"
)

func unitAt(x, y float64) model.PlacedUnit {
	return model.NewPlacedUnit("u", model.UnitSpec{Width: 2, Height: 1.5}, x, y)
}

func TestDetectRows_TwoBands(t *testing.T) {
	units := []model.PlacedUnit{
		unitAt(0, 0), unitAt(5, 0.5), unitAt(10, 1),
		unitAt(0, 10), unitAt(5, 10.5),
	}

	rows := DetectRows(units, 3.0)

	require.Len(t, rows, 2)
	assert.Len(t, rows[0].Units, 3)
	assert.Len(t, rows[1].Units, 2)
	assert.Less(t, rows[0].Center.Y, rows[1].Center.Y)
}

func TestDetectRows_EveryUnitInExactlyOneRow(t *testing.T) {
	units := []model.PlacedUnit{
		unitAt(0, 0), unitAt(3, 4), unitAt(6, 8), unitAt(9, 20), unitAt(12, 21),
	}

	rows := DetectRows(units, 3.0)

	seen := make(map[int]int)
	for _, row := range rows {
		for _, idx := range row.Units {
			seen[idx]++
		}
	}
	require.Len(t, seen, len(units))
	for idx, n := range seen {
		assert.Equal(t, 1, n, "unit %d appears in %d rows", idx, n)
	}
}

func TestDetectRows_SingleUnit(t *testing.T) {
	rows := DetectRows([]model.PlacedUnit{unitAt(5, 5)}, 3.0)

	require.Len(t, rows, 1)
	assert.Equal(t, []int{0}, rows[0].Units)
	assert.Equal(t, model.Point2D{X: 6, Y: 5.75}, rows[0].Center)
}

func TestDetectRows_Empty(t *testing.T) {
	assert.Nil(t, DetectRows(nil, 3.0))
}

func TestDetectRows_RunningMeanAbsorbsDrift(t *testing.T) {
	// Centers drift by 2 per unit: each stays within threshold of the
	// running mean, so the whole sequence is one row.
	units := []model.PlacedUnit{
		unitAt(0, 0), unitAt(3, 2), unitAt(6, 4),
	}

	rows := DetectRows(units, 3.0)
	assert.Len(t, rows, 1)
}

func TestAssignRows(t *testing.T) {
	units := []model.PlacedUnit{
		unitAt(0, 0), unitAt(5, 0), unitAt(0, 10),
	}
	rows := DetectRows(units, 3.0)
	require.Len(t, rows, 2)

	assigned := AssignRows(units, rows)

	assert.Equal(t, 0, assigned[0].RowID)
	assert.Equal(t, 0, assigned[1].RowID)
	assert.Equal(t, 1, assigned[2].RowID)

	// Input slice is untouched
	assert.Equal(t, -1, units[0].RowID)
}
