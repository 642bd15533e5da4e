package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	plan := FloorPlan{Bounds: Bounds{MaxX: 11, MaxY: 11}}
	settings := DefaultPlaceSettings() // WallClearance 0.5 -> usable 10x10

	units := []PlacedUnit{
		NewPlacedUnit("a", UnitSpec{Width: 2, Height: 2, Category: SizeSmall}, 0, 0),
		NewPlacedUnit("b", UnitSpec{Width: 4, Height: 4, Category: SizeLarge}, 5, 5),
	}
	rows := []Row{{ID: 0, Units: []int{0, 1}}}
	corridors := []Corridor{
		{Type: CorridorMain, Length: 10, Mandatory: true},
		{Type: CorridorSecondary, Length: 5},
	}

	stats := ComputeStats(plan, settings, units, rows, corridors, 3)

	assert.Equal(t, 2, stats.TotalUnits)
	assert.InDelta(t, 20.0, stats.TotalArea, 1e-9)
	assert.InDelta(t, 10.0, stats.AverageArea, 1e-9)
	assert.Equal(t, 1, stats.PerCategory[SizeSmall])
	assert.Equal(t, 1, stats.PerCategory[SizeLarge])
	assert.Equal(t, 3, stats.SkippedSpecs)
	assert.Equal(t, 1, stats.RowCount)
	assert.Equal(t, 2, stats.CorridorCount)
	assert.InDelta(t, 15.0, stats.CorridorLength, 1e-9)
	assert.Equal(t, 1, stats.MandatoryCount)
	assert.InDelta(t, 0.2, stats.Coverage, 1e-9)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(FloorPlan{}, DefaultPlaceSettings(), nil, nil, nil, 0)
	assert.Equal(t, 0, stats.TotalUnits)
	assert.Equal(t, 0.0, stats.AverageArea)
	assert.Equal(t, 0.0, stats.Coverage)
}
