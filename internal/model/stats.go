package model

// Stats aggregates the outcome of a placement run for reporting and export.
type Stats struct {
	TotalUnits     int                  `json:"total_units"`
	TotalArea      float64              `json:"total_area"`
	AverageArea    float64              `json:"average_area"`
	PerCategory    map[SizeCategory]int `json:"per_category"`
	SkippedSpecs   int                  `json:"skipped_specs"`
	RowCount       int                  `json:"row_count"`
	CorridorCount  int                  `json:"corridor_count"`
	CorridorLength float64              `json:"corridor_length"`
	MandatoryCount int                  `json:"mandatory_count"`
	Coverage       float64              `json:"coverage"` // placed area / usable plan area
}

// ComputeStats derives aggregate statistics from a finished run.
func ComputeStats(plan FloorPlan, settings PlaceSettings, units []PlacedUnit, rows []Row, corridors []Corridor, skipped int) Stats {
	stats := Stats{
		PerCategory:  make(map[SizeCategory]int),
		SkippedSpecs: skipped,
		RowCount:     len(rows),
	}

	for _, u := range units {
		stats.TotalUnits++
		stats.TotalArea += u.Area
		stats.PerCategory[u.Category]++
	}
	if stats.TotalUnits > 0 {
		stats.AverageArea = stats.TotalArea / float64(stats.TotalUnits)
	}

	for _, c := range corridors {
		stats.CorridorCount++
		stats.CorridorLength += c.Length
		if c.Mandatory {
			stats.MandatoryCount++
		}
	}

	if usable := plan.Bounds.Inset(settings.WallClearance).Area(); usable > 0 {
		stats.Coverage = stats.TotalArea / usable
	}
	return stats
}
