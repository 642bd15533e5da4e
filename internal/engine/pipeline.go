package engine

import (
	"math/rand"

	"github.com/piwi3910/FloorFit/internal/corridor"
	"github.com/piwi3910/FloorFit/internal/model"
)

// Result bundles everything a placement run produces: the placed units with
// row assignments, the detected rows, the pruned corridor network, and
// aggregate statistics.
type Result struct {
	Plan      model.FloorPlan     `json:"plan"`
	Settings  model.PlaceSettings `json:"settings"`
	Units     []model.PlacedUnit  `json:"units"`
	Rows      []model.Row         `json:"rows"`
	Corridors []model.Corridor    `json:"corridors"`
	Stats     model.Stats         `json:"stats"`
}

// Run executes the full pipeline: spec generation, placement, row
// detection, and corridor synthesis. The pipeline is total; degenerate
// input produces an empty result, never an error.
func Run(plan model.FloorPlan, settings model.PlaceSettings) Result {
	rng := rand.New(rand.NewSource(settings.Seed))
	specs := GenerateSpecs(settings, settings.DerivedTargetCount(plan), rng)
	return RunWithSpecs(plan, settings, specs)
}

// RunWithSpecs executes the pipeline with an explicit spec list, as used
// when specs are imported rather than generated from the distribution.
func RunWithSpecs(plan model.FloorPlan, settings model.PlaceSettings, specs []model.UnitSpec) Result {
	placer := NewPlacer(settings)
	placement := placer.Place(plan, specs)

	rows := DetectRows(placement.Units, settings.RowThreshold)
	units := AssignRows(placement.Units, rows)

	corridors := corridor.NewGenerator(settings).Generate(plan, units, rows)

	return Result{
		Plan:      plan,
		Settings:  settings,
		Units:     units,
		Rows:      rows,
		Corridors: corridors,
		Stats:     model.ComputeStats(plan, settings, units, rows, corridors, placement.Skipped),
	}
}
