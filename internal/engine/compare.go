package engine

import "github.com/piwi3910/FloorFit/internal/model"

// StrategyResult summarizes one scoring strategy's outcome on a plan.
type StrategyResult struct {
	Strategy model.Strategy `json:"strategy"`
	Placed   int            `json:"placed"`
	Skipped  int            `json:"skipped"`
	Coverage float64        `json:"coverage"`
}

// CompareStrategies runs the full pipeline once per scoring strategy and
// reports placed counts and coverage, so callers can pick the strategy that
// suits a plan before committing to a run.
func CompareStrategies(plan model.FloorPlan, settings model.PlaceSettings) []StrategyResult {
	strategies := []model.Strategy{
		model.StrategyBalanced,
		model.StrategyCompact,
		model.StrategyWallHugging,
	}

	results := make([]StrategyResult, 0, len(strategies))
	for _, s := range strategies {
		trial := settings
		trial.Strategy = s
		res := Run(plan, trial)
		results = append(results, StrategyResult{
			Strategy: s,
			Placed:   res.Stats.TotalUnits,
			Skipped:  res.Stats.SkippedSpecs,
			Coverage: res.Stats.Coverage,
		})
	}
	return results
}

// BestStrategy returns the comparison entry with the most placed units,
// breaking ties by coverage. Mirrors picking the best of several packing
// attempts rather than trusting a single heuristic.
func BestStrategy(results []StrategyResult) (StrategyResult, bool) {
	if len(results) == 0 {
		return StrategyResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Placed > best.Placed || (r.Placed == best.Placed && r.Coverage > best.Coverage) {
			best = r
		}
	}
	return best, true
}
