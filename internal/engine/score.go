package engine

import (
	"math"

	"github.com/piwi3910/FloorFit/internal/index"
	"github.com/piwi3910/FloorFit/internal/model"
)

// Spacing thresholds for the distribution reward. Positions further than
// spacingCeiling from every placed unit earn the full bonus; positions
// closer than crowdingFloor are penalized.
const (
	spacingCeiling = 2.0
	crowdingFloor  = 1.0
	wallBonusRange = 3.0
)

type scoreInput struct {
	rect     model.Rect
	plan     model.FloorPlan
	index    *index.Index
	settings model.PlaceSettings
}

// ScoreFunc rates a feasible candidate position; higher is better.
// Strategies are selected by configuration rather than separate placer
// implementations.
type ScoreFunc func(in scoreInput) float64

func scoreFunc(s model.Strategy) ScoreFunc {
	switch s {
	case model.StrategyCompact:
		return scoreCompact
	case model.StrategyWallHugging:
		return scoreWallHugging
	default:
		return scoreBalanced
	}
}

// centroidScore rewards proximity to the plan centroid, normalized by the
// plan extent so the term is scale-independent.
func centroidScore(in scoreInput) float64 {
	c := in.rect.Center()
	pc := in.plan.Bounds.Center()
	extent := in.plan.Bounds.Width() + in.plan.Bounds.Height()
	if extent <= 0 {
		return 0
	}
	return 1 - (math.Abs(c.X-pc.X)+math.Abs(c.Y-pc.Y))/extent
}

// spacingScore rewards a larger minimum distance to already-placed units,
// capped at the spacing ceiling. Even distribution without over-penalizing
// density.
func spacingScore(in scoreInput) float64 {
	c := in.rect.Center()
	nearby := in.index.QueryNearby(index.CollectionUnits, c, spacingCeiling)
	if len(nearby) == 0 {
		return 0.5
	}
	minDist := math.Inf(1)
	for _, g := range nearby {
		if d := g.DistanceTo(c); d < minDist {
			minDist = d
		}
	}
	if minDist < crowdingFloor {
		return -0.5
	}
	return 0.5 * minDist / spacingCeiling
}

// wallScore rewards wall-adjacent positions; placement along walls reduces
// circulation loss.
func wallScore(in scoreInput) float64 {
	c := in.rect.Center()
	nearby := in.index.QueryNearby(index.CollectionWalls, c, wallBonusRange)
	if len(nearby) == 0 {
		return 0
	}
	minDist := math.Inf(1)
	for _, g := range nearby {
		if d := g.DistanceTo(c); d < minDist {
			minDist = d
		}
	}
	return 0.4 * (1 - minDist/wallBonusRange)
}

func scoreBalanced(in scoreInput) float64 {
	return 1 + 0.3*centroidScore(in) + spacingScore(in)
}

func scoreCompact(in scoreInput) float64 {
	return 1 + centroidScore(in)
}

func scoreWallHugging(in scoreInput) float64 {
	return 1 + 0.3*centroidScore(in) + spacingScore(in) + wallScore(in)
}
