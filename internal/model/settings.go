package model

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Strategy names a placement scoring strategy.
type Strategy string

const (
	// StrategyBalanced rewards central positions and even spacing.
	StrategyBalanced Strategy = "balanced"
	// StrategyCompact rewards central positions only, packing tightly.
	StrategyCompact Strategy = "compact"
	// StrategyWallHugging additionally rewards wall-adjacent positions.
	StrategyWallHugging Strategy = "wall-hugging"
)

// PlaceSettings holds every tunable parameter of a placement run.
type PlaceSettings struct {
	// Unit generation
	Distribution map[SizeCategory]float64     `json:"distribution" toml:"distribution"` // percent of total count per category
	Dims         map[SizeCategory]CategoryDims `json:"category_dims" toml:"category_dims"`
	SizeJitter   float64                      `json:"size_jitter" toml:"size_jitter"` // relative size variation, e.g. 0.1 for ±10%
	TargetCount  int                          `json:"target_count" toml:"target_count"` // 0 derives a count from usable area

	// Placement constraints
	MinSpacing    float64  `json:"min_spacing" toml:"min_spacing"`       // overlap tolerance between units
	WallClearance float64  `json:"wall_clearance" toml:"wall_clearance"` // margin kept from the plan bounds
	Strategy      Strategy `json:"strategy" toml:"strategy"`
	Seed          int64    `json:"seed" toml:"seed"`

	// Row detection
	RowThreshold float64 `json:"row_threshold" toml:"row_threshold"` // max deviation from running row mean

	// Corridor network
	CorridorWidth     float64 `json:"corridor_width" toml:"corridor_width"`
	FacingAlignTol    float64 `json:"facing_align_tol" toml:"facing_align_tol"` // max vertical separation of facing rows
	FacingMinGap      float64 `json:"facing_min_gap" toml:"facing_min_gap"`     // min horizontal separation of facing rows
	PruneDistance     float64 `json:"prune_distance" toml:"prune_distance"`     // endpoint proximity for overlap pruning
	MinCorridorLength float64 `json:"min_corridor_length" toml:"min_corridor_length"`
}

// DefaultPlaceSettings returns the standard parameter set.
func DefaultPlaceSettings() PlaceSettings {
	return PlaceSettings{
		Distribution: map[SizeCategory]float64{
			SizeSmall:  40,
			SizeMedium: 35,
			SizeLarge:  20,
			SizeXLarge: 5,
		},
		Dims:              DefaultCategoryDims(),
		SizeJitter:        0.1,
		TargetCount:       0,
		MinSpacing:        0.1,
		WallClearance:     0.5,
		Strategy:          StrategyBalanced,
		Seed:              1,
		RowThreshold:      3.0,
		CorridorWidth:     1.5,
		FacingAlignTol:    5.0,
		FacingMinGap:      3.0,
		PruneDistance:     2.0,
		MinCorridorLength: 1.0,
	}
}

// MainWidth returns the width used for main corridors.
func (s PlaceSettings) MainWidth() float64 { return 1.5 * s.CorridorWidth }

// SecondaryWidth returns the width used for secondary corridors.
func (s PlaceSettings) SecondaryWidth() float64 { return s.CorridorWidth * 2 / 3 }

// DerivedTargetCount resolves the effective unit count for a plan. An
// explicit TargetCount wins; otherwise the count is derived from the usable
// area and clamped to a practical range.
func (s PlaceSettings) DerivedTargetCount(plan FloorPlan) int {
	if s.TargetCount > 0 {
		return s.TargetCount
	}
	usable := plan.Bounds.Inset(s.WallClearance).Area()
	count := int(math.Round(usable / 12))
	if count < 8 {
		count = 8
	}
	if count > 40 {
		count = 40
	}
	return count
}

// LoadPlaceSettings reads settings from a TOML file. Fields absent from the
// file keep their defaults.
func LoadPlaceSettings(path string) (PlaceSettings, error) {
	s := DefaultPlaceSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// SavePlaceSettings writes settings to a TOML file.
func SavePlaceSettings(path string, s PlaceSettings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}
