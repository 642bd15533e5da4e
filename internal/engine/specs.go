package engine

import (
	"math/rand"
	"sort"

	"github.com/piwi3910/FloorFit/internal/model"
)

// GenerateSpecs expands a size distribution into concrete unit specs.
// Each category contributes its configured share of the target count, with
// a small per-unit size variation to avoid identical footprints. The result
// is sorted by area descending: largest-first packing reduces fragmentation.
func GenerateSpecs(settings model.PlaceSettings, targetCount int, rng *rand.Rand) []model.UnitSpec {
	if targetCount <= 0 {
		return nil
	}

	var specs []model.UnitSpec
	for _, cat := range model.SizeCategories {
		share := settings.Distribution[cat]
		dims, ok := settings.Dims[cat]
		if !ok || share <= 0 {
			continue
		}
		count := int(float64(targetCount) * share / 100)
		for i := 0; i < count; i++ {
			f := 1.0
			if settings.SizeJitter > 0 {
				f = 1 + (rng.Float64()*2-1)*settings.SizeJitter
			}
			w := dims.Width * f
			h := dims.Height * f
			specs = append(specs, model.UnitSpec{
				Width:    w,
				Height:   h,
				Area:     w * h,
				Category: cat,
				Color:    model.CategoryColors[cat],
			})
		}
	}

	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Area > specs[j].Area
	})
	return specs
}
