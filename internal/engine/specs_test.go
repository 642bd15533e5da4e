package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FloorFit/internal/model"
)

func TestGenerateSpecs_Distribution(t *testing.T) {
	settings := defaultTestSettings()
	rng := rand.New(rand.NewSource(1))

	specs := GenerateSpecs(settings, 100, rng)

	counts := make(map[model.SizeCategory]int)
	for _, s := range specs {
		counts[s.Category]++
	}
	// 40/35/20/5 split of 100
	assert.Equal(t, 40, counts[model.SizeSmall])
	assert.Equal(t, 35, counts[model.SizeMedium])
	assert.Equal(t, 20, counts[model.SizeLarge])
	assert.Equal(t, 5, counts[model.SizeXLarge])
}

func TestGenerateSpecs_SortedByAreaDescending(t *testing.T) {
	settings := defaultTestSettings()
	rng := rand.New(rand.NewSource(1))

	specs := GenerateSpecs(settings, 40, rng)

	require.NotEmpty(t, specs)
	for i := 1; i < len(specs); i++ {
		assert.GreaterOrEqual(t, specs[i-1].Area, specs[i].Area)
	}
}

func TestGenerateSpecs_JitterWithinBounds(t *testing.T) {
	settings := defaultTestSettings()
	rng := rand.New(rand.NewSource(1))

	base := settings.Dims[model.SizeSmall]
	specs := GenerateSpecs(settings, 40, rng)

	for _, s := range specs {
		if s.Category != model.SizeSmall {
			continue
		}
		assert.InDelta(t, base.Width, s.Width, base.Width*settings.SizeJitter+1e-9)
		assert.InDelta(t, base.Height, s.Height, base.Height*settings.SizeJitter+1e-9)
	}
}

func TestGenerateSpecs_NoJitter(t *testing.T) {
	settings := defaultTestSettings()
	settings.SizeJitter = 0
	rng := rand.New(rand.NewSource(1))

	specs := GenerateSpecs(settings, 20, rng)
	for _, s := range specs {
		dims := settings.Dims[s.Category]
		assert.Equal(t, dims.Width, s.Width)
		assert.Equal(t, dims.Height, s.Height)
	}
}

func TestGenerateSpecs_ColorsMatchCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	specs := GenerateSpecs(defaultTestSettings(), 20, rng)

	require.NotEmpty(t, specs)
	for _, s := range specs {
		assert.Equal(t, model.CategoryColors[s.Category], s.Color)
	}
}

func TestGenerateSpecs_ZeroTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, GenerateSpecs(defaultTestSettings(), 0, rng))
}
