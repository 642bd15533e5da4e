package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/piwi3910/FloorFit/internal/model"
)

// Preset is a named, reusable parameter set.
type Preset struct {
	Name      string              `json:"name"`
	Settings  model.PlaceSettings `json:"settings"`
	IsBuiltIn bool                `json:"is_built_in"`
}

// BuiltInPresets returns the presets shipped with the application, one per
// placement strategy.
func BuiltInPresets() []Preset {
	balanced := model.DefaultPlaceSettings()

	compact := model.DefaultPlaceSettings()
	compact.Strategy = model.StrategyCompact
	compact.MinSpacing = 0.05

	wall := model.DefaultPlaceSettings()
	wall.Strategy = model.StrategyWallHugging
	wall.WallClearance = 0.3

	return []Preset{
		{Name: "Balanced", Settings: balanced, IsBuiltIn: true},
		{Name: "Compact", Settings: compact, IsBuiltIn: true},
		{Name: "Wall Hugging", Settings: wall, IsBuiltIn: true},
	}
}

// DefaultPresetsPath returns the default file path for custom presets.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SaveCustomPresets saves custom presets to a JSON file.
func SaveCustomPresets(path string, presets []Preset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomPresets loads custom presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Preset{}, nil
		}
		return nil, err
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}

	// Loaded presets are never built-in
	for i := range presets {
		presets[i].IsBuiltIn = false
	}
	return presets, nil
}

// AllPresets merges built-in and custom presets. Custom presets shadow
// built-ins of the same name; the result is sorted by name with built-ins
// first.
func AllPresets(custom []Preset) []Preset {
	byName := make(map[string]Preset)
	for _, p := range BuiltInPresets() {
		byName[p.Name] = p
	}
	for _, p := range custom {
		byName[p.Name] = p
	}

	all := make([]Preset, 0, len(byName))
	for _, p := range byName {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].IsBuiltIn != all[j].IsBuiltIn {
			return all[i].IsBuiltIn
		}
		return all[i].Name < all[j].Name
	})
	return all
}

// FindPreset looks up a preset by name across built-ins and custom presets.
func FindPreset(name string, custom []Preset) (Preset, bool) {
	for _, p := range AllPresets(custom) {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
