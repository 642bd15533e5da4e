package model

// SizeCategory classifies a unit by footprint area.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeXLarge SizeCategory = "xlarge"
)

// SizeCategories lists all categories in ascending area order.
var SizeCategories = []SizeCategory{SizeSmall, SizeMedium, SizeLarge, SizeXLarge}

// CategoryDims holds the base footprint for a size category.
type CategoryDims struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

func (d CategoryDims) Area() float64 { return d.Width * d.Height }

// DefaultCategoryDims returns the standard base footprint per category.
func DefaultCategoryDims() map[SizeCategory]CategoryDims {
	return map[SizeCategory]CategoryDims{
		SizeSmall:  {Width: 2.0, Height: 1.5},
		SizeMedium: {Width: 3.0, Height: 2.0},
		SizeLarge:  {Width: 4.0, Height: 3.0},
		SizeXLarge: {Width: 5.0, Height: 4.0},
	}
}

// CategoryColors maps each size category to its display color.
var CategoryColors = map[SizeCategory]string{
	SizeSmall:  "#FFFF00",
	SizeMedium: "#FFA500",
	SizeLarge:  "#008000",
	SizeXLarge: "#800080",
}

// UnitSpec is a requested unit placement: a target footprint awaiting a
// position. Specs are processed in descending area order.
type UnitSpec struct {
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Area     float64      `json:"area"`
	Category SizeCategory `json:"size_category"`
	Color    string       `json:"color"`
}

// PlacedUnit is a UnitSpec bound to a position. It is created exclusively
// by the placement engine and is immutable once emitted; repositioning
// creates a new value.
type PlacedUnit struct {
	ID       string       `json:"id"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Area     float64      `json:"area"`
	Category SizeCategory `json:"size_category"`
	Color    string       `json:"color"`
	RowID    int          `json:"row_id"`
}

// NewPlacedUnit binds a spec to a position under the given identifier.
// Identifier generation is left to the caller so that a fixed seed yields
// byte-identical placements.
func NewPlacedUnit(id string, spec UnitSpec, x, y float64) PlacedUnit {
	return PlacedUnit{
		ID:       id,
		X:        x,
		Y:        y,
		Width:    spec.Width,
		Height:   spec.Height,
		Area:     spec.Width * spec.Height,
		Category: spec.Category,
		Color:    spec.Color,
		RowID:    -1,
	}
}

// Rect returns the unit's footprint rectangle.
func (u PlacedUnit) Rect() Rect {
	return Rect{X: u.X, Y: u.Y, Width: u.Width, Height: u.Height}
}

// Center returns the unit's footprint center.
func (u PlacedUnit) Center() Point2D { return u.Rect().Center() }

// Row is a horizontal cluster of placed units sharing an approximate
// vertical center. Rows are recomputed whenever the unit set changes.
type Row struct {
	ID     int     `json:"id"`
	Units  []int   `json:"units"` // indices into the placement's unit list
	Center Point2D `json:"center"`
}
