package model

// CorridorType distinguishes the three corridor classes.
type CorridorType string

const (
	// CorridorMain connects an entrance to a row of units.
	CorridorMain CorridorType = "main"
	// CorridorFacing connects two facing rows. Required by placement rules.
	CorridorFacing CorridorType = "facing"
	// CorridorSecondary restores connectivity between otherwise
	// disconnected unit groups.
	CorridorSecondary CorridorType = "secondary"
)

// Corridor is a walkable connection in the synthesized network. It does not
// own the units it connects; RowIDs and EntranceID are non-owning references.
type Corridor struct {
	ID         string       `json:"id"`
	Type       CorridorType `json:"type"`
	Points     []Point2D    `json:"points"` // ordered path, at least 2 points
	Width      float64      `json:"width"`
	Length     float64      `json:"length"`
	Mandatory  bool         `json:"is_mandatory"`
	RowIDs     []int        `json:"row_ids,omitempty"`
	EntranceID string       `json:"entrance_id,omitempty"`
}

// PathLength returns the summed segment length of a path.
func PathLength(points []Point2D) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// Start returns the first point of the corridor path.
func (c Corridor) Start() Point2D {
	if len(c.Points) == 0 {
		return Point2D{}
	}
	return c.Points[0]
}

// End returns the last point of the corridor path.
func (c Corridor) End() Point2D {
	if len(c.Points) == 0 {
		return Point2D{}
	}
	return c.Points[len(c.Points)-1]
}
