package domain

// ShapePreset describes the default dimensions and border radius applied when
// an organizer picks a base outline for a new map. The circle tag is only used
// ad hoc for zone geometry and is intentionally not a map preset.
type ShapePreset struct {
	ID            MapShape `json:"id"`
	Label         string   `json:"label"`
	DefaultWidth  int      `json:"default_width"`
	DefaultHeight int      `json:"default_height"`
	BorderRadius  string   `json:"border_radius"`
}

var shapePresets = []ShapePreset{
	{ID: MapShapeRectangle, Label: "Rectangle", DefaultWidth: 700, DefaultHeight: 500, BorderRadius: "0px"},
	{ID: MapShapeSquare, Label: "Square", DefaultWidth: 600, DefaultHeight: 600, BorderRadius: "0px"},
	{ID: MapShapeVertical, Label: "Vertical", DefaultWidth: 400, DefaultHeight: 700, BorderRadius: "0px"},
	{ID: MapShapeStadium, Label: "Stadium", DefaultWidth: 800, DefaultHeight: 500, BorderRadius: "250px"},
}

// ShapePresets returns the ordered preset catalog.
func ShapePresets() []ShapePreset {
	out := make([]ShapePreset, len(shapePresets))
	copy(out, shapePresets)
	return out
}

// PresetByID looks up a preset by its shape id.
func PresetByID(id MapShape) (ShapePreset, bool) {
	for _, p := range shapePresets {
		if p.ID == id {
			return p, true
		}
	}
	return ShapePreset{}, false
}

// ApplyPreset replaces the map's dimensions and border radius with the preset
// defaults, preserving the name. Applying the same preset twice is idempotent.
func (m *Map) ApplyPreset(p ShapePreset) {
	m.Width = p.DefaultWidth
	m.Height = p.DefaultHeight
	m.Config.Shape = p.ID
	m.Config.BorderRadius = p.BorderRadius
}
