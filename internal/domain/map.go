package domain

import (
	"time"
)

// Map dimension limits in logical units.
const (
	MinMapSize = 300
	MaxMapSize = 3000
)

// MapShape identifies a map outline preset.
type MapShape string

const (
	MapShapeRectangle MapShape = "rectangle"
	MapShapeSquare    MapShape = "square"
	MapShapeVertical  MapShape = "vertical"
	MapShapeStadium   MapShape = "stadium"
	MapShapeCircle    MapShape = "circle"
)

// IsValid returns true if the shape is a known map shape.
func (s MapShape) IsValid() bool {
	switch s {
	case MapShapeRectangle, MapShapeSquare, MapShapeVertical, MapShapeStadium, MapShapeCircle:
		return true
	}
	return false
}

// MapConfig holds the display configuration of a map.
type MapConfig struct {
	Shape        MapShape `json:"shape"`
	BorderRadius string   `json:"borderRadius"`
	FillColor    string   `json:"fillColor,omitempty"`
	GridEnabled  bool     `json:"gridEnabled,omitempty"`
}

// Map represents the venue floor plan owned by one event. Width and height are
// logical units, independent of any on-screen pixel size.
type Map struct {
	ID                 string    `json:"id"`
	EventID            string    `json:"event_id"`
	Name               string    `json:"name"`
	BackgroundImageURL string    `json:"background_image_url,omitempty"`
	Width              int       `json:"width"`
	Height             int       `json:"height"`
	Config             MapConfig `json:"config"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Validate checks the map invariants.
func (m *Map) Validate() error {
	if m.EventID == "" {
		return NewValidationError("event_id", "event id is required")
	}
	if m.Name == "" {
		return NewValidationError("name", "map name is required")
	}
	if m.Width < MinMapSize {
		return NewValidationError("width", "map width must be at least 300 units")
	}
	if m.Height < MinMapSize {
		return NewValidationError("height", "map height must be at least 300 units")
	}
	if m.Width > MaxMapSize {
		return NewValidationError("width", "map width must not exceed 3000 units")
	}
	if m.Height > MaxMapSize {
		return NewValidationError("height", "map height must not exceed 3000 units")
	}
	if m.Config.Shape != "" && !m.Config.Shape.IsValid() {
		return NewValidationError("config.shape", "unknown map shape")
	}
	return nil
}
