package domain

import (
	"time"
)

// ElementType classifies the function of a zone on the map.
type ElementType string

const (
	ElementTypeStage       ElementType = "STAGE"
	ElementTypeSeatingArea ElementType = "SEATING_AREA"
	ElementTypeObject      ElementType = "OBJECT"
)

// IsValid returns true if the element type is known.
func (t ElementType) IsValid() bool {
	switch t {
	case ElementTypeStage, ElementTypeSeatingArea, ElementTypeObject:
		return true
	}
	return false
}

// ZoneShape is the geometry tag of a placed zone. Unlike map shapes this is a
// closed set so rendering never branches on an unknown value.
type ZoneShape string

const (
	ZoneShapeRect    ZoneShape = "rect"
	ZoneShapeCircle  ZoneShape = "circle"
	ZoneShapePolygon ZoneShape = "polygon"
)

// IsValid returns true if the shape tag is known.
func (s ZoneShape) IsValid() bool {
	switch s {
	case ZoneShapeRect, ZoneShapeCircle, ZoneShapePolygon:
		return true
	}
	return false
}

// Geometry holds the position and extent of a zone in map units.
type Geometry struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Rotation float64   `json:"rotation"`
	Shape    ZoneShape `json:"shape"`
	Color    string    `json:"color,omitempty"`
}

// Zone represents a placed geometric region on a map. A nil TicketID means the
// zone is not sellable (a stage or decorative object).
type Zone struct {
	ID          string      `json:"id"`
	MapID       string      `json:"map_id"`
	TicketID    *string     `json:"ticket_id,omitempty"`
	ElementType ElementType `json:"element_type"`
	Label       string      `json:"label,omitempty"`
	Geometry    Geometry    `json:"geometry_data"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Sellable returns true if the zone is bound to a ticket.
func (z *Zone) Sellable() bool {
	return z.TicketID != nil && *z.TicketID != ""
}

// Validate checks the zone invariants.
func (z *Zone) Validate() error {
	if z.MapID == "" {
		return NewValidationError("map_id", "map id is required")
	}
	if z.ElementType == "" {
		z.ElementType = ElementTypeSeatingArea
	}
	if !z.ElementType.IsValid() {
		return NewValidationError("element_type", "unknown element type")
	}
	if z.Geometry.Width < 0 {
		return NewValidationError("geometry_data.width", "zone width must not be negative")
	}
	if z.Geometry.Height < 0 {
		return NewValidationError("geometry_data.height", "zone height must not be negative")
	}
	if z.Geometry.Shape == "" {
		z.Geometry.Shape = ZoneShapeRect
	}
	if !z.Geometry.Shape.IsValid() {
		return NewValidationError("geometry_data.shape", "unknown zone shape")
	}
	return nil
}

// Within reports whether the zone's bounding box lies inside the map bounds.
func (z *Zone) Within(m *Map) bool {
	g := z.Geometry
	if g.X < 0 || g.Y < 0 {
		return false
	}
	return g.X+g.Width <= float64(m.Width) && g.Y+g.Height <= float64(m.Height)
}
