package dto

// GeometryPayload is the wire form of a zone's geometry.
type GeometryPayload struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width" binding:"gte=0"`
	Height   float64 `json:"height" binding:"gte=0"`
	Rotation float64 `json:"rotation"`
	Shape    string  `json:"shape" binding:"omitempty"`
	Color    string  `json:"color" binding:"omitempty,max=50"`
}

// UpsertZoneRequest creates a zone when ZoneID is empty and patches the
// existing zone otherwise.
type UpsertZoneRequest struct {
	ZoneID      string          `json:"zone_id" binding:"omitempty"`
	TicketID    *string         `json:"ticket_id" binding:"omitempty"`
	ElementType string          `json:"element_type" binding:"omitempty"`
	Label       string          `json:"label" binding:"omitempty,max=200"`
	Geometry    GeometryPayload `json:"geometry_data" binding:"required"`
}

// Validate validates the UpsertZoneRequest.
func (r *UpsertZoneRequest) Validate() (bool, string) {
	if r.Geometry.Width < 0 {
		return false, "Zone width must not be negative"
	}
	if r.Geometry.Height < 0 {
		return false, "Zone height must not be negative"
	}
	return true, ""
}

// BulkUpsertZonesRequest replaces or extends the zone set of a map in one
// batch write.
type BulkUpsertZonesRequest struct {
	EventID string              `json:"event_id" binding:"required"`
	Zones   []UpsertZoneRequest `json:"zones" binding:"required"`
}

// Validate validates the BulkUpsertZonesRequest.
func (r *BulkUpsertZonesRequest) Validate() (bool, string) {
	if r.EventID == "" {
		return false, "Event ID is required"
	}
	if len(r.Zones) == 0 {
		return false, "At least one zone is required"
	}
	for i := range r.Zones {
		if ok, msg := r.Zones[i].Validate(); !ok {
			return false, msg
		}
	}
	return true, ""
}

// AssignTicketRequest binds a zone to a ticket, or clears the binding when
// TicketID is null.
type AssignTicketRequest struct {
	TicketID *string `json:"ticket_id"`
}

// ZoneOutcome reports the per-zone result of a bulk write.
type ZoneOutcome struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}
