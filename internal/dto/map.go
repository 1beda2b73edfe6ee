package dto

import (
	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

// CreateMapRequest represents the request to create a venue map. Width and
// height may be omitted when a shape preset is chosen; the preset defaults
// are applied instead.
type CreateMapRequest struct {
	EventID            string `json:"event_id" binding:"omitempty"`
	Name               string `json:"name" binding:"omitempty,min=1,max=200"`
	Shape              string `json:"shape" binding:"omitempty"`
	Width              int    `json:"width" binding:"omitempty,gte=0"`
	Height             int    `json:"height" binding:"omitempty,gte=0"`
	BackgroundImageURL string `json:"background_image_url" binding:"omitempty,max=2000"`
	FillColor          string `json:"fill_color" binding:"omitempty,max=50"`
	GridEnabled        bool   `json:"grid_enabled"`
}

// Validate validates the CreateMapRequest. Any valid map shape is accepted;
// only preset shapes carry default dimensions, so non-preset shapes (circle)
// must bring explicit dimensions.
func (r *CreateMapRequest) Validate() (bool, string) {
	if r.EventID == "" {
		return false, "Event ID is required"
	}
	if r.Name == "" {
		return false, "Map name is required"
	}
	if r.Shape != "" && !domain.MapShape(r.Shape).IsValid() {
		return false, "Unknown map shape"
	}
	if r.Width <= 0 || r.Height <= 0 {
		if _, ok := domain.PresetByID(domain.MapShape(r.Shape)); !ok {
			return false, "Either a shape preset or explicit dimensions are required"
		}
	}
	return true, ""
}

// MapPreviewResponse carries the scale and on-screen dimensions for fitting a
// map into the preview viewport.
type MapPreviewResponse struct {
	MapID         string  `json:"map_id"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Viewport      float64 `json:"viewport"`
	Scale         float64 `json:"scale"`
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
}

// UpdateMapRequest represents a partial update of a map. Zero width/height
// means "leave unchanged".
type UpdateMapRequest struct {
	Name               string  `json:"name" binding:"omitempty,min=1,max=200"`
	Shape              string  `json:"shape" binding:"omitempty"`
	Width              int     `json:"width" binding:"omitempty,gte=0"`
	Height             int     `json:"height" binding:"omitempty,gte=0"`
	BackgroundImageURL *string `json:"background_image_url" binding:"omitempty"`
	FillColor          *string `json:"fill_color" binding:"omitempty"`
	GridEnabled        *bool   `json:"grid_enabled" binding:"omitempty"`
}

// Validate validates the UpdateMapRequest.
func (r *UpdateMapRequest) Validate() (bool, string) {
	if r.Name == "" && r.Shape == "" && r.Width == 0 && r.Height == 0 &&
		r.BackgroundImageURL == nil && r.FillColor == nil && r.GridEnabled == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Shape != "" && !domain.MapShape(r.Shape).IsValid() {
		return false, "Unknown map shape"
	}
	return true, ""
}
