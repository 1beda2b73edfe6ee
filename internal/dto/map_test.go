package dto

import (
	"testing"
)

func TestCreateMapRequest_Validate(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateMapRequest
		valid bool
	}{
		{
			name:  "preset only",
			req:   CreateMapRequest{EventID: "e1", Name: "Hall", Shape: "rectangle"},
			valid: true,
		},
		{
			name:  "explicit dimensions only",
			req:   CreateMapRequest{EventID: "e1", Name: "Hall", Width: 700, Height: 500},
			valid: true,
		},
		{
			name: "missing event id",
			req:  CreateMapRequest{Name: "Hall", Shape: "rectangle"},
		},
		{
			name: "missing name",
			req:  CreateMapRequest{EventID: "e1", Shape: "rectangle"},
		},
		{
			name: "neither preset nor dimensions",
			req:  CreateMapRequest{EventID: "e1", Name: "Hall"},
		},
		{
			name: "partial dimensions without preset",
			req:  CreateMapRequest{EventID: "e1", Name: "Hall", Width: 700},
		},
		{
			name:  "circle with explicit dimensions",
			req:   CreateMapRequest{EventID: "e1", Name: "Hall", Shape: "circle", Width: 500, Height: 500},
			valid: true,
		},
		{
			name: "circle without dimensions",
			req:  CreateMapRequest{EventID: "e1", Name: "Hall", Shape: "circle"},
		},
		{
			name: "unknown shape",
			req:  CreateMapRequest{EventID: "e1", Name: "Hall", Shape: "triangle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := tt.req.Validate()
			if valid != tt.valid {
				t.Errorf("Validate() = %v (%q), want %v", valid, msg, tt.valid)
			}
			if !valid && msg == "" {
				t.Error("invalid request must carry a message")
			}
		})
	}
}

func TestUpdateMapRequest_Validate(t *testing.T) {
	t.Run("empty update rejected", func(t *testing.T) {
		req := UpdateMapRequest{}
		if valid, _ := req.Validate(); valid {
			t.Error("expected empty update to be rejected")
		}
	})

	t.Run("name only", func(t *testing.T) {
		req := UpdateMapRequest{Name: "Renamed"}
		if valid, msg := req.Validate(); !valid {
			t.Errorf("expected valid, got %q", msg)
		}
	})

	t.Run("grid toggle only", func(t *testing.T) {
		enabled := true
		req := UpdateMapRequest{GridEnabled: &enabled}
		if valid, msg := req.Validate(); !valid {
			t.Errorf("expected valid, got %q", msg)
		}
	})

	t.Run("circle shape", func(t *testing.T) {
		req := UpdateMapRequest{Shape: "circle"}
		if valid, msg := req.Validate(); !valid {
			t.Errorf("expected valid, got %q", msg)
		}
	})

	t.Run("unknown shape", func(t *testing.T) {
		req := UpdateMapRequest{Shape: "blob"}
		if valid, _ := req.Validate(); valid {
			t.Error("expected unknown shape to be rejected")
		}
	})
}

func TestBulkUpsertZonesRequest_Validate(t *testing.T) {
	t.Run("valid batch", func(t *testing.T) {
		req := BulkUpsertZonesRequest{
			EventID: "e1",
			Zones: []UpsertZoneRequest{
				{Geometry: GeometryPayload{X: 0, Y: 0, Width: 100, Height: 100}},
				{ZoneID: "z2", Geometry: GeometryPayload{X: 200, Y: 0, Width: 50, Height: 50}},
			},
		}
		if valid, msg := req.Validate(); !valid {
			t.Errorf("expected valid, got %q", msg)
		}
	})

	t.Run("missing event id", func(t *testing.T) {
		req := BulkUpsertZonesRequest{Zones: []UpsertZoneRequest{{}}}
		if valid, _ := req.Validate(); valid {
			t.Error("expected missing event id to be rejected")
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		req := BulkUpsertZonesRequest{EventID: "e1"}
		if valid, _ := req.Validate(); valid {
			t.Error("expected empty batch to be rejected")
		}
	})

	t.Run("invalid zone in batch", func(t *testing.T) {
		req := BulkUpsertZonesRequest{
			EventID: "e1",
			Zones: []UpsertZoneRequest{
				{Geometry: GeometryPayload{Width: -5}},
			},
		}
		if valid, _ := req.Validate(); valid {
			t.Error("expected negative width to be rejected")
		}
	})
}
