package domain

import (
	"testing"
)

func validZone() *Zone {
	return &Zone{
		ID:          "zone-1",
		MapID:       "map-1",
		ElementType: ElementTypeSeatingArea,
		Label:       "Section A",
		Geometry: Geometry{
			X:      100,
			Y:      100,
			Width:  200,
			Height: 150,
			Shape:  ZoneShapeRect,
		},
	}
}

func TestZone_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(z *Zone)
		wantErr bool
	}{
		{
			name:   "valid zone",
			mutate: func(z *Zone) {},
		},
		{
			name:    "missing map id",
			mutate:  func(z *Zone) { z.MapID = "" },
			wantErr: true,
		},
		{
			name:    "unknown element type",
			mutate:  func(z *Zone) { z.ElementType = "BALCONY" },
			wantErr: true,
		},
		{
			name:    "negative width",
			mutate:  func(z *Zone) { z.Geometry.Width = -1 },
			wantErr: true,
		},
		{
			name:    "negative height",
			mutate:  func(z *Zone) { z.Geometry.Height = -10 },
			wantErr: true,
		},
		{
			name:   "zero extent is allowed",
			mutate: func(z *Zone) { z.Geometry.Width = 0; z.Geometry.Height = 0 },
		},
		{
			name:    "unknown shape tag",
			mutate:  func(z *Zone) { z.Geometry.Shape = "star" },
			wantErr: true,
		},
		{
			name:   "circle shape",
			mutate: func(z *Zone) { z.Geometry.Shape = ZoneShapeCircle },
		},
		{
			name:   "polygon shape",
			mutate: func(z *Zone) { z.Geometry.Shape = ZoneShapePolygon },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := validZone()
			tt.mutate(z)

			err := z.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestZone_Validate_Defaults(t *testing.T) {
	z := &Zone{
		MapID:    "map-1",
		Geometry: Geometry{Width: 100, Height: 100},
	}

	if err := z.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if z.ElementType != ElementTypeSeatingArea {
		t.Errorf("expected element type default SEATING_AREA, got %q", z.ElementType)
	}
	if z.Geometry.Shape != ZoneShapeRect {
		t.Errorf("expected shape default rect, got %q", z.Geometry.Shape)
	}
}

func TestZone_Sellable(t *testing.T) {
	z := validZone()
	if z.Sellable() {
		t.Error("zone without ticket must not be sellable")
	}

	empty := ""
	z.TicketID = &empty
	if z.Sellable() {
		t.Error("zone with empty ticket id must not be sellable")
	}

	ticketID := "ticket-1"
	z.TicketID = &ticketID
	if !z.Sellable() {
		t.Error("zone bound to a ticket must be sellable")
	}

	// A stage keeps its geometry but is never sellable without a binding
	stage := validZone()
	stage.ElementType = ElementTypeStage
	stage.TicketID = nil
	if stage.Sellable() {
		t.Error("stage without ticket must not be sellable")
	}
}

func TestZone_Within(t *testing.T) {
	m := &Map{Width: 700, Height: 500}

	tests := []struct {
		name string
		geo  Geometry
		want bool
	}{
		{"inside", Geometry{X: 100, Y: 100, Width: 200, Height: 150}, true},
		{"touching right edge", Geometry{X: 500, Y: 0, Width: 200, Height: 100}, true},
		{"touching bottom edge", Geometry{X: 0, Y: 400, Width: 100, Height: 100}, true},
		{"overflows right", Geometry{X: 600, Y: 0, Width: 200, Height: 100}, false},
		{"overflows bottom", Geometry{X: 0, Y: 450, Width: 100, Height: 100}, false},
		{"negative x", Geometry{X: -1, Y: 0, Width: 50, Height: 50}, false},
		{"negative y", Geometry{X: 0, Y: -5, Width: 50, Height: 50}, false},
		{"fills the map", Geometry{X: 0, Y: 0, Width: 700, Height: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := &Zone{Geometry: tt.geo}
			if got := z.Within(m); got != tt.want {
				t.Errorf("Within = %v, want %v", got, tt.want)
			}
		})
	}
}
