package service

import (
	"context"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/dto"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/repository"
)

// MapService defines the business logic for venue maps.
type MapService interface {
	// Create creates a map for an event, applying shape preset defaults
	Create(ctx context.Context, req *dto.CreateMapRequest) (*domain.Map, error)
	// Get retrieves a map by ID
	Get(ctx context.Context, id string) (*domain.Map, error)
	// GetByEventID retrieves the map owned by an event, nil if none exists
	GetByEventID(ctx context.Context, eventID string) (*domain.Map, error)
	// Update applies a partial update to a map
	Update(ctx context.Context, id string, req *dto.UpdateMapRequest) (*domain.Map, error)
	// Delete removes a map
	Delete(ctx context.Context, id string) error
}

// ZoneService defines the business logic for map zones.
type ZoneService interface {
	// Upsert creates a zone when req.ZoneID is empty, patches it otherwise
	Upsert(ctx context.Context, mapID string, req *dto.UpsertZoneRequest) (*domain.Zone, error)
	// Get retrieves a zone by ID
	Get(ctx context.Context, id string) (*domain.Zone, error)
	// ListByMap retrieves all zones on a map
	ListByMap(ctx context.Context, mapID string) ([]*domain.Zone, error)
	// BulkUpsert stamps every zone with the owning map and writes one batch
	BulkUpsert(ctx context.Context, eventID, mapID string, zones []dto.UpsertZoneRequest) ([]repository.UpsertOutcome, error)
	// Delete removes a zone
	Delete(ctx context.Context, id string) error
}

// TicketService defines the business logic for event tickets.
type TicketService interface {
	// Upsert creates a ticket when req.TicketID is empty, patches it otherwise
	Upsert(ctx context.Context, req *dto.UpsertTicketRequest) (*domain.Ticket, error)
	// Get retrieves a ticket by ID
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	// ListByEvent retrieves all tickets for an event
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error)
	// Delete removes a ticket, nulling ticket_id on dependent zones first
	Delete(ctx context.Context, id string) error
}

// DesignerSession is the composition root for one editing session bound to
// one event. It is the only layer that checks cross-entity invariants.
type DesignerSession interface {
	// LoadSession fetches the map, zones and tickets of an event. A missing
	// map or empty lists are the "new layout" state, not an error.
	LoadSession(ctx context.Context, eventID string) (*dto.SessionResponse, error)
	// CreateOrResizeMap creates the event's map or applies new dimensions
	CreateOrResizeMap(ctx context.Context, req *dto.CreateMapRequest) (*domain.Map, error)
	// PlaceZone puts a zone on the event's map
	PlaceZone(ctx context.Context, eventID string, req *dto.UpsertZoneRequest) (*domain.Zone, error)
	// AssignTicketToZone binds a zone to a ticket, or clears the binding with
	// a nil ticket ID. Cross-event bindings fail with a ReferentialError.
	AssignTicketToZone(ctx context.Context, zoneID string, ticketID *string) (*domain.Zone, error)
	// SaveAll persists a whole session and reports a per-entity outcome list
	SaveAll(ctx context.Context, eventID string, req *dto.SaveLayoutRequest) (*dto.SaveLayoutResponse, error)
}
