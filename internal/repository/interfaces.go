package repository

import (
	"context"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

// UpsertOutcome reports the result for a single row of a batch upsert. The
// batch as a whole never silently drops a row: every input zone gets exactly
// one outcome, in input order.
type UpsertOutcome struct {
	ID  string
	Err error
}

// MapRepository defines data access for venue maps. GetByID and GetByEventID
// return (nil, nil) when no map exists; absence is not an error at this layer.
type MapRepository interface {
	Create(ctx context.Context, m *domain.Map) error
	GetByID(ctx context.Context, id string) (*domain.Map, error)
	GetByEventID(ctx context.Context, eventID string) (*domain.Map, error)
	Update(ctx context.Context, m *domain.Map) error
	Delete(ctx context.Context, id string) error
}

// ZoneRepository defines data access for map zones.
type ZoneRepository interface {
	Create(ctx context.Context, z *domain.Zone) error
	GetByID(ctx context.Context, id string) (*domain.Zone, error)
	GetByMapID(ctx context.Context, mapID string) ([]*domain.Zone, error)
	Update(ctx context.Context, z *domain.Zone) error
	Delete(ctx context.Context, id string) error
	// BulkUpsert writes all zones in a single batch and reports a per-row
	// outcome list. The returned error covers batch-level failures only.
	BulkUpsert(ctx context.Context, zones []*domain.Zone) ([]UpsertOutcome, error)
	// ClearTicketRefs nulls ticket_id on every zone referencing the ticket and
	// returns the number of zones touched.
	ClearTicketRefs(ctx context.Context, ticketID string) (int, error)
}

// TicketRepository defines data access for event tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByEventID(ctx context.Context, eventID string) ([]*domain.Ticket, error)
	Update(ctx context.Context, t *domain.Ticket) error
	Delete(ctx context.Context, id string) error
}
