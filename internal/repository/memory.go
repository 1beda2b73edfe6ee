package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

// MemoryMapRepository is an in-memory MapRepository for tests and local runs.
type MemoryMapRepository struct {
	mu   sync.RWMutex
	maps map[string]*domain.Map
}

// NewMemoryMapRepository creates an empty in-memory map store.
func NewMemoryMapRepository() *MemoryMapRepository {
	return &MemoryMapRepository{maps: make(map[string]*domain.Map)}
}

func (r *MemoryMapRepository) Create(ctx context.Context, m *domain.Map) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.maps[m.ID] = &cp
	return nil
}

func (r *MemoryMapRepository) GetByID(ctx context.Context, id string) (*domain.Map, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.maps[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MemoryMapRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Map, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.maps {
		if m.EventID == eventID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryMapRepository) Update(ctx context.Context, m *domain.Map) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.maps[m.ID]; !ok {
		return &domain.NotFoundError{Resource: "map", ID: m.ID}
	}
	cp := *m
	r.maps[m.ID] = &cp
	return nil
}

func (r *MemoryMapRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.maps[id]; !ok {
		return &domain.NotFoundError{Resource: "map", ID: id}
	}
	delete(r.maps, id)
	return nil
}

// MemoryZoneRepository is an in-memory ZoneRepository.
type MemoryZoneRepository struct {
	mu    sync.RWMutex
	zones map[string]*domain.Zone
}

// NewMemoryZoneRepository creates an empty in-memory zone store.
func NewMemoryZoneRepository() *MemoryZoneRepository {
	return &MemoryZoneRepository{zones: make(map[string]*domain.Zone)}
}

func copyZone(z *domain.Zone) *domain.Zone {
	cp := *z
	if z.TicketID != nil {
		id := *z.TicketID
		cp.TicketID = &id
	}
	return &cp
}

func (r *MemoryZoneRepository) Create(ctx context.Context, z *domain.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zones[z.ID] = copyZone(z)
	return nil
}

func (r *MemoryZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	z, ok := r.zones[id]
	if !ok {
		return nil, nil
	}
	return copyZone(z), nil
}

func (r *MemoryZoneRepository) GetByMapID(ctx context.Context, mapID string) ([]*domain.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Zone
	for _, z := range r.zones {
		if z.MapID == mapID {
			out = append(out, copyZone(z))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryZoneRepository) Update(ctx context.Context, z *domain.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[z.ID]; !ok {
		return &domain.NotFoundError{Resource: "zone", ID: z.ID}
	}
	r.zones[z.ID] = copyZone(z)
	return nil
}

func (r *MemoryZoneRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[id]; !ok {
		return &domain.NotFoundError{Resource: "zone", ID: id}
	}
	delete(r.zones, id)
	return nil
}

func (r *MemoryZoneRepository) BulkUpsert(ctx context.Context, zones []*domain.Zone) ([]UpsertOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	outcomes := make([]UpsertOutcome, 0, len(zones))
	for _, z := range zones {
		r.zones[z.ID] = copyZone(z)
		outcomes = append(outcomes, UpsertOutcome{ID: z.ID})
	}
	return outcomes, nil
}

func (r *MemoryZoneRepository) ClearTicketRefs(ctx context.Context, ticketID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cleared := 0
	for _, z := range r.zones {
		if z.TicketID != nil && *z.TicketID == ticketID {
			z.TicketID = nil
			cleared++
		}
	}
	return cleared, nil
}

// MemoryTicketRepository is an in-memory TicketRepository.
type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*domain.Ticket
}

// NewMemoryTicketRepository creates an empty in-memory ticket store.
func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{tickets: make(map[string]*domain.Ticket)}
}

func copyTicket(t *domain.Ticket) *domain.Ticket {
	cp := *t
	if t.MaxPerUser != nil {
		v := *t.MaxPerUser
		cp.MaxPerUser = &v
	}
	if t.IsActive != nil {
		v := *t.IsActive
		cp.IsActive = &v
	}
	if t.SalesEndAt != nil {
		v := *t.SalesEndAt
		cp.SalesEndAt = &v
	}
	return &cp
}

func (r *MemoryTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID] = copyTicket(t)
	return nil
}

func (r *MemoryTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	return copyTicket(t), nil
}

func (r *MemoryTicketRepository) GetByEventID(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Ticket
	for _, t := range r.tickets {
		if t.EventID == eventID {
			out = append(out, copyTicket(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryTicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[t.ID]; !ok {
		return &domain.NotFoundError{Resource: "ticket", ID: t.ID}
	}
	r.tickets[t.ID] = copyTicket(t)
	return nil
}

func (r *MemoryTicketRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return &domain.NotFoundError{Resource: "ticket", ID: id}
	}
	delete(r.tickets, id)
	return nil
}
