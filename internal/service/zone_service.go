package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/cache"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/dto"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/repository"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/logger"
)

// zoneService implements the ZoneService interface.
type zoneService struct {
	zones   repository.ZoneRepository
	maps    repository.MapRepository
	tickets repository.TicketRepository
	inv     cache.Invalidator
}

// NewZoneService creates a new ZoneService.
func NewZoneService(zones repository.ZoneRepository, maps repository.MapRepository, tickets repository.TicketRepository, inv cache.Invalidator) ZoneService {
	return &zoneService{zones: zones, maps: maps, tickets: tickets, inv: inv}
}

// checkTicketBinding rejects a binding to a ticket of a different event. Every
// write path that can carry a ticket_id goes through here, so the invariant
// holds no matter which route the zone arrived on.
func (s *zoneService) checkTicketBinding(ctx context.Context, ticketID *string, eventID string) error {
	if ticketID == nil || *ticketID == "" {
		return nil
	}
	t, err := s.tickets.GetByID(ctx, *ticketID)
	if err != nil {
		return &domain.PersistenceError{Op: "get ticket", Err: err}
	}
	if t == nil {
		return &domain.NotFoundError{Resource: "ticket", ID: *ticketID}
	}
	if t.EventID != eventID {
		return &domain.ReferentialError{Reason: "ticket belongs to a different event than the map"}
	}
	return nil
}

func zoneFromRequest(mapID string, req *dto.UpsertZoneRequest) *domain.Zone {
	return &domain.Zone{
		ID:          req.ZoneID,
		MapID:       mapID,
		TicketID:    req.TicketID,
		ElementType: domain.ElementType(req.ElementType),
		Label:       req.Label,
		Geometry: domain.Geometry{
			X:        req.Geometry.X,
			Y:        req.Geometry.Y,
			Width:    req.Geometry.Width,
			Height:   req.Geometry.Height,
			Rotation: req.Geometry.Rotation,
			Shape:    domain.ZoneShape(req.Geometry.Shape),
			Color:    req.Geometry.Color,
		},
	}
}

// Upsert creates a zone when req.ZoneID is empty and patches it otherwise.
// The zone's bounding box must lie within the owning map.
func (s *zoneService) Upsert(ctx context.Context, mapID string, req *dto.UpsertZoneRequest) (*domain.Zone, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("", msg)
	}

	m, err := s.maps.GetByID(ctx, mapID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get map", Err: err}
	}
	if m == nil {
		return nil, &domain.NotFoundError{Resource: "map", ID: mapID}
	}

	z := zoneFromRequest(mapID, req)
	if err := z.Validate(); err != nil {
		return nil, err
	}
	if !z.Within(m) {
		return nil, domain.NewValidationError("geometry_data", "zone lies outside the map bounds")
	}
	if err := s.checkTicketBinding(ctx, z.TicketID, m.EventID); err != nil {
		return nil, err
	}

	if req.ZoneID == "" {
		z.ID = uuid.New().String()
		z.CreatedAt = time.Now()
		if err := s.zones.Create(ctx, z); err != nil {
			return nil, &domain.PersistenceError{Op: "create zone", Err: err}
		}
	} else {
		existing, err := s.zones.GetByID(ctx, req.ZoneID)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "get zone", Err: err}
		}
		if existing == nil {
			return nil, &domain.NotFoundError{Resource: "zone", ID: req.ZoneID}
		}
		z.CreatedAt = existing.CreatedAt
		if err := s.zones.Update(ctx, z); err != nil {
			if domain.IsNotFound(err) {
				return nil, err
			}
			return nil, &domain.PersistenceError{Op: "update zone", Err: err}
		}
	}

	logger.DebugCtx(ctx, "zone upserted",
		zap.String("zone_id", z.ID),
		zap.String("map_id", z.MapID),
		zap.Bool("sellable", z.Sellable()),
	)
	s.invalidate(ctx, m.EventID)
	return z, nil
}

// Get retrieves a zone by ID.
func (s *zoneService) Get(ctx context.Context, id string) (*domain.Zone, error) {
	z, err := s.zones.GetByID(ctx, id)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get zone", Err: err}
	}
	if z == nil {
		return nil, &domain.NotFoundError{Resource: "zone", ID: id}
	}
	return z, nil
}

// ListByMap retrieves all zones on a map in creation order.
func (s *zoneService) ListByMap(ctx context.Context, mapID string) ([]*domain.Zone, error) {
	zones, err := s.zones.GetByMapID(ctx, mapID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list zones", Err: err}
	}
	return zones, nil
}

// BulkUpsert stamps every zone with the owning map and performs a single
// batch write. Validation failures abort before any network call; row-level
// persistence failures are reported in the outcome list.
func (s *zoneService) BulkUpsert(ctx context.Context, eventID, mapID string, reqs []dto.UpsertZoneRequest) ([]repository.UpsertOutcome, error) {
	m, err := s.maps.GetByID(ctx, mapID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get map", Err: err}
	}
	if m == nil {
		return nil, &domain.NotFoundError{Resource: "map", ID: mapID}
	}
	if m.EventID != eventID {
		return nil, &domain.ReferentialError{Reason: "map does not belong to the given event"}
	}

	now := time.Now()
	zones := make([]*domain.Zone, 0, len(reqs))
	for i := range reqs {
		z := zoneFromRequest(mapID, &reqs[i])
		if err := z.Validate(); err != nil {
			return nil, err
		}
		if !z.Within(m) {
			return nil, domain.NewValidationError("geometry_data", "zone lies outside the map bounds")
		}
		if err := s.checkTicketBinding(ctx, z.TicketID, m.EventID); err != nil {
			return nil, err
		}
		if z.ID == "" {
			z.ID = uuid.New().String()
		}
		if z.CreatedAt.IsZero() {
			z.CreatedAt = now
		}
		zones = append(zones, z)
	}

	outcomes, err := s.zones.BulkUpsert(ctx, zones)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "bulk upsert zones", Err: err}
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	logger.InfoCtx(ctx, "zones bulk upserted",
		zap.String("map_id", mapID),
		zap.Int("count", len(zones)),
		zap.Int("failed", failed),
	)
	s.invalidate(ctx, m.EventID)
	return outcomes, nil
}

// Delete removes a zone.
func (s *zoneService) Delete(ctx context.Context, id string) error {
	z, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.zones.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return &domain.PersistenceError{Op: "delete zone", Err: err}
	}
	if m, err := s.maps.GetByID(ctx, z.MapID); err == nil && m != nil {
		s.invalidate(ctx, m.EventID)
	}
	return nil
}

func (s *zoneService) invalidate(ctx context.Context, eventID string) {
	if err := s.inv.Invalidate(ctx, cache.LayoutPath(eventID)); err != nil {
		logger.WarnCtx(ctx, "layout cache invalidation failed",
			zap.String("event_id", eventID), zap.Error(err))
	}
}
