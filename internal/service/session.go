package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/dto"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/logger"
)

// designerSession implements the DesignerSession interface. It is the only
// layer that sees maps, zones and tickets together, so cross-entity checks
// such as the ticket/event match live here and nowhere else.
type designerSession struct {
	maps    MapService
	zones   ZoneService
	tickets TicketService
}

// NewDesignerSession creates a new DesignerSession.
func NewDesignerSession(maps MapService, zones ZoneService, tickets TicketService) DesignerSession {
	return &designerSession{maps: maps, zones: zones, tickets: tickets}
}

// LoadSession fetches the editing state of an event. A fresh event has no
// map, no zones and no tickets; only adapter failures propagate as errors.
func (s *designerSession) LoadSession(ctx context.Context, eventID string) (*dto.SessionResponse, error) {
	if eventID == "" {
		return nil, domain.NewValidationError("event_id", "event id is required")
	}

	m, err := s.maps.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SessionResponse{
		Map:     m,
		Zones:   []*domain.Zone{},
		Tickets: []*domain.Ticket{},
	}

	if m != nil {
		zones, err := s.zones.ListByMap(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		if zones != nil {
			resp.Zones = zones
		}
	}

	tickets, err := s.tickets.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if tickets != nil {
		resp.Tickets = tickets
	}

	return resp, nil
}

// CreateOrResizeMap creates the event's map on first confirm and applies new
// dimensions or shape on subsequent edits.
func (s *designerSession) CreateOrResizeMap(ctx context.Context, req *dto.CreateMapRequest) (*domain.Map, error) {
	existing, err := s.maps.GetByEventID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.maps.Create(ctx, req)
	}

	patch := &dto.UpdateMapRequest{
		Name:   req.Name,
		Shape:  req.Shape,
		Width:  req.Width,
		Height: req.Height,
	}
	if req.BackgroundImageURL != "" {
		url := req.BackgroundImageURL
		patch.BackgroundImageURL = &url
	}
	return s.maps.Update(ctx, existing.ID, patch)
}

// PlaceZone puts a zone on the event's map.
func (s *designerSession) PlaceZone(ctx context.Context, eventID string, req *dto.UpsertZoneRequest) (*domain.Zone, error) {
	m, err := s.maps.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, &domain.NotFoundError{Resource: "map", ID: "event:" + eventID}
	}
	if req.TicketID != nil && *req.TicketID != "" {
		if err := s.checkTicketEvent(ctx, *req.TicketID, m.EventID); err != nil {
			return nil, err
		}
	}
	return s.zones.Upsert(ctx, m.ID, req)
}

// AssignTicketToZone binds a zone to a ticket or clears the binding. Binding
// a ticket that belongs to a different event than the zone's map is invalid.
func (s *designerSession) AssignTicketToZone(ctx context.Context, zoneID string, ticketID *string) (*domain.Zone, error) {
	z, err := s.zones.Get(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	m, err := s.maps.Get(ctx, z.MapID)
	if err != nil {
		return nil, err
	}

	if ticketID != nil && *ticketID != "" {
		if err := s.checkTicketEvent(ctx, *ticketID, m.EventID); err != nil {
			return nil, err
		}
	} else {
		ticketID = nil
	}

	req := &dto.UpsertZoneRequest{
		ZoneID:      z.ID,
		TicketID:    ticketID,
		ElementType: string(z.ElementType),
		Label:       z.Label,
		Geometry: dto.GeometryPayload{
			X:        z.Geometry.X,
			Y:        z.Geometry.Y,
			Width:    z.Geometry.Width,
			Height:   z.Geometry.Height,
			Rotation: z.Geometry.Rotation,
			Shape:    string(z.Geometry.Shape),
			Color:    z.Geometry.Color,
		},
	}
	return s.zones.Upsert(ctx, z.MapID, req)
}

func (s *designerSession) checkTicketEvent(ctx context.Context, ticketID, eventID string) error {
	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return err
	}
	if t.EventID != eventID {
		return &domain.ReferentialError{Reason: "ticket belongs to a different event than the map"}
	}
	return nil
}

// SaveAll persists a whole editing session: the map first so zones have an
// owner, then zones in one batch, then tickets one by one. Every entity gets
// its own outcome; a failing ticket never masks a saved map.
func (s *designerSession) SaveAll(ctx context.Context, eventID string, req *dto.SaveLayoutRequest) (*dto.SaveLayoutResponse, error) {
	if eventID == "" {
		return nil, domain.NewValidationError("event_id", "event id is required")
	}

	resp := &dto.SaveLayoutResponse{}
	mapID := req.MapID

	if req.Map != nil {
		req.Map.EventID = eventID
		m, err := s.CreateOrResizeMap(ctx, req.Map)
		outcome := dto.EntityOutcome{Kind: "map"}
		if err != nil {
			outcome.Error = err.Error()
			resp.Failed++
		} else {
			outcome.ID = m.ID
			mapID = m.ID
		}
		resp.Outcomes = append(resp.Outcomes, outcome)
	}

	if len(req.Zones) > 0 {
		if mapID == "" {
			for range req.Zones {
				resp.Outcomes = append(resp.Outcomes, dto.EntityOutcome{Kind: "zone", Error: "no map to place zones on"})
				resp.Failed++
			}
		} else {
			outcomes, err := s.zones.BulkUpsert(ctx, eventID, mapID, req.Zones)
			if err != nil {
				for range req.Zones {
					resp.Outcomes = append(resp.Outcomes, dto.EntityOutcome{Kind: "zone", Error: err.Error()})
					resp.Failed++
				}
			} else {
				for _, o := range outcomes {
					outcome := dto.EntityOutcome{Kind: "zone", ID: o.ID}
					if o.Err != nil {
						outcome.Error = o.Err.Error()
						resp.Failed++
					}
					resp.Outcomes = append(resp.Outcomes, outcome)
				}
			}
		}
	}

	for i := range req.Tickets {
		ticketReq := req.Tickets[i]
		if ticketReq.TicketID == "" {
			ticketReq.EventID = eventID
		}
		t, err := s.tickets.Upsert(ctx, &ticketReq)
		outcome := dto.EntityOutcome{Kind: "ticket"}
		if err != nil {
			outcome.Error = err.Error()
			resp.Failed++
		} else {
			outcome.ID = t.ID
		}
		resp.Outcomes = append(resp.Outcomes, outcome)
	}

	if resp.Failed > 0 {
		logger.WarnCtx(ctx, "layout save finished with failures",
			zap.String("event_id", eventID),
			zap.Int("failed", resp.Failed),
			zap.Int("total", len(resp.Outcomes)),
		)
	}
	return resp, nil
}
