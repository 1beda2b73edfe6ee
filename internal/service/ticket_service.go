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

// ticketService implements the TicketService interface.
type ticketService struct {
	tickets repository.TicketRepository
	zones   repository.ZoneRepository
	inv     cache.Invalidator
}

// NewTicketService creates a new TicketService.
func NewTicketService(tickets repository.TicketRepository, zones repository.ZoneRepository, inv cache.Invalidator) TicketService {
	return &ticketService{tickets: tickets, zones: zones, inv: inv}
}

// Upsert creates a ticket when req.TicketID is empty and patches it
// otherwise. Defaults are applied on creation: USD currency, five per user,
// active, sale window opening now.
func (s *ticketService) Upsert(ctx context.Context, req *dto.UpsertTicketRequest) (*domain.Ticket, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("", msg)
	}

	if req.TicketID == "" {
		return s.create(ctx, req)
	}
	return s.update(ctx, req)
}

func (s *ticketService) create(ctx context.Context, req *dto.UpsertTicketRequest) (*domain.Ticket, error) {
	t := &domain.Ticket{
		ID:         uuid.New().String(),
		EventID:    req.EventID,
		Name:       req.Name,
		Currency:   req.Currency,
		MaxPerUser: req.MaxPerUser,
		SalesEndAt: req.SalesEndAt,
		IsActive:   req.IsActive,
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Price != nil {
		t.Price = float64(*req.Price)
	}
	if req.QuantityTotal != nil {
		t.QuantityTotal = *req.QuantityTotal
	}
	if req.SalesStartAt != nil {
		t.SalesStartAt = *req.SalesStartAt
	}
	t.ApplyDefaults(time.Now())

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, &domain.PersistenceError{Op: "create ticket", Err: err}
	}

	logger.InfoCtx(ctx, "ticket created",
		zap.String("ticket_id", t.ID),
		zap.String("event_id", t.EventID),
		zap.Float64("price", t.Price),
		zap.Int("quantity_total", t.QuantityTotal),
	)
	s.invalidate(ctx, t.EventID)
	return t, nil
}

func (s *ticketService) update(ctx context.Context, req *dto.UpsertTicketRequest) (*domain.Ticket, error) {
	t, err := s.Get(ctx, req.TicketID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Price != nil {
		t.Price = float64(*req.Price)
	}
	if req.Currency != "" {
		t.Currency = req.Currency
	}
	if req.QuantityTotal != nil {
		t.QuantityTotal = *req.QuantityTotal
	}
	if req.MaxPerUser != nil {
		t.MaxPerUser = req.MaxPerUser
	}
	if req.SalesStartAt != nil {
		t.SalesStartAt = *req.SalesStartAt
	}
	if req.SalesEndAt != nil {
		if req.SalesEndAt.IsZero() {
			t.SalesEndAt = nil
		} else {
			t.SalesEndAt = req.SalesEndAt
		}
	}
	if req.IsActive != nil {
		t.IsActive = req.IsActive
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.tickets.Update(ctx, t); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, &domain.PersistenceError{Op: "update ticket", Err: err}
	}

	s.invalidate(ctx, t.EventID)
	return t, nil
}

// Get retrieves a ticket by ID.
func (s *ticketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get ticket", Err: err}
	}
	if t == nil {
		return nil, &domain.NotFoundError{Resource: "ticket", ID: id}
	}
	return t, nil
}

// ListByEvent retrieves all tickets for an event.
func (s *ticketService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	tickets, err := s.tickets.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list tickets", Err: err}
	}
	return tickets, nil
}

// Delete removes a ticket. Zones referencing it keep their geometry and lose
// only the binding: ticket_id is nulled first, then the ticket row goes.
func (s *ticketService) Delete(ctx context.Context, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	cleared, err := s.zones.ClearTicketRefs(ctx, id)
	if err != nil {
		return &domain.PersistenceError{Op: "clear zone ticket refs", Err: err}
	}
	if err := s.tickets.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return &domain.PersistenceError{Op: "delete ticket", Err: err}
	}

	logger.InfoCtx(ctx, "ticket deleted",
		zap.String("ticket_id", id),
		zap.Int("zones_unbound", cleared),
	)
	s.invalidate(ctx, t.EventID)
	return nil
}

func (s *ticketService) invalidate(ctx context.Context, eventID string) {
	if err := s.inv.Invalidate(ctx, cache.LayoutPath(eventID)); err != nil {
		logger.WarnCtx(ctx, "layout cache invalidation failed",
			zap.String("event_id", eventID), zap.Error(err))
	}
}
