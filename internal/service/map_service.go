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

// mapService implements the MapService interface.
type mapService struct {
	maps repository.MapRepository
	inv  cache.Invalidator
}

// NewMapService creates a new MapService.
func NewMapService(maps repository.MapRepository, inv cache.Invalidator) MapService {
	return &mapService{maps: maps, inv: inv}
}

// Create creates a map for an event. When a shape preset is given its default
// dimensions and border radius are applied; explicit dimensions win over the
// preset defaults.
func (s *mapService) Create(ctx context.Context, req *dto.CreateMapRequest) (*domain.Map, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("", msg)
	}

	now := time.Now()
	m := &domain.Map{
		ID:                 uuid.New().String(),
		EventID:            req.EventID,
		Name:               req.Name,
		BackgroundImageURL: req.BackgroundImageURL,
		Width:              req.Width,
		Height:             req.Height,
		Config: domain.MapConfig{
			FillColor:   req.FillColor,
			GridEnabled: req.GridEnabled,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Shape != "" {
		if preset, ok := domain.PresetByID(domain.MapShape(req.Shape)); ok {
			name := m.Name
			m.ApplyPreset(preset)
			m.Name = name
			if req.Width > 0 {
				m.Width = req.Width
			}
			if req.Height > 0 {
				m.Height = req.Height
			}
		} else {
			// Non-preset shapes (circle) carry no default dimensions
			m.Config.Shape = domain.MapShape(req.Shape)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.maps.Create(ctx, m); err != nil {
		return nil, &domain.PersistenceError{Op: "create map", Err: err}
	}

	logger.InfoCtx(ctx, "map created",
		zap.String("map_id", m.ID),
		zap.String("event_id", m.EventID),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
	)
	s.invalidate(ctx, m.EventID)
	return m, nil
}

// Get retrieves a map by ID.
func (s *mapService) Get(ctx context.Context, id string) (*domain.Map, error) {
	m, err := s.maps.GetByID(ctx, id)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get map", Err: err}
	}
	if m == nil {
		return nil, &domain.NotFoundError{Resource: "map", ID: id}
	}
	return m, nil
}

// GetByEventID retrieves the map owned by an event, nil when none exists.
func (s *mapService) GetByEventID(ctx context.Context, eventID string) (*domain.Map, error) {
	m, err := s.maps.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get map by event", Err: err}
	}
	return m, nil
}

// Update applies a partial update. Selecting a new shape preset replaces the
// dimensions and border radius but preserves the name.
func (s *mapService) Update(ctx context.Context, id string, req *dto.UpdateMapRequest) (*domain.Map, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("", msg)
	}

	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Shape != "" {
		if preset, ok := domain.PresetByID(domain.MapShape(req.Shape)); ok {
			name := m.Name
			m.ApplyPreset(preset)
			m.Name = name
		} else {
			m.Config.Shape = domain.MapShape(req.Shape)
		}
	}
	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Width > 0 {
		m.Width = req.Width
	}
	if req.Height > 0 {
		m.Height = req.Height
	}
	if req.BackgroundImageURL != nil {
		m.BackgroundImageURL = *req.BackgroundImageURL
	}
	if req.FillColor != nil {
		m.Config.FillColor = *req.FillColor
	}
	if req.GridEnabled != nil {
		m.Config.GridEnabled = *req.GridEnabled
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.maps.Update(ctx, m); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, &domain.PersistenceError{Op: "update map", Err: err}
	}

	s.invalidate(ctx, m.EventID)
	return m, nil
}

// Delete removes a map.
func (s *mapService) Delete(ctx context.Context, id string) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.maps.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return &domain.PersistenceError{Op: "delete map", Err: err}
	}
	s.invalidate(ctx, m.EventID)
	return nil
}

func (s *mapService) invalidate(ctx context.Context, eventID string) {
	if err := s.inv.Invalidate(ctx, cache.LayoutPath(eventID)); err != nil {
		logger.WarnCtx(ctx, "layout cache invalidation failed",
			zap.String("event_id", eventID), zap.Error(err))
	}
}
