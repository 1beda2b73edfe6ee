package dto

import (
	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

// SessionResponse is the full editing state of one event's layout. A nil Map
// with empty lists is the "new layout" state, not an error.
type SessionResponse struct {
	Map     *domain.Map      `json:"map"`
	Zones   []*domain.Zone   `json:"zones"`
	Tickets []*domain.Ticket `json:"tickets"`
}

// SaveLayoutRequest persists a whole editing session in one call: the map
// first, then zones stamped with the map id, then tickets.
type SaveLayoutRequest struct {
	Map     *CreateMapRequest     `json:"map" binding:"omitempty"`
	MapID   string                `json:"map_id" binding:"omitempty"`
	Zones   []UpsertZoneRequest   `json:"zones" binding:"omitempty"`
	Tickets []UpsertTicketRequest `json:"tickets" binding:"omitempty"`
}

// EntityOutcome reports the result of one entity write inside SaveAll.
// Partial failure is surfaced per entity, never as one opaque batch error.
type EntityOutcome struct {
	Kind  string `json:"kind"` // map, zone, ticket
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// SaveLayoutResponse carries the per-entity outcome list of a SaveAll call.
type SaveLayoutResponse struct {
	Outcomes []EntityOutcome `json:"outcomes"`
	Failed   int             `json:"failed"`
}
