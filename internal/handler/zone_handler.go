package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/dto"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/service"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/response"
)

// ZoneHandler handles map zone HTTP requests
type ZoneHandler struct {
	zones   service.ZoneService
	session service.DesignerSession
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(zones service.ZoneService, session service.DesignerSession) *ZoneHandler {
	return &ZoneHandler{zones: zones, session: session}
}

// Upsert handles POST /maps/:id/zones - creates or patches one zone
func (h *ZoneHandler) Upsert(c *gin.Context) {
	mapID := c.Param("id")
	if mapID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Map ID is required"))
		return
	}

	var req dto.UpsertZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, msg))
		return
	}

	zone, err := h.zones.Upsert(c.Request.Context(), mapID, &req)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	status := http.StatusOK
	if req.ZoneID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.Success(zone))
}

// Place handles POST /events/:event_id/zones - puts a zone on the event's
// map without the caller needing the map id
func (h *ZoneHandler) Place(c *gin.Context) {
	eventID := c.Param("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	var req dto.UpsertZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, msg))
		return
	}

	zone, err := h.session.PlaceZone(c.Request.Context(), eventID, &req)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	status := http.StatusOK
	if req.ZoneID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.Success(zone))
}

// List handles GET /maps/:id/zones - lists all zones on a map
func (h *ZoneHandler) List(c *gin.Context) {
	mapID := c.Param("id")
	if mapID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Map ID is required"))
		return
	}

	zones, err := h.zones.ListByMap(c.Request.Context(), mapID)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(zones))
}

// BulkUpsert handles PUT /maps/:id/zones - writes a zone batch with
// per-row outcomes
func (h *ZoneHandler) BulkUpsert(c *gin.Context) {
	mapID := c.Param("id")
	if mapID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Map ID is required"))
		return
	}

	var req dto.BulkUpsertZonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, msg))
		return
	}

	outcomes, err := h.zones.BulkUpsert(c.Request.Context(), req.EventID, mapID, req.Zones)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	results := make([]dto.ZoneOutcome, len(outcomes))
	for i, o := range outcomes {
		results[i] = dto.ZoneOutcome{ID: o.ID}
		if o.Err != nil {
			results[i].Error = o.Err.Error()
		}
	}

	c.JSON(http.StatusOK, response.Success(results))
}

// Delete handles DELETE /zones/:id - removes a zone
func (h *ZoneHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	if err := h.zones.Delete(c.Request.Context(), id); err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Zone deleted successfully"}))
}

// AssignTicket handles PUT /zones/:id/ticket - binds a zone to a ticket,
// or clears the binding when ticket_id is null
func (h *ZoneHandler) AssignTicket(c *gin.Context) {
	zoneID := c.Param("id")
	if zoneID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Zone ID is required"))
		return
	}

	var req dto.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	zone, err := h.session.AssignTicketToZone(c.Request.Context(), zoneID, req.TicketID)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(zone))
}
