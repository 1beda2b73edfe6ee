package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/dto"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/service"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/response"
)

// TicketHandler handles ticket-type HTTP requests
type TicketHandler struct {
	tickets service.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(tickets service.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// Create handles POST /tickets - creates a ticket with defaults applied
func (h *TicketHandler) Create(c *gin.Context) {
	var req dto.UpsertTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	req.TicketID = ""

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, msg))
		return
	}

	ticket, err := h.tickets.Upsert(c.Request.Context(), &req)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, response.Success(ticket))
}

// Update handles PATCH /tickets/:id - applies a partial update
func (h *TicketHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpsertTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	req.TicketID = id

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, msg))
		return
	}

	ticket, err := h.tickets.Upsert(c.Request.Context(), &req)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(ticket))
}

// Get handles GET /tickets/:id - retrieves a ticket by ID
func (h *TicketHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	ticket, err := h.tickets.Get(c.Request.Context(), id)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(ticket))
}

// ListByEvent handles GET /events/:event_id/tickets - lists event tickets
func (h *TicketHandler) ListByEvent(c *gin.Context) {
	eventID := c.Param("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	tickets, err := h.tickets.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(tickets))
}

// Delete handles DELETE /tickets/:id - removes a ticket. Zones bound to it
// keep their geometry and lose only the ticket binding.
func (h *TicketHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	if err := h.tickets.Delete(c.Request.Context(), id); err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Ticket deleted successfully"}))
}
