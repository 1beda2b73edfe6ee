package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/dto"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/service"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/response"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/telemetry"
)

// LayoutHandler handles whole-session layout requests
type LayoutHandler struct {
	session     service.DesignerSession
	layoutSaves *telemetry.Counter
}

// NewLayoutHandler creates a new LayoutHandler
func NewLayoutHandler(session service.DesignerSession) *LayoutHandler {
	layoutSaves, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "layout_saves_total",
		Description: "Number of whole-layout save calls",
		Unit:        "{call}",
	})
	return &LayoutHandler{session: session, layoutSaves: layoutSaves}
}

// Get handles GET /events/:event_id/layout - loads the full editing state
func (h *LayoutHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.layout.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	eventID := c.Param("event_id")
	if eventID == "" {
		span.SetStatus(codes.Error, "missing event id")
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}
	span.SetAttributes(telemetry.EventIDAttr(eventID))

	session, err := h.session.LoadSession(ctx, eventID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Success(session))
}

// Save handles PUT /events/:event_id/layout - persists a whole session.
// Partial failure returns 200 with per-entity outcomes, never an opaque batch error.
func (h *LayoutHandler) Save(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.layout.save")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	eventID := c.Param("event_id")
	if eventID == "" {
		span.SetStatus(codes.Error, "missing event id")
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}
	span.SetAttributes(telemetry.EventIDAttr(eventID))

	var req dto.SaveLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	result, err := h.session.SaveAll(ctx, eventID, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	if h.layoutSaves != nil {
		h.layoutSaves.Inc(ctx, telemetry.EventIDAttr(eventID))
	}
	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Success(result))
}
