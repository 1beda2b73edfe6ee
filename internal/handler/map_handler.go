package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/dto"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/geometry"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/service"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/response"
)

// MapHandler handles venue map HTTP requests
type MapHandler struct {
	maps     service.MapService
	viewport float64
}

// NewMapHandler creates a new MapHandler. viewport is the preview edge length
// in pixels; non-positive falls back to the geometry default.
func NewMapHandler(maps service.MapService, viewport int) *MapHandler {
	if viewport <= 0 {
		viewport = geometry.DefaultViewportSize
	}
	return &MapHandler{maps: maps, viewport: float64(viewport)}
}

// Create handles POST /maps - creates a map for an event
func (h *MapHandler) Create(c *gin.Context) {
	var req dto.CreateMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, msg))
		return
	}

	m, err := h.maps.Create(c.Request.Context(), &req)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, response.Success(m))
}

// Get handles GET /maps/:id - retrieves a map by ID
func (h *MapHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	m, err := h.maps.Get(c.Request.Context(), id)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(m))
}

// Update handles PATCH /maps/:id - applies a partial update
func (h *MapHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, msg))
		return
	}

	m, err := h.maps.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(m))
}

// Preview handles GET /maps/:id/preview - returns the scale and on-screen
// dimensions for fitting the map into the preview viewport. An optional
// viewport query parameter overrides the configured size.
func (h *MapHandler) Preview(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	viewport := h.viewport
	if raw := c.Query("viewport"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, response.BadRequest("Viewport must be a positive number"))
			return
		}
		viewport = v
	}

	m, err := h.maps.Get(c.Request.Context(), id)
	if err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	scale, displayW, displayH := geometry.Fit(float64(m.Width), float64(m.Height), viewport)
	c.JSON(http.StatusOK, response.Success(dto.MapPreviewResponse{
		MapID:         m.ID,
		Width:         m.Width,
		Height:        m.Height,
		Viewport:      viewport,
		Scale:         scale,
		DisplayWidth:  displayW,
		DisplayHeight: displayH,
	}))
}

// Delete handles DELETE /maps/:id - removes a map
func (h *MapHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	if err := h.maps.Delete(c.Request.Context(), id); err != nil {
		status, resp := response.FromDomainError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Map deleted successfully"}))
}
