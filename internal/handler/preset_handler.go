package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/response"
)

// PresetHandler serves the shape preset catalog
type PresetHandler struct{}

// NewPresetHandler creates a new PresetHandler
func NewPresetHandler() *PresetHandler {
	return &PresetHandler{}
}

// List handles GET /shape-presets - returns the ordered preset catalog
func (h *PresetHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(domain.ShapePresets()))
}
