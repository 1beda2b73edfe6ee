package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daylerjeff199906/event-management-app-sub001/pkg/database"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/response"
)

// HealthHandler reports service and dependency health
type HealthHandler struct {
	db      *database.PostgresDB
	version string
}

// NewHealthHandler creates a new HealthHandler. db may be nil when the
// service runs on the in-memory store.
func NewHealthHandler(db *database.PostgresDB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	checks := map[string]string{}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			status = "degraded"
			checks["postgres"] = err.Error()
		} else {
			checks["postgres"] = "ok"
		}
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, response.Success(gin.H{
		"status":  status,
		"version": h.version,
		"checks":  checks,
	}))
}
