// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Dependency states reported by GET /health.
const (
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
	statusDisabled     = "disabled"
)

// Pinger reports whether a backing service answers.
type Pinger func(ctx context.Context) error

// HealthController reports the state of the ledger store and the summary cache.
type HealthController struct {
	database     Pinger
	summaryCache Pinger
	now          func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	SummaryCache string `json:"summaryCache"`
	Timestamp    string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil
// summaryCache means the cache is not configured.
func NewHealthController(database, summaryCache Pinger, clock func() time.Time) *HealthController {
	if clock == nil {
		clock = time.Now
	}
	return &HealthController{
		database:     database,
		summaryCache: summaryCache,
		now:          clock,
	}
}

// Check handles GET /health requests. The API is unavailable without its
// database and degraded when the configured cache is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:       "ok",
		Database:     ping(ctx, "database", h.database),
		SummaryCache: statusDisabled,
		Timestamp:    h.now().UTC().Format(time.RFC3339),
	}
	if h.summaryCache != nil {
		response.SummaryCache = ping(ctx, "summary cache", h.summaryCache)
	}

	status := http.StatusOK
	switch {
	case response.Database != statusConnected:
		response.Status = "unavailable"
		status = http.StatusServiceUnavailable
	case response.SummaryCache == statusDisconnected:
		response.Status = "degraded"
	}

	c.JSON(status, response)
}

func ping(ctx context.Context, name string, p Pinger) string {
	if p == nil {
		return statusDisconnected
	}
	if err := p(ctx); err != nil {
		slog.Warn("Health check failed", "dependency", name, "error", err)
		return statusDisconnected
	}
	return statusConnected
}
