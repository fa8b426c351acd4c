package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the readiness of the backing stores.
type HealthHandler struct {
	checks map[string]func(context.Context) error
}

// NewHealthHandler creates a HealthHandler. Each check is pinged on every
// request; a nil error means the dependency is reachable.
func NewHealthHandler(checks map[string]func(context.Context) error) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Check handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Check if the service and its backing stores are up
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Failure		503	{object}	map[string]string	"A dependency is unreachable"
//	@Router			/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "ok"}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body[name] = err.Error()
		} else {
			body[name] = "ok"
		}
	}
	c.JSON(status, body)
}
