package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is a named dependency check run on readiness.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler answers the liveness and readiness endpoints. Readiness
// runs every registered dependency check; liveness only confirms the
// process is serving.
type HealthHandler struct {
	checks []HealthCheck
}

// NewHealthHandler creates a HealthHandler with the given checks.
func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// Every failing dependency is reported by name.
func (h *HealthHandler) Readiness(c *gin.Context) {
	failing := map[string]string{}
	for _, check := range h.checks {
		if err := check.Check(c.Request.Context()); err != nil {
			failing[check.Name] = err.Error()
		}
	}
	if len(failing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failing": failing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
