// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ProbeFunc reports whether a dependency is reachable.
type ProbeFunc func() bool

// HealthController answers liveness requests with the state of the
// database connection and the process start time.
type HealthController struct {
	dbProbe   ProbeFunc
	startedAt time.Time
}

func NewHealthController(dbProbe ProbeFunc) *HealthController {
	return &HealthController{
		dbProbe:   dbProbe,
		startedAt: time.Now().UTC(),
	}
}

// Check handles GET /health.
func (h *HealthController) Check(c *gin.Context) {
	database := "disconnected"
	if h.dbProbe != nil && h.dbProbe() {
		database = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  database,
		"uptime":    time.Since(h.startedAt).Truncate(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
