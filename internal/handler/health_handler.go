package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boring-ventures/billiards-management/pkg/database"
	"github.com/boring-ventures/billiards-management/pkg/response"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db      *database.PostgresDB
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// Live reports that the process is up
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).String(),
	}))
}

// Ready reports whether the database is reachable
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, response.ServiceUnavailable("database unreachable"))
			return
		}
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"status": "ready"}))
}
