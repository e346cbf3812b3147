package web

import (
	"context"
	"net/http"
	"time"

	"protettorato/internal/logger"

	"github.com/gin-gonic/gin"
)

const ServiceName = "protettorato"

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

const readyTimeout = 2 * time.Second

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Health reports liveness only; it never touches dependencies.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:  "ok",
		Service: ServiceName,
		Version: Version,
	})
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Ready reports whether the database pool can serve a round trip.
func Ready(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := p.PingContext(ctx); err != nil {
			logger.Warn("readiness check failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
