package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness handles GET /health/live.
func (s *Server) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /health/ready. The database gates readiness;
// notification channels are reported but never fail the probe, a broken
// SMTP relay should not take the API out of rotation.
func (s *Server) Readiness(c *gin.Context) {
	checks := make(map[string]interface{})
	healthy := true

	if s.pool != nil {
		if err := s.pool.Ping(c.Request.Context()); err != nil {
			checks["database"] = "error"
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}

	checks["channels"] = s.alerts.ChannelStatus()
	if s.workers != nil {
		checks["workers"] = s.workers.Metrics()
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{"status": status, "checks": checks})
}
