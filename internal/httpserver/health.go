package httpserver

import (
	"net/http"

	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "BHIMA report service"
	HealthVersion = "1.0.0"
	ServiceName   = "report-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. The dataset and archive databases are required,
// Redis only when configured.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A backend is unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{}

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.notReady(c, "Database connection failed", err)
		return
	}
	checks["database"] = "connected"

	if srv.archiveDB != srv.postgresDB {
		if err := srv.archiveDB.PingContext(ctx); err != nil {
			srv.notReady(c, "Archive database connection failed", err)
			return
		}
		checks["archive"] = "connected"
	}

	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			srv.notReady(c, "Redis connection failed", err)
			return
		}
		checks["redis"] = "connected"
	}

	checks["status"] = "ready"
	checks["message"] = HealthMessage
	checks["version"] = HealthVersion
	checks["service"] = ServiceName
	response.OK(c, checks)
}

func (srv HTTPServer) notReady(c *gin.Context, msg string, err error) {
	srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %s: %v", msg, err)
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": msg,
		"error":   err.Error(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
