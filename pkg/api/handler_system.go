package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finovant/macaw/pkg/database"
	"github.com/finovant/macaw/pkg/version"
)

// healthHandler handles GET /healthz. Without a database the server still
// reports itself alive, just degraded.
func (s *Server) healthHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "database": "not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	health, err := database.Health(ctx, s.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": health})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": health})
}

// versionHandler handles GET /api/version.
func (s *Server) versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    version.AppName,
		"commit":  version.GitCommit,
		"version": version.Full(),
	})
}

// statsHandler handles GET /api/stats: monitor counters plus live workload
// gauges.
func (s *Server) statsHandler(c *gin.Context) {
	resp := gin.H{
		"active_workflows": s.orch.ActiveCount(),
	}
	if s.mon != nil {
		resp["metrics"] = s.mon.Stats()
	}
	if s.connManager != nil {
		resp["websocket_connections"] = s.connManager.ActiveConnections()
	}
	c.JSON(http.StatusOK, resp)
}

// agentsHandler handles GET /api/agents.
func (s *Server) agentsHandler(c *gin.Context) {
	if s.registry == nil {
		c.JSON(http.StatusOK, gin.H{"agents": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": s.registry.Metadata()})
}
