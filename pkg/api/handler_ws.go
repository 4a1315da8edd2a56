package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/finovant/macaw/pkg/events"
)

// wsHandler handles GET /socket/:plan_id: upgrades to a WebSocket and hands
// the connection to the manager, pre-subscribed to the plan's channel.
// HandleConnection blocks until the client disconnects.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available"})
		return
	}

	planID := c.Param("plan_id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required", "field": "plan_id"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Browser dashboards connect cross-origin in development.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("WebSocket upgrade failed", "plan_id", planID, "error", err)
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn, events.PlanChannel(planID))
}
