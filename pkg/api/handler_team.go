package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finovant/macaw/pkg/services"
)

const maxTeamUploadBytes = 1 << 20 // 1 MiB

// listTeamsHandler handles GET /api/teams.
func (s *Server) listTeamsHandler(c *gin.Context) {
	teams, err := s.teams.ListTeams(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// uploadTeamHandler handles POST /api/teams/upload. The body is a YAML team
// definition document.
func (s *Server) uploadTeamHandler(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxTeamUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty team definition"})
		return
	}

	def, err := services.ParseDefinition(raw)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	team, err := s.teams.Upload(c.Request.Context(), def)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// deleteTeamHandler handles DELETE /api/teams/:id.
func (s *Server) deleteTeamHandler(c *gin.Context) {
	teamID := c.Param("id")
	if err := s.teams.DeleteTeam(c.Request.Context(), teamID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": teamID})
}
