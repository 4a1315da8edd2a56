package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finovant/macaw/pkg/approval"
	"github.com/finovant/macaw/pkg/engine"
	"github.com/finovant/macaw/pkg/services"
)

// mapServiceError writes the HTTP error response for a service or engine
// error: validation → 400, unknown plan → 404, wrong-state operations → 409,
// everything else → 500.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Message, "field": validErr.Field})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, approval.ErrUnknownPlan),
		errors.Is(err, engine.ErrUnknownRun):
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isWrongState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// isWrongState reports whether the operation was legal in shape but illegal
// in the plan's current state.
func isWrongState(err error) bool {
	var transitionErr *approval.InvalidTransitionError
	return errors.As(err, &transitionErr) ||
		errors.Is(err, approval.ErrNoPendingCheckpoint) ||
		errors.Is(err, approval.ErrNotExecutable) ||
		errors.Is(err, approval.ErrExecutionHeld) ||
		errors.Is(err, services.ErrNotCancellable) ||
		errors.Is(err, services.ErrAlreadyExists) ||
		errors.Is(err, services.ErrConcurrentModification) ||
		errors.Is(err, engine.ErrAlreadyRunning)
}
