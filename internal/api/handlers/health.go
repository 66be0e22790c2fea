package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aadhavm10/PremScout/internal/services"
)

type HealthHandler struct {
	snapshots services.SnapshotSource
}

func NewHealthHandler(snapshots services.SnapshotSource) *HealthHandler {
	return &HealthHandler{snapshots: snapshots}
}

func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	}
	if snap, ok := h.snapshots.Snapshot(); ok {
		status["gameweek"] = snap.Gameweek
		status["imported_at"] = snap.ImportedAt
	}
	c.JSON(http.StatusOK, status)
}
