package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/pkg/utils"
)

type StatsHandler struct {
	snapshots services.SnapshotSource
}

func NewStatsHandler(snapshots services.SnapshotSource) *StatsHandler {
	return &StatsHandler{snapshots: snapshots}
}

// GetStats returns roster-level aggregates for the current gameweek.
func (h *StatsHandler) GetStats(c *gin.Context) {
	snap, ok := h.snapshots.Snapshot()
	if !ok {
		utils.SendUnavailable(c, "No prediction data imported yet")
		return
	}

	var sum, max float64
	positions := make(map[string]int)
	teams := make(map[string]bool)
	for _, p := range snap.Players {
		sum += p.PredictedPoints
		if p.PredictedPoints > max {
			max = p.PredictedPoints
		}
		positions[string(p.Position)]++
		if p.Team != "" {
			teams[p.Team] = true
		}
	}

	avg := 0.0
	if len(snap.Players) > 0 {
		avg = sum / float64(len(snap.Players))
	}

	utils.SendSuccess(c, gin.H{
		"gameweek":             snap.Gameweek,
		"total_players":        len(snap.Players),
		"avg_predicted_points": avg,
		"max_predicted_points": max,
		"positions":            positions,
		"teams":                len(teams),
		"last_updated":         snap.LastUpdated,
	})
}
