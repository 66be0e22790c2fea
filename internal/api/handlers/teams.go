package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/pkg/utils"
)

type TeamsHandler struct {
	snapshots services.SnapshotSource
}

func NewTeamsHandler(snapshots services.SnapshotSource) *TeamsHandler {
	return &TeamsHandler{snapshots: snapshots}
}

// GetTeams returns the distinct team names in the roster, sorted.
func (h *TeamsHandler) GetTeams(c *gin.Context) {
	snap, ok := h.snapshots.Snapshot()
	if !ok {
		utils.SendUnavailable(c, "No prediction data imported yet")
		return
	}

	seen := make(map[string]bool)
	teams := make([]string, 0)
	for _, p := range snap.Players {
		if p.Team != "" && !seen[p.Team] {
			seen[p.Team] = true
			teams = append(teams, p.Team)
		}
	}
	sort.Strings(teams)

	utils.SendSuccess(c, gin.H{"teams": teams})
}
