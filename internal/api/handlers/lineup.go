package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aadhavm10/PremScout/internal/models"
	"github.com/Aadhavm10/PremScout/internal/optimizer"
	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/pkg/utils"
)

type LineupHandler struct {
	snapshots services.SnapshotSource
	cache     *services.CacheService
	cacheTTL  time.Duration
}

func NewLineupHandler(snapshots services.SnapshotSource, cache *services.CacheService, cacheTTL time.Duration) *LineupHandler {
	return &LineupHandler{
		snapshots: snapshots,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

type lineupResponse struct {
	Gameweek      int           `json:"gameweek"`
	Lineup        models.Lineup `json:"lineup"`
	SelectedCount int           `json:"selected_count"`
}

// GetBestLineup returns the highest-scoring valid lineup for the current
// snapshot. A selected_count below 11 signals the best-effort fallback.
func (h *LineupHandler) GetBestLineup(c *gin.Context) {
	snap, ok := h.snapshots.Snapshot()
	if !ok {
		utils.SendUnavailable(c, "No prediction data imported yet")
		return
	}

	ctx := context.Background()
	cacheKey := services.LineupCacheKey(snap.Gameweek)
	var cached lineupResponse
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		utils.SendSuccess(c, cached)
		return
	}

	lineup := optimizer.SelectBestLineup(snap.Players)
	resp := lineupResponse{
		Gameweek:      snap.Gameweek,
		Lineup:        lineup,
		SelectedCount: lineup.Size(),
	}

	h.cache.SetWithRetry(ctx, cacheKey, resp, h.cacheTTL, 3)
	utils.SendSuccess(c, resp)
}

// GetFormations returns the formation catalog in evaluation order.
func (h *LineupHandler) GetFormations(c *gin.Context) {
	utils.SendSuccess(c, optimizer.Catalog)
}
