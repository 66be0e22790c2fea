package handlers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aadhavm10/PremScout/internal/models"
	"github.com/Aadhavm10/PremScout/internal/roster"
	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/pkg/utils"
)

type PredictionsHandler struct {
	snapshots services.SnapshotSource
	cache     *services.CacheService
	cacheTTL  time.Duration
}

func NewPredictionsHandler(snapshots services.SnapshotSource, cache *services.CacheService, cacheTTL time.Duration) *PredictionsHandler {
	return &PredictionsHandler{
		snapshots: snapshots,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// predictionsResponse mirrors the shape the original feed servers returned.
type predictionsResponse struct {
	Gameweek        int             `json:"gameweek"`
	CSVFile         string          `json:"csv_file"`
	TotalPlayers    int             `json:"total_players"`
	FilteredPlayers int             `json:"filtered_players"`
	LastUpdated     string          `json:"last_updated"`
	Players         []models.Player `json:"players"`
}

// GetPredictions returns the normalized roster, filtered and sorted.
//
// Query parameters: team (substring, case-insensitive), position (exact GKP/
// DEF/MID/FWD), search (name substring, case-insensitive), sort_by (column
// name, default predicted_points), sort_order (asc/desc, default desc),
// limit (0 = all).
func (h *PredictionsHandler) GetPredictions(c *gin.Context) {
	snap, ok := h.snapshots.Snapshot()
	if !ok {
		utils.SendUnavailable(c, "No prediction data imported yet")
		return
	}

	position := c.Query("position")
	if position != "" {
		if _, ok := models.ParsePosition(position); !ok {
			utils.SendValidationError(c, "Invalid position", "must be one of GKP, DEF, MID, FWD")
			return
		}
	}

	filter := roster.Filter{
		Position: models.Position(position),
		Team:     c.Query("team"),
		Search:   c.Query("search"),
	}
	sortBy := c.DefaultQuery("sort_by", "predicted_points")
	sortOrder := roster.SortOrder(c.DefaultQuery("sort_order", "desc"))
	if sortOrder != roster.OrderAscending && sortOrder != roster.OrderDescending {
		sortOrder = roster.OrderDescending
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	ctx := context.Background()
	cacheKey := services.PredictionsCacheKey(snap.Gameweek, queryFingerprint(filter, sortBy, sortOrder, limit))
	var cached predictionsResponse
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		utils.SendSuccess(c, cached)
		return
	}

	players := roster.Apply(snap.Players, filter)
	players = roster.Sort(players, sortBy, sortOrder)
	if limit > 0 && limit < len(players) {
		players = players[:limit]
	}

	resp := predictionsResponse{
		Gameweek:        snap.Gameweek,
		CSVFile:         snap.CSVFile,
		TotalPlayers:    snap.TotalRaw,
		FilteredPlayers: len(players),
		LastUpdated:     snap.LastUpdated,
		Players:         players,
	}

	h.cache.SetWithRetry(ctx, cacheKey, resp, h.cacheTTL, 3)
	utils.SendSuccess(c, resp)
}

func queryFingerprint(f roster.Filter, sortBy string, order roster.SortOrder, limit int) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d", f.Position, f.Team, f.Search, sortBy, order, limit)
}
