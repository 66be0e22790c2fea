package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aadhavm10/PremScout/internal/api/handlers"
	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/internal/store"
)

// SetupRoutes configures all API routes on the given router group. The
// archive may be nil when no database is configured.
func SetupRoutes(group *gin.RouterGroup, snapshots services.SnapshotSource, cache *services.CacheService, archive *store.Store, cacheTTL time.Duration) {
	predictionsHandler := handlers.NewPredictionsHandler(snapshots, cache, cacheTTL)
	lineupHandler := handlers.NewLineupHandler(snapshots, cache, cacheTTL)
	teamsHandler := handlers.NewTeamsHandler(snapshots)
	statsHandler := handlers.NewStatsHandler(snapshots)
	gameweeksHandler := handlers.NewGameweeksHandler(archive)

	group.GET("/predictions", predictionsHandler.GetPredictions)
	group.GET("/teams", teamsHandler.GetTeams)
	group.GET("/stats", statsHandler.GetStats)

	group.GET("/lineup", lineupHandler.GetBestLineup)
	group.GET("/formations", lineupHandler.GetFormations)

	group.GET("/gameweeks", gameweeksHandler.ListGameweeks)
	group.GET("/gameweeks/:gameweek", gameweeksHandler.GetGameweek)
}
