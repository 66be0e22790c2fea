package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aadhavm10/PremScout/internal/store"
	"github.com/Aadhavm10/PremScout/pkg/utils"
)

type GameweeksHandler struct {
	archive *store.Store
}

func NewGameweeksHandler(archive *store.Store) *GameweeksHandler {
	return &GameweeksHandler{archive: archive}
}

// ListGameweeks returns the archived gameweek imports, newest first.
func (h *GameweeksHandler) ListGameweeks(c *gin.Context) {
	if h.archive == nil {
		utils.SendUnavailable(c, "Gameweek archive not configured")
		return
	}

	snapshots, err := h.archive.ListSnapshots()
	if err != nil {
		utils.SendInternalError(c, "Failed to list gameweeks")
		return
	}

	utils.SendSuccess(c, gin.H{"gameweeks": snapshots})
}

// GetGameweek returns one archived gameweek with its player rows.
func (h *GameweeksHandler) GetGameweek(c *gin.Context) {
	if h.archive == nil {
		utils.SendUnavailable(c, "Gameweek archive not configured")
		return
	}

	gameweek, err := strconv.Atoi(c.Param("gameweek"))
	if err != nil {
		utils.SendValidationError(c, "Invalid gameweek", err.Error())
		return
	}

	snapshot, err := h.archive.GetSnapshot(gameweek)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.SendNotFound(c, "Gameweek not archived")
			return
		}
		utils.SendInternalError(c, "Failed to load gameweek")
		return
	}

	utils.SendSuccess(c, snapshot)
}
