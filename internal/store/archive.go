// Package store persists imported gameweek snapshots so the API can answer
// history queries after the source CSV files rotate away.
package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/pkg/database"
)

type GameweekSnapshot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Gameweek    int       `gorm:"uniqueIndex;not null" json:"gameweek"`
	CSVFile     string    `gorm:"not null" json:"csv_file"`
	PlayerCount int       `gorm:"not null" json:"player_count"`
	LastUpdated string    `json:"last_updated"`
	ImportedAt  time.Time `json:"imported_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Players []GameweekPlayer `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
}

func (GameweekSnapshot) TableName() string {
	return "gameweek_snapshots"
}

type GameweekPlayer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SnapshotID uint   `gorm:"index;not null" json:"-"`
	Name       string `gorm:"not null" json:"name"`
	Team       string `json:"team"`
	Position   string `gorm:"size:3;not null" json:"position"`

	PredictedPoints float64 `json:"predicted_points"`
	NowCost         float64 `json:"now_cost"`
	Form            float64 `json:"form"`
	TotalPoints     float64 `json:"total_points"`
	Minutes         float64 `json:"minutes"`
	PlayerCode      int     `json:"player_code"`
}

func (GameweekPlayer) TableName() string {
	return "gameweek_players"
}

type Store struct {
	db *database.DB
}

func NewStore(db *database.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the archive schema.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&GameweekSnapshot{}, &GameweekPlayer{})
}

// SaveSnapshot upserts the archive row for a gameweek: re-importing the same
// gameweek replaces its players rather than duplicating them.
func (s *Store) SaveSnapshot(snap *services.Snapshot) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing GameweekSnapshot
		err := tx.Where("gameweek = ?", snap.Gameweek).First(&existing).Error
		if err == nil {
			if err := tx.Where("snapshot_id = ?", existing.ID).Delete(&GameweekPlayer{}).Error; err != nil {
				return fmt.Errorf("failed to clear previous players: %w", err)
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to clear previous snapshot: %w", err)
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		row := GameweekSnapshot{
			Gameweek:    snap.Gameweek,
			CSVFile:     snap.CSVFile,
			PlayerCount: len(snap.Players),
			LastUpdated: snap.LastUpdated,
			ImportedAt:  snap.ImportedAt,
			Players:     make([]GameweekPlayer, 0, len(snap.Players)),
		}
		for _, p := range snap.Players {
			row.Players = append(row.Players, GameweekPlayer{
				Name:            p.Name,
				Team:            p.Team,
				Position:        string(p.Position),
				PredictedPoints: p.PredictedPoints,
				NowCost:         p.NowCost,
				Form:            p.Form,
				TotalPoints:     p.TotalPoints,
				Minutes:         p.Minutes,
				PlayerCode:      p.PlayerCode,
			})
		}

		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		return nil
	})
}

// ListSnapshots returns the archived gameweeks, newest first, without player
// rows.
func (s *Store) ListSnapshots() ([]GameweekSnapshot, error) {
	var snapshots []GameweekSnapshot
	if err := s.db.Order("gameweek DESC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// GetSnapshot returns one archived gameweek with its player rows.
func (s *Store) GetSnapshot(gameweek int) (*GameweekSnapshot, error) {
	var snapshot GameweekSnapshot
	err := s.db.Preload("Players").Where("gameweek = ?", gameweek).First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
