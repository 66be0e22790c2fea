package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Aadhavm10/PremScout/internal/models"
	"github.com/Aadhavm10/PremScout/internal/services"
	"github.com/Aadhavm10/PremScout/pkg/database"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.NewConnection(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewStore(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func sampleSnapshot(gameweek int) *services.Snapshot {
	return &services.Snapshot{
		Gameweek:    gameweek,
		CSVFile:     "gameweek_3_predictions.csv",
		TotalRaw:    2,
		LastUpdated: "2026-08-27 18:00:00",
		ImportedAt:  time.Date(2026, 8, 27, 18, 5, 0, 0, time.UTC),
		Players: []models.Player{
			{Name: "Mohamed Salah", Team: "Liverpool", Position: models.PositionMidfielder, PredictedPoints: 8.4, NowCost: 13.1, PlayerCode: 118748},
			{Name: "David Raya", Team: "Arsenal", Position: models.PositionKeeper, PredictedPoints: 4.8, NowCost: 5.5},
		},
	}
}

func TestSaveAndGetSnapshot(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.SaveSnapshot(sampleSnapshot(3)))

	got, err := s.GetSnapshot(3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Gameweek)
	assert.Equal(t, "gameweek_3_predictions.csv", got.CSVFile)
	assert.Equal(t, 2, got.PlayerCount)
	assert.Equal(t, "2026-08-27 18:00:00", got.LastUpdated)

	require.Len(t, got.Players, 2)
	assert.Equal(t, "Mohamed Salah", got.Players[0].Name)
	assert.Equal(t, "MID", got.Players[0].Position)
	assert.Equal(t, 118748, got.Players[0].PlayerCode)
}

func TestSaveSnapshot_UpsertReplacesPlayers(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.SaveSnapshot(sampleSnapshot(3)))

	replacement := sampleSnapshot(3)
	replacement.CSVFile = "gameweek_3_predictions.csv"
	replacement.Players = replacement.Players[:1]
	require.NoError(t, s.SaveSnapshot(replacement))

	got, err := s.GetSnapshot(3)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PlayerCount)
	require.Len(t, got.Players, 1)
	assert.Equal(t, "Mohamed Salah", got.Players[0].Name)

	// Still exactly one archive row for the gameweek.
	snapshots, err := s.ListSnapshots()
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

func TestListSnapshots_NewestFirstWithoutPlayers(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.SaveSnapshot(sampleSnapshot(2)))
	require.NoError(t, s.SaveSnapshot(sampleSnapshot(10)))
	require.NoError(t, s.SaveSnapshot(sampleSnapshot(5)))

	snapshots, err := s.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, 10, snapshots[0].Gameweek)
	assert.Equal(t, 5, snapshots[1].Gameweek)
	assert.Equal(t, 2, snapshots[2].Gameweek)
	assert.Empty(t, snapshots[0].Players)
}

func TestGetSnapshot_NotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.GetSnapshot(99)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
