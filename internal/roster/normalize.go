package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Aadhavm10/PremScout/internal/models"
)

// RawRecord is one row of the predictions feed as delivered by the ingestion
// layer: header-keyed string values of arbitrary completeness.
type RawRecord map[string]string

// Photo URL templates tried in order when a record carries a numeric player
// code but no explicit image reference. The first is the current premierleague
// CDN path, the second its larger variant, the third the legacy S3 host that
// still serves older player codes.
const (
	photoURLPrimary = "https://resources.premierleague.com/premierleague/photos/players/110x140/p%d.png"
	photoURLLarge   = "https://resources.premierleague.com/premierleague/photos/players/250x250/p%d.png"
	photoURLLegacy  = "https://platform-static-files.s3.amazonaws.com/premierleague/photos/players/110x140/p%d.png"
)

// Normalize converts raw rows into immutable player records. Rows missing a
// name or a recognizable position are dropped, never fatal; the output order
// follows the input order so downstream stable sorts stay deterministic.
func Normalize(rows []RawRecord) []models.Player {
	players := make([]models.Player, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		player, ok := normalizeRecord(row)
		if !ok {
			dropped++
			continue
		}
		players = append(players, player)
	}
	if dropped > 0 {
		logrus.Debugf("Normalization dropped %d of %d raw records", dropped, len(rows))
	}
	return players
}

func normalizeRecord(row RawRecord) (models.Player, bool) {
	name := strings.TrimSpace(row["name"])
	if name == "" {
		return models.Player{}, false
	}
	position, ok := models.ParsePosition(strings.TrimSpace(row["position"]))
	if !ok {
		return models.Player{}, false
	}

	player := models.Player{
		Name:     name,
		Team:     strings.TrimSpace(row["team"]),
		Position: position,
		Fixture:  strings.TrimSpace(row["fixture"]),

		PredictedPoints:    numericField(row, "predicted_points"),
		NowCost:            numericField(row, "now_cost"),
		PointsPerGame:      numericField(row, "points_per_game"),
		Form:               numericField(row, "form"),
		ExpectedGoals:      numericField(row, "expected_goals"),
		Minutes:            numericField(row, "minutes"),
		Assists:            numericField(row, "assists"),
		GoalsScored:        numericField(row, "goals_scored"),
		YellowCards:        numericField(row, "yellow_cards"),
		RedCards:           numericField(row, "red_cards"),
		SavesPer90:         numericField(row, "saves_per_90"),
		TotalPoints:        numericField(row, "total_points"),
		CleanSheets:        numericField(row, "clean_sheets"),
		OpponentDifficulty: numericField(row, "opponent_difficulty"),
		IsHome:             boolField(row, "is_home"),
		ChanceOfPlaying:    numericField(row, "chance_of_playing_this_round"),
		PlayerCode:         int(numericField(row, "player_code")),
	}

	if url := strings.TrimSpace(row["image_url"]); url != "" {
		player.ImageSources = append(player.ImageSources, url)
	}
	if player.PlayerCode > 0 {
		player.ImageSources = append(player.ImageSources, photoURLs(player.PlayerCode)...)
	}

	return player, true
}

// photoURLs synthesizes the standard photo references for a player code,
// appended after any explicitly supplied reference.
func photoURLs(code int) []string {
	return []string{
		fmt.Sprintf(photoURLPrimary, code),
		fmt.Sprintf(photoURLLarge, code),
		fmt.Sprintf(photoURLLegacy, code),
	}
}

// numericField parses a float from the row; absent or non-numeric values
// default to 0 and are never propagated as errors.
func numericField(row RawRecord, key string) float64 {
	raw := strings.TrimSpace(row[key])
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func boolField(row RawRecord, key string) bool {
	switch strings.ToLower(strings.TrimSpace(row[key])) {
	case "true", "1", "1.0", "yes":
		return true
	}
	return false
}
