package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadhavm10/PremScout/internal/models"
)

func TestNormalize_FullRecord(t *testing.T) {
	rows := []RawRecord{{
		"name":                         "Mohamed Salah",
		"team":                         "Liverpool",
		"position":                     "MID",
		"fixture":                      "ARS (H)",
		"predicted_points":             "8.4",
		"now_cost":                     "13.1",
		"points_per_game":              "7.2",
		"form":                         "6.8",
		"expected_goals":               "0.74",
		"minutes":                      "1890",
		"assists":                      "9",
		"goals_scored":                 "14",
		"yellow_cards":                 "1",
		"red_cards":                    "0",
		"saves_per_90":                 "0",
		"total_points":                 "152",
		"clean_sheets":                 "8",
		"opponent_difficulty":          "4",
		"is_home":                      "True",
		"chance_of_playing_this_round": "100",
	}}

	players := Normalize(rows)
	require.Len(t, players, 1)

	p := players[0]
	assert.Equal(t, "Mohamed Salah", p.Name)
	assert.Equal(t, "Liverpool", p.Team)
	assert.Equal(t, models.PositionMidfielder, p.Position)
	assert.Equal(t, "ARS (H)", p.Fixture)
	assert.InDelta(t, 8.4, p.PredictedPoints, 1e-9)
	assert.InDelta(t, 13.1, p.NowCost, 1e-9)
	assert.InDelta(t, 0.74, p.ExpectedGoals, 1e-9)
	assert.InDelta(t, 152, p.TotalPoints, 1e-9)
	assert.True(t, p.IsHome)
	assert.InDelta(t, 100, p.ChanceOfPlaying, 1e-9)
}

func TestNormalize_DropsUnusableRows(t *testing.T) {
	rows := []RawRecord{
		{"name": "", "position": "MID"},
		{"name": "   ", "position": "DEF"},
		{"name": "No Position"},
		{"name": "Bad Position", "position": "STRIKER"},
		{"name": "Lowercase Code", "position": "mid"},
		{"name": "Kept Player", "position": "FWD"},
	}

	players := Normalize(rows)
	require.Len(t, players, 1)
	assert.Equal(t, "Kept Player", players[0].Name)
}

func TestNormalize_PreservesInputOrder(t *testing.T) {
	rows := []RawRecord{
		{"name": "Alpha", "position": "DEF"},
		{"name": "Dropped"},
		{"name": "Beta", "position": "GKP"},
		{"name": "Gamma", "position": "FWD"},
	}

	players := Normalize(rows)
	require.Len(t, players, 3)
	assert.Equal(t, "Alpha", players[0].Name)
	assert.Equal(t, "Beta", players[1].Name)
	assert.Equal(t, "Gamma", players[2].Name)
}

func TestNormalize_NumericDefaults(t *testing.T) {
	rows := []RawRecord{{
		"name":             "Sparse Player",
		"position":         "DEF",
		"predicted_points": "not-a-number",
	}}

	players := Normalize(rows)
	require.Len(t, players, 1)

	p := players[0]
	assert.Zero(t, p.PredictedPoints)
	assert.Zero(t, p.NowCost)
	assert.Zero(t, p.Minutes)
	assert.False(t, p.IsHome)
	assert.Zero(t, p.PlayerCode)
	assert.Empty(t, p.ImageSources)
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	rows := []RawRecord{{
		"name":     "  Trim Me  ",
		"team":     " Spurs ",
		"position": " MID ",
		"now_cost": " 5.5 ",
	}}

	players := Normalize(rows)
	require.Len(t, players, 1)
	assert.Equal(t, "Trim Me", players[0].Name)
	assert.Equal(t, "Spurs", players[0].Team)
	assert.Equal(t, models.PositionMidfielder, players[0].Position)
	assert.InDelta(t, 5.5, players[0].NowCost, 1e-9)
}

func TestNormalize_SynthesizesPhotoURLs(t *testing.T) {
	rows := []RawRecord{{
		"name":        "Coded Player",
		"position":    "FWD",
		"player_code": "118748",
	}}

	players := Normalize(rows)
	require.Len(t, players, 1)

	sources := players[0].ImageSources
	require.Len(t, sources, 3)
	assert.Equal(t, "https://resources.premierleague.com/premierleague/photos/players/110x140/p118748.png", sources[0])
	assert.Equal(t, "https://resources.premierleague.com/premierleague/photos/players/250x250/p118748.png", sources[1])
	assert.Equal(t, "https://platform-static-files.s3.amazonaws.com/premierleague/photos/players/110x140/p118748.png", sources[2])
}

func TestNormalize_ExplicitImageURLComesFirst(t *testing.T) {
	rows := []RawRecord{{
		"name":        "Custom Photo",
		"position":    "GKP",
		"player_code": "7",
		"image_url":   "https://cdn.example.com/custom.png",
	}}

	players := Normalize(rows)
	require.Len(t, players, 1)

	sources := players[0].ImageSources
	require.Len(t, sources, 4)
	assert.Equal(t, "https://cdn.example.com/custom.png", sources[0])
	assert.Contains(t, sources[1], "p7.png")
}

func TestNormalize_NoCodeNoSynthesizedURLs(t *testing.T) {
	rows := []RawRecord{{
		"name":      "Uncoded",
		"position":  "DEF",
		"image_url": "https://cdn.example.com/only.png",
	}}

	players := Normalize(rows)
	require.Len(t, players, 1)
	assert.Equal(t, []string{"https://cdn.example.com/only.png"}, players[0].ImageSources)
}

func TestBoolField(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"True", true},
		{"true", true},
		{"1", true},
		{"1.0", true},
		{"yes", true},
		{"False", false},
		{"0", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		row := RawRecord{"is_home": tt.raw}
		assert.Equal(t, tt.want, boolField(row, "is_home"), "raw %q", tt.raw)
	}
}
