package models

// Position is a player's fixed positional category. The wire encoding uses the
// short FPL codes; mapping is exact and case-sensitive.
type Position string

const (
	PositionKeeper     Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// ParsePosition maps a raw position code to the enum. Unknown codes are
// rejected rather than defaulted; a record with no knowable position cannot
// participate in lineup selection.
func ParsePosition(code string) (Position, bool) {
	switch code {
	case "GKP":
		return PositionKeeper, true
	case "DEF":
		return PositionDefender, true
	case "MID":
		return PositionMidfielder, true
	case "FWD":
		return PositionForward, true
	}
	return "", false
}

// Player is one normalized roster entry. Constructed once per normalization
// pass and immutable thereafter; re-running normalization produces a fresh set.
//
// PredictedPoints is the externally supplied figure the optimizer maximizes.
// The remaining numeric attributes are carried through unmodified for display
// and sorting; their semantics are opaque here.
type Player struct {
	Name     string   `json:"name"`
	Team     string   `json:"team"`
	Position Position `json:"position"`
	Fixture  string   `json:"fixture"`

	PredictedPoints    float64 `json:"predicted_points"`
	NowCost            float64 `json:"now_cost"`
	PointsPerGame      float64 `json:"points_per_game"`
	Form               float64 `json:"form"`
	ExpectedGoals      float64 `json:"expected_goals"`
	Minutes            float64 `json:"minutes"`
	Assists            float64 `json:"assists"`
	GoalsScored        float64 `json:"goals_scored"`
	YellowCards        float64 `json:"yellow_cards"`
	RedCards           float64 `json:"red_cards"`
	SavesPer90         float64 `json:"saves_per_90"`
	TotalPoints        float64 `json:"total_points"`
	CleanSheets        float64 `json:"clean_sheets"`
	OpponentDifficulty float64 `json:"opponent_difficulty"`
	IsHome             bool    `json:"is_home"`
	ChanceOfPlaying    float64 `json:"chance_of_playing_this_round"`

	// PlayerCode is the numeric FPL identifier, 0 when unknown.
	PlayerCode int `json:"player_code"`

	// ImageSources is the ordered list of candidate photo URLs, tried in
	// order by the consumer. The generated placeholder is not stored here;
	// the images package appends it when building the full fallback chain.
	ImageSources []string `json:"image_sources,omitempty"`
}
