package roster

import (
	"sort"
	"strings"

	"github.com/Aadhavm10/PremScout/internal/models"
)

// Filter is a conjunctive set of predicates over the roster. Zero values
// match everything.
type Filter struct {
	Position models.Position `json:"position"` // exact match
	Team     string          `json:"team"`     // case-insensitive substring
	Search   string          `json:"search"`   // case-insensitive name substring
}

func (f Filter) Match(p models.Player) bool {
	if f.Position != "" && p.Position != f.Position {
		return false
	}
	if f.Team != "" && !strings.Contains(strings.ToLower(p.Team), strings.ToLower(f.Team)) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply returns the players matching every predicate, preserving input order.
// The input roster is never mutated.
func Apply(players []models.Player, f Filter) []models.Player {
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// SortState is the table's single active sort key. Selecting a new key resets
// the order to descending; re-selecting the current key flips it.
type SortState struct {
	Key   string    `json:"key"`
	Order SortOrder `json:"order"`
}

func (s SortState) Toggle(key string) SortState {
	if s.Key != key {
		return SortState{Key: key, Order: OrderDescending}
	}
	if s.Order == OrderDescending {
		return SortState{Key: key, Order: OrderAscending}
	}
	return SortState{Key: key, Order: OrderDescending}
}

// Keys use the feed's column names.
var numericKeys = map[string]func(models.Player) float64{
	"predicted_points":             func(p models.Player) float64 { return p.PredictedPoints },
	"now_cost":                     func(p models.Player) float64 { return p.NowCost },
	"points_per_game":              func(p models.Player) float64 { return p.PointsPerGame },
	"form":                         func(p models.Player) float64 { return p.Form },
	"expected_goals":               func(p models.Player) float64 { return p.ExpectedGoals },
	"minutes":                      func(p models.Player) float64 { return p.Minutes },
	"assists":                      func(p models.Player) float64 { return p.Assists },
	"goals_scored":                 func(p models.Player) float64 { return p.GoalsScored },
	"yellow_cards":                 func(p models.Player) float64 { return p.YellowCards },
	"red_cards":                    func(p models.Player) float64 { return p.RedCards },
	"saves_per_90":                 func(p models.Player) float64 { return p.SavesPer90 },
	"total_points":                 func(p models.Player) float64 { return p.TotalPoints },
	"clean_sheets":                 func(p models.Player) float64 { return p.CleanSheets },
	"opponent_difficulty":          func(p models.Player) float64 { return p.OpponentDifficulty },
	"chance_of_playing_this_round": func(p models.Player) float64 { return p.ChanceOfPlaying },
}

var textKeys = map[string]func(models.Player) string{
	"name":     func(p models.Player) string { return p.Name },
	"team":     func(p models.Player) string { return p.Team },
	"position": func(p models.Player) string { return string(p.Position) },
	"fixture":  func(p models.Player) string { return p.Fixture },
}

// Sort returns a new ordering of the roster by a single key. Numeric fields
// compare numerically, text fields lexicographically (case-sensitive). Ties
// retain their prior relative order. An unknown key returns the input order
// unchanged, matching how the original feed servers ignored bad sort params.
func Sort(players []models.Player, key string, order SortOrder) []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)

	if num, ok := numericKeys[key]; ok {
		sort.SliceStable(out, func(i, j int) bool {
			if order == OrderAscending {
				return num(out[i]) < num(out[j])
			}
			return num(out[i]) > num(out[j])
		})
		return out
	}
	if txt, ok := textKeys[key]; ok {
		sort.SliceStable(out, func(i, j int) bool {
			if order == OrderAscending {
				return txt(out[i]) < txt(out[j])
			}
			return txt(out[i]) > txt(out[j])
		})
		return out
	}
	return out
}

// SortKnown reports whether key names a sortable column.
func SortKnown(key string) bool {
	if _, ok := numericKeys[key]; ok {
		return true
	}
	_, ok := textKeys[key]
	return ok
}
