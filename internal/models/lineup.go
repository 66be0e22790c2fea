package models

// Formation is a named quota triple; the keeper quota is always exactly 1 and
// is not part of the triple.
type Formation struct {
	Name        string `json:"name"`
	Defenders   int    `json:"defenders"`
	Midfielders int    `json:"midfielders"`
	Forwards    int    `json:"forwards"`
}

// Lineup is a selection from the roster tagged with the formation it
// satisfies. Constructed fresh on every optimization call; never persisted.
type Lineup struct {
	Formation    string   `json:"formation"`
	Keepers      []Player `json:"keepers"`
	Defenders    []Player `json:"defenders"`
	Midfielders  []Player `json:"midfielders"`
	Forwards     []Player `json:"forwards"`
	TotalScore   float64  `json:"total_score"`
	TotalCost    float64  `json:"total_cost"`
	AverageScore float64  `json:"average_score"`
}

// Players returns all selected players in slot order.
func (l *Lineup) Players() []Player {
	players := make([]Player, 0, l.Size())
	players = append(players, l.Keepers...)
	players = append(players, l.Defenders...)
	players = append(players, l.Midfielders...)
	players = append(players, l.Forwards...)
	return players
}

// Size is the number of selected players. The best-effort fallback can leave
// it below 11.
func (l *Lineup) Size() int {
	return len(l.Keepers) + len(l.Defenders) + len(l.Midfielders) + len(l.Forwards)
}

// CalculateTotals recomputes the aggregate score, cost and average score from
// the selected players. The average always divides by the full squad size of
// 11, not the selected count, so an under-quota fallback lineup reads low.
func (l *Lineup) CalculateTotals() {
	l.TotalScore = 0
	l.TotalCost = 0
	for _, p := range l.Players() {
		l.TotalScore += p.PredictedPoints
		l.TotalCost += p.NowCost
	}
	l.AverageScore = l.TotalScore / 11
}
