package optimizer

import (
	"sort"

	"github.com/Aadhavm10/PremScout/internal/models"
)

// Catalog is the fixed set of valid formations. The order is load-bearing:
// when two formations achieve the same aggregate score, the one appearing
// earlier here wins.
var Catalog = []models.Formation{
	{Name: "3-4-3", Defenders: 3, Midfielders: 4, Forwards: 3},
	{Name: "3-5-2", Defenders: 3, Midfielders: 5, Forwards: 2},
	{Name: "4-3-3", Defenders: 4, Midfielders: 3, Forwards: 3},
	{Name: "4-4-2", Defenders: 4, Midfielders: 4, Forwards: 2},
	{Name: "4-5-1", Defenders: 4, Midfielders: 5, Forwards: 1},
	{Name: "5-3-2", Defenders: 5, Midfielders: 3, Forwards: 2},
	{Name: "5-4-1", Defenders: 5, Midfielders: 4, Forwards: 1},
}

// fallbackFormation is used when no formation is feasible. Its quotas are not
// enforced on the fallback path; each slot takes whatever the bucket holds.
var fallbackFormation = Catalog[3] // 4-4-2

const keeperQuota = 1

type buckets struct {
	keepers     []models.Player
	defenders   []models.Player
	midfielders []models.Player
	forwards    []models.Player
}

// SelectBestLineup returns the highest-scoring lineup satisfying some
// formation's quotas, or a best-effort 4-4-2 slice when no formation is
// feasible. It never fails: an empty roster yields an empty lineup. The
// result is a pure function of the roster, so callers may memoize it.
func SelectBestLineup(roster []models.Player) models.Lineup {
	b := partition(roster)

	var best *models.Formation
	bestScore := 0.0
	for i := range Catalog {
		f := Catalog[i]
		if !feasible(b, f) {
			continue
		}
		score := candidateScore(b, f)
		// Strict improvement only: on a tie the earlier formation stands.
		if best == nil || score > bestScore {
			best = &Catalog[i]
			bestScore = score
		}
	}

	if best == nil {
		return build(b, fallbackFormation)
	}
	return build(b, *best)
}

// partition splits the roster by position and orders each bucket by predicted
// points, descending. The sort is stable, so players tied on score keep their
// original feed order; that decides inclusion at a quota cut line.
func partition(roster []models.Player) buckets {
	var b buckets
	for _, p := range roster {
		switch p.Position {
		case models.PositionKeeper:
			b.keepers = append(b.keepers, p)
		case models.PositionDefender:
			b.defenders = append(b.defenders, p)
		case models.PositionMidfielder:
			b.midfielders = append(b.midfielders, p)
		case models.PositionForward:
			b.forwards = append(b.forwards, p)
		}
	}
	for _, bucket := range [][]models.Player{b.keepers, b.defenders, b.midfielders, b.forwards} {
		bucket := bucket
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].PredictedPoints > bucket[j].PredictedPoints
		})
	}
	return b
}

func feasible(b buckets, f models.Formation) bool {
	return len(b.keepers) >= keeperQuota &&
		len(b.defenders) >= f.Defenders &&
		len(b.midfielders) >= f.Midfielders &&
		len(b.forwards) >= f.Forwards
}

func candidateScore(b buckets, f models.Formation) float64 {
	total := 0.0
	total += sumTop(b.keepers, keeperQuota)
	total += sumTop(b.defenders, f.Defenders)
	total += sumTop(b.midfielders, f.Midfielders)
	total += sumTop(b.forwards, f.Forwards)
	return total
}

func sumTop(bucket []models.Player, n int) float64 {
	total := 0.0
	for _, p := range take(bucket, n) {
		total += p.PredictedPoints
	}
	return total
}

// build assembles the lineup for a formation, capping each slot by bucket
// size so the fallback path degrades instead of failing.
func build(b buckets, f models.Formation) models.Lineup {
	lineup := models.Lineup{
		Formation:   f.Name,
		Keepers:     take(b.keepers, keeperQuota),
		Defenders:   take(b.defenders, f.Defenders),
		Midfielders: take(b.midfielders, f.Midfielders),
		Forwards:    take(b.forwards, f.Forwards),
	}
	lineup.CalculateTotals()
	return lineup
}

func take(bucket []models.Player, n int) []models.Player {
	if n > len(bucket) {
		n = len(bucket)
	}
	out := make([]models.Player, n)
	copy(out, bucket[:n])
	return out
}
