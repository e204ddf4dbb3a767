package scoring

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/Shortlist/internal/table"
)

// Ratings live on a 0–5 scale; a missing or unreadable rating counts as the
// scale midpoint.
const (
	RatingScale   = 5.0
	DefaultRating = 3.0
)

// RankedRow is one table row augmented with its weighted final score.
type RankedRow struct {
	Program    string            `json:"program"`
	Values     map[string]string `json:"values"`
	FinalScore float64           `json:"final_score"`
}

// RankingResult holds the ranked rows, sorted by FinalScore descending with
// ties keeping their input order.
type RankingResult []RankedRow

// Compute ranks rows under the given weights.
//
// Each row scores Σ (rating/5)×weight over the weighted categories, rounded
// to two decimals half-away-from-zero. A weighted category the row lacks
// counts as the default rating; a row column carrying no weight contributes
// nothing. Identical inputs always produce identical output, row order
// included.
func Compute(rows []table.Row, weights Weights) RankingResult {
	result := make(RankingResult, 0, len(rows))
	cats := weights.sortedCategories()

	for _, r := range rows {
		var sum float64
		for _, cat := range cats {
			raw, _ := table.ReadValue(r, cat)
			sum += ParseValue(raw) / RatingScale * float64(weights[cat])
		}
		result = append(result, RankedRow{
			Program:    r.Program,
			Values:     r.Values,
			FinalScore: Round2(sum),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FinalScore > result[j].FinalScore
	})
	return result
}

// ParseValue coerces a raw cell to a rating. Missing, empty, or non-numeric
// input falls back to the default rating; the result is always finite.
func ParseValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultRating
	}
	return v
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
