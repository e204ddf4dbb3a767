package compare

import "github.com/MikeSquared-Agency/Shortlist/internal/scoring"

// BuildVectors returns, for each selected program, its ratings in category
// order with the first value repeated at the end to close a cyclic trace.
// A program appearing more than once resolves to its best-ranked row;
// programs absent from the result are skipped, not errored. Missing or
// unreadable cells fall back to the default rating. Zero categories yields
// empty vectors.
func BuildVectors(result scoring.RankingResult, categories []string, programs []string) map[string][]float64 {
	vectors := make(map[string][]float64, len(programs))
	for _, prog := range programs {
		row, ok := firstMatch(result, prog)
		if !ok {
			continue
		}
		vec := make([]float64, 0, len(categories)+1)
		for _, c := range categories {
			vec = append(vec, scoring.ParseValue(row.Values[c]))
		}
		if len(vec) > 0 {
			vec = append(vec, vec[0])
		}
		vectors[prog] = vec
	}
	return vectors
}

// ClosedAxes returns the axis labels matching BuildVectors output: the
// categories with the first repeated at the end, empty when there are none.
func ClosedAxes(categories []string) []string {
	if len(categories) == 0 {
		return nil
	}
	axes := make([]string, 0, len(categories)+1)
	axes = append(axes, categories...)
	return append(axes, categories[0])
}

func firstMatch(result scoring.RankingResult, program string) (scoring.RankedRow, bool) {
	for _, r := range result {
		if r.Program == program {
			return r, true
		}
	}
	return scoring.RankedRow{}, false
}
