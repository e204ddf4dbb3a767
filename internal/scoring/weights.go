package scoring

import "sort"

// Weights maps a category to its integer importance. The caller rebuilds the
// map on every recompute, so it may be stale relative to the current schema:
// entries for removed categories still contribute at the default rating, and
// categories without an entry are ignored. It is never the source of truth
// for schema membership.
type Weights map[string]int

// DefaultWeights assigns weight to every category: the weight set a caller
// holds before adjusting anything.
func DefaultWeights(categories []string, weight int) Weights {
	w := make(Weights, len(categories))
	for _, c := range categories {
		w[c] = weight
	}
	return w
}

// Clamped returns a copy with every weight forced into [min, max].
func (w Weights) Clamped(min, max int) Weights {
	out := make(Weights, len(w))
	for c, v := range w {
		if v < min {
			v = min
		}
		if v > max {
			v = max
		}
		out[c] = v
	}
	return out
}

// sortedCategories fixes the accumulation order so float summation cannot
// differ between runs over the same input.
func (w Weights) sortedCategories() []string {
	cats := make([]string, 0, len(w))
	for c := range w {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
