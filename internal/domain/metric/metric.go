// Package metric implements the normalized string-similarity functions
// used for fuzzy token matching. Both metrics map a pair of strings to a
// score in [0,1], where 1.0 means equal and higher means more similar.
package metric

import "github.com/dmelton/fuzzdex/internal/ports"

// Func computes a similarity score in [0,1] for two strings.
type Func func(a, b string) float64

// For resolves the metric selected by opts. The choice is made once at
// engine construction; the returned function value is then called
// directly on the hot path with no further dispatch.
func For(opts ports.SearchOptions) Func {
	if opts.Levenshtein {
		return LevenshteinSimilarity
	}
	return JaroWinkler
}
