// Package ports defines the boundary types shared between the domain
// packages, the app layer, and the CLI. Domain logic depends only on
// these types, never on concrete adapters.
package ports

import (
	"fmt"
	"regexp"
)

// DefaultSplitPattern matches runs of non-alphanumeric characters.
// Letters and digits are Unicode classes, so "café" stays one token.
const DefaultSplitPattern = `[^\p{L}\p{N}]+`

// DefaultThreshold is the minimum per-token similarity required for an
// indexed token to count as a match. 0.8 accepts near-misses like
// "thngs" -> "things" (~0.96) while rejecting "thngs" -> "the" (~0.75).
const DefaultThreshold = 0.8

// SearchOptions configures an engine instance. Options are read once at
// construction and never consulted again; mutating a SearchOptions value
// after passing it to the engine has no effect.
type SearchOptions struct {
	// CaseSensitive disables lowercasing in the tokenizer.
	CaseSensitive bool `yaml:"caseSensitive"`

	// StopWords are tokens excluded from indexing and matching.
	// Compared after case folding.
	StopWords []string `yaml:"stopWords"`

	// SplitPattern is a regular expression whose matches are token
	// boundaries. Empty means DefaultSplitPattern.
	SplitPattern string `yaml:"splitPattern"`

	// Threshold is the minimum similarity for a token match, in [0,1].
	// The boundary is inclusive: similarity == Threshold counts.
	// Zero means DefaultThreshold.
	Threshold float64 `yaml:"threshold"`

	// Levenshtein selects the bit-parallel Levenshtein metric instead of
	// the default Jaro-Winkler. Levenshtein is tuned for single-byte
	// (ASCII) content; non-ASCII input degrades to a slower scalar path.
	Levenshtein bool `yaml:"levenshtein"`
}

// Default returns the options used by fuzzdex.New.
func Default() SearchOptions {
	return SearchOptions{
		SplitPattern: DefaultSplitPattern,
		Threshold:    DefaultThreshold,
	}
}

// Normalize fills zero values with defaults and returns the result.
func (o SearchOptions) Normalize() SearchOptions {
	if o.SplitPattern == "" {
		o.SplitPattern = DefaultSplitPattern
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	return o
}

// Validate rejects malformed option combinations. Called by the engine
// constructor so configuration errors surface before any insert.
func (o SearchOptions) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("threshold %v out of range [0,1]", o.Threshold)
	}
	if o.SplitPattern != "" {
		if _, err := regexp.Compile(o.SplitPattern); err != nil {
			return fmt.Errorf("split pattern: %w", err)
		}
	}
	return nil
}
