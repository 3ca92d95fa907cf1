// Package index implements the tokenizer, the generic inverted index,
// and the fuzzy search engine that ranks identifiers by aggregate
// token similarity.
package index

import (
	"regexp"
	"strings"

	"github.com/dmelton/fuzzdex/internal/ports"
)

// Tokenizer splits labels and queries into normalized tokens.
// Deterministic: same input and options always produce the same
// sequence. Order and duplicates are preserved; duplicate tokens within
// one label raise that token's weight for the label.
type Tokenizer struct {
	boundary      *regexp.Regexp
	caseSensitive bool
	stopWords     map[string]struct{}
}

// NewTokenizer compiles the boundary pattern from opts. Options must
// already be normalized and validated.
func NewTokenizer(opts ports.SearchOptions) (*Tokenizer, error) {
	boundary, err := regexp.Compile(opts.SplitPattern)
	if err != nil {
		return nil, err
	}

	tk := &Tokenizer{
		boundary:      boundary,
		caseSensitive: opts.CaseSensitive,
		stopWords:     make(map[string]struct{}, len(opts.StopWords)),
	}
	for _, w := range opts.StopWords {
		tk.stopWords[tk.fold(w)] = struct{}{}
	}
	return tk, nil
}

// Tokenize splits label on the boundary pattern, folds case, and drops
// stop-words and empty tokens.
func (t *Tokenizer) Tokenize(label string) []string {
	parts := t.boundary.Split(label, -1)

	var tokens []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		tok := t.fold(part)
		if _, stop := t.stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Fold normalizes pre-tokenized terms that bypass splitting. Case
// folding and stop-words still apply so a caller-supplied term behaves
// like the same term coming through Tokenize.
func (t *Tokenizer) Fold(terms []string) []string {
	var tokens []string
	for _, term := range terms {
		if term == "" {
			continue
		}
		tok := t.fold(term)
		if _, stop := t.stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func (t *Tokenizer) fold(s string) string {
	if t.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}
