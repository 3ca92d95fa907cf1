package index

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dmelton/fuzzdex/internal/domain/metric"
	"github.com/dmelton/fuzzdex/internal/ports"
)

// Engine orchestrates fuzzy queries over the inverted index. It is
// single-threaded by design: operations run to completion on the
// calling goroutine with no internal locking. Callers that share an
// engine across goroutines must wrap the whole instance in one
// exclusive lock (see internal/app).
type Engine[ID comparable] struct {
	opts ports.SearchOptions
	tok  *Tokenizer
	sim  metric.Func
	idx  *Index[ID]

	// debug enables phase timing output (FUZZDEX_DEBUG=1).
	debug bool
}

// NewEngine validates opts and builds an empty engine. The metric and
// the tokenizer pattern are fixed here, never per call.
func NewEngine[ID comparable](opts ports.SearchOptions) (*Engine[ID], error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("search options: %w", err)
	}

	tok, err := NewTokenizer(opts)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: %w", err)
	}

	return &Engine[ID]{
		opts:  opts,
		tok:   tok,
		sim:   metric.For(opts),
		idx:   NewIndex[ID](),
		debug: os.Getenv("FUZZDEX_DEBUG") == "1",
	}, nil
}

// Insert tokenizes label and registers it as a new label instance of
// id. An identifier may accumulate any number of labels; each adds to
// its score surface independently.
func (e *Engine[ID]) Insert(id ID, label string) {
	e.idx.Insert(id, e.tok.Tokenize(label))
}

// InsertTokens registers caller-supplied terms as one label instance,
// bypassing boundary splitting. Case folding and stop-words still
// apply so the terms stay matchable against tokenized queries.
func (e *Engine[ID]) InsertTokens(id ID, terms []string) {
	e.idx.Insert(id, e.tok.Fold(terms))
}

// Delete removes id and all of its label instances. No-op when id was
// never inserted.
func (e *Engine[ID]) Delete(id ID) {
	e.idx.Delete(id)
}

// Len reports the number of registered identifiers.
func (e *Engine[ID]) Len() int {
	return e.idx.Len()
}

// VocabLen reports the number of distinct indexed tokens.
func (e *Engine[ID]) VocabLen() int {
	return e.idx.VocabLen()
}

// Search returns identifiers ranked by aggregate similarity, best
// first. limit <= 0 means unlimited.
//
// Per query token the whole vocabulary is scanned with the configured
// metric; indexed tokens at or above the threshold contribute
// similarity x occurrence-count to every identifier whose labels
// contain them. Identifiers with multiple close labels therefore rank
// higher; nothing normalizes that away. Cost is
// O(vocabulary x query tokens).
func (e *Engine[ID]) Search(query string, limit int) []ID {
	start := time.Now()

	queryTokens := dedup(e.tok.Tokenize(query))
	if len(queryTokens) == 0 {
		return nil
	}

	scores := make(map[ID]float64)
	postings := e.idx.Postings()

	for _, qt := range queryTokens {
		for token, set := range postings {
			score := e.sim(qt, token)
			if score < e.opts.Threshold || score == 0 {
				continue
			}
			for ref, count := range set {
				scores[ref.id] += score * float64(count)
			}
		}
	}

	type scored struct {
		id    ID
		score float64
		seq   int
	}
	ranked := make([]scored, 0, len(scores))
	for id, score := range scores {
		if score <= 0 {
			continue
		}
		ranked = append(ranked, scored{id: id, score: score, seq: e.idx.Seq(id)})
	}

	// Descending score, then first-insertion order so identical queries
	// against an unchanged index return identical sequences.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].seq < ranked[j].seq
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]ID, len(ranked))
	for i, r := range ranked {
		ids[i] = r.id
	}

	if e.debug {
		fmt.Printf("[%s] [debug] search query=%q tokens=%d vocab=%d hits=%d elapsed=%v\n",
			time.Now().Format("15:04:05.000"), query, len(queryTokens),
			len(postings), len(ids), time.Since(start))
	}

	return ids
}

// dedup removes repeated query tokens, keeping first occurrence order.
// A repeated query word must not double-count its matches.
func dedup(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
