// Package fuzzdex is an in-memory fuzzy string search engine. Callers
// register opaque identifiers with one or more text labels, then query
// with misspelled or partial strings and get back the identifiers of
// the best-matching labels, ranked by similarity.
//
//	engine := fuzzdex.New[uint32]()
//
//	engine.Insert(1, "Things Fall Apart")
//	engine.Insert(2, "The Old Man and the Sea")
//	engine.Insert(3, "James Joyce")
//
//	results := engine.Search("thngs") // [1]
//
// Everything lives in one address space and is rebuilt on each program
// run: no persistence, no network, no background goroutines. An engine
// is single-threaded; to share one across goroutines, guard the whole
// instance with a single lock.
package fuzzdex

import (
	"github.com/dmelton/fuzzdex/internal/domain/index"
	"github.com/dmelton/fuzzdex/internal/ports"
)

// Options configures an engine instance. The zero value plus Normalize
// equals DefaultOptions; unknown thresholds and patterns are rejected
// at construction.
type Options = ports.SearchOptions

// DefaultOptions returns the configuration used by New: Jaro-Winkler
// metric, case folding on, split on non-alphanumeric runs, threshold
// 0.8, no stop-words.
func DefaultOptions() Options {
	return ports.Default()
}

// Engine is a fuzzy search engine over identifiers of type ID. Any type
// usable as a map key works; the engine never inspects identifiers.
type Engine[ID comparable] struct {
	inner *index.Engine[ID]
}

// New constructs an engine with default options.
func New[ID comparable]() *Engine[ID] {
	e, err := NewWithOptions[ID](DefaultOptions())
	if err != nil {
		// Defaults always validate.
		panic(err)
	}
	return e
}

// NewWithOptions constructs an engine with the supplied options.
// Returns an error for thresholds outside [0,1] or a split pattern
// that does not compile.
func NewWithOptions[ID comparable](opts Options) (*Engine[ID], error) {
	inner, err := index.NewEngine[ID](opts)
	if err != nil {
		return nil, err
	}
	return &Engine[ID]{inner: inner}, nil
}

// Insert registers label as a new label instance of id. An identifier
// may own many labels (aliases); each contributes to its ranking
// independently.
func (e *Engine[ID]) Insert(id ID, label string) {
	e.inner.Insert(id, label)
}

// InsertTokens registers caller-supplied pre-tokenized terms as one
// label instance, bypassing boundary splitting. Case folding and
// stop-word filtering still apply.
func (e *Engine[ID]) InsertTokens(id ID, terms []string) {
	e.inner.InsertTokens(id, terms)
}

// Delete removes id and all of its labels from the engine. Deleting an
// unknown id is a no-op.
func (e *Engine[ID]) Delete(id ID) {
	e.inner.Delete(id)
}

// Search returns identifiers ranked most-similar first. Identifiers
// whose labels produced no token match at or above the threshold are
// never returned. An empty or unmatchable query returns nil.
func (e *Engine[ID]) Search(query string) []ID {
	return e.inner.Search(query, 0)
}

// SearchN is Search truncated to at most limit results. limit <= 0
// means unlimited.
func (e *Engine[ID]) SearchN(query string, limit int) []ID {
	return e.inner.Search(query, limit)
}

// Len reports the number of registered identifiers.
func (e *Engine[ID]) Len() int {
	return e.inner.Len()
}

// IsEmpty reports whether no identifiers are registered.
func (e *Engine[ID]) IsEmpty() bool {
	return e.inner.Len() == 0
}
