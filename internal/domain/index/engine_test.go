package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelton/fuzzdex/internal/ports"
)

func newBookEngine(t *testing.T, opts ports.SearchOptions) *Engine[int] {
	t.Helper()
	e, err := NewEngine[int](opts)
	require.NoError(t, err)
	e.Insert(1, "Things Fall Apart")
	e.Insert(2, "The Old Man and the Sea")
	e.Insert(3, "James Joyce")
	return e
}

func TestEngine_WorkedExample(t *testing.T) {
	// "thngs" is one deletion away from "things" and must match entry 1
	// only under the default threshold.
	e := newBookEngine(t, ports.Default())
	assert.Equal(t, []int{1}, e.Search("thngs", 0))
}

func TestEngine_ExactMatchRanksFirst(t *testing.T) {
	e := newBookEngine(t, ports.Default())
	results := e.Search("Things Fall Apart", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, 1, results[0])
}

func TestEngine_EmptyQuery(t *testing.T) {
	e := newBookEngine(t, ports.Default())
	assert.Empty(t, e.Search("", 0))
	assert.Empty(t, e.Search("  !!! ", 0))
}

func TestEngine_EmptyIndex(t *testing.T) {
	e, err := NewEngine[int](ports.Default())
	require.NoError(t, err)
	assert.Empty(t, e.Search("anything", 0))
}

func TestEngine_DeleteExcludesFromResults(t *testing.T) {
	e := newBookEngine(t, ports.Default())
	before := e.VocabLen()

	e.Delete(1)

	assert.Empty(t, e.Search("thngs", 0))
	assert.Equal(t, 2, e.Len())
	// "things", "fall", "apart" were solely owned by id 1.
	assert.Equal(t, before-3, e.VocabLen())
}

func TestEngine_Deterministic(t *testing.T) {
	e := newBookEngine(t, ports.Default())
	first := e.Search("the sea man", 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Search("the sea man", 0))
	}
}

func TestEngine_TieBreakInsertionOrder(t *testing.T) {
	e, err := NewEngine[string](ports.Default())
	require.NoError(t, err)
	e.Insert("second", "identical label")
	e.Insert("first", "identical label")

	// Equal aggregate scores fall back to first-insertion order.
	assert.Equal(t, []string{"second", "first"}, e.Search("identical", 0))
}

func TestEngine_Limit(t *testing.T) {
	e, err := NewEngine[int](ports.Default())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		e.Insert(i, "shared token")
	}

	assert.Len(t, e.Search("shared", 2), 2)
	assert.Len(t, e.Search("shared", 0), 5)
	assert.Len(t, e.Search("shared", 99), 5)
}

func TestEngine_MultiLabelAdvantage(t *testing.T) {
	e, err := NewEngine[string](ports.Default())
	require.NoError(t, err)
	e.Insert("both", "unrelated words")
	e.Insert("both", "exact query")
	e.Insert("only", "unrelated words")

	results := e.Search("exact query", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "both", results[0])
	assert.NotContains(t, results, "only")
}

func TestEngine_DuplicateTokenWeight(t *testing.T) {
	e, err := NewEngine[string](ports.Default())
	require.NoError(t, err)
	e.Insert("triple", "tora tora tora")
	e.Insert("single", "tora")

	// Three occurrences in one label outweigh one.
	assert.Equal(t, []string{"triple", "single"}, e.Search("tora", 0))
}

func TestEngine_RepeatedQueryTokenNoDoubleCount(t *testing.T) {
	e, err := NewEngine[string](ports.Default())
	require.NoError(t, err)
	e.Insert("a", "sea")
	e.Insert("b", "sea sea")

	// "sea sea" as a query dedups to one token; b still wins on label
	// weight, but a must not be dropped or reordered by repetition.
	assert.Equal(t, e.Search("sea", 0), e.Search("sea sea", 0))
}

func TestEngine_ThresholdInclusive(t *testing.T) {
	// Threshold 1.0: only verbatim vocabulary hits survive, and they do
	// survive (>=, not >).
	e, err := NewEngine[int](ports.SearchOptions{Threshold: 1.0})
	require.NoError(t, err)
	e.Insert(1, "things fall apart")

	assert.Equal(t, []int{1}, e.Search("things", 0))
	assert.Empty(t, e.Search("thngs", 0))
}

func TestEngine_StopWordsExcluded(t *testing.T) {
	e, err := NewEngine[int](ports.SearchOptions{StopWords: []string{"the", "and"}})
	require.NoError(t, err)
	e.Insert(2, "The Old Man and the Sea")

	assert.Empty(t, e.Search("the and", 0))
	assert.Equal(t, []int{2}, e.Search("old man", 0))
}

func TestEngine_CaseSensitive(t *testing.T) {
	e, err := NewEngine[int](ports.SearchOptions{CaseSensitive: true, Threshold: 1.0})
	require.NoError(t, err)
	e.Insert(3, "James Joyce")

	assert.Empty(t, e.Search("james", 0))
	assert.Equal(t, []int{3}, e.Search("James", 0))
}

func TestEngine_LevenshteinMetric(t *testing.T) {
	// Switching metrics may change ranking but not well-formedness:
	// exact matches still dominate, deleted entries stay gone.
	e := newBookEngine(t, ports.SearchOptions{Levenshtein: true, Threshold: 0.5})

	results := e.Search("things fall apart", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, 1, results[0])

	e.Delete(1)
	assert.NotContains(t, e.Search("things fall apart", 0), 1)
}

func TestEngine_LevenshteinNearMatch(t *testing.T) {
	// d("thngs","things")=1 over 6 chars -> 0.833, above 0.8.
	e := newBookEngine(t, ports.SearchOptions{Levenshtein: true})
	results := e.Search("thngs", 0)
	assert.Contains(t, results, 1)
}

func TestEngine_InsertTokens(t *testing.T) {
	e, err := NewEngine[string](ports.Default())
	require.NoError(t, err)
	// Pre-tokenized terms keep embedded spaces; folding still applies.
	e.InsertTokens("arya", []string{"Arya Stark", "fictional"})

	assert.Equal(t, []string{"arya"}, e.Search("fictional", 0))
	assert.Equal(t, 2, e.VocabLen())
}

func TestEngine_InvalidOptions(t *testing.T) {
	_, err := NewEngine[int](ports.SearchOptions{Threshold: 1.5})
	assert.Error(t, err)

	_, err = NewEngine[int](ports.SearchOptions{SplitPattern: "["})
	assert.Error(t, err)
}

func TestEngine_LenIsEmpty(t *testing.T) {
	e, err := NewEngine[int](ports.Default())
	require.NoError(t, err)
	assert.Equal(t, 0, e.Len())

	e.Insert(1, "one")
	e.Insert(1, "one alias")
	e.Insert(2, "two")
	assert.Equal(t, 2, e.Len())
}
