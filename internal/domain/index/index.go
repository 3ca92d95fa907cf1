package index

// labelRef identifies one label instance of one identifier. Comparable
// so it can key a posting map.
type labelRef[ID comparable] struct {
	id    ID
	label int // per-identifier label ordinal
}

// entry is the registry record for one identifier.
type entry struct {
	// seq is the identifier's first-insertion order, used as the stable
	// ranking tie-break. Survives until the identifier is deleted.
	seq int

	// labels holds the token sequence of each live label instance,
	// keyed by ordinal. Needed to unwind postings on delete.
	labels map[int][]string

	nextLabel int
}

// Index is the inverted index plus the identifier registry. The engine
// owns it exclusively; callers never touch it directly.
type Index[ID comparable] struct {
	// postings maps token -> label reference -> occurrence count of the
	// token within that label.
	postings map[string]map[labelRef[ID]]int

	// entries maps identifier -> its registry record.
	entries map[ID]*entry

	nextSeq int
}

// NewIndex returns an empty index.
func NewIndex[ID comparable]() *Index[ID] {
	return &Index[ID]{
		postings: make(map[string]map[labelRef[ID]]int),
		entries:  make(map[ID]*entry),
	}
}

// Insert registers tokens as a new label instance of id. A label that
// tokenized to nothing is still registered, just never matchable.
// The first insertion of an id fixes its tie-break sequence.
func (x *Index[ID]) Insert(id ID, tokens []string) {
	e, ok := x.entries[id]
	if !ok {
		e = &entry{seq: x.nextSeq, labels: make(map[int][]string, 1)}
		x.nextSeq++
		x.entries[id] = e
	}

	ref := labelRef[ID]{id: id, label: e.nextLabel}
	e.labels[e.nextLabel] = tokens
	e.nextLabel++

	for _, tok := range tokens {
		set, ok := x.postings[tok]
		if !ok {
			set = make(map[labelRef[ID]]int, 1)
			x.postings[tok] = set
		}
		set[ref]++
	}
}

// Delete purges id: every label instance, every posting reference, and
// any token whose posting set becomes empty. Deleting an absent id is a
// no-op.
func (x *Index[ID]) Delete(id ID) {
	e, ok := x.entries[id]
	if !ok {
		return
	}

	for ordinal, tokens := range e.labels {
		ref := labelRef[ID]{id: id, label: ordinal}
		for _, tok := range tokens {
			set := x.postings[tok]
			delete(set, ref)
			if len(set) == 0 {
				delete(x.postings, tok)
			}
		}
	}

	delete(x.entries, id)
}

// Postings exposes the token vocabulary with posting sets for the
// engine's candidate scan. Read-only by convention.
func (x *Index[ID]) Postings() map[string]map[labelRef[ID]]int {
	return x.postings
}

// Seq returns the first-insertion sequence of id.
func (x *Index[ID]) Seq(id ID) int {
	return x.entries[id].seq
}

// Len reports the number of registered identifiers.
func (x *Index[ID]) Len() int {
	return len(x.entries)
}

// VocabLen reports the number of distinct indexed tokens.
func (x *Index[ID]) VocabLen() int {
	return len(x.postings)
}
