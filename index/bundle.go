package index

import (
	"github.com/calegria/sensecor/corpus"
)

// Bundle holds every index derived from an annotated corpus. It is built
// once, after synset annotation, and is read only afterwards; concurrent
// readers need no locking. All token lists are references into the owned
// document structure.
type Bundle struct {
	docs  map[string]*corpus.Doc
	names []string

	// Lemmas maps every lemma to all its sense bearing tokens.
	Lemmas LemmaIndex

	// ByLemma and ByDoc are the two views of the unfiltered nested index.
	ByLemma LemmaDocIndex
	ByDoc   DocLemmaIndex

	// Filtered keeps only lemma/document groups with real sense ambiguity,
	// FilteredByDoc is its document keyed view.
	Filtered      LemmaDocIndex
	FilteredByDoc DocLemmaIndex

	// BTypePairs is the basic type pair co-occurrence index, derived from
	// Filtered.
	BTypePairs *PairIndex
}

// NewBundle builds all indexes over the given documents. The documents
// must already be rewired and annotated; they are not modified.
func NewBundle(docs []*corpus.Doc, cfg PairConfig) *Bundle {
	b := &Bundle{docs: map[string]*corpus.Doc{}}

	var forms []*corpus.Token
	for _, d := range docs {
		b.docs[d.Name] = d
		b.names = append(b.names, d.Name)
		forms = append(forms, d.SenseTokens()...)
	}

	b.Lemmas = NewLemmaIndex(forms)
	b.ByLemma = NewLemmaDocIndex(b.Lemmas)
	b.ByDoc = Invert(b.ByLemma)
	b.Filtered = FilterSingleSense(b.ByLemma)
	b.FilteredByDoc = Invert(b.Filtered)
	b.BTypePairs = NewPairIndex(b.Filtered, cfg)

	return b
}

// Lemma returns all sense bearing tokens for a lemma, nil when the lemma
// is unknown.
func (b *Bundle) Lemma(lemma string) []*corpus.Token {
	return b.Lemmas[lemma]
}

// Doc returns a document by name.
func (b *Bundle) Doc(name string) (*corpus.Doc, bool) {
	d, ok := b.docs[name]
	return d, ok
}

// DocNames returns the document names in load order.
func (b *Bundle) DocNames() []string {
	return b.names
}

// Sentence returns a sentence by document name and sentence identifier.
func (b *Bundle) Sentence(docName, sid string) (*corpus.Sentence, bool) {
	d, ok := b.docs[docName]
	if !ok {
		return nil, false
	}
	return d.Sentence(sid)
}

// Pairs returns the basic type pairs passing both thresholds.
func (b *Bundle) Pairs(minLemmas, minInstances int) []Pair {
	return b.BTypePairs.Pairs(minLemmas, minInstances)
}

// Pair returns the aggregate record for a pair of basic type labels.
func (b *Bundle) Pair(a, bb string) (*PairEntry, bool) {
	return b.BTypePairs.Get(a, bb)
}
