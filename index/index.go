package index

import (
	"github.com/calegria/sensecor/corpus"
)

// LemmaIndex maps a lemma to all its sense bearing tokens, in input order.
type LemmaIndex map[string][]*corpus.Token

// LemmaDocIndex maps a lemma to the documents it occurs in, and per
// document to the tokens carrying that lemma there.
type LemmaDocIndex map[string]map[string][]*corpus.Token

// DocLemmaIndex is the inverted view of a LemmaDocIndex, keyed by document
// name first.
type DocLemmaIndex map[string]map[string][]*corpus.Token

// NewLemmaIndex groups the given tokens by lemma, preserving input order
// within each group.
func NewLemmaIndex(tokens []*corpus.Token) LemmaIndex {
	idx := LemmaIndex{}
	for _, t := range tokens {
		idx[t.Lemma] = append(idx[t.Lemma], t)
	}
	return idx
}

// NewDocIndex groups the given tokens by the document their sentence
// belongs to, preserving input order within each group.
func NewDocIndex(tokens []*corpus.Token) map[string][]*corpus.Token {
	idx := map[string][]*corpus.Token{}
	for _, t := range tokens {
		idx[t.Sent.Doc] = append(idx[t.Sent.Doc], t)
	}
	return idx
}

// NewLemmaDocIndex applies NewDocIndex to each lemma group of a LemmaIndex.
func NewLemmaDocIndex(li LemmaIndex) LemmaDocIndex {
	idx := LemmaDocIndex{}
	for lemma, tokens := range li {
		idx[lemma] = NewDocIndex(tokens)
	}
	return idx
}

// Invert swaps the two key levels of a nested index. Leaf lists are shared,
// not copied, and keep their order. Inverting twice reproduces the original
// structure.
func Invert(idx map[string]map[string][]*corpus.Token) map[string]map[string][]*corpus.Token {
	out := map[string]map[string][]*corpus.Token{}
	for outer, sub := range idx {
		for inner, tokens := range sub {
			if out[inner] == nil {
				out[inner] = map[string][]*corpus.Token{}
			}
			out[inner][outer] = tokens
		}
	}
	return out
}

// FilterSingleSense returns a new index retaining only the (lemma,
// document) groups whose tokens span more than one distinct basic type
// label. Tokens without a resolved synset do not count toward distinctness
// and are dropped from the retained lists. A document key with a single
// basic type disappears, and a lemma with no surviving documents
// disappears with it. The input index is not modified.
func FilterSingleSense(idx LemmaDocIndex) LemmaDocIndex {
	out := LemmaDocIndex{}
	for lemma, docs := range idx {
		sub := map[string][]*corpus.Token{}
		for doc, tokens := range docs {
			typed := make([]*corpus.Token, 0, len(tokens))
			labels := map[string]bool{}
			for _, t := range tokens {
				if t.Synset == nil {
					continue
				}
				typed = append(typed, t)
				labels[t.Synset.BTypes] = true
			}
			if len(labels) > 1 {
				sub[doc] = typed
			}
		}
		if len(sub) > 0 {
			out[lemma] = sub
		}
	}
	return out
}
