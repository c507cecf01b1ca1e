package index

import (
	"sort"
	"strings"

	"github.com/calegria/sensecor/corpus"
)

// Pair is an ordered pair of basic type labels, A < B lexicographically.
// The reversed pair never appears as a separate key.
type Pair struct {
	A string
	B string
}

func (p Pair) String() string {
	return p.A + " - " + p.B
}

// PairEntry is the aggregate record for one basic type pair. All holds
// every token attributed to the pair; Lemmas holds the same tokens grouped
// by their lemma. A token appears in an entry only if its own basic type
// label equals one of the two pair members.
type PairEntry struct {
	All    []*corpus.Token
	Lemmas map[string][]*corpus.Token
}

// PairConfig controls pair derivation.
type PairConfig struct {
	// PairMultiType includes basic type labels with an internal space
	// (senses carrying more than one basic type) in pair generation.
	// Off by default: multi type senses are not paired.
	PairMultiType bool
}

// PairIndex maps basic type pairs to their aggregate records. It is
// derived from a single sense filtered lemma/document index and read only
// after construction.
type PairIndex struct {
	data map[Pair]*PairEntry
	cfg  PairConfig
}

// NewPairIndex derives the pair co-occurrence index. For every (lemma,
// document) group of the input, every unordered pair of distinct basic
// type labels among the group's tokens contributes the group's matching
// tokens to that pair's aggregate.
func NewPairIndex(idx LemmaDocIndex, cfg PairConfig) *PairIndex {
	pi := &PairIndex{data: map[Pair]*PairEntry{}, cfg: cfg}

	for lemma, docs := range idx {
		for _, tokens := range docs {
			labels := map[string]bool{}
			for _, t := range tokens {
				if t.Synset == nil {
					continue
				}
				bt := t.Synset.BTypes
				if !cfg.PairMultiType && strings.Contains(bt, " ") {
					continue
				}
				labels[bt] = true
			}

			sorted := make([]string, 0, len(labels))
			for l := range labels {
				sorted = append(sorted, l)
			}
			sort.Strings(sorted)

			for i := 0; i < len(sorted); i++ {
				for j := i + 1; j < len(sorted); j++ {
					pi.add(lemma, Pair{A: sorted[i], B: sorted[j]}, tokens)
				}
			}
		}
	}

	return pi
}

// add appends the tokens of one lemma/document group whose own basic type
// is a member of the pair.
func (pi *PairIndex) add(lemma string, pair Pair, tokens []*corpus.Token) {
	entry, ok := pi.data[pair]
	if !ok {
		entry = &PairEntry{Lemmas: map[string][]*corpus.Token{}}
		pi.data[pair] = entry
	}

	for _, t := range tokens {
		if t.Synset == nil {
			continue
		}
		bt := t.Synset.BTypes
		if bt != pair.A && bt != pair.B {
			continue
		}
		entry.All = append(entry.All, t)
		entry.Lemmas[lemma] = append(entry.Lemmas[lemma], t)
	}
}

// Get returns the aggregate record for a pair of labels, in either order.
// The second return value is false when the pair has no data.
func (pi *PairIndex) Get(a, b string) (*PairEntry, bool) {
	if a > b {
		a, b = b, a
	}
	entry, ok := pi.data[Pair{A: a, B: b}]
	return entry, ok
}

// Pairs returns every pair with at least minLemmas distinct lemmas and at
// least minInstances tokens, in no particular order.
func (pi *PairIndex) Pairs(minLemmas, minInstances int) []Pair {
	var pairs []Pair
	for pair, entry := range pi.data {
		if len(entry.Lemmas) >= minLemmas && len(entry.All) >= minInstances {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

// Len returns the number of pairs in the index.
func (pi *PairIndex) Len() int {
	return len(pi.data)
}

// SortPairs orders pairs lexicographically, for stable output.
func SortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}
