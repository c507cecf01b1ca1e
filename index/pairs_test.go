package index

import (
	"reflect"
	"testing"

	"github.com/calegria/sensecor/corpus"
)

// pairFixture builds a filtered index with one four-way ambiguous group
// and two two-way groups:
//
//	bank/d1: grp grp loc act evt
//	walk/d1: act evt
//	walk/d2: act evt
func pairFixture() LemmaDocIndex {
	return NewLemmaDocIndex(NewLemmaIndex([]*corpus.Token{
		tok("bank", "d1", "grp"),
		tok("bank", "d1", "grp"),
		tok("bank", "d1", "loc"),
		tok("bank", "d1", "act"),
		tok("bank", "d1", "evt"),
		tok("walk", "d1", "act"),
		tok("walk", "d1", "evt"),
		tok("walk", "d2", "act"),
		tok("walk", "d2", "evt"),
	}))
}

func TestNewPairIndexKeys(t *testing.T) {
	pi := NewPairIndex(pairFixture(), PairConfig{})

	// four labels in bank/d1 give six pairs, walk adds no new key
	want := []Pair{
		{"act", "evt"},
		{"act", "grp"},
		{"act", "loc"},
		{"evt", "grp"},
		{"evt", "loc"},
		{"grp", "loc"},
	}
	got := pi.Pairs(0, 0)
	SortPairs(got)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pairs = %v, want %v", got, want)
	}
	if pi.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", pi.Len(), len(want))
	}

	// reversed keys never exist
	if _, ok := pi.data[Pair{A: "loc", B: "grp"}]; ok {
		t.Error("found reversed pair key loc-grp")
	}
}

func TestPairEntryMembership(t *testing.T) {
	pi := NewPairIndex(pairFixture(), PairConfig{})

	entry, ok := pi.Get("grp", "loc")
	if !ok {
		t.Fatal("pair grp-loc not found")
	}
	// the act and evt tokens of bank/d1 are not members
	if len(entry.All) != 3 {
		t.Fatalf("expected 3 instances for grp-loc, got %d", len(entry.All))
	}
	for _, tk := range entry.All {
		bt := tk.Synset.BTypes
		if bt != "grp" && bt != "loc" {
			t.Errorf("token with basic type %q attributed to grp-loc", bt)
		}
	}
}

func TestPairEntryAllMatchesLemmas(t *testing.T) {
	pi := NewPairIndex(pairFixture(), PairConfig{})

	entry, _ := pi.Get("act", "evt")
	if len(entry.Lemmas) != 2 {
		t.Fatalf("expected lemmas bank and walk for act-evt, got %d", len(entry.Lemmas))
	}
	n := 0
	for _, tokens := range entry.Lemmas {
		n += len(tokens)
	}
	if n != len(entry.All) {
		t.Errorf("All has %d tokens, Lemmas sum to %d", len(entry.All), n)
	}
}

func TestGetNormalizesOrder(t *testing.T) {
	pi := NewPairIndex(pairFixture(), PairConfig{})

	a, okA := pi.Get("grp", "loc")
	b, okB := pi.Get("loc", "grp")
	if !okA || !okB {
		t.Fatal("pair grp-loc not found in one of the orders")
	}
	if a != b {
		t.Error("Get returned different entries for the two orders")
	}
}

func TestPairsThresholds(t *testing.T) {
	pi := NewPairIndex(pairFixture(), PairConfig{})

	// act-evt has 2 lemmas and 6 instances, the rest have 1 lemma
	got := pi.Pairs(2, 4)
	if want := []Pair{{"act", "evt"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs(2, 4) = %v, want %v", got, want)
	}
	if got := pi.Pairs(2, 7); got != nil {
		t.Errorf("Pairs(2, 7) = %v, want none", got)
	}
}

func TestPairMultiTypeLabels(t *testing.T) {
	idx := NewLemmaDocIndex(NewLemmaIndex([]*corpus.Token{
		tok("walk", "d1", "act"),
		tok("walk", "d1", "act evt"),
	}))

	if pi := NewPairIndex(idx, PairConfig{}); pi.Len() != 0 {
		t.Errorf("multi type label paired with default config, %d pairs", pi.Len())
	}

	pi := NewPairIndex(idx, PairConfig{PairMultiType: true})
	entry, ok := pi.Get("act", "act evt")
	if !ok {
		t.Fatal("pair act/act evt missing with PairMultiType")
	}
	if len(entry.All) != 2 {
		t.Errorf("expected both tokens in the entry, got %d", len(entry.All))
	}
}

func TestSinglePairGroupIgnoresUnresolved(t *testing.T) {
	idx := NewLemmaDocIndex(NewLemmaIndex([]*corpus.Token{
		tok("walk", "d1", "act"),
		tok("walk", "d1", ""),
	}))

	if pi := NewPairIndex(idx, PairConfig{}); pi.Len() != 0 {
		t.Errorf("unresolved token produced pairs, %d pairs", pi.Len())
	}
}
