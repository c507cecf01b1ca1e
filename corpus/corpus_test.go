package corpus

import (
	"testing"

	"github.com/calegria/sensecor/synset"
)

func word(text, lemma, wnsn, lexsn string) *Token {
	return &Token{Kind: Word, Text: text, Pos: "NN", Lemma: lemma, Wnsn: wnsn, Lexsn: lexsn}
}

func punct(text string) *Token {
	return &Token{Kind: Punct, Text: text}
}

func testDoc() *Doc {
	doc := &Doc{
		Name: "br-t01",
		Paragraphs: []*Paragraph{
			{
				ID: "1",
				Sentences: []*Sentence{
					{ID: "1", Tokens: []*Token{
						word("The", "the", "", ""),
						word("bank", "bank", "1", "1:14:00::"),
						punct(","),
						word("closed", "close", "2", "2:30:00::"),
					}},
					{ID: "2", Tokens: []*Token{
						word("No", "no", "", ""),
						word("water", "water", "1", "1:27:00::"),
					}},
				},
			},
			{
				ID: "2",
				Sentences: []*Sentence{
					{ID: "3", Tokens: []*Token{
						word("bank", "bank", "2", "1:17:00::"),
					}},
				},
			},
		},
	}
	for _, p := range doc.Paragraphs {
		for _, s := range p.Sentences {
			for k, t := range s.Tokens {
				t.Index = k
			}
		}
	}
	doc.Rewire()
	return doc
}

func TestSenseTokensOrderAndFiltering(t *testing.T) {
	doc := testDoc()

	forms := doc.SenseTokens()
	if len(forms) != 4 {
		t.Fatalf("expected 4 sense tokens, got %d", len(forms))
	}

	want := []string{"bank", "close", "water", "bank"}
	for i, lemma := range want {
		if forms[i].Lemma != lemma {
			t.Errorf("form %d: expected lemma %q, got %q", i, lemma, forms[i].Lemma)
		}
	}

	// repeated calls see the same result
	again := doc.SenseTokens()
	if len(again) != len(forms) {
		t.Fatalf("second call returned %d tokens, first %d", len(again), len(forms))
	}
	for i := range forms {
		if forms[i] != again[i] {
			t.Errorf("form %d differs between calls", i)
		}
	}
}

func TestSenseTokensExcludesPunctuation(t *testing.T) {
	doc := testDoc()
	for _, f := range doc.SenseTokens() {
		if f.Kind == Punct {
			t.Errorf("punctuation token %q in sense tokens", f.Text)
		}
		if !f.HasSense() {
			t.Errorf("senseless token %q in sense tokens", f.Text)
		}
	}
}

func TestFindSentence(t *testing.T) {
	doc := testDoc()

	s, ok := doc.Sentence("3")
	if !ok {
		t.Fatal("sentence 3 not found")
	}
	if s.Pid != "2" {
		t.Errorf("expected sentence 3 in paragraph 2, got %q", s.Pid)
	}

	if _, ok := doc.Sentence("99"); ok {
		t.Error("expected miss for unknown sentence id")
	}
}

func TestRewireBackReferences(t *testing.T) {
	doc := testDoc()

	s, _ := doc.Sentence("1")
	if s.Doc != "br-t01" {
		t.Errorf("sentence doc back reference: got %q", s.Doc)
	}
	if s.Para == nil || s.Para.ID != "1" {
		t.Error("sentence paragraph back reference not set")
	}
	for _, tok := range s.Tokens {
		if tok.Sent != s {
			t.Errorf("token %q not wired to its sentence", tok.Text)
		}
	}
}

func TestKWIC(t *testing.T) {
	s := &Sentence{ID: "1", Tokens: []*Token{
		{Kind: Word, Text: "The", Index: 0},
		{Kind: Word, Text: "bank", Index: 1},
		{Kind: Word, Text: "by", Index: 2},
		{Kind: Word, Text: "the", Index: 3},
		{Kind: Word, Text: "river", Index: 4},
	}}
	for _, tok := range s.Tokens {
		tok.Sent = s
	}

	left, kw, right := s.Tokens[1].KWIC(3)
	if left != "The" {
		t.Errorf("left: expected %q, got %q", "The", left)
	}
	if kw != "bank" {
		t.Errorf("kw: expected %q, got %q", "bank", kw)
	}
	if right != "by " {
		t.Errorf("right: expected %q, got %q", "by ", right)
	}
}

func TestKWICAtSentenceEdges(t *testing.T) {
	s := &Sentence{ID: "1", Tokens: []*Token{
		{Kind: Word, Text: "alpha", Index: 0},
		{Kind: Word, Text: "beta", Index: 1},
	}}
	for _, tok := range s.Tokens {
		tok.Sent = s
	}

	left, _, right := s.Tokens[0].KWIC(10)
	if left != "" {
		t.Errorf("expected empty left context, got %q", left)
	}
	if right != "beta" {
		t.Errorf("expected %q, got %q", "beta", right)
	}

	left, _, right = s.Tokens[1].KWIC(10)
	if left != "alpha" {
		t.Errorf("expected %q, got %q", "alpha", left)
	}
	if right != "" {
		t.Errorf("expected empty right context, got %q", right)
	}
}

func TestSenseKey(t *testing.T) {
	tok := word("banks", "bank", "1", "1:14:00::")
	if key := tok.SenseKey(); key != "bank%1:14:00::" {
		t.Errorf("expected %q, got %q", "bank%1:14:00::", key)
	}

	if key := word("the", "the", "", "").SenseKey(); key != "" {
		t.Errorf("expected empty key for senseless token, got %q", key)
	}
}

func TestAnnotate(t *testing.T) {
	doc := testDoc()

	tbl := synset.Table{
		"bank": {
			"bank%1:14:00::": &synset.Synset{ID: "08227335-n", BTypes: "grp"},
		},
	}

	Annotate([]*Doc{doc}, tbl)

	forms := doc.SenseTokens()
	if forms[0].Synset == nil || forms[0].Synset.BTypes != "grp" {
		t.Error("bank sense 1 not annotated")
	}
	// second bank sense has no table entry, stays nil
	if forms[3].Synset != nil {
		t.Error("bank sense 2 should have no synset")
	}
	if forms[1].Synset != nil {
		t.Error("close should have no synset")
	}
}
