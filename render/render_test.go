package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/calegria/sensecor/corpus"
	"github.com/calegria/sensecor/index"
	"github.com/calegria/sensecor/synset"
)

func testSentence() *corpus.Sentence {
	s := &corpus.Sentence{
		ID:  "3",
		Doc: "br-a01",
		Tokens: []*corpus.Token{
			{Kind: corpus.Word, Text: "The", Pos: "DT", Index: 0},
			{Kind: corpus.Word, Text: "bank", Pos: "NN", Lemma: "bank",
				Wnsn: "2", Lexsn: "1:14:00::", Index: 1},
			{Kind: corpus.Punct, Text: ".", Index: 2},
		},
	}
	for _, t := range s.Tokens {
		t.Sent = s
	}
	return s
}

func TestKWICLine(t *testing.T) {
	r := &Renderer{HasColor: false, Context: 10}

	got := r.KWICLine("The", "bank", "closed .")
	if got != "       The bank closed .  " {
		t.Errorf("KWICLine = %q", got)
	}
}

func TestKWICLineColor(t *testing.T) {
	r := &Renderer{HasColor: true, Context: 5}

	got := r.KWICLine("a", "kw", "b")
	if !strings.Contains(got, Blue+"kw"+Off) {
		t.Errorf("keyword not painted: %q", got)
	}
}

func TestToken(t *testing.T) {
	s := testSentence()
	r := &Renderer{}

	if got := r.Token(s.Tokens[0]); got != "<wf DT The>" {
		t.Errorf("senseless token = %q", got)
	}
	if got := r.Token(s.Tokens[1]); got != "<wf NN bank 2 1:14:00::>" {
		t.Errorf("sense token = %q", got)
	}
}

func TestSentence(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{HasColor: false, Out: &buf}

	r.Sentence(testSentence(), -1)
	if got := buf.String(); got != "br-a01-3: The bank .\n" {
		t.Errorf("sentence = %q", got)
	}
}

func TestSentenceHighlight(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{HasColor: true, Out: &buf}

	r.Sentence(testSentence(), 1)
	if !strings.Contains(buf.String(), Bold+Blue+"bank"+Off) {
		t.Errorf("highlighted token not emphasized: %q", buf.String())
	}
}

func testPairIndex() *index.PairIndex {
	grp := &synset.Synset{ID: "x", BTypes: "grp"}
	loc := &synset.Synset{ID: "y", BTypes: "loc"}
	s := &corpus.Sentence{ID: "1", Doc: "br-a01"}
	mk := func(sy *synset.Synset) *corpus.Token {
		t := &corpus.Token{Kind: corpus.Word, Text: "bank", Lemma: "bank",
			Wnsn: "1", Lexsn: "1:14:00::", Synset: sy, Sent: s, Index: len(s.Tokens)}
		s.Tokens = append(s.Tokens, t)
		return t
	}
	idx := index.LemmaDocIndex{
		"bank": {"br-a01": {mk(grp), mk(loc)}},
	}
	return index.NewPairIndex(idx, index.PairConfig{})
}

func TestPairSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{HasColor: false, Out: &buf}
	pi := testPairIndex()

	r.PairSummary(pi, pi.Pairs(0, 0))

	out := buf.String()
	if !strings.Contains(out, "grp - loc  { lemmas: 1, instances: 2 }") {
		t.Errorf("summary line missing: %q", out)
	}
	if !strings.Contains(out, "TOTAL NUMBER OF PAIRS: 1") {
		t.Errorf("total line missing: %q", out)
	}
}

func TestPairDetail(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{HasColor: false, Context: 20, Out: &buf}
	pi := testPairIndex()

	entry, ok := pi.Get("loc", "grp")
	if !ok {
		t.Fatal("pair grp-loc not found")
	}
	r.PairDetail(index.Pair{A: "grp", B: "loc"}, entry)

	out := buf.String()
	if !strings.Contains(out, "grp - loc") {
		t.Errorf("pair header missing: %q", out)
	}

	// tokens are sorted by basic type, grp line before loc line
	var detail []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "   ") {
			detail = append(detail, strings.TrimSpace(line))
		}
	}
	if len(detail) != 2 {
		t.Fatalf("expected 2 detail lines, got %d: %q", len(detail), out)
	}
	if !strings.HasPrefix(detail[0], "grp") || !strings.HasPrefix(detail[1], "loc") {
		t.Errorf("tokens not sorted by basic type: %q", detail)
	}
}

func TestJSONRendererPairs(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	pi := testPairIndex()

	if err := r.Pairs(pi, pi.Pairs(0, 0)); err != nil {
		t.Fatalf("Pairs: %v", err)
	}

	var results []PairSummary
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].A != "grp" || results[0].B != "loc" {
		t.Errorf("pair = %s - %s", results[0].A, results[0].B)
	}
	if results[0].Lemmas != 1 || results[0].Instances != 2 {
		t.Errorf("counts = %d lemmas %d instances", results[0].Lemmas, results[0].Instances)
	}
}

func TestJSONRendererPairsEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.Pairs(testPairIndex(), nil); err != nil {
		t.Fatalf("Pairs: %v", err)
	}
	var results []PairSummary
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}
