package stat

import (
	"github.com/calegria/sensecor/corpus"
)

// Attributes is the enumerated set of optional word form fields the
// statistics recognize.
var Attributes = []string{"pos", "lemma", "wnsn", "lexsn", "pn", "rdf"}

type Stats struct {
	NumDocs       int
	NumParagraphs int
	NumSentences  int
	NumTokens     int
	NumWords      int
	NumSenses     int

	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// AttributeCount counts, per recognized attribute, the word forms
	// that carry it.
	AttributeCount map[string]int
}

type Handler struct {
	stats Stats
}

func NewHandler() *Handler {
	return &Handler{
		stats: Stats{
			TokensPerSentenceDis: map[int]int{},
			AttributeCount:       map[string]int{},
		},
	}
}

func (h *Handler) Get() Stats {
	return h.stats
}

// Aggregate folds one document into the running statistics. Call once per
// document; the handler accumulates across calls.
func (h *Handler) Aggregate(doc *corpus.Doc) {
	h.stats.NumDocs++
	h.stats.NumParagraphs += len(doc.Paragraphs)

	for _, p := range doc.Paragraphs {
		h.stats.NumSentences += len(p.Sentences)
		for _, s := range p.Sentences {
			h.stats.NumTokens += len(s.Tokens)
			h.stats.TokensPerSentenceDis[len(s.Tokens)]++

			for _, t := range s.Tokens {
				if t.Kind != corpus.Word {
					continue
				}
				h.stats.NumWords++
				if t.HasSense() {
					h.stats.NumSenses++
				}
				h.countAttributes(t)
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

func (h *Handler) countAttributes(t *corpus.Token) {
	for _, attr := range Attributes {
		var val string
		switch attr {
		case "pos":
			val = t.Pos
		case "lemma":
			val = t.Lemma
		case "wnsn":
			val = t.Wnsn
		case "lexsn":
			val = t.Lexsn
		case "pn":
			val = t.Pn
		case "rdf":
			val = t.Rdf
		}
		if val != "" {
			h.stats.AttributeCount[attr]++
		}
	}
}
