package corpus

import (
	"strings"

	"github.com/calegria/sensecor/synset"
)

// Kind discriminates the two token variants.
type Kind int

const (
	Word Kind = iota
	Punct
)

// Token is one element of a sentence, either a word form or a punctuation
// mark. Punctuation tokens carry only Text and Index; all sense related
// fields stay empty.
type Token struct {
	Kind Kind `json:"kind"`

	// The unmodified surface text
	Text string `json:"text"`

	// Part of speech tag
	Pos string `json:"pos,omitempty"`

	// The lemma of the word. For proper names this is set to the entity
	// type rather than the surface text.
	Lemma string `json:"lemma,omitempty"`

	// Word sense number and lexical sense key. A token has a sense iff
	// both are set.
	Wnsn  string `json:"wnsn,omitempty"`
	Lexsn string `json:"lexsn,omitempty"`

	// Proper name marker
	Pn string `json:"pn,omitempty"`

	// Raw semantic role attribute
	Rdf string `json:"rdf,omitempty"`

	// The index of the token in its sentence, starting at 0.
	Index int `json:"index"`

	// Synset resolved for the sense. Attached once by Annotate after both
	// the corpus and the synset table are loaded, nil when the sense has
	// no entry in the table. Never reassigned afterwards.
	Synset *synset.Synset `json:"-"`

	// Back reference to the containing sentence. Not serialized,
	// repopulated by Doc.Rewire after parsing or snapshot load.
	Sent *Sentence `json:"-"`
}

// HasSense reports whether the token is a word form with both parts of the
// sense pair present.
func (t *Token) HasSense() bool {
	return t.Kind == Word && t.Wnsn != "" && t.Lexsn != ""
}

// SenseKey returns the key used to look the token up in a synset table,
// lemma + "%" + lexical sense key. Empty when the token has no sense.
func (t *Token) SenseKey() string {
	if !t.HasSense() {
		return ""
	}
	return t.Lemma + "%" + t.Lexsn
}

// KWIC reconstructs a keyword-in-context window around the token. Left and
// right context are the surface texts of the sentence tokens before and
// after the token joined with single spaces, the left truncated to its last
// window characters and the right to its first window characters.
func (t *Token) KWIC(window int) (left, kw, right string) {
	toks := t.Sent.Tokens

	lparts := make([]string, 0, t.Index)
	for _, o := range toks[:t.Index] {
		lparts = append(lparts, o.Text)
	}
	rparts := make([]string, 0, len(toks)-t.Index-1)
	for _, o := range toks[t.Index+1:] {
		rparts = append(rparts, o.Text)
	}

	left = strings.Join(lparts, " ")
	right = strings.Join(rparts, " ")

	if lr := []rune(left); len(lr) > window {
		left = string(lr[len(lr)-window:])
	}
	if rr := []rune(right); len(rr) > window {
		right = string(rr[:window])
	}

	return left, t.Text, right
}

// Sentence is an ordered sequence of tokens. The identifier is unique
// within the paragraph and, combined with the document name, globally
// unique.
type Sentence struct {
	ID     string   `json:"id"`
	Tokens []*Token `json:"tokens"`

	// Back references, not serialized, repopulated by Doc.Rewire.
	Doc  string     `json:"-"`
	Pid  string     `json:"-"`
	Para *Paragraph `json:"-"`
}

// Text returns the sentence as a plain string, tokens joined with spaces.
func (s *Sentence) Text() string {
	parts := make([]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

// Paragraph is an ordered sequence of sentences, owned by its document.
type Paragraph struct {
	ID        string      `json:"id"`
	Sentences []*Sentence `json:"sentences"`

	Doc string `json:"-"`
}

// Doc is one corpus document, named after its source file. It owns its
// paragraphs; everything below is reachable through them.
type Doc struct {
	Name       string       `json:"name"`
	Paragraphs []*Paragraph `json:"paragraphs"`
}

// Rewire repopulates the non owning back references of the whole document
// tree. Must be called once after parsing or after restoring a snapshot,
// before any token level lookup.
func (d *Doc) Rewire() {
	for _, p := range d.Paragraphs {
		p.Doc = d.Name
		for _, s := range p.Sentences {
			s.Doc = d.Name
			s.Pid = p.ID
			s.Para = p
			for _, t := range s.Tokens {
				t.Sent = s
			}
		}
	}
}

// SenseTokens returns, in document order, exactly the word tokens that have
// a sense. The list is recomputed from the paragraphs on every call.
func (d *Doc) SenseTokens() []*Token {
	var forms []*Token
	for _, p := range d.Paragraphs {
		for _, s := range p.Sentences {
			for _, t := range s.Tokens {
				if t.HasSense() {
					forms = append(forms, t)
				}
			}
		}
	}
	return forms
}

// Sentence returns the sentence with the given identifier, searching
// linearly across all paragraphs. The second return value is false when no
// such sentence exists.
func (d *Doc) Sentence(sid string) (*Sentence, bool) {
	for _, p := range d.Paragraphs {
		for _, s := range p.Sentences {
			if s.ID == sid {
				return s, true
			}
		}
	}
	return nil, false
}

// Annotate attaches resolved synsets to every sense bearing token of the
// given documents. This is a one shot finalization pass, run after both the
// corpus and the table are loaded and before any index is built.
func Annotate(docs []*Doc, tbl synset.Table) {
	for _, d := range docs {
		for _, t := range d.SenseTokens() {
			t.Synset = tbl.Resolve(t.Lemma, t.Lexsn)
		}
	}
}
