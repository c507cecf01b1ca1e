package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/calegria/sensecor/corpus"
	"github.com/calegria/sensecor/index"
)

const DefaultContext = 50

var (
	Blue      = "\033[1;34m"
	Green     = "\033[1;32m"
	Bold      = "\033[1m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// Renderer writes corpus data for the terminal. With HasColor off all
// escape sequences are suppressed, which also makes the output stable for
// tests and for piping.
type Renderer struct {
	HasColor bool

	// Context is the KWIC window width in characters.
	Context int

	Out io.Writer
}

func NewRenderer() *Renderer {
	return &Renderer{
		HasColor: true,
		Context:  DefaultContext,
		Out:      os.Stdout,
	}
}

func (r *Renderer) paint(color, s string) string {
	if !r.HasColor {
		return s
	}
	return color + s + Off
}

// KWICLine formats a keyword-in-context triple on one line, the left
// context right aligned and the right context left aligned to the
// configured width.
func (r *Renderer) KWICLine(left, kw, right string) string {
	return fmt.Sprintf("%*s %s %-*s", r.Context, left, r.paint(Blue, kw), r.Context, right)
}

// Token formats a token the way the browser lists senses: POS and text for
// senseless tokens, POS, lemma and the sense pair otherwise.
func (r *Renderer) Token(t *corpus.Token) string {
	if !t.HasSense() {
		return fmt.Sprintf("<wf %s %s>", t.Pos, t.Text)
	}
	return fmt.Sprintf("<wf %s %s %s %s>", t.Pos, t.Lemma, t.Wnsn, t.Lexsn)
}

// Sentence prints one sentence prefixed with its document and sentence
// identifiers. A token at the highlight position is emphasized; pass a
// negative highlight to disable.
func (r *Renderer) Sentence(s *corpus.Sentence, highlight int) {
	var b strings.Builder
	b.WriteString(r.paint(Green256, s.Doc+"-"+s.ID) + ": ")
	for _, t := range s.Tokens {
		if t.Index == highlight {
			b.WriteString(r.paint(Bold+Blue, t.Text))
		} else {
			b.WriteString(t.Text)
		}
		b.WriteString(" ")
	}
	fmt.Fprintln(r.Out, strings.TrimRight(b.String(), " "))
}

// Paragraph prints a whole paragraph, highlighting nothing.
func (r *Renderer) Paragraph(p *corpus.Paragraph) {
	fmt.Fprintf(r.Out, "<para %s>\n", p.ID)
	for _, s := range p.Sentences {
		r.Sentence(s, -1)
	}
}

// PairSummary prints one line per pair with its lemma and instance counts,
// followed by the total.
func (r *Renderer) PairSummary(pi *index.PairIndex, pairs []index.Pair) {
	for _, pair := range pairs {
		entry, ok := pi.Get(pair.A, pair.B)
		if !ok {
			continue
		}
		fmt.Fprintf(r.Out, "%s  { lemmas: %d, instances: %d }\n",
			r.paint(Bold, pair.String()), len(entry.Lemmas), len(entry.All))
	}
	fmt.Fprintf(r.Out, "\nTOTAL NUMBER OF PAIRS: %d\n", len(pairs))
}

// PairDetail prints every token of a pair entry grouped by lemma, each as
// a KWIC line prefixed with its basic type.
func (r *Renderer) PairDetail(pair index.Pair, entry *index.PairEntry) {
	fmt.Fprintf(r.Out, "\n%s\n\n", r.paint(Bold, pair.String()))

	lemmas := make([]string, 0, len(entry.Lemmas))
	for lemma := range entry.Lemmas {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)

	for _, lemma := range lemmas {
		tokens := append([]*corpus.Token(nil), entry.Lemmas[lemma]...)
		sort.SliceStable(tokens, func(i, j int) bool {
			return tokens[i].Synset.BTypes < tokens[j].Synset.BTypes
		})
		for _, t := range tokens {
			left, kw, right := t.KWIC(r.Context)
			fmt.Fprintf(r.Out, "   %s %s\n", r.paint(Green, t.Synset.BTypes), r.KWICLine(left, kw, right))
		}
	}
}
