// Package browse is the interactive corpus browser. It only reads from a
// fully built index bundle; nothing here mutates corpus or index state.
package browse

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/calegria/sensecor/corpus"
	"github.com/calegria/sensecor/index"
	"github.com/calegria/sensecor/render"
	"github.com/calegria/sensecor/synset"
)

const (
	completionThreshold = 2

	// samplesPerSense limits how many KWIC lines a sense listing shows.
	samplesPerSense = 10
)

var sentenceRef = regexp.MustCompile(`^(.*)-(\d+)$`)

type Handler struct {
	Bundle   *index.Bundle
	Synsets  synset.Table
	Renderer *render.Renderer
}

func NewHandler(b *index.Bundle, tbl synset.Table, r *render.Renderer) *Handler {
	return &Handler{
		Bundle:   b,
		Synsets:  tbl,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 h: help, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("  🔎 ", h.completer(),
			prompt.OptionTitle("sensecor browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" || in == "q" {
			return nil
		}

		history = append(history, in)
		h.dispatch(in)
	}
}

func (h *Handler) dispatch(in string) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return
	}

	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "h", "help", "?":
		h.printHelp()
	case "s":
		h.showStats(lemmaArg(args))
	case "n":
		h.showSenses(lemmaArg(args), "NN")
	case "v":
		h.showSenses(lemmaArg(args), "VB")
	case "a":
		h.showSenses(lemmaArg(args), "JJ")
	case "r":
		h.showSenses(lemmaArg(args), "RB")
	case "p":
		h.showParagraph(strings.Join(args, " "))
	case "pairs":
		h.showPairs(args)
	case "pair":
		h.showPair(args)
	default:
		fmt.Println("\nUnknown command, available commands:")
		h.printHelp()
	}
}

func (h *Handler) printHelp() {
	fmt.Println()
	fmt.Println("h                  -  help")
	fmt.Println("s LEMMA            -  show sense statistics for LEMMA")
	fmt.Println("n LEMMA            -  search for noun LEMMA")
	fmt.Println("v LEMMA            -  search for verb LEMMA")
	fmt.Println("a LEMMA            -  search for adjective LEMMA")
	fmt.Println("r LEMMA            -  search for adverb LEMMA")
	fmt.Println("p DOC-SID          -  print paragraph with sentence DOC-SID")
	fmt.Println("pairs [NL [NI]]    -  basic type pairs with >= NL lemmas, >= NI instances")
	fmt.Println("pair A B           -  all instances for the basic type pair A B")
	fmt.Println()
}

// lemmaArg joins multi word input with underscores; corpus lemmas of multi
// token word forms use underscores, f.ex. primary_election.
func lemmaArg(args []string) string {
	return strings.Join(args, "_")
}

type senseKey struct {
	wnsn  string
	lexsn string
}

// groupSenses indexes a lemma's tokens by POS tag, then by sense pair.
func groupSenses(tokens []*corpus.Token) map[string]map[senseKey][]*corpus.Token {
	idx := map[string]map[senseKey][]*corpus.Token{}
	for _, t := range tokens {
		if idx[t.Pos] == nil {
			idx[t.Pos] = map[senseKey][]*corpus.Token{}
		}
		key := senseKey{wnsn: t.Wnsn, lexsn: t.Lexsn}
		idx[t.Pos][key] = append(idx[t.Pos][key], t)
	}
	return idx
}

func (h *Handler) showStats(lemma string) {
	tokens := h.Bundle.Lemma(lemma)
	if len(tokens) == 0 {
		fmt.Printf("\nNothing found for %q\n\n", lemma)
		return
	}

	fmt.Printf("\nOccurrences: %d\n\n", len(tokens))
	idx := groupSenses(tokens)
	for _, pos := range sortedPos(idx) {
		fmt.Println(pos)
		senses := idx[pos]
		keys := make([]senseKey, 0, len(senses))
		for k := range senses {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].wnsn != keys[j].wnsn {
				return keys[i].wnsn < keys[j].wnsn
			}
			return keys[i].lexsn < keys[j].lexsn
		})
		for _, k := range keys {
			fmt.Printf("   wnsn=%s lexsn=%s  -- %d occurrences\n", k.wnsn, k.lexsn, len(senses[k]))
		}
	}
	fmt.Println()
}

func (h *Handler) showSenses(lemma, posPrefix string) {
	tokens := h.Bundle.Lemma(lemma)
	if len(tokens) == 0 {
		fmt.Printf("\nNothing found for %q\n\n", lemma)
		return
	}

	idx := groupSenses(tokens)
	for _, pos := range sortedPos(idx) {
		if !strings.HasPrefix(pos, posPrefix) {
			continue
		}
		for _, wfs := range idx[pos] {
			// all word forms of the group carry the same sense, the
			// first one serves as the header
			first := wfs[0]
			fmt.Printf("\n%s\n\n", h.Renderer.Token(first))

			ss := h.Synsets.Resolve(first.Lemma, first.Lexsn)
			if ss != nil {
				fmt.Println(ss, ss.BTypes)
				fmt.Printf("\n%s\n\n", ss.Gloss)
			}

			sample := append([]*corpus.Token(nil), wfs...)
			rand.Shuffle(len(sample), func(i, j int) {
				sample[i], sample[j] = sample[j], sample[i]
			})
			if len(sample) > samplesPerSense {
				sample = sample[:samplesPerSense]
			}
			for _, wf := range sample {
				left, kw, right := wf.KWIC(h.Renderer.Context)
				sid := wf.Sent.Doc + "-" + wf.Sent.ID
				fmt.Printf("%-10s %s\n", sid, h.Renderer.KWICLine(left, kw, right))
			}
		}
	}
	fmt.Println()
}

func (h *Handler) showParagraph(ref string) {
	m := sentenceRef.FindStringSubmatch(ref)
	if m == nil {
		fmt.Println("Could not get document name and sentence number from input")
		return
	}
	docName, sid := m[1], m[2]

	doc, ok := h.Bundle.Doc(docName)
	if !ok {
		fmt.Printf("Could not find document %s\n", docName)
		return
	}
	sentence, ok := doc.Sentence(sid)
	if !ok {
		fmt.Printf("Could not find sentence %s\n", sid)
		return
	}

	fmt.Println()
	h.Renderer.Paragraph(sentence.Para)
	fmt.Println()
}

func (h *Handler) showPairs(args []string) {
	minLemmas, minInstances := 1, 1
	var err error
	if len(args) > 0 {
		if minLemmas, err = strconv.Atoi(args[0]); err != nil {
			fmt.Println("pairs arguments must be numbers")
			return
		}
	}
	if len(args) > 1 {
		if minInstances, err = strconv.Atoi(args[1]); err != nil {
			fmt.Println("pairs arguments must be numbers")
			return
		}
	}

	pairs := h.Bundle.Pairs(minLemmas, minInstances)
	index.SortPairs(pairs)
	fmt.Println()
	h.Renderer.PairSummary(h.Bundle.BTypePairs, pairs)
}

func (h *Handler) showPair(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: pair A B")
		return
	}

	entry, ok := h.Bundle.Pair(args[0], args[1])
	if !ok {
		fmt.Printf("\nNothing found for pair %s - %s\n\n", args[0], args[1])
		return
	}

	pair := index.Pair{A: args[0], B: args[1]}
	if pair.A > pair.B {
		pair.A, pair.B = pair.B, pair.A
	}
	h.Renderer.PairDetail(pair, entry)
	fmt.Println()
}

func sortedPos(idx map[string]map[senseKey][]*corpus.Token) []string {
	pos := make([]string, 0, len(idx))
	for p := range idx {
		pos = append(pos, p)
	}
	sort.Strings(pos)
	return pos
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	commands := []prompt.Suggest{
		{Text: "s", Description: "sense statistics for a lemma"},
		{Text: "n", Description: "noun senses"},
		{Text: "v", Description: "verb senses"},
		{Text: "a", Description: "adjective senses"},
		{Text: "r", Description: "adverb senses"},
		{Text: "p", Description: "paragraph for a sentence id"},
		{Text: "pairs", Description: "basic type pair summary"},
		{Text: "pair", Description: "basic type pair instances"},
		{Text: "help", Description: "show help"},
		{Text: "quit", Description: "leave the browser"},
	}

	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if "" == befCursor {
			return s
		}

		tokens := strings.Split(befCursor, " ")

		if len(tokens) == 1 {
			for _, c := range commands {
				if strings.HasPrefix(c.Text, tokens[0]) {
					s = append(s, c)
				}
			}
			return s
		}

		// lemma position: complete against the lemma index
		word := in.GetWordBeforeCursor()
		if len(word) < completionThreshold {
			return s
		}

		var lemmas []string
		for lemma := range h.Bundle.Lemmas {
			if strings.HasPrefix(lemma, word) {
				lemmas = append(lemmas, lemma)
			}
		}
		sort.Strings(lemmas)
		for _, lemma := range lemmas {
			s = append(s, prompt.Suggest{Text: lemma})
		}

		return s
	}
}
