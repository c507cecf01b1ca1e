package main

import (
	"fmt"

	"github.com/calegria/sensecor/index"
	"github.com/calegria/sensecor/render"
)

func lemmaCommand(opts LemmaOptions, lemma string, ui UI) error {
	bundle, _, err := loadBundle(opts.CorpusPath, opts.SynsetPath, index.PairConfig{})
	if err != nil {
		return err
	}

	tokens := bundle.Lemma(lemma)
	if len(tokens) == 0 {
		fmt.Fprintf(ui.Out, "Nothing found for %q\n", lemma)
		return nil
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	if opts.Context > 0 {
		r.Context = opts.Context
	}

	for _, t := range tokens {
		left, kw, right := t.KWIC(r.Context)
		sid := t.Sent.Doc + "-" + t.Sent.ID
		fmt.Fprintf(ui.Out, "%-10s %s\n", sid, r.KWICLine(left, kw, right))
	}

	return nil
}
