package main

import (
	"fmt"

	"github.com/calegria/sensecor/render"
)

func sentenceCommand(opts SentenceOptions, name, sid string, ui UI) error {
	repo, closeRepo, err := newRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	doc, err := repo.Read(name)
	if err != nil {
		return err
	}

	s, ok := doc.Sentence(sid)
	if !ok {
		return fmt.Errorf("sentence not found: %s-%s", name, sid)
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	r.Sentence(s, -1)
	fmt.Fprintln(ui.Out)

	for _, t := range s.Tokens {
		fmt.Fprintf(ui.Out, "%20q %15q %6s %4s %12s %4s %s\n",
			t.Text, t.Lemma, t.Pos, t.Wnsn, t.Lexsn, t.Pn, t.Rdf)
	}

	return nil
}
