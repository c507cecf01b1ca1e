package main

import (
	"fmt"

	"github.com/calegria/sensecor/render"
)

func docCommand(opts DocOptions, name string, ui UI) error {
	repo, closeRepo, err := newRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	if name == "" {
		names, err := repo.Names()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintf(ui.Out, "📖 %s\n", n)
		}
		return nil
	}

	doc, err := repo.Read(name)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	for _, p := range doc.Paragraphs {
		r.Paragraph(p)
	}

	return nil
}
