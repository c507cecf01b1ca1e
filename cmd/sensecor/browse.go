package main

import (
	"github.com/calegria/sensecor/browse"
	"github.com/calegria/sensecor/index"
	"github.com/calegria/sensecor/render"
)

func browseCommand(opts BrowseOptions, ui UI) error {
	bundle, tbl, err := loadBundle(opts.CorpusPath, opts.SynsetPath, index.PairConfig{})
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor
	if opts.Context > 0 {
		r.Context = opts.Context
	}

	h := browse.NewHandler(bundle, tbl, r)
	return h.Run()
}
