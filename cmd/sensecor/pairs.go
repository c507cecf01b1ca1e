package main

import (
	"github.com/calegria/sensecor/index"
	"github.com/calegria/sensecor/render"
)

func pairsCommand(opts PairsOptions, ui UI) error {
	cfg := index.PairConfig{PairMultiType: opts.MultiType}
	bundle, _, err := loadBundle(opts.CorpusPath, opts.SynsetPath, cfg)
	if err != nil {
		return err
	}

	pairs := bundle.Pairs(opts.MinLemmas, opts.MinInstances)
	index.SortPairs(pairs)

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Pairs(bundle.BTypePairs, pairs)
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	r.PairSummary(bundle.BTypePairs, pairs)
	return nil
}
