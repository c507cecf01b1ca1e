package render

import (
	"encoding/json"
	"io"

	"github.com/calegria/sensecor/index"
)

// PairSummary is the JSON shape of one basic type pair.
type PairSummary struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Lemmas    int    `json:"lemmas"`
	Instances int    `json:"instances"`
}

// JSONRenderer writes pair query results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Pairs serializes the given pairs as a JSON array of summaries.
func (r *JSONRenderer) Pairs(pi *index.PairIndex, pairs []index.Pair) error {
	summaries := make([]PairSummary, 0, len(pairs))
	for _, pair := range pairs {
		entry, ok := pi.Get(pair.A, pair.B)
		if !ok {
			continue
		}
		summaries = append(summaries, PairSummary{
			A:         pair.A,
			B:         pair.B,
			Lemmas:    len(entry.Lemmas),
			Instances: len(entry.All),
		})
	}
	return json.NewEncoder(r.W).Encode(summaries)
}
