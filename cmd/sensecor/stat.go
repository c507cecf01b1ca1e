package main

import (
	"fmt"

	"github.com/calegria/sensecor/stat"
)

func statCommand(opts StatOptions, ui UI) error {
	repo, closeRepo, err := newRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	docs, err := loadDocs(repo)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, doc := range docs {
		hdl.Aggregate(doc)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Documents:  %d\n", stats.NumDocs)
	fmt.Fprintf(ui.Out, "Paragraphs: %d\n", stats.NumParagraphs)
	fmt.Fprintf(ui.Out, "Sentences:  %d\n", stats.NumSentences)
	fmt.Fprintf(ui.Out, "Tokens:     %d (mean %d per sentence)\n", stats.NumTokens, stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Words:      %d (%d with a sense)\n", stats.NumWords, stats.NumSenses)

	fmt.Fprintf(ui.Out, "\nATTRIBUTES\n\n")
	for _, attr := range stat.Attributes {
		fmt.Fprintf(ui.Out, "  %6d  %s\n", stats.AttributeCount[attr], attr)
	}

	return nil
}
