package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gosuri/uiprogress"

	"github.com/calegria/sensecor/parser"
)

// compileCommand parses every tagfile in a directory and writes one
// snapshot per document. Compiling once makes all later loads cheap.
func compileCommand(opts CompileOptions, dir string, ui UI) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return fmt.Errorf("no tagfiles found in %s", dir)
	}

	repo, closeRepo, err := newRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	uiprogress.Start()
	bar := uiprogress.AddBar(len(names))
	bar.AppendCompleted()
	bar.PrependElapsed()

	var currentName string
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return currentName
	})

	for _, name := range names {
		currentName = name

		doc, err := parser.ParseFile(filepath.Join(dir, name))
		if err != nil {
			uiprogress.Stop()
			return err
		}
		if err := repo.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("writing snapshot for %s: %w", name, err)
		}

		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Compiled %d documents to %s\n", len(names), opts.CorpusPath)
	return nil
}
