package main

import (
	"os"
	"strings"

	"github.com/gosuri/uiprogress"
	"golang.org/x/sync/errgroup"

	"github.com/calegria/sensecor/corpus"
	"github.com/calegria/sensecor/index"
	"github.com/calegria/sensecor/storage"
	"github.com/calegria/sensecor/storage/filesystem"
	"github.com/calegria/sensecor/storage/sqlite/zombiezen"
	"github.com/calegria/sensecor/synset"
)

// newRepository picks the snapshot backend for a corpus path: a SQLite
// store for a .db file, a filesystem store for a directory of JSON files.
func newRepository(path string) (storage.CorpusRepository, func() error, error) {
	isDB := strings.HasSuffix(path, ".db")
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		isDB = true
	}

	if isDB {
		pool, err := zombiezen.NewPool(path)
		if err != nil {
			return nil, nil, err
		}
		if err := zombiezen.CreateSchema(pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return zombiezen.NewStore(pool), pool.Close, nil
	}

	noop := func() error { return nil }
	return filesystem.NewStore(path), noop, nil
}

// loadDocs reads every snapshot, showing a progress bar while loading.
func loadDocs(reader storage.CorpusReader) ([]*corpus.Doc, error) {
	uiprogress.Start()
	bar := uiprogress.AddBar(1) // placeholder, updated in callback
	bar.AppendCompleted()
	bar.PrependElapsed()

	var currentName string
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return currentName
	})

	docs, err := reader.ReadAll(func(total int, name string) {
		if bar.Total <= 1 {
			bar.Total = total
			bar.Set(0)
		}
		currentName = name
		bar.Incr()
	})
	uiprogress.Stop()

	return docs, err
}

// loadBundle loads the corpus snapshots and the synset table concurrently,
// annotates the tokens once both are available, and builds all indexes.
func loadBundle(corpusPath, synsetPath string, cfg index.PairConfig) (*index.Bundle, synset.Table, error) {
	repo, closeRepo, err := newRepository(corpusPath)
	if err != nil {
		return nil, nil, err
	}
	defer closeRepo()

	var docs []*corpus.Doc
	tbl := synset.Table{}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		docs, err = loadDocs(repo)
		return err
	})
	g.Go(func() error {
		if synsetPath == "" {
			return nil
		}
		var err error
		tbl, err = synset.LoadFile(synsetPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	corpus.Annotate(docs, tbl)
	return index.NewBundle(docs, cfg), tbl, nil
}
