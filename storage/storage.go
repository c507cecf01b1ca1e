package storage

import (
	"github.com/calegria/sensecor/corpus"
)

// CorpusReader defines read operations for compiled document storage.
// Restored documents are rewired and satisfy the same invariants as
// freshly parsed ones.
type CorpusReader interface {
	// Names returns the names of all stored documents, sorted.
	Names() ([]string, error)

	// Read returns a document by name.
	Read(name string) (*corpus.Doc, error)

	// ReadAll loads every stored document in name order. The callback, if
	// not nil, is called before each document is read.
	ReadAll(cb func(total int, name string)) ([]*corpus.Doc, error)
}

// CorpusWriter defines write operations for compiled document storage.
type CorpusWriter interface {
	// Write persists a document snapshot.
	Write(doc *corpus.Doc) error
}

// CorpusRepository combines read and write operations.
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}
