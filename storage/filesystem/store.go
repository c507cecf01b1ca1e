package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/calegria/sensecor/corpus"
	"github.com/calegria/sensecor/storage"
)

const ext = ".json"

// Store keeps one JSON file per compiled document in a directory.
type Store struct {
	dir string
}

var _ storage.CorpusRepository = (*Store)(nil)

// NewStore creates a filesystem snapshot store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Names() ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, file := range files {
		if filepath.Ext(file.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(file.Name(), ext))
	}

	sort.Strings(names)
	return names, nil
}

func (s *Store) Read(name string) (*corpus.Doc, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, name+ext))
	if err != nil {
		return nil, err
	}

	var doc corpus.Doc
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decoding doc %s: %w", name, err)
	}

	doc.Name = name
	doc.Rewire()
	return &doc, nil
}

func (s *Store) ReadAll(cb func(total int, name string)) ([]*corpus.Doc, error) {
	names, err := s.Names()
	if err != nil {
		return nil, err
	}

	docs := make([]*corpus.Doc, 0, len(names))
	for _, name := range names {
		if cb != nil {
			cb(len(names), name)
		}

		doc, err := s.Read(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (s *Store) Write(doc *corpus.Doc) error {
	if doc.Name == "" {
		return fmt.Errorf("doc has no name")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.dir, doc.Name+ext), data, 0644)
}
