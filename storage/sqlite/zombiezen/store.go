package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/calegria/sensecor/corpus"
	"github.com/calegria/sensecor/storage"
)

// Store persists compiled documents in a SQLite database. One row per
// paragraph and per sentence; sentence tokens are stored as JSON.
type Store struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*Store)(nil)

func NewStore(pool *sqlitex.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Names() ([]string, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM docs ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *Store) Read(name string) (*corpus.Doc, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	doc := &corpus.Doc{Name: name}

	err = sqlitex.Execute(conn, "SELECT pid FROM paragraphs WHERE doc_name = ? ORDER BY seq", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc.Paragraphs = append(doc.Paragraphs, &corpus.Paragraph{ID: stmt.ColumnText(0)})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if len(doc.Paragraphs) == 0 {
		return nil, fmt.Errorf("doc not found: %s", name)
	}

	err = sqlitex.Execute(conn, "SELECT para_seq, sid, tokens FROM sentences WHERE doc_name = ? ORDER BY para_seq, seq", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			paraSeq := stmt.ColumnInt(0)
			if paraSeq < 0 || paraSeq >= len(doc.Paragraphs) {
				return fmt.Errorf("doc %s: sentence references paragraph %d of %d", name, paraSeq, len(doc.Paragraphs))
			}

			sentence := &corpus.Sentence{ID: stmt.ColumnText(1)}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &sentence.Tokens); err != nil {
				return err
			}

			para := doc.Paragraphs[paraSeq]
			para.Sentences = append(para.Sentences, sentence)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	doc.Rewire()
	return doc, nil
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

func (s *Store) Write(doc *corpus.Doc) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}

	for paraSeq, para := range doc.Paragraphs {
		err = sqlitex.Execute(conn, "INSERT INTO paragraphs (doc_name, seq, pid) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{doc.Name, paraSeq, para.ID},
		})
		if err != nil {
			return fmt.Errorf("failed to insert paragraph: %w", err)
		}

		for seq, sentence := range para.Sentences {
			data, marshalErr := json.Marshal(sentence.Tokens)
			if marshalErr != nil {
				return marshalErr
			}

			err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_name, para_seq, seq, sid, tokens) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{doc.Name, paraSeq, seq, sentence.ID, string(data)},
			})
			if err != nil {
				return fmt.Errorf("failed to insert sentence: %w", err)
			}
		}
	}

	return nil
}
