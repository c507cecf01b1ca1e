package synset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// linesPerSense is the number of lines of one sense record in the mapping
// file: sense key, synset id, category, basic types, description, gloss.
const linesPerSense = 6

// Synset is the semantic record for one lemma sense. Immutable once loaded.
type Synset struct {
	// The synset identifier
	ID string

	// The category, f.ex. noun or verb
	Cat string

	// One or more space separated basic type labels. A label that itself
	// contains a space marks a multi type sense.
	BTypes string

	Description string
	Gloss       string
}

func (s *Synset) String() string {
	return "{ " + s.Description + " }"
}

// Table maps lemma to sense key to synset. Sense keys are the full
// "lemma%lexsn" strings as they appear in the mapping file.
type Table map[string]map[string]*Synset

// Resolve returns the synset for a lemma and lexical sense key, or nil when
// either the lemma or the sense is unknown. A missing entry is not an
// error; a sense bearing token can legitimately have no recoverable
// semantic type.
func (t Table) Resolve(lemma, lexsn string) *Synset {
	senses, ok := t[lemma]
	if !ok {
		return nil
	}
	return senses[lemma+"%"+lexsn]
}

// Load reads a synset mapping. The format is a sequence of per lemma blocks
// separated by a blank line; the first line of a block is the lemma,
// followed by six line sense records. A block whose sense line count is not
// a multiple of six is a structural error and aborts the load.
func Load(r io.Reader) (Table, error) {
	tbl := Table{}

	var block []string
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		if err := tbl.addBlock(block); err != nil {
			return err
		}
		block = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return tbl, nil
}

// LoadFile reads a synset mapping from a file.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

func (t Table) addBlock(block []string) error {
	lemma := strings.TrimSpace(block[0])
	lines := block[1:]

	if len(lines)%linesPerSense != 0 {
		return fmt.Errorf("synset block %q: %d sense lines, not a multiple of %d", lemma, len(lines), linesPerSense)
	}

	senses, ok := t[lemma]
	if !ok {
		senses = map[string]*Synset{}
		t[lemma] = senses
	}

	for i := 0; i < len(lines); i += linesPerSense {
		key := strings.TrimSpace(lines[i])
		senses[key] = &Synset{
			ID:          strings.TrimSpace(lines[i+1]),
			Cat:         strings.TrimSpace(lines[i+2]),
			BTypes:      strings.TrimSpace(lines[i+3]),
			Description: strings.TrimSpace(lines[i+4]),
			Gloss:       strings.TrimSpace(lines[i+5]),
		}
	}

	return nil
}
