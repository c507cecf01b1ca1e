package synset

import (
	"strings"
	"testing"
)

const walkBlock = `walk
walk%2:38:00::
01904930-v
verb
act
walk.v.01
use one's feet to advance
walk%1:04:01::
00284101-n
noun
act evt
walk.n.01
the act of traveling by foot
`

func TestLoadAndResolve(t *testing.T) {
	tbl, err := Load(strings.NewReader(walkBlock))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	ss := tbl.Resolve("walk", "2:38:00::")
	if ss == nil {
		t.Fatal("expected synset for walk%2:38:00::")
	}
	if ss.ID != "01904930-v" {
		t.Errorf("ssid: expected %q, got %q", "01904930-v", ss.ID)
	}
	if ss.Cat != "verb" {
		t.Errorf("cat: expected %q, got %q", "verb", ss.Cat)
	}
	if ss.BTypes != "act" {
		t.Errorf("btypes: expected %q, got %q", "act", ss.BTypes)
	}
	if ss.Gloss != "use one's feet to advance" {
		t.Errorf("gloss: got %q", ss.Gloss)
	}

	second := tbl.Resolve("walk", "1:04:01::")
	if second == nil {
		t.Fatal("expected synset for walk%1:04:01::")
	}
	if second.BTypes != "act evt" {
		t.Errorf("btypes: expected %q, got %q", "act evt", second.BTypes)
	}
}

func TestResolveMisses(t *testing.T) {
	tbl, err := Load(strings.NewReader(walkBlock))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if ss := tbl.Resolve("walk", "nonexistent"); ss != nil {
		t.Errorf("expected nil for unknown sense, got %v", ss)
	}
	if ss := tbl.Resolve("run", "2:38:00::"); ss != nil {
		t.Errorf("expected nil for unknown lemma, got %v", ss)
	}
}

func TestLoadMultipleBlocks(t *testing.T) {
	input := walkBlock + "\nrun\nrun%2:38:00::\n02092309-v\nverb\nact\nrun.v.01\nmove fast by using one's feet\n"

	tbl, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(tbl) != 2 {
		t.Fatalf("expected 2 lemmas, got %d", len(tbl))
	}
	if tbl.Resolve("run", "2:38:00::") == nil {
		t.Error("expected synset for run")
	}
}

func TestLoadMalformedBlock(t *testing.T) {
	// five sense lines instead of six
	input := "walk\nwalk%2:38:00::\n01904930-v\nverb\nact\nwalk.v.01\n"

	_, err := Load(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected structural error for truncated block")
	}
	if !strings.Contains(err.Error(), "walk") {
		t.Errorf("error should name the lemma: %v", err)
	}
}

func TestLoadMalformedBlockAbortsWholeLoad(t *testing.T) {
	input := walkBlock + "\nrun\nrun%2:38:00::\n02092309-v\n"

	if _, err := Load(strings.NewReader(input)); err == nil {
		t.Fatal("expected error when any block is malformed")
	}
}
