// Package parser turns tag markup corpus files into the corpus object
// model. A tagfile is a lenient SGML document:
//
//	<p pnum=1>
//	<s snum=1>
//	<wf cmd=done pos=VB lemma=say wnsn=1 lexsn=2:32:00::>said</wf>
//	<punc>.</punc>
//
// Attribute values are unquoted, which the html tokenizer accepts.
package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"github.com/calegria/sensecor/corpus"
)

// ParseFile parses one tagfile into a document named after the file.
func ParseFile(path string) (*corpus.Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Name = filepath.Base(path)
	doc.Rewire()
	return doc, nil
}

// Parse reads tag markup and builds the document tree. The caller is
// responsible for setting the document name and calling Rewire.
func Parse(r io.Reader) (*corpus.Doc, error) {
	doc := &corpus.Doc{}

	var para *corpus.Paragraph
	var sentence *corpus.Sentence
	var pending *corpus.Token

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return doc, nil
			}
			return nil, z.Err()

		case html.StartTagToken:
			tok := z.Token()
			switch tok.Data {
			case "p":
				para = &corpus.Paragraph{ID: attr(tok, "pnum")}
				doc.Paragraphs = append(doc.Paragraphs, para)
				sentence = nil
			case "s":
				// some corpus files carry sentences outside any paragraph
				if para == nil {
					para = &corpus.Paragraph{}
					doc.Paragraphs = append(doc.Paragraphs, para)
				}
				sentence = &corpus.Sentence{ID: attr(tok, "snum")}
				para.Sentences = append(para.Sentences, sentence)
			case "wf":
				pending = &corpus.Token{
					Kind:  corpus.Word,
					Pos:   attr(tok, "pos"),
					Lemma: attr(tok, "lemma"),
					Wnsn:  attr(tok, "wnsn"),
					Lexsn: attr(tok, "lexsn"),
					Pn:    attr(tok, "pn"),
					Rdf:   attr(tok, "rdf"),
				}
			case "punc":
				pending = &corpus.Token{Kind: corpus.Punct}
			}

		case html.TextToken:
			if pending != nil {
				pending.Text += string(z.Text())
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "wf", "punc":
				if pending != nil && sentence != nil {
					pending.Index = len(sentence.Tokens)
					sentence.Tokens = append(sentence.Tokens, pending)
				}
				pending = nil
			case "s":
				sentence = nil
			case "p":
				para = nil
				sentence = nil
			}
		}
	}
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
