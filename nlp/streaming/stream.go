// Package streaming scores documents as they are read, keeping only the
// merged keyword table in memory.
package streaming

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/oarkflow/rake/nlp/corpus"
	"github.com/oarkflow/rake/nlp/keyword"
)

// Scorer extracts the ranked keywords of one document.
type Scorer interface {
	Extract(text string) []keyword.Score
}

// ProcessDocuments calls handler for every non-blank document produced by
// split. It stops at the first handler error.
func ProcessDocuments(r io.Reader, split bufio.SplitFunc, handler func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), corpus.MaxDocument)
	scanner.Split(split)
	for scanner.Scan() {
		doc := strings.TrimSpace(scanner.Text())
		if doc == "" {
			continue
		}
		if err := handler(doc); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "read documents")
}

// Lines scores every non-blank line of r as a document, merging in input
// order. It returns the ranked corpus scores and the document count.
func Lines(ctx context.Context, r io.Reader, s Scorer) ([]keyword.Score, int, error) {
	acc := keyword.NewAggregator()
	n := 0
	err := ProcessDocuments(r, bufio.ScanLines, func(doc string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		acc.Add(s.Extract(doc))
		n++
		return nil
	})
	if err != nil {
		return nil, n, err
	}
	return acc.Ranked(), n, nil
}
