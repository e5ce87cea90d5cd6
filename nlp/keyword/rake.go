// Package keyword implements RAKE (Rapid Automatic Keyword Extraction).
//
// Documents are split into sentences, sentences into candidate phrases at
// stopword boundaries, and phrases into words. Each word is scored by
// degree/frequency over the candidate phrases of its document, each phrase
// by the sum of its word scores. Scores of several documents are merged by
// summation.
package keyword

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/oarkflow/rake/nlp/logging"
	"github.com/oarkflow/rake/nlp/normalizer"
	"github.com/oarkflow/rake/nlp/segmenter"
	"github.com/oarkflow/rake/nlp/stopwords"
	"github.com/oarkflow/rake/nlp/tokenizer"
)

// Rake is an immutable extraction engine, safe for concurrent use.
type Rake struct {
	index          *stopwords.Index
	tok            *tokenizer.Tokenizer
	normalize      bool
	strict         bool
	foldDiacritics bool
	stemLanguage   string
	workers        int
	log            *slog.Logger
}

func New(index *stopwords.Index, opts ...Option) (*Rake, error) {
	if index == nil {
		return nil, errors.Wrap(stopwords.ErrConfiguration, "keyword: no stopword index")
	}
	r := &Rake{
		index:     index,
		tok:       tokenizer.New(),
		normalize: true,
		strict:    true,
		workers:   1,
		log:       logging.Discard(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, errors.Wrap(err, "failed to apply option")
		}
	}
	return r, nil
}

func (r *Rake) Index() *stopwords.Index {
	return r.index
}

// Extract returns the ranked keywords of a single document.
func (r *Rake) Extract(text string) []Score {
	text = normalizer.Text(text, r.foldDiacritics)
	phrases := r.Candidates(segmenter.SentenceSplit(text))
	scores := r.CandidateScores(phrases, r.WordScores(phrases))
	r.log.Debug("document scored",
		slog.Int("bytes", len(text)),
		slog.Int("phrases", len(phrases)),
		slog.Int("keywords", len(scores)))
	return scores
}

// Keywords scores every document and merges the results by summation.
func (r *Rake) Keywords(docs []string) []Score {
	scores, _ := r.KeywordsContext(context.Background(), docs)
	return scores
}

// KeywordsContext is Keywords with cancellation. Documents are scored on up
// to the configured number of workers; merging happens in document order,
// so the result does not depend on the worker count.
func (r *Rake) KeywordsContext(ctx context.Context, docs []string) ([]Score, error) {
	perDoc := make([][]Score, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perDoc[i] = r.Extract(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "score documents")
	}

	acc := NewAggregator()
	for _, scores := range perDoc {
		acc.Add(scores)
	}
	ranked := acc.Ranked()
	r.log.Info("corpus scored", slog.Int("documents", len(docs)), slog.Int("keywords", len(ranked)))
	return ranked, nil
}
