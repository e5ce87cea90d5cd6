package keyword

import (
	"log/slog"

	"github.com/kljensen/snowball"
	"github.com/pkg/errors"

	"github.com/oarkflow/rake/nlp/tokenizer"
)

// Option configures a Rake.
type Option func(r *Rake) error

// WithNormalize divides phrase scores by the document total (default: true).
func WithNormalize(normalize bool) Option {
	return func(r *Rake) error {
		r.normalize = normalize
		return nil
	}
}

// WithStrict rejects candidates that contain a stopword or a malformed word
// (default: true).
func WithStrict(strict bool) Option {
	return func(r *Rake) error {
		r.strict = strict
		return nil
	}
}

// WithTokenizer replaces the default word tokenizer.
func WithTokenizer(t *tokenizer.Tokenizer) Option {
	return func(r *Rake) error {
		if t == nil {
			return errors.New("tokenizer must not be nil")
		}
		r.tok = t
		return nil
	}
}

// WithStemming keys word statistics by their snowball stem in the given
// language. An empty language disables stemming.
func WithStemming(language string) Option {
	return func(r *Rake) error {
		if language != "" {
			if _, err := snowball.Stem("testing", language, true); err != nil {
				return errors.Wrapf(err, "unsupported stemming language %q", language)
			}
		}
		r.stemLanguage = language
		return nil
	}
}

// WithFoldDiacritics strips combining marks from documents before scoring.
func WithFoldDiacritics(fold bool) Option {
	return func(r *Rake) error {
		r.foldDiacritics = fold
		return nil
	}
}

// WithWorkers sets how many documents are scored concurrently (default: 1).
func WithWorkers(n int) Option {
	return func(r *Rake) error {
		if n < 1 {
			return errors.New("workers must be positive")
		}
		r.workers = n
		return nil
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(r *Rake) error {
		if log != nil {
			r.log = log
		}
		return nil
	}
}
