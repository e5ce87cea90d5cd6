package main

import (
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oarkflow/rake/nlp/config"
	"github.com/oarkflow/rake/nlp/corpus"
	"github.com/oarkflow/rake/nlp/export"
	"github.com/oarkflow/rake/nlp/keyword"
	"github.com/oarkflow/rake/nlp/logging"
	"github.com/oarkflow/rake/nlp/stopwords"
	"github.com/oarkflow/rake/nlp/streaming"
)

type extractFlags struct {
	config      string
	stopwords   string
	input       string
	source      string
	field       string
	delimiter   string
	query       string
	top         int
	format      string
	noNormalize bool
	lenient     bool
	stem        string
	workers     int
}

func newExtractCmd() *cobra.Command {
	f := &extractFlags{}
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Score the keywords of a set of documents",
		Long: `Reads documents from --input, scores every candidate phrase and prints
the merged ranking of the whole corpus.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "YAML config file")
	cmd.Flags().StringVarP(&f.stopwords, "stopwords", "s", "", "stopword file, one word per line")
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "document file, SQLite database, or - for stdin")
	cmd.Flags().StringVar(&f.source, "source", string(corpus.SourceDelimited), "input layout: lines, paragraphs, delimited or sqlite")
	cmd.Flags().StringVar(&f.field, "field", corpus.Reviews.Field, "document column of a delimited file or query result")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", string(corpus.Reviews.Comma), "field separator of a delimited file")
	cmd.Flags().StringVar(&f.query, "query", "", "SQL query selecting the documents (sqlite source)")
	cmd.Flags().IntVarP(&f.top, "top", "n", 0, "print only the best n keywords (0 prints all)")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(export.FormatText), "output format: text, json or msgpack")
	cmd.Flags().BoolVar(&f.noNormalize, "no-normalize", false, "keep raw phrase scores")
	cmd.Flags().BoolVar(&f.lenient, "lenient", false, "keep candidates with malformed words")
	cmd.Flags().StringVar(&f.stem, "stem", "", "snowball stemming language, e.g. english")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 1, "documents scored concurrently")
	return cmd
}

func runExtract(cmd *cobra.Command, f *extractFlags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("stopwords") {
		cfg.Stopwords = f.stopwords
	}
	if flags.Changed("no-normalize") {
		cfg.Rake.Normalize = !f.noNormalize
	}
	if flags.Changed("lenient") {
		cfg.Rake.Strict = !f.lenient
	}
	if flags.Changed("stem") {
		cfg.Rake.Stemming = f.stem
	}
	if flags.Changed("workers") {
		cfg.Rake.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log, closer, err := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	idx, err := stopwords.LoadFile(cfg.Stopwords)
	if err != nil {
		return err
	}
	r, err := keyword.New(idx, append(cfg.RakeOptions(), keyword.WithLogger(log))...)
	if err != nil {
		return err
	}

	scores, n, err := score(cmd, f, r)
	if err != nil {
		return err
	}
	log.Debug("corpus done", slog.Int("documents", n), slog.String("source", f.source))

	report := export.NewReport(n, export.TopN(scores, f.top))
	return export.Write(cmd.OutOrStdout(), export.Format(f.format), report)
}

// score streams line input and loads every other source up front.
func score(cmd *cobra.Command, f *extractFlags, r *keyword.Rake) ([]keyword.Score, int, error) {
	if corpus.Source(f.source) == corpus.SourceLines {
		in, done, err := openInput(cmd, f.input)
		if err != nil {
			return nil, 0, err
		}
		defer done()
		return streaming.Lines(cmd.Context(), in, r)
	}

	docs, err := readDocuments(cmd, f)
	if err != nil {
		return nil, 0, err
	}
	scores, err := r.KeywordsContext(cmd.Context(), docs)
	return scores, len(docs), err
}

func openInput(cmd *cobra.Command, input string) (io.Reader, func(), error) {
	if input == "-" || input == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(input)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	return file, func() { file.Close() }, nil
}

func readDocuments(cmd *cobra.Command, f *extractFlags) ([]string, error) {
	if corpus.Source(f.source) == corpus.SourceSQLite {
		if f.query == "" {
			return nil, errors.New("--query is required for the sqlite source")
		}
		db, err := corpus.OpenSQLite(f.input)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return corpus.Query(db, f.query, f.field)
	}

	if utf8.RuneCountInString(f.delimiter) != 1 {
		return nil, errors.Errorf("--delimiter must be a single character, got %q", f.delimiter)
	}
	comma, _ := utf8.DecodeRuneInString(f.delimiter)

	in, done, err := openInput(cmd, f.input)
	if err != nil {
		return nil, err
	}
	defer done()
	return corpus.Read(in, corpus.Source(f.source), corpus.Delimited{Comma: comma, Field: f.field})
}
