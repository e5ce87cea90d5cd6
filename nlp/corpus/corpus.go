// Package corpus reads documents from files and databases.
package corpus

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/oarkflow/rake/nlp/normalizer"
	"github.com/oarkflow/rake/nlp/segmenter"
)

// MaxDocument is the largest line-scanned document, in bytes.
const MaxDocument = 16 << 20

// Delimited describes a delimited file with a header row.
type Delimited struct {
	Comma rune
	Field string
}

// Reviews is the pipe-delimited review export layout.
var Reviews = Delimited{Comma: '|', Field: "reviewtext"}

// ReadDelimited returns the Field column of every record. The header is
// matched case-insensitively and values have their spaces collapsed.
func ReadDelimited(r io.Reader, d Delimited) ([]string, error) {
	cr := csv.NewReader(r)
	if d.Comma != 0 {
		cr.Comma = d.Comma
	}
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("corpus: missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "corpus: read header")
	}
	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), d.Field) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.Errorf("corpus: field %q not in header %v", d.Field, header)
	}

	var docs []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "corpus: read record")
		}
		if col >= len(rec) {
			line, _ := cr.FieldPos(0)
			return nil, errors.Errorf("corpus: line %d has no %q column", line, d.Field)
		}
		docs = append(docs, normalizer.CollapseSpaces(rec[col]))
	}
	return docs, nil
}

// ReadLines returns every non-blank line as a document.
func ReadLines(r io.Reader) ([]string, error) {
	var docs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), MaxDocument)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			docs = append(docs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "corpus: read lines")
	}
	return docs, nil
}

// ReadParagraphs returns every blank-line separated block as a document.
func ReadParagraphs(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "corpus: read paragraphs")
	}
	var docs []string
	for _, p := range segmenter.ParagraphSplit(string(data)) {
		if p = strings.TrimSpace(p); p != "" {
			docs = append(docs, p)
		}
	}
	return docs, nil
}

// Source names a document layout accepted by Read.
type Source string

const (
	SourceLines      Source = "lines"
	SourceParagraphs Source = "paragraphs"
	SourceDelimited  Source = "delimited"
)

// Read dispatches to the reader for src.
func Read(r io.Reader, src Source, d Delimited) ([]string, error) {
	switch src {
	case SourceLines:
		return ReadLines(r)
	case SourceParagraphs:
		return ReadParagraphs(r)
	case SourceDelimited:
		return ReadDelimited(r, d)
	default:
		return nil, errors.Errorf("corpus: unknown source %q", src)
	}
}
