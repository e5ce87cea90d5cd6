package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/oarkflow/rake/nlp/keyword"
)

type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Report is the result of one extraction run.
type Report struct {
	ID          string          `json:"id" msgpack:"id"`
	GeneratedAt time.Time       `json:"generated_at" msgpack:"generated_at"`
	Documents   int             `json:"documents" msgpack:"documents"`
	Keywords    []keyword.Score `json:"keywords" msgpack:"keywords"`
}

func NewReport(documents int, scores []keyword.Score) *Report {
	if scores == nil {
		scores = []keyword.Score{}
	}
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Documents:   documents,
		Keywords:    scores,
	}
}

// TopN returns the first n scores; n <= 0 returns all of them.
func TopN(scores []keyword.Score, n int) []keyword.Score {
	if n <= 0 || n >= len(scores) {
		return scores
	}
	return scores[:n]
}

// WriteText writes one "phrase<TAB>score" line per keyword.
func WriteText(w io.Writer, scores []keyword.Score) error {
	for _, s := range scores {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", s.Phrase, strconv.FormatFloat(s.Score, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

func ToJSON(r *Report) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func ToMsgpack(r *Report) ([]byte, error) {
	return msgpack.Marshal(r)
}

func FromMsgpack(data []byte) (*Report, error) {
	var r Report
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "decode report")
	}
	return &r, nil
}

// Write encodes r to w in the given format.
func Write(w io.Writer, format Format, r *Report) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r.Keywords)
	case FormatJSON:
		s, err := ToJSON(r)
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	case FormatMsgpack:
		b, err := ToMsgpack(r)
		if err != nil {
			return errors.Wrap(err, "encode msgpack")
		}
		_, err = w.Write(b)
		return err
	default:
		return errors.Errorf("unsupported format %q", format)
	}
}
