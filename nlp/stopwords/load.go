package stopwords

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads one stopword per line from r.
func Load(r io.Reader) (*Index, error) {
	var words []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		words = append(words, scan.Text())
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "read stopwords: %v", err)
	}
	return New(words)
}

// LoadFile reads the stopword file at path.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "open stopwords: %v", err)
	}
	defer f.Close()
	idx, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return idx, nil
}
