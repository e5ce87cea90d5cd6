package corpus

import (
	"fmt"

	"github.com/oarkflow/squealx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// SourceSQLite reads documents from a query result.
const SourceSQLite Source = "sqlite"

func OpenSQLite(path string) (*squealx.DB, error) {
	db, err := squealx.Open("sqlite", path, "corpus")
	if err != nil {
		return nil, errors.Wrapf(err, "corpus: open %s", path)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "corpus: ping %s", path)
	}
	return db, nil
}

// Query runs query and returns the text of column for every row. NULL
// values are skipped.
func Query(db *squealx.DB, query, column string) ([]string, error) {
	rows, err := db.Query(query, nil)
	if err != nil {
		return nil, errors.Wrap(err, "corpus: query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "corpus: columns")
	}
	col := -1
	for i, name := range cols {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.Errorf("corpus: column %q not in result %v", column, cols)
	}

	var docs []string
	for rows.Next() {
		values := make([]any, len(cols))
		pointers := make([]any, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrap(err, "corpus: scan")
		}
		switch v := values[col].(type) {
		case nil:
		case []byte:
			docs = append(docs, string(v))
		case string:
			docs = append(docs, v)
		default:
			docs = append(docs, fmt.Sprint(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "corpus: rows")
	}
	return docs, nil
}
