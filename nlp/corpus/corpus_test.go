package corpus

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewsFile = `id|ReviewText|stars
1|Oren's is a popular   lunch place, noisy and bustling.|4
2|  Fresh pita and   generous taste.  |5
3||1
`

func TestReadDelimited(t *testing.T) {
	docs, err := ReadDelimited(strings.NewReader(reviewsFile), Reviews)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Oren's is a popular lunch place, noisy and bustling.",
		"Fresh pita and generous taste.",
		"",
	}, docs)
}

func TestReadDelimitedErrors(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
	}{
		{desc: "empty input", input: ""},
		{desc: "missing field", input: "id|stars\n1|4\n"},
		{desc: "short record", input: "id|reviewtext\n1\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := ReadDelimited(strings.NewReader(tc.input), Reviews)
			require.Error(t, err)
		})
	}
}

func TestReadDelimitedComma(t *testing.T) {
	docs, err := ReadDelimited(strings.NewReader("body,rating\n\"great food, slow service\",3\n"),
		Delimited{Field: "body"})
	require.NoError(t, err)
	assert.Equal(t, []string{"great food, slow service"}, docs)
}

func TestReadLines(t *testing.T) {
	docs, err := ReadLines(strings.NewReader("first review\n\n  second review  \r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first review", "second review"}, docs)
}

func TestReadLinesLongDocument(t *testing.T) {
	long := strings.Repeat("lunch place ", 20000)
	docs, err := ReadLines(strings.NewReader("short\n" + long + "\n"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, strings.TrimSpace(long), docs[1])

	_, err = ReadLines(strings.NewReader(strings.Repeat("x", MaxDocument+1)))
	require.Error(t, err)
}

func TestReadParagraphs(t *testing.T) {
	docs, err := ReadParagraphs(strings.NewReader("first line\nstill first\n\n\nsecond\n  \nthird\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first line\nstill first", "second", "third"}, docs)
}

func TestRead(t *testing.T) {
	docs, err := Read(strings.NewReader("a\nb\n"), SourceLines, Reviews)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	_, err = Read(strings.NewReader(""), Source("xml"), Reviews)
	require.ErrorContains(t, err, `unknown source "xml"`)
}

func TestQuerySQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "reviews.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE reviews (id INTEGER PRIMARY KEY, body TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO reviews (body) VALUES ('Popular lunch place'), (NULL), ('Fresh pita')`)
	require.NoError(t, err)

	docs, err := Query(db, `SELECT id, body FROM reviews ORDER BY id`, "body")
	require.NoError(t, err)
	assert.Equal(t, []string{"Popular lunch place", "Fresh pita"}, docs)

	_, err = Query(db, `SELECT id FROM reviews`, "body")
	require.Error(t, err)
}
