package streaming

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/rake/nlp/keyword"
	"github.com/oarkflow/rake/nlp/stopwords"
)

func newEngine(t *testing.T) *keyword.Rake {
	t.Helper()
	idx, err := stopwords.New([]string{"is", "a", "the", "and"})
	require.NoError(t, err)
	r, err := keyword.New(idx)
	require.NoError(t, err)
	return r
}

func TestProcessDocuments(t *testing.T) {
	var got []string
	err := ProcessDocuments(strings.NewReader("one two\n\n  three \n"), bufio.ScanLines, func(doc string) error {
		got = append(got, doc)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one two", "three"}, got)

	stop := errors.New("stop")
	err = ProcessDocuments(strings.NewReader("a\nb\n"), bufio.ScanLines, func(string) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func TestLinesMatchesKeywords(t *testing.T) {
	r := newEngine(t)
	docs := []string{
		"Oren's is a popular lunch place, noisy and bustling.",
		"The popular lunch place is noisy.",
		"Fresh pita and generous taste.",
	}

	got, n, err := Lines(context.Background(), strings.NewReader(strings.Join(docs, "\n\n")), r)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, r.Keywords(docs), got)
}

func TestLinesEmptyInput(t *testing.T) {
	got, n, err := Lines(context.Background(), strings.NewReader(""), newEngine(t))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []keyword.Score{}, got)
}

func TestLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Lines(ctx, strings.NewReader("noisy\n"), newEngine(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessDocumentsLongLine(t *testing.T) {
	long := strings.Repeat("lunch place ", 20000)
	var got []string
	err := ProcessDocuments(strings.NewReader(long+"\n"), bufio.ScanLines, func(doc string) error {
		got = append(got, doc)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0], len(long)-1)
}
