package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceSplit(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []string
	}{
		{"all delimiters", "a.b!c?d,e;f:g", []string{"a", "b", "c", "d", "e", "f", "g"}},
		{"keeps spacing and empties", "Oren's is a popular lunch place, noisy and bustling.",
			[]string{"Oren's is a popular lunch place", " noisy and bustling", ""}},
		{"no delimiter", "plain text", []string{"plain text"}},
		{"empty", "", []string{""}},
		{"runs of punctuation", "wait...", []string{"wait", "", "", ""}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SentenceSplit(tc.text))
		})
	}
}

func TestParagraphSplit(t *testing.T) {
	assert.Equal(t, []string{"first one\nstill first", "second"},
		ParagraphSplit("first one\nstill first\n\nsecond"))
	assert.Equal(t, []string{"a", "b"}, ParagraphSplit("a\r\n  \r\nb"))
}
