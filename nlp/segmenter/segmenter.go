package segmenter

import "regexp"

var (
	reSentence  = regexp.MustCompile(`[.!?,;:]`)
	reParagraph = regexp.MustCompile(`\r?\n\s*\r?\n`)
)

// SentenceSplit splits text on . ! ? , ; and :. Spans are not trimmed and
// may be empty.
func SentenceSplit(text string) []string {
	return reSentence.Split(text, -1)
}

// ParagraphSplit splits text into paragraphs separated by blank lines.
func ParagraphSplit(text string) []string {
	return reParagraph.Split(text, -1)
}
