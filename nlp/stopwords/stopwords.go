package stopwords

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrConfiguration is returned when a stopword source is empty or cannot be read.
var ErrConfiguration = errors.New("stopwords: configuration error")

// Index is an immutable stopword set together with the alternation pattern
// used to find stopwords inside sentences.
type Index struct {
	words    []string
	byLength []string
	set      map[string]struct{}
	pattern  *regexp.Regexp
}

// New builds an Index from raw entries. Entries are trimmed and lowercased;
// blanks, duplicates and lines starting with '#' are dropped.
func New(words []string) (*Index, error) {
	idx := &Index{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if _, dup := idx.set[w]; dup {
			continue
		}
		idx.set[w] = struct{}{}
		idx.words = append(idx.words, w)
	}
	if len(idx.words) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "stopword list is empty")
	}

	// longest first so that "another" wins over "an" at the same position
	idx.byLength = slices.Clone(idx.words)
	slices.SortStableFunc(idx.byLength, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	alts := make([]string, len(idx.byLength))
	for i, w := range idx.byLength {
		alts[i] = regexp.QuoteMeta(w)
	}
	pattern, err := regexp.Compile(`(?:` + strings.Join(alts, "|") + `)`)
	if err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "compile stopword pattern: %v", err)
	}
	idx.pattern = pattern
	return idx, nil
}

// Contains reports whether w is a stopword. w is expected in lowercase.
func (i *Index) Contains(w string) bool {
	_, ok := i.set[w]
	return ok
}

// Words returns the stopwords in load order.
func (i *Index) Words() []string {
	return slices.Clone(i.words)
}

func (i *Index) Len() int {
	return len(i.words)
}

// Pattern returns the raw alternation. It carries no boundary checks; use Find.
func (i *Index) Pattern() *regexp.Regexp {
	return i.pattern
}

// Find returns the [start, end) byte spans of stopwords in text that stand
// on word boundaries. A match is rejected when it is joined to a letter or
// digit on either side, directly or through word runes such as the
// apostrophe in "oren's". After a rejection, shorter stopwords at the same
// position are tried, then the search resumes one rune later, so a stopword
// overlapping a rejected match is still found.
// A nil isWordRune treats letters and digits as word runes.
func (i *Index) Find(text string, isWordRune func(rune) bool) [][]int {
	if isWordRune == nil {
		isWordRune = isAlnum
	}
	var spans [][]int
	for pos := 0; pos < len(text); {
		m := i.pattern.FindStringIndex(text[pos:])
		if m == nil {
			break
		}
		start, end := pos+m[0], pos+m[1]
		if !i.onBoundary(text, start, end, isWordRune) {
			end = i.shorterMatch(text, start, end, isWordRune)
		}
		if end > start {
			spans = append(spans, []int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return spans
}

// shorterMatch returns the end of the longest stopword shorter than
// end-start that starts at start and stands on word boundaries, or start
// when there is none.
func (i *Index) shorterMatch(text string, start, end int, isWordRune func(rune) bool) int {
	for _, w := range i.byLength {
		if len(w) >= end-start || !strings.HasPrefix(text[start:], w) {
			continue
		}
		if i.onBoundary(text, start, start+len(w), isWordRune) {
			return start + len(w)
		}
	}
	return start
}

func (i *Index) onBoundary(text string, start, end int, isWordRune func(rune) bool) bool {
	return !joinedBefore(text, start, isWordRune) && !joinedAfter(text, end, isWordRune)
}

// joinedBefore reports whether the runes before pos continue a word: a run
// of word runes that reaches a letter or digit.
func joinedBefore(text string, pos int, isWordRune func(rune) bool) bool {
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:pos])
		if !isWordRune(r) {
			return false
		}
		if isAlnum(r) {
			return true
		}
		pos -= size
	}
	return false
}

func joinedAfter(text string, pos int, isWordRune func(rune) bool) bool {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !isWordRune(r) {
			return false
		}
		if isAlnum(r) {
			return true
		}
		pos += size
	}
	return false
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
