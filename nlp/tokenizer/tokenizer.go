package tokenizer

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWordChars may appear inside a word between letters or digits.
const DefaultWordChars = "'’"

// Symbols is the optional extra word character class.
const Symbols = "_+-/"

// Tokenizer extracts lowercase word tokens. A word is a run of letters and
// digits, optionally joined by the configured word characters.
type Tokenizer struct {
	minLength int
	wordChars string
	reToken   *regexp.Regexp
	reWord    *regexp.Regexp
}

type Option func(*Tokenizer)

// WithMinLength drops tokens whose rune length is not greater than n.
func WithMinLength(n int) Option {
	return func(t *Tokenizer) { t.minLength = n }
}

// WithWordChars replaces the characters allowed inside a word.
func WithWordChars(chars string) Option {
	return func(t *Tokenizer) { t.wordChars = chars }
}

// WithSymbols adds _ + - / to the word characters.
func WithSymbols() Option {
	return func(t *Tokenizer) { t.wordChars += Symbols }
}

func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{wordChars: DefaultWordChars}
	for _, opt := range opts {
		opt(t)
	}
	expr := `[\p{L}\p{N}]+`
	if t.wordChars != "" {
		expr = `[\p{L}\p{N}]+(?:[` + classEscape(t.wordChars) + `]+[\p{L}\p{N}]+)*`
	}
	t.reToken = regexp.MustCompile(expr)
	t.reWord = regexp.MustCompile(`^` + expr + `$`)
	return t
}

// SeparateWords returns the lowercase tokens of text that are longer than
// minLength runes and not numeric.
func (t *Tokenizer) SeparateWords(text string, minLength int) []string {
	var words []string
	for _, tok := range t.reToken.FindAllString(text, -1) {
		w := strings.ToLower(strings.TrimSpace(tok))
		if w == "" || utf8.RuneCountInString(w) <= minLength || IsNumeric(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Words is SeparateWords with the configured minimum length.
func (t *Tokenizer) Words(text string) []string {
	return t.SeparateWords(text, t.minLength)
}

// IsWord reports whether s is exactly one well-formed token.
func (t *Tokenizer) IsWord(s string) bool {
	return t.reWord.MatchString(s)
}

// IsWordRune reports whether r can be part of a token.
func (t *Tokenizer) IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune(t.wordChars, r)
}

func (t *Tokenizer) MinLength() int {
	return t.minLength
}

// IsNumeric reports whether s is a floating-point literal containing at
// least one decimal digit. Words like "nan" or "inf" are not numeric.
func IsNumeric(s string) bool {
	if strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) < 0 {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func classEscape(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		if strings.ContainsRune(`\-]^[`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
