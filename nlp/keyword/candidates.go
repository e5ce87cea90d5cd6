package keyword

import "strings"

// Candidates splits each sentence at stopwords and returns the remaining
// runs of words as lowercase phrases.
func (r *Rake) Candidates(sentences []string) []string {
	var phrases []string
	for _, sentence := range sentences {
		sentence = strings.ToLower(strings.TrimSpace(sentence))
		if sentence == "" {
			continue
		}
		last := 0
		for _, span := range r.index.Find(sentence, r.tok.IsWordRune) {
			phrases = r.appendCandidate(phrases, sentence[last:span[0]])
			last = span[1]
		}
		phrases = r.appendCandidate(phrases, sentence[last:])
	}
	return phrases
}

func (r *Rake) appendCandidate(phrases []string, part string) []string {
	fields := strings.Fields(part)
	if len(fields) == 0 {
		return phrases
	}
	phrase := strings.Join(fields, " ")
	if r.index.Contains(phrase) {
		return phrases
	}
	if r.strict {
		for _, f := range fields {
			if r.index.Contains(f) || !r.tok.IsWord(f) {
				return phrases
			}
		}
	}
	if len(r.tok.SeparateWords(phrase, 0)) == 0 {
		return phrases
	}
	return append(phrases, phrase)
}
