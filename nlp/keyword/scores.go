package keyword

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/kljensen/snowball"
)

// Score is a candidate phrase and its score.
type Score struct {
	Phrase string  `json:"phrase" msgpack:"phrase"`
	Score  float64 `json:"score" msgpack:"score"`
}

// WordStats holds the co-occurrence statistics of one word. Degree already
// includes the word's own frequency.
type WordStats struct {
	Frequency int
	Degree    int
	Score     float64
}

// WordStats computes frequency, degree and degree/frequency for every word
// of phrases.
func (r *Rake) WordStats(phrases []string) map[string]WordStats {
	stats := make(map[string]WordStats)
	for _, phrase := range phrases {
		words := r.words(phrase)
		degree := len(words) - 1
		for _, w := range words {
			s := stats[w]
			s.Frequency++
			s.Degree += degree
			stats[w] = s
		}
	}
	for w, s := range stats {
		s.Degree += s.Frequency
		s.Score = float64(s.Degree) / float64(s.Frequency)
		stats[w] = s
	}
	return stats
}

func (r *Rake) WordScores(phrases []string) map[string]float64 {
	stats := r.WordStats(phrases)
	scores := make(map[string]float64, len(stats))
	for w, s := range stats {
		scores[w] = s.Score
	}
	return scores
}

// CandidateScores sums word scores per phrase, merges repeated phrases,
// normalizes by the total when enabled, and ranks the result. Every word of
// phrases must be present in wordScores.
func (r *Rake) CandidateScores(phrases []string, wordScores map[string]float64) []Score {
	acc := newAggregator(len(phrases))
	total := 0.0
	for _, phrase := range phrases {
		score := 0.0
		for _, w := range r.words(phrase) {
			ws, ok := wordScores[w]
			if !ok {
				panic(fmt.Sprintf("keyword: word %q of phrase %q has no score", w, phrase))
			}
			score += ws
		}
		acc.add(phrase, score)
		total += score
	}
	if r.normalize && total != 0 {
		for phrase := range acc.scores {
			acc.scores[phrase] /= total
		}
	}
	return acc.Ranked()
}

func (r *Rake) words(phrase string) []string {
	words := r.tok.SeparateWords(phrase, 0)
	if r.stemLanguage == "" {
		return words
	}
	for i, w := range words {
		if stem, err := snowball.Stem(w, r.stemLanguage, true); err == nil && stem != "" {
			words[i] = stem
		}
	}
	return words
}

// Rank sorts scores by descending score, keeping the order of ties.
func Rank(scores []Score) {
	slices.SortStableFunc(scores, func(a, b Score) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// Aggregator merges scores by summation per phrase and remembers the order
// in which phrases were first seen.
type Aggregator struct {
	order  []string
	scores map[string]float64
}

func NewAggregator() *Aggregator {
	return newAggregator(0)
}

func newAggregator(size int) *Aggregator {
	return &Aggregator{
		order:  make([]string, 0, size),
		scores: make(map[string]float64, size),
	}
}

// Add merges the scores of one document.
func (a *Aggregator) Add(scores []Score) {
	for _, s := range scores {
		a.add(s.Phrase, s.Score)
	}
}

func (a *Aggregator) add(phrase string, score float64) {
	if _, ok := a.scores[phrase]; !ok {
		a.order = append(a.order, phrase)
	}
	a.scores[phrase] += score
}

func (a *Aggregator) Len() int {
	return len(a.order)
}

// Ranked returns the merged scores in descending order. It never returns nil.
func (a *Aggregator) Ranked() []Score {
	out := make([]Score, 0, len(a.order))
	for _, phrase := range a.order {
		out = append(out, Score{Phrase: phrase, Score: a.scores[phrase]})
	}
	Rank(out)
	return out
}
