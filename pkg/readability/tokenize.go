package readability

import (
	"strings"
	"unicode"

	"github.com/mtso/syllables"
)

// tokenization is the shared single-pass breakdown of one text. All formulas
// read from it; nothing mutates it after tokenize returns.
type tokenization struct {
	text           string
	words          []string // whitespace fields with punctuation removed
	syllableCounts []int    // parallel to words
	sentences      int
	chars          int // runes excluding whitespace
	letters        int // letter runes only
	totalSyllables int
	poly           int // words with 3+ syllables
	mono           int // words with exactly 1 syllable
}

func (a *Analyzer) tokenize(text string) *tokenization {
	tok := &tokenization{text: text}

	for _, field := range strings.Fields(text) {
		word := stripPunct(field)
		if word == "" {
			continue
		}
		n := countSyllables(word)
		tok.words = append(tok.words, word)
		tok.syllableCounts = append(tok.syllableCounts, n)
		tok.totalSyllables += n
		switch {
		case n >= 3:
			tok.poly++
		case n == 1:
			tok.mono++
		}
	}

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		tok.chars++
		if unicode.IsLetter(r) {
			tok.letters++
		}
	}

	tok.sentences = a.countSentences(text)
	return tok
}

func (t *tokenization) wordCount() int {
	return len(t.words)
}

// countSentences runs Punkt segmentation and drops fragments of two words or
// fewer (abbreviation debris, stray headings). Non-empty text always counts as
// at least one sentence.
func (a *Analyzer) countSentences(text string) int {
	count := 0
	for _, segment := range a.tokenizer.Tokenize(text) {
		if lexiconCount(segment.Text) > 2 {
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

// lexiconCount counts words in text with punctuation removed.
func lexiconCount(text string) int {
	n := 0
	for _, field := range strings.Fields(text) {
		if stripPunct(field) != "" {
			n++
		}
	}
	return n
}

// stripPunct removes every rune that is not a letter or digit.
func stripPunct(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// countSyllables estimates syllables for a single cleaned word. Every word
// carries at least one syllable so vowelless tokens cannot zero out a ratio.
func countSyllables(word string) int {
	n := syllables.In(word)
	if n < 1 {
		n = 1
	}
	return n
}
