package readability

import (
	"math"
	"strings"
)

func (t *tokenization) avgSentenceLength() float64 {
	return float64(t.wordCount()) / float64(t.sentences)
}

func (t *tokenization) avgSyllablesPerWord() float64 {
	return float64(t.totalSyllables) / float64(t.wordCount())
}

func (t *tokenization) fleschReadingEase() float64 {
	return 206.835 - 1.015*t.avgSentenceLength() - 84.6*t.avgSyllablesPerWord()
}

func (t *tokenization) fleschKincaidGrade() float64 {
	return 0.39*t.avgSentenceLength() + 11.8*t.avgSyllablesPerWord() - 15.59
}

// gunningFog treats a word as hard when it has three or more syllables and is
// not in the easy-word lexicon.
func (t *tokenization) gunningFog() float64 {
	hardPercent := 100 * float64(t.difficultWordCount(3)) / float64(t.wordCount())
	return 0.4 * (t.avgSentenceLength() + hardPercent)
}

// smogIndex needs at least three sentences to be meaningful; below that the
// published formula degenerates and the score is reported as zero.
func (t *tokenization) smogIndex() float64 {
	if t.sentences < 3 {
		return 0
	}
	return 1.043*math.Sqrt(float64(t.poly)*30/float64(t.sentences)) + 3.1291
}

func (t *tokenization) automatedReadabilityIndex() float64 {
	charsPerWord := float64(t.chars) / float64(t.wordCount())
	return 4.71*charsPerWord + 0.5*t.avgSentenceLength() - 21.43
}

func (t *tokenization) colemanLiauIndex() float64 {
	lettersPer100 := float64(t.letters) / float64(t.wordCount()) * 100
	sentencesPer100 := float64(t.sentences) / float64(t.wordCount()) * 100
	return 0.058*lettersPer100 - 0.296*sentencesPer100 - 15.8
}

// linsearWriteFormula samples the first 100 whitespace fields of the raw text,
// weighting easy words (one or two syllables) at 1 and hard words at 3.
func (t *tokenization) linsearWriteFormula() float64 {
	fields := strings.Fields(t.text)
	if len(fields) > 100 {
		fields = fields[:100]
	}

	easy, hard, sampleSentences := 0, 0, 0
	for _, field := range fields {
		word := stripPunct(field)
		if word == "" {
			continue
		}
		if countSyllables(word) >= 3 {
			hard++
		} else {
			easy++
		}
		trimmed := strings.TrimRight(field, "\"')]}”’")
		if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
			sampleSentences++
		}
	}
	if sampleSentences < 1 {
		sampleSentences = 1
	}

	score := float64(easy+3*hard) / float64(sampleSentences)
	if score <= 20 {
		score -= 2
	}
	return score / 2
}

func (t *tokenization) daleChallReadabilityScore() float64 {
	difficultPercent := 100 * float64(t.difficultWordCount(2)) / float64(t.wordCount())
	score := 0.1579*difficultPercent + 0.0496*t.avgSentenceLength()
	if difficultPercent > 5 {
		score += 3.6365
	}
	return score
}

// difficultWordCount counts distinct words at or above the syllable threshold
// that are missing from the easy-word lexicon.
func (t *tokenization) difficultWordCount(syllableThreshold int) int {
	seen := make(map[string]struct{})
	for i, w := range t.words {
		if t.syllableCounts[i] < syllableThreshold {
			continue
		}
		lower := strings.ToLower(w)
		if isEasyWord(lower) {
			continue
		}
		seen[lower] = struct{}{}
	}
	return len(seen)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
