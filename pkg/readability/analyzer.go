package readability

import (
	"fmt"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"github.com/dtnitsch/llm-readability/models"
)

// msPerChar is the reading-speed constant used for the reading_time metric.
const msPerChar = 14.69

// Analyzer computes readability statistics over English text. It holds the
// trained sentence tokenizer and is safe to reuse across texts; every Analyze
// call is independent and deterministic.
type Analyzer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewAnalyzer() (*Analyzer, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	return &Analyzer{tokenizer: tokenizer}, nil
}

// Analyze tokenizes the text once and derives all metrics from that single
// pass. The shared tokenization is an internal optimization only; each metric
// is the same pure function of the text it would be when computed alone.
func (a *Analyzer) Analyze(text string) (*models.Report, error) {
	tok := a.tokenize(text)
	if tok.wordCount() == 0 {
		return nil, fmt.Errorf("text contains no countable words")
	}

	ease := tok.fleschReadingEase()
	fkGrade := tok.fleschKincaidGrade()
	fog := tok.gunningFog()
	smog := tok.smogIndex()
	ari := tok.automatedReadabilityIndex()
	coleman := tok.colemanLiauIndex()
	linsear := tok.linsearWriteFormula()
	daleChall := tok.daleChallReadabilityScore()

	return &models.Report{
		FleschReadingEase:         round2(ease),
		FleschKincaidGrade:        round2(fkGrade),
		GunningFog:                round2(fog),
		SMOGIndex:                 round2(smog),
		AutomatedReadabilityIdx:   round2(ari),
		ColemanLiauIndex:          round2(coleman),
		LinsearWriteFormula:       round2(linsear),
		DaleChallReadabilityScore: round2(daleChall),
		DifficultWords:            tok.difficultWordCount(2),
		TextStandard:              textStandard(ease, fkGrade, smog, coleman, ari, daleChall, linsear, fog),
		ReadingTime:               round2(float64(tok.chars) * msPerChar / 1000),
		SyllableCount:             tok.totalSyllables,
		LexiconCount:              tok.wordCount(),
		SentenceCount:             tok.sentences,
		CharCount:                 tok.chars,
		LetterCount:               tok.letters,
		PolysyllableCount:         tok.poly,
		MonosyllableCount:         tok.mono,
	}, nil
}
