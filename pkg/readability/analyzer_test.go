package readability

import (
	"math"
	"regexp"
	"testing"
)

const foxSentence = "The quick brown fox jumps over the lazy dog."

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer() failed: %v", err)
	}
	return a
}

func TestAnalyze_FoxSentenceCounts(t *testing.T) {
	a := newTestAnalyzer(t)

	report, err := a.Analyze(foxSentence)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.LexiconCount != 9 {
		t.Errorf("lexicon_count = %d, want 9", report.LexiconCount)
	}
	if report.SentenceCount != 1 {
		t.Errorf("sentence_count = %d, want 1", report.SentenceCount)
	}
	// 36 non-space runes, 35 of them letters (the trailing period is not).
	if report.CharCount != 36 {
		t.Errorf("char_count = %d, want 36", report.CharCount)
	}
	if report.LetterCount != 35 {
		t.Errorf("letter_count = %d, want 35", report.LetterCount)
	}
	// Every word is short and common, so nothing should be difficult.
	if report.DifficultWords != 0 {
		t.Errorf("difficult_words = %d, want 0", report.DifficultWords)
	}
	if report.PolysyllableCount != 0 {
		t.Errorf("polysyllabcount = %d, want 0", report.PolysyllableCount)
	}
	if report.MonosyllableCount < 6 {
		t.Errorf("monosyllabcount = %d, want at least 6", report.MonosyllableCount)
	}
	if report.SyllableCount < report.LexiconCount || report.SyllableCount > 2*report.LexiconCount {
		t.Errorf("syllable_count = %d, outside plausible range [%d, %d]",
			report.SyllableCount, report.LexiconCount, 2*report.LexiconCount)
	}
}

func TestAnalyze_ReadingTime(t *testing.T) {
	a := newTestAnalyzer(t)

	report, err := a.Analyze(foxSentence)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	want := round2(float64(report.CharCount) * msPerChar / 1000)
	if report.ReadingTime != want {
		t.Errorf("reading_time = %v, want %v", report.ReadingTime, want)
	}

	// Doubling the text doubles the non-space character count, so reading
	// time must double too (within rounding of the two results).
	doubled, err := a.Analyze(foxSentence + " " + foxSentence)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if doubled.CharCount != 2*report.CharCount {
		t.Fatalf("char_count = %d, want %d", doubled.CharCount, 2*report.CharCount)
	}
	if math.Abs(doubled.ReadingTime-2*report.ReadingTime) > 0.02 {
		t.Errorf("reading_time = %v, want about %v", doubled.ReadingTime, 2*report.ReadingTime)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := newTestAnalyzer(t)

	first, err := a.Analyze(foxSentence)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	second, err := a.Analyze(foxSentence)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if *first != *second {
		t.Errorf("repeated analysis differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyze_SMOGNeedsThreeSentences(t *testing.T) {
	a := newTestAnalyzer(t)

	short, err := a.Analyze("The dog ran home. The cat sat down.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if short.SMOGIndex != 0 {
		t.Errorf("smog_index = %v for two sentences, want 0", short.SMOGIndex)
	}

	long, err := a.Analyze("The university administration organized a celebration. " +
		"Students participated enthusiastically in the ceremony. " +
		"Professors delivered extraordinary presentations afterward. " +
		"Everyone appreciated the wonderful opportunity together.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if long.SentenceCount < 3 {
		t.Fatalf("sentence_count = %d, want at least 3", long.SentenceCount)
	}
	if long.SMOGIndex <= 0 {
		t.Errorf("smog_index = %v for four polysyllabic sentences, want > 0", long.SMOGIndex)
	}
}

func TestAnalyze_HarderTextScoresHarder(t *testing.T) {
	a := newTestAnalyzer(t)

	simple, err := a.Analyze("The dog ran. The cat sat. The boy had fun. They all went home.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	complex, err := a.Analyze("Notwithstanding considerable institutional heterogeneity, " +
		"comprehensive organizational restructuring necessitates sophisticated " +
		"administrative coordination. Interdisciplinary collaboration facilitates " +
		"methodological innovation throughout contemporary establishments. " +
		"Technological transformation accelerates unprecedented infrastructural development.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if complex.FleschReadingEase >= simple.FleschReadingEase {
		t.Errorf("flesch_reading_ease: complex %v >= simple %v",
			complex.FleschReadingEase, simple.FleschReadingEase)
	}
	if complex.FleschKincaidGrade <= simple.FleschKincaidGrade {
		t.Errorf("flesch_kincaid_grade: complex %v <= simple %v",
			complex.FleschKincaidGrade, simple.FleschKincaidGrade)
	}
	if complex.GunningFog <= simple.GunningFog {
		t.Errorf("gunning_fog: complex %v <= simple %v", complex.GunningFog, simple.GunningFog)
	}
	if complex.DifficultWords <= simple.DifficultWords {
		t.Errorf("difficult_words: complex %d <= simple %d",
			complex.DifficultWords, simple.DifficultWords)
	}
}

func TestAnalyze_TextStandardLabel(t *testing.T) {
	a := newTestAnalyzer(t)

	report, err := a.Analyze(foxSentence)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	labelPattern := regexp.MustCompile(`^-?\d+th and -?\d+th grade$`)
	if !labelPattern.MatchString(report.TextStandard) {
		t.Errorf("text_standard = %q, want grade label like \"4th and 5th grade\"", report.TextStandard)
	}
}

func TestAnalyze_CountInvariants(t *testing.T) {
	a := newTestAnalyzer(t)

	texts := []string{
		foxSentence,
		"One.",
		"Numbers like 42 and 1999 still count as words.",
		"Tabs\tand\nnewlines separate words just like spaces do.",
	}

	for _, text := range texts {
		report, err := a.Analyze(text)
		if err != nil {
			t.Fatalf("Analyze(%q) error = %v", text, err)
		}
		if report.MonosyllableCount+report.PolysyllableCount > report.LexiconCount {
			t.Errorf("%q: mono (%d) + poly (%d) exceeds lexicon (%d)",
				text, report.MonosyllableCount, report.PolysyllableCount, report.LexiconCount)
		}
		if report.SentenceCount < 1 {
			t.Errorf("%q: sentence_count = %d, want at least 1", text, report.SentenceCount)
		}
		if report.LetterCount > report.CharCount {
			t.Errorf("%q: letter_count (%d) exceeds char_count (%d)",
				text, report.LetterCount, report.CharCount)
		}
	}
}

func TestAnalyze_NoCountableWords(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, text := range []string{"...", "!!! ???", "-- --"} {
		if _, err := a.Analyze(text); err == nil {
			t.Errorf("Analyze(%q) expected error for punctuation-only text", text)
		}
	}
}
