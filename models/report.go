package models

// Report is the flat success envelope written to stdout. Every field is always
// populated; the metrics are computed together or not at all.
type Report struct {
	FleschReadingEase         float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        float64 `json:"flesch_kincaid_grade"`
	GunningFog                float64 `json:"gunning_fog"`
	SMOGIndex                 float64 `json:"smog_index"`
	AutomatedReadabilityIdx   float64 `json:"automated_readability_index"`
	ColemanLiauIndex          float64 `json:"coleman_liau_index"`
	LinsearWriteFormula       float64 `json:"linsear_write_formula"`
	DaleChallReadabilityScore float64 `json:"dale_chall_readability_score"`
	DifficultWords            int     `json:"difficult_words"`
	TextStandard              string  `json:"text_standard"`
	ReadingTime               float64 `json:"reading_time"`
	SyllableCount             int     `json:"syllable_count"`
	LexiconCount              int     `json:"lexicon_count"`
	SentenceCount             int     `json:"sentence_count"`
	CharCount                 int     `json:"char_count"`
	LetterCount               int     `json:"letter_count"`
	PolysyllableCount         int     `json:"polysyllabcount"`
	MonosyllableCount         int     `json:"monosyllabcount"`
}
