package langcheck

import (
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// minRunes is the shortest text worth classifying; below it the detector is
// too unreliable to warn on.
const minRunes = 40

// candidates are the languages the detector chooses between. English first;
// the rest are common Latin-script languages it can reliably tell apart.
var candidates = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// Checker flags text that is probably not English. The readability formulas
// assume English, so a miss is worth a warning but never an error.
type Checker struct {
	detector lingua.LanguageDetector
}

func NewChecker() *Checker {
	return &Checker{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			WithMinimumRelativeDistance(0.25).
			Build(),
	}
}

// LooksEnglish reports whether text is plausibly English, along with the
// detected language name when it is not. Short or ambiguous input counts as
// English so callers do not warn spuriously.
func (c *Checker) LooksEnglish(text string) (bool, string) {
	if utf8.RuneCountInString(text) < minRunes {
		return true, ""
	}
	lang, ok := c.detector.DetectLanguageOf(text)
	if !ok {
		return true, ""
	}
	if lang == lingua.English {
		return true, ""
	}
	return false, lang.String()
}
