package service

import "strings"

// Phrase tables backing the free-form matchers. English and Spanish
// phrasings are both recognized; applicants frequently mix languages
// while practicing.

// maritalCategoryOrder lists categories in match order. "married" goes
// last because it is a substring of "never married" and "not married".
var maritalCategoryOrder = []struct {
	name    string
	phrases []string
}{
	{"widowed", []string{"widowed", "widow", "widower", "viudo", "viuda"}},
	{"divorced", []string{"divorced", "divorciado", "divorciada"}},
	{"separated", []string{"separated", "separado", "separada"}},
	{"single", []string{"single", "never married", "not married", "unmarried", "soltero", "soltera"}},
	{"married", []string{"married", "casado", "casada"}},
}

// maritalCategory maps a free-form phrasing to its status category, or ""
// when nothing in the table matches.
func maritalCategory(s string) string {
	lower := strings.ToLower(s)
	for _, cat := range maritalCategoryOrder {
		for _, phrase := range cat.phrases {
			if strings.Contains(lower, phrase) {
				return cat.name
			}
		}
	}
	return ""
}

var affirmativePhrases = []string{
	"yes", "yeah", "yep", "i do", "i swear", "i will", "i have",
	"of course", "sure", "correct", "that is right", "that's right",
	"absolutely", "si", "sí",
}

var negativePhrases = []string{
	"no", "nope", "never", "i don't", "i do not", "i have not",
	"i haven't", "haven't", "not really", "nunca",
}

var travelKeywords = []string{
	"vacation", "visit", "visiting", "family", "work", "business",
	"wedding", "funeral", "holiday", "tourism", "trip",
}

// matchesPhraseSet checks a candidate against a phrase table. Single-word
// phrases must match a whole word so "no" does not fire inside "know";
// multi-word phrases match as substrings.
func matchesPhraseSet(candidate string, phrases []string) bool {
	lower := strings.ToLower(candidate)
	words := tokenizeWords(lower)
	for _, phrase := range phrases {
		if strings.Contains(phrase, " ") {
			if strings.Contains(lower, phrase) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == phrase {
				return true
			}
		}
	}
	return false
}

// tokenizeWords splits on whitespace and trims surrounding punctuation.
func tokenizeWords(s string) []string {
	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, ".,;:!?()[]{}'\"")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// mutualSubstring is the comparator used across the field matchers:
// equal, or either side contains the other.
func mutualSubstring(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// wordOverlapRatio reports how much of the shorter side's significant
// words (length > 2) find a mutual-substring partner on the other side.
func wordOverlapRatio(a, b string) float64 {
	aWords := significantTokens(a)
	bWords := significantTokens(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	shorter, longer := aWords, bWords
	if len(bWords) < len(aWords) {
		shorter, longer = bWords, aWords
	}

	matched := 0
	for _, sw := range shorter {
		for _, lw := range longer {
			if mutualSubstring(sw, lw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(shorter))
}

func significantTokens(s string) []string {
	var out []string
	for _, w := range tokenizeWords(strings.ToLower(s)) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}
