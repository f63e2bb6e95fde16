package service

import (
	"regexp"
	"strconv"
)

// speechText rewrites an officer utterance for a text-to-speech engine.
// Digits become spoken words and form numbers get their spoken names so
// the synthesized voice does not spell them out.
func speechText(content string) string {
	out := formNumberPattern.ReplaceAllString(content, "N four hundred")
	out = speechDigitPattern.ReplaceAllStringFunc(out, func(run string) string {
		n, err := strconv.Atoi(run)
		if err != nil {
			return run
		}
		if spoken, ok := spokenNumber(n); ok {
			return spoken
		}
		return run
	})
	return out
}

var (
	formNumberPattern  = regexp.MustCompile(`\bN-?400\b`)
	speechDigitPattern = regexp.MustCompile(`\d+`)
)

var spokenOnes = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var spokenTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// spokenNumber spells 0..999. Larger values stay as digits; nothing the
// interview says goes beyond a few hundred.
func spokenNumber(n int) (string, bool) {
	if n < 0 || n > 999 {
		return "", false
	}
	if n < 20 {
		return spokenOnes[n], true
	}
	if n < 100 {
		word := spokenTens[n/10]
		if n%10 != 0 {
			word += "-" + spokenOnes[n%10]
		}
		return word, true
	}
	word := spokenOnes[n/100] + " hundred"
	if rest := n % 100; rest != 0 {
		restWord, _ := spokenNumber(rest)
		word += " " + restWord
	}
	return word, true
}
