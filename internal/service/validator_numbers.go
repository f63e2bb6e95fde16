package service

import (
	"fmt"
	"strconv"
	"strings"

	"civicsprep-backend/internal/model"
)

// numberWords covers the spoken numbers the interview actually needs:
// one through thirty, the hyphenated composed forms, and the round values
// that show up in civics facts.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20,
	"twenty-one": 21, "twenty-two": 22, "twenty-three": 23, "twenty-four": 24,
	"twenty-five": 25, "twenty-six": 26, "twenty-seven": 27, "twenty-eight": 28,
	"twenty-nine": 29,
	"thirty": 30, "fifty": 50, "hundred": 100,
}

// multiWordNumbers covers spellings written as separate words.
var multiWordNumbers = map[string]int{
	"twenty one":   21,
	"twenty two":   22,
	"twenty three": 23,
	"twenty four":  24,
	"twenty five":  25,
	"twenty six":   26,
	"twenty seven": 27,
	"twenty eight": 28,
	"twenty nine":  29,
	"one hundred":  100,
}

// validateNumeric accepts a candidate that expresses the expected integer
// as digits, a number word, or a multi-word spelling.
func validateNumeric(utterance string, expected int) model.ValidationResult {
	for _, run := range digitRunPattern.FindAllString(utterance, -1) {
		if n, err := strconv.Atoi(run); err == nil && n == expected {
			return accept(numericDigitConfidence, "numeric answer matches")
		}
	}

	lower := strings.ToLower(utterance)
	for _, word := range tokenizeWords(lower) {
		if numberWords[word] == expected && numberWords[word] != 0 || (expected == 0 && word == "zero") {
			return accept(numericWordConfidence, "number word matches")
		}
	}

	for phrase, value := range multiWordNumbers {
		if value == expected && strings.Contains(lower, phrase) {
			return accept(numericWordConfidence, "spelled-out number matches")
		}
	}

	return reject(numericRejectConfidence, fmt.Sprintf("expected the number %d", expected))
}
