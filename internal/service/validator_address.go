package service

import (
	"regexp"
	"strings"

	"civicsprep-backend/internal/model"
)

// Address matching tolerates the many ways people say the same street
// address out loud: abbreviations, directionals, ordinals, and missing
// elements. With no reference address on file it only sanity-checks the
// shape of the answer.

var directionalExpansions = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"ne": "northeast", "nw": "northwest", "se": "southeast", "sw": "southwest",
}

var streetTypeExpansions = map[string]string{
	"st": "street", "ave": "avenue", "rd": "road", "dr": "drive",
	"ln": "lane", "blvd": "boulevard", "apt": "apartment",
}

var streetTypeWords = map[string]bool{
	"street": true, "avenue": true, "road": true, "drive": true,
	"lane": true, "boulevard": true,
}

var stateExpansions = map[string]string{
	"al": "alabama", "ak": "alaska", "az": "arizona", "ar": "arkansas",
	"ca": "california", "co": "colorado", "ct": "connecticut", "de": "delaware",
	"fl": "florida", "ga": "georgia", "hi": "hawaii", "id": "idaho",
	"il": "illinois", "in": "indiana", "ia": "iowa", "ks": "kansas",
	"ky": "kentucky", "la": "louisiana", "me": "maine", "md": "maryland",
	"ma": "massachusetts", "mi": "michigan", "mn": "minnesota", "ms": "mississippi",
	"mo": "missouri", "mt": "montana", "ne": "nebraska", "nv": "nevada",
	"nh": "new hampshire", "nj": "new jersey", "nm": "new mexico", "ny": "new york",
	"nc": "north carolina", "nd": "north dakota", "oh": "ohio", "ok": "oklahoma",
	"or": "oregon", "pa": "pennsylvania", "ri": "rhode island", "sc": "south carolina",
	"sd": "south dakota", "tn": "tennessee", "tx": "texas", "ut": "utah",
	"vt": "vermont", "va": "virginia", "wa": "washington", "wv": "west virginia",
	"wi": "wisconsin", "wy": "wyoming",
}

var stateNames = buildStateNameSet()

func buildStateNameSet() map[string]bool {
	names := make(map[string]bool, len(stateExpansions))
	for _, full := range stateExpansions {
		names[full] = true
	}
	return names
}

var addressLeadIns = []string{
	"my current address is", "my address is", "my home address is",
	"the address is", "i live at", "i live in", "it is", "it's", "its",
}

var (
	ordinalSuffixPattern = regexp.MustCompile(`(\d+)(st|nd|rd|th)\b`)
	unitNumberPattern    = regexp.MustCompile(`#\s*(\d+)`)
	addressPunctPattern  = regexp.MustCompile(`[.,;:!?]`)
	alphaRunPattern      = regexp.MustCompile(`[a-zA-Z]{2,}`)
	allDigitsPattern     = regexp.MustCompile(`^\d+$`)
)

type addressElements struct {
	streetNumber string
	streetName   string
	city         string
	state        string
}

// validateAddress scores a spoken address. With no reference on file it
// accepts anything shaped like an address: a digit run plus an alphabetic
// run.
func validateAddress(utterance, reference string) model.ValidationResult {
	if reference == "" {
		if digitRunPattern.MatchString(utterance) && alphaRunPattern.MatchString(utterance) {
			return accept(addressLenientConfidence, "address shape accepted, nothing on file to compare")
		}
		return reject(addressRejectConfidence, "answer does not look like an address")
	}

	candNorm := normalizeAddress(utterance)
	refNorm := normalizeAddress(reference)

	candElems := extractAddressElements(candNorm)
	refElems := extractAddressElements(refNorm)

	compared, matched := 0, 0
	pairs := [][2]string{
		{candElems.streetNumber, refElems.streetNumber},
		{candElems.streetName, refElems.streetName},
		{candElems.city, refElems.city},
		{candElems.state, refElems.state},
	}
	for _, p := range pairs {
		if p[0] == "" || p[1] == "" {
			continue
		}
		compared++
		if mutualSubstring(p[0], p[1]) {
			matched++
		}
	}

	if compared == 0 {
		return addressWordOverlap(candNorm, refNorm)
	}
	if matched >= 1 || float64(matched)/float64(compared) >= addressMatchRatioThreshold {
		return accept(addressMatchConfidence, "address elements match the N-400 record")
	}
	return reject(addressRejectConfidence, "address does not match the N-400 record")
}

// addressWordOverlap is the fallback when no structured elements could be
// pulled out of either string.
func addressWordOverlap(candidate, reference string) model.ValidationResult {
	candWords := significantTokens(candidate)
	refWords := significantTokens(reference)
	if len(candWords) == 0 || len(refWords) == 0 {
		return reject(addressRejectConfidence, "address could not be compared")
	}

	shared := 0
	for _, cw := range candWords {
		for _, rw := range refWords {
			if cw == rw {
				shared++
				break
			}
		}
	}
	if shared < addressOverlapMinShared {
		return reject(addressRejectConfidence, "address shares too few words with the N-400 record")
	}

	smaller := len(candWords)
	if len(refWords) < smaller {
		smaller = len(refWords)
	}
	confidence := addressOverlapConfidenceCap * float64(shared) / float64(smaller)
	if confidence > addressOverlapConfidenceCap {
		confidence = addressOverlapConfidenceCap
	}
	return accept(confidence, "address word overlap with the N-400 record")
}

// normalizeAddress lowercases and rewrites the spoken-address variants
// into one canonical vocabulary.
func normalizeAddress(s string) string {
	s = strings.ToLower(s)
	s = addressPunctPattern.ReplaceAllString(s, " ")
	s = unitNumberPattern.ReplaceAllString(s, "apartment $1")
	s = ordinalSuffixPattern.ReplaceAllString(s, "$1")

	s = strings.Join(strings.Fields(s), " ")
	for _, lead := range addressLeadIns {
		if strings.HasPrefix(s, lead+" ") {
			s = strings.TrimPrefix(s, lead+" ")
			break
		}
	}

	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if full, ok := directionalExpansions[tok]; ok {
			tokens[i] = full
			continue
		}
		if full, ok := streetTypeExpansions[tok]; ok {
			tokens[i] = full
			continue
		}
		if full, ok := stateExpansions[tok]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " ")
}

// extractAddressElements pulls street number, street name, city, and
// state out of a normalized address using keyword boundaries. Any element
// may come back empty.
func extractAddressElements(normalized string) addressElements {
	tokens := strings.Fields(normalized)
	var elems addressElements

	numberIdx := -1
	for i, tok := range tokens {
		if allDigitsPattern.MatchString(tok) {
			elems.streetNumber = tok
			numberIdx = i
			break
		}
	}

	streetEnd := numberIdx
	if numberIdx >= 0 {
		var streetWords []string
		for i := numberIdx + 1; i < len(tokens); i++ {
			streetWords = append(streetWords, tokens[i])
			streetEnd = i
			if streetTypeWords[tokens[i]] {
				break
			}
			if len(streetWords) == 2 && !streetTypeWords[tokens[i]] {
				break
			}
		}
		elems.streetName = strings.Join(streetWords, " ")
	}

	stateIdx := len(tokens)
	for i := len(tokens) - 1; i >= 0; i-- {
		if i+1 < len(tokens) && stateNames[tokens[i]+" "+tokens[i+1]] {
			elems.state = tokens[i] + " " + tokens[i+1]
			stateIdx = i
			break
		}
		if stateNames[tokens[i]] {
			elems.state = tokens[i]
			stateIdx = i
			break
		}
	}

	var cityWords []string
	for i := streetEnd + 1; i < stateIdx && i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "apartment" || tok == "unit" || tok == "suite" || allDigitsPattern.MatchString(tok) {
			continue
		}
		cityWords = append(cityWords, tok)
	}
	elems.city = strings.Join(cityWords, " ")

	return elems
}
