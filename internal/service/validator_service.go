package service

import (
	"fmt"
	"regexp"
	"strings"

	"civicsprep-backend/internal/model"
	"civicsprep-backend/internal/repository"
)

// Confidence values and matching thresholds are part of the observable
// acceptance contract; they are empirically tuned, not derived.
const (
	civicsValidConfidence   = 0.9
	civicsInvalidConfidence = 0.1

	numericDigitConfidence  = 0.95
	numericWordConfidence   = 0.9
	numericRejectConfidence = 0.2

	addressLenientConfidence    = 0.9
	addressMatchConfidence      = 0.9
	addressRejectConfidence     = 0.3
	addressMatchRatioThreshold  = 0.3
	addressOverlapMinShared     = 2
	addressOverlapConfidenceCap = 0.8

	identityConfidence = 0.8

	occupationLenientConfidence = 0.7
	occupationMatchConfidence   = 0.9
	occupationRejectConfidence  = 0.3
	occupationOverlapThreshold  = 0.7

	maritalRejectConfidence        = 0.3
	maritalCategoryMatchConfidence = 0.95
	maritalMismatchConfidence      = 0.7
	maritalNoReferenceConfidence   = 0.85

	travelDigitConfidence   = 0.85
	travelKeywordConfidence = 0.8
	travelWeakConfidence    = 0.6

	familyDigitConfidence = 0.9
	familyTextConfidence  = 0.8
	familyWeakConfidence  = 0.7

	yesNoConfidence       = 0.9
	yesNoRejectConfidence = 0.3
)

// questionType classifies what kind of answer the last officer utterance
// expects.
type questionType int

const (
	questionOther questionType = iota
	questionCivics
	questionNumeric
	questionAddress
	questionIdentity
	questionOccupation
	questionMarital
)

// ValidatorService scores a candidate applicant utterance against the
// answer type implied by the last officer message. It never errors: an
// unclassifiable or unmatched answer simply comes back invalid with a
// near-zero confidence, and the caller decides whether to escalate.
type ValidatorService interface {
	ValidateResponse(session *model.InterviewSession, utterance string) model.ValidationResult
}

type validatorService struct {
	bank repository.QuestionBank
}

func NewValidatorService(bank repository.QuestionBank) ValidatorService {
	return &validatorService{bank: bank}
}

func (v *validatorService) ValidateResponse(session *model.InterviewSession, utterance string) model.ValidationResult {
	officerText := lastOfficerMessage(session)
	if officerText == "" {
		return reject(0, "no officer question to validate against")
	}

	qType, expected := v.detectQuestionType(officerText, session)

	switch qType {
	case questionCivics:
		return v.validateCivics(session, utterance)
	case questionNumeric:
		return validateNumeric(utterance, expected)
	case questionAddress:
		return validateAddress(utterance, referenceAddress(session))
	case questionIdentity:
		// Deliberately never blocks progress: there is no reliable
		// ground truth for name or date-of-birth confirmations.
		return accept(identityConfidence, "identity confirmation accepted")
	case questionOccupation:
		return validateOccupation(utterance, referenceOccupation(session))
	case questionMarital:
		return validateMaritalStatus(utterance, referenceMaritalStatus(session))
	default:
		return v.validateOther(officerText, utterance)
	}
}

// detectQuestionType inspects the last officer message, not the formal
// stage: within the N-400 review the officer asks about several different
// fields. First match wins.
func (v *validatorService) detectQuestionType(officerText string, session *model.InterviewSession) (questionType, int) {
	text := strings.ToLower(officerText)

	// Numeric civics facts with hard-coded expected values.
	switch {
	case strings.Contains(text, "amendments") && strings.Contains(text, "constitution"),
		strings.Contains(text, "how many amendments"):
		return questionNumeric, 27
	case strings.Contains(text, "justices"), strings.Contains(text, "supreme court"):
		return questionNumeric, 9
	case strings.Contains(text, "how many") && strings.Contains(text, "states"):
		return questionNumeric, 50
	case strings.Contains(text, "bill of rights") && strings.Contains(text, "amend"):
		return questionNumeric, 10
	}

	// An open civics question delegates to the bank's answer oracle.
	if session.Stage == model.StageCivics && session.CurrentCivicsQuestion != nil {
		return questionCivics, 0
	}

	if strings.Contains(text, "address") || strings.Contains(text, "where do you live") {
		return questionAddress, 0
	}
	if strings.Contains(text, "name") || strings.Contains(text, "date of birth") || strings.Contains(text, "birthday") {
		return questionIdentity, 0
	}
	if strings.Contains(text, "occupation") || strings.Contains(text, "work") || strings.Contains(text, "job") {
		return questionOccupation, 0
	}
	if strings.Contains(text, "marital") || strings.Contains(text, "married") || strings.Contains(text, "single") {
		return questionMarital, 0
	}
	if strings.Contains(text, "how many") {
		if digits := digitRunPattern.FindString(text); digits != "" {
			var expected int
			fmt.Sscanf(digits, "%d", &expected)
			return questionNumeric, expected
		}
	}
	return questionOther, 0
}

func (v *validatorService) validateCivics(session *model.InterviewSession, utterance string) model.ValidationResult {
	current := session.CurrentCivicsQuestion
	if current == nil {
		return reject(0, "no civics question is open")
	}
	if v.bank.ValidateAnswer(current.ID, utterance) {
		return accept(civicsValidConfidence, "civics answer matched")
	}
	return model.ValidationResult{
		IsValid:       false,
		Confidence:    civicsInvalidConfidence,
		ShouldAdvance: false,
		Reason:        fmt.Sprintf("civics answer did not match; expected %q", current.Answer),
	}
}

// validateOther routes the free-form N-400 topics by keyword.
func (v *validatorService) validateOther(officerText, utterance string) model.ValidationResult {
	text := strings.ToLower(officerText)

	switch {
	case strings.Contains(text, "travel") || strings.Contains(text, "trip"):
		return validateTravel(utterance)
	case strings.Contains(text, "family") || strings.Contains(text, "children") || strings.Contains(text, "spouse"):
		return validateFamily(utterance)
	case strings.Contains(text, "legal") || strings.Contains(text, "arrest") || strings.Contains(text, "citizen"):
		return validateYesNo(utterance)
	case strings.Contains(text, "tax"):
		return validateYesNo(utterance)
	case strings.Contains(text, "constitution") || strings.Contains(text, "loyalty") || strings.Contains(text, "oath"):
		return validateYesNo(utterance)
	default:
		return reject(0, "could not classify the expected answer type")
	}
}

// validateTravel is deliberately permissive: travel answers are hard to
// validate without structured trip data.
func validateTravel(utterance string) model.ValidationResult {
	if digitRunPattern.MatchString(utterance) {
		return accept(travelDigitConfidence, "travel answer includes a count")
	}
	lower := strings.ToLower(utterance)
	for _, kw := range travelKeywords {
		if strings.Contains(lower, kw) {
			return accept(travelKeywordConfidence, "travel answer mentions a trip purpose")
		}
	}
	return accept(travelWeakConfidence, "travel answer accepted without corroboration")
}

func validateFamily(utterance string) model.ValidationResult {
	if digitRunPattern.MatchString(utterance) {
		return accept(familyDigitConfidence, "family answer includes a count")
	}
	trimmed := strings.TrimSpace(utterance)
	if len(trimmed) > 3 && !matchesPhraseSet(trimmed, affirmativePhrases) && !matchesPhraseSet(trimmed, negativePhrases) {
		return accept(familyTextConfidence, "family answer has descriptive content")
	}
	return accept(familyWeakConfidence, "family answer accepted without corroboration")
}

func validateYesNo(utterance string) model.ValidationResult {
	if matchesPhraseSet(utterance, affirmativePhrases) || matchesPhraseSet(utterance, negativePhrases) {
		return accept(yesNoConfidence, "recognized yes/no answer")
	}
	return reject(yesNoRejectConfidence, "expected a yes or no answer")
}

func validateOccupation(utterance, reference string) model.ValidationResult {
	if reference == "" {
		return accept(occupationLenientConfidence, "no reference occupation on file")
	}
	if wordOverlapRatio(reference, utterance) >= occupationOverlapThreshold {
		return accept(occupationMatchConfidence, "occupation matches the N-400 record")
	}
	return reject(occupationRejectConfidence, fmt.Sprintf("occupation does not match the record %q", reference))
}

func validateMaritalStatus(utterance, reference string) model.ValidationResult {
	category := maritalCategory(utterance)
	if category == "" {
		return reject(maritalRejectConfidence, "did not recognize a marital status")
	}
	if reference == "" {
		return accept(maritalNoReferenceConfidence, "recognized marital status, nothing on file to compare")
	}
	if maritalCategory(reference) == category {
		return accept(maritalCategoryMatchConfidence, "marital status matches the N-400 record")
	}
	// A recognized status that merely differs from the form is treated
	// as plausible, not wrong.
	return accept(maritalMismatchConfidence, "recognized marital status differs from the N-400 record")
}

var digitRunPattern = regexp.MustCompile(`\d+`)

func lastOfficerMessage(session *model.InterviewSession) string {
	for i := len(session.Messages) - 1; i >= 0; i-- {
		if session.Messages[i].Role == model.RoleOfficer {
			return session.Messages[i].Content
		}
	}
	return ""
}

func referenceAddress(session *model.InterviewSession) string {
	if session.Context.FormData == nil {
		return ""
	}
	return session.Context.FormData.Address
}

func referenceOccupation(session *model.InterviewSession) string {
	if session.Context.FormData == nil {
		return ""
	}
	return session.Context.FormData.Occupation
}

func referenceMaritalStatus(session *model.InterviewSession) string {
	if session.Context.FormData == nil {
		return ""
	}
	return session.Context.FormData.MaritalStatus
}

func accept(confidence float64, reason string) model.ValidationResult {
	return model.ValidationResult{
		IsValid:       true,
		Confidence:    confidence,
		ShouldAdvance: true,
		Reason:        reason,
	}
}

func reject(confidence float64, reason string) model.ValidationResult {
	return model.ValidationResult{
		IsValid:       false,
		Confidence:    confidence,
		ShouldAdvance: false,
		Reason:        reason,
	}
}
