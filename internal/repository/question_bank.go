package repository

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"civicsprep-backend/internal/model"
)

// QuestionBank owns the fixed civics corpus and the answer correctness
// oracle. The corpus is loaded once at construction and never mutated.
type QuestionBank interface {
	GetAllQuestions() []model.CivicsQuestion
	GetRandomQuestion(excludeIDs map[int]bool) (*model.CivicsQuestion, bool)
	GetRandomQuestions(count int, excludeIDs map[int]bool) []model.CivicsQuestion
	ValidateAnswer(questionID int, candidate string) bool
	GetTotalQuestions() int
}

type questionBank struct {
	questions []model.CivicsQuestion
	byID      map[int]*model.CivicsQuestion
	rng       *rand.Rand
	mu        sync.Mutex
}

// NewQuestionBank builds a bank over the static civics corpus. The random
// source is injected so selection is deterministic under test.
func NewQuestionBank(rng *rand.Rand) QuestionBank {
	bank := &questionBank{
		questions: civicsQuestions,
		byID:      make(map[int]*model.CivicsQuestion, len(civicsQuestions)),
		rng:       rng,
	}
	for i := range bank.questions {
		bank.byID[bank.questions[i].ID] = &bank.questions[i]
	}
	return bank
}

// GetAllQuestions returns a copy of the corpus so callers cannot mutate
// the bank's backing slice.
func (b *questionBank) GetAllQuestions() []model.CivicsQuestion {
	out := make([]model.CivicsQuestion, len(b.questions))
	copy(out, b.questions)
	return out
}

func (b *questionBank) GetTotalQuestions() int {
	return len(b.questions)
}

// GetRandomQuestion picks one question whose id is not excluded, uniformly
// from the remaining pool. Returns (nil, false) when the pool is empty,
// which signals the caller to move the interview on rather than an error.
func (b *questionBank) GetRandomQuestion(excludeIDs map[int]bool) (*model.CivicsQuestion, bool) {
	pool := b.poolExcluding(excludeIDs)
	if len(pool) == 0 {
		return nil, false
	}
	b.mu.Lock()
	idx := b.rng.Intn(len(pool))
	b.mu.Unlock()
	q := pool[idx]
	return &q, true
}

// GetRandomQuestions returns up to count distinct questions from the
// non-excluded pool, fewer if the pool is smaller. No ordering guarantee.
func (b *questionBank) GetRandomQuestions(count int, excludeIDs map[int]bool) []model.CivicsQuestion {
	pool := b.poolExcluding(excludeIDs)
	if count > len(pool) {
		count = len(pool)
	}
	b.mu.Lock()
	b.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	b.mu.Unlock()
	return pool[:count]
}

func (b *questionBank) poolExcluding(excludeIDs map[int]bool) []model.CivicsQuestion {
	pool := make([]model.CivicsQuestion, 0, len(b.questions))
	for _, q := range b.questions {
		if !excludeIDs[q.ID] {
			pool = append(pool, q)
		}
	}
	return pool
}

// ValidateAnswer checks a free-form candidate against the question's set
// of acceptable phrasings. Unknown question ids fail closed.
func (b *questionBank) ValidateAnswer(questionID int, candidate string) bool {
	q, ok := b.byID[questionID]
	if !ok {
		return false
	}
	normCandidate := normalizeAnswerText(candidate)
	for _, answer := range q.Answers {
		if answerMatches(normCandidate, normalizeAnswerText(answer)) {
			return true
		}
	}
	return false
}

const shortAnswerLimit = 30

var (
	answerPunct  = regexp.MustCompile(`[.,;:!?()\[\]{}]`)
	answerSpaces = regexp.MustCompile(`[\s-]+`)
	answerDigits = regexp.MustCompile(`\d+`)
)

// normalizeAnswerText lowercases, strips punctuation, and collapses
// hyphen/whitespace runs to single spaces.
func normalizeAnswerText(s string) string {
	s = strings.ToLower(s)
	s = answerPunct.ReplaceAllString(s, "")
	s = answerSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// answerMatches compares one normalized candidate against one normalized
// canonical phrasing.
func answerMatches(candidate, canonical string) bool {
	// Numeric answers short-circuit full-text comparison. "How many"
	// questions are answered by the number alone, whatever surrounds it.
	candNums := answerDigits.FindAllString(candidate, -1)
	canonNums := answerDigits.FindAllString(canonical, -1)
	if len(candNums) > 0 && len(canonNums) > 0 {
		for _, cn := range candNums {
			for _, kn := range canonNums {
				if cn == kn {
					return true
				}
			}
		}
	}

	if candidate == canonical {
		return true
	}

	if len(canonical) < shortAnswerLimit {
		return shortAnswerMatches(candidate, canonical)
	}
	return longAnswerMatches(candidate, canonical)
}

// shortAnswerMatches handles short canonical answers: every significant
// canonical word must find a candidate word under the mutual-substring
// relation, or failing that, one important keyword must appear somewhere
// in the candidate.
func shortAnswerMatches(candidate, canonical string) bool {
	candWords := significantWords(candidate, 2)
	canonWords := significantWords(canonical, 2)

	if len(canonWords) > 0 {
		allMatched := true
		for _, kw := range canonWords {
			matched := false
			for _, cw := range candWords {
				if wordsRelate(kw, cw) {
					matched = true
					break
				}
			}
			if !matched {
				allMatched = false
				break
			}
		}
		if allMatched {
			return true
		}
	}

	for _, kw := range canonWords {
		if len(kw) > 4 && strings.Contains(candidate, kw) {
			return true
		}
	}
	return false
}

// longAnswerMatches handles long canonical answers: any one canonical
// keyword appearing in the candidate is enough.
func longAnswerMatches(candidate, canonical string) bool {
	for _, kw := range significantWords(canonical, 3) {
		if strings.Contains(candidate, kw) {
			return true
		}
	}
	return false
}

func significantWords(s string, minLen int) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		if len(w) > minLen {
			words = append(words, w)
		}
	}
	return words
}

// wordsRelate is the mutual-substring comparator used across the matching
// heuristics: equal, or either word contains the other.
func wordsRelate(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
