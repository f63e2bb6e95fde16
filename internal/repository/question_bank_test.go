package repository

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank() QuestionBank {
	return NewQuestionBank(rand.New(rand.NewSource(1)))
}

func TestValidateAnswer(t *testing.T) {
	bank := newTestBank()

	tests := []struct {
		name      string
		id        int
		candidate string
		want      bool
	}{
		{"exact match", 1, "the Constitution", true},
		{"case and punctuation ignored", 1, "The constitution!", true},
		{"numeric answer embedded in prose", 7, "I think there are 27 amendments", true},
		{"wrong number rejected", 7, "there are 12", false},
		{"keyword phrasing accepted", 5, "it is called the bill of rights", true},
		{"wrong answer rejected", 1, "the president", false},
		{"unknown question id fails closed", 9999, "anything", false},
		{"empty candidate rejected", 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bank.ValidateAnswer(tt.id, tt.candidate))
		})
	}
}

func TestGetAllQuestionsReturnsCopy(t *testing.T) {
	bank := newTestBank()

	qs := bank.GetAllQuestions()
	require.NotEmpty(t, qs)
	original := qs[0].Question

	qs[0].Question = "tampered"
	assert.Equal(t, original, bank.GetAllQuestions()[0].Question)
}

func TestGetRandomQuestionHonorsExclusions(t *testing.T) {
	bank := newTestBank()

	exclude := make(map[int]bool)
	for _, q := range bank.GetAllQuestions() {
		if q.ID != 42 {
			exclude[q.ID] = true
		}
	}

	q, ok := bank.GetRandomQuestion(exclude)
	require.True(t, ok)
	assert.Equal(t, 42, q.ID)
}

func TestGetRandomQuestionExhaustedPool(t *testing.T) {
	bank := newTestBank()

	exclude := make(map[int]bool)
	for _, q := range bank.GetAllQuestions() {
		exclude[q.ID] = true
	}

	q, ok := bank.GetRandomQuestion(exclude)
	assert.False(t, ok)
	assert.Nil(t, q)
}

func TestGetRandomQuestionVisitsEveryQuestionOnce(t *testing.T) {
	bank := newTestBank()
	total := bank.GetTotalQuestions()

	exclude := make(map[int]bool)
	draws := 0
	for {
		q, ok := bank.GetRandomQuestion(exclude)
		if !ok {
			break
		}
		require.False(t, exclude[q.ID], "question %d drawn twice", q.ID)
		exclude[q.ID] = true
		draws++
		require.LessOrEqual(t, draws, total)
	}
	assert.Equal(t, total, draws)
}

func TestGetRandomQuestionsDistinct(t *testing.T) {
	bank := newTestBank()

	qs := bank.GetRandomQuestions(10, nil)
	require.Len(t, qs, 10)

	seen := make(map[int]bool)
	for _, q := range qs {
		assert.False(t, seen[q.ID], "question %d returned twice", q.ID)
		seen[q.ID] = true
	}
}

func TestGetRandomQuestionsClampsToPool(t *testing.T) {
	bank := newTestBank()
	total := bank.GetTotalQuestions()

	qs := bank.GetRandomQuestions(total+50, nil)
	assert.Len(t, qs, total)
}

func TestCorpusIntegrity(t *testing.T) {
	bank := newTestBank()

	require.NotZero(t, bank.GetTotalQuestions())
	ids := make(map[int]bool)
	for _, q := range bank.GetAllQuestions() {
		assert.False(t, ids[q.ID], "duplicate question id %d", q.ID)
		ids[q.ID] = true
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Answers, "question %d has no answers", q.ID)
		assert.NotEmpty(t, q.Category, "question %d has no category", q.ID)
	}
}
