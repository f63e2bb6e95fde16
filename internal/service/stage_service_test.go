package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"civicsprep-backend/internal/model"
)

func newStageSession(form *model.N400FormData) *model.InterviewSession {
	return &model.InterviewSession{
		Stage:                model.StageGreeting,
		Context:              model.ApplicantContext{Name: "Maria Lopez", FormData: form},
		TotalN400Questions:   6,
		TotalCivicsQuestions: 10,
	}
}

func TestFullProgressionWithForm(t *testing.T) {
	svc := NewStageService()
	session := newStageSession(&model.N400FormData{Address: "123 Main Street"})

	adv := svc.AdvanceStageIfNeeded(session)
	assert.True(t, adv.Advanced)
	assert.Equal(t, model.StageIdentity, session.Stage)

	adv = svc.AdvanceStageIfNeeded(session)
	assert.True(t, adv.Advanced)
	assert.Equal(t, model.StageN400Review, session.Stage)

	// Gated: stalls until every review question has been asked, and a
	// repeated evaluation without counter changes stays put.
	adv = svc.AdvanceStageIfNeeded(session)
	assert.False(t, adv.Advanced)
	adv = svc.AdvanceStageIfNeeded(session)
	assert.False(t, adv.Advanced)
	assert.Equal(t, model.StageN400Review, session.Stage)

	session.N400QuestionsAsked = session.TotalN400Questions
	adv = svc.AdvanceStageIfNeeded(session)
	assert.True(t, adv.Advanced)
	assert.Equal(t, model.StageOath, session.Stage)

	adv = svc.AdvanceStageIfNeeded(session)
	assert.True(t, adv.Advanced)
	assert.Equal(t, model.StageCivics, session.Stage)

	session.CivicsQuestionsAsked = 4
	adv = svc.AdvanceStageIfNeeded(session)
	assert.False(t, adv.Advanced)

	session.CivicsQuestionsAsked = session.TotalCivicsQuestions
	adv = svc.AdvanceStageIfNeeded(session)
	assert.True(t, adv.Advanced)
	assert.Equal(t, model.StageReading, session.Stage)

	adv = svc.AdvanceStageIfNeeded(session)
	assert.Equal(t, model.StageWriting, session.Stage)

	adv = svc.AdvanceStageIfNeeded(session)
	assert.True(t, adv.Advanced)
	assert.Equal(t, model.StageClosing, session.Stage)
}

func TestSkipsN400ReviewWithoutForm(t *testing.T) {
	svc := NewStageService()
	session := newStageSession(nil)
	session.Stage = model.StageIdentity

	adv := svc.AdvanceStageIfNeeded(session)
	assert.True(t, adv.Advanced)
	assert.Equal(t, model.StageIdentity, adv.From)
	assert.Equal(t, model.StageOath, session.Stage)
}

func TestClosingIsTerminal(t *testing.T) {
	svc := NewStageService()
	session := newStageSession(nil)
	session.Stage = model.StageClosing

	for i := 0; i < 3; i++ {
		adv := svc.AdvanceStageIfNeeded(session)
		assert.False(t, adv.Advanced)
		assert.Equal(t, model.StageClosing, session.Stage)
	}
}
