package service

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicsprep-backend/internal/llm"
	"civicsprep-backend/internal/model"
	"civicsprep-backend/internal/repository"
	"civicsprep-backend/utilities"
)

type interviewFixture struct {
	svc   InterviewService
	store repository.SessionStore
	bus   *utilities.EventBus
}

func newInterviewFixture() *interviewFixture {
	store := repository.NewMemorySessionStore()
	bank := repository.NewQuestionBank(rand.New(rand.NewSource(7)))
	officer := NewOfficerService(nil, rand.New(rand.NewSource(7)))
	bus := utilities.NewEventBus()

	svc := NewInterviewService(store, bank, NewStageService(), NewValidatorService(bank), officer, bus)
	return &interviewFixture{svc: svc, store: store, bus: bus}
}

func TestStartInterviewRequiresName(t *testing.T) {
	f := newInterviewFixture()

	_, err := f.svc.StartInterview(context.Background(), model.ApplicantContext{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidContext)
}

func TestStartInterviewGreetsApplicant(t *testing.T) {
	f := newInterviewFixture()

	result, err := f.svc.StartInterview(context.Background(), model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)

	assert.Equal(t, model.StageGreeting, result.Session.Stage)
	assert.Equal(t, model.StageGreeting, result.Session.LastPromptedStage)
	require.Len(t, result.Session.Messages, 1)
	assert.Equal(t, model.RoleOfficer, result.Session.Messages[0].Role)
	assert.Contains(t, result.Opener.Content, "Maria Lopez")
	assert.True(t, result.Opener.ShouldSpeak)
	assert.NotEmpty(t, result.Opener.SpeechText)
}

func TestSubmitResponseInputErrors(t *testing.T) {
	f := newInterviewFixture()

	_, err := f.svc.SubmitResponse(context.Background(), "whatever", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.SubmitResponse(context.Background(), "no-such-session", "hello")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestEarlyStagesAdvanceRegardlessOfAnswer(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)
	sid := start.Session.SessionID

	// A mumbled greeting reply still moves the interview to identity.
	turn, err := f.svc.SubmitResponse(ctx, sid, "um")
	require.NoError(t, err)
	assert.Equal(t, model.StageIdentity, turn.Stage)
	assert.Contains(t, turn.Officer.Content, "name")

	// Applicant turn carries a fluency evaluation.
	messages, err := f.svc.GetMessages(sid)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, model.RoleApplicant, messages[1].Role)
	require.NotNil(t, messages[1].Fluency)
	assert.Regexp(t, `^(10|[1-9])/10$`, messages[1].Fluency.Score)
}

func TestSubmitResponseSurfacesFluency(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)

	turn, err := f.svc.SubmitResponse(ctx, start.Session.SessionID, "Yes, I am ready to begin today")
	require.NoError(t, err)

	require.NotNil(t, turn.Fluency)
	assert.Equal(t, "6/10", turn.Fluency.Score)
	assert.NotEmpty(t, turn.Fluency.Tip)

	// The same evaluation lands on the stored applicant message.
	messages, err := f.svc.GetMessages(start.Session.SessionID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, turn.Fluency, messages[1].Fluency)
}

func TestClosingStageTurnStillAnswers(t *testing.T) {
	store := repository.NewMemorySessionStore()
	bank := repository.NewQuestionBank(rand.New(rand.NewSource(7)))
	client := &recordingCompletionClient{
		completion: &llm.OfficerCompletion{OfficialResponse: "You're welcome. We are all done for today."},
	}
	officer := NewOfficerService(client, rand.New(rand.NewSource(7)))
	svc := NewInterviewService(store, bank, NewStageService(), NewValidatorService(bank), officer, utilities.NewEventBus())

	start, err := svc.StartInterview(context.Background(), model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)
	sid := start.Session.SessionID
	store.Update(sid, func(sess *model.InterviewSession) {
		sess.Stage = model.StageClosing
		sess.LastPromptedStage = model.StageClosing
	})

	turn, err := svc.SubmitResponse(context.Background(), sid, "Thank you so much, officer")
	require.NoError(t, err)

	// Past the final stage the officer reacts to the applicant's words
	// rather than replaying the stage opener.
	assert.Equal(t, "Thank you so much, officer", client.lastUser)
	assert.Equal(t, "You're welcome. We are all done for today.", turn.Officer.Content)
	assert.Equal(t, model.StageClosing, turn.Stage)
	assert.False(t, turn.InterviewComplete)
}

func TestNoFormPathSkipsN400Review(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Ivan Petrov"})
	require.NoError(t, err)
	sid := start.Session.SessionID

	_, err = f.svc.SubmitResponse(ctx, sid, "Yes, I am ready")
	require.NoError(t, err)

	turn, err := f.svc.SubmitResponse(ctx, sid, "Ivan Petrov, born March 3rd 1985")
	require.NoError(t, err)
	assert.Equal(t, model.StageOath, turn.Stage)
}

func TestN400ReviewEntryAndQuestionFlow(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	form := &model.N400FormData{
		Address:       "123 Main Street, Los Angeles, CA",
		Occupation:    "software engineer",
		MaritalStatus: "married",
	}
	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Maria Lopez", FormData: form})
	require.NoError(t, err)
	sid := start.Session.SessionID

	_, err = f.svc.SubmitResponse(ctx, sid, "Yes, I am ready")
	require.NoError(t, err)

	turn, err := f.svc.SubmitResponse(ctx, sid, "Maria Lopez, June 1st 1990")
	require.NoError(t, err)
	assert.Equal(t, model.StageN400Review, turn.Stage)

	// Entry appended only the stage announcement; the first question is
	// pending as an auto message.
	auto, err := f.svc.AutoMessage(ctx, sid)
	require.NoError(t, err)
	require.True(t, auto.Available)
	assert.Contains(t, auto.Officer.Content, "address")

	session, err := f.svc.GetSession(sid)
	require.NoError(t, err)
	assert.Equal(t, 1, session.N400QuestionsAsked)

	// No second auto message while the question is unanswered.
	auto, err = f.svc.AutoMessage(ctx, sid)
	require.NoError(t, err)
	assert.False(t, auto.Available)

	// Answering schedules the next review question in the same turn.
	turn, err = f.svc.SubmitResponse(ctx, sid, "123 Main Street, Los Angeles, CA")
	require.NoError(t, err)
	assert.Equal(t, model.StageN400Review, turn.Stage)
	assert.Contains(t, turn.Officer.Content, "occupation")

	session, err = f.svc.GetSession(sid)
	require.NoError(t, err)
	assert.Equal(t, 2, session.N400QuestionsAsked)
}

func TestCivicsFeedbackAndScheduling(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)
	sid := start.Session.SessionID

	// Put the session mid-civics with a known open question.
	f.store.Update(sid, func(s *model.InterviewSession) {
		s.Stage = model.StageCivics
		s.LastPromptedStage = model.StageCivics
		s.CivicsQuestionsAsked = 1
		s.CivicsQuestionsUsed = []int{1}
		s.CurrentCivicsQuestion = &model.CurrentCivicsQuestion{
			ID:       1,
			Question: "What is the supreme law of the land?",
			Answer:   "the Constitution",
		}
	})
	f.store.AddMessage(sid, model.InterviewMessage{
		Role:      model.RoleOfficer,
		Content:   "Question 1: What is the supreme law of the land?",
		Timestamp: time.Now(),
	})

	turn, err := f.svc.SubmitResponse(ctx, sid, "the constitution")
	require.NoError(t, err)
	assert.True(t, turn.Validation.IsValid)
	require.NotNil(t, turn.CivicsCorrect)
	assert.True(t, *turn.CivicsCorrect)
	assert.Equal(t, "That's correct.", turn.Feedback)
	assert.Contains(t, turn.Officer.Content, "That's correct.")
	assert.Contains(t, turn.Officer.Content, "Question 2:")

	session, err := f.svc.GetSession(sid)
	require.NoError(t, err)
	assert.Equal(t, 1, session.CivicsCorrect)
	assert.Equal(t, 2, session.CivicsQuestionsAsked)
	require.NotNil(t, session.CurrentCivicsQuestion)
	assert.NotEqual(t, 1, session.CurrentCivicsQuestion.ID)
	assert.Len(t, session.CivicsQuestionsUsed, 2)
}

func TestCivicsWrongAnswerNamesExpected(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)
	sid := start.Session.SessionID

	f.store.Update(sid, func(s *model.InterviewSession) {
		s.Stage = model.StageCivics
		s.LastPromptedStage = model.StageCivics
		s.CivicsQuestionsAsked = 1
		s.CivicsQuestionsUsed = []int{1}
		s.CurrentCivicsQuestion = &model.CurrentCivicsQuestion{
			ID:       1,
			Question: "What is the supreme law of the land?",
			Answer:   "the Constitution",
		}
	})
	f.store.AddMessage(sid, model.InterviewMessage{
		Role:      model.RoleOfficer,
		Content:   "Question 1: What is the supreme law of the land?",
		Timestamp: time.Now(),
	})

	turn, err := f.svc.SubmitResponse(ctx, sid, "the declaration of independence")
	require.NoError(t, err)
	assert.False(t, turn.Validation.IsValid)
	require.NotNil(t, turn.CivicsCorrect)
	assert.False(t, *turn.CivicsCorrect)
	assert.Contains(t, turn.Officer.Content, "That's not quite right. The answer is the Constitution.")

	session, err := f.svc.GetSession(sid)
	require.NoError(t, err)
	assert.Zero(t, session.CivicsCorrect)
}

func TestFullInterviewReachesClosingAndPublishes(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	completed := make(chan *model.InterviewSession, 1)
	f.bus.Subscribe(EventInterviewCompleted, func(data interface{}) {
		if s, ok := data.(*model.InterviewSession); ok {
			completed <- s
		}
	})

	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)
	sid := start.Session.SessionID

	_, err = f.svc.SubmitResponse(ctx, sid, "Yes, I am ready")
	require.NoError(t, err)
	_, err = f.svc.SubmitResponse(ctx, sid, "Maria Lopez, June 1st 1990")
	require.NoError(t, err)

	turn, err := f.svc.SubmitResponse(ctx, sid, "Yes, I swear to tell the truth")
	require.NoError(t, err)
	assert.Equal(t, model.StageCivics, turn.Stage)

	// The civics stage opens with an announcement; the first question
	// arrives as an auto message.
	auto, err := f.svc.AutoMessage(ctx, sid)
	require.NoError(t, err)
	require.True(t, auto.Available)
	assert.Contains(t, auto.Officer.Content, "Question 1:")

	for i := 1; i <= 10; i++ {
		session, err := f.svc.GetSession(sid)
		require.NoError(t, err)
		require.NotNil(t, session.CurrentCivicsQuestion, "question %d not scheduled", i)
		assert.Equal(t, i, session.CivicsQuestionsAsked)

		turn, err = f.svc.SubmitResponse(ctx, sid, session.CurrentCivicsQuestion.Answer)
		require.NoError(t, err)
		if i < 10 {
			assert.Equal(t, model.StageCivics, turn.Stage)
			assert.Contains(t, turn.Officer.Content, fmt.Sprintf("Question %d:", i+1))
		}
	}
	assert.Equal(t, model.StageReading, turn.Stage)

	session, err := f.svc.GetSession(sid)
	require.NoError(t, err)
	assert.Equal(t, 10, session.CivicsQuestionsAsked)
	assert.Len(t, session.CivicsQuestionsUsed, 10)
	seen := make(map[int]bool)
	for _, id := range session.CivicsQuestionsUsed {
		assert.False(t, seen[id], "question %d asked twice", id)
		seen[id] = true
	}

	turn, err = f.svc.SubmitResponse(ctx, sid, "Who was the first President of the United States?")
	require.NoError(t, err)
	assert.Equal(t, model.StageWriting, turn.Stage)

	turn, err = f.svc.SubmitResponse(ctx, sid, "Washington was the first President.")
	require.NoError(t, err)
	assert.Equal(t, model.StageClosing, turn.Stage)
	assert.True(t, turn.InterviewComplete)

	select {
	case final := <-completed:
		assert.Equal(t, sid, final.SessionID)
		assert.Equal(t, model.StageClosing, final.Stage)
	case <-time.After(2 * time.Second):
		t.Fatal("completion event was not published")
	}

	// No auto message pending in the terminal stage.
	auto, err = f.svc.AutoMessage(ctx, sid)
	require.NoError(t, err)
	assert.False(t, auto.Available)
}

func TestAutoMessageNotAvailableAfterStart(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()

	start, err := f.svc.StartInterview(ctx, model.ApplicantContext{Name: "Maria Lopez"})
	require.NoError(t, err)

	auto, err := f.svc.AutoMessage(ctx, start.Session.SessionID)
	require.NoError(t, err)
	assert.False(t, auto.Available)

	_, err = f.svc.AutoMessage(ctx, "no-such-session")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
