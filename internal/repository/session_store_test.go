package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicsprep-backend/internal/model"
)

func TestCreateSetsQuestionTotals(t *testing.T) {
	store := NewMemorySessionStore()

	withForm := store.Create(model.ApplicantContext{
		Name:     "Maria Lopez",
		FormData: &model.N400FormData{Address: "123 Main Street"},
	})
	assert.Equal(t, model.StageGreeting, withForm.Stage)
	assert.Equal(t, 6, withForm.TotalN400Questions)
	assert.Equal(t, 10, withForm.TotalCivicsQuestions)
	assert.NotEmpty(t, withForm.SessionID)

	withoutForm := store.Create(model.ApplicantContext{Name: "Ivan Petrov"})
	assert.Equal(t, 3, withoutForm.TotalN400Questions)
	assert.NotEqual(t, withForm.SessionID, withoutForm.SessionID)
}

func TestGetUnknownSession(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetReturnsSnapshot(t *testing.T) {
	store := NewMemorySessionStore()
	created := store.Create(model.ApplicantContext{Name: "Maria Lopez"})

	store.AddMessage(created.SessionID, model.InterviewMessage{
		Role: model.RoleOfficer, Content: "Good morning", Timestamp: time.Now(),
	})

	snap, err := store.Get(created.SessionID)
	require.NoError(t, err)
	require.Len(t, snap.Messages, 1)

	// Mutating the snapshot must not leak into the store.
	snap.Messages[0].Content = "tampered"
	snap.Stage = model.StageClosing

	fresh, err := store.Get(created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Good morning", fresh.Messages[0].Content)
	assert.Equal(t, model.StageGreeting, fresh.Stage)
}

func TestUpdateMutatesStoredSession(t *testing.T) {
	store := NewMemorySessionStore()
	created := store.Create(model.ApplicantContext{Name: "Maria Lopez"})

	store.Update(created.SessionID, func(s *model.InterviewSession) {
		s.Stage = model.StageIdentity
		s.QuestionsAsked = 3
	})

	got, err := store.Get(created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StageIdentity, got.Stage)
	assert.Equal(t, 3, got.QuestionsAsked)
}

func TestMutationPanicsOnUnknownSession(t *testing.T) {
	store := NewMemorySessionStore()

	assert.Panics(t, func() {
		store.Update("no-such-session", func(s *model.InterviewSession) {})
	})
	assert.Panics(t, func() {
		store.AddMessage("no-such-session", model.InterviewMessage{})
	})
}

func TestDelete(t *testing.T) {
	store := NewMemorySessionStore()
	created := store.Create(model.ApplicantContext{Name: "Maria Lopez"})

	store.Delete(created.SessionID)

	_, err := store.Get(created.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting twice is a no-op.
	store.Delete(created.SessionID)
}

func TestCleanupOldSessions(t *testing.T) {
	store := NewMemorySessionStore()

	stale := store.Create(model.ApplicantContext{Name: "Old"})
	store.AddMessage(stale.SessionID, model.InterviewMessage{
		Role: model.RoleOfficer, Content: "hello", Timestamp: time.Now().Add(-2 * time.Hour),
	})

	active := store.Create(model.ApplicantContext{Name: "New"})
	store.AddMessage(active.SessionID, model.InterviewMessage{
		Role: model.RoleOfficer, Content: "hello", Timestamp: time.Now(),
	})

	// A session with no messages has no age marker and is kept.
	empty := store.Create(model.ApplicantContext{Name: "Empty"})

	removed := store.CleanupOldSessions(time.Hour)
	assert.Equal(t, 1, removed)

	_, err := store.Get(stale.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(active.SessionID)
	assert.NoError(t, err)
	_, err = store.Get(empty.SessionID)
	assert.NoError(t, err)
}
