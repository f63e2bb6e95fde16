package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"civicsprep-backend/internal/model"
)

// ErrSessionNotFound is the normal negative result for read-only lookups
// of a session id that does not exist (expired, deleted, or never valid).
var ErrSessionNotFound = errors.New("session not found")

const (
	totalCivicsQuestions     = 10
	totalN400QuestionsFull   = 6
	totalN400QuestionsNoForm = 3
)

// SessionStore owns in-memory interview sessions keyed by generated id.
//
// Reads return a snapshot copy. All mutation happens inside Update or
// AddMessage, which hold a per-session lock so message ordering and stage
// transitions for one session are never interleaved. Mutating an unknown
// id is a programmer-contract violation and panics; a caller can only
// reach a mutation after a successful lookup.
type SessionStore interface {
	Create(ctx model.ApplicantContext) *model.InterviewSession
	Get(sessionID string) (*model.InterviewSession, error)
	Update(sessionID string, mutate func(*model.InterviewSession))
	AddMessage(sessionID string, msg model.InterviewMessage)
	Delete(sessionID string)
	CleanupOldSessions(maxAge time.Duration) int
}

type sessionEntry struct {
	mu      sync.Mutex
	session *model.InterviewSession
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewMemorySessionStore builds the in-memory store used by the reference
// deployment. Persistence backends are a collaborator concern; anything
// implementing SessionStore can be swapped in.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*sessionEntry),
	}
}

func (s *memorySessionStore) Create(ctx model.ApplicantContext) *model.InterviewSession {
	totalN400 := totalN400QuestionsNoForm
	if ctx.FormData != nil {
		totalN400 = totalN400QuestionsFull
	}

	session := &model.InterviewSession{
		SessionID:            uuid.New().String(),
		Context:              ctx,
		Messages:             []model.InterviewMessage{},
		Stage:                model.StageGreeting,
		TotalN400Questions:   totalN400,
		TotalCivicsQuestions: totalCivicsQuestions,
		CivicsQuestionsUsed:  []int{},
	}

	s.mu.Lock()
	s.sessions[session.SessionID] = &sessionEntry{session: session}
	s.mu.Unlock()

	return copySession(session)
}

func (s *memorySessionStore) Get(sessionID string) (*model.InterviewSession, error) {
	entry, ok := s.lookup(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return copySession(entry.session), nil
}

func (s *memorySessionStore) Update(sessionID string, mutate func(*model.InterviewSession)) {
	entry, ok := s.lookup(sessionID)
	if !ok {
		panic(fmt.Sprintf("session store: update of unknown session %q", sessionID))
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	mutate(entry.session)
}

func (s *memorySessionStore) AddMessage(sessionID string, msg model.InterviewMessage) {
	entry, ok := s.lookup(sessionID)
	if !ok {
		panic(fmt.Sprintf("session store: add message to unknown session %q", sessionID))
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.Messages = append(entry.session.Messages, msg)
}

func (s *memorySessionStore) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// CleanupOldSessions removes sessions whose first message is older than
// maxAge and returns how many were swept. Sessions without messages are
// kept; they have no usable age marker.
func (s *memorySessionStore) CleanupOldSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		entry.mu.Lock()
		stale := len(entry.session.Messages) > 0 && entry.session.Messages[0].Timestamp.Before(cutoff)
		entry.mu.Unlock()
		if stale {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *memorySessionStore) lookup(sessionID string) (*sessionEntry, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	return entry, ok
}

func copySession(src *model.InterviewSession) *model.InterviewSession {
	dst := *src
	dst.Messages = append([]model.InterviewMessage(nil), src.Messages...)
	dst.CivicsQuestionsUsed = append([]int(nil), src.CivicsQuestionsUsed...)
	if src.CurrentCivicsQuestion != nil {
		q := *src.CurrentCivicsQuestion
		dst.CurrentCivicsQuestion = &q
	}
	return &dst
}
