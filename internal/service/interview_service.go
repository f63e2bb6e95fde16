package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"civicsprep-backend/internal/model"
	"civicsprep-backend/internal/repository"
	"civicsprep-backend/utilities"
)

var (
	// ErrInvalidContext rejects session creation with an unusable
	// applicant profile.
	ErrInvalidContext = errors.New("applicant context requires at least a name")
	// ErrInvalidInput rejects an empty applicant utterance.
	ErrInvalidInput = errors.New("applicant response must not be empty")
)

// EventInterviewCompleted is published on the event bus with the final
// session snapshot when an interview reaches the closing stage.
const EventInterviewCompleted = "interview_completed"

// StartResult is the response to a session creation.
type StartResult struct {
	Session *model.InterviewSession `json:"session"`
	Opener  model.InterviewMessage  `json:"opener"`
}

// TurnResult is the response to one applicant turn. CivicsCorrect is set
// only when the turn answered an open civics question.
type TurnResult struct {
	SessionID         string                   `json:"session_id"`
	Stage             model.InterviewStage     `json:"stage"`
	Officer           model.InterviewMessage   `json:"officer_message"`
	Validation        model.ValidationResult   `json:"validation"`
	Fluency           *model.FluencyEvaluation `json:"fluency_evaluation,omitempty"`
	CivicsCorrect     *bool                    `json:"civics_correct,omitempty"`
	Feedback          string                   `json:"feedback,omitempty"`
	InterviewComplete bool                     `json:"interview_complete"`
}

// AutoMessageResult carries a pending officer message, if one exists.
// Available false is the normal "nothing to say" outcome, not an error.
type AutoMessageResult struct {
	Available bool                   `json:"available"`
	SessionID string                 `json:"session_id"`
	Stage     model.InterviewStage   `json:"stage"`
	Officer   model.InterviewMessage `json:"officer_message,omitempty"`
}

// InterviewService orchestrates one mock naturalization interview:
// session lifecycle, turn handling, stage progression, and question
// scheduling. It owns no matching or generation logic itself; it wires
// the store, the validator, the stage machine, the question bank, and
// the officer generator together.
type InterviewService interface {
	StartInterview(ctx context.Context, applicant model.ApplicantContext) (*StartResult, error)
	SubmitResponse(ctx context.Context, sessionID, utterance string) (*TurnResult, error)
	AutoMessage(ctx context.Context, sessionID string) (*AutoMessageResult, error)
	GetMessages(sessionID string) ([]model.InterviewMessage, error)
	GetSession(sessionID string) (*model.InterviewSession, error)
}

type interviewService struct {
	store     repository.SessionStore
	bank      repository.QuestionBank
	stages    StageService
	validator ValidatorService
	officer   OfficerService
	bus       *utilities.EventBus
}

func NewInterviewService(
	store repository.SessionStore,
	bank repository.QuestionBank,
	stages StageService,
	validator ValidatorService,
	officer OfficerService,
	bus *utilities.EventBus,
) InterviewService {
	return &interviewService{
		store:     store,
		bank:      bank,
		stages:    stages,
		validator: validator,
		officer:   officer,
		bus:       bus,
	}
}

// StartInterview creates a session and produces the officer's greeting.
func (s *interviewService) StartInterview(ctx context.Context, applicant model.ApplicantContext) (*StartResult, error) {
	if strings.TrimSpace(applicant.Name) == "" {
		return nil, ErrInvalidContext
	}

	session := s.store.Create(applicant)
	opener := s.officer.GenerateStageOpener(ctx, session)
	msg := officerMessage(opener.Content)

	s.store.AddMessage(session.SessionID, msg)
	s.store.Update(session.SessionID, func(sess *model.InterviewSession) {
		sess.LastPromptedStage = model.StageGreeting
	})

	utilities.Info("interview %s started for %s (form data: %v)",
		session.SessionID, applicant.Name, applicant.FormData != nil)

	final, err := s.store.Get(session.SessionID)
	if err != nil {
		return nil, err
	}
	return &StartResult{Session: final, Opener: msg}, nil
}

// SubmitResponse processes one applicant turn: record it, score it,
// settle any open civics question, move the stage machine, and produce
// the officer's next line.
func (s *interviewService) SubmitResponse(ctx context.Context, sessionID, utterance string) (*TurnResult, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	fluency := s.officer.EvaluateFluency(ctx, utterance)
	s.store.AddMessage(sessionID, model.InterviewMessage{
		Role:      model.RoleApplicant,
		Content:   utterance,
		Timestamp: time.Now(),
		Fluency:   fluency,
	})

	verdict := s.validator.ValidateResponse(session, utterance)

	// Settle the open civics question before any scheduling: correctness
	// is recorded per question, and the feedback leads the next line.
	feedback := ""
	var civicsCorrect *bool
	if session.Stage == model.StageCivics && session.CurrentCivicsQuestion != nil {
		correct := verdict.IsValid
		civicsCorrect = &correct
		expected := session.CurrentCivicsQuestion.Answer
		if verdict.IsValid {
			feedback = "That's correct. "
			s.store.Update(sessionID, func(sess *model.InterviewSession) {
				sess.CivicsCorrect++
				sess.CurrentCivicsQuestion = nil
			})
		} else {
			feedback = fmt.Sprintf("That's not quite right. The answer is %s. ", expected)
			s.store.Update(sessionID, func(sess *model.InterviewSession) {
				sess.CurrentCivicsQuestion = nil
			})
		}
		session, err = s.store.Get(sessionID)
		if err != nil {
			return nil, err
		}
	}

	officerContent, complete := s.nextOfficerLine(ctx, session, utterance, feedback)

	msg := officerMessage(officerContent)
	s.store.AddMessage(sessionID, msg)

	final, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if complete {
		s.bus.Publish(EventInterviewCompleted, final)
		utilities.Info("interview %s completed: %d/%d civics correct",
			final.SessionID, final.CivicsCorrect, final.CivicsQuestionsAsked)
	}

	return &TurnResult{
		SessionID:         final.SessionID,
		Stage:             final.Stage,
		Officer:           msg,
		Validation:        verdict,
		Fluency:           fluency,
		CivicsCorrect:     civicsCorrect,
		Feedback:          strings.TrimSpace(feedback),
		InterviewComplete: complete,
	}, nil
}

// nextOfficerLine decides what the officer says after an applicant turn
// and applies the matching session mutations. Within a question-gated
// stage it schedules the next question; at a stage boundary it advances
// the machine and opens the next stage. Entering a question-gated stage
// appends only the stage announcement and leaves LastPromptedStage
// stale, so the first question arrives through AutoMessage.
func (s *interviewService) nextOfficerLine(ctx context.Context, session *model.InterviewSession, utterance, feedback string) (string, bool) {
	sessionID := session.SessionID

	switch session.Stage {
	case model.StageCivics:
		if session.CivicsQuestionsAsked < session.TotalCivicsQuestions {
			if content, ok := s.askNextCivicsQuestion(session, feedback); ok {
				return content, false
			}
			// Pool exhausted early; close out the civics stage.
			s.store.Update(sessionID, func(sess *model.InterviewSession) {
				sess.CivicsQuestionsAsked = sess.TotalCivicsQuestions
			})
		}
	case model.StageN400Review:
		if session.N400QuestionsAsked < session.TotalN400Questions {
			if question, ok := s.officer.N400Question(session.N400QuestionsAsked); ok {
				s.store.Update(sessionID, func(sess *model.InterviewSession) {
					sess.N400QuestionsAsked++
					sess.QuestionsAsked++
					sess.LastPromptedStage = model.StageN400Review
				})
				return question, false
			}
			s.store.Update(sessionID, func(sess *model.InterviewSession) {
				sess.N400QuestionsAsked = sess.TotalN400Questions
			})
		}
	}

	var advance StageAdvance
	s.store.Update(sessionID, func(sess *model.InterviewSession) {
		advance = s.stages.AdvanceStageIfNeeded(sess)
	})
	if !advance.Advanced {
		// Terminal stage, or a gated stage that somehow could not serve a
		// question. React to the applicant's utterance rather than go silent.
		current, err := s.store.Get(sessionID)
		if err != nil {
			return feedback, false
		}
		return feedback + s.officer.GenerateResponse(ctx, current, utterance).Content, false
	}

	entered, err := s.store.Get(sessionID)
	if err != nil {
		return feedback, false
	}
	opener := s.officer.GenerateStageOpener(ctx, entered)

	// Non-gated stages carry their whole prompt in the opener. Gated
	// stages get announced here and questioned via AutoMessage.
	if advance.To != model.StageCivics && advance.To != model.StageN400Review {
		s.store.Update(sessionID, func(sess *model.InterviewSession) {
			sess.LastPromptedStage = advance.To
		})
	}

	return feedback + opener.Content, advance.To == model.StageClosing
}

// askNextCivicsQuestion draws a fresh question, registers it on the
// session, and returns the officer line that poses it.
func (s *interviewService) askNextCivicsQuestion(session *model.InterviewSession, feedback string) (string, bool) {
	exclude := make(map[int]bool, len(session.CivicsQuestionsUsed))
	for _, id := range session.CivicsQuestionsUsed {
		exclude[id] = true
	}
	question, ok := s.bank.GetRandomQuestion(exclude)
	if !ok {
		return "", false
	}

	var number int
	s.store.Update(session.SessionID, func(sess *model.InterviewSession) {
		sess.CivicsQuestionsAsked++
		sess.QuestionsAsked++
		number = sess.CivicsQuestionsAsked
		sess.CivicsQuestionsUsed = append(sess.CivicsQuestionsUsed, question.ID)
		sess.CurrentCivicsQuestion = &model.CurrentCivicsQuestion{
			ID:       question.ID,
			Question: question.Question,
			Answer:   question.Answers[0],
		}
		sess.LastPromptedStage = model.StageCivics
	})

	return fmt.Sprintf("%sQuestion %d: %s", feedback, number, question.Question), true
}

// AutoMessage produces the officer message pending for the session's
// current stage, if any. A message is pending exactly when the last
// officer prompt belongs to an earlier stage, which happens on entry to
// the question-gated stages.
func (s *interviewService) AutoMessage(ctx context.Context, sessionID string) (*AutoMessageResult, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if session.LastPromptedStage == session.Stage {
		return &AutoMessageResult{Available: false, SessionID: sessionID, Stage: session.Stage}, nil
	}

	var content string
	switch session.Stage {
	case model.StageCivics:
		line, ok := s.askNextCivicsQuestion(session, "")
		if !ok {
			return &AutoMessageResult{Available: false, SessionID: sessionID, Stage: session.Stage}, nil
		}
		content = line
	case model.StageN400Review:
		question, ok := s.officer.N400Question(session.N400QuestionsAsked)
		if !ok {
			return &AutoMessageResult{Available: false, SessionID: sessionID, Stage: session.Stage}, nil
		}
		s.store.Update(sessionID, func(sess *model.InterviewSession) {
			sess.N400QuestionsAsked++
			sess.QuestionsAsked++
			sess.LastPromptedStage = model.StageN400Review
		})
		content = question
	default:
		content = s.officer.GenerateStageOpener(ctx, session).Content
		s.store.Update(sessionID, func(sess *model.InterviewSession) {
			sess.LastPromptedStage = sess.Stage
		})
	}

	msg := officerMessage(content)
	s.store.AddMessage(sessionID, msg)

	return &AutoMessageResult{
		Available: true,
		SessionID: sessionID,
		Stage:     session.Stage,
		Officer:   msg,
	}, nil
}

// GetMessages returns the session's transcript so far.
func (s *interviewService) GetMessages(sessionID string) ([]model.InterviewMessage, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Messages, nil
}

// GetSession returns a snapshot of the session.
func (s *interviewService) GetSession(sessionID string) (*model.InterviewSession, error) {
	return s.store.Get(sessionID)
}

// officerMessage wraps officer dialogue with its spoken rendering.
func officerMessage(content string) model.InterviewMessage {
	return model.InterviewMessage{
		Role:        model.RoleOfficer,
		Content:     content,
		Timestamp:   time.Now(),
		ShouldSpeak: true,
		SpeechText:  speechText(content),
	}
}
