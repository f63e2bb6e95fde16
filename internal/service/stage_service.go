package service

import "civicsprep-backend/internal/model"

// StageAdvance reports the outcome of one transition evaluation. A
// non-advance is a normal outcome, not an error.
type StageAdvance struct {
	Advanced bool
	From     model.InterviewStage
	To       model.InterviewStage
}

// StageService is the finite state machine over interview stages. It only
// reads the session counters to decide eligibility; incrementing them is
// the caller's job. The one mutation it performs is the stage itself, and
// stages never regress or skip more than one step per evaluation.
type StageService interface {
	AdvanceStageIfNeeded(session *model.InterviewSession) StageAdvance
}

type stageService struct{}

func NewStageService() StageService {
	return &stageService{}
}

func (s *stageService) AdvanceStageIfNeeded(session *model.InterviewSession) StageAdvance {
	from := session.Stage
	next, ok := s.nextStage(session)
	if !ok {
		return StageAdvance{Advanced: false, From: from, To: from}
	}
	session.Stage = next
	return StageAdvance{Advanced: true, From: from, To: next}
}

func (s *stageService) nextStage(session *model.InterviewSession) (model.InterviewStage, bool) {
	switch session.Stage {
	case model.StageGreeting:
		return model.StageIdentity, true
	case model.StageIdentity:
		// n400_review is skipped entirely when no form was supplied.
		if session.Context.FormData != nil {
			return model.StageN400Review, true
		}
		return model.StageOath, true
	case model.StageN400Review:
		if session.N400QuestionsAsked < session.TotalN400Questions {
			return "", false
		}
		return model.StageOath, true
	case model.StageOath:
		return model.StageCivics, true
	case model.StageCivics:
		if session.CivicsQuestionsAsked < session.TotalCivicsQuestions {
			return "", false
		}
		return model.StageReading, true
	case model.StageReading:
		return model.StageWriting, true
	case model.StageWriting:
		return model.StageClosing, true
	case model.StageClosing:
		return "", false
	default:
		return "", false
	}
}
