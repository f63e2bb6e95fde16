package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"civicsprep-backend/internal/model"
	"civicsprep-backend/internal/repository"
	"civicsprep-backend/utilities"
)

// TranscriptService renders a completed interview into a PDF transcript
// and records the summary row.
type TranscriptService interface {
	GenerateTranscript(session *model.InterviewSession) error
	ListTranscripts() ([]model.Transcript, error)
	GetTranscript(sessionID string) (*model.Transcript, error)
}

type transcriptService struct {
	repo      repository.TranscriptRepository
	outputDir string
}

func NewTranscriptService(repo repository.TranscriptRepository, outputDir string) TranscriptService {
	return &transcriptService{repo: repo, outputDir: outputDir}
}

// InitTranscriptEventListeners hooks transcript generation to interview
// completion. Generation runs off the request path; a failure is logged
// and the interview outcome is unaffected.
func InitTranscriptEventListeners(svc TranscriptService, bus *utilities.EventBus) {
	bus.Subscribe(EventInterviewCompleted, func(data interface{}) {
		session, ok := data.(*model.InterviewSession)
		if !ok {
			utilities.Error("transcript listener received unexpected payload %T", data)
			return
		}
		if err := svc.GenerateTranscript(session); err != nil {
			utilities.Error("transcript generation for session %s failed: %v", session.SessionID, err)
		}
	})
}

func (s *transcriptService) GenerateTranscript(session *model.InterviewSession) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create transcript dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Naturalization Interview Transcript")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Applicant: %s", session.Context.Name))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Session: %s", session.SessionID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Civics score: %d of %d correct",
		session.CivicsCorrect, session.CivicsQuestionsAsked))
	pdf.Ln(12)

	for _, msg := range session.Messages {
		speaker := "Officer"
		if msg.Role == model.RoleApplicant {
			speaker = "Applicant"
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, fmt.Sprintf("%s  (%s)", speaker, msg.Timestamp.Format("15:04:05")))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, msg.Content, "", "L", false)
		if msg.Fluency != nil {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, fmt.Sprintf("Fluency %s. %s", msg.Fluency.Score, msg.Fluency.Tip), "", "L", false)
		}
		pdf.Ln(3)
	}

	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("transcript_%s.pdf", session.SessionID))
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("write transcript pdf: %w", err)
	}

	record := &model.Transcript{
		SessionID:            session.SessionID,
		ApplicantName:        session.Context.Name,
		MessageCount:         len(session.Messages),
		CivicsQuestionsAsked: session.CivicsQuestionsAsked,
		CivicsCorrect:        session.CivicsCorrect,
		PDFPath:              outputPath,
		CompletedOn:          time.Now(),
	}
	if err := s.repo.Save(record); err != nil {
		return fmt.Errorf("save transcript record: %w", err)
	}

	utilities.Info("transcript for session %s written to %s", session.SessionID, outputPath)
	return nil
}

func (s *transcriptService) ListTranscripts() ([]model.Transcript, error) {
	return s.repo.GetAll()
}

func (s *transcriptService) GetTranscript(sessionID string) (*model.Transcript, error) {
	return s.repo.GetBySessionID(sessionID)
}
