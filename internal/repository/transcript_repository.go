package repository

import (
	"errors"

	"gorm.io/gorm"

	"civicsprep-backend/internal/model"
)

var ErrTranscriptNotFound = errors.New("transcript not found")

// TranscriptRepository persists completed-interview summaries. Backed by
// gorm; constructed with a nil connection it degrades to a no-op so the
// interview core never depends on the database being up.
type TranscriptRepository interface {
	Save(t *model.Transcript) error
	GetAll() ([]model.Transcript, error)
	GetBySessionID(sessionID string) (*model.Transcript, error)
}

type transcriptRepository struct {
	db *gorm.DB
}

func NewTranscriptRepository(db *gorm.DB) TranscriptRepository {
	return &transcriptRepository{db: db}
}

func (r *transcriptRepository) Save(t *model.Transcript) error {
	if r.db == nil {
		return nil
	}
	return r.db.Create(t).Error
}

func (r *transcriptRepository) GetAll() ([]model.Transcript, error) {
	if r.db == nil {
		return []model.Transcript{}, nil
	}
	var transcripts []model.Transcript
	err := r.db.Order("completed_on desc").Find(&transcripts).Error
	return transcripts, err
}

func (r *transcriptRepository) GetBySessionID(sessionID string) (*model.Transcript, error) {
	if r.db == nil {
		return nil, ErrTranscriptNotFound
	}
	var t model.Transcript
	if err := r.db.Where("session_id = ?", sessionID).First(&t).Error; err != nil {
		return nil, ErrTranscriptNotFound
	}
	return &t, nil
}
