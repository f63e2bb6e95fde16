package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"civicsprep-backend/internal/repository"
	"civicsprep-backend/internal/service"
)

type TranscriptController struct {
	TranscriptService service.TranscriptService
}

func NewTranscriptController(transcriptService service.TranscriptService) *TranscriptController {
	return &TranscriptController{TranscriptService: transcriptService}
}

// ListTranscripts handles GET /interview/transcripts
func (tc *TranscriptController) ListTranscripts(c *gin.Context) {
	transcripts, err := tc.TranscriptService.ListTranscripts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transcripts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcripts": transcripts})
}

// DownloadTranscript handles GET /interview/:session_id/transcript
func (tc *TranscriptController) DownloadTranscript(c *gin.Context) {
	transcript, err := tc.TranscriptService.GetTranscript(c.Param("session_id"))
	if err != nil {
		if errors.Is(err, repository.ErrTranscriptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transcript"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=transcript_"+transcript.SessionID+".pdf")
	c.File(transcript.PDFPath)
}
