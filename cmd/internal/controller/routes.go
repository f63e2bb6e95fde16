package controller

import (
	"github.com/gin-gonic/gin"

	"civicsprep-backend/internal/service"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	interviewService service.InterviewService,
	transcriptService service.TranscriptService,
) {
	interviewCtrl := NewInterviewController(interviewService)
	transcriptCtrl := NewTranscriptController(transcriptService)

	interview := r.Group("/interview")
	{
		interview.GET("/health", interviewCtrl.Health)
		interview.POST("/start", interviewCtrl.StartInterview)
		interview.POST("/respond", interviewCtrl.SubmitResponse)
		interview.POST("/auto-message", interviewCtrl.AutoMessage)
		interview.GET("/transcripts", transcriptCtrl.ListTranscripts)
		interview.GET("/:session_id", interviewCtrl.GetSession)
		interview.GET("/:session_id/messages", interviewCtrl.GetMessages)
		interview.GET("/:session_id/transcript", transcriptCtrl.DownloadTranscript)
	}
}
