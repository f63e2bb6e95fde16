package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"civicsprep-backend/internal/model"
	"civicsprep-backend/internal/repository"
	"civicsprep-backend/internal/service"
)

type InterviewController struct {
	InterviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{InterviewService: interviewService}
}

// StartInterview handles POST /interview/start
func (ic *InterviewController) StartInterview(c *gin.Context) {
	var req model.ApplicantContext
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result, err := ic.InterviewService.StartInterview(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContext) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start interview"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SubmitResponse handles POST /interview/respond
func (ic *InterviewController) SubmitResponse(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		Response  string `json:"response"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result, err := ic.InterviewService.SubmitResponse(c.Request.Context(), req.SessionID, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process response"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// AutoMessage handles POST /interview/auto-message
func (ic *InterviewController) AutoMessage(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result, err := ic.InterviewService.AutoMessage(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to produce message"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMessages handles GET /interview/:session_id/messages
func (ic *InterviewController) GetMessages(c *gin.Context) {
	messages, err := ic.InterviewService.GetMessages(c.Param("session_id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetSession handles GET /interview/:session_id
func (ic *InterviewController) GetSession(c *gin.Context) {
	session, err := ic.InterviewService.GetSession(c.Param("session_id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Health handles GET /interview/health
func (ic *InterviewController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
