package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"call-scripter/internal/api/middleware"
	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/api/v1/services"
)

// TranscriptHandler handles transcription of stored recordings
type TranscriptHandler struct {
	service services.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(service services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{service: service}
}

// Get handles POST /api/get_transcript
//
// @Summary Transcribe an uploaded recording
// @Description Sends the stored recording to the speech-to-text provider and returns the plain transcript
// @Tags transcripts
// @Accept json
// @Produce plain
// @Param request body dto.TranscriptRequest true "Stored record"
// @Success 200 {string} string "Transcript"
// @Failure 404 {object} errors.APIError "Record not found"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 502 {object} errors.APIError "Speech-to-text provider failed"
// @Router /api/get_transcript [post]
func (h *TranscriptHandler) Get(c *gin.Context) {
	var req dto.TranscriptRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	transcript, err := h.service.Transcribe(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.String(http.StatusOK, transcript)
}
