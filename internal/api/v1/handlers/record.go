package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"call-scripter/internal/api/errors"
	"call-scripter/internal/api/middleware"
	"call-scripter/internal/api/v1/services"
)

// RecordFormField is the multipart field carrying the recording
const RecordFormField = "record"

// multipartOverhead is allowed on top of the file limit for form boundaries and headers
const multipartOverhead = 1 << 20

// RecordHandler handles recording uploads
type RecordHandler struct {
	service  services.RecordService
	maxBytes int64
}

// NewRecordHandler creates a new record handler. Request bodies are capped
// at maxBytes plus multipart overhead; zero disables the cap.
func NewRecordHandler(service services.RecordService, maxBytes int64) *RecordHandler {
	return &RecordHandler{
		service:  service,
		maxBytes: maxBytes,
	}
}

// Upload handles POST /api/upload_record
//
// @Summary Upload a call recording
// @Description Stores the recording under a random 8 character name that keeps the original extension
// @Tags records
// @Accept multipart/form-data
// @Produce json
// @Param record formData file true "Audio recording"
// @Success 200 {object} dto.UploadRecordResponse
// @Failure 400 {object} errors.APIError "Record file required"
// @Failure 413 {object} errors.APIError "Upload too large"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /api/upload_record [post]
func (h *RecordHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	file, err := c.FormFile(RecordFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.As(err, &tooLarge):
			middleware.HandleError(c, errors.NewPayloadTooLargeError(h.maxBytes))
		default:
			middleware.HandleError(c, errors.NewBadRequestError("Record file required"))
		}
		return
	}

	response, err := h.service.Upload(c.Request.Context(), file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
