package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"call-scripter/internal/api/middleware"
	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/api/v1/services"
)

// ScriptHandler handles script and summary generation
type ScriptHandler struct {
	service services.ScriptService
	logger  *zap.Logger
}

// NewScriptHandler creates a new script handler
func NewScriptHandler(service services.ScriptService, logger *zap.Logger) *ScriptHandler {
	return &ScriptHandler{
		service: service,
		logger:  logger,
	}
}

// Script handles POST /api/get_script
//
// @Summary Generate a call script
// @Description Reverse engineers a reusable script from the transcript in a single response
// @Tags scripts
// @Accept json
// @Produce plain
// @Param request body dto.ScriptRequest true "Transcript"
// @Success 200 {string} string "Script"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 502 {object} errors.APIError "Language model provider failed"
// @Router /api/get_script [post]
func (h *ScriptHandler) Script(c *gin.Context) {
	var req dto.ScriptRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	script, err := h.service.Script(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.String(http.StatusOK, script)
}

// Summary handles POST /api/get_reformatted_script
//
// @Summary Summarize a conversation
// @Tags scripts
// @Accept json
// @Produce plain
// @Param request body dto.ScriptRequest true "Transcript"
// @Success 200 {string} string "Summary"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 502 {object} errors.APIError "Language model provider failed"
// @Router /api/get_reformatted_script [post]
func (h *ScriptHandler) Summary(c *gin.Context) {
	var req dto.ScriptRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.String(http.StatusOK, summary)
}

// StreamV2 handles POST /api/get_script_v2
//
// @Summary Stream a call script
// @Description Streams the script as raw text chunks. The prompt depends on type (settings and customer_service use the settings prompt, anything else the closing prompt) and messages continue an earlier conversation.
// @Tags scripts
// @Accept json
// @Produce text/event-stream
// @Param request body dto.ScriptV2Request true "Transcript, history and script type"
// @Success 200 {string} string "Script chunks"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 502 {object} errors.APIError "Language model provider failed"
// @Router /api/get_script_v2 [post]
func (h *ScriptHandler) StreamV2(c *gin.Context) {
	var req dto.ScriptV2Request
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	started := false
	start := func() {
		if started {
			return
		}
		started = true
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
	}

	err := h.service.StreamScript(c.Request.Context(), &req, func(chunk string) error {
		start()
		if _, err := io.WriteString(c.Writer, chunk); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err == nil {
		start()
		return
	}

	if !started {
		middleware.HandleError(c, err)
		return
	}

	// Headers are gone; all that is left is to stop writing
	_ = c.Error(err)
	h.logger.Warn("Script stream interrupted",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Error(err),
	)
}
