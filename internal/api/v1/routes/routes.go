package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"call-scripter/internal/api/v1/handlers"
	"call-scripter/internal/api/v1/services"
)

// RegisterRoutes registers the status probes on router and the scripter API
// under /api.
func RegisterRoutes(router *gin.Engine, container *ServiceContainer) {
	statusHandler := handlers.NewStatusHandler()
	router.GET("/status", statusHandler.Status)
	router.GET("/health", statusHandler.Health)

	recordHandler := handlers.NewRecordHandler(container.RecordService, container.MaxUploadBytes)
	transcriptHandler := handlers.NewTranscriptHandler(container.TranscriptService)
	scriptHandler := handlers.NewScriptHandler(container.ScriptService, container.Logger)

	api := router.Group("/api")
	{
		api.POST("/upload_record", recordHandler.Upload)
		api.POST("/get_transcript", transcriptHandler.Get)
		api.POST("/get_script", scriptHandler.Script)
		api.POST("/get_script_v2", scriptHandler.StreamV2)
		api.POST("/get_reformatted_script", scriptHandler.Summary)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	RecordService     services.RecordService
	TranscriptService services.TranscriptService
	ScriptService     services.ScriptService

	MaxUploadBytes int64
	Logger         *zap.Logger
}
