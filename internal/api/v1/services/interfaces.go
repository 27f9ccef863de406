package services

import (
	"context"
	"mime/multipart"

	"call-scripter/internal/api/v1/dto"
)

// RecordService stores uploaded call recordings
type RecordService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadRecordResponse, error)
}

// TranscriptService turns a stored recording into text
type TranscriptService interface {
	Transcribe(ctx context.Context, req *dto.TranscriptRequest) (string, error)
}

// ScriptService generates call scripts and summaries from transcripts
type ScriptService interface {
	Script(ctx context.Context, req *dto.ScriptRequest) (string, error)
	StreamScript(ctx context.Context, req *dto.ScriptV2Request, emit func(chunk string) error) error
	Summary(ctx context.Context, req *dto.ScriptRequest) (string, error)
}
