package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apierrors "call-scripter/internal/api/errors"
	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/app/api/provider"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/app/storage"
)

type transcriptService struct {
	store                 storage.RecordStore
	provider              provider.TranscriptionProvider
	metrics               *metrics.Metrics
	logger                *zap.Logger
	deleteAfterTranscribe bool
}

// NewTranscriptService creates a TranscriptService. When deleteAfterTranscribe
// is set a record is removed once its transcript has been produced.
func NewTranscriptService(
	store storage.RecordStore,
	p provider.TranscriptionProvider,
	m *metrics.Metrics,
	logger *zap.Logger,
	deleteAfterTranscribe bool,
) TranscriptService {
	return &transcriptService{
		store:                 store,
		provider:              p,
		metrics:               m,
		logger:                logger,
		deleteAfterTranscribe: deleteAfterTranscribe,
	}
}

func (s *transcriptService) Transcribe(ctx context.Context, req *dto.TranscriptRequest) (string, error) {
	if err := storage.ValidateName(req.FileName); err != nil {
		return "", apierrors.NewValidationError("Validation failed", map[string]string{
			"file_name": "is not a valid record name",
		})
	}

	audio, err := s.store.Open(ctx, req.FileName)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return "", apierrors.NewNotFoundError("record " + req.FileName)
	}
	if err != nil {
		return "", apierrors.WrapError(err, apierrors.KindInternal, "Failed to open record")
	}

	providerName := s.provider.GetProviderInfo().Name
	start := time.Now()
	resp, err := s.provider.Transcribe(ctx, &provider.TranscriptionRequest{
		Audio:    audio,
		FileName: req.FileName,
		MimeType: req.MimeType,
	})
	elapsed := time.Since(start)
	audio.Close()
	s.metrics.ObserveUpstream(providerName, "transcribe", err, elapsed)

	if err != nil {
		s.logger.Error("Transcription failed",
			zap.String("file_name", req.FileName),
			zap.String("provider", providerName),
			zap.String("code", provider.ErrorCode(err)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return "", apierrors.NewUpstreamError(providerName, provider.ErrorCode(err), err)
	}

	s.logger.Info("Transcription completed",
		zap.String("file_name", req.FileName),
		zap.String("provider", providerName),
		zap.Int("chars", len(resp.Text)),
		zap.Duration("elapsed", elapsed),
	)

	if s.deleteAfterTranscribe {
		if err := s.store.Remove(ctx, req.FileName); err != nil {
			s.logger.Warn("Failed to remove transcribed record",
				zap.String("file_name", req.FileName),
				zap.Error(err),
			)
		}
	}

	return resp.Text, nil
}
