package services

import (
	"context"
	"errors"
	"mime/multipart"

	"go.uber.org/zap"

	apierrors "call-scripter/internal/api/errors"
	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/app/storage"
)

type recordService struct {
	store    storage.RecordStore
	metrics  *metrics.Metrics
	logger   *zap.Logger
	maxBytes int64
}

// NewRecordService creates a RecordService backed by store. Uploads larger
// than maxBytes are rejected; zero disables the check.
func NewRecordService(store storage.RecordStore, m *metrics.Metrics, logger *zap.Logger, maxBytes int64) RecordService {
	return &recordService{
		store:    store,
		metrics:  m,
		logger:   logger,
		maxBytes: maxBytes,
	}
}

func (s *recordService) Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadRecordResponse, error) {
	if file == nil {
		return nil, apierrors.NewBadRequestError("Record file required")
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, apierrors.NewPayloadTooLargeError(s.maxBytes)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apierrors.WrapError(err, apierrors.KindBadRequest, "Unable to read uploaded record")
	}
	defer src.Close()

	record, err := s.store.Save(ctx, file.Filename, file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		s.logger.Error("Failed to store record",
			zap.String("original_name", file.Filename),
			zap.String("backend", s.store.Backend()),
			zap.Error(err),
		)
		if errors.Is(err, storage.ErrNameExhausted) {
			return nil, apierrors.WrapError(err, apierrors.KindInternal, "Could not allocate a record name")
		}
		return nil, apierrors.WrapError(err, apierrors.KindInternal, "Failed to store record")
	}

	s.metrics.AddUploadedBytes(record.Size)
	s.logger.Info("Record stored",
		zap.String("file_name", record.Name),
		zap.String("mimetype", record.MimeType),
		zap.Int64("size", record.Size),
	)

	return &dto.UploadRecordResponse{
		FileName: record.Name,
		MimeType: record.MimeType,
	}, nil
}
