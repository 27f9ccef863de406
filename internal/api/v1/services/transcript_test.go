package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "call-scripter/internal/api/errors"
	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/api/v1/services"
	"call-scripter/internal/app/api/provider"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/app/storage"
	"call-scripter/internal/app/testutil"
)

func saveSample(t *testing.T, store *storage.LocalStore) string {
	t.Helper()
	rec, err := store.Save(context.Background(), "call.mp3", "audio/mpeg", bytesReader(testutil.SampleAudio), int64(len(testutil.SampleAudio)))
	require.NoError(t, err)
	return rec.Name
}

func TestTranscriptService_Transcribe(t *testing.T) {
	tests := []struct {
		name        string
		deleteAfter bool
		providerErr error
		wantErrKind apierrors.ErrorKind
		wantKept    bool
	}{
		{name: "success deletes record", deleteAfter: true, wantKept: false},
		{name: "success keeps record when retention is on", deleteAfter: false, wantKept: true},
		{
			name:        "provider failure keeps record",
			deleteAfter: true,
			providerErr: &provider.TranscriptionError{Code: provider.CodeRateLimited, Provider: "deepgram", Message: "slow down"},
			wantErrKind: apierrors.KindUpstream,
			wantKept:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewLocalStore(t.TempDir(), zap.NewNop())
			name := saveSample(t, store)

			p := testutil.NewMockTranscriptionProvider(t, "deepgram")
			matchReq := mock.MatchedBy(func(r *provider.TranscriptionRequest) bool {
				return r.FileName == name && r.MimeType == "audio/mpeg"
			})
			if tt.providerErr != nil {
				p.On("Transcribe", mock.Anything, matchReq).Return(nil, tt.providerErr)
			} else {
				p.On("Transcribe", mock.Anything, matchReq).Return(&provider.TranscriptionResponse{Text: testutil.SampleTranscript}, nil)
			}

			svc := services.NewTranscriptService(store, p, metrics.New(), zap.NewNop(), tt.deleteAfter)
			text, err := svc.Transcribe(context.Background(), &dto.TranscriptRequest{FileName: name, MimeType: "audio/mpeg"})

			if tt.wantErrKind != "" {
				apiErr, ok := apierrors.AsAPIError(err)
				require.True(t, ok, "expected APIError, got %v", err)
				assert.Equal(t, tt.wantErrKind, apiErr.Kind)
				assert.Equal(t, provider.CodeRateLimited, apiErr.Code)
				assert.Equal(t, "deepgram", apiErr.Details["provider"])
			} else {
				require.NoError(t, err)
				assert.Equal(t, testutil.SampleTranscript, text)
			}

			assert.Equal(t, testutil.SampleAudio, p.LastAudio, "provider receives the stored bytes")

			_, statErr := os.Stat(filepath.Join(store.Dir(), name))
			assert.Equal(t, tt.wantKept, statErr == nil)
			p.AssertExpectations(t)
		})
	}
}

func TestTranscriptService_MissingRecord(t *testing.T) {
	p := testutil.NewMockTranscriptionProvider(t, "deepgram")
	svc := services.NewTranscriptService(storage.NewLocalStore(t.TempDir(), zap.NewNop()), p, metrics.New(), zap.NewNop(), true)

	_, err := svc.Transcribe(context.Background(), &dto.TranscriptRequest{FileName: "ZZZZZZZZ.mp3"})

	apiErr, ok := apierrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
	p.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestTranscriptService_RejectsTraversal(t *testing.T) {
	p := testutil.NewMockTranscriptionProvider(t, "deepgram")
	svc := services.NewTranscriptService(storage.NewLocalStore(t.TempDir(), zap.NewNop()), p, metrics.New(), zap.NewNop(), true)

	for _, name := range []string{"../secret.env", "a/b.mp3", ".."} {
		_, err := svc.Transcribe(context.Background(), &dto.TranscriptRequest{FileName: name})
		apiErr, ok := apierrors.AsAPIError(err)
		require.True(t, ok, name)
		assert.Equal(t, apierrors.KindValidation, apiErr.Kind, name)
	}
}

func TestTranscriptService_Cancelled(t *testing.T) {
	store := storage.NewLocalStore(t.TempDir(), zap.NewNop())
	name := saveSample(t, store)

	p := testutil.NewMockTranscriptionProvider(t, "deepgram")
	p.On("Transcribe", mock.Anything, mock.Anything).Return(nil, &provider.TranscriptionError{
		Code: provider.CodeRequestCancelled, Provider: "deepgram", Err: context.Canceled,
	})

	svc := services.NewTranscriptService(store, p, metrics.New(), zap.NewNop(), true)
	_, err := svc.Transcribe(context.Background(), &dto.TranscriptRequest{FileName: name})

	assert.True(t, errors.Is(err, context.Canceled))
	_, statErr := os.Stat(filepath.Join(store.Dir(), name))
	assert.NoError(t, statErr, "record survives a cancelled transcription")
}
