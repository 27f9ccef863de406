package testutil

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/mock"

	"call-scripter/internal/api/v1/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	RecordService     *MockRecordService
	TranscriptService *MockTranscriptService
	ScriptService     *MockScriptService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		RecordService:     NewMockRecordService(t),
		TranscriptService: NewMockTranscriptService(t),
		ScriptService:     NewMockScriptService(t),
	}
}

// MockRecordService is a mock implementation of RecordService
type MockRecordService struct {
	mock.Mock
}

func NewMockRecordService(t *testing.T) *MockRecordService {
	m := &MockRecordService{}
	m.Test(t)
	return m
}

func (m *MockRecordService) Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadRecordResponse, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadRecordResponse), args.Error(1)
}

// MockTranscriptService is a mock implementation of TranscriptService
type MockTranscriptService struct {
	mock.Mock
}

func NewMockTranscriptService(t *testing.T) *MockTranscriptService {
	m := &MockTranscriptService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptService) Transcribe(ctx context.Context, req *dto.TranscriptRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockScriptService is a mock implementation of ScriptService.
// StreamScript emits every chunk passed as the Chunks field of the call
// arguments before returning the configured error.
type MockScriptService struct {
	mock.Mock
}

func NewMockScriptService(t *testing.T) *MockScriptService {
	m := &MockScriptService{}
	m.Test(t)
	return m
}

func (m *MockScriptService) Script(ctx context.Context, req *dto.ScriptRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockScriptService) Summary(ctx context.Context, req *dto.ScriptRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// StreamScript returns (chunks []string, err error) from the expectation
func (m *MockScriptService) StreamScript(ctx context.Context, req *dto.ScriptV2Request, emit func(chunk string) error) error {
	args := m.Called(ctx, req)
	if chunks, ok := args.Get(0).([]string); ok {
		for _, chunk := range chunks {
			if err := emit(chunk); err != nil {
				return err
			}
		}
	}
	return args.Error(1)
}
