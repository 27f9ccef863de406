package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"call-scripter/internal/app/api/llm"
	"call-scripter/internal/app/api/provider"
)

// MockTranscriptionProvider is a testify mock of provider.TranscriptionProvider.
// The audio is drained on every call and kept in LastAudio.
type MockTranscriptionProvider struct {
	mock.Mock
	Name      string
	LastAudio []byte
}

func NewMockTranscriptionProvider(t *testing.T, name string) *MockTranscriptionProvider {
	m := &MockTranscriptionProvider{Name: name}
	m.Test(t)
	return m
}

func (m *MockTranscriptionProvider) Transcribe(ctx context.Context, req *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	if req.Audio != nil {
		m.LastAudio, _ = io.ReadAll(req.Audio)
	}
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.TranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{Name: m.Name, Type: provider.ProviderTypeRemote}
}

func (m *MockTranscriptionProvider) ValidateConfiguration() error {
	return nil
}

// MockGenerator is a testify mock of llm.Generator.
// Stream takes (chunks []string, err error) from the expectation.
type MockGenerator struct {
	mock.Mock
	ProviderName string
}

func NewMockGenerator(t *testing.T, name string) *MockGenerator {
	m := &MockGenerator{ProviderName: name}
	m.Test(t)
	return m
}

func (m *MockGenerator) Name() string {
	return m.ProviderName
}

func (m *MockGenerator) Generate(ctx context.Context, req *llm.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) Stream(ctx context.Context, req *llm.Request, emit func(chunk string) error) error {
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
