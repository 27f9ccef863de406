package whisper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	apiopenai "call-scripter/internal/app/api/openai"
	"call-scripter/internal/app/api/provider"
)

// WhisperConfig represents configuration specific to the OpenAI Whisper provider
type WhisperConfig struct {
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	config WhisperConfig
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, config WhisperConfig) *RemoteTranscriber {
	if config.Model == "" {
		config.Model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, config: config}
}

// Transcribe implements provider.TranscriptionProvider
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request == nil || request.Audio == nil {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeInvalidInput,
			Message:  "audio content is required",
			Provider: apiopenai.ProviderName,
		}
	}

	// FilePath only names the multipart part when Reader is set
	req := openai.AudioRequest{
		Model:    rt.getModel(request),
		Reader:   request.Audio,
		FilePath: request.FileName,
		Language: rt.getLanguage(request),
	}

	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, handleAPIError(err)
	}

	return &provider.TranscriptionResponse{
		Text:           resp.Text,
		Language:       resp.Language,
		Duration:       time.Duration(resp.Duration * float64(time.Second)),
		ProcessingTime: time.Since(startTime),
		ModelUsed:      req.Model,
	}, nil
}

func (rt *RemoteTranscriber) getModel(request *provider.TranscriptionRequest) string {
	if request.Model != "" {
		return request.Model
	}
	return rt.config.Model
}

func (rt *RemoteTranscriber) getLanguage(request *provider.TranscriptionRequest) string {
	if request.Language != "" {
		return request.Language
	}
	return rt.config.Language
}

// handleAPIError converts OpenAI API errors to TranscriptionError
func handleAPIError(err error) error {
	if errors.Is(err, context.Canceled) {
		return &provider.TranscriptionError{
			Code:     provider.CodeRequestCancelled,
			Message:  "transcription cancelled",
			Provider: apiopenai.ProviderName,
			Err:      err,
		}
	}

	status := apiopenai.StatusCode(err)
	if status == 0 {
		return &provider.TranscriptionError{
			Code:      provider.CodeNetworkError,
			Message:   fmt.Sprintf("transcription failed: %v", err),
			Provider:  apiopenai.ProviderName,
			Retryable: true,
			Err:       err,
		}
	}

	te := provider.ErrorFromStatus(apiopenai.ProviderName, status, []byte(err.Error()))
	if status == http.StatusUnauthorized {
		te.Suggestions = []string{"Check your OPENAI_API_KEY environment variable"}
	}
	te.Err = err
	return te
}

// GetProviderInfo returns metadata about the OpenAI provider
func (rt *RemoteTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:        apiopenai.ProviderName,
		DisplayName: "OpenAI Whisper API",
		Type:        provider.ProviderTypeRemote,
		SupportedFormats: []provider.AudioFormat{
			provider.FormatMP3,
			provider.FormatM4A,
			provider.FormatWAV,
			provider.FormatWEBM,
			provider.FormatMP4,
			provider.FormatOGG,
			provider.FormatFLAC,
		},
		MaxFileSizeMB:   25,
		RequiresAPIKey:  true,
		DefaultModel:    rt.config.Model,
		AvailableModels: []string{openai.Whisper1},
	}
}

// ValidateConfiguration validates the provider configuration
func (rt *RemoteTranscriber) ValidateConfiguration() error {
	if rt.config.APIKey == "" {
		return fmt.Errorf("OpenAI API key is required")
	}
	return nil
}
