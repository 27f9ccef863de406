package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"call-scripter/internal/app/api/provider"
)

const providerName = "deepgram"

// DeepgramConfig represents configuration for the Deepgram pre-recorded API
type DeepgramConfig struct {
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	Tier      string        `yaml:"tier"`
	Language  string        `yaml:"language"`
	Punctuate bool          `yaml:"punctuate"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DeepgramProvider implements provider.TranscriptionProvider for Deepgram
type DeepgramProvider struct {
	config DeepgramConfig
	client *http.Client
}

// listenResponse is the subset of the /v1/listen response we use
type listenResponse struct {
	Metadata struct {
		RequestID string  `json:"request_id"`
		Duration  float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			DetectedLanguage string `json:"detected_language"`
			Alternatives     []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
				Words      []struct {
					Word           string  `json:"word"`
					PunctuatedWord string  `json:"punctuated_word"`
					Start          float64 `json:"start"`
					End            float64 `json:"end"`
					Confidence     float64 `json:"confidence"`
					Speaker        *int    `json:"speaker"`
				} `json:"words"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// NewDeepgramProvider creates a new Deepgram provider
func NewDeepgramProvider(config DeepgramConfig, client *http.Client) *DeepgramProvider {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.deepgram.com"
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Minute
	}
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}

	return &DeepgramProvider{
		config: config,
		client: client,
	}
}

// Transcribe implements provider.TranscriptionProvider
func (d *DeepgramProvider) Transcribe(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request == nil || request.Audio == nil {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeInvalidInput,
			Message:  "audio content is required",
			Provider: providerName,
		}
	}

	httpReq, err := d.createHTTPRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(httpReq)
	if err != nil {
		code := provider.CodeNetworkError
		if errors.Is(err, context.Canceled) {
			code = provider.CodeRequestCancelled
		}
		return nil, &provider.TranscriptionError{
			Code:      code,
			Message:   fmt.Sprintf("failed to call Deepgram API: %v", err),
			Provider:  providerName,
			Retryable: code == provider.CodeNetworkError,
			Err:       err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, provider.ErrorFromStatus(providerName, resp.StatusCode, body)
	}

	var listenResp listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&listenResp); err != nil {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeResponseParse,
			Message:  fmt.Sprintf("failed to parse API response: %v", err),
			Provider: providerName,
			Err:      err,
		}
	}

	if len(listenResp.Results.Channels) == 0 || len(listenResp.Results.Channels[0].Alternatives) == 0 {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeResponseParse,
			Message:  "response contained no transcript alternatives",
			Provider: providerName,
		}
	}

	channel := listenResp.Results.Channels[0]
	alt := channel.Alternatives[0]

	response := &provider.TranscriptionResponse{
		Text:           alt.Transcript,
		Language:       channel.DetectedLanguage,
		Duration:       time.Duration(listenResp.Metadata.Duration * float64(time.Second)),
		Confidence:     alt.Confidence,
		ProcessingTime: time.Since(startTime),
		ModelUsed:      d.getModel(request),
		ProviderMetadata: map[string]interface{}{
			"request_id": listenResp.Metadata.RequestID,
			"tier":       d.config.Tier,
		},
	}

	if len(alt.Words) > 0 {
		response.Words = make([]provider.TranscriptionWord, len(alt.Words))
		for i, w := range alt.Words {
			word := w.PunctuatedWord
			if word == "" {
				word = w.Word
			}
			response.Words[i] = provider.TranscriptionWord{
				Word:       word,
				Start:      w.Start,
				End:        w.End,
				Confidence: w.Confidence,
				Speaker:    w.Speaker,
			}
		}
	}

	return response, nil
}

// createHTTPRequest creates the HTTP request for the Deepgram listen endpoint.
// The audio is streamed as the raw request body.
func (d *DeepgramProvider) createHTTPRequest(ctx context.Context, request *provider.TranscriptionRequest) (*http.Request, error) {
	endpoint := d.config.BaseURL + "/v1/listen?" + d.queryParams(request).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, request.Audio)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     provider.CodeInvalidRequest,
			Message:  fmt.Sprintf("failed to create HTTP request: %v", err),
			Provider: providerName,
			Err:      err,
		}
	}

	mimeType := request.MimeType
	if mimeType == "" {
		mimeType = provider.MimeTypeFor(request.FileName)
	}

	req.Header.Set("Authorization", "Token "+d.config.APIKey)
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "call-scripter/1.0")

	return req, nil
}

func (d *DeepgramProvider) queryParams(request *provider.TranscriptionRequest) url.Values {
	q := url.Values{}
	q.Set("punctuate", strconv.FormatBool(d.config.Punctuate))
	if model := d.getModel(request); model != "" {
		q.Set("model", model)
	}
	if d.config.Tier != "" {
		q.Set("tier", d.config.Tier)
	}
	if language := d.getLanguage(request); language != "" {
		q.Set("language", language)
	}
	return q
}

// getModel determines which model to use
func (d *DeepgramProvider) getModel(request *provider.TranscriptionRequest) string {
	if request.Model != "" {
		return request.Model
	}
	return d.config.Model
}

func (d *DeepgramProvider) getLanguage(request *provider.TranscriptionRequest) string {
	if request.Language != "" {
		return request.Language
	}
	return d.config.Language
}

// GetProviderInfo implements provider.TranscriptionProvider
func (d *DeepgramProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:        providerName,
		DisplayName: "Deepgram Pre-recorded",
		Type:        provider.ProviderTypeRemote,
		SupportedFormats: []provider.AudioFormat{
			provider.FormatMP3,
			provider.FormatWAV,
			provider.FormatM4A,
			provider.FormatFLAC,
			provider.FormatOGG,
			provider.FormatWEBM,
			provider.FormatMP4,
		},
		RequiresAPIKey:  true,
		DefaultModel:    d.config.Model,
		AvailableModels: []string{"phonecall", "general", "meeting", "nova-2-phonecall"},
	}
}

// ValidateConfiguration implements provider.TranscriptionProvider
func (d *DeepgramProvider) ValidateConfiguration() error {
	if d.config.APIKey == "" {
		return fmt.Errorf("Deepgram API key is required")
	}
	if d.config.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if d.config.Timeout < 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
