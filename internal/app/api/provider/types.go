package provider

import (
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"
)

// AudioFormat defines supported audio formats
type AudioFormat string

const (
	FormatWAV  AudioFormat = "wav"
	FormatMP3  AudioFormat = "mp3"
	FormatM4A  AudioFormat = "m4a"
	FormatFLAC AudioFormat = "flac"
	FormatOGG  AudioFormat = "ogg"
	FormatWEBM AudioFormat = "webm"
	FormatMP4  AudioFormat = "mp4"
)

// ProviderType defines where a provider runs
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeRemote ProviderType = "remote"
)

// TranscriptionRequest represents a single recording to transcribe
type TranscriptionRequest struct {
	// Audio is the recording content. It is read exactly once.
	Audio io.Reader `json:"-"`

	// FileName is the stored record name; some providers need it to infer the format
	FileName string `json:"file_name"`

	// MimeType is the content type reported at upload time
	MimeType string `json:"mimetype,omitempty"`

	// Language and model options
	Language string `json:"language,omitempty"`
	Model    string `json:"model,omitempty"`
}

// TranscriptionResponse represents the response from a transcription provider
type TranscriptionResponse struct {
	// Core result
	Text string `json:"text"`

	// Metadata
	Language   string        `json:"language,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Confidence float64       `json:"confidence,omitempty"`

	// Timing information (if supported)
	Words []TranscriptionWord `json:"words,omitempty"`

	// Provider-specific metadata
	ProviderMetadata map[string]interface{} `json:"provider_metadata,omitempty"`

	// Processing info
	ProcessingTime time.Duration `json:"processing_time,omitempty"`
	ModelUsed      string        `json:"model_used,omitempty"`
}

// TranscriptionWord represents a single word with timing information
type TranscriptionWord struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence,omitempty"`
	Speaker    *int    `json:"speaker,omitempty"`
}

// ProviderInfo contains metadata about a transcription provider
type ProviderInfo struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Type        ProviderType `json:"type"`

	SupportedFormats []AudioFormat `json:"supported_formats"`
	MaxFileSizeMB    int           `json:"max_file_size_mb,omitempty"` // 0 means no limit

	RequiresAPIKey  bool     `json:"requires_api_key"`
	DefaultModel    string   `json:"default_model,omitempty"`
	AvailableModels []string `json:"available_models,omitempty"`
}

// MimeTypeFor guesses a content type from a file name, falling back to
// application/octet-stream.
func MimeTypeFor(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch AudioFormat(strings.TrimPrefix(ext, ".")) {
	case FormatMP3:
		return "audio/mpeg"
	case FormatWAV:
		return "audio/wav"
	case FormatM4A:
		return "audio/mp4"
	case FormatFLAC:
		return "audio/flac"
	case FormatOGG:
		return "audio/ogg"
	case FormatWEBM:
		return "audio/webm"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
