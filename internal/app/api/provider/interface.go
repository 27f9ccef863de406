package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// TranscriptionProvider turns a recording into text through an external service
type TranscriptionProvider interface {
	// Transcribe sends the recording to the provider and returns the transcript
	Transcribe(ctx context.Context, request *TranscriptionRequest) (*TranscriptionResponse, error)

	// GetProviderInfo returns provider metadata and capabilities
	GetProviderInfo() ProviderInfo

	// ValidateConfiguration checks the provider can be called at all
	ValidateConfiguration() error
}

// TranscribeFile transcribes a recording on the local filesystem.
// The MIME type is inferred from the extension when empty.
func TranscribeFile(ctx context.Context, p TranscriptionProvider, path string, mimeType string) (*TranscriptionResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TranscriptionError{
				Code:     CodeFileNotFound,
				Message:  fmt.Sprintf("input file not found: %s", path),
				Provider: p.GetProviderInfo().Name,
			}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if mimeType == "" {
		mimeType = MimeTypeFor(path)
	}

	return p.Transcribe(ctx, &TranscriptionRequest{
		Audio:    f,
		FileName: filepath.Base(path),
		MimeType: mimeType,
	})
}
