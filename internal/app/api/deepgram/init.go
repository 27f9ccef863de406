package deepgram

import (
	"call-scripter/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(providerName, createDeepgramProvider)
}

// createDeepgramProvider creates a Deepgram provider from generic settings
func createDeepgramProvider(settings provider.Settings) (provider.TranscriptionProvider, error) {
	return NewDeepgramProvider(DeepgramConfig{
		APIKey:    settings.APIKey,
		BaseURL:   settings.BaseURL,
		Model:     settings.Model,
		Tier:      settings.Tier,
		Language:  settings.Language,
		Punctuate: settings.Punctuate,
		Timeout:   settings.Timeout,
	}, settings.HTTPClient), nil
}
