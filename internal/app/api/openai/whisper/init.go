package whisper

import (
	apiopenai "call-scripter/internal/app/api/openai"
	"call-scripter/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(apiopenai.ProviderName, createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper provider from generic settings
func createOpenAIProvider(settings provider.Settings) (provider.TranscriptionProvider, error) {
	client := apiopenai.NewClient(settings.APIKey, settings.BaseURL, settings.HTTPClient)
	return NewRemoteTranscriber(client, WhisperConfig{
		APIKey:   settings.APIKey,
		BaseURL:  settings.BaseURL,
		Model:    settings.Model,
		Language: settings.Language,
	}), nil
}
