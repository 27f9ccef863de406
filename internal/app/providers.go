package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"call-scripter/internal/api/server"
	v1routes "call-scripter/internal/api/v1/routes"
	"call-scripter/internal/api/v1/services"
	"call-scripter/internal/app/api/llm"
	"call-scripter/internal/app/api/provider"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/app/storage"
	"call-scripter/internal/config"

	// Registered transcription providers and generators
	_ "call-scripter/internal/app/api/deepgram"
	_ "call-scripter/internal/app/api/gemini"
	_ "call-scripter/internal/app/api/openai/chat"
	_ "call-scripter/internal/app/api/openai/whisper"
)

// provideRecordStore selects the record backend from the storage config
func provideRecordStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.RecordStore, error) {
	switch cfg.Storage.Backend {
	case config.StorageMinio:
		return storage.NewMinioStore(ctx, cfg.Storage.Minio, logger)
	case config.StorageLocal:
		return storage.NewLocalStore(cfg.Storage.Dir, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// provideTranscriptionProvider creates the configured speech-to-text provider
func provideTranscriptionProvider(cfg *config.Config, keys *config.APIKeys) (provider.TranscriptionProvider, error) {
	t := cfg.Transcription

	apiKey := keys.Deepgram
	if t.Provider == config.ProviderOpenAI {
		apiKey = keys.OpenAI
	}

	model := t.Model
	if t.Provider == config.ProviderOpenAI && model == config.DefaultDeepgramModel {
		model = config.DefaultWhisperModel
	}
	baseURL := t.BaseURL
	if t.Provider == config.ProviderOpenAI && baseURL == config.DefaultDeepgramBaseURL {
		baseURL = ""
	}

	return provider.CreateProvider(t.Provider, provider.Settings{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Model:      model,
		Tier:       t.Tier,
		Language:   t.Language,
		Punctuate:  t.Punctuate,
		Timeout:    t.Timeout,
		HTTPClient: &http.Client{Timeout: t.Timeout},
	})
}

// provideGenerator creates the configured language model generator
func provideGenerator(cfg *config.Config, keys *config.APIKeys) (llm.Generator, error) {
	g := cfg.Generation

	apiKey := keys.OpenAI
	model := g.Model
	if g.Provider == config.ProviderGemini {
		apiKey = keys.Gemini
		if model == config.DefaultChatModel {
			model = config.DefaultGeminiModel
		}
	}

	return llm.CreateGenerator(g.Provider, llm.Settings{
		APIKey:  apiKey,
		BaseURL: g.BaseURL,
		Model:   model,
		Timeout: g.Timeout,
	})
}

func provideRecordService(store storage.RecordStore, m *metrics.Metrics, logger *zap.Logger, cfg *config.Config) services.RecordService {
	return services.NewRecordService(store, m, logger, cfg.Storage.MaxUploadBytes())
}

func provideTranscriptService(store storage.RecordStore, p provider.TranscriptionProvider, m *metrics.Metrics, logger *zap.Logger, cfg *config.Config) services.TranscriptService {
	return services.NewTranscriptService(store, p, m, logger, cfg.Storage.DeleteAfterTranscribe)
}

func provideServiceContainer(
	records services.RecordService,
	transcripts services.TranscriptService,
	scripts services.ScriptService,
	cfg *config.Config,
	logger *zap.Logger,
) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		RecordService:     records,
		TranscriptService: transcripts,
		ScriptService:     scripts,
		MaxUploadBytes:    cfg.Storage.MaxUploadBytes(),
		Logger:            logger,
	}
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		Environment:    cfg.Server.Environment,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes(),
	}
}
