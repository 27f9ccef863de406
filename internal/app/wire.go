//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"call-scripter/internal/api/server"
	"call-scripter/internal/api/v1/services"
	"call-scripter/internal/app/api/llm"
	"call-scripter/internal/app/api/provider"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/config"
)

// InitializeServer builds the HTTP server with every dependency it needs
func InitializeServer(ctx context.Context, cfg *config.Config, keys *config.APIKeys, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		provideRecordStore,
		provideTranscriptionProvider,
		provideGenerator,
		metrics.New,
		provideRecordService,
		provideTranscriptService,
		services.NewScriptService,
		provideServiceContainer,
		provideServerConfig,
		server.NewServer,
	)
	return &server.Server{}, nil
}

// InitializeTranscriber builds the configured speech-to-text provider for the CLI
func InitializeTranscriber(cfg *config.Config, keys *config.APIKeys) (provider.TranscriptionProvider, error) {
	wire.Build(provideTranscriptionProvider)
	return nil, nil
}

// InitializeGenerator builds the configured language model generator for the CLI
func InitializeGenerator(cfg *config.Config, keys *config.APIKeys) (llm.Generator, error) {
	wire.Build(provideGenerator)
	return nil, nil
}
