package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apierrors "call-scripter/internal/api/errors"
	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/app/api/llm"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/app/prompt"
)

type scriptService struct {
	generator llm.Generator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewScriptService creates a ScriptService that prompts generator
func NewScriptService(generator llm.Generator, m *metrics.Metrics, logger *zap.Logger) ScriptService {
	return &scriptService{
		generator: generator,
		metrics:   m,
		logger:    logger,
	}
}

func (s *scriptService) Script(ctx context.Context, req *dto.ScriptRequest) (string, error) {
	return s.generate(ctx, "script", llm.NewRequest(prompt.ObjectivePrompt(req.Transcript), llm.ProfileCreative))
}

func (s *scriptService) Summary(ctx context.Context, req *dto.ScriptRequest) (string, error) {
	return s.generate(ctx, "summary", llm.NewRequest(prompt.SummaryPrompt(req.Transcript), llm.ProfileCreative))
}

func (s *scriptService) StreamScript(ctx context.Context, req *dto.ScriptV2Request, emit func(chunk string) error) error {
	genReq := &llm.Request{
		Messages: ScriptMessages(req),
		Profile:  llm.ProfileScript,
	}

	start := time.Now()
	chunks := 0
	err := s.generator.Stream(ctx, genReq, func(chunk string) error {
		chunks++
		return emit(chunk)
	})
	elapsed := time.Since(start)
	s.metrics.ObserveUpstream(s.generator.Name(), "stream", err, elapsed)

	if err != nil {
		s.logger.Error("Script stream failed",
			zap.String("provider", s.generator.Name()),
			zap.String("type", req.Type),
			zap.Int("chunks", chunks),
			zap.Error(err),
		)
		return s.upstreamError(err)
	}

	s.logger.Info("Script streamed",
		zap.String("provider", s.generator.Name()),
		zap.String("type", req.Type),
		zap.Int("history", len(req.Messages)),
		zap.Int("chunks", chunks),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}

// ScriptMessages builds the conversation for a streamed script: the
// type-specific prompt as the first user turn, then the caller's history in
// order.
func ScriptMessages(req *dto.ScriptV2Request) []llm.Message {
	messages := make([]llm.Message, 0, len(req.Messages)+1)
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: prompt.ForScriptType(req.Type, req.Transcript),
	})
	return append(messages, req.LLMMessages()...)
}

func (s *scriptService) generate(ctx context.Context, operation string, req *llm.Request) (string, error) {
	start := time.Now()
	text, err := s.generator.Generate(ctx, req)
	elapsed := time.Since(start)
	s.metrics.ObserveUpstream(s.generator.Name(), operation, err, elapsed)

	if err != nil {
		s.logger.Error("Generation failed",
			zap.String("provider", s.generator.Name()),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return "", s.upstreamError(err)
	}

	s.logger.Info("Generation completed",
		zap.String("provider", s.generator.Name()),
		zap.String("operation", operation),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", elapsed),
	)
	return text, nil
}

// upstreamError maps provider failures to 502; anything else, such as an
// error from the caller's emit function, is returned unchanged.
func (s *scriptService) upstreamError(err error) error {
	var ge *llm.GenerationError
	if !errors.As(err, &ge) {
		return err
	}
	code := ""
	if errors.Is(err, llm.ErrEmptyCompletion) {
		code = "empty_completion"
	}
	return apierrors.NewUpstreamError(ge.Provider, code, err)
}
