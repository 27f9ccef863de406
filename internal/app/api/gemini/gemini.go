// Package gemini implements llm.Generator on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"call-scripter/internal/app/api/llm"
)

const (
	// ProviderName is the registry name of the Gemini generator
	ProviderName = "gemini"

	// DefaultModel is used when no model is configured
	DefaultModel = "gemini-1.5-pro"
)

// Generator implements llm.Generator with genai.Models
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a Gemini generator from settings
func NewGenerator(ctx context.Context, settings llm.Settings) (*Generator, error) {
	if settings.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:     settings.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: settings.HTTPClient,
	}
	if settings.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = strings.TrimRight(settings.BaseURL, "/") + "/"
	}
	if settings.Timeout > 0 {
		timeout := settings.Timeout
		cfg.HTTPOptions.Timeout = &timeout
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	model := settings.Model
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}, nil
}

// Name implements llm.Generator
func (g *Generator) Name() string {
	return ProviderName
}

// Generate implements llm.Generator
func (g *Generator) Generate(ctx context.Context, req *llm.Request) (string, error) {
	contents, config := buildRequest(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", llm.Wrap(ProviderName, err)
	}
	if len(resp.Candidates) == 0 {
		return "", llm.Wrap(ProviderName, llm.ErrEmptyCompletion)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// Stream implements llm.Generator
func (g *Generator) Stream(ctx context.Context, req *llm.Request, emit func(chunk string) error) error {
	contents, config := buildRequest(req)

	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, config) {
		if err != nil {
			return llm.Wrap(ProviderName, err)
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		if err := emit(chunk); err != nil {
			return err
		}
	}
	return nil
}

// buildRequest maps the conversation onto Gemini contents. Assistant turns
// become model turns and system messages are merged into the system
// instruction.
func buildRequest(req *llm.Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	var (
		contents []*genai.Content
		system   []string
	)
	for _, m := range req.Messages {
		switch m.Role {
		case llm.RoleSystem:
			system = append(system, m.Content)
		case llm.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	p := req.Profile
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(p.Temperature),
		TopP:            genai.Ptr(p.TopP),
		MaxOutputTokens: int32(p.MaxTokens),
	}
	if p.FrequencyPenalty != 0 {
		config.FrequencyPenalty = genai.Ptr(p.FrequencyPenalty)
	}
	if p.PresencePenalty != 0 {
		config.PresencePenalty = genai.Ptr(p.PresencePenalty)
	}
	if len(system) > 0 {
		config.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}
	return contents, config
}

func init() {
	llm.RegisterGenerator(ProviderName, func(settings llm.Settings) (llm.Generator, error) {
		return NewGenerator(context.Background(), settings)
	})
}
