package chat

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"call-scripter/internal/app/api/llm"
	apiopenai "call-scripter/internal/app/api/openai"
)

// DefaultModel is the chat model used when none is configured
const DefaultModel = "gpt-4-32k-0613"

// Generator implements llm.Generator with the OpenAI chat completions API
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a chat generator for model
func NewGenerator(client *openai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Name implements llm.Generator
func (g *Generator) Name() string {
	return apiopenai.ProviderName
}

// Model returns the configured chat model
func (g *Generator) Model() string {
	return g.model
}

// Generate implements llm.Generator
func (g *Generator) Generate(ctx context.Context, req *llm.Request) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, g.buildRequest(req, false))
	if err != nil {
		return "", llm.Wrap(g.Name(), err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.Wrap(g.Name(), llm.ErrEmptyCompletion)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Stream implements llm.Generator
func (g *Generator) Stream(ctx context.Context, req *llm.Request, emit func(chunk string) error) error {
	stream, err := g.client.CreateChatCompletionStream(ctx, g.buildRequest(req, true))
	if err != nil {
		return llm.Wrap(g.Name(), err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return llm.Wrap(g.Name(), err)
		}
		if len(resp.Choices) == 0 {
			continue
		}

		chunk := resp.Choices[0].Delta.Content
		if chunk == "" {
			continue
		}
		if err := emit(chunk); err != nil {
			return err
		}
	}
}

func (g *Generator) buildRequest(req *llm.Request, stream bool) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	return openai.ChatCompletionRequest{
		Model:            g.model,
		Messages:         messages,
		Temperature:      temperature(req.Profile.Temperature),
		TopP:             req.Profile.TopP,
		FrequencyPenalty: req.Profile.FrequencyPenalty,
		PresencePenalty:  req.Profile.PresencePenalty,
		MaxTokens:        req.Profile.MaxTokens,
		Stream:           stream,
	}
}

// temperature keeps an explicit zero on the wire; the request field is
// omitempty and the API default is 1.
func temperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

func init() {
	llm.RegisterGenerator(apiopenai.ProviderName, func(settings llm.Settings) (llm.Generator, error) {
		if settings.APIKey == "" {
			return nil, errors.New("OpenAI API key is required")
		}
		httpClient := settings.HTTPClient
		if httpClient == nil && settings.Timeout > 0 {
			httpClient = &http.Client{Timeout: settings.Timeout}
		}
		client := apiopenai.NewClient(settings.APIKey, settings.BaseURL, httpClient)
		return NewGenerator(client, settings.Model), nil
	})
}
