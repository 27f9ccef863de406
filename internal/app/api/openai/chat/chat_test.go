package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-scripter/internal/app/api/llm"
	apiopenai "call-scripter/internal/app/api/openai"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGenerator(apiopenai.NewClient("sk-test", server.URL+"/v1", server.Client()), "")
}

func decodeRequest(t *testing.T, r *http.Request) openai.ChatCompletionRequest {
	t.Helper()
	var req openai.ChatCompletionRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestGenerator_Generate(t *testing.T) {
	var got openai.ChatCompletionRequest
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		got = decodeRequest(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"  Rep: Hi there.\n"}}]}`)
	})

	text, err := g.Generate(context.Background(), llm.NewRequest("write a script", llm.ProfileCreative))
	require.NoError(t, err)
	assert.Equal(t, "Rep: Hi there.", text)

	assert.Equal(t, DefaultModel, got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "write a script", got.Messages[0].Content)
	assert.InDelta(t, 0.9, got.Temperature, 1e-6)
	assert.InDelta(t, 0.5, got.FrequencyPenalty, 1e-6)
	assert.InDelta(t, 1, got.PresencePenalty, 1e-6)
	assert.Equal(t, 1024, got.MaxTokens)
}

func TestGenerator_Generate_NoChoices(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[]}`)
	})

	_, err := g.Generate(context.Background(), llm.NewRequest("x", llm.ProfileCreative))
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)

	var ge *llm.GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "openai", ge.Provider)
}

func TestGenerator_Generate_APIError(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid API key","type":"invalid_request_error"}}`)
	})

	_, err := g.Generate(context.Background(), llm.NewRequest("x", llm.ProfileCreative))
	var ge *llm.GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, http.StatusUnauthorized, apiopenai.StatusCode(err))
}

func streamHandler(t *testing.T, got *openai.ChatCompletionRequest, deltas ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*got = decodeRequest(t, r)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, d := range deltas {
			payload, _ := json.Marshal(map[string]any{
				"choices": []map[string]any{{"index": 0, "delta": map[string]string{"content": d}}},
			})
			_, _ = fmt.Fprintf(w, "data: %s\n\n", payload)
		}
		_, _ = io.WriteString(w, "data: [DONE]\n\n")
	}
}

func TestGenerator_Stream(t *testing.T) {
	var got openai.ChatCompletionRequest
	g := newTestGenerator(t, streamHandler(t, &got, "", "Speaker: 1\n", "", "Rep:", " Hey"))

	req := &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "prompt"},
			{Role: llm.RoleAssistant, Content: "draft"},
			{Role: llm.RoleUser, Content: "shorter please"},
		},
		Profile: llm.ProfileScript,
	}

	var chunks []string
	err := g.Stream(context.Background(), req, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Speaker: 1\n", "Rep:", " Hey"}, chunks, "empty deltas are skipped")
	assert.Equal(t, "Speaker: 1\nRep: Hey", strings.Join(chunks, ""))

	assert.True(t, got.Stream)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "prompt", got.Messages[0].Content)
	assert.Equal(t, "assistant", got.Messages[1].Role)
	assert.Equal(t, "shorter please", got.Messages[2].Content)
	assert.Equal(t, 2048, got.MaxTokens)
	assert.Greater(t, got.Temperature, float32(0), "zero temperature survives omitempty")
	assert.Less(t, got.Temperature, float32(1e-6))
}

func TestGenerator_Stream_EmitError(t *testing.T) {
	var got openai.ChatCompletionRequest
	g := newTestGenerator(t, streamHandler(t, &got, "a", "b", "c"))

	stop := errors.New("client went away")
	calls := 0
	err := g.Stream(context.Background(), llm.NewRequest("x", llm.ProfileScript), func(string) error {
		calls++
		return stop
	})
	assert.Same(t, stop, err)
	assert.Equal(t, 1, calls)
}

func TestRegisteredGenerator(t *testing.T) {
	_, err := llm.CreateGenerator("openai", llm.Settings{})
	assert.Error(t, err)

	g, err := llm.CreateGenerator("openai", llm.Settings{APIKey: "sk-test", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "openai", g.Name())
	assert.Equal(t, "gpt-4o", g.(*Generator).Model())
}
