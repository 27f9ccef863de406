// Package llm defines the text generation contract shared by the language
// model providers.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Message roles accepted by every generator
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrEmptyCompletion is returned when the model answers without any choices
var ErrEmptyCompletion = errors.New("completion contained no choices")

// Message is one turn of a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Profile holds the sampling parameters for a request
type Profile struct {
	Name             string
	Temperature      float32
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
	MaxTokens        int
}

var (
	// ProfileScript is deterministic and long, used for multi-turn call scripts
	ProfileScript = Profile{
		Name:        "script",
		Temperature: 0,
		TopP:        1,
		MaxTokens:   2048,
	}

	// ProfileCreative is used for single-shot scripts and summaries
	ProfileCreative = Profile{
		Name:             "creative",
		Temperature:      0.9,
		TopP:             1,
		FrequencyPenalty: 0.5,
		PresencePenalty:  1,
		MaxTokens:        1024,
	}
)

// Request is a single generation call
type Request struct {
	Messages []Message
	Profile  Profile
}

// NewRequest builds a request with a single user message
func NewRequest(prompt string, profile Profile) *Request {
	return &Request{
		Messages: []Message{{Role: RoleUser, Content: prompt}},
		Profile:  profile,
	}
}

// Generator produces text from a conversation
type Generator interface {
	// Generate returns the complete answer
	Generate(ctx context.Context, req *Request) (string, error)

	// Stream calls emit for every non-empty chunk as it arrives. An error
	// returned by emit stops the stream and is returned unchanged.
	Stream(ctx context.Context, req *Request, emit func(chunk string) error) error

	// Name identifies the provider in logs, metrics and errors
	Name() string
}

// GenerationError wraps a failure reported by an upstream model provider
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Wrap returns err as a GenerationError for provider, leaving nil and
// existing GenerationErrors untouched.
func Wrap(provider string, err error) error {
	if err == nil {
		return nil
	}
	var ge *GenerationError
	if errors.As(err, &ge) {
		return err
	}
	return &GenerationError{Provider: provider, Err: err}
}
