package dto

import "call-scripter/internal/app/api/llm"

// ScriptRequest carries a transcript for single-shot generation
type ScriptRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// ChatMessage is one turn of a follow-up conversation about a script
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system" example:"user"`
	Content string `json:"content" example:"Make the opening shorter"`
}

// ScriptV2Request asks for a streamed script. Messages continue an earlier
// conversation and Type selects the prompt.
type ScriptV2Request struct {
	Transcript string        `json:"transcript" binding:"required"`
	Messages   []ChatMessage `json:"messages" binding:"omitempty,dive"`
	Type       string        `json:"type" example:"closing"`
}

// LLMMessages converts the chat history to generator messages, keeping order
func (r *ScriptV2Request) LLMMessages() []llm.Message {
	out := make([]llm.Message, len(r.Messages))
	for i, m := range r.Messages {
		out[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	return out
}
