package llm

import (
	"context"

	"civicsprep-backend/internal/model"
)

// ChatMessage represents a message in a conversation
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// OfficerCompletion is the structured payload expected back from the
// completion capability for one officer turn.
type OfficerCompletion struct {
	OfficialResponse string                   `json:"official_response"`
	Fluency          *model.FluencyEvaluation `json:"fluency_evaluation,omitempty"`
}

// CompletionClient is the optional language-model capability. Being
// entirely absent (a nil client) is a valid, common state; every caller
// must keep a deterministic fallback path. Implementations return an
// error on transport failure, timeout, or malformed output; they never
// return a partial result.
type CompletionClient interface {
	GenerateOfficerResponse(ctx context.Context, systemPrompt string, history []ChatMessage, userMessage string) (*OfficerCompletion, error)
	EvaluateFluency(ctx context.Context, utterance string) (*model.FluencyEvaluation, error)
}
