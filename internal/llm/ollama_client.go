package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"civicsprep-backend/internal/model"
)

// OllamaClient talks to a local Ollama instance. All calls carry a
// bounded timeout; on any failure the caller falls back to templated
// officer text, so errors here never reach the applicant.
type OllamaClient struct {
	ollamaURL string
	modelName string
	client    *http.Client
}

func NewOllamaClient(url, modelName string, timeout time.Duration) *OllamaClient {
	if modelName == "" {
		modelName = "mistral"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OllamaClient{
		ollamaURL: url,
		modelName: modelName,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateOfficerResponse assembles the conversation into a single prompt
// and asks the model for a structured JSON reply.
func (o *OllamaClient) GenerateOfficerResponse(ctx context.Context, systemPrompt string, history []ChatMessage, userMessage string) (*OfficerCompletion, error) {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	b.WriteString("Respond with minimal JSON using keys 'official_response' (string) and ")
	b.WriteString("'fluency_evaluation' (object with 'score' as \"N/10\" and 'tip' as string).\n\n")

	for _, msg := range history {
		if msg.Role == "user" {
			b.WriteString("User: " + msg.Content + "\n")
		} else if msg.Role == "assistant" {
			b.WriteString("Assistant: " + msg.Content + "\n")
		}
	}
	if userMessage != "" {
		b.WriteString("User: " + userMessage + "\n")
	}
	b.WriteString("Assistant: ")

	response, err := o.callOllama(ctx, b.String())
	if err != nil {
		return nil, err
	}

	var completion OfficerCompletion
	if err := json.Unmarshal([]byte(extractJSONObject(response)), &completion); err != nil {
		return nil, fmt.Errorf("failed to parse completion response: %w", err)
	}
	if completion.OfficialResponse == "" {
		return nil, errors.New("completion response missing official_response")
	}
	if completion.Fluency != nil && !fluencyScorePattern.MatchString(completion.Fluency.Score) {
		completion.Fluency = nil
	}
	return &completion, nil
}

// EvaluateFluency asks the model for a subjective 1-10 speaking score.
func (o *OllamaClient) EvaluateFluency(ctx context.Context, utterance string) (*model.FluencyEvaluation, error) {
	prompt := fmt.Sprintf(
		"Rate the English fluency of this spoken answer from a citizenship interview: %q\n"+
			"Output minimal JSON with keys 'score' (formatted \"N/10\", N from 1 to 10) and "+
			"'tip' (one short improvement suggestion).",
		utterance,
	)

	response, err := o.callOllama(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var eval model.FluencyEvaluation
	if err := json.Unmarshal([]byte(extractJSONObject(response)), &eval); err != nil {
		return nil, fmt.Errorf("failed to parse fluency response: %w", err)
	}
	if !fluencyScorePattern.MatchString(eval.Score) {
		return nil, fmt.Errorf("malformed fluency score %q", eval.Score)
	}
	return &eval, nil
}

var fluencyScorePattern = regexp.MustCompile(`^(10|[1-9])/10$`)

// callOllama sends the prompt and returns the aggregated response text.
func (o *OllamaClient) callOllama(ctx context.Context, prompt string) (string, error) {
	requestBody, _ := json.Marshal(map[string]interface{}{
		"model":  o.modelName,
		"prompt": prompt,
	})

	req, err := http.NewRequestWithContext(ctx, "POST", o.ollamaURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	fullBody := string(bodyBytes)

	// Ollama may stream multiple JSON objects separated by newlines even
	// for non-streaming requests; aggregate the response fields.
	if strings.Contains(fullBody, "\n") {
		return AggregateStreamedResponse(fullBody), nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", err
	}
	if responseText, ok := result["response"].(string); ok {
		return responseText, nil
	}

	return "", errors.New("invalid response from Ollama")
}

type responseChunk struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// AggregateStreamedResponse takes a raw body holding multiple JSON
// objects separated by newlines and concatenates the "response" fields
// into one final string.
func AggregateStreamedResponse(body string) string {
	lines := strings.Split(body, "\n")
	var builder strings.Builder
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			var chunk responseChunk
			if err := json.Unmarshal([]byte(trimmed), &chunk); err != nil {
				continue
			}
			builder.WriteString(chunk.Response)
		}
	}
	return builder.String()
}

// extractJSONObject trims any prose the model wraps around its JSON.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}
