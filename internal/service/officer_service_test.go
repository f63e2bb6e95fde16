package service

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicsprep-backend/internal/llm"
	"civicsprep-backend/internal/model"
)

func newOfflineOfficer() OfficerService {
	return NewOfficerService(nil, rand.New(rand.NewSource(1)))
}

// recordingCompletionClient scripts one completion and records what the
// officer service handed it.
type recordingCompletionClient struct {
	completion  *llm.OfficerCompletion
	lastHistory []llm.ChatMessage
	lastUser    string
}

func (c *recordingCompletionClient) GenerateOfficerResponse(ctx context.Context, systemPrompt string, history []llm.ChatMessage, userMessage string) (*llm.OfficerCompletion, error) {
	c.lastHistory = history
	c.lastUser = userMessage
	return c.completion, nil
}

func (c *recordingCompletionClient) EvaluateFluency(ctx context.Context, utterance string) (*model.FluencyEvaluation, error) {
	return nil, errors.New("fluency not scripted")
}

func officerSession(stage model.InterviewStage) *model.InterviewSession {
	return &model.InterviewSession{
		Stage:   stage,
		Context: model.ApplicantContext{Name: "Maria Lopez"},
	}
}

func TestFallbackOpenersPerStage(t *testing.T) {
	officer := newOfflineOfficer()
	ctx := context.Background()

	greeting := officer.GenerateStageOpener(ctx, officerSession(model.StageGreeting))
	assert.False(t, greeting.FromLLM)
	assert.Contains(t, greeting.Content, "Maria Lopez")

	identity := officer.GenerateStageOpener(ctx, officerSession(model.StageIdentity))
	assert.Contains(t, identity.Content, "name")
	assert.Contains(t, identity.Content, "date of birth")

	oath := officer.GenerateStageOpener(ctx, officerSession(model.StageOath))
	assert.Contains(t, strings.ToLower(oath.Content), "oath")

	closing := officer.GenerateStageOpener(ctx, officerSession(model.StageClosing))
	assert.Contains(t, closing.Content, "Maria Lopez")
}

func TestN400QuestionScript(t *testing.T) {
	officer := newOfflineOfficer()

	first, ok := officer.N400Question(0)
	require.True(t, ok)
	assert.Contains(t, strings.ToLower(first), "address")

	for i := 0; i < 6; i++ {
		q, ok := officer.N400Question(i)
		assert.True(t, ok, "question %d missing", i)
		assert.NotEmpty(t, q)
	}

	_, ok = officer.N400Question(6)
	assert.False(t, ok)
	_, ok = officer.N400Question(-1)
	assert.False(t, ok)
}

func TestGenerateResponseSendsUtteranceAsLatestTurn(t *testing.T) {
	client := &recordingCompletionClient{
		completion: &llm.OfficerCompletion{OfficialResponse: "Thank you, that matches our records."},
	}
	officer := NewOfficerService(client, rand.New(rand.NewSource(1)))

	session := officerSession(model.StageIdentity)
	session.Messages = []model.InterviewMessage{
		{Role: model.RoleOfficer, Content: "Please state your full legal name."},
		{Role: model.RoleApplicant, Content: "Maria Lopez"},
	}

	resp := officer.GenerateResponse(context.Background(), session, "Maria Lopez")
	assert.True(t, resp.FromLLM)
	assert.Equal(t, "Thank you, that matches our records.", resp.Content)
	assert.Equal(t, "Maria Lopez", client.lastUser)

	// The utterance rides as the explicit latest turn, so its recorded
	// copy must not be replayed in the history as well.
	require.Len(t, client.lastHistory, 1)
	assert.Equal(t, "assistant", client.lastHistory[0].Role)

	officer.GenerateStageOpener(context.Background(), session)
	assert.Empty(t, client.lastUser)
}

func TestFallbackFluencyScoring(t *testing.T) {
	officer := newOfflineOfficer()
	ctx := context.Background()
	scoreFormat := regexp.MustCompile(`^(10|[1-9])/10$`)

	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"very short answer penalized", "hi", "3/10"},
		{"plain answer baseline", "yes I am ready", "5/10"},
		{"fuller answer rewarded", "yes officer, I am ready to begin", "6/10"},
		{"long answer rewarded more", "my name is Maria Lopez and I was born on the first of June in nineteen ninety", "7/10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := officer.EvaluateFluency(ctx, tt.utterance)
			require.NotNil(t, eval)
			assert.Equal(t, tt.want, eval.Score)
			assert.Regexp(t, scoreFormat, eval.Score)
			assert.NotEmpty(t, eval.Tip)
		})
	}
}

func TestSpeechText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"form number", "Let's review your N-400 form.", "Let's review your N four hundred form."},
		{"small number", "You listed 2 children.", "You listed two children."},
		{"composed number", "The Constitution has 27 amendments.", "The Constitution has twenty-seven amendments."},
		{"hundred", "There are 100 senators? No, 100 is the Senate count.", "There are one hundred senators? No, one hundred is the Senate count."},
		{"no digits untouched", "Please read this sentence aloud.", "Please read this sentence aloud."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, speechText(tt.in))
		})
	}
}
