package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"civicsprep-backend/internal/llm"
	"civicsprep-backend/internal/model"
	"civicsprep-backend/utilities"
)

// historyWindow bounds how much conversation is replayed to the
// completion capability.
const historyWindow = 12

// stageTemplates is the deterministic fallback script. Every stage has an
// entry; this path never fails and never touches the network. %s is the
// applicant's display name where present.
var stageTemplates = map[model.InterviewStage]string{
	model.StageGreeting:   "Good morning, %s. I'm Officer Reyes and I'll be conducting your naturalization interview today. Please have a seat. Are you ready to begin?",
	model.StageIdentity:   "Thank you. For the record, please state your full legal name and your date of birth.",
	model.StageN400Review: "Thank you, %s. Now I'd like to review some of the information from your N-400 application.",
	model.StageOath:       "Before we go further, please raise your right hand. Do you swear to tell the truth during this interview? This is your oath.",
	model.StageCivics:     "Very good. Now we'll move on to the civics portion of your interview. I'm going to ask you some questions about American government and history.",
	model.StageReading:    "Now for the reading test. Please read this sentence aloud: \"Who was the first President of the United States?\"",
	model.StageWriting:    "Good. Now the writing test. Please write this sentence: \"Washington was the first President.\"",
	model.StageClosing:    "That completes your interview today, %s. You did well. You will receive a written decision about your application by mail. Congratulations on finishing your practice interview.",
}

// n400FieldQuestions is the ordered question script for the N-400 review
// stage. The officer walks the list in order, one field per turn.
var n400FieldQuestions = []string{
	"Let's confirm your records. What is your current home address?",
	"What is your occupation? What kind of work do you do?",
	"What is your marital status? Are you married, single, divorced, or widowed?",
	"Have you taken any trips outside the United States in the last five years? How many?",
	"How many children do you have, if any?",
	"Do you file your federal taxes every year?",
}

var fallbackFluencyTips = []string{
	"Try to answer in complete sentences.",
	"Speak a little more slowly and clearly.",
	"Add one more detail to your answer.",
	"Practice the vocabulary from your N-400 form.",
	"Good pace. Keep your answers direct.",
}

// OfficerResponse is one generated officer turn.
type OfficerResponse struct {
	Content string
	Fluency *model.FluencyEvaluation
	FromLLM bool
}

// OfficerService produces the officer's next line of dialogue for a
// stage. When a completion capability is configured it is asked first;
// the templated script is the fallback on any failure, so the interview
// never stalls on the model.
type OfficerService interface {
	GenerateStageOpener(ctx context.Context, session *model.InterviewSession) OfficerResponse
	GenerateResponse(ctx context.Context, session *model.InterviewSession, userMessage string) OfficerResponse
	N400Question(index int) (string, bool)
	EvaluateFluency(ctx context.Context, utterance string) *model.FluencyEvaluation
}

type officerService struct {
	client llm.CompletionClient
	rng    *rand.Rand
	mu     sync.Mutex
}

// NewOfficerService builds the generator. client may be nil: the service
// then runs entirely on the fallback script. The random source feeds the
// canned-tip picker and is injected so tests can pin it.
func NewOfficerService(client llm.CompletionClient, rng *rand.Rand) OfficerService {
	return &officerService{client: client, rng: rng}
}

// GenerateStageOpener produces the officer line that opens the session's
// current stage.
func (o *officerService) GenerateStageOpener(ctx context.Context, session *model.InterviewSession) OfficerResponse {
	return o.generate(ctx, session, "")
}

// GenerateResponse produces the officer reaction to the latest applicant
// message.
func (o *officerService) GenerateResponse(ctx context.Context, session *model.InterviewSession, userMessage string) OfficerResponse {
	return o.generate(ctx, session, userMessage)
}

func (o *officerService) generate(ctx context.Context, session *model.InterviewSession, userMessage string) OfficerResponse {
	if o.client != nil {
		prompt := o.GetStagePrompt(session.Stage, session)
		history := conversationHistory(session)
		// The explicit userMessage is the latest turn. The session usually
		// already recorded it, so drop its copy from the replayed history.
		if userMessage != "" && len(history) > 0 {
			last := history[len(history)-1]
			if last.Role == "user" && last.Content == userMessage {
				history = history[:len(history)-1]
			}
		}
		completion, err := o.client.GenerateOfficerResponse(ctx, prompt, history, userMessage)
		if err == nil && completion != nil {
			return OfficerResponse{
				Content: completion.OfficialResponse,
				Fluency: completion.Fluency,
				FromLLM: true,
			}
		}
		if err != nil {
			utilities.Warn("completion capability failed, using fallback script: %v", err)
		}
	}
	return OfficerResponse{Content: o.fallbackLine(session)}
}

func (o *officerService) fallbackLine(session *model.InterviewSession) string {
	template, ok := stageTemplates[session.Stage]
	if !ok {
		template = stageTemplates[model.StageClosing]
	}
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, session.Context.Name)
	}
	return template
}

// N400Question returns the index-th scripted N-400 review question.
func (o *officerService) N400Question(index int) (string, bool) {
	if index < 0 || index >= len(n400FieldQuestions) {
		return "", false
	}
	return n400FieldQuestions[index], true
}

// GetStagePrompt builds the system prompt handed to the completion
// capability for the session's stage.
func (o *officerService) GetStagePrompt(stage model.InterviewStage, session *model.InterviewSession) string {
	name := session.Context.Name

	var b strings.Builder
	b.WriteString("You are a USCIS officer conducting a naturalization interview with ")
	b.WriteString(name)
	b.WriteString(". Stay in character: professional, patient, and encouraging. ")

	switch stage {
	case model.StageGreeting:
		b.WriteString("Greet the applicant warmly and ask whether they are ready to begin.")
	case model.StageIdentity:
		b.WriteString("Ask the applicant to confirm their full legal name and date of birth.")
	case model.StageN400Review:
		b.WriteString("You are reviewing the applicant's N-400 application. Ask about one field at a time and compare their answer with the records below. ")
		b.WriteString("Accept answers that are close in meaning even when the wording differs; spoken answers will not match the form exactly.\n")
		b.WriteString(formDataSummary(session.Context.FormData))
	case model.StageOath:
		b.WriteString("Administer the oath to tell the truth and confirm the applicant takes it.")
	case model.StageCivics:
		if session.CurrentCivicsQuestion != nil {
			b.WriteString("Ask this civics question exactly: ")
			b.WriteString(session.CurrentCivicsQuestion.Question)
		} else {
			b.WriteString("Introduce the civics test: up to 10 questions about American government and history.")
		}
	case model.StageReading:
		b.WriteString("Run the reading test: give the applicant one simple sentence to read aloud.")
	case model.StageWriting:
		b.WriteString("Run the writing test: dictate one simple sentence for the applicant to write.")
	case model.StageClosing:
		b.WriteString("Close the interview politely and explain that a written decision will arrive by mail.")
	}

	return b.String()
}

func formDataSummary(form *model.N400FormData) string {
	if form == nil {
		return "No N-400 form data is available; ask general biographical questions instead.\n"
	}
	var b strings.Builder
	b.WriteString("N-400 records on file:\n")
	write := func(label, value string) {
		if value != "" {
			b.WriteString("- " + label + ": " + value + "\n")
		}
	}
	write("Address", form.Address)
	write("Occupation", form.Occupation)
	write("Marital status", form.MaritalStatus)
	write("Years in country", form.YearsInCountry)
	write("Children", form.Children)
	write("Travel history", form.TravelHistory)
	write("Legal issues", form.LegalIssues)
	write("Files taxes", form.PaysTaxes)
	for key, value := range form.ExtraFields {
		write(key, value)
	}
	return b.String()
}

// EvaluateFluency scores the applicant's utterance. The fallback score is
// a crude length heuristic paired with a canned tip; it exists so the
// applicant always gets feedback even fully offline.
func (o *officerService) EvaluateFluency(ctx context.Context, utterance string) *model.FluencyEvaluation {
	if o.client != nil {
		eval, err := o.client.EvaluateFluency(ctx, utterance)
		if err == nil && eval != nil {
			return eval
		}
		if err != nil {
			utilities.Warn("fluency evaluation failed, using fallback score: %v", err)
		}
	}

	score := 5
	switch {
	case len(utterance) < 5:
		score -= 2
	case len(utterance) > 50:
		score += 2
	case len(utterance) > 20:
		score++
	}
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	o.mu.Lock()
	tip := fallbackFluencyTips[o.rng.Intn(len(fallbackFluencyTips))]
	o.mu.Unlock()

	return &model.FluencyEvaluation{
		Score: fmt.Sprintf("%d/10", score),
		Tip:   tip,
	}
}

// conversationHistory maps the last turns of the session into the
// completion capability's role vocabulary.
func conversationHistory(session *model.InterviewSession) []llm.ChatMessage {
	start := 0
	if len(session.Messages) > historyWindow {
		start = len(session.Messages) - historyWindow
	}

	var history []llm.ChatMessage
	for _, msg := range session.Messages[start:] {
		switch msg.Role {
		case model.RoleOfficer:
			history = append(history, llm.ChatMessage{Role: "assistant", Content: msg.Content})
		case model.RoleApplicant:
			history = append(history, llm.ChatMessage{Role: "user", Content: msg.Content})
		}
	}
	return history
}
