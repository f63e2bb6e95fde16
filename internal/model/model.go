package model

import "time"

// InterviewStage identifies where a session is in the interview protocol.
// Stages only move forward through the order below; they never regress.
type InterviewStage string

const (
	StageGreeting   InterviewStage = "greeting"
	StageIdentity   InterviewStage = "identity"
	StageN400Review InterviewStage = "n400_review"
	StageOath       InterviewStage = "oath"
	StageCivics     InterviewStage = "civics"
	StageReading    InterviewStage = "reading"
	StageWriting    InterviewStage = "writing"
	StageClosing    InterviewStage = "closing"
)

// StageOrder is the fixed total order of interview stages.
var StageOrder = []InterviewStage{
	StageGreeting,
	StageIdentity,
	StageN400Review,
	StageOath,
	StageCivics,
	StageReading,
	StageWriting,
	StageClosing,
}

// MessageRole is the speaker of an interview message.
type MessageRole string

const (
	RoleOfficer   MessageRole = "officer"
	RoleApplicant MessageRole = "applicant"
	RoleSystem    MessageRole = "system"
)

// FluencyEvaluation carries the subjective speaking score attached to an
// applicant turn. Score is always formatted "N/10".
type FluencyEvaluation struct {
	Score string `json:"score"`
	Tip   string `json:"tip"`
}

// InterviewMessage is one turn of the interview transcript. Messages are
// append-only: once added to a session they are never mutated.
type InterviewMessage struct {
	Role        MessageRole        `json:"role"`
	Content     string             `json:"content"`
	Timestamp   time.Time          `json:"timestamp"`
	ShouldSpeak bool               `json:"should_speak,omitempty"`
	SpeechText  string             `json:"speech_text,omitempty"`
	Fluency     *FluencyEvaluation `json:"fluency_evaluation,omitempty"`
}

// N400FormData is the optional biographical blob supplied at session
// creation. The core reads it, never writes it. Any field may be empty;
// validators treat an empty reference field as "cannot compare, accept
// leniently". Unrecognized keys from the provider land in ExtraFields.
type N400FormData struct {
	Address        string            `json:"address,omitempty"`
	Occupation     string            `json:"occupation,omitempty"`
	MaritalStatus  string            `json:"marital_status,omitempty"`
	YearsInCountry string            `json:"years_in_country,omitempty"`
	Children       string            `json:"children,omitempty"`
	TravelHistory  string            `json:"travel_history,omitempty"`
	LegalIssues    string            `json:"legal_issues,omitempty"`
	PaysTaxes      string            `json:"pays_taxes,omitempty"`
	ExtraFields    map[string]string `json:"extra_fields,omitempty"`
}

// ApplicantContext is the applicant profile captured at session creation.
type ApplicantContext struct {
	Name           string        `json:"name"`
	Age            int           `json:"age,omitempty"`
	CountryOfBirth string        `json:"country_of_birth,omitempty"`
	YearsInCountry int           `json:"years_in_country,omitempty"`
	Occupation     string        `json:"occupation,omitempty"`
	MaritalStatus  string        `json:"marital_status,omitempty"`
	Children       int           `json:"children,omitempty"`
	FormData       *N400FormData `json:"form_data,omitempty"`
}

// CivicsQuestion is one entry of the fixed civics corpus. Loaded once at
// process start, never mutated. Answers is the set of acceptable
// phrasings; order is irrelevant for matching.
type CivicsQuestion struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	QuestionEs  string   `json:"question_es,omitempty"`
	Answers     []string `json:"answers"`
	Category    string   `json:"category"`
	Explanation string   `json:"explanation,omitempty"`
}

// CurrentCivicsQuestion is the pointer a session keeps to the question
// currently posed to the applicant.
type CurrentCivicsQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InterviewSession is the aggregate root for one mock interview. All
// mutation goes through the session store, which linearizes concurrent
// access per session id.
type InterviewSession struct {
	SessionID string             `json:"session_id"`
	Context   ApplicantContext   `json:"context"`
	Messages  []InterviewMessage `json:"messages"`
	Stage     InterviewStage     `json:"stage"`

	QuestionsAsked       int `json:"questions_asked"`
	N400QuestionsAsked   int `json:"n400_questions_asked"`
	TotalN400Questions   int `json:"total_n400_questions"`
	CivicsQuestionsAsked int `json:"civics_questions_asked"`
	TotalCivicsQuestions int `json:"total_civics_questions"`

	CivicsCorrect int `json:"civics_correct"`

	CurrentCivicsQuestion *CurrentCivicsQuestion `json:"current_civics_question,omitempty"`
	CivicsQuestionsUsed   []int                  `json:"civics_questions_used"`

	// LastPromptedStage is the stage of the most recent officer opener,
	// used to decide whether an auto message is pending.
	LastPromptedStage InterviewStage `json:"last_prompted_stage"`
}

// ValidationResult is the per-turn verdict from the response validator.
// ShouldAdvance is kept distinct from IsValid: a validator may judge an
// answer wrong yet still let the conversation move on.
type ValidationResult struct {
	IsValid       bool    `json:"is_valid"`
	Confidence    float64 `json:"confidence"`
	ShouldAdvance bool    `json:"should_advance"`
	Reason        string  `json:"reason"`
}

// Transcript is the persisted summary row written when an interview
// reaches the closing stage. Only stored when a database is configured.
type Transcript struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	SessionID            string    `json:"session_id" gorm:"not null;unique"`
	ApplicantName        string    `json:"applicant_name"`
	MessageCount         int       `json:"message_count"`
	CivicsQuestionsAsked int       `json:"civics_questions_asked"`
	CivicsCorrect        int       `json:"civics_correct"`
	PDFPath              string    `json:"pdf_path"`
	CompletedOn          time.Time `json:"completed_on"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
