package model

import (
	"time"
)

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeTrueFalse      QuestionType = "true-false"
	QuestionTypeShortAnswer    QuestionType = "short-answer"
	QuestionTypeEssay          QuestionType = "essay"
)

// AutoGradable reports whether a question type is scored by exact-match
// comparison without human input.
func (t QuestionType) AutoGradable() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeTrueFalse
}

// Question is one gradable or manually-graded item within a Test.
// CorrectAnswer is a zero-based option index; nil means no answer key
// (the question cannot be auto-graded even if its type allows it).
type Question struct {
	ID            string       `json:"id"`
	Prompt        string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer *int         `json:"correctAnswer"`
	Marks         int          `json:"marks"`
	Explanation   string       `json:"explanation"`
	AutoGrade     bool         `json:"autoGrade"`
}

// Test is a published assessment definition.
//
// AttemptCount counts submissions received (every attempt, repeat attempts
// included); UniqueParticipants counts distinct students who submitted at
// least once.
type Test struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Subject            string     `json:"subject"`
	SubjectLabel       string     `json:"subjectLabel"`
	Difficulty         string     `json:"difficulty"`
	Description        string     `json:"description"`
	DurationMinutes    int        `json:"duration"`
	QuestionCount      int        `json:"questions"`
	Instructions       string     `json:"instructions"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	MaxAttempts        int        `json:"maxAttempts"`
	AttemptCount       int        `json:"attemptCount"`
	UniqueParticipants int        `json:"uniqueParticipants"`
	QuestionsData      []Question `json:"questionsData"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// AnswerRecord is one graded per-question answer inside a Submission.
// IsCorrect is nil when the question was not auto-graded.
type AnswerRecord struct {
	QuestionID    string      `json:"questionId"`
	Response      interface{} `json:"response"`
	IsCorrect     *bool       `json:"isCorrect"`
	MarksAwarded  int         `json:"marksAwarded"`
	MarksPossible int         `json:"marksPossible"`
}

// Submission is one student's completed run of a Test, immutable once
// created except for an explicit teacher score override.
//
// NeedsReview is derived: true iff the question bank contains a question
// that is not auto-gradable and no teacher has reviewed the submission yet.
type Submission struct {
	ID            string         `json:"id"`
	TestID        string         `json:"testId"`
	TestTitle     string         `json:"testTitle"`
	Subject       string         `json:"subject"`
	SubjectLabel  string         `json:"subjectLabel"`
	StudentID     string         `json:"studentId"`
	StudentName   string         `json:"studentName"`
	Answers       []AnswerRecord `json:"answers"`
	QuestionsData []Question     `json:"questionsData"`
	Score         int            `json:"score"`
	MaxScore      int            `json:"maxScore"`
	Attempt       int            `json:"attempt"`
	SubmittedAt   time.Time      `json:"submittedAt"`
	Reviewed      bool           `json:"reviewed"`
	NeedsReview   bool           `json:"needsReview"`
}

// CompletedTest is a denormalized display row derived 1:1 from a Submission.
type CompletedTest struct {
	ID           string    `json:"id"`
	TestID       string    `json:"testId"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	SubjectLabel string    `json:"subjectLabel"`
	Difficulty   string    `json:"difficulty"`
	Score        int       `json:"score"`
	MaxScore     int       `json:"maxScore"`
	Duration     int       `json:"duration"`
	Questions    int       `json:"questions"`
	Status       string    `json:"status"`
	AttemptCount int       `json:"attemptCount"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName"`
	Attempt      int       `json:"attempt"`
	NeedsReview  bool      `json:"needsReview"`
	CompletedAt  time.Time `json:"completedAt"`
}

// Snapshot is the persisted state blob: the whole catalog+ledger,
// written after every mutation and read once on startup.
type Snapshot struct {
	AvailableTests []Test          `json:"availableTests"`
	CompletedTests []CompletedTest `json:"completedTests"`
	Submissions    []Submission    `json:"submissions"`
}

// SubjectOption is one entry in the derived subject filter list.
type SubjectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LeaderboardEntry is one ranked row of a test's leaderboard, derived
// from the ledger on read.
type LeaderboardEntry struct {
	SubmissionID string    `json:"submissionId"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName"`
	Score        int       `json:"score"`
	MaxScore     int       `json:"maxScore"`
	Percentage   int       `json:"percentage"`
	Attempt      int       `json:"attempt"`
	Rank         int       `json:"rank"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// ─── Request payloads ───────────────────────────────────────────────

// QuestionDraft is one authored question inside a publish request.
type QuestionDraft struct {
	ID            string   `json:"id" binding:"omitempty,max=100"`
	Prompt        string   `json:"question" binding:"required,min=1,max=2000"`
	Type          string   `json:"type" binding:"omitempty,oneof=multiple-choice true-false short-answer essay"`
	Options       []string `json:"options" binding:"omitempty,dive,max=500"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"omitempty"`
	Marks         int      `json:"marks" binding:"omitempty,min=1,max=100"`
	Explanation   string   `json:"explanation" binding:"omitempty,max=2000"`
	AutoGrade     *bool    `json:"autoGrade" binding:"omitempty"`
}

// PublishTestRequest is the payload for publishing a test.
// Everything beyond the title degrades to defaults when absent.
type PublishTestRequest struct {
	ID              string          `json:"id" binding:"omitempty,max=100"`
	Title           string          `json:"title" binding:"required,min=3,max=255"`
	Subject         string          `json:"subject" binding:"omitempty,max=100"`
	Difficulty      string          `json:"difficulty" binding:"omitempty,max=50"`
	Description     string          `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes int             `json:"duration" binding:"omitempty,min=0,max=480"`
	QuestionCount   int             `json:"questions" binding:"omitempty,min=0"`
	Instructions    string          `json:"instructions" binding:"omitempty,max=5000"`
	StartDate       *time.Time      `json:"startDate" binding:"omitempty"`
	EndDate         *time.Time      `json:"endDate" binding:"omitempty,gtfield=StartDate"`
	MaxAttempts     int             `json:"maxAttempts" binding:"omitempty,min=1,max=20"`
	Questions       []QuestionDraft `json:"questionsData" binding:"omitempty,dive"`
}

// SubmittedAnswer is one raw answer inside a submit request.
type SubmittedAnswer struct {
	QuestionID string      `json:"questionId" binding:"required"`
	Response   interface{} `json:"response"`
}

// SubmitTestRequest is the payload for submitting a finished attempt.
// Attempt is optional; when zero the ledger derives it from prior attempts.
type SubmitTestRequest struct {
	Answers []SubmittedAnswer `json:"answers" binding:"omitempty,dive"`
	Attempt int               `json:"attempt" binding:"omitempty,min=1"`
}

// OverrideScoreRequest is the payload for a teacher score override.
type OverrideScoreRequest struct {
	Score int `json:"score" binding:"min=0"`
}

// StartResult is the outcome of the attempt gate dry run.
type StartResult struct {
	Allowed bool   `json:"allowed"`
	Attempt int    `json:"attempt"`
	Reason  string `json:"reason,omitempty"`
}

// Attempt gate rejection reasons.
const (
	StartReasonNotFound    = "not_found"
	StartReasonMaxAttempts = "max_attempts"
)
