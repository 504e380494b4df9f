package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// This file is the resilience seam between unreliable storage and the rest
// of the system. Every function here is total: arbitrary JSON-shaped input
// in, canonical value out, never an error. Canonicalizing an already
// canonical value is a no-op.

// CapitalizeWords converts a free-text key into a display label:
// "social science" → "Social Science", "true-false" → "True False".
// Empty input yields "General".
func CapitalizeWords(value string) string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	if len(fields) == 0 {
		return "General"
	}
	for i, f := range fields {
		first, size := utf8.DecodeRuneInString(f)
		fields[i] = strings.ToUpper(string(first)) + strings.ToLower(f[size:])
	}
	return strings.Join(fields, " ")
}

// CanonicalizeQuestion enforces the Question invariants: generated id,
// defaulted type and marks, out-of-range answer keys treated as absent,
// autoGrade defaulting from the type.
func CanonicalizeQuestion(q Question, index int) Question {
	if q.ID == "" {
		q.ID = "question-" + strconv.Itoa(index)
	}
	if q.Prompt == "" {
		q.Prompt = "Untitled question"
	}
	switch q.Type {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeShortAnswer, QuestionTypeEssay:
	default:
		q.Type = QuestionTypeMultipleChoice
	}
	if q.Options == nil {
		q.Options = []string{}
	}
	if q.CorrectAnswer != nil && (*q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(q.Options)) {
		q.CorrectAnswer = nil
	}
	if q.Marks <= 0 {
		q.Marks = 1
	}
	return q
}

// CanonicalizeTest enforces the Test invariants described in the data model:
// lowercase subject key, derived display label, capitalized difficulty,
// floor defaults for numeric fields, per-question canonicalization and the
// question-count rule (bank length wins over a declared total).
func CanonicalizeTest(t Test) Test {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Title == "" {
		t.Title = "Untitled Test"
	}
	subjectRaw := t.Subject
	if subjectRaw == "" {
		subjectRaw = "general"
	}
	t.Subject = strings.ToLower(subjectRaw)
	if t.SubjectLabel == "" {
		t.SubjectLabel = CapitalizeWords(subjectRaw)
	}
	if t.Difficulty == "" {
		t.Difficulty = "Medium"
	} else {
		t.Difficulty = CapitalizeWords(t.Difficulty)
	}
	if t.Description == "" {
		t.Description = "No description provided."
	}
	if t.DurationMinutes < 0 {
		t.DurationMinutes = 0
	}
	if t.MaxAttempts < 1 {
		t.MaxAttempts = 1
	}
	if t.AttemptCount < 0 {
		t.AttemptCount = 0
	}
	if t.UniqueParticipants < 0 {
		t.UniqueParticipants = 0
	}
	if t.QuestionsData == nil {
		t.QuestionsData = []Question{}
	}
	for i, q := range t.QuestionsData {
		t.QuestionsData[i] = CanonicalizeQuestion(q, i)
	}
	if len(t.QuestionsData) > 0 {
		t.QuestionCount = len(t.QuestionsData)
	} else if t.QuestionCount < 0 {
		t.QuestionCount = 0
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return t
}

// hasManualQuestions reports whether any question in the bank requires
// human grading.
func hasManualQuestions(questions []Question) bool {
	for _, q := range questions {
		if !q.AutoGrade {
			return true
		}
	}
	return false
}

// CanonicalizeSubmission enforces the Submission invariants. NeedsReview is
// always recomputed from the question bank so it can never drift from the
// data it describes.
func CanonicalizeSubmission(s Submission) Submission {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.StudentName == "" {
		s.StudentName = "Student"
	}
	if s.Answers == nil {
		s.Answers = []AnswerRecord{}
	}
	if s.QuestionsData == nil {
		s.QuestionsData = []Question{}
	}
	for i, q := range s.QuestionsData {
		s.QuestionsData[i] = CanonicalizeQuestion(q, i)
	}
	if s.Score < 0 {
		s.Score = 0
	}
	if s.MaxScore < 0 {
		s.MaxScore = 0
	}
	if s.Score > s.MaxScore {
		s.Score = s.MaxScore
	}
	if s.Attempt < 1 {
		s.Attempt = 1
	}
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now().UTC()
	}
	s.NeedsReview = hasManualQuestions(s.QuestionsData) && !s.Reviewed
	return s
}

// CanonicalizeCompleted enforces the CompletedTest invariants.
func CanonicalizeCompleted(c CompletedTest) CompletedTest {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Title == "" {
		c.Title = "Completed Test"
	}
	subjectRaw := c.Subject
	if subjectRaw == "" {
		subjectRaw = "general"
	}
	c.Subject = strings.ToLower(subjectRaw)
	if c.SubjectLabel == "" {
		c.SubjectLabel = CapitalizeWords(subjectRaw)
	}
	if c.Difficulty == "" {
		c.Difficulty = "Medium"
	} else {
		c.Difficulty = CapitalizeWords(c.Difficulty)
	}
	if c.Score < 0 {
		c.Score = 0
	}
	if c.MaxScore <= 0 {
		c.MaxScore = 100
	}
	if c.Duration < 0 {
		c.Duration = 0
	}
	if c.Questions < 0 {
		c.Questions = 0
	}
	if c.Status == "" {
		c.Status = "completed"
	}
	if c.AttemptCount < 0 {
		c.AttemptCount = 0
	}
	if c.StudentName == "" {
		c.StudentName = "Student"
	}
	if c.Attempt < 1 {
		c.Attempt = 1
	}
	if c.CompletedAt.IsZero() {
		c.CompletedAt = time.Now().UTC()
	}
	return c
}

// ─── Loose decoding of stored JSON ──────────────────────────────────
//
// Stored blobs may be legacy-shaped or partially corrupted: numeric ids,
// string numbers, missing arrays. These decoders accept anything
// JSON-shaped and coerce field by field before canonicalizing.

// SnapshotFromAny converts an arbitrary decoded JSON document into a
// canonical Snapshot. Anything unusable collapses to empty collections.
func SnapshotFromAny(v interface{}) Snapshot {
	m := asMap(v)
	snap := Snapshot{
		AvailableTests: []Test{},
		CompletedTests: []CompletedTest{},
		Submissions:    []Submission{},
	}
	for _, item := range asSlice(m["availableTests"]) {
		snap.AvailableTests = append(snap.AvailableTests, TestFromAny(item))
	}
	for _, item := range asSlice(m["completedTests"]) {
		snap.CompletedTests = append(snap.CompletedTests, CompletedFromAny(item))
	}
	for _, item := range asSlice(m["submissions"]) {
		snap.Submissions = append(snap.Submissions, SubmissionFromAny(item))
	}
	return snap
}

// TestFromAny coerces one stored test object into canonical form.
func TestFromAny(v interface{}) Test {
	m := asMap(v)
	t := Test{
		ID:              asString(m["id"]),
		Title:           asString(m["title"]),
		Subject:         asString(m["subject"]),
		SubjectLabel:    asString(m["subjectLabel"]),
		Difficulty:      asString(m["difficulty"]),
		Description:     asString(m["description"]),
		DurationMinutes: asInt(m["duration"]),
		Instructions:    asString(m["instructions"]),
		StartDate:       asTimePtr(m["startDate"]),
		EndDate:         asTimePtr(m["endDate"]),
		MaxAttempts:     asInt(m["maxAttempts"]),
		CreatedAt:       asTime(m["createdAt"]),
	}
	// Legacy blobs carried the attempt counter as totalParticipants.
	if _, ok := m["attemptCount"]; ok {
		t.AttemptCount = asInt(m["attemptCount"])
	} else {
		t.AttemptCount = asInt(m["totalParticipants"])
	}
	t.UniqueParticipants = asInt(m["uniqueParticipants"])
	for i, item := range asSlice(m["questionsData"]) {
		t.QuestionsData = append(t.QuestionsData, QuestionFromAny(item, i))
	}
	if len(t.QuestionsData) == 0 {
		if n := asInt(m["questions"]); n > 0 {
			t.QuestionCount = n
		} else {
			t.QuestionCount = asInt(m["totalQuestions"])
		}
	}
	return CanonicalizeTest(t)
}

// QuestionFromAny coerces one stored question object into canonical form.
func QuestionFromAny(v interface{}, index int) Question {
	m := asMap(v)
	q := Question{
		ID:          asString(m["id"]),
		Prompt:      asString(m["question"]),
		Type:        QuestionType(asString(m["type"])),
		Options:     asStringSlice(m["options"]),
		Marks:       asInt(m["marks"]),
		Explanation: asString(m["explanation"]),
	}
	// correctAnswer must be an in-range number; everything else is absent.
	if n, ok := asIntStrict(m["correctAnswer"]); ok {
		q.CorrectAnswer = &n
	}
	if b, ok := m["autoGrade"].(bool); ok {
		q.AutoGrade = b
	} else {
		// Absent type defaults to multiple-choice, which auto-grades.
		effective := q.Type
		if effective == "" {
			effective = QuestionTypeMultipleChoice
		}
		q.AutoGrade = effective.AutoGradable()
	}
	return CanonicalizeQuestion(q, index)
}

// SubmissionFromAny coerces one stored submission object into canonical form.
func SubmissionFromAny(v interface{}) Submission {
	m := asMap(v)
	s := Submission{
		ID:           asString(m["id"]),
		TestID:       asString(m["testId"]),
		TestTitle:    asString(m["testTitle"]),
		Subject:      asString(m["subject"]),
		SubjectLabel: asString(m["subjectLabel"]),
		StudentID:    asString(m["studentId"]),
		StudentName:  asString(m["studentName"]),
		Score:        asInt(m["score"]),
		MaxScore:     asInt(m["maxScore"]),
		Attempt:      asInt(m["attempt"]),
		SubmittedAt:  asTime(m["submittedAt"]),
	}
	if b, ok := m["reviewed"].(bool); ok {
		s.Reviewed = b
	}
	for _, item := range asSlice(m["answers"]) {
		am := asMap(item)
		rec := AnswerRecord{
			QuestionID:    asString(am["questionId"]),
			Response:      am["response"],
			MarksAwarded:  asInt(am["marksAwarded"]),
			MarksPossible: asInt(am["marksPossible"]),
		}
		if b, ok := am["isCorrect"].(bool); ok {
			rec.IsCorrect = &b
		}
		s.Answers = append(s.Answers, rec)
	}
	for i, item := range asSlice(m["questionsData"]) {
		s.QuestionsData = append(s.QuestionsData, QuestionFromAny(item, i))
	}
	return CanonicalizeSubmission(s)
}

// CompletedFromAny coerces one stored completed-test row into canonical form.
func CompletedFromAny(v interface{}) CompletedTest {
	m := asMap(v)
	c := CompletedTest{
		ID:           asString(m["id"]),
		TestID:       asString(m["testId"]),
		Title:        asString(m["title"]),
		Subject:      asString(m["subject"]),
		SubjectLabel: asString(m["subjectLabel"]),
		Difficulty:   asString(m["difficulty"]),
		Score:        asInt(m["score"]),
		MaxScore:     asInt(m["maxScore"]),
		Duration:     asInt(m["duration"]),
		Status:       asString(m["status"]),
		StudentID:    asString(m["studentId"]),
		StudentName:  asString(m["studentName"]),
		Attempt:      asInt(m["attempt"]),
		CompletedAt:  asTime(m["completedAt"]),
	}
	if n := asInt(m["questions"]); n > 0 {
		c.Questions = n
	} else {
		c.Questions = asInt(m["totalQuestions"])
	}
	if _, ok := m["attemptCount"]; ok {
		c.AttemptCount = asInt(m["attemptCount"])
	} else {
		c.AttemptCount = asInt(m["totalParticipants"])
	}
	if b, ok := m["needsReview"].(bool); ok {
		c.NeedsReview = b
	}
	return CanonicalizeCompleted(c)
}

// ─── Coercion helpers ───────────────────────────────────────────────

func asMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func asSlice(v interface{}) []interface{} {
	if s, ok := v.([]interface{}); ok {
		return s
	}
	return nil
}

// asString renders scalars as strings; numeric ids lose no information.
func asString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	default:
		return ""
	}
}

// asInt coerces numbers and numeric strings; anything else is 0.
func asInt(v interface{}) int {
	n, _ := asIntStrict(v)
	return n
}

// asIntStrict reports whether v holds a usable integral number.
func asIntStrict(v interface{}) (int, bool) {
	switch x := v.(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func asStringSlice(v interface{}) []string {
	raw := asSlice(v)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, asString(item))
	}
	return out
}

// asTime parses RFC3339 or date-only strings; unparseable input is the
// zero time, which canonicalization replaces with now.
func asTime(v interface{}) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func asTimePtr(v interface{}) *time.Time {
	t := asTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}
