package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalizeWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"social science", "Social Science"},
		{"Social-Science", "Social Science"},
		{"true-false", "True False"},
		{"ENGLISH", "English"},
		{"", "General"},
		{"  - ", "General"},
		// Caseless scripts pass through without byte mangling.
		{"गणित", "गणित"},
		{"விஞ்ஞானம்", "விஞ்ஞானம்"},
		{"गणित-विज्ञान", "गणित विज्ञान"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CapitalizeWords(tc.in), "input %q", tc.in)
	}
}

func TestCanonicalizeQuestionDefaults(t *testing.T) {
	q := CanonicalizeQuestion(Question{Prompt: "2+2?"}, 0)

	assert.Equal(t, "question-0", q.ID)
	assert.Equal(t, QuestionTypeMultipleChoice, q.Type)
	assert.Equal(t, 1, q.Marks)
	assert.NotNil(t, q.Options)
	assert.Nil(t, q.CorrectAnswer)
}

func TestCanonicalizeQuestionDropsOutOfRangeAnswer(t *testing.T) {
	options := []string{"a", "b", "c"}

	tooBig := CanonicalizeQuestion(Question{
		Prompt:        "pick one",
		Options:       options,
		CorrectAnswer: intPtr(3),
	}, 0)
	assert.Nil(t, tooBig.CorrectAnswer)

	negative := CanonicalizeQuestion(Question{
		Prompt:        "pick one",
		Options:       options,
		CorrectAnswer: intPtr(-1),
	}, 0)
	assert.Nil(t, negative.CorrectAnswer)

	inRange := CanonicalizeQuestion(Question{
		Prompt:        "pick one",
		Options:       options,
		CorrectAnswer: intPtr(2),
	}, 0)
	require.NotNil(t, inRange.CorrectAnswer)
	assert.Equal(t, 2, *inRange.CorrectAnswer)
}

func TestCanonicalizeTestDefaults(t *testing.T) {
	got := CanonicalizeTest(Test{
		Title:           "messy draft",
		Subject:         "Social-Science",
		Difficulty:      "hard",
		DurationMinutes: -10,
		MaxAttempts:     0,
		QuestionCount:   99,
		QuestionsData: []Question{
			{Prompt: "q one"},
			{Prompt: "q two"},
		},
	})

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "social-science", got.Subject)
	assert.Equal(t, "Social Science", got.SubjectLabel)
	assert.Equal(t, "Hard", got.Difficulty)
	assert.Equal(t, 0, got.DurationMinutes)
	assert.Equal(t, 1, got.MaxAttempts)
	// The bank length wins over a declared total.
	assert.Equal(t, 2, got.QuestionCount)
	assert.Equal(t, "question-0", got.QuestionsData[0].ID)
	assert.Equal(t, "question-1", got.QuestionsData[1].ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCanonicalizeTestIsIdempotent(t *testing.T) {
	first := CanonicalizeTest(Test{
		Subject:    "गणित",
		Difficulty: "medium",
		QuestionsData: []Question{
			{Prompt: "q", Options: []string{"a", "b"}, CorrectAnswer: intPtr(5)},
		},
	})
	second := CanonicalizeTest(first)

	assert.Equal(t, first, second)
	assert.Equal(t, "गणित", first.SubjectLabel)
}

func TestCanonicalizeSubmissionInvariants(t *testing.T) {
	manual := CanonicalizeSubmission(Submission{
		TestID:   "t1",
		Score:    12,
		MaxScore: 10,
		Attempt:  0,
		QuestionsData: []Question{
			{Prompt: "essay", Type: QuestionTypeEssay, AutoGrade: false},
		},
	})

	assert.NotEmpty(t, manual.ID)
	assert.Equal(t, "Student", manual.StudentName)
	assert.Equal(t, 10, manual.Score)
	assert.Equal(t, 1, manual.Attempt)
	assert.True(t, manual.NeedsReview)

	reviewed := manual
	reviewed.Reviewed = true
	reviewed = CanonicalizeSubmission(reviewed)
	assert.False(t, reviewed.NeedsReview)

	second := CanonicalizeSubmission(manual)
	assert.Equal(t, manual, second)
}

func TestCanonicalizeCompletedDefaults(t *testing.T) {
	got := CanonicalizeCompleted(CompletedTest{
		Subject:  "science",
		Score:    -5,
		MaxScore: 0,
	})

	assert.Equal(t, "Completed Test", got.Title)
	assert.Equal(t, "Science", got.SubjectLabel)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 100, got.MaxScore)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, 1, got.Attempt)

	second := CanonicalizeCompleted(got)
	assert.Equal(t, got, second)
}
