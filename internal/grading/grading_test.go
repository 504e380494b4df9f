package grading

import (
	"testing"

	"github.com/smartedurural/smartedu-backend/internal/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func mcq(correct *int, marks int) model.Question {
	return model.Question{
		ID:            "q-1",
		Type:          model.QuestionTypeMultipleChoice,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: correct,
		Marks:         marks,
		AutoGrade:     true,
	}
}

func TestGrade_AutoGradable(t *testing.T) {
	tests := []struct {
		name      string
		question  model.Question
		response  interface{}
		isCorrect *bool
		awarded   int
		possible  int
	}{
		{name: "correct index", question: mcq(intPtr(1), 2), response: float64(1), isCorrect: boolPtr(true), awarded: 2, possible: 2},
		{name: "wrong index", question: mcq(intPtr(1), 2), response: float64(0), isCorrect: boolPtr(false), awarded: 0, possible: 2},
		{name: "numeric string response", question: mcq(intPtr(2), 3), response: "2", isCorrect: boolPtr(true), awarded: 3, possible: 3},
		{name: "padded numeric string", question: mcq(intPtr(2), 3), response: " 2 ", isCorrect: boolPtr(true), awarded: 3, possible: 3},
		{name: "non-numeric response is wrong", question: mcq(intPtr(0), 2), response: "abc", isCorrect: boolPtr(false), awarded: 0, possible: 2},
		{name: "missing response is wrong", question: mcq(intPtr(0), 2), response: nil, isCorrect: boolPtr(false), awarded: 0, possible: 2},
		{name: "fractional number is wrong", question: mcq(intPtr(1), 2), response: float64(1.5), isCorrect: boolPtr(false), awarded: 0, possible: 2},
		{name: "no answer key leaves ungraded", question: mcq(nil, 2), response: float64(1), isCorrect: nil, awarded: 0, possible: 2},
		{name: "zero marks defaults to one", question: mcq(intPtr(1), 0), response: float64(1), isCorrect: boolPtr(true), awarded: 1, possible: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Grade(tc.question, tc.response)
			assertResult(t, got, tc.isCorrect, tc.awarded, tc.possible)
		})
	}
}

func TestGrade_ManualTypes(t *testing.T) {
	essay := model.Question{
		ID:        "essay-1",
		Type:      model.QuestionTypeEssay,
		Marks:     5,
		AutoGrade: false,
	}

	got := Grade(essay, "a long answer about photosynthesis")
	assertResult(t, got, nil, 0, 5)

	short := model.Question{
		ID:        "short-1",
		Type:      model.QuestionTypeShortAnswer,
		Marks:     3,
		AutoGrade: false,
	}
	got = Grade(short, nil)
	assertResult(t, got, nil, 0, 3)
}

func TestGrade_Deterministic(t *testing.T) {
	q := mcq(intPtr(3), 4)
	first := Grade(q, float64(3))
	for i := 0; i < 10; i++ {
		again := Grade(q, float64(3))
		assertResult(t, again, first.IsCorrect, first.MarksAwarded, first.MarksPossible)
	}
}

func assertResult(t *testing.T, got Result, isCorrect *bool, awarded, possible int) {
	t.Helper()
	if got.MarksAwarded != awarded {
		t.Errorf("MarksAwarded = %d, want %d", got.MarksAwarded, awarded)
	}
	if got.MarksPossible != possible {
		t.Errorf("MarksPossible = %d, want %d", got.MarksPossible, possible)
	}
	switch {
	case isCorrect == nil && got.IsCorrect != nil:
		t.Errorf("IsCorrect = %v, want nil", *got.IsCorrect)
	case isCorrect != nil && got.IsCorrect == nil:
		t.Errorf("IsCorrect = nil, want %v", *isCorrect)
	case isCorrect != nil && got.IsCorrect != nil && *isCorrect != *got.IsCorrect:
		t.Errorf("IsCorrect = %v, want %v", *got.IsCorrect, *isCorrect)
	}
}
