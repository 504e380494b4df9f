// Package grading scores a single question against a student's raw
// response. Grading is pure and deterministic: the same (question,
// response) pair always yields the same result.
package grading

import (
	"strconv"
	"strings"

	"github.com/smartedurural/smartedu-backend/internal/model"
)

// Result is the outcome of grading one question.
// IsCorrect is nil when the question was not auto-graded; such questions
// still contribute their full weight to MarksPossible and zero to the
// awarded marks until a teacher reviews the submission.
type Result struct {
	IsCorrect     *bool
	MarksAwarded  int
	MarksPossible int
}

// Grade scores one question. Auto-gradable questions with a defined answer
// key are marked by numeric equality between the response and the correct
// option index; a non-numeric or missing response is simply wrong, never an
// error. Everything else (short-answer, essay, or a missing answer key) is
// left ungraded.
func Grade(q model.Question, response interface{}) Result {
	marks := q.Marks
	if marks <= 0 {
		marks = 1
	}

	res := Result{MarksPossible: marks}

	if !q.AutoGrade || q.CorrectAnswer == nil {
		return res
	}

	idx, ok := responseIndex(response)
	correct := ok && idx == *q.CorrectAnswer
	res.IsCorrect = &correct
	if correct {
		res.MarksAwarded = marks
	}
	return res
}

// responseIndex coerces a raw response into an option index. JSON numbers
// arrive as float64; UI layers occasionally send numeric strings.
func responseIndex(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		n := int(x)
		if float64(n) == x {
			return n, true
		}
		return 0, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
