package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartedurural/smartedu-backend/internal/grading"
	"github.com/smartedurural/smartedu-backend/internal/logger"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/ranking"
	"github.com/smartedurural/smartedu-backend/internal/repository"
)

// Test lifecycle errors.
var (
	ErrTestNotFound       = errors.New("test not found")
	ErrMaxAttemptsReached = errors.New("maximum attempts reached")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// TestService owns the test catalog and the attempt ledger. All state
// lives in one in-memory snapshot guarded by a RW mutex; every mutation
// rewrites the persisted blob before releasing the write lock, so the
// attempt gate check and the ledger append are a single atomic step per
// process.
type TestService struct {
	mu   sync.RWMutex
	snap model.Snapshot
	repo *repository.SnapshotRepository
	log  zerolog.Logger
}

// NewTestService loads the persisted snapshot and builds the service.
func NewTestService(ctx context.Context, repo *repository.SnapshotRepository) (*TestService, error) {
	snap, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return &TestService{
		snap: snap,
		repo: repo,
		log:  logger.Component("test_service"),
	}, nil
}

// flush persists the current snapshot. Callers hold the write lock.
func (s *TestService) flush(ctx context.Context) error {
	return s.repo.Save(ctx, s.snap)
}

// ─── Catalog reads ──────────────────────────────────────────────────

// ListTests returns the catalog, optionally filtered by subject key.
// "all" and "" mean no filter.
func (s *TestService) ListTests(subject string) []model.Test {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Test, 0, len(s.snap.AvailableTests))
	for _, t := range s.snap.AvailableTests {
		if subject != "" && subject != "all" && t.Subject != subject {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GetTest looks up one test by id.
func (s *TestService) GetTest(id string) (model.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.snap.AvailableTests {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Test{}, ErrTestNotFound
}

// Subjects derives the subject filter options from catalog and history.
func (s *TestService) Subjects() []model.SubjectOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ranking.Subjects(s.snap.AvailableTests, s.snap.CompletedTests)
}

// ─── Lifecycle mutations ────────────────────────────────────────────

// Publish normalizes a draft and upserts it into the catalog by id.
// Malformed optional fields degrade to defaults; this never fails on
// input shape. Existing submissions for a republished id are untouched
// and its attempt counters carry forward.
func (s *TestService) Publish(ctx context.Context, req model.PublishTestRequest) (model.Test, error) {
	draft := model.Test{
		ID:              req.ID,
		Title:           req.Title,
		Subject:         req.Subject,
		Difficulty:      req.Difficulty,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Instructions:    req.Instructions,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxAttempts:     req.MaxAttempts,
	}
	for _, q := range req.Questions {
		question := model.Question{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Type:          model.QuestionType(q.Type),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Marks:         q.Marks,
			Explanation:   q.Explanation,
		}
		if q.AutoGrade != nil {
			question.AutoGrade = *q.AutoGrade
		} else {
			question.AutoGrade = question.Type.AutoGradable() || q.Type == ""
		}
		draft.QuestionsData = append(draft.QuestionsData, question)
	}
	test := model.CanonicalizeTest(draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i, existing := range s.snap.AvailableTests {
		if existing.ID == test.ID {
			test.AttemptCount = existing.AttemptCount
			test.UniqueParticipants = existing.UniqueParticipants
			s.snap.AvailableTests[i] = test
			replaced = true
			break
		}
	}
	if !replaced {
		// newest first, matching the catalog listing order
		s.snap.AvailableTests = append([]model.Test{test}, s.snap.AvailableTests...)
	}

	if err := s.flush(ctx); err != nil {
		return model.Test{}, err
	}
	s.log.Info().
		Str("test_id", test.ID).
		Str("title", test.Title).
		Bool("replaced", replaced).
		Msg("Test published")
	return test, nil
}

// attemptsFor counts ledger entries for a (test, student) pair.
// Callers hold at least the read lock.
func (s *TestService) attemptsFor(testID, studentID string) int {
	count := 0
	for _, sub := range s.snap.Submissions {
		if sub.TestID == testID && sub.StudentID == studentID {
			count++
		}
	}
	return count
}

// StartAttempt checks whether a student may begin an attempt. It is a
// dry run with no side effect: the attempt number only becomes durable
// when Submit succeeds. Submit re-validates the same gate under the
// write lock.
func (s *TestService) StartAttempt(testID, studentID string) model.StartResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var test *model.Test
	for i := range s.snap.AvailableTests {
		if s.snap.AvailableTests[i].ID == testID {
			test = &s.snap.AvailableTests[i]
			break
		}
	}
	if test == nil {
		return model.StartResult{Allowed: false, Reason: model.StartReasonNotFound}
	}

	count := s.attemptsFor(testID, studentID)
	if count >= test.MaxAttempts {
		return model.StartResult{Allowed: false, Attempt: count, Reason: model.StartReasonMaxAttempts}
	}
	return model.StartResult{Allowed: true, Attempt: count + 1}
}

// Submit grades a student's answers and appends the attempt to the
// ledger. The attempt gate is re-validated under the write lock, so two
// racing submits for the same pair cannot both slip past maxAttempts.
// Grading walks the question bank in authored order; that order defines
// answer records and display everywhere downstream.
func (s *TestService) Submit(ctx context.Context, testID string, student model.User, req model.SubmitTestRequest) (model.Submission, model.CompletedTest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var test *model.Test
	for i := range s.snap.AvailableTests {
		if s.snap.AvailableTests[i].ID == testID {
			test = &s.snap.AvailableTests[i]
			break
		}
	}
	if test == nil {
		return model.Submission{}, model.CompletedTest{}, ErrTestNotFound
	}

	count := s.attemptsFor(testID, student.ID)
	if count >= test.MaxAttempts {
		return model.Submission{}, model.CompletedTest{}, ErrMaxAttemptsReached
	}
	attempt := count + 1

	responses := make(map[string]interface{}, len(req.Answers))
	for _, a := range req.Answers {
		responses[a.QuestionID] = a.Response
	}

	score := 0
	maxScore := 0
	answers := make([]model.AnswerRecord, 0, len(test.QuestionsData))
	for _, q := range test.QuestionsData {
		result := grading.Grade(q, responses[q.ID])
		score += result.MarksAwarded
		maxScore += result.MarksPossible
		answers = append(answers, model.AnswerRecord{
			QuestionID:    q.ID,
			Response:      responses[q.ID],
			IsCorrect:     result.IsCorrect,
			MarksAwarded:  result.MarksAwarded,
			MarksPossible: result.MarksPossible,
		})
	}

	now := time.Now()
	submission := model.CanonicalizeSubmission(model.Submission{
		ID:            uuid.New().String(),
		TestID:        test.ID,
		TestTitle:     test.Title,
		Subject:       test.Subject,
		SubjectLabel:  test.SubjectLabel,
		StudentID:     student.ID,
		StudentName:   student.Name,
		Answers:       answers,
		QuestionsData: test.QuestionsData,
		Score:         score,
		MaxScore:      maxScore,
		Attempt:       attempt,
		SubmittedAt:   now,
	})

	// counts attempts, not people; distinct students tracked separately
	test.AttemptCount++
	test.UniqueParticipants = s.uniqueParticipants(test.ID, student.ID)

	completed := model.CanonicalizeCompleted(model.CompletedTest{
		ID:           submission.ID,
		TestID:       test.ID,
		Title:        test.Title,
		Subject:      test.Subject,
		SubjectLabel: test.SubjectLabel,
		Difficulty:   test.Difficulty,
		Score:        submission.Score,
		MaxScore:     submission.MaxScore,
		Duration:     test.DurationMinutes,
		Questions:    len(test.QuestionsData),
		Status:       "completed",
		AttemptCount: test.AttemptCount,
		StudentID:    student.ID,
		StudentName:  student.Name,
		Attempt:      attempt,
		NeedsReview:  submission.NeedsReview,
		CompletedAt:  now,
	})

	s.snap.Submissions = append(s.snap.Submissions, submission)
	s.snap.CompletedTests = append(s.snap.CompletedTests, completed)

	if err := s.flush(ctx); err != nil {
		return model.Submission{}, model.CompletedTest{}, err
	}
	s.log.Info().
		Str("test_id", test.ID).
		Str("student_id", student.ID).
		Int("attempt", attempt).
		Int("score", submission.Score).
		Int("max_score", submission.MaxScore).
		Msg("Submission recorded")
	return submission, completed, nil
}

// uniqueParticipants counts distinct students in the ledger for a test,
// including the one currently submitting. Callers hold the write lock.
func (s *TestService) uniqueParticipants(testID, submittingStudentID string) int {
	seen := map[string]bool{submittingStudentID: true}
	for _, sub := range s.snap.Submissions {
		if sub.TestID == testID {
			seen[sub.StudentID] = true
		}
	}
	return len(seen)
}

// OverrideScore lets a teacher regrade a submission after reviewing its
// manual questions. The score is clamped to [0, maxScore], the
// submission is marked reviewed, and the paired completed record is
// updated in place.
func (s *TestService) OverrideScore(ctx context.Context, submissionID string, score int) (model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *model.Submission
	for i := range s.snap.Submissions {
		if s.snap.Submissions[i].ID == submissionID {
			target = &s.snap.Submissions[i]
			break
		}
	}
	if target == nil {
		return model.Submission{}, ErrSubmissionNotFound
	}

	if score < 0 {
		score = 0
	}
	if score > target.MaxScore {
		score = target.MaxScore
	}
	target.Score = score
	target.Reviewed = true
	target.NeedsReview = false

	for i := range s.snap.CompletedTests {
		if s.snap.CompletedTests[i].ID == submissionID {
			s.snap.CompletedTests[i].Score = score
			s.snap.CompletedTests[i].NeedsReview = false
			break
		}
	}

	if err := s.flush(ctx); err != nil {
		return model.Submission{}, err
	}
	s.log.Info().
		Str("submission_id", submissionID).
		Int("score", score).
		Msg("Score overridden")
	return *target, nil
}

// ResetAll restores the seed catalog and clears the ledger. Recovery
// and demo tooling only.
func (s *TestService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = model.DefaultSnapshot()
	if err := s.flush(ctx); err != nil {
		return err
	}
	s.log.Warn().Msg("Catalog and ledger reset to seed data")
	return nil
}

// ─── Ledger reads ───────────────────────────────────────────────────

// CompletedFor returns a student's completed-test rows, newest last.
func (s *TestService) CompletedFor(studentID string) []model.CompletedTest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.CompletedTest
	for _, c := range s.snap.CompletedTests {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out
}

// SubmissionsFor returns a student's raw submissions.
func (s *TestService) SubmissionsFor(studentID string) []model.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Submission
	for _, sub := range s.snap.Submissions {
		if sub.StudentID == studentID {
			out = append(out, sub)
		}
	}
	return out
}

// Submission looks up one submission by id.
func (s *TestService) Submission(id string) (model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.snap.Submissions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return model.Submission{}, ErrSubmissionNotFound
}

// AllSubmissions returns a copy of the full ledger for read-time
// derivations (leaderboards, summaries).
func (s *TestService) AllSubmissions() []model.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Submission, len(s.snap.Submissions))
	copy(out, s.snap.Submissions)
	return out
}

// Leaderboard returns a test's submissions with 1-based ranks, best
// score first. Recomputed on every read, never stored.
func (s *TestService) Leaderboard(testID string) ([]model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := false
	for _, t := range s.snap.AvailableTests {
		if t.ID == testID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTestNotFound
	}

	entries := []model.LeaderboardEntry{}
	for _, sub := range s.snap.Submissions {
		if sub.TestID != testID {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			SubmissionID: sub.ID,
			StudentID:    sub.StudentID,
			StudentName:  sub.StudentName,
			Score:        sub.Score,
			MaxScore:     sub.MaxScore,
			Percentage:   ranking.Percentage(sub.Score, sub.MaxScore),
			Attempt:      sub.Attempt,
			SubmittedAt:  sub.SubmittedAt,
			Rank:         ranking.RankInTest(s.snap.Submissions, testID, sub.ID),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries, nil
}
