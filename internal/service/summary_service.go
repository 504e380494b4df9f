package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/ranking"
	"github.com/smartedurural/smartedu-backend/internal/repository"
)

// ErrUserNotFound is returned when a dashboard is requested for an
// unknown account.
var ErrUserNotFound = errors.New("user not found")

// StudentSummary is one roster/leaderboard row: a student's identity
// plus their aggregated attempt history. ClassRank is nil for students
// who have not submitted anything yet.
type StudentSummary struct {
	StudentID         string     `json:"studentId"`
	Name              string     `json:"name"`
	Grade             string     `json:"grade,omitempty"`
	TestsCompleted    int        `json:"testsCompleted"`
	AverageScore      int        `json:"averageScore"`
	Subjects          []string   `json:"subjects"`
	Trend             string     `json:"trend"`
	LastActive        *time.Time `json:"lastActive"`
	ClassRank         *int       `json:"classRank"`
	ResourcesAccessed int        `json:"resourcesAccessed"`
}

// StudentDashboard is the student portal's landing view.
type StudentDashboard struct {
	Summary        StudentSummary        `json:"summary"`
	AvailableTests int                   `json:"availableTests"`
	RecentResults  []model.CompletedTest `json:"recentResults"`
}

// ParentDashboard lists each linked child's summary.
type ParentDashboard struct {
	ParentName string           `json:"parentName"`
	Children   []StudentSummary `json:"children"`
}

// SummaryService assembles role dashboards and the teacher roster from
// the ledger, the account stores and the resource counters. Pure
// read-side composition; it never mutates anything.
type SummaryService struct {
	tests *TestService
	auth  *AuthService
	users *repository.UserRepository
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(tests *TestService, auth *AuthService, users *repository.UserRepository) *SummaryService {
	return &SummaryService{tests: tests, auth: auth, users: users}
}

// summarize builds one student's summary against the full ledger.
func (s *SummaryService) summarize(ctx context.Context, student model.User, ledger []model.Submission) StudentSummary {
	stats := ranking.StatsFor(s.tests.SubmissionsFor(student.ID))
	resources, err := s.users.ResourcesAccessed(ctx, student.ID)
	if err != nil {
		resources = 0
	}
	return StudentSummary{
		StudentID:         student.ID,
		Name:              student.Name,
		Grade:             student.Grade,
		TestsCompleted:    stats.TestsCompleted,
		AverageScore:      stats.AveragePercent,
		Subjects:          stats.Subjects,
		Trend:             stats.Trend,
		LastActive:        stats.LastActive,
		ClassRank:         ranking.ClassRank(ledger, student.ID),
		ResourcesAccessed: resources,
	}
}

// ForStudent builds the student dashboard.
func (s *SummaryService) ForStudent(ctx context.Context, studentID string) (*StudentDashboard, error) {
	student, err := s.auth.GetUser(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrUserNotFound
	}

	completed := s.tests.CompletedFor(studentID)
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(completed[j].CompletedAt)
	})
	if len(completed) > 5 {
		completed = completed[:5]
	}
	if completed == nil {
		completed = []model.CompletedTest{}
	}

	return &StudentDashboard{
		Summary:        s.summarize(ctx, *student, s.tests.AllSubmissions()),
		AvailableTests: len(s.tests.ListTests("")),
		RecentResults:  completed,
	}, nil
}

// ForParent builds the parent dashboard from the account's child links.
// Unknown child ids are skipped rather than failing the whole view.
func (s *SummaryService) ForParent(ctx context.Context, parentID string) (*ParentDashboard, error) {
	parent, err := s.auth.GetUser(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrUserNotFound
	}

	ledger := s.tests.AllSubmissions()
	dashboard := &ParentDashboard{
		ParentName: parent.Name,
		Children:   []StudentSummary{},
	}
	for _, childID := range parent.Children {
		child, err := s.auth.GetUser(ctx, childID)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		dashboard.Children = append(dashboard.Children, s.summarize(ctx, *child, ledger))
	}
	return dashboard, nil
}

// Roster builds the teacher's student roster, ranked students first.
func (s *SummaryService) Roster(ctx context.Context) ([]StudentSummary, error) {
	students, err := s.auth.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	ledger := s.tests.AllSubmissions()
	roster := make([]StudentSummary, 0, len(students))
	for _, student := range students {
		roster = append(roster, s.summarize(ctx, student, ledger))
	}
	sort.SliceStable(roster, func(i, j int) bool {
		ri, rj := roster[i].ClassRank, roster[j].ClassRank
		switch {
		case ri != nil && rj != nil:
			return *ri < *rj
		case ri != nil:
			return true
		default:
			return false
		}
	})
	return roster, nil
}

// ClassLeaderboard is the full roster in rank order. Students with no
// submissions still appear, with a null rank, after the ranked ones.
func (s *SummaryService) ClassLeaderboard(ctx context.Context) ([]StudentSummary, error) {
	return s.Roster(ctx)
}
