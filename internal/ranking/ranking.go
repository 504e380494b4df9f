// Package ranking derives leaderboards, averages and trends from the
// submission ledger. Every function recomputes from the full ledger on
// read; at classroom scale an incremental index would be overkill.
package ranking

import (
	"math"
	"sort"
	"time"

	"github.com/smartedurural/smartedu-backend/internal/model"
)

// Trend directions for a student's two most recent attempts.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendSteady = "steady"
)

// Percentage converts a score pair to a rounded percentage.
// A zero max score contributes 0, never a division error.
func Percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// ratio is the unrounded score fraction used for averaging.
func ratio(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore)
}

// RankInTest returns the 1-based rank of a submission among all
// submissions for its test, ordered by score descending. The sort is
// stable: equal scores keep their original ledger order. Returns 0 when
// the submission is not in the ledger.
func RankInTest(submissions []model.Submission, testID, submissionID string) int {
	var pool []model.Submission
	for _, s := range submissions {
		if s.TestID == testID {
			pool = append(pool, s)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})
	for i, s := range pool {
		if s.ID == submissionID {
			return i + 1
		}
	}
	return 0
}

// RankByAttempt locates a submission by (studentID, attempt) instead of id.
// Fallback for legacy records whose ids were lost in storage.
func RankByAttempt(submissions []model.Submission, testID, studentID string, attempt int) int {
	for _, s := range submissions {
		if s.TestID == testID && s.StudentID == studentID && s.Attempt == attempt {
			return RankInTest(submissions, testID, s.ID)
		}
	}
	return 0
}

// StudentAverage returns a student's average percentage score across all
// of their submissions, rounded. A student with no submissions scores 0.
func StudentAverage(submissions []model.Submission, studentID string) int {
	sum := 0.0
	count := 0
	for _, s := range submissions {
		if s.StudentID != studentID {
			continue
		}
		sum += ratio(s.Score, s.MaxScore)
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count) * 100))
}

// ClassRank returns the student's 1-based position in the class
// leaderboard (students ordered by average percentage, descending).
// A student with zero submissions has no rank and gets nil.
func ClassRank(submissions []model.Submission, studentID string) *int {
	counts := make(map[string]int)
	sums := make(map[string]float64)
	var order []string
	for _, s := range submissions {
		if _, seen := counts[s.StudentID]; !seen {
			order = append(order, s.StudentID)
		}
		counts[s.StudentID]++
		sums[s.StudentID] += ratio(s.Score, s.MaxScore)
	}
	if counts[studentID] == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]]/float64(counts[order[i]]) > sums[order[j]]/float64(counts[order[j]])
	})
	for i, id := range order {
		if id == studentID {
			rank := i + 1
			return &rank
		}
	}
	return nil
}

// Trend compares a student's two most recent submissions by timestamp:
// "up" if the latest percentage is at least the previous one, "down"
// otherwise, "steady" with fewer than two submissions.
func Trend(submissions []model.Submission, studentID string) string {
	var own []model.Submission
	for _, s := range submissions {
		if s.StudentID == studentID {
			own = append(own, s)
		}
	}
	if len(own) < 2 {
		return TrendSteady
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].SubmittedAt.Before(own[j].SubmittedAt)
	})
	latest := own[len(own)-1]
	previous := own[len(own)-2]
	if ratio(latest.Score, latest.MaxScore) >= ratio(previous.Score, previous.MaxScore) {
		return TrendUp
	}
	return TrendDown
}

// StudentStats aggregates one student's attempt history for roster and
// dashboard views.
type StudentStats struct {
	TestsCompleted int        `json:"testsCompleted"`
	AveragePercent int        `json:"averageScore"`
	Subjects       []string   `json:"subjects"`
	Trend          string     `json:"trend"`
	LastActive     *time.Time `json:"lastActive"`
}

// StatsFor computes a student's aggregate stats from their own attempts.
func StatsFor(attempts []model.Submission) StudentStats {
	stats := StudentStats{
		Trend:    TrendSteady,
		Subjects: []string{},
	}
	if len(attempts) == 0 {
		return stats
	}

	stats.TestsCompleted = len(attempts)

	sum := 0.0
	seen := make(map[string]bool)
	for _, a := range attempts {
		sum += ratio(a.Score, a.MaxScore)
		if a.SubjectLabel != "" && !seen[a.SubjectLabel] {
			seen[a.SubjectLabel] = true
			stats.Subjects = append(stats.Subjects, a.SubjectLabel)
		}
	}
	stats.AveragePercent = int(math.Round(sum / float64(len(attempts)) * 100))

	ordered := make([]model.Submission, len(attempts))
	copy(ordered, attempts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SubmittedAt.Before(ordered[j].SubmittedAt)
	})
	last := ordered[len(ordered)-1]
	stats.LastActive = &last.SubmittedAt

	if len(ordered) >= 2 {
		prev := ordered[len(ordered)-2]
		if ratio(last.Score, last.MaxScore) >= ratio(prev.Score, prev.MaxScore) {
			stats.Trend = TrendUp
		} else {
			stats.Trend = TrendDown
		}
	}
	return stats
}

// Subjects derives the filter option list from catalog and history:
// unique subject keys with display labels, label-sorted, with the "all"
// sentinel first.
func Subjects(tests []model.Test, completed []model.CompletedTest) []model.SubjectOption {
	labels := make(map[string]string)
	add := func(subject, label string) {
		if subject == "" {
			return
		}
		if _, ok := labels[subject]; !ok {
			if label == "" {
				label = model.CapitalizeWords(subject)
			}
			labels[subject] = label
		}
	}
	for _, t := range tests {
		add(t.Subject, t.SubjectLabel)
	}
	for _, c := range completed {
		add(c.Subject, c.SubjectLabel)
	}

	options := make([]model.SubjectOption, 0, len(labels)+1)
	for value, label := range labels {
		options = append(options, model.SubjectOption{Value: value, Label: label})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return append([]model.SubjectOption{{Value: "all", Label: "All Subjects"}}, options...)
}
