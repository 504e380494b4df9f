package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartedurural/smartedu-backend/internal/model"
)

func at(day int) time.Time {
	return time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
}

func sub(id, testID, studentID string, score, maxScore, attempt, day int) model.Submission {
	return model.Submission{
		ID:          id,
		TestID:      testID,
		StudentID:   studentID,
		Score:       score,
		MaxScore:    maxScore,
		Attempt:     attempt,
		SubmittedAt: at(day),
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 75, Percentage(6, 8))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 100, Percentage(10, 10))
}

func TestRankInTest(t *testing.T) {
	ledger := []model.Submission{
		sub("s1", "t1", "a", 5, 10, 1, 1),
		sub("s2", "t1", "b", 8, 10, 1, 2),
		sub("s3", "t2", "a", 10, 10, 1, 3),
		sub("s4", "t1", "c", 8, 10, 1, 4),
	}

	assert.Equal(t, 1, RankInTest(ledger, "t1", "s2"))
	// equal scores keep ledger order, so c ranks behind b
	assert.Equal(t, 2, RankInTest(ledger, "t1", "s4"))
	assert.Equal(t, 3, RankInTest(ledger, "t1", "s1"))
	// other tests never bleed into the pool
	assert.Equal(t, 1, RankInTest(ledger, "t2", "s3"))
	assert.Equal(t, 0, RankInTest(ledger, "t1", "missing"))
}

func TestRankByAttempt(t *testing.T) {
	ledger := []model.Submission{
		sub("s1", "t1", "a", 4, 10, 1, 1),
		sub("s2", "t1", "a", 9, 10, 2, 2),
	}

	assert.Equal(t, 1, RankByAttempt(ledger, "t1", "a", 2))
	assert.Equal(t, 2, RankByAttempt(ledger, "t1", "a", 1))
	assert.Equal(t, 0, RankByAttempt(ledger, "t1", "a", 3))
}

func TestStudentAverage(t *testing.T) {
	ledger := []model.Submission{
		sub("s1", "t1", "a", 5, 10, 1, 1),  // 50%
		sub("s2", "t2", "a", 10, 10, 1, 2), // 100%
		sub("s3", "t1", "b", 1, 10, 1, 3),
	}

	assert.Equal(t, 75, StudentAverage(ledger, "a"))
	assert.Equal(t, 10, StudentAverage(ledger, "b"))
	assert.Equal(t, 0, StudentAverage(ledger, "nobody"))
}

func TestStudentAverageZeroMaxScore(t *testing.T) {
	ledger := []model.Submission{
		sub("s1", "t1", "a", 5, 0, 1, 1),
		sub("s2", "t2", "a", 10, 10, 1, 2),
	}

	// the zero-max attempt contributes 0, not a division error
	assert.Equal(t, 50, StudentAverage(ledger, "a"))
}

func TestClassRank(t *testing.T) {
	ledger := []model.Submission{
		sub("s1", "t1", "a", 5, 10, 1, 1),
		sub("s2", "t1", "b", 9, 10, 1, 2),
		sub("s3", "t2", "c", 7, 10, 1, 3),
	}

	rank := ClassRank(ledger, "b")
	require.NotNil(t, rank)
	assert.Equal(t, 1, *rank)

	rank = ClassRank(ledger, "c")
	require.NotNil(t, rank)
	assert.Equal(t, 2, *rank)

	rank = ClassRank(ledger, "a")
	require.NotNil(t, rank)
	assert.Equal(t, 3, *rank)

	assert.Nil(t, ClassRank(ledger, "never-submitted"))
	assert.Nil(t, ClassRank(nil, "a"))
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		ledger []model.Submission
		want   string
	}{
		{
			name:   "no submissions",
			ledger: nil,
			want:   TrendSteady,
		},
		{
			name:   "single submission",
			ledger: []model.Submission{sub("s1", "t1", "a", 5, 10, 1, 1)},
			want:   TrendSteady,
		},
		{
			name: "improving",
			ledger: []model.Submission{
				sub("s1", "t1", "a", 5, 10, 1, 1),
				sub("s2", "t2", "a", 8, 10, 1, 2),
			},
			want: TrendUp,
		},
		{
			name: "equal counts as up",
			ledger: []model.Submission{
				sub("s1", "t1", "a", 7, 10, 1, 1),
				sub("s2", "t2", "a", 7, 10, 1, 2),
			},
			want: TrendUp,
		},
		{
			name: "declining",
			ledger: []model.Submission{
				sub("s1", "t1", "a", 9, 10, 1, 1),
				sub("s2", "t2", "a", 4, 10, 1, 2),
			},
			want: TrendDown,
		},
		{
			name: "timestamp order wins over ledger order",
			ledger: []model.Submission{
				sub("s2", "t2", "a", 4, 10, 1, 5),
				sub("s1", "t1", "a", 9, 10, 1, 1),
			},
			want: TrendDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trend(tt.ledger, "a"))
		})
	}
}

func TestStatsFor(t *testing.T) {
	a1 := sub("s1", "t1", "a", 5, 10, 1, 1)
	a1.SubjectLabel = "Mathematics"
	a2 := sub("s2", "t2", "a", 9, 10, 1, 3)
	a2.SubjectLabel = "Science"
	a3 := sub("s3", "t1", "a", 8, 10, 2, 5)
	a3.SubjectLabel = "Mathematics"

	stats := StatsFor([]model.Submission{a1, a2, a3})

	assert.Equal(t, 3, stats.TestsCompleted)
	assert.Equal(t, 73, stats.AveragePercent)
	assert.Equal(t, []string{"Mathematics", "Science"}, stats.Subjects)
	assert.Equal(t, TrendDown, stats.Trend)
	require.NotNil(t, stats.LastActive)
	assert.Equal(t, at(5), *stats.LastActive)
}

func TestStatsForEmpty(t *testing.T) {
	stats := StatsFor(nil)

	assert.Equal(t, 0, stats.TestsCompleted)
	assert.Equal(t, 0, stats.AveragePercent)
	assert.Empty(t, stats.Subjects)
	assert.Equal(t, TrendSteady, stats.Trend)
	assert.Nil(t, stats.LastActive)
}

func TestSubjects(t *testing.T) {
	tests := []model.Test{
		{Subject: "mathematics", SubjectLabel: "Mathematics"},
		{Subject: "science", SubjectLabel: "Science"},
		{Subject: "mathematics", SubjectLabel: "Mathematics"},
	}
	completed := []model.CompletedTest{
		{Subject: "english", SubjectLabel: "English"},
	}

	options := Subjects(tests, completed)

	assert.Equal(t, []model.SubjectOption{
		{Value: "all", Label: "All Subjects"},
		{Value: "english", Label: "English"},
		{Value: "mathematics", Label: "Mathematics"},
		{Value: "science", Label: "Science"},
	}, options)
}

func TestSubjectsFallbackLabel(t *testing.T) {
	options := Subjects([]model.Test{{Subject: "social-science"}}, nil)

	assert.Equal(t, []model.SubjectOption{
		{Value: "all", Label: "All Subjects"},
		{Value: "social-science", Label: "Social Science"},
	}, options)
}
