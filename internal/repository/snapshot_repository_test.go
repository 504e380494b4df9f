package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/model"
)

func TestSnapshotLoadSeedsOnFirstBoot(t *testing.T) {
	repo := NewSnapshotRepository(NewMemoryKV())

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.AvailableTests, 3)
	assert.Len(t, snap.CompletedTests, 2)
	assert.Empty(t, snap.Submissions)
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(NewMemoryKV())

	snap, err := repo.Load(ctx)
	require.NoError(t, err)

	snap.Submissions = append(snap.Submissions, model.CanonicalizeSubmission(model.Submission{
		ID:        "sub-1",
		TestID:    "1",
		StudentID: "1",
		Score:     8,
		MaxScore:  10,
		Attempt:   1,
	}))
	require.NoError(t, repo.Save(ctx, snap))

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded.Submissions, 1)
	assert.Equal(t, "sub-1", reloaded.Submissions[0].ID)
	assert.Equal(t, 8, reloaded.Submissions[0].Score)
}

func TestSnapshotLoadRecoversFromCorruptBlob(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, config.CacheKey.TestSnapshotKey(), "{not json"))

	snap, err := NewSnapshotRepository(kv).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.AvailableTests, 3)
}

func TestSnapshotLoadNormalizesLooseBlob(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	// shapes a hand-edited or legacy blob could take: string marks,
	// missing fields, the old totalParticipants name
	blob := `{
		"availableTests": [
			{"id": "t1", "title": "Algebra", "totalParticipants": 12,
			 "questionsData": [{"question": "2+2?", "options": ["3","4"], "correctAnswer": "1", "marks": "5"}]}
		],
		"completedTests": [],
		"submissions": []
	}`
	require.NoError(t, kv.Set(ctx, config.CacheKey.TestSnapshotKey(), blob))

	snap, err := NewSnapshotRepository(kv).Load(ctx)
	require.NoError(t, err)

	require.Len(t, snap.AvailableTests, 1)
	test := snap.AvailableTests[0]
	assert.Equal(t, "general", test.Subject)
	assert.Equal(t, 12, test.AttemptCount)
	require.Len(t, test.QuestionsData, 1)
	q := test.QuestionsData[0]
	assert.Equal(t, 5, q.Marks)
	require.NotNil(t, q.CorrectAnswer)
	assert.Equal(t, 1, *q.CorrectAnswer)
}

func TestSnapshotReset(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(NewMemoryKV())

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	snap.AvailableTests = nil
	require.NoError(t, repo.Save(ctx, snap))
	require.NoError(t, repo.Reset(ctx))

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, reloaded.AvailableTests, 3)
}
