package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/model"
)

func TestUserCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewMemoryKV())

	require.NoError(t, repo.Create(ctx, model.User{
		ID:    "u1",
		Email: "asha@example.com",
		Name:  "Asha Patel",
		Role:  model.RoleStudent,
	}))

	user, err := repo.GetByEmail(ctx, "Asha@Example.COM")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewMemoryKV())

	require.NoError(t, repo.Create(ctx, model.User{ID: "u1", Email: "asha@example.com"}))

	err := repo.Create(ctx, model.User{ID: "u2", Email: "ASHA@example.com"})
	assert.ErrorIs(t, err, ErrUserExists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestResourcesAccessedCounter(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewUserRepository(kv)

	count, err := repo.ResourcesAccessed(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, kv.Set(ctx, config.CacheKey.ResourcesAccessedKey("u1"), "7"))
	count, err = repo.ResourcesAccessed(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
