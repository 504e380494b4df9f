package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/model"
)

// ErrUserExists is returned when registering an email that is taken.
var ErrUserExists = errors.New("user with this email already exists")

// UserRepository stores self-registered accounts as a JSON list keyed
// by a single registry entry. The built-in demo accounts never live
// here; the auth service resolves those before consulting this store.
type UserRepository struct {
	kv KV
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(kv KV) *UserRepository {
	return &UserRepository{kv: kv}
}

// List returns every registered account.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	raw, err := r.kv.Get(ctx, config.CacheKey.RegisteredUsersKey())
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByEmail finds a registered account by email, case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create appends a new account, rejecting duplicate emails.
func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrUserExists
		}
	}

	raw, err := json.Marshal(append(users, user))
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, config.CacheKey.RegisteredUsersKey(), string(raw))
}

// ResourcesAccessed reads the per-student resource access counter
// maintained by the queue worker. An absent counter reads as zero.
func (r *UserRepository) ResourcesAccessed(ctx context.Context, studentID string) (int, error) {
	raw, err := r.kv.Get(ctx, config.CacheKey.ResourcesAccessedKey(studentID))
	if errors.Is(err, ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}
	return count, nil
}
