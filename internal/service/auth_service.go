package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/repository"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	Role model.Role `json:"role"`
	Name string     `json:"name"`
}

// AuthService handles registration, login and JWT issuance. Accounts
// come from two places: the built-in demo accounts (one per role,
// sharing a configurable password) and self-registered accounts in the
// user repository. Demo accounts win email conflicts.
type AuthService struct {
	cfg   *config.Config
	users *repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, users *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, users: users}
}

// demoAccounts returns the built-in accounts keyed by role. IDs are
// stable so submissions survive re-login.
func demoAccounts() []model.User {
	return []model.User{
		{
			ID:     "1",
			Email:  "student@example.com",
			Name:   "Rahul Kumar",
			Role:   model.RoleStudent,
			Grade:  "Class 10",
			School: "Government High School, Rampur",
		},
		{
			ID:       "2",
			Email:    "parent@example.com",
			Name:     "Sunita Kumar",
			Role:     model.RoleParent,
			Phone:    "+91 98765 43210",
			Children: []string{"1"},
		},
		{
			ID:      "3",
			Email:   "teacher@example.com",
			Name:    "Priya Sharma",
			Role:    model.RoleTeacher,
			Subject: "Mathematics",
			School:  "Government High School, Rampur",
		},
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Register creates a new account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	for _, demo := range demoAccounts() {
		if strings.EqualFold(demo.Email, email) {
			return nil, "", ErrEmailTaken
		}
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Role:         model.Role(req.Role),
		Grade:        req.Grade,
		School:       req.School,
		Phone:        req.Phone,
		Subject:      req.Subject,
		Children:     req.Children,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	public := user.Public()
	return &public, token, nil
}

// Login authenticates an account against the requested role. A correct
// password under the wrong role is still rejected: the portals are
// role-scoped and tokens carry the role they were issued for.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := model.Role(req.Role)

	user, err := s.resolveAccount(ctx, email, req.Password)
	if err != nil {
		return nil, "", err
	}
	if user.Role != role {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(*user)
	if err != nil {
		return nil, "", err
	}
	public := user.Public()
	return &public, token, nil
}

// resolveAccount finds the account for an email and checks its password.
func (s *AuthService) resolveAccount(ctx context.Context, email, password string) (*model.User, error) {
	for _, demo := range demoAccounts() {
		if strings.EqualFold(demo.Email, email) {
			if password != s.cfg.DemoPassword {
				return nil, ErrInvalidCredentials
			}
			return &demo, nil
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser resolves an account by id across demo and registered users.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	for _, demo := range demoAccounts() {
		if demo.ID == id {
			return &demo, nil
		}
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			public := users[i].Public()
			return &public, nil
		}
	}
	return nil, nil
}

// ListStudents returns every known student account, demo first.
func (s *AuthService) ListStudents(ctx context.Context) ([]model.User, error) {
	var students []model.User
	for _, demo := range demoAccounts() {
		if demo.Role == model.RoleStudent {
			students = append(students, demo)
		}
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Role == model.RoleStudent {
			students = append(students, u.Public())
		}
	}
	return students, nil
}

// GenerateToken creates a signed JWT for the user.
func (s *AuthService) GenerateToken(user model.User) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		Role: user.Role,
		Name: user.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
