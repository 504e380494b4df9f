package model

import "time"

// Role enumerates the portal's user roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleParent || r == RoleTeacher
}

// User is a registered portal account. The catalog/ledger core treats
// identity as an opaque {id, name, role} input; the richer profile fields
// only feed the dashboards.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"type"`
	Grade        string    `json:"grade,omitempty"`
	School       string    `json:"school,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Children     []string  `json:"children,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public returns a copy safe to send to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6,max=72"`
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Role     string   `json:"type" binding:"required,oneof=student parent teacher"`
	Grade    string   `json:"grade" binding:"omitempty,max=20"`
	School   string   `json:"school" binding:"omitempty,max=200"`
	Phone    string   `json:"phone" binding:"omitempty,max=20"`
	Subject  string   `json:"subject" binding:"omitempty,max=100"`
	Children []string `json:"children" binding:"omitempty,dive,max=100"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"type" binding:"required,oneof=student parent teacher"`
}
