package model

import "time"

// MentorAskRequest is the payload for a mentor question.
type MentorAskRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
	Language string `json:"language" binding:"omitempty,len=2"`
}

// ResourceAccessEvent is queued when a student opens a learning resource.
// A background worker drains the queue and bumps the per-student counter.
type ResourceAccessEvent struct {
	StudentID  string    `json:"studentId"`
	ResourceID string    `json:"resourceId"`
	AccessedAt time.Time `json:"accessedAt"`
}
