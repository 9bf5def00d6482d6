package service

import (
	"strings"
	"time"
)

const (
	// MaxTitleLen is the maximum task title length after trimming.
	MaxTitleLen = 200

	// MaxDescriptionLen is the maximum task description length.
	MaxDescriptionLen = 1000
)

// Task represents a single task record as returned by the backend.
// id and user_id are server-assigned and immutable.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask is the payload for creating a task.
type NewTask struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// TaskPatch is a partial update. Nil fields are omitted from the request
// body and left unchanged by the server.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Session is an authenticated session issued by the auth collaborator.
// Token is an opaque bearer credential.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Normalize trims the title and returns a copy ready to be sent.
func (n NewTask) Normalize() NewTask {
	n.Title = strings.TrimSpace(n.Title)
	return n
}

// Validate checks the create payload against the title/description
// constraints. Called before any network traffic.
func (n NewTask) Validate() error {
	if err := validateTitle(n.Title); err != nil {
		return err
	}
	return validateDescription(n.Description)
}

// Normalize trims the title, if one is being set.
func (p TaskPatch) Normalize() TaskPatch {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		p.Title = &t
	}
	return p
}

// Validate checks only the fields present in the patch.
func (p TaskPatch) Validate() error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	return validateDescription(p.Description)
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if len(trimmed) > MaxTitleLen {
		return &ValidationError{Field: "title", Reason: "must be at most 200 characters"}
	}
	return nil
}

func validateDescription(desc *string) error {
	if desc != nil && len(*desc) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: "must be at most 1000 characters"}
	}
	return nil
}
