// Package service defines the backend-agnostic interfaces for task and auth
// operations. Commands never talk to the REST API directly.
package service

import "context"

// Service defines the task operations exposed by the backend.
// Each call maps to exactly one REST endpoint and issues at most one
// network round trip (zero when pre-flight validation fails).
type Service interface {
	// ListTasks returns the caller's tasks in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the full server record,
	// including generated id and timestamps.
	// Fails with *ValidationError before any network call if the input
	// violates the title/description constraints.
	CreateTask(ctx context.Context, in NewTask) (Task, error)

	// GetTask returns a single task by id.
	GetTask(ctx context.Context, id string) (Task, error)

	// UpdateTask replaces the provided subset of fields; omitted fields
	// are left unchanged. Returns the updated record.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)

	// ToggleComplete flips the task's completed flag server-side and
	// returns the updated record.
	ToggleComplete(ctx context.Context, id string) (Task, error)

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, id string) error
}

// Auth defines the session operations of the external auth collaborator.
type Auth interface {
	// SignIn exchanges email/password for a session.
	SignIn(ctx context.Context, email, password string) (Session, error)

	// SignUp registers a new account and returns its first session.
	SignUp(ctx context.Context, name, email, password string) (Session, error)

	// SignOut revokes the current session server-side.
	SignOut(ctx context.Context) error
}
