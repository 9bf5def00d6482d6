// Package viewmodel maintains the ordered task sequence shown to the user
// and keeps it consistent with the last confirmed server state.
//
// The model is not optimistic: it mutates its sequence only after the
// backend confirms an operation. On failure the sequence is left exactly
// as it was and the error is recorded as the model's status. All methods
// are meant to be called from a single goroutine; there is no internal
// locking.
package viewmodel

import (
	"context"
	"fmt"

	"taskcli/internal/service"
)

// Status is the coarse state of the model.
type Status int

const (
	// StatusReady means the sequence reflects the last confirmed server state.
	StatusReady Status = iota

	// StatusLoading means a full list fetch is in flight. Entered by Load
	// only, never by per-item mutations.
	StatusLoading

	// StatusError means the last operation failed; the sequence is
	// whatever the last successful operation left behind.
	StatusError
)

// Model owns the UI-visible task sequence.
type Model struct {
	svc    service.Service
	tasks  []service.Task
	status Status
	errMsg string
}

// New creates an empty model backed by svc.
func New(svc service.Service) *Model {
	return &Model{svc: svc}
}

// Load fetches the full list and replaces the sequence in server order.
// Calling Load twice with no intervening mutation yields the same sequence.
func (m *Model) Load(ctx context.Context) error {
	m.status = StatusLoading
	tasks, err := m.svc.ListTasks(ctx)
	if err != nil {
		return m.fail(err)
	}
	m.tasks = tasks
	m.ok()
	return nil
}

// Create asks the backend to create a task and appends the returned record
// to the end of the sequence.
func (m *Model) Create(ctx context.Context, in service.NewTask) (service.Task, error) {
	task, err := m.svc.CreateTask(ctx, in)
	if err != nil {
		return service.Task{}, m.fail(err)
	}
	m.tasks = append(m.tasks, task)
	m.ok()
	return task, nil
}

// Update applies a partial update and replaces the matching entry in
// place, preserving its position. If the entry is gone locally the
// confirmed record is dropped (no-op on the sequence).
func (m *Model) Update(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	task, err := m.svc.UpdateTask(ctx, id, patch)
	if err != nil {
		return service.Task{}, m.fail(err)
	}
	m.replace(task)
	m.ok()
	return task, nil
}

// Toggle flips the completed flag server-side and replaces the matching
// entry in place.
func (m *Model) Toggle(ctx context.Context, id string) (service.Task, error) {
	task, err := m.svc.ToggleComplete(ctx, id)
	if err != nil {
		return service.Task{}, m.fail(err)
	}
	m.replace(task)
	m.ok()
	return task, nil
}

// Delete removes the task server-side, then drops exactly the entry with
// that id from the sequence, leaving the order of the rest unchanged.
func (m *Model) Delete(ctx context.Context, id string) error {
	if err := m.svc.DeleteTask(ctx, id); err != nil {
		return m.fail(err)
	}
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	m.ok()
	return nil
}

// Tasks returns a copy of the current sequence.
func (m *Model) Tasks() []service.Task {
	out := make([]service.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Len returns the number of tasks in the sequence.
func (m *Model) Len() int { return len(m.tasks) }

// Task returns the task at the 1-based position num, matching the
// numbering printed by the list output.
func (m *Model) Task(num int) (service.Task, error) {
	if num < 1 || num > len(m.tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return m.tasks[num-1], nil
}

// Status returns the model status.
func (m *Model) Status() Status { return m.status }

// Err returns the recorded error message, or "" when status is not
// StatusError.
func (m *Model) Err() string { return m.errMsg }

func (m *Model) replace(task service.Task) {
	for i, t := range m.tasks {
		if t.ID == task.ID {
			m.tasks[i] = task
			return
		}
	}
}

func (m *Model) ok() {
	m.status = StatusReady
	m.errMsg = ""
}

func (m *Model) fail(err error) error {
	m.status = StatusError
	m.errMsg = err.Error()
	return err
}
