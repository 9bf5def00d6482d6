// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskcli/internal/service"
)

// FakeUserID is the user id assigned to fake records.
const FakeUserID = "user-1"

// FakeService is an in-memory implementation of service.Service and
// service.Auth for testing. It mirrors the backend's semantics: server
// order is creation order, toggle flips the flag, timestamps advance on
// every mutation.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task
	now   time.Time

	// Calls counts backend operations by name, for asserting that
	// validation failures issue zero calls.
	Calls map[string]int

	// Error injection for testing
	ListTasksErr      error
	CreateTaskErr     error
	GetTaskErr        error
	UpdateTaskErr     error
	ToggleCompleteErr error
	DeleteTaskErr     error
	SignInErr         error
	SignUpErr         error
	SignOutErr        error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		now:   time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		Calls: make(map[string]int),
	}
}

// AddTask seeds a pending task and returns its generated id.
func (f *FakeService) AddTask(title, description string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	task := service.Task{
		ID:        uuid.NewString(),
		UserID:    FakeUserID,
		Title:     title,
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
	if description != "" {
		task.Description = &description
	}
	f.tasks = append(f.tasks, task)
	return task.ID
}

// Tasks returns a copy of the stored tasks in server order.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// tick advances the fake clock so updated_at moves on every mutation.
func (f *FakeService) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *FakeService) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[op]++
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, in service.NewTask) (service.Task, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return service.Task{}, err
	}

	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()
	task := service.Task{
		ID:          uuid.NewString(),
		UserID:      FakeUserID,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id string) (service.Task, error) {
	f.record("GetTask")
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, notFound(id)
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return service.Task{}, err
	}

	f.record("UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = patch.Description
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		t.UpdatedAt = f.tick()
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, notFound(id)
}

// ToggleComplete implements service.Service.
func (f *FakeService) ToggleComplete(ctx context.Context, id string) (service.Task, error) {
	f.record("ToggleComplete")
	if f.ToggleCompleteErr != nil {
		return service.Task{}, f.ToggleCompleteErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		t.Completed = !t.Completed
		t.UpdatedAt = f.tick()
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, notFound(id)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return notFound(id)
}

// SignIn implements service.Auth.
func (f *FakeService) SignIn(ctx context.Context, email, password string) (service.Session, error) {
	f.record("SignIn")
	if f.SignInErr != nil {
		return service.Session{}, f.SignInErr
	}
	return service.Session{
		Token:  "fake-token",
		UserID: FakeUserID,
		Email:  email,
	}, nil
}

// SignUp implements service.Auth.
func (f *FakeService) SignUp(ctx context.Context, name, email, password string) (service.Session, error) {
	f.record("SignUp")
	if f.SignUpErr != nil {
		return service.Session{}, f.SignUpErr
	}
	return service.Session{
		Token:  "fake-token",
		UserID: FakeUserID,
		Name:   name,
		Email:  email,
	}, nil
}

// SignOut implements service.Auth.
func (f *FakeService) SignOut(ctx context.Context) error {
	f.record("SignOut")
	return f.SignOutErr
}

func notFound(id string) error {
	return &service.RequestError{Status: 404, Message: "Task '" + id + "' not found."}
}
