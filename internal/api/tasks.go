package api

import (
	"context"
	"net/http"
	"net/url"

	"taskcli/internal/service"
)

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask implements service.Service. The title is trimmed before it is
// sent; invalid input fails locally with no network call.
func (c *Client) CreateTask(ctx context.Context, in service.NewTask) (service.Task, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return service.Task{}, err
	}

	var task service.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", in, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// GetTask implements service.Service.
func (c *Client) GetTask(ctx context.Context, id string) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask implements service.Service. Only fields present in the patch
// are sent; the server leaves the rest unchanged.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return service.Task{}, err
	}

	var task service.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), patch, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// ToggleComplete implements service.Service. The server flips the flag,
// so two serialized toggles restore the original value.
func (c *Client) ToggleComplete(ctx context.Context, id string) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id)+"/complete", nil, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask implements service.Service. The backend answers 204 on
// success; there is no body to decode.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}
