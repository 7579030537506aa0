package todo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TodoPort defines the interface for todo operations. Every call is scoped to
// an owner; there is no way to reach todos across owners through this port.
type TodoPort interface {
	Create(ctx context.Context, ownerID, title, memo string) (*TodoView, error)
	Get(ctx context.Context, id, ownerID string) (*TodoView, error)
	ListOpen(ctx context.Context, ownerID string) ([]TodoView, error)
	ListCompleted(ctx context.Context, ownerID string) ([]TodoView, error)
	Update(ctx context.Context, id, ownerID, title, memo string) error
	Complete(ctx context.Context, id, ownerID string) error
	Delete(ctx context.Context, id, ownerID string) error
}

// TodoAdapter implements TodoPort using the service container.
type TodoAdapter struct {
	container mono.ServiceContainer
}

// NewTodoAdapter creates a new TodoAdapter.
func NewTodoAdapter(container mono.ServiceContainer) *TodoAdapter {
	return &TodoAdapter{
		container: container,
	}
}

// Create creates a todo owned by the given user.
func (a *TodoAdapter) Create(ctx context.Context, ownerID, title, memo string) (*TodoView, error) {
	req := CreateTodoRequest{OwnerID: ownerID, Title: title, Memo: memo}
	var resp TodoResponse
	if err := call(a, ctx, "create", &req, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

// Get fetches a todo by ID, scoped to the owner.
func (a *TodoAdapter) Get(ctx context.Context, id, ownerID string) (*TodoView, error) {
	req := GetTodoRequest{ID: id, OwnerID: ownerID}
	var resp TodoResponse
	if err := call(a, ctx, "get", &req, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

// ListOpen lists the owner's open todos.
func (a *TodoAdapter) ListOpen(ctx context.Context, ownerID string) ([]TodoView, error) {
	req := ListTodosRequest{OwnerID: ownerID}
	var resp ListTodosResponse
	if err := call(a, ctx, "list-open", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Todos, nil
}

// ListCompleted lists the owner's completed todos, most recent first.
func (a *TodoAdapter) ListCompleted(ctx context.Context, ownerID string) ([]TodoView, error) {
	req := ListTodosRequest{OwnerID: ownerID}
	var resp ListTodosResponse
	if err := call(a, ctx, "list-completed", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Todos, nil
}

// Update edits an owned todo's title and memo.
func (a *TodoAdapter) Update(ctx context.Context, id, ownerID, title, memo string) error {
	req := UpdateTodoRequest{ID: id, OwnerID: ownerID, Title: title, Memo: memo}
	var resp TodoResponse
	return call(a, ctx, "update", &req, &resp)
}

// Complete marks an owned todo as completed.
func (a *TodoAdapter) Complete(ctx context.Context, id, ownerID string) error {
	req := CompleteTodoRequest{ID: id, OwnerID: ownerID}
	var resp AckResponse
	return call(a, ctx, "complete", &req, &resp)
}

// Delete permanently removes an owned todo.
func (a *TodoAdapter) Delete(ctx context.Context, id, ownerID string) error {
	req := DeleteTodoRequest{ID: id, OwnerID: ownerID}
	var resp AckResponse
	return call(a, ctx, "delete", &req, &resp)
}

func call[T1 any, T2 any](a *TodoAdapter, ctx context.Context, service string, req T1, resp *T2) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	return nil
}
