package todo

import (
	"context"
	"errors"
	"time"

	domain "github.com/lenilunderman/djangotodowoo/domain/todo"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// maxTitleLength caps todo titles; SQLite does not enforce the column size.
const maxTitleLength = 100

var (
	// ErrTitleRequired is returned when a todo is created or edited without a title.
	ErrTitleRequired = errors.New("title is required")
	// ErrTitleTooLong is returned when a title exceeds maxTitleLength.
	ErrTitleTooLong = errors.New("title must be at most 100 characters")
	// ErrOwnerRequired is returned when a request carries no owner.
	ErrOwnerRequired = errors.New("owner is required")
)

func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// createTodo handles the todo.create service request.
func (m *TodoModule) createTodo(_ context.Context, req CreateTodoRequest, _ *mono.Msg) (TodoResponse, error) {
	if req.OwnerID == "" {
		return TodoResponse{}, ErrOwnerRequired
	}
	if err := validateTitle(req.Title); err != nil {
		return TodoResponse{}, err
	}

	todo := &domain.Todo{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Memo:    req.Memo,
		Created: time.Now(),
		OwnerID: req.OwnerID,
	}

	if err := m.repo.Create(todo); err != nil {
		return TodoResponse{}, err
	}

	return TodoResponse{Todo: toTodoView(todo)}, nil
}

// getTodo handles the todo.get service request.
func (m *TodoModule) getTodo(_ context.Context, req GetTodoRequest, _ *mono.Msg) (TodoResponse, error) {
	if req.OwnerID == "" {
		return TodoResponse{}, ErrOwnerRequired
	}

	todo, err := m.repo.FindByOwner(req.ID, req.OwnerID)
	if err != nil {
		return TodoResponse{}, err
	}

	return TodoResponse{Todo: toTodoView(todo)}, nil
}

// listOpenTodos handles the todo.list-open service request.
func (m *TodoModule) listOpenTodos(_ context.Context, req ListTodosRequest, _ *mono.Msg) (ListTodosResponse, error) {
	if req.OwnerID == "" {
		return ListTodosResponse{}, ErrOwnerRequired
	}

	todos, err := m.repo.ListOpen(req.OwnerID)
	if err != nil {
		return ListTodosResponse{}, err
	}

	return toListResponse(todos), nil
}

// listCompletedTodos handles the todo.list-completed service request.
func (m *TodoModule) listCompletedTodos(_ context.Context, req ListTodosRequest, _ *mono.Msg) (ListTodosResponse, error) {
	if req.OwnerID == "" {
		return ListTodosResponse{}, ErrOwnerRequired
	}

	todos, err := m.repo.ListCompleted(req.OwnerID)
	if err != nil {
		return ListTodosResponse{}, err
	}

	return toListResponse(todos), nil
}

// updateTodo handles the todo.update service request. Only title and memo are
// editable; Created is immutable and completion has its own operation.
func (m *TodoModule) updateTodo(_ context.Context, req UpdateTodoRequest, _ *mono.Msg) (TodoResponse, error) {
	if req.OwnerID == "" {
		return TodoResponse{}, ErrOwnerRequired
	}
	if err := validateTitle(req.Title); err != nil {
		return TodoResponse{}, err
	}

	todo, err := m.repo.FindByOwner(req.ID, req.OwnerID)
	if err != nil {
		return TodoResponse{}, err
	}

	todo.Title = req.Title
	todo.Memo = req.Memo
	if err := m.repo.Update(todo); err != nil {
		return TodoResponse{}, err
	}

	return TodoResponse{Todo: toTodoView(todo)}, nil
}

// completeTodo handles the todo.complete service request.
func (m *TodoModule) completeTodo(_ context.Context, req CompleteTodoRequest, _ *mono.Msg) (AckResponse, error) {
	if req.OwnerID == "" {
		return AckResponse{}, ErrOwnerRequired
	}

	if err := m.repo.Complete(req.ID, req.OwnerID, time.Now()); err != nil {
		return AckResponse{}, err
	}

	return AckResponse{ID: req.ID}, nil
}

// deleteTodo handles the todo.delete service request. The original flow also
// stamped date_completed right before the delete; the row is gone immediately
// after, so the stamp is dropped here.
func (m *TodoModule) deleteTodo(_ context.Context, req DeleteTodoRequest, _ *mono.Msg) (AckResponse, error) {
	if req.OwnerID == "" {
		return AckResponse{}, ErrOwnerRequired
	}

	if err := m.repo.Delete(req.ID, req.OwnerID); err != nil {
		return AckResponse{}, err
	}

	return AckResponse{ID: req.ID}, nil
}

// toTodoView converts a todo entity to its response representation.
func toTodoView(todo *domain.Todo) TodoView {
	return TodoView{
		ID:            todo.ID,
		Title:         todo.Title,
		Memo:          todo.Memo,
		Created:       todo.Created,
		DateCompleted: todo.DateCompleted,
	}
}

func toListResponse(todos []*domain.Todo) ListTodosResponse {
	response := ListTodosResponse{
		Todos: make([]TodoView, 0, len(todos)),
		Total: len(todos),
	}
	for _, todo := range todos {
		response.Todos = append(response.Todos, toTodoView(todo))
	}
	return response
}
