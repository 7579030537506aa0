package todo

import "time"

// CreateTodoRequest represents a todo creation request.
type CreateTodoRequest struct {
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Memo    string `json:"memo"`
}

// GetTodoRequest represents a single-todo fetch scoped to an owner.
type GetTodoRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

// UpdateTodoRequest represents an edit to an owned todo.
type UpdateTodoRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Memo    string `json:"memo"`
}

// CompleteTodoRequest represents a completion request.
type CompleteTodoRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

// DeleteTodoRequest represents a deletion request.
type DeleteTodoRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

// ListTodosRequest represents a list request scoped to an owner.
type ListTodosRequest struct {
	OwnerID string `json:"owner_id"`
}

// TodoView is the todo representation returned to consumers.
type TodoView struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Memo          string     `json:"memo"`
	Created       time.Time  `json:"created"`
	DateCompleted *time.Time `json:"date_completed,omitempty"`
}

// Completed reports whether the view describes a completed todo.
func (v TodoView) Completed() bool {
	return v.DateCompleted != nil
}

// TodoResponse represents a single-todo response.
type TodoResponse struct {
	Todo TodoView `json:"todo"`
}

// ListTodosResponse represents a list response.
type ListTodosResponse struct {
	Todos []TodoView `json:"todos"`
	Total int        `json:"total"`
}

// AckResponse represents a reply for operations with no payload.
type AckResponse struct {
	ID string `json:"id"`
}
