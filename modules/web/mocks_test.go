package web

import (
	"context"
	"errors"

	domain "github.com/lenilunderman/djangotodowoo/domain/user"
	"github.com/lenilunderman/djangotodowoo/modules/todo"
)

// mockAuthPort implements auth.AuthPort for testing.
type mockAuthPort struct {
	registerFunc func(ctx context.Context, username, password string) (*domain.Identity, error)
	loginFunc    func(ctx context.Context, username, password string) (*domain.Identity, error)
	getUserFunc  func(ctx context.Context, userID string) (*domain.Identity, error)
}

func (m *mockAuthPort) Register(ctx context.Context, username, password string) (*domain.Identity, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, username, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthPort) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthPort) GetUser(ctx context.Context, userID string) (*domain.Identity, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

// knownUser returns a mockAuthPort that resolves the given identity for its
// ID and accepts its username with any password.
func knownUser(ident *domain.Identity) *mockAuthPort {
	return &mockAuthPort{
		loginFunc: func(_ context.Context, username, _ string) (*domain.Identity, error) {
			if username != ident.Username {
				return nil, errors.New("invalid username or password")
			}
			return ident, nil
		},
		getUserFunc: func(_ context.Context, userID string) (*domain.Identity, error) {
			if userID != ident.UserID {
				return nil, errors.New("user not found")
			}
			return ident, nil
		},
	}
}

// mockTodoPort implements todo.TodoPort for testing.
type mockTodoPort struct {
	createFunc        func(ctx context.Context, ownerID, title, memo string) (*todo.TodoView, error)
	getFunc           func(ctx context.Context, id, ownerID string) (*todo.TodoView, error)
	listOpenFunc      func(ctx context.Context, ownerID string) ([]todo.TodoView, error)
	listCompletedFunc func(ctx context.Context, ownerID string) ([]todo.TodoView, error)
	updateFunc        func(ctx context.Context, id, ownerID, title, memo string) error
	completeFunc      func(ctx context.Context, id, ownerID string) error
	deleteFunc        func(ctx context.Context, id, ownerID string) error
}

func (m *mockTodoPort) Create(ctx context.Context, ownerID, title, memo string) (*todo.TodoView, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, ownerID, title, memo)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoPort) Get(ctx context.Context, id, ownerID string) (*todo.TodoView, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id, ownerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoPort) ListOpen(ctx context.Context, ownerID string) ([]todo.TodoView, error) {
	if m.listOpenFunc != nil {
		return m.listOpenFunc(ctx, ownerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoPort) ListCompleted(ctx context.Context, ownerID string) ([]todo.TodoView, error) {
	if m.listCompletedFunc != nil {
		return m.listCompletedFunc(ctx, ownerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoPort) Update(ctx context.Context, id, ownerID, title, memo string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, ownerID, title, memo)
	}
	return errors.New("not implemented")
}

func (m *mockTodoPort) Complete(ctx context.Context, id, ownerID string) error {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, id, ownerID)
	}
	return errors.New("not implemented")
}

func (m *mockTodoPort) Delete(ctx context.Context, id, ownerID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, ownerID)
	}
	return errors.New("not implemented")
}
