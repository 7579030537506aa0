package auth

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/lenilunderman/djangotodowoo/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthPort defines the interface for identity operations.
// This is the port that other modules use to access auth functionality.
type AuthPort interface {
	Register(ctx context.Context, username, password string) (*domain.Identity, error)
	Login(ctx context.Context, username, password string) (*domain.Identity, error)
	GetUser(ctx context.Context, userID string) (*domain.Identity, error)
}

// AuthAdapter implements AuthPort using the service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{
		container: container,
	}
}

// Register creates a new user account and returns its identity.
func (a *AuthAdapter) Register(ctx context.Context, username, password string) (*domain.Identity, error) {
	req := RegisterRequest{Username: username, Password: password}
	var resp RegisterResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"register",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}

	return &domain.Identity{
		UserID:   resp.ID,
		Username: resp.Username,
	}, nil
}

// Login authenticates a user and returns its identity.
func (a *AuthAdapter) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	req := LoginRequest{Username: username, Password: password}
	var resp LoginResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"login",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	return &domain.Identity{
		UserID:   resp.ID,
		Username: resp.Username,
	}, nil
}

// GetUser retrieves a user identity by ID.
func (a *AuthAdapter) GetUser(ctx context.Context, userID string) (*domain.Identity, error) {
	req := GetUserRequest{UserID: userID}
	var resp GetUserResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-user request failed: %w", err)
	}

	return &domain.Identity{
		UserID:   resp.ID,
		Username: resp.Username,
	}, nil
}
