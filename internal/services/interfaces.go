package services

import (
	"context"

	"users-api/internal/models"
)

// UserService defines the interface for user operations
type UserService interface {
	// GetUser parses rawID and returns the matching user.
	// A malformed rawID yields an error wrapping ErrInvalidUserID.
	GetUser(ctx context.Context, rawID string) (*models.User, error)

	// ListUsers returns every user
	ListUsers(ctx context.Context) ([]*models.User, error)

	// CreateUser decodes body into a user and returns it unchanged.
	// A body that does not decode yields an error wrapping ErrInvalidUserPayload.
	CreateUser(ctx context.Context, body []byte) (*models.User, error)
}

// CreateUserRequest is the wire shape accepted by CreateUser. Pointer fields
// distinguish a missing key from an empty string.
type CreateUserRequest struct {
	Username *string `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"required"`
}
