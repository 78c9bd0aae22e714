// Package fixture provides repositories backed by fixed, synthetic data.
package fixture

import (
	"context"

	"users-api/internal/models"
	"users-api/internal/repositories"
)

// UserRepository synthesizes users instead of reading them from a store
type UserRepository struct{}

var _ repositories.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new fixture user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByID returns the synthetic user for id. It never fails.
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*models.User, error) {
	return models.NewUserFromID(id), nil
}

// List returns the two fixed sample users
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	return []*models.User{
		models.NewUser("test_user1", "example1@example.com"),
		models.NewUser("test_user2", "example2@example.com"),
	}, nil
}
