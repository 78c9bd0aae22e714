package repositories

import (
	"context"

	"users-api/internal/models"
)

// UserRepository defines the read operations the users routes depend on.
// Implementations must be safe for concurrent use.
type UserRepository interface {
	// GetByID retrieves a user by its numeric ID
	GetByID(ctx context.Context, id uint64) (*models.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*models.User, error)
}

// RepositoryContainer holds all repository instances
type RepositoryContainer struct {
	UserRepo UserRepository
}
