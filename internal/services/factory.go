package services

import (
	"fmt"

	"users-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	UserService UserService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repos *repositories.RepositoryContainer) (*ServiceContainer, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository container cannot be nil")
	}

	if repos.UserRepo == nil {
		return nil, fmt.Errorf("user repository cannot be nil")
	}

	return &ServiceContainer{
		UserService: NewUserService(repos.UserRepo),
	}, nil
}
