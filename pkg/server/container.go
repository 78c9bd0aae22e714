package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"users-api/internal/config"
	"users-api/internal/handlers"
	"users-api/internal/repositories"
	"users-api/internal/repositories/fixture"
	"users-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      logrus.FieldLogger
	UserService services.UserService
	UserHandler *handlers.UserHandler
	UserRouter  *handlers.Router
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger logrus.FieldLogger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	// Users are synthesized; swap the repository here to read from a store
	repos := &repositories.RepositoryContainer{
		UserRepo: fixture.NewUserRepository(),
	}

	serviceContainer, err := services.NewServiceContainer(repos)
	if err != nil {
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	userHandler := handlers.NewUserHandler(serviceContainer.UserService, logger)

	userRouter, err := handlers.NewRouter(cfg.Users.RouteFamily, userHandler, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		UserService: serviceContainer.UserService,
		UserHandler: userHandler,
		UserRouter:  userRouter,
	}, nil
}

// RouterConfig returns the route configuration for the local server
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		UserRouter: c.UserRouter,
		Logger:     c.Logger,
		RateLimit:  c.Config.RateLimit,
	}
}

// Close releases resources held by the container
func (c *Container) Close() error {
	c.Logger.Debug("Container closed")
	return nil
}
