package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"users-api/internal/services"
	"users-api/pkg/lambda"
)

// UserIDParam is the path parameter carrying the user ID
const UserIDParam = "user_id"

// UserHandler handles user-related requests
type UserHandler struct {
	userService services.UserService
	logger      logrus.FieldLogger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// @Summary Get a user
// @Description Get a user by numeric ID
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Bad request"
// @Failure 405 {string} string "Method not allowed"
// @Router /users/{user_id} [get]
func (h *UserHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	log := h.requestLogger(req)
	log.WithField("path_params", req.PathParams).Info("Get user")

	rawID, ok := req.PathParam(UserIDParam)
	if !ok {
		log.Warn("Missing user_id path parameter")
		return badRequest(), nil
	}

	return h.getUser(ctx, log, rawID)
}

// @Summary List users
// @Description List all users, or get one user when user_id is present
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 400 {string} string "Bad request"
// @Failure 405 {string} string "Method not allowed"
// @Router /users [get]
func (h *UserHandler) HandleListOrGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	log := h.requestLogger(req).WithField("path_params", req.PathParams)

	if rawID, ok := req.PathParam(UserIDParam); ok {
		log.Info("Get user")
		return h.getUser(ctx, log, rawID)
	}

	log.Info("List users")

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	return lambda.NewJSONResponse(http.StatusOK, users)
}

// @Summary Create a user
// @Description Decode a user and echo it back. Nothing is stored.
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {string} string "Bad request"
// @Failure 405 {string} string "Method not allowed"
// @Router /users [post]
func (h *UserHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	log := h.requestLogger(req)

	user, err := h.userService.CreateUser(ctx, req.Body)
	if err != nil {
		if services.IsBadRequest(err) {
			log.WithField("error", err.Error()).Error("Failed to decode user")
			return badRequest(), nil
		}
		return nil, err
	}

	return lambda.NewJSONResponse(http.StatusCreated, user)
}

func (h *UserHandler) getUser(ctx context.Context, log logrus.FieldLogger, rawID string) (*lambda.Response, error) {
	user, err := h.userService.GetUser(ctx, rawID)
	if err != nil {
		if services.IsBadRequest(err) {
			log.WithField("error", err.Error()).Warn("Malformed user_id path parameter")
			return badRequest(), nil
		}
		return nil, err
	}

	return lambda.NewJSONResponse(http.StatusOK, user)
}

func (h *UserHandler) requestLogger(req *lambda.Request) logrus.FieldLogger {
	return h.logger.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"method":     req.Method,
		"path":       req.Path,
	})
}
