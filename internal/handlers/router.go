package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"users-api/internal/config"
	"users-api/pkg/lambda"
)

// Router dispatches requests to a handler by exact, case-sensitive match
// on the HTTP method. It holds no per-request state.
type Router struct {
	routes map[string]lambda.HandlerFunc
	logger logrus.FieldLogger
}

// NewRouter builds the router for a route family.
//
//	users:      GET -> list or get, POST -> create
//	user-by-id: GET -> get (user_id required)
func NewRouter(family string, userHandler *UserHandler, logger logrus.FieldLogger) (*Router, error) {
	routes := make(map[string]lambda.HandlerFunc)

	switch family {
	case config.RouteFamilyUsers:
		routes[http.MethodGet] = userHandler.HandleListOrGet
		routes[http.MethodPost] = userHandler.HandleCreate
	case config.RouteFamilyUserByID:
		routes[http.MethodGet] = userHandler.HandleGet
	default:
		return nil, fmt.Errorf("unknown route family %q", family)
	}

	return &Router{
		routes: routes,
		logger: logger,
	}, nil
}

// Route invokes the handler registered for req.Method. Unmatched methods
// get a 405.
func (r *Router) Route(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	handler, ok := r.routes[req.Method]
	if !ok {
		r.logger.WithFields(logrus.Fields{
			"request_id": req.RequestID,
			"method":     req.Method,
			"path":       req.Path,
		}).Error("Method not allowed")
		return methodNotAllowed(), nil
	}

	return handler(ctx, req)
}
