package handlers

import (
	"net/http"

	"users-api/pkg/lambda"
)

// Fixed response bodies. Callers never see internal error detail.
const (
	BadRequestMessage       = "Bad request"
	MethodNotAllowedMessage = "Method not allowed"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func badRequest() *lambda.Response {
	return lambda.NewTextResponse(http.StatusBadRequest, BadRequestMessage)
}

func methodNotAllowed() *lambda.Response {
	return lambda.NewTextResponse(http.StatusMethodNotAllowed, MethodNotAllowedMessage)
}
