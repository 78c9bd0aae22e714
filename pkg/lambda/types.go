package lambda

import (
	"context"
	"encoding/json"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// PathParam returns the named path parameter and whether it was present.
// A parameter present with an empty value reports true.
func (r *Request) PathParam(name string) (string, bool) {
	if r.PathParams == nil {
		return "", false
	}
	value, ok := r.PathParams[name]
	return value, ok
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// NewJSONResponse encodes v as the response body
func NewJSONResponse(statusCode int, v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       body,
	}, nil
}

// NewTextResponse returns a plain text response
func NewTextResponse(statusCode int, text string) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": contentTypeText},
		Body:       []byte(text),
	}
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)
