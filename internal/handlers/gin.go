package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/middleware"
	"users-api/pkg/lambda"
)

// GinHandler serves a Router through gin so the local server and the
// Lambda function share one dispatch path.
func GinHandler(router *Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requestFromGin(c)
		if err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			c.Data(http.StatusBadRequest, "text/plain; charset=utf-8", []byte(BadRequestMessage))
			return
		}

		resp, err := router.Route(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}

func requestFromGin(c *gin.Context) (*lambda.Request, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
	}

	var pathParams map[string]string
	if len(c.Params) > 0 {
		pathParams = make(map[string]string, len(c.Params))
		for _, param := range c.Params {
			pathParams[param.Key] = param.Value
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.Request.Header.Get(key)
	}

	query := make(map[string]string)
	for key := range c.Request.URL.Query() {
		query[key] = c.Query(key)
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		PathParams:  pathParams,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}, nil
}
