package lambda

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// APIGatewayHandler is the signature passed to lambda.Start for API Gateway proxy integrations
type APIGatewayHandler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// FromAPIGatewayRequest converts an API Gateway proxy event to a generic request
func FromAPIGatewayRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 body: %w", err)
		}
		body = decoded
	}

	requestID := event.RequestContext.RequestID
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		requestID = lc.AwsRequestID
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
		RequestID:   requestID,
	}, nil
}

// ToAPIGatewayResponse converts a generic response to an API Gateway proxy response
func ToAPIGatewayResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// internalErrorResponse is returned when a handler fails unexpectedly
func internalErrorResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: 500,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       `{"error": "Internal server error"}`,
	}
}

// Wrap adapts a generic handler to an API Gateway proxy handler. Handler
// errors are logged and surfaced as a 500 response rather than a failed
// invocation.
func Wrap(handler HandlerFunc, logger logrus.FieldLogger) APIGatewayHandler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := FromAPIGatewayRequest(ctx, event)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"method": event.HTTPMethod,
				"path":   event.Path,
				"error":  err.Error(),
			}).Error("Failed to convert API Gateway request")
			return ToAPIGatewayResponse(NewTextResponse(400, "Bad request")), nil
		}

		resp, err := handler(ctx, req)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"request_id": req.RequestID,
				"method":     req.Method,
				"path":       req.Path,
				"error":      err.Error(),
			}).Error("Handler failed")
			return internalErrorResponse(), nil
		}

		return ToAPIGatewayResponse(resp), nil
	}
}
