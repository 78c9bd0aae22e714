package main

import (
	"context"

	"users-api/internal/config"
	"users-api/pkg/lambda"
	"users-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var manager = server.NewManager(config.GetOptimizedConfig)

func init() {
	if _, err := manager.Container(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := manager.Container()
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return lambda.Wrap(container.UserRouter.Route, container.Logger)(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
