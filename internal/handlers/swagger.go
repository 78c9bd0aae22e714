package handlers

//go:generate swag init -g swagger.go -d ./,../models,../services -o ../../docs

// @title Users API
// @version 1.0
// @description Minimal users resource served from AWS Lambda behind API Gateway

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @tag.name users
// @tag.description User lookup and creation
