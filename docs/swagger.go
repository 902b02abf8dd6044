// Package docs provides Swagger documentation for the API.
package docs

// @title Gifting Campaign Launch API
// @version 1.0
// @description Orchestrates gifting campaign launches and relays recipient touchpoints

// @host localhost:8080
// @BasePath /
// @schemes http https
