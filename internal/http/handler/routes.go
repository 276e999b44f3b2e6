package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "demoapps/docs"
	"demoapps/internal/service"
)

// RegisterRoutes attaches the API service routes to the provided Fiber app.
// Only GET / and GET /health are application routes; /docs/* is generated documentation.
func RegisterRoutes(app *fiber.App, svc service.StatusService) {
	app.Get("/", Root(svc))
	app.Get("/health", HealthCheck(svc))

	RegisterDocs(app)
}

// RegisterDocs serves Swagger UI under /docs/ and the OpenAPI document at /docs/doc.json.
func RegisterDocs(app *fiber.App) {
	app.Get("/docs/*", swagger.HandlerDefault)
}

// Root godoc
// @Summary Root greeting
// @Produce json
// @Success 200 {object} model.Message
// @Router / [get]
func Root(svc service.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Root(c.UserContext()))
	}
}

// HealthCheck godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Router /health [get]
func HealthCheck(svc service.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(svc.Health(c.UserContext()))
	}
}
