package handler

import (
	"github.com/gofiber/fiber/v2"

	"demoapps/internal/service"
)

const formView = "form"

// RegisterFormRoutes attaches the form UI page to the provided Fiber app.
// The app must be configured with the web view engine.
func RegisterFormRoutes(app *fiber.App, svc service.FormService) {
	app.Get("/", FormPage(svc))
}

// FormPage renders the whole page on every request; the input value travels
// in the "name" query parameter, so each submission is a fresh render.
func FormPage(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := svc.Page(c.UserContext(), c.Query("name"))
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Render(formView, page)
	}
}
