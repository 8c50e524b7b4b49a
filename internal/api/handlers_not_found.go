package api

import (
	"github.com/gofiber/fiber/v2"
)

// NotFound is the fallback for unmatched routes and for dojo ids that do not resolve.
func (handler *Handler) NotFound(c *fiber.Ctx) error {
	message := localizedPageTitle(currentMessages(c), "error.not_found", "Page not found")

	switch requestClient(c) {
	case clientJSON:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case clientHTMX:
		return c.Status(fiber.StatusNotFound).SendString(alertFragment([]string{message}))
	default:
		c.Status(fiber.StatusNotFound)
		return handler.render(c, "not_found", fiber.Map{"title": message})
	}
}
