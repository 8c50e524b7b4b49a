package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates management routes. Anonymous callers are sent to the login
// page before any handler runs, so nothing is read or written on their behalf.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err == nil {
		c.Locals(contextUserKey, user)
		return c.Next()
	}

	// A stale or forged cookie is dropped so the browser stops sending it.
	if !errors.Is(err, errSessionMissing) {
		handler.endSession(c)
	}
	if requestClient(c) == clientJSON {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	handler.setFlashCookie(c, FlashPayload{
		AuthError: translateMessage(currentMessages(c), "auth.error.login_required"),
	})
	return redirectToPath(c, "/login")
}
