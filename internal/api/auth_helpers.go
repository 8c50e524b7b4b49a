package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dojoaonde/internal/services"
)

const postLoginRedirectPath = "/"

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, key string, email string) error {
	message := translateMessage(currentMessages(c), key)
	if AcceptsJSON(c) || isHTMX(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{AuthError: message, LoginEmail: email})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func normalizeLoginEmail(raw string) string {
	email := services.NormalizeEmail(raw)
	if !services.IsValidEmail(email) {
		return ""
	}
	return email
}
