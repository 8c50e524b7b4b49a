package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dojoaonde/internal/services"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if user := handler.optionalAuthenticatedUser(c); user != nil {
		return redirectToPath(c, postLoginRedirectPath)
	}
	return handler.render(c, "login", fiber.Map{
		"title": localizedPageTitle(currentMessages(c), "meta.title.login", "Sign in"),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := handler.currentTime()
	limiterKey := requestLimiterKey(c)

	fields, err := parseFormFields(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "auth.error.invalid_credentials", "")
	}
	email := normalizeLoginEmail(fields.value("email"))

	if handler.loginLimiter.blocked(limiterKey, now) {
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, "auth.error.too_many_login_attempts", email)
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(fields.value("email"), fields.value("password"))
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.recordFailure(limiterKey, now)
			return handler.respondAuthError(c, fiber.StatusUnauthorized, "auth.error.invalid_credentials", email)
		}
		return handler.respondInternalError(c, "failed to sign in", err)
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.startSession(c, &user, fields.flag("remember_me")); err != nil {
		return handler.respondInternalError(c, "failed to create session", err)
	}
	return redirectOrJSON(c, postLoginRedirectPath)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.endSession(c)
	if AcceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{Notice: translateMessage(currentMessages(c), "flash.logged_out")})
	return redirectToPath(c, "/login")
}
