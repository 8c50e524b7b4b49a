package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dojoaonde/internal/models"
)

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	userID, err := handler.sessionUserID(c)
	if err != nil {
		return nil, err
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// optionalAuthenticatedUser resolves the session for public pages. A missing or
// stale cookie simply yields nil.
func (handler *Handler) optionalAuthenticatedUser(c *fiber.Ctx) *models.User {
	if user, ok := currentUser(c); ok {
		return user
	}
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return nil
	}
	c.Locals(contextUserKey, user)
	return user
}
