package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dojoaonde/internal/models"
	"github.com/terraincognita07/dojoaonde/internal/services"
)

var userFormKeys = []string{"name", "email"}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	return handler.render(c, "register", fiber.Map{
		"title": localizedPageTitle(currentMessages(c), "meta.title.register", "Sign up"),
	})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	fields, err := parseFormFields(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, validationErrors, err := handler.authService.Register(services.RegistrationInput{
		Name:                 fields.value("name"),
		Email:                fields.value("email"),
		Password:             fields.value("password"),
		PasswordConfirmation: fields.optional("password_confirmation"),
	}, handler.currentTime())
	if err != nil {
		return handler.respondInternalError(c, "failed to create account", err)
	}
	if len(validationErrors) > 0 {
		return handler.respondValidationErrors(c, validationErrors, "/users/new", fields.keep(userFormKeys...))
	}

	if err := handler.startSession(c, &user, false); err != nil {
		return handler.respondInternalError(c, "failed to create session", err)
	}
	notice := translateMessagef(currentMessages(c), "flash.welcome", user.Name)
	return handler.respondSaved(c, fiber.StatusCreated, postLoginRedirectPath, notice, fiber.Map{
		"user":   buildUserView(user),
		"notice": notice,
	})
}

// redirectToOwnProfile reports whether the requested profile differs from the
// viewer's; the caller then sends them to their own page instead.
func redirectToOwnProfile(c *fiber.Ctx, viewer *models.User, pathFor func(uint) string) (bool, error) {
	requestedID, _ := parseUserIDParam(c.Params("id"))
	editableID, ok := services.ResolveEditableUserID(viewer, requestedID)
	if !ok {
		return true, redirectToPath(c, "/login")
	}
	if !services.CanEditUser(viewer, requestedID) {
		return true, redirectToPath(c, pathFor(editableID))
	}
	return false, nil
}

func (handler *Handler) ShowEditUserPage(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	if redirected, err := redirectToOwnProfile(c, viewer, userEditPath); redirected {
		return err
	}

	handler.ensureDependencies()
	ownDojos, err := handler.dojoService.ListOwnedBy(viewer.ID)
	if err != nil {
		return handler.respondInternalError(c, "failed to load dojos", err)
	}

	return handler.render(c, "edit_user", fiber.Map{
		"title": localizedPageTitle(currentMessages(c), "meta.title.edit_user", "Edit profile"),
		"user":  buildUserView(*viewer),
		"dojos": buildDojoViews(ownDojos, viewer, handler.dojoService.Policy()),
	})
}

// UpdateUser always writes the viewer's own record whatever id the path names.
func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	fields, err := parseFormFields(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	updated, validationErrors, err := handler.profileService.UpdateProfile(*viewer, fields.value("name"), fields.value("email"))
	if err != nil {
		return handler.respondInternalError(c, "failed to update profile", err)
	}
	if len(validationErrors) > 0 {
		return handler.respondValidationErrors(c, validationErrors, userEditPath(viewer.ID), fields.keep(userFormKeys...))
	}

	notice := translateMessage(currentMessages(c), "flash.user_updated")
	return handler.respondSaved(c, fiber.StatusOK, userEditPath(updated.ID), notice, fiber.Map{
		"user":   buildUserView(updated),
		"notice": notice,
	})
}

func (handler *Handler) ShowChangePasswordPage(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	if redirected, err := redirectToOwnProfile(c, viewer, userPasswordEditPath); redirected {
		return err
	}

	return handler.render(c, "change_password", fiber.Map{
		"title": localizedPageTitle(currentMessages(c), "meta.title.change_password", "Change password"),
		"user":  buildUserView(*viewer),
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	fields, err := parseFormFields(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	validationErrors, err := handler.profileService.RequestPasswordChange(viewer.ID, fields.value("password"), fields.value("password_confirmation"))
	if err != nil {
		return handler.respondInternalError(c, "failed to change password", err)
	}
	if len(validationErrors) > 0 {
		return handler.respondValidationErrors(c, validationErrors, userPasswordEditPath(viewer.ID), nil)
	}

	notice := translateMessage(currentMessages(c), "flash.password_changed")
	return handler.respondSaved(c, fiber.StatusOK, userEditPath(viewer.ID), notice, fiber.Map{
		"ok":     true,
		"notice": notice,
	})
}
