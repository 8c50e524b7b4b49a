package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dojoaonde/internal/models"
	"github.com/terraincognita07/dojoaonde/internal/services"
)

func (handler *Handler) ListUpcomingDojos(c *fiber.Ctx) error {
	return handler.renderDojoList(c, "dojos", "meta.title.dojos", "Upcoming dojos", func(partition services.DojoPartition) []models.Dojo {
		return partition.Upcoming
	})
}

func (handler *Handler) ListHappenedDojos(c *fiber.Ctx) error {
	return handler.renderDojoList(c, "happened_dojos", "meta.title.happened", "Dojos that happened", func(partition services.DojoPartition) []models.Dojo {
		return partition.Happened
	})
}

func (handler *Handler) renderDojoList(c *fiber.Ctx, page string, titleKey string, fallbackTitle string, pick func(services.DojoPartition) []models.Dojo) error {
	handler.ensureDependencies()
	partition, err := handler.dojoService.ListPartitioned(handler.currentTime())
	if err != nil {
		return handler.respondInternalError(c, "failed to load dojos", err)
	}

	viewer := handler.optionalAuthenticatedUser(c)
	return handler.render(c, page, fiber.Map{
		"title": localizedPageTitle(currentMessages(c), titleKey, fallbackTitle),
		"dojos": buildDojoViews(pick(partition), viewer, handler.dojoService.Policy()),
	})
}

func (handler *Handler) ShowDojo(c *fiber.Ctx) error {
	dojoID, ok := services.ParseDojoID(c.Params("id"))
	if !ok {
		return handler.NotFound(c)
	}

	handler.ensureDependencies()
	dojo, err := handler.dojoService.Find(dojoID)
	if err != nil {
		if errors.Is(err, services.ErrDojoNotFound) {
			return handler.NotFound(c)
		}
		return handler.respondInternalError(c, "failed to load dojo", err)
	}

	viewer := handler.optionalAuthenticatedUser(c)
	return handler.render(c, "dojo", fiber.Map{
		"title": dojo.Local,
		"dojo":  buildDojoView(dojo, viewer, handler.dojoService.Policy()),
	})
}

func (handler *Handler) ShowNewDojoPage(c *fiber.Ctx) error {
	return handler.render(c, "new_dojo", fiber.Map{
		"title": localizedPageTitle(currentMessages(c), "meta.title.new_dojo", "New dojo"),
	})
}

func (handler *Handler) CreateDojo(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	fields, err := parseFormFields(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	dojo, validationErrors, err := handler.dojoService.Create(viewer, handler.dojoCandidateFromFields(fields), handler.currentTime())
	if err != nil {
		return handler.respondDojoAccessError(c, err)
	}
	if len(validationErrors) > 0 {
		return handler.respondValidationErrors(c, validationErrors, "/dojos/new", fields.keep(dojoFormKeys...))
	}

	dojo.User = viewer
	notice := translateMessage(currentMessages(c), "flash.dojo_created")
	return handler.respondSaved(c, fiber.StatusCreated, services.DojoPath(dojo), notice, fiber.Map{
		"dojo":   buildDojoView(dojo, viewer, handler.dojoService.Policy()),
		"notice": notice,
	})
}

func (handler *Handler) ShowEditDojoPage(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	dojoID, ok := services.ParseDojoID(c.Params("id"))
	if !ok {
		return handler.respondDojoAccessError(c, services.ErrDojoNotFound)
	}

	handler.ensureDependencies()
	dojo, err := handler.dojoService.FindForEdit(viewer, dojoID)
	if err != nil {
		return handler.respondDojoAccessError(c, err)
	}

	return handler.render(c, "edit_dojo", fiber.Map{
		"title": localizedPageTitle(currentMessages(c), "meta.title.edit_dojo", "Edit dojo"),
		"dojo":  buildDojoView(dojo, viewer, handler.dojoService.Policy()),
	})
}

func (handler *Handler) UpdateDojo(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	dojoID, ok := services.ParseDojoID(c.Params("id"))
	if !ok {
		return handler.respondDojoAccessError(c, services.ErrDojoNotFound)
	}
	fields, err := parseFormFields(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	dojo, validationErrors, err := handler.dojoService.Update(viewer, dojoID, handler.dojoCandidateFromFields(fields), handler.currentTime())
	if err != nil {
		return handler.respondDojoAccessError(c, err)
	}
	if len(validationErrors) > 0 {
		return handler.respondValidationErrors(c, validationErrors, dojoEditPath(dojoID), fields.keep(dojoFormKeys...))
	}

	notice := translateMessage(currentMessages(c), "flash.dojo_updated")
	return handler.respondSaved(c, fiber.StatusOK, services.DojoPath(dojo), notice, fiber.Map{
		"dojo":   buildDojoView(dojo, viewer, handler.dojoService.Policy()),
		"notice": notice,
	})
}

func (handler *Handler) DeleteDojo(c *fiber.Ctx) error {
	viewer, _ := currentUser(c)
	dojoID, ok := services.ParseDojoID(c.Params("id"))
	if !ok {
		return handler.respondDojoAccessError(c, services.ErrDojoNotFound)
	}

	handler.ensureDependencies()
	if err := handler.dojoService.Delete(viewer, dojoID); err != nil {
		return handler.respondDojoAccessError(c, err)
	}

	notice := translateMessage(currentMessages(c), "flash.dojo_removed")
	return handler.respondSaved(c, fiber.StatusOK, "/dojos", notice, fiber.Map{
		"ok":     true,
		"notice": notice,
	})
}

// respondDojoAccessError redirects to the list for missing or forbidden dojos so
// the response says nothing about the record itself.
func (handler *Handler) respondDojoAccessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDojoNotFound):
		if AcceptsJSON(c) {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
		handler.setFlashCookie(c, FlashPayload{AuthError: translateMessage(currentMessages(c), "dojo.error.not_found")})
		return redirectToPath(c, "/dojos")
	case errors.Is(err, services.ErrDojoAccessDenied):
		if AcceptsJSON(c) {
			return apiError(c, fiber.StatusForbidden, "forbidden")
		}
		handler.setFlashCookie(c, FlashPayload{AuthError: translateMessage(currentMessages(c), "dojo.error.access_denied")})
		return redirectToPath(c, "/dojos")
	default:
		return handler.respondInternalError(c, "failed to save dojo", err)
	}
}
