package api

import (
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dojoaonde/internal/services"
)

// respondValidationErrors surfaces rule violations verbatim. Form posts go back to
// formPath with the messages and the submitted values in the flash cookie.
func (handler *Handler) respondValidationErrors(c *fiber.Ctx, validationErrors services.ValidationErrors, formPath string, formValues map[string]string) error {
	messages := localizedValidationMessages(currentMessages(c), validationErrors)
	if AcceptsJSON(c) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": messages})
	}
	if isHTMX(c) {
		return c.Status(fiber.StatusOK).SendString(alertFragment(messages))
	}
	handler.setFlashCookie(c, FlashPayload{Errors: messages, FormValues: formValues})
	return c.Redirect(formPath, fiber.StatusSeeOther)
}

func (handler *Handler) respondInternalError(c *fiber.Ctx, message string, err error) error {
	handler.logger.Error(message, "error", err, "method", c.Method(), "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// respondSaved finishes a successful write: JSON clients get payload, everyone
// else gets the notice and a redirect to path.
func (handler *Handler) respondSaved(c *fiber.Ctx, status int, path string, notice string, payload fiber.Map) error {
	if AcceptsJSON(c) {
		return c.Status(status).JSON(payload)
	}
	handler.setFlashCookie(c, FlashPayload{Notice: notice})
	return redirectToPath(c, path)
}

func alertFragment(messages []string) string {
	var builder strings.Builder
	builder.WriteString(`<div class="alert">`)
	if len(messages) == 1 {
		builder.WriteString(template.HTMLEscapeString(messages[0]))
	} else {
		builder.WriteString("<ul>")
		for _, message := range messages {
			builder.WriteString("<li>")
			builder.WriteString(template.HTMLEscapeString(message))
			builder.WriteString("</li>")
		}
		builder.WriteString("</ul>")
	}
	builder.WriteString("</div>")
	return builder.String()
}
