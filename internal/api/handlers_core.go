package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// render answers page requests with the page's view model as JSON. Markup is left
// to whatever client consumes these routes.
func (handler *Handler) render(c *fiber.Ctx, page string, data fiber.Map) error {
	payload := handler.withPageDefaults(c, data)
	payload["page"] = page
	return c.JSON(payload)
}

func (handler *Handler) withPageDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	if _, ok := data["lang"]; !ok {
		language := currentLanguage(c)
		if language == "" {
			language = handler.i18n.DefaultLanguage()
		}
		data["lang"] = language
	}
	if _, ok := data["app_name"]; !ok {
		data["app_name"] = localizedPageTitle(currentMessages(c), "meta.app_name", "Dojo, aonde?")
	}
	if _, ok := data["current_path"]; !ok {
		data["current_path"] = currentPathWithQuery(c)
	}
	if _, ok := data["csrf_token"]; !ok {
		data["csrf_token"] = csrfToken(c)
	}
	if _, ok := data["current_user"]; !ok {
		if user := handler.optionalAuthenticatedUser(c); user != nil {
			data["current_user"] = buildUserView(*user)
		}
	}
	if _, ok := data["flash"]; !ok {
		if flash := handler.popFlashCookie(c); !flashPayloadEmpty(flash) {
			data["flash"] = flash
		}
	}
	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}
