package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type clientKind uint8

const (
	clientBrowser clientKind = iota
	clientHTMX
	clientJSON
)

// requestClient decides how a request is answered. An HTMX request wins over its
// Accept header; otherwise the negotiated type between HTML and JSON decides.
func requestClient(c *fiber.Ctx) clientKind {
	if strings.EqualFold(c.Get("HX-Request"), "true") {
		return clientHTMX
	}
	if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
		return clientJSON
	}
	return clientBrowser
}

// AcceptsJSON reports whether c negotiated a JSON response.
func AcceptsJSON(c *fiber.Ctx) bool {
	return requestClient(c) == clientJSON
}

func isHTMX(c *fiber.Ctx) bool {
	return requestClient(c) == clientHTMX
}

// redirectOrJSON ends an action that has nothing to return but a destination.
func redirectOrJSON(c *fiber.Ctx, path string) error {
	if AcceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "location": path})
	}
	return redirectToPath(c, path)
}

func redirectToPath(c *fiber.Ctx, path string) error {
	if isHTMX(c) {
		c.Set("HX-Redirect", path)
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	if isHTMX(c) {
		return c.Status(status).SendString(alertFragment([]string{message}))
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func localizedPageTitle(messages map[string]string, key string, fallback string) string {
	if title := translateMessage(messages, key); title != key {
		return title
	}
	return fallback
}

// sanitizeRedirectPath accepts only local absolute paths, so ?next can never point
// at another host.
func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if !strings.HasPrefix(candidate, "/") || strings.HasPrefix(candidate, "//") || strings.HasPrefix(candidate, "/\\") {
		return fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return fallback
	}
	return candidate
}
