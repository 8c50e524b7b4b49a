package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func SetFlashCookie(c *fiber.Ctx, payload FlashPayload, cookieSecure bool) {
	writeFlashCookie(c, payload, cookieSecure)
}

func (handler *Handler) setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	writeFlashCookie(c, payload, handler.cookieSecure)
}

func writeFlashCookie(c *fiber.Ctx, payload FlashPayload, cookieSecure bool) {
	payload = normalizeFlashPayload(payload)
	if flashPayloadEmpty(payload) {
		clearFlashCookie(c, cookieSecure)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(serialized)

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func (handler *Handler) popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	clearFlashCookie(c, handler.cookieSecure)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return normalizeFlashPayload(payload)
}

func clearFlashCookie(c *fiber.Ctx, cookieSecure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func normalizeFlashPayload(payload FlashPayload) FlashPayload {
	payload.AuthError = strings.TrimSpace(payload.AuthError)
	payload.Notice = strings.TrimSpace(payload.Notice)
	payload.LoginEmail = normalizeLoginEmail(payload.LoginEmail)

	errors := make([]string, 0, len(payload.Errors))
	for _, message := range payload.Errors {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			errors = append(errors, trimmed)
		}
	}
	payload.Errors = nil
	if len(errors) > 0 {
		payload.Errors = errors
	}
	if len(payload.FormValues) == 0 {
		payload.FormValues = nil
	}
	return payload
}

func flashPayloadEmpty(payload FlashPayload) bool {
	return payload.AuthError == "" &&
		payload.Notice == "" &&
		len(payload.Errors) == 0 &&
		len(payload.FormValues) == 0 &&
		payload.LoginEmail == ""
}
