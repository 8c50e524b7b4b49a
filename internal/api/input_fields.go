package api

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// formFields holds the submitted body as flat strings. A key is present only when
// the client sent it, which lets handlers tell an empty value from a missing one.
type formFields map[string]string

func parseFormFields(c *fiber.Ctx) (formFields, error) {
	fields := formFields{}
	contentType := strings.ToLower(string(c.Request().Header.ContentType()))

	if strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		if len(c.Body()) == 0 {
			return fields, nil
		}
		raw := map[string]any{}
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return nil, err
		}
		for key, value := range raw {
			switch typed := value.(type) {
			case string:
				fields[key] = typed
			case float64:
				fields[key] = strconv.FormatFloat(typed, 'f', -1, 64)
			case bool:
				fields[key] = strconv.FormatBool(typed)
			}
		}
		return fields, nil
	}

	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for key, values := range form.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		return fields, nil
	}

	c.Request().PostArgs().VisitAll(func(key []byte, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields, nil
}

func (fields formFields) value(key string) string {
	return fields[key]
}

func (fields formFields) optional(key string) *string {
	value, ok := fields[key]
	if !ok {
		return nil
	}
	return &value
}

func (fields formFields) flag(key string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(fields[key]))
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(fields[key]), "on")
	}
	return parsed
}

// keep copies the listed keys for redisplay after a failed submit.
func (fields formFields) keep(keys ...string) map[string]string {
	kept := make(map[string]string, len(keys))
	for _, key := range keys {
		if value := strings.TrimSpace(fields[key]); value != "" {
			kept[key] = value
		}
	}
	return kept
}
