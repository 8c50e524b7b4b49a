package api

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/dojoaonde/internal/services"
)

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

func translateMessagef(messages map[string]string, key string, args ...any) string {
	return fmt.Sprintf(translateMessage(messages, key), args...)
}

// localizedValidationMessages keeps rule order and falls back to the English
// default when the catalog lacks a key.
func localizedValidationMessages(messages map[string]string, validationErrors services.ValidationErrors) []string {
	localized := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		message := translateMessage(messages, fieldError.Key)
		if message == fieldError.Key {
			message = fieldError.Message
		}
		localized = append(localized, message)
	}
	return localized
}
