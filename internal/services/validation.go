package services

import "strings"

// FieldError is a single rule violation. Key identifies the rule for localization and
// Message carries the default English text.
type FieldError struct {
	Field   string
	Key     string
	Message string
}

// ValidationErrors keeps violations in rule order. A nil or empty value means valid.
type ValidationErrors []FieldError

func (errs ValidationErrors) Error() string {
	return strings.Join(errs.Messages(), "; ")
}

func (errs ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		messages = append(messages, fieldError.Message)
	}
	return messages
}

func (errs *ValidationErrors) add(field string, key string) {
	*errs = append(*errs, FieldError{Field: field, Key: key, Message: validationMessage(key)})
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
