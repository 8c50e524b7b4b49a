package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/dojoaonde/internal/models"
)

const MinPasswordLength = 6

var emailFormatRegex = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)

type UserEmailLookup interface {
	FindByEmail(email string) (models.User, bool, error)
}

// UserCandidate is a User record about to be written. ID is zero on registration.
// PasswordConfirmation is nil when the confirmation field was not submitted at all.
type UserCandidate struct {
	ID                   uint
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation *string
	RequirePassword      bool
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func IsValidEmail(email string) bool {
	return emailFormatRegex.MatchString(email)
}

// ValidateUser reports every violated rule in order. The only I/O is the uniqueness
// lookup; a lookup failure is returned as err and no verdict is given.
func ValidateUser(candidate UserCandidate, users UserEmailLookup) (ValidationErrors, error) {
	var errs ValidationErrors

	if isBlank(candidate.Name) {
		errs.add("name", KeyUserNameBlank)
	}

	email := NormalizeEmail(candidate.Email)
	switch {
	case email == "":
		errs.add("email", KeyUserEmailBlank)
	case !IsValidEmail(email):
		errs.add("email", KeyUserEmailInvalid)
	case users != nil:
		existing, found, err := users.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if found && existing.ID != candidate.ID {
			errs.add("email", KeyUserEmailTaken)
		}
	}

	validatePasswordFields(&errs, candidate.Password, candidate.PasswordConfirmation, candidate.RequirePassword)
	return errs, nil
}

// ValidatePassword applies the password rules alone, always requiring a value.
func ValidatePassword(password string, confirmation *string) ValidationErrors {
	var errs ValidationErrors
	validatePasswordFields(&errs, password, confirmation, true)
	return errs
}

func validatePasswordFields(errs *ValidationErrors, password string, confirmation *string, required bool) {
	if isBlank(password) {
		if required {
			errs.add("password", KeyUserPasswordBlank)
		}
	} else if utf8.RuneCountInString(password) < MinPasswordLength {
		errs.add("password", KeyUserPasswordTooShort)
	}

	if confirmation == nil {
		return
	}
	if isBlank(password) && isBlank(*confirmation) {
		return
	}
	if *confirmation != password {
		errs.add("password_confirmation", KeyUserPasswordConfirmationMismatch)
	}
}
