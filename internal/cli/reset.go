package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/dojoaonde/internal/db"
	"github.com/terraincognita07/dojoaonde/internal/security"
	"github.com/terraincognita07/dojoaonde/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

func RunResetPasswordCommand(dbPath string, email string, prompt PasswordPrompt, stdout io.Writer) error {
	database, err := db.OpenSQLite(dbPath, nil)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}
	return resetPassword(database, services.NewBcryptHasher(), email, prompt, stdout)
}

// resetPassword sets a new password for the account behind email. An empty
// answer to the first prompt generates a temporary password instead.
func resetPassword(database *gorm.DB, hasher services.PasswordHasher, email string, prompt PasswordPrompt, stdout io.Writer) error {
	normalizedEmail := services.NormalizeEmail(email)
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if !services.IsValidEmail(normalizedEmail) {
		return fmt.Errorf("invalid email address %q", normalizedEmail)
	}

	repositories := db.NewRepositories(database)
	user, found, err := repositories.Users.FindByEmail(normalizedEmail)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s not found", normalizedEmail)
	}

	password, err := prompt("New password (leave blank to generate one): ")
	if err != nil {
		return err
	}

	generated := password == ""
	confirmation := password
	if generated {
		password, err = security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		confirmation = password
	} else {
		confirmation, err = prompt("Confirm password: ")
		if err != nil {
			return err
		}
	}

	profiles := services.NewProfileService(repositories.Users, hasher)
	validationErrors, err := profiles.RequestPasswordChange(user.ID, password, confirmation)
	if err != nil {
		return err
	}
	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors.Messages(), "; "))
	}

	fmt.Fprintf(stdout, "Password reset for %s\n", user.Email)
	if generated {
		fmt.Fprintf(stdout, "Temporary password: %s\n", password)
	}
	return nil
}
