package cli

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/db"
	"github.com/terraincognita07/dojoaonde/internal/models"
	"github.com/terraincognita07/dojoaonde/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestResetPasswordStoresConfirmedPassword(t *testing.T) {
	database, user := openResetTestDatabase(t)

	var output bytes.Buffer
	prompt := scriptedPrompt("nova-senha", "nova-senha")
	if err := resetPassword(database, services.BcryptHasher{Cost: bcrypt.MinCost}, " ANA@x.com ", prompt, &output); err != nil {
		t.Fatalf("resetPassword returned error: %v", err)
	}

	assertStoredPassword(t, database, user.ID, "nova-senha")
	if strings.Contains(output.String(), "Temporary password") {
		t.Fatalf("did not expect temporary password in output %q", output.String())
	}
}

func TestResetPasswordGeneratesTemporaryPasswordOnBlankInput(t *testing.T) {
	database, user := openResetTestDatabase(t)

	var output bytes.Buffer
	if err := resetPassword(database, services.BcryptHasher{Cost: bcrypt.MinCost}, "ana@x.com", scriptedPrompt(""), &output); err != nil {
		t.Fatalf("resetPassword returned error: %v", err)
	}

	const marker = "Temporary password: "
	index := strings.Index(output.String(), marker)
	if index < 0 {
		t.Fatalf("expected temporary password in output %q", output.String())
	}
	temporary := strings.TrimSpace(output.String()[index+len(marker):])
	if len(temporary) != temporaryPasswordLength {
		t.Fatalf("temporary password len = %d, want %d", len(temporary), temporaryPasswordLength)
	}
	assertStoredPassword(t, database, user.ID, temporary)
}

func TestResetPasswordRejectsInvalidInputWithoutWriting(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		answers []string
		want    string
	}{
		{name: "blank email", email: " ", want: "email is required"},
		{name: "malformed email", email: "ana-at-x", want: "invalid email address"},
		{name: "unknown user", email: "bia@x.com", want: "not found"},
		{name: "short password", email: "ana@x.com", answers: []string{"123", "123"}, want: "Password is too short"},
		{name: "mismatch", email: "ana@x.com", answers: []string{"segredo1", "segredo2"}, want: "Password does not match confirmation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			database, user := openResetTestDatabase(t)

			err := resetPassword(database, services.BcryptHasher{Cost: bcrypt.MinCost}, tc.email, scriptedPrompt(tc.answers...), io.Discard)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
			assertStoredPassword(t, database, user.ID, "senha-antiga")
		})
	}
}

func scriptedPrompt(answers ...string) PasswordPrompt {
	return func(string) (string, error) {
		if len(answers) == 0 {
			return "", errors.New("no more answers")
		}
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
}

func openResetTestDatabase(t *testing.T) (*gorm.DB, models.User) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "reset.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-antiga"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return database, user
}

func assertStoredPassword(t *testing.T, database *gorm.DB, userID uint, password string) {
	t.Helper()

	var stored models.User
	if err := database.First(&stored, userID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)); err != nil {
		t.Fatalf("expected stored hash to match %q: %v", password, err)
	}
}
