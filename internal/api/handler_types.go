package api

import (
	"log/slog"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/db"
	"github.com/terraincognita07/dojoaonde/internal/i18n"
	"github.com/terraincognita07/dojoaonde/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	logger       *slog.Logger
	now          func() time.Time
	loginLimiter *attemptLimiter

	editPolicy     services.DojoEditPolicy
	hasher         services.PasswordHasher
	repositories   *db.Repositories
	authService    *services.AuthService
	profileService *services.ProfileService
	dojoService    *services.DojoService
}

// FlashPayload survives exactly one redirect. Errors and Notice are already
// localized when the cookie is written.
type FlashPayload struct {
	AuthError  string            `json:"auth_error,omitempty"`
	Notice     string            `json:"notice,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
	FormValues map[string]string `json:"form_values,omitempty"`
	LoginEmail string            `json:"login_email,omitempty"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)
