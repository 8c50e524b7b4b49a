package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/i18n"
	"github.com/terraincognita07/dojoaonde/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool, editPolicy services.DojoEditPolicy, logger *slog.Logger) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	if editPolicy == "" {
		editPolicy = services.DojoEditAnyUser
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		logger:       logger,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
		editPolicy:   editPolicy,
		hasher:       services.NewBcryptHasher(),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) currentTime() time.Time {
	if handler.now == nil {
		return time.Now().In(handler.location)
	}
	return handler.now().In(handler.location)
}
