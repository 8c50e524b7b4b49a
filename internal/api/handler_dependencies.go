package api

import (
	"github.com/terraincognita07/dojoaonde/internal/db"
	"github.com/terraincognita07/dojoaonde/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.hasher)
	handler.profileService = services.NewProfileService(handler.repositories.Users, handler.hasher)
	handler.dojoService = services.NewDojoService(handler.repositories.Dojos, handler.editPolicy, handler.location)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	if handler.hasher == nil {
		handler.hasher = services.NewBcryptHasher()
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users, handler.hasher)
	}
	if handler.profileService == nil {
		handler.profileService = services.NewProfileService(handler.repositories.Users, handler.hasher)
	}
	if handler.dojoService == nil {
		handler.dojoService = services.NewDojoService(handler.repositories.Dojos, handler.editPolicy, handler.location)
	}
}
