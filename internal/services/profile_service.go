package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/dojoaonde/internal/models"
)

var (
	ErrProfileUpdateFailed  = errors.New("profile update failed")
	ErrPasswordUpdateFailed = errors.New("password update failed")
)

type ProfileUserRepository interface {
	UserEmailLookup
	UpdateProfile(userID uint, name string, email string) error
	UpdatePasswordHash(userID uint, passwordHash string) error
}

type ProfileService struct {
	users  ProfileUserRepository
	hasher PasswordHasher
}

func NewProfileService(users ProfileUserRepository, hasher PasswordHasher) *ProfileService {
	return &ProfileService{users: users, hasher: hasher}
}

// UpdateProfile changes name and email of user. Keeping the current email never
// trips the uniqueness rule.
func (service *ProfileService) UpdateProfile(user models.User, name string, email string) (models.User, ValidationErrors, error) {
	validationErrors, err := ValidateUser(UserCandidate{
		ID:    user.ID,
		Name:  name,
		Email: email,
	}, service.users)
	if err != nil {
		return models.User{}, nil, err
	}
	if len(validationErrors) > 0 {
		return models.User{}, validationErrors, nil
	}

	user.Name = strings.TrimSpace(name)
	user.Email = NormalizeEmail(email)
	if err := service.users.UpdateProfile(user.ID, user.Name, user.Email); err != nil {
		return models.User{}, nil, errors.Join(ErrProfileUpdateFailed, err)
	}
	return user, nil, nil
}

// RequestPasswordChange runs the password rules and, only when they pass, stores a
// fresh hash. No other user field is written.
func (service *ProfileService) RequestPasswordChange(userID uint, newPassword string, confirmation string) (ValidationErrors, error) {
	if validationErrors := ValidatePassword(newPassword, &confirmation); len(validationErrors) > 0 {
		return validationErrors, nil
	}

	passwordHash, err := service.hasher.Hash(newPassword)
	if err != nil {
		return nil, errors.Join(ErrPasswordUpdateFailed, err)
	}
	if err := service.users.UpdatePasswordHash(userID, passwordHash); err != nil {
		return nil, errors.Join(ErrPasswordUpdateFailed, err)
	}
	return nil, nil
}
