package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/models"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrRegistrationFailed     = errors.New("registration failed")
)

type AuthUserRepository interface {
	UserEmailLookup
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type RegistrationInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation *string
}

type AuthService struct {
	users  AuthUserRepository
	hasher PasswordHasher
}

func NewAuthService(users AuthUserRepository, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register validates and stores a new user. A non-empty ValidationErrors means nothing
// was written.
func (service *AuthService) Register(input RegistrationInput, now time.Time) (models.User, ValidationErrors, error) {
	validationErrors, err := ValidateUser(UserCandidate{
		Name:                 input.Name,
		Email:                input.Email,
		Password:             input.Password,
		PasswordConfirmation: input.PasswordConfirmation,
		RequirePassword:      true,
	}, service.users)
	if err != nil {
		return models.User{}, nil, err
	}
	if len(validationErrors) > 0 {
		return models.User{}, validationErrors, nil
	}

	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		return models.User{}, nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        NormalizeEmail(input.Email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		// A concurrent registration may have taken the address after validation ran;
		// the unique index rejects the insert and the caller sees the usual message.
		if _, found, lookupErr := service.users.FindByEmail(user.Email); lookupErr == nil && found {
			var taken ValidationErrors
			taken.add("email", KeyUserEmailTaken)
			return models.User{}, taken, nil
		}
		return models.User{}, nil, errors.Join(ErrRegistrationFailed, err)
	}
	return user, nil, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" || isBlank(password) {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, found, err := service.users.FindByEmail(normalized)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if service.hasher.Compare(user.PasswordHash, password) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
