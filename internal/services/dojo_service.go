package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/models"
)

var (
	ErrDojoNotFound     = errors.New("dojo not found")
	ErrDojoAccessDenied = errors.New("dojo access denied")
	ErrDojoLoadFailed   = errors.New("load dojo failed")
	ErrDojoSaveFailed   = errors.New("save dojo failed")
	ErrDojoDeleteFailed = errors.New("delete dojo failed")
)

type DojoRepository interface {
	List() ([]models.Dojo, error)
	ListByUser(userID uint) ([]models.Dojo, error)
	FindByID(dojoID uint) (models.Dojo, bool, error)
	Create(dojo *models.Dojo) error
	Update(dojo *models.Dojo) error
	Delete(dojoID uint) error
}

type DojoService struct {
	dojos    DojoRepository
	policy   DojoEditPolicy
	location *time.Location
}

func NewDojoService(dojos DojoRepository, policy DojoEditPolicy, location *time.Location) *DojoService {
	if policy == "" {
		policy = DojoEditAnyUser
	}
	if location == nil {
		location = time.UTC
	}
	return &DojoService{dojos: dojos, policy: policy, location: location}
}

func (service *DojoService) Policy() DojoEditPolicy {
	return service.policy
}

func (service *DojoService) ListPartitioned(now time.Time) (DojoPartition, error) {
	dojos, err := service.dojos.List()
	if err != nil {
		return DojoPartition{}, errors.Join(ErrDojoLoadFailed, err)
	}
	return PartitionDojos(dojos, now, service.location), nil
}

func (service *DojoService) ListOwnedBy(userID uint) ([]models.Dojo, error) {
	dojos, err := service.dojos.ListByUser(userID)
	if err != nil {
		return nil, errors.Join(ErrDojoLoadFailed, err)
	}
	return dojos, nil
}

func (service *DojoService) Find(dojoID uint) (models.Dojo, error) {
	dojo, found, err := service.dojos.FindByID(dojoID)
	if err != nil {
		return models.Dojo{}, errors.Join(ErrDojoLoadFailed, err)
	}
	if !found {
		return models.Dojo{}, ErrDojoNotFound
	}
	return dojo, nil
}

// FindForEdit loads a dojo the viewer is allowed to modify. Missing dojos and
// forbidden ones are indistinguishable to the caller.
func (service *DojoService) FindForEdit(viewer *models.User, dojoID uint) (models.Dojo, error) {
	if !CanManageDojo(viewer) {
		return models.Dojo{}, ErrDojoAccessDenied
	}
	dojo, err := service.Find(dojoID)
	if err != nil {
		return models.Dojo{}, err
	}
	if !service.policy.CanModifyDojo(viewer, dojo) {
		return models.Dojo{}, ErrDojoAccessDenied
	}
	return dojo, nil
}

func (service *DojoService) Create(viewer *models.User, candidate DojoCandidate, now time.Time) (models.Dojo, ValidationErrors, error) {
	if !CanManageDojo(viewer) {
		return models.Dojo{}, nil, ErrDojoAccessDenied
	}
	if validationErrors := ValidateDojo(candidate, now, service.location); len(validationErrors) > 0 {
		return models.Dojo{}, validationErrors, nil
	}

	dojo := models.Dojo{UserID: viewer.ID}
	service.applyCandidate(&dojo, candidate)
	if err := service.dojos.Create(&dojo); err != nil {
		return models.Dojo{}, nil, errors.Join(ErrDojoSaveFailed, err)
	}
	return dojo, nil, nil
}

func (service *DojoService) Update(viewer *models.User, dojoID uint, candidate DojoCandidate, now time.Time) (models.Dojo, ValidationErrors, error) {
	dojo, err := service.FindForEdit(viewer, dojoID)
	if err != nil {
		return models.Dojo{}, nil, err
	}
	if validationErrors := ValidateDojo(candidate, now, service.location); len(validationErrors) > 0 {
		return dojo, validationErrors, nil
	}

	service.applyCandidate(&dojo, candidate)
	if err := service.dojos.Update(&dojo); err != nil {
		return models.Dojo{}, nil, errors.Join(ErrDojoSaveFailed, err)
	}
	return dojo, nil, nil
}

func (service *DojoService) Delete(viewer *models.User, dojoID uint) error {
	if _, err := service.FindForEdit(viewer, dojoID); err != nil {
		return err
	}
	if err := service.dojos.Delete(dojoID); err != nil {
		return errors.Join(ErrDojoDeleteFailed, err)
	}
	return nil
}

func (service *DojoService) applyCandidate(dojo *models.Dojo, candidate DojoCandidate) {
	dojo.Local = strings.TrimSpace(candidate.Local)
	dojo.Day = DateAtLocation(*candidate.Day, service.location)
	dojo.Address = strings.TrimSpace(candidate.Address)
	dojo.City = strings.TrimSpace(candidate.City)
	dojo.LimitPeople = candidate.LimitPeople
	dojo.Info = strings.TrimSpace(candidate.Info)
}
