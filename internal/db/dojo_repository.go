package db

import (
	"errors"

	"github.com/terraincognita07/dojoaonde/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DojoRepository struct {
	database *gorm.DB
}

func NewDojoRepository(database *gorm.DB) *DojoRepository {
	return &DojoRepository{database: database}
}

// List returns every dojo in creation order with its owner loaded.
func (repo *DojoRepository) List() ([]models.Dojo, error) {
	dojos := make([]models.Dojo, 0)
	if err := repo.database.Preload("User").Order("id ASC").Find(&dojos).Error; err != nil {
		return nil, err
	}
	return dojos, nil
}

func (repo *DojoRepository) ListByUser(userID uint) ([]models.Dojo, error) {
	dojos := make([]models.Dojo, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("day DESC, id DESC").Find(&dojos).Error; err != nil {
		return nil, err
	}
	return dojos, nil
}

func (repo *DojoRepository) FindByID(dojoID uint) (models.Dojo, bool, error) {
	var dojo models.Dojo
	err := repo.database.Preload("User").First(&dojo, dojoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Dojo{}, false, nil
	}
	if err != nil {
		return models.Dojo{}, false, err
	}
	return dojo, true, nil
}

func (repo *DojoRepository) Create(dojo *models.Dojo) error {
	return repo.database.Omit(clause.Associations).Create(dojo).Error
}

// Update writes the editable columns only; the owner is never reassigned.
func (repo *DojoRepository) Update(dojo *models.Dojo) error {
	return repo.database.Model(&models.Dojo{}).Where("id = ?", dojo.ID).Updates(map[string]any{
		"local":        dojo.Local,
		"day":          dojo.Day,
		"address":      dojo.Address,
		"city":         dojo.City,
		"limit_people": dojo.LimitPeople,
		"info":         dojo.Info,
	}).Error
}

func (repo *DojoRepository) Delete(dojoID uint) error {
	return repo.database.Delete(&models.Dojo{}, dojoID).Error
}
