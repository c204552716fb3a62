package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rayenbac/pfe-project/internal/models"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyRepository interface {
	GetAllProperties() ([]models.Property, error)
	GetPropertyByID(id string) (*models.Property, error)
	ReplaceAll(properties []models.Property) error
}

type propertyRepo struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) GetAllProperties() ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Order("created_at").Find(&properties).Error
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}

func (r *propertyRepo) GetPropertyByID(id string) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// ReplaceAll swaps the property table for a fresh snapshot in one
// transaction, so a concurrent load sees the old set or the new one.
func (r *propertyRepo) ReplaceAll(properties []models.Property) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Property{}).Error; err != nil {
			return err
		}
		if len(properties) == 0 {
			return nil
		}
		return tx.CreateInBatches(properties, 100).Error
	})
}
