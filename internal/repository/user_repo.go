package repository

import (
	"gorm.io/gorm"

	"github.com/rayenbac/pfe-project/internal/models"
)

type UserRepository interface {
	GetAllUsers() ([]models.User, error)
	ReplaceAll(users []models.User) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at").Find(&users).Error
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *userRepo) ReplaceAll(users []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.CreateInBatches(users, 100).Error
	})
}
