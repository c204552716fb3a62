package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayenbac/pfe-project/internal/models"
)

type InteractionRepository interface {
	GetAllInteractions() ([]models.Interaction, error)
	ReplaceAll(interactions []models.Interaction) error
}

type interactionRepo struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) GetAllInteractions() ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := r.db.Order("created_at").Find(&interactions).Error
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}
	return interactions, nil
}

func (r *interactionRepo) ReplaceAll(interactions []models.Interaction) error {
	// Synthetic rows arrive without primary keys.
	for i := range interactions {
		if interactions[i].ID == "" {
			interactions[i].ID = uuid.NewString()
		}
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Interaction{}).Error; err != nil {
			return err
		}
		if len(interactions) == 0 {
			return nil
		}
		return tx.CreateInBatches(interactions, 200).Error
	})
}
