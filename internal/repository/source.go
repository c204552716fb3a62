package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rayenbac/pfe-project/internal/dataset"
)

// PostgresSource loads the engine's dataset from the database through
// the repositories. It is the DB counterpart of dataset.CSVSource.
type PostgresSource struct {
	users        UserRepository
	properties   PropertyRepository
	interactions InteractionRepository
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{
		users:        NewUserRepository(db),
		properties:   NewPropertyRepository(db),
		interactions: NewInteractionRepository(db),
	}
}

func (s *PostgresSource) Load() (*dataset.Dataset, error) {
	users, err := s.users.GetAllUsers()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	properties, err := s.properties.GetAllProperties()
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}
	interactions, err := s.interactions.GetAllInteractions()
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	return &dataset.Dataset{
		Users:        users,
		Properties:   properties,
		Interactions: interactions,
	}, nil
}

func (s *PostgresSource) Save(ds *dataset.Dataset) error {
	if err := s.users.ReplaceAll(ds.Users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	if err := s.properties.ReplaceAll(ds.Properties); err != nil {
		return fmt.Errorf("save properties: %w", err)
	}
	if err := s.interactions.ReplaceAll(ds.Interactions); err != nil {
		return fmt.Errorf("save interactions: %w", err)
	}
	return nil
}
