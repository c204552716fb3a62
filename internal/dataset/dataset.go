// Package dataset holds the three flat tables the recommendation
// engine is built from and the loaders that produce them.
package dataset

import (
	"github.com/rayenbac/pfe-project/internal/models"
)

// Dataset is one immutable snapshot of the source tables. A reload
// produces a fresh Dataset; nothing mutates an existing one.
type Dataset struct {
	Users        []models.User
	Properties   []models.Property
	Interactions []models.Interaction
}

// PropertyByID returns the property with the given id, or nil.
func (d *Dataset) PropertyByID(id string) *models.Property {
	for i := range d.Properties {
		if d.Properties[i].ID == id {
			return &d.Properties[i]
		}
	}
	return nil
}

// InteractionsByUser returns all interactions recorded for one user,
// in table order.
func (d *Dataset) InteractionsByUser(userID string) []models.Interaction {
	var out []models.Interaction
	for _, it := range d.Interactions {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out
}
