package models

import (
	"time"
)

// Property is a real-estate listing. Attributes are immutable once the
// dataset is loaded; the engine only ever reads them.
type Property struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"property_id"`
	Type      string    `gorm:"type:varchar(50);not null;index" json:"type"`
	Price     int       `gorm:"not null" json:"price"`
	Location  string    `gorm:"type:varchar(100);not null;index" json:"location"`
	Bedrooms  int       `gorm:"not null" json:"bedrooms"`
	Bathrooms int       `gorm:"not null" json:"bathrooms"`
	CreatedAt time.Time `json:"created_at"`
}

// User carries static profile attributes. They are not used by the
// recommendation math itself, only by the preference summary.
type User struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"user_id"`
	Age       int       `json:"age"`
	Location  string    `gorm:"type:varchar(100)" json:"location"`
	UserType  string    `gorm:"type:varchar(30)" json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// Interaction records one user touching one property. The same
// (user, property) pair may appear any number of times; the rating
// matrix averages the ratings when pivoting.
type Interaction struct {
	ID              string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID          string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	PropertyID      string    `gorm:"type:varchar(64);not null;index" json:"property_id"`
	Rating          int       `gorm:"not null" json:"rating"`
	InteractionType string    `gorm:"type:varchar(20);not null" json:"interaction_type"`
	CreatedAt       time.Time `json:"created_at"`
}

// Interaction types present in the data.
const (
	InteractionView     = "view"
	InteractionFavorite = "favorite"
	InteractionContact  = "contact"
)
