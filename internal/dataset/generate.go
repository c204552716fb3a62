package dataset

import (
	"fmt"
	"math/rand"

	"github.com/rayenbac/pfe-project/internal/models"
)

// Generation defaults, matching the original synthetic data volumes.
const (
	DefaultNumUsers        = 100
	DefaultNumProperties   = 50
	DefaultNumInteractions = 1000
)

var (
	propertyTypes    = []string{"apartment", "house", "villa", "studio"}
	locations        = []string{"CityA", "CityB", "CityC", "CityD"}
	userTypes        = []string{"buyer", "renter", "agent"}
	interactionTypes = []string{models.InteractionView, models.InteractionFavorite, models.InteractionContact}
)

// Generate builds a synthetic dataset. The same seed always produces
// the same tables, which the tests rely on.
func Generate(numUsers, numProperties, numInteractions int, seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &Dataset{}

	for i := 0; i < numUsers; i++ {
		ds.Users = append(ds.Users, models.User{
			ID:       fmt.Sprintf("user_%d", i+1),
			Age:      18 + rng.Intn(52),
			Location: locations[rng.Intn(len(locations))],
			UserType: userTypes[rng.Intn(len(userTypes))],
		})
	}

	for i := 0; i < numProperties; i++ {
		ds.Properties = append(ds.Properties, models.Property{
			ID:        fmt.Sprintf("property_%d", i+1),
			Type:      propertyTypes[rng.Intn(len(propertyTypes))],
			Price:     50000 + rng.Intn(950000),
			Location:  locations[rng.Intn(len(locations))],
			Bedrooms:  1 + rng.Intn(5),
			Bathrooms: 1 + rng.Intn(3),
		})
	}

	for i := 0; i < numInteractions; i++ {
		user := ds.Users[rng.Intn(len(ds.Users))]
		property := ds.Properties[rng.Intn(len(ds.Properties))]
		ds.Interactions = append(ds.Interactions, models.Interaction{
			UserID:          user.ID,
			PropertyID:      property.ID,
			Rating:          1 + rng.Intn(5),
			InteractionType: interactionTypes[rng.Intn(len(interactionTypes))],
		})
	}

	return ds
}
