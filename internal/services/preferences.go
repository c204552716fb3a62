package services

import (
	"github.com/rayenbac/pfe-project/internal/models"
)

type PreferenceService interface {
	// UserPreferences summarizes a user's interaction history. A user
	// with no history returns nil, which is a normal outcome.
	UserPreferences(userID string) *models.UserPreferences
}

type preferenceService struct {
	engine *Engine
}

func NewPreferenceService(engine *Engine) PreferenceService {
	return &preferenceService{engine: engine}
}

func (s *preferenceService) UserPreferences(userID string) *models.UserPreferences {
	snap := s.engine.snapshot()

	interactions := snap.data.InteractionsByUser(userID)
	if len(interactions) == 0 {
		return nil
	}

	// Distinct interacted properties, first-seen order.
	seen := make(map[string]bool)
	var props []*models.Property
	var ratingSum float64
	for _, it := range interactions {
		ratingSum += float64(it.Rating)
		if seen[it.PropertyID] {
			continue
		}
		seen[it.PropertyID] = true
		if p := snap.data.PropertyByID(it.PropertyID); p != nil {
			props = append(props, p)
		}
	}

	prefs := &models.UserPreferences{
		FavoriteTypes:     make(map[string]int),
		FavoriteLocations: make(map[string]int),
		AvgRating:         ratingSum / float64(len(interactions)),
		InteractionCount:  len(interactions),
	}
	if len(props) == 0 {
		return prefs
	}

	var priceSum int
	bedroomCounts := make(map[int]int)
	bathroomCounts := make(map[int]int)
	prefs.PriceRange.Min = props[0].Price
	prefs.PriceRange.Max = props[0].Price

	for _, p := range props {
		prefs.FavoriteTypes[p.Type]++
		prefs.FavoriteLocations[p.Location]++
		priceSum += p.Price
		if p.Price < prefs.PriceRange.Min {
			prefs.PriceRange.Min = p.Price
		}
		if p.Price > prefs.PriceRange.Max {
			prefs.PriceRange.Max = p.Price
		}
		bedroomCounts[p.Bedrooms]++
		bathroomCounts[p.Bathrooms]++
	}
	prefs.PriceRange.Avg = priceSum / len(props)
	prefs.BedroomPreference = mode(bedroomCounts)
	prefs.BathroomPreference = mode(bathroomCounts)

	return prefs
}

// mode returns the most frequent key; ties go to the smaller key so
// the result is deterministic.
func mode(counts map[int]int) int {
	best, bestCount := 0, -1
	for k, c := range counts {
		if c > bestCount || (c == bestCount && k < best) {
			best, bestCount = k, c
		}
	}
	return best
}
