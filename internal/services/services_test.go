package services

import (
	"testing"

	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/models"
)

// twoPropertyDataset is the minimal scenario used across the filter
// tests: two very different properties, one user who rated only the
// first.
func twoPropertyDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Users: []models.User{
			{ID: "u1", Age: 30, Location: "CityA", UserType: "buyer"},
			{ID: "u2", Age: 40, Location: "CityB", UserType: "renter"},
		},
		Properties: []models.Property{
			{ID: "p1", Type: "apartment", Price: 100000, Location: "CityA", Bedrooms: 2, Bathrooms: 1},
			{ID: "p2", Type: "house", Price: 500000, Location: "CityB", Bedrooms: 4, Bathrooms: 3},
		},
		Interactions: []models.Interaction{
			{UserID: "u1", PropertyID: "p1", Rating: 5, InteractionType: models.InteractionView},
			{UserID: "u2", PropertyID: "p1", Rating: 5, InteractionType: models.InteractionView},
			{UserID: "u2", PropertyID: "p2", Rating: 3, InteractionType: models.InteractionFavorite},
		},
	}
}

func newTestEngine(t *testing.T, ds *dataset.Dataset) *Engine {
	t.Helper()
	engine, err := NewEngine(ds)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func assertSortedDescending(t *testing.T, recs []models.RecommendationScore) {
	t.Helper()
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("results not sorted descending at %d: %.4f after %.4f",
				i, recs[i].Score, recs[i-1].Score)
		}
	}
}
