package services

import (
	"math"
	"testing"

	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/models"
)

func TestCollaborativeNeighborPrediction(t *testing.T) {
	// u2 is u1's only neighbor with positive similarity and a rating
	// on p2, so the prediction for p2 is exactly u2's rating.
	engine := newTestEngine(t, twoPropertyDataset())
	svc := NewCollaborativeService(engine)

	recs, err := svc.Recommend("u1", 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].PropertyID != "p2" {
		t.Errorf("recommended %s, want p2", recs[0].PropertyID)
	}
	if math.Abs(recs[0].Score-3.0) > 1e-9 {
		t.Errorf("predicted score = %.4f, want 3.0", recs[0].Score)
	}
}

func TestCollaborativeExcludesRatedProperties(t *testing.T) {
	engine := newTestEngine(t, twoPropertyDataset())
	svc := NewCollaborativeService(engine)

	for _, userID := range []string{"u1", "u2"} {
		recs, err := svc.Recommend(userID, 10)
		if err != nil {
			t.Fatalf("Recommend(%s): %v", userID, err)
		}
		for _, rec := range recs {
			if _, rated := engine.snapshot().ratings.Rating(userID, rec.PropertyID); rated {
				t.Errorf("user %s recommended already-rated property %s", userID, rec.PropertyID)
			}
		}
	}
}

func TestCollaborativeUnknownUser(t *testing.T) {
	engine := newTestEngine(t, twoPropertyDataset())
	svc := NewCollaborativeService(engine)

	recs, err := svc.Recommend("ghost", 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations for unknown user, want 0", len(recs))
	}
}

func TestCollaborativeUserRatedEverything(t *testing.T) {
	// u2 rated both known properties; nothing is left to predict.
	engine := newTestEngine(t, twoPropertyDataset())
	svc := NewCollaborativeService(engine)

	recs, err := svc.Recommend("u2", 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recs))
	}
}

func TestCollaborativeSortedAndBounded(t *testing.T) {
	ds := &dataset.Dataset{
		Properties: []models.Property{
			{ID: "p1", Type: "apartment", Price: 100000, Location: "CityA", Bedrooms: 2, Bathrooms: 1},
			{ID: "p2", Type: "house", Price: 500000, Location: "CityB", Bedrooms: 4, Bathrooms: 3},
			{ID: "p3", Type: "villa", Price: 800000, Location: "CityC", Bedrooms: 5, Bathrooms: 3},
			{ID: "p4", Type: "studio", Price: 60000, Location: "CityA", Bedrooms: 1, Bathrooms: 1},
		},
		Interactions: []models.Interaction{
			{UserID: "u1", PropertyID: "p1", Rating: 5, InteractionType: "view"},
			{UserID: "u2", PropertyID: "p1", Rating: 5, InteractionType: "view"},
			{UserID: "u2", PropertyID: "p2", Rating: 2, InteractionType: "view"},
			{UserID: "u2", PropertyID: "p3", Rating: 5, InteractionType: "view"},
			{UserID: "u3", PropertyID: "p1", Rating: 4, InteractionType: "view"},
			{UserID: "u3", PropertyID: "p4", Rating: 3, InteractionType: "view"},
		},
	}
	svc := NewCollaborativeService(newTestEngine(t, ds))

	recs, err := svc.Recommend("u1", 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) > 2 {
		t.Errorf("got %d recommendations, want at most 2", len(recs))
	}
	assertSortedDescending(t, recs)
}
