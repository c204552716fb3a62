package services

import (
	"math"
	"testing"

	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/models"
)

func TestContentBasedRecommendsUnseenProperty(t *testing.T) {
	// u1 rated only p1, so the single candidate is p2 with a score
	// that is purely the feature-vector cosine. With two maximally
	// different properties the profile (= p1's vector) against p2
	// gives -3/5: the one-hot blocks contribute 0, each of the three
	// ±1 numeric columns contributes -1, and both norms are sqrt(5).
	engine := newTestEngine(t, twoPropertyDataset())
	svc := NewContentBasedService(engine)

	recs, err := svc.Recommend("u1", 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].PropertyID != "p2" {
		t.Errorf("recommended %s, want p2", recs[0].PropertyID)
	}
	if math.Abs(recs[0].Score-(-0.6)) > 1e-9 {
		t.Errorf("score = %.4f, want -0.6", recs[0].Score)
	}
}

func TestContentBasedExcludesInteracted(t *testing.T) {
	ds := twoPropertyDataset()
	engine := newTestEngine(t, ds)
	svc := NewContentBasedService(engine)

	for _, userID := range []string{"u1", "u2"} {
		interacted := make(map[string]bool)
		for _, it := range ds.InteractionsByUser(userID) {
			interacted[it.PropertyID] = true
		}
		recs, err := svc.Recommend(userID, 10)
		if err != nil {
			t.Fatalf("Recommend(%s): %v", userID, err)
		}
		for _, rec := range recs {
			if interacted[rec.PropertyID] {
				t.Errorf("user %s recommended interacted property %s", userID, rec.PropertyID)
			}
		}
	}
}

func TestContentBasedUnknownUser(t *testing.T) {
	svc := NewContentBasedService(newTestEngine(t, twoPropertyDataset()))

	recs, err := svc.Recommend("ghost", 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations for unknown user, want 0", len(recs))
	}
}

func TestContentBasedMeanRatingWeight(t *testing.T) {
	// p1 rated twice (5 and 1); the profile must use the mean (3),
	// not double-count the property. With a single interacted
	// property the normalized profile equals its feature vector no
	// matter the weight, so compare against a profile built from two
	// properties with distinct mean ratings instead.
	ds := &dataset.Dataset{
		Properties: []models.Property{
			{ID: "p1", Type: "apartment", Price: 100000, Location: "CityA", Bedrooms: 2, Bathrooms: 1},
			{ID: "p2", Type: "house", Price: 500000, Location: "CityB", Bedrooms: 4, Bathrooms: 3},
			{ID: "p3", Type: "villa", Price: 300000, Location: "CityC", Bedrooms: 3, Bathrooms: 2},
		},
		Interactions: []models.Interaction{
			{UserID: "u1", PropertyID: "p1", Rating: 5, InteractionType: "view"},
			{UserID: "u1", PropertyID: "p1", Rating: 1, InteractionType: "view"},
			{UserID: "u1", PropertyID: "p2", Rating: 5, InteractionType: "view"},
		},
	}
	engine := newTestEngine(t, ds)
	svc := NewContentBasedService(engine)

	recs, err := svc.Recommend("u1", 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 1 || recs[0].PropertyID != "p3" {
		t.Fatalf("got %v, want exactly p3", recs)
	}

	// Recompute the expected score by hand: profile = (0.6*v1 + 1.0*v2) / 1.6.
	features := engine.snapshot().features
	v1, _ := features.Vector("p1")
	v2, _ := features.Vector("p2")
	profile := make([]float64, features.Dim())
	for j := range profile {
		profile[j] = (0.6*v1[j] + 1.0*v2[j]) / 1.6
	}
	v3, _ := features.Vector("p3")
	sims, err := CosineSimilarities(profile, [][]float64{v3})
	if err != nil {
		t.Fatalf("CosineSimilarities: %v", err)
	}
	if math.Abs(recs[0].Score-sims[0]) > 1e-9 {
		t.Errorf("score = %.6f, want %.6f (mean-rating weighted profile)", recs[0].Score, sims[0])
	}
}
