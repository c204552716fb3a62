package services

import (
	"math"
	"testing"

	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/models"
)

func TestUserPreferencesSummary(t *testing.T) {
	ds := &dataset.Dataset{
		Properties: []models.Property{
			{ID: "p1", Type: "apartment", Price: 100000, Location: "CityA", Bedrooms: 2, Bathrooms: 1},
			{ID: "p2", Type: "apartment", Price: 200000, Location: "CityA", Bedrooms: 2, Bathrooms: 2},
			{ID: "p3", Type: "house", Price: 600000, Location: "CityB", Bedrooms: 4, Bathrooms: 3},
		},
		Interactions: []models.Interaction{
			{UserID: "u1", PropertyID: "p1", Rating: 5, InteractionType: "view"},
			{UserID: "u1", PropertyID: "p1", Rating: 4, InteractionType: "favorite"},
			{UserID: "u1", PropertyID: "p2", Rating: 4, InteractionType: "view"},
			{UserID: "u1", PropertyID: "p3", Rating: 2, InteractionType: "view"},
			{UserID: "u2", PropertyID: "p3", Rating: 5, InteractionType: "view"},
		},
	}
	svc := NewPreferenceService(newTestEngine(t, ds))

	prefs := svc.UserPreferences("u1")
	if prefs == nil {
		t.Fatal("UserPreferences returned nil for user with history")
	}

	if prefs.InteractionCount != 4 {
		t.Errorf("InteractionCount = %d, want 4", prefs.InteractionCount)
	}
	if got := prefs.FavoriteTypes["apartment"]; got != 2 {
		t.Errorf("FavoriteTypes[apartment] = %d, want 2", got)
	}
	if got := prefs.FavoriteLocations["CityA"]; got != 2 {
		t.Errorf("FavoriteLocations[CityA] = %d, want 2", got)
	}
	if prefs.PriceRange.Min != 100000 || prefs.PriceRange.Max != 600000 || prefs.PriceRange.Avg != 300000 {
		t.Errorf("PriceRange = %+v, want min 100000 max 600000 avg 300000", prefs.PriceRange)
	}
	if prefs.BedroomPreference != 2 {
		t.Errorf("BedroomPreference = %d, want 2", prefs.BedroomPreference)
	}
	if math.Abs(prefs.AvgRating-3.75) > 1e-9 {
		t.Errorf("AvgRating = %.4f, want 3.75", prefs.AvgRating)
	}
}

func TestUserPreferencesNoHistory(t *testing.T) {
	svc := NewPreferenceService(newTestEngine(t, twoPropertyDataset()))
	if prefs := svc.UserPreferences("ghost"); prefs != nil {
		t.Errorf("got %+v for user without history, want nil", prefs)
	}
}
