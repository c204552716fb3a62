package services

import (
	"math"
	"testing"

	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/models"
)

func rankingFixture() *dataset.Dataset {
	return &dataset.Dataset{
		Properties: []models.Property{
			{ID: "p1", Type: "apartment", Price: 100000, Location: "CityA", Bedrooms: 2, Bathrooms: 1},
			{ID: "p2", Type: "apartment", Price: 110000, Location: "CityA", Bedrooms: 2, Bathrooms: 1},
			{ID: "p3", Type: "villa", Price: 900000, Location: "CityC", Bedrooms: 5, Bathrooms: 3},
		},
		Interactions: []models.Interaction{
			{UserID: "u1", PropertyID: "p1", Rating: 5, InteractionType: models.InteractionView},
			{UserID: "u2", PropertyID: "p1", Rating: 4, InteractionType: models.InteractionView},
			{UserID: "u3", PropertyID: "p1", Rating: 5, InteractionType: models.InteractionFavorite},
			{UserID: "u1", PropertyID: "p2", Rating: 3, InteractionType: models.InteractionView},
		},
	}
}

func TestSimilarPropertiesRanking(t *testing.T) {
	svc := NewRankingService(newTestEngine(t, rankingFixture()), DefaultTrendingWeights)

	recs, err := svc.SimilarProperties("p1", 5)
	if err != nil {
		t.Fatalf("SimilarProperties: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d results, want 2", len(recs))
	}
	for _, rec := range recs {
		if rec.PropertyID == "p1" {
			t.Error("query property included in its own similar list")
		}
	}
	// p2 is nearly identical to p1; p3 is a different type, location
	// and size.
	if recs[0].PropertyID != "p2" {
		t.Errorf("most similar = %s, want p2", recs[0].PropertyID)
	}
	assertSortedDescending(t, recs)
}

func TestSimilarPropertiesUnknownID(t *testing.T) {
	svc := NewRankingService(newTestEngine(t, rankingFixture()), DefaultTrendingWeights)

	recs, err := svc.SimilarProperties("nope", 5)
	if err != nil {
		t.Fatalf("SimilarProperties: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d results for unknown property, want 0", len(recs))
	}
}

func TestTrendingScoreFormula(t *testing.T) {
	svc := NewRankingService(newTestEngine(t, rankingFixture()), DefaultTrendingWeights)

	recs := svc.TrendingProperties(5)
	if len(recs) != 2 {
		t.Fatalf("got %d results, want 2 (only interacted properties trend)", len(recs))
	}

	// p1: 2 views, 3 ratings averaging 14/3; p2: 1 view, 1 rating of 3.
	wantP1 := 0.4*2 + 0.3*3 + 0.3*(14.0/3.0)
	wantP2 := 0.4*1 + 0.3*1 + 0.3*3
	if recs[0].PropertyID != "p1" || math.Abs(recs[0].Score-wantP1) > 1e-9 {
		t.Errorf("top = (%s, %.4f), want (p1, %.4f)", recs[0].PropertyID, recs[0].Score, wantP1)
	}
	if recs[1].PropertyID != "p2" || math.Abs(recs[1].Score-wantP2) > 1e-9 {
		t.Errorf("second = (%s, %.4f), want (p2, %.4f)", recs[1].PropertyID, recs[1].Score, wantP2)
	}
}

func TestTrendingFallbackWithoutInteractions(t *testing.T) {
	ds := rankingFixture()
	ds.Interactions = nil
	svc := NewRankingService(newTestEngine(t, ds), DefaultTrendingWeights)

	recs := svc.TrendingProperties(2)
	if len(recs) != 2 {
		t.Fatalf("got %d results, want 2", len(recs))
	}
	// Table order, constant score, flagged as fallback.
	if recs[0].PropertyID != "p1" || recs[1].PropertyID != "p2" {
		t.Errorf("fallback order = [%s %s], want [p1 p2]", recs[0].PropertyID, recs[1].PropertyID)
	}
	for _, rec := range recs {
		if rec.Score != 1.0 || rec.Reason != "fallback" {
			t.Errorf("fallback entry = %+v, want score 1.0 and reason fallback", rec)
		}
	}
}

func TestTrendingBounded(t *testing.T) {
	svc := NewRankingService(newTestEngine(t, rankingFixture()), DefaultTrendingWeights)

	recs := svc.TrendingProperties(1)
	if len(recs) != 1 {
		t.Errorf("got %d results, want 1", len(recs))
	}
}
