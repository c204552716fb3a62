package services

import (
	"sort"

	"github.com/rayenbac/pfe-project/internal/models"
)

// TrendingWeights blends interaction volume, rating count and average
// rating into one popularity score. Two formulas existed historically;
// this view/count/rating blend is the canonical one and is used by
// every call site, including the unknown-user fallback.
type TrendingWeights struct {
	ViewWeight   float64
	CountWeight  float64
	RatingWeight float64
}

// DefaultTrendingWeights is the canonical 0.4/0.3/0.3 blend.
var DefaultTrendingWeights = TrendingWeights{
	ViewWeight:   0.4,
	CountWeight:  0.3,
	RatingWeight: 0.3,
}

type RankingService interface {
	SimilarProperties(propertyID string, n int) ([]models.RecommendationScore, error)
	TrendingProperties(n int) []models.RecommendationScore
}

type rankingService struct {
	engine  *Engine
	weights TrendingWeights
}

func NewRankingService(engine *Engine, weights TrendingWeights) RankingService {
	return &rankingService{engine: engine, weights: weights}
}

// SimilarProperties ranks every other property by feature-vector
// cosine similarity to the query property. An unknown id yields an
// empty result.
func (s *rankingService) SimilarProperties(propertyID string, n int) ([]models.RecommendationScore, error) {
	features := s.engine.snapshot().features

	query, ok := features.Vector(propertyID)
	if !ok {
		return []models.RecommendationScore{}, nil
	}

	sims, err := CosineSimilarities(query, features.Rows())
	if err != nil {
		return nil, err
	}

	scores := make([]models.RecommendationScore, 0, len(sims)-1)
	for i, id := range features.PropertyIDs {
		if id == propertyID {
			continue
		}
		scores = append(scores, models.RecommendationScore{
			PropertyID: id,
			Score:      sims[i],
			ScoreType:  "similar",
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores, nil
}

// TrendingProperties ranks properties by popularity, independent of
// any user. With no interactions to aggregate it falls back to the
// first n properties in table order rather than erroring.
func (s *rankingService) TrendingProperties(n int) []models.RecommendationScore {
	snap := s.engine.snapshot()

	type stats struct {
		views       int
		ratingCount int
		ratingSum   float64
	}
	perProperty := make(map[string]*stats)
	var order []string

	for _, it := range snap.data.Interactions {
		st, ok := perProperty[it.PropertyID]
		if !ok {
			st = &stats{}
			perProperty[it.PropertyID] = st
			order = append(order, it.PropertyID)
		}
		if it.InteractionType == models.InteractionView {
			st.views++
		}
		st.ratingCount++
		st.ratingSum += float64(it.Rating)
	}

	if len(order) == 0 {
		return s.tableOrderFallback(snap, n)
	}

	scores := make([]models.RecommendationScore, 0, len(order))
	for _, propertyID := range order {
		st := perProperty[propertyID]
		avgRating := st.ratingSum / float64(st.ratingCount)
		scores = append(scores, models.RecommendationScore{
			PropertyID: propertyID,
			Score: s.weights.ViewWeight*float64(st.views) +
				s.weights.CountWeight*float64(st.ratingCount) +
				s.weights.RatingWeight*avgRating,
			ScoreType: "trending",
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

func (s *rankingService) tableOrderFallback(snap snapshot, n int) []models.RecommendationScore {
	scores := make([]models.RecommendationScore, 0, n)
	for _, p := range snap.data.Properties {
		if len(scores) == n {
			break
		}
		scores = append(scores, models.RecommendationScore{
			PropertyID: p.ID,
			Score:      1.0,
			ScoreType:  "trending",
			Reason:     "fallback",
		})
	}
	return scores
}
