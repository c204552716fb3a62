package services

import (
	"sort"

	"github.com/rayenbac/pfe-project/internal/models"
)

type ContentBasedService interface {
	Recommend(userID string, n int) ([]models.RecommendationScore, error)
}

type contentBasedService struct {
	engine *Engine
}

func NewContentBasedService(engine *Engine) ContentBasedService {
	return &contentBasedService{engine: engine}
}

// Recommend scores unseen properties against a profile vector built
// from the properties the user already interacted with. A user with no
// interactions gets an empty result.
func (s *contentBasedService) Recommend(userID string, n int) ([]models.RecommendationScore, error) {
	snap := s.engine.snapshot()
	features := snap.features

	interactions := snap.data.InteractionsByUser(userID)
	if len(interactions) == 0 {
		return []models.RecommendationScore{}, nil
	}

	// Mean rating per interacted property; a property rated several
	// times contributes once, at its mean.
	ratingSums := make(map[string]float64)
	ratingCounts := make(map[string]int)
	for _, it := range interactions {
		ratingSums[it.PropertyID] += float64(it.Rating)
		ratingCounts[it.PropertyID]++
	}

	// Profile = weighted average of interacted feature vectors, weight
	// = mean rating / 5. Zero total weight degenerates to the zero
	// vector, which is still computable (every similarity becomes 0).
	profile := make([]float64, features.Dim())
	var totalWeight float64
	interacted := make(map[string]bool, len(ratingSums))
	for propertyID, sum := range ratingSums {
		interacted[propertyID] = true
		vec, ok := features.Vector(propertyID)
		if !ok {
			continue
		}
		weight := sum / float64(ratingCounts[propertyID]) / 5.0
		for j, v := range vec {
			profile[j] += weight * v
		}
		totalWeight += weight
	}
	if totalWeight > 0 {
		for j := range profile {
			profile[j] /= totalWeight
		}
	}

	sims, err := CosineSimilarities(profile, features.Rows())
	if err != nil {
		return nil, err
	}

	scores := make([]models.RecommendationScore, 0)
	for i, propertyID := range features.PropertyIDs {
		if interacted[propertyID] {
			continue
		}
		scores = append(scores, models.RecommendationScore{
			PropertyID: propertyID,
			Score:      sims[i],
			ScoreType:  "content",
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
