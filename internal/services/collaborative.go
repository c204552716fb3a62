package services

import (
	"sort"

	"github.com/rayenbac/pfe-project/internal/models"
)

type CollaborativeService interface {
	Recommend(userID string, n int) ([]models.RecommendationScore, error)
}

type collaborativeService struct {
	engine *Engine
}

func NewCollaborativeService(engine *Engine) CollaborativeService {
	return &collaborativeService{engine: engine}
}

// Recommend predicts ratings for properties the user has not rated,
// from similarity-weighted neighbor ratings. An unknown user is a
// normal outcome and returns an empty result, not an error.
func (s *collaborativeService) Recommend(userID string, n int) ([]models.RecommendationScore, error) {
	snap := s.engine.snapshot()
	ratings := snap.ratings

	userIdx, ok := ratings.UserIndex(userID)
	if !ok {
		return []models.RecommendationScore{}, nil
	}

	filled := ratings.FilledRows()
	sims, err := CosineSimilarities(filled[userIdx], filled)
	if err != nil {
		return nil, err
	}

	userRow := ratings.Row(userIdx)
	scores := make([]models.RecommendationScore, 0)

	for p, propertyID := range ratings.PropertyIDs {
		if userRow[p].Observed {
			continue
		}

		// Weighted average over neighbors with positive similarity
		// and an observed rating on this property. Self-similarity is
		// excluded. No contributor means the property is omitted, not
		// scored zero.
		var weightedSum, simSum float64
		for u := range ratings.UserIDs {
			if u == userIdx || sims[u] <= 0 {
				continue
			}
			cell := ratings.Row(u)[p]
			if !cell.Observed {
				continue
			}
			weightedSum += sims[u] * cell.Value
			simSum += sims[u]
		}
		if simSum > 0 {
			scores = append(scores, models.RecommendationScore{
				PropertyID: propertyID,
				Score:      weightedSum / simSum,
				ScoreType:  "collaborative",
			})
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores, nil
}
