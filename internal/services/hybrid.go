package services

import (
	"sort"

	"github.com/rayenbac/pfe-project/internal/models"
)

type HybridService interface {
	Recommend(userID string, n int) ([]models.RecommendationScore, error)
}

type hybridService struct {
	collaborative CollaborativeService
	content       ContentBasedService

	collabWeight  float64
	contentWeight float64
}

func NewHybridService(collaborative CollaborativeService, content ContentBasedService, collabWeight, contentWeight float64) HybridService {
	return &hybridService{
		collaborative: collaborative,
		content:       content,
		collabWeight:  collabWeight,
		contentWeight: contentWeight,
	}
}

// Recommend blends both filters. Each side contributes its top 2n
// candidates (the wider net avoids starvation when one side returns
// few results); each side's scores are normalized by its own maximum
// before the weighted sum.
func (s *hybridService) Recommend(userID string, n int) ([]models.RecommendationScore, error) {
	collabRecs, err := s.collaborative.Recommend(userID, n*2)
	if err != nil {
		return nil, err
	}
	contentRecs, err := s.content.Recommend(userID, n*2)
	if err != nil {
		return nil, err
	}

	if len(collabRecs) == 0 && len(contentRecs) == 0 {
		return []models.RecommendationScore{}, nil
	}

	// Each side arrives sorted descending, so its max is the first
	// score. A side with no results (or a non-positive max) keeps
	// max = 1 so the other side passes through unscaled.
	collabScores := make(map[string]float64, len(collabRecs))
	for _, rec := range collabRecs {
		collabScores[rec.PropertyID] = rec.Score
	}
	contentScores := make(map[string]float64, len(contentRecs))
	for _, rec := range contentRecs {
		contentScores[rec.PropertyID] = rec.Score
	}
	maxCollab, maxContent := 1.0, 1.0
	if len(collabRecs) > 0 && collabRecs[0].Score > 0 {
		maxCollab = collabRecs[0].Score
	}
	if len(contentRecs) > 0 && contentRecs[0].Score > 0 {
		maxContent = contentRecs[0].Score
	}

	// Union of candidates, collaborative side first, stable order.
	seen := make(map[string]bool)
	var union []string
	for _, rec := range collabRecs {
		if !seen[rec.PropertyID] {
			seen[rec.PropertyID] = true
			union = append(union, rec.PropertyID)
		}
	}
	for _, rec := range contentRecs {
		if !seen[rec.PropertyID] {
			seen[rec.PropertyID] = true
			union = append(union, rec.PropertyID)
		}
	}

	scores := make([]models.RecommendationScore, 0, len(union))
	for _, propertyID := range union {
		collabScore := collabScores[propertyID] / maxCollab
		contentScore := contentScores[propertyID] / maxContent
		scores = append(scores, models.RecommendationScore{
			PropertyID: propertyID,
			Score:      s.collabWeight*collabScore + s.contentWeight*contentScore,
			ScoreType:  "hybrid",
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
