package services

import (
	"log"
	"sync"

	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/models"
)

// Engine owns the built matrices and the dataset they came from. The
// matrices are read-only between reloads; Reload swaps all three
// references together under the write lock, so a request sees either
// the old generation or the new one, never a mixture.
type Engine struct {
	mu       sync.RWMutex
	data     *dataset.Dataset
	ratings  *RatingMatrix
	features *FeatureMatrix
}

// snapshot is one consistent view of the engine's state. Request paths
// take a snapshot once and work off it for the rest of the request.
type snapshot struct {
	data     *dataset.Dataset
	ratings  *RatingMatrix
	features *FeatureMatrix
}

// NewEngine builds both matrices from the dataset. Either matrix
// failing to build aborts initialization; there is no partial engine.
func NewEngine(ds *dataset.Dataset) (*Engine, error) {
	ratings, features, err := buildMatrices(ds)
	if err != nil {
		return nil, err
	}
	log.Printf("[Engine] Built rating matrix %dx%d and feature matrix %dx%d",
		len(ratings.UserIDs), len(ratings.PropertyIDs),
		len(features.PropertyIDs), features.Dim())
	return &Engine{data: ds, ratings: ratings, features: features}, nil
}

// Reload rebuilds both matrices from a fresh dataset and swaps them in
// atomically. The build runs off-lock; a failed build leaves the
// current generation untouched.
func (e *Engine) Reload(ds *dataset.Dataset) error {
	ratings, features, err := buildMatrices(ds)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.data = ds
	e.ratings = ratings
	e.features = features
	e.mu.Unlock()

	log.Printf("[Engine] Reloaded: %d users, %d properties, %d interactions",
		len(ds.Users), len(ds.Properties), len(ds.Interactions))
	return nil
}

func buildMatrices(ds *dataset.Dataset) (*RatingMatrix, *FeatureMatrix, error) {
	ratings, err := BuildRatingMatrix(ds.Interactions)
	if err != nil {
		return nil, nil, err
	}
	features, err := BuildFeatureMatrix(ds.Properties)
	if err != nil {
		return nil, nil, err
	}
	return ratings, features, nil
}

func (e *Engine) snapshot() snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return snapshot{data: e.data, ratings: e.ratings, features: e.features}
}

// HasUser reports whether the user appears in the rating matrix.
func (e *Engine) HasUser(userID string) bool {
	s := e.snapshot()
	_, ok := s.ratings.UserIndex(userID)
	return ok
}

// KnownUserIDs returns the rating-matrix users in row order.
func (e *Engine) KnownUserIDs() []string {
	return e.snapshot().ratings.UserIDs
}

// Properties returns the current property table.
func (e *Engine) Properties() []models.Property {
	return e.snapshot().data.Properties
}

// PropertyByID looks a property up in the current dataset.
func (e *Engine) PropertyByID(id string) *models.Property {
	return e.snapshot().data.PropertyByID(id)
}
