package models

// RecommendationScore is one ranked entry returned by any of the
// recommenders. Property details are attached by the handler layer so
// API clients do not need a second lookup.
type RecommendationScore struct {
	PropertyID string    `json:"property_id"`
	Score      float64   `json:"score"`
	ScoreType  string    `json:"score_type"` // "collaborative", "content", "hybrid", "similar", "trending"
	Property   *Property `json:"property,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

// PriceRange summarizes the prices of properties a user interacted with.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Avg int `json:"avg"`
}

// UserPreferences is the interaction-history summary served by the
// preferences endpoint.
type UserPreferences struct {
	FavoriteTypes      map[string]int `json:"favorite_types"`
	FavoriteLocations  map[string]int `json:"favorite_locations"`
	PriceRange         PriceRange     `json:"avg_price_range"`
	BedroomPreference  int            `json:"bedroom_preference"`
	BathroomPreference int            `json:"bathroom_preference"`
	AvgRating          float64        `json:"avg_rating"`
	InteractionCount   int            `json:"interaction_count"`
}
