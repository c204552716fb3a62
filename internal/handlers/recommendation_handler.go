package handlers

import (
	"crypto/md5"
	"log"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rayenbac/pfe-project/internal/models"
	"github.com/rayenbac/pfe-project/internal/services"
)

type RecommendationHandler struct {
	engine        *services.Engine
	collaborative services.CollaborativeService
	content       services.ContentBasedService
	hybrid        services.HybridService
	ranking       services.RankingService
	preferences   services.PreferenceService
}

func NewRecommendationHandler(
	engine *services.Engine,
	collaborative services.CollaborativeService,
	content services.ContentBasedService,
	hybrid services.HybridService,
	ranking services.RankingService,
	preferences services.PreferenceService,
) *RecommendationHandler {
	return &RecommendationHandler{
		engine:        engine,
		collaborative: collaborative,
		content:       content,
		hybrid:        hybrid,
		ranking:       ranking,
		preferences:   preferences,
	}
}

// externalIDLength is the length of upstream document ids (Mongo
// ObjectId hex). Ids of this shape that the engine does not know get a
// deterministic hash mapping onto a known user.
const externalIDLength = 24

// GetRecommendations serves collaborative, content or hybrid
// recommendations for one user. Unknown users fall back to trending
// properties rather than an error.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "user_id is required",
		})
		return
	}
	recType := c.DefaultQuery("type", "hybrid")
	n := parseLimit(c.DefaultQuery("n", "5"))

	resolvedID := userID
	if !h.engine.HasUser(userID) {
		mapped, ok := h.mapExternalUserID(userID)
		if ok {
			log.Printf("[Recommendations] Mapped external user %s to %s", userID, mapped)
			resolvedID = mapped
		}
		if !ok || !h.engine.HasUser(resolvedID) {
			log.Printf("[Recommendations] User %s unknown, falling back to trending", userID)
			h.respondTrendingFallback(c, userID, n)
			return
		}
	}

	var recs []models.RecommendationScore
	var err error
	switch recType {
	case "collaborative":
		recs, err = h.collaborative.Recommend(resolvedID, n)
	case "content":
		recs, err = h.content.Recommend(resolvedID, n)
	case "hybrid":
		recs, err = h.hybrid.Recommend(resolvedID, n)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recommendation type. Use: collaborative, content, or hybrid",
		})
		return
	}
	if err != nil {
		log.Printf("[Recommendations] ERROR for user %s: %v", resolvedID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"user_id":         userID,
		"type":            recType,
		"recommendations": h.attachDetails(recs),
		"total_count":     len(recs),
	})
}

// GetSimilarProperties ranks properties by content similarity to one
// query property.
func (h *RecommendationHandler) GetSimilarProperties(c *gin.Context) {
	propertyID := c.Query("property_id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "property_id is required",
		})
		return
	}
	n := parseLimit(c.DefaultQuery("n", "5"))

	recs, err := h.ranking.SimilarProperties(propertyID, n)
	if err != nil {
		log.Printf("[SimilarProperties] ERROR for property %s: %v", propertyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             "success",
		"property_id":        propertyID,
		"similar_properties": h.attachDetails(recs),
		"total_count":        len(recs),
	})
}

// GetTrendingProperties ranks properties by popularity across all
// users.
func (h *RecommendationHandler) GetTrendingProperties(c *gin.Context) {
	n := parseLimit(c.DefaultQuery("n", "10"))

	recs := h.ranking.TrendingProperties(n)
	c.JSON(http.StatusOK, gin.H{
		"status":              "success",
		"trending_properties": h.attachDetails(recs),
		"total_count":         len(recs),
	})
}

// GetUserPreferences summarizes one user's interaction history.
func (h *RecommendationHandler) GetUserPreferences(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "user_id is required",
		})
		return
	}

	prefs := h.preferences.UserPreferences(userID)
	if prefs == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":      "success",
			"user_id":     userID,
			"preferences": gin.H{},
			"message":     "No interaction history found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"user_id":     userID,
		"preferences": prefs,
	})
}

func (h *RecommendationHandler) respondTrendingFallback(c *gin.Context, userID string, n int) {
	recs := h.ranking.TrendingProperties(n)
	for i := range recs {
		recs[i].Reason = "trending"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"user_id":         userID,
		"type":            "trending_fallback",
		"recommendations": h.attachDetails(recs),
		"total_count":     len(recs),
	})
}

// mapExternalUserID hashes a foreign id onto one of the known
// rating-matrix users, so upstream callers with real account ids get
// stable recommendations from the synthetic set.
func (h *RecommendationHandler) mapExternalUserID(externalID string) (string, bool) {
	if len(externalID) != externalIDLength {
		return "", false
	}
	known := h.engine.KnownUserIDs()
	if len(known) == 0 {
		return "", false
	}
	sum := md5.Sum([]byte(externalID))
	idx := new(big.Int).Mod(
		new(big.Int).SetBytes(sum[:]),
		big.NewInt(int64(len(known))),
	).Int64()
	return known[idx], true
}

func (h *RecommendationHandler) attachDetails(recs []models.RecommendationScore) []models.RecommendationScore {
	for i := range recs {
		recs[i].Property = h.engine.PropertyByID(recs[i].PropertyID)
	}
	return recs
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 5
	}
	return n
}
