package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rayenbac/pfe-project/internal/services"
)

type PropertyHandler struct {
	engine *services.Engine
}

func NewPropertyHandler(engine *services.Engine) *PropertyHandler {
	return &PropertyHandler{engine: engine}
}

// GetAllProperties lists the property table the engine was built from.
func (h *PropertyHandler) GetAllProperties(c *gin.Context) {
	properties := h.engine.Properties()
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Properties fetched successfully",
		"data": gin.H{
			"properties": properties,
			"metadata": gin.H{
				"total": len(properties),
			},
		},
	})
}

// GetPropertyByID returns one property from the current dataset.
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	property := h.engine.PropertyByID(c.Param("id"))
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Property not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   property,
	})
}
