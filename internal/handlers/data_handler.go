package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/services"
)

type DataHandler struct {
	engine *services.Engine
	source dataset.Source
}

func NewDataHandler(engine *services.Engine, source dataset.Source) *DataHandler {
	return &DataHandler{engine: engine, source: source}
}

// ReloadData re-reads the source tables and rebuilds both matrices.
// Build failures leave the running engine on its previous data.
func (h *DataHandler) ReloadData(c *gin.Context) {
	ds, err := h.source.Load()
	if err != nil {
		log.Printf("[ReloadData] Load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reload data",
		})
		return
	}
	if err := h.engine.Reload(ds); err != nil {
		var dataErr *services.DataError
		if errors.As(err, &dataErr) {
			log.Printf("[ReloadData] Rejected dataset: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to reload data",
			})
			return
		}
		log.Printf("[ReloadData] Rebuild failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Data reloaded successfully",
	})
}

// GenerateData replaces the source tables with a fresh synthetic
// dataset and reloads the engine from it.
func (h *DataHandler) GenerateData(c *gin.Context) {
	ds := dataset.Generate(
		dataset.DefaultNumUsers,
		dataset.DefaultNumProperties,
		dataset.DefaultNumInteractions,
		time.Now().UnixNano(),
	)

	if err := h.source.Save(ds); err != nil {
		log.Printf("[GenerateData] Save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to persist generated data",
		})
		return
	}
	if err := h.engine.Reload(ds); err != nil {
		log.Printf("[GenerateData] Rebuild failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Synthetic data generated",
		"data": gin.H{
			"users":        len(ds.Users),
			"properties":   len(ds.Properties),
			"interactions": len(ds.Interactions),
		},
	})
}
