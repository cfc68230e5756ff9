package controllers

import (
	"net/http"

	"inventory-backend/services"

	"github.com/gin-gonic/gin"
)

type SeedController struct {
	Seed *services.SeedService
}

// SeedDatabase replaces all business records with the sample data set
func (sc *SeedController) SeedDatabase(c *gin.Context) {
	counts, err := sc.Seed.Seed(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to seed database")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Database seeded successfully",
		"data":    counts,
	})
}
