package controllers

import (
	"net/http"

	"inventory-backend/models"
	"inventory-backend/services"
	"inventory-backend/utils"

	"github.com/gin-gonic/gin"
)

type StatusController struct {
	Status *services.StatusService
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Inventory Management System API"})
}

func (sc *StatusController) CreateStatusCheck(c *gin.Context) {
	var input models.StatusCheckCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithBindError(c, err)
		return
	}

	check, err := sc.Status.Create(c.Request.Context(), input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to record status check")
		return
	}
	c.JSON(http.StatusOK, check)
}

func (sc *StatusController) GetStatusChecks(c *gin.Context) {
	checks, err := sc.Status.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve status checks")
		return
	}
	c.JSON(http.StatusOK, checks)
}
