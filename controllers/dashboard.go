package controllers

import (
	"net/http"

	"inventory-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	overview, err := dc.Dashboard.Overview(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, overview)
}
