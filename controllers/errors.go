package controllers

import (
	"errors"
	"net/http"

	"inventory-backend/services"
	"inventory-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondWithServiceError maps a service failure onto a response. Errors
// other than not-found are attached to the context for the request logger.
func respondWithServiceError(c *gin.Context, err error, message string) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		utils.RespondWithError(c, http.StatusNotFound, notFound.Error())
		return
	}
	_ = c.Error(err)
	utils.RespondWithError(c, http.StatusInternalServerError, message)
}
