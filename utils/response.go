package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondWithError aborts the request with a {"detail": message} body.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": message})
}

// RespondWithBindError reports a request body that failed to decode (400)
// or failed field validation (422).
func RespondWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		RespondWithError(c, http.StatusUnprocessableEntity, "Invalid input: "+err.Error())
		return
	}
	RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
}
