package handlers

import (
	"errors"
	"net/http"

	"havjob/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondError maps service-layer sentinel errors onto HTTP statuses.
// Unknown errors surface as an opaque 500; their detail stays in the logs.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalid), errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
