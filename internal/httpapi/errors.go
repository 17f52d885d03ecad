package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentacore/car-rental-platform/internal/rental"
)

// writeError переводит таксономию ядра в HTTP-статусы.
func writeError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, rental.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, rental.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, rental.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, rental.ErrConstraint),
		errors.Is(err, rental.ErrCarUnavailable),
		errors.Is(err, rental.ErrAmountMismatch):
		code = http.StatusConflict
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
