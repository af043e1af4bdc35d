package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ruidozo/fam-backoffice/apperr"
)

// abortWithError maps domain errors to HTTP statuses. Anything outside the
// taxonomy is a 500; the detail still reaches the client so the UI can show
// a message.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseDate accepts the wire format for date-only fields.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
