package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/procureguard/trimatch/pkg/services"
)

// errInvalidParam builds the rejection error for a bad query parameter.
func errInvalidParam(param, detail string) error {
	return fmt.Errorf("invalid %s: %s", param, detail)
}

// respondServiceError maps service-layer errors to HTTP error responses
// and writes them to the client.
func respondServiceError(c *gin.Context, err error) {
	status, message := serviceErrorStatus(err)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func serviceErrorStatus(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrNotCancellable) {
		return http.StatusConflict, "session is not in a cancellable state"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}
