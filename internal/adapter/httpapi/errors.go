package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/logging"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err to a status code and writes it
func respondError(c *gin.Context, err error) {
	logger := logging.FromContext(c.Request.Context(), nil)

	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case errors.As(err, &storageErr):
		logger.Error("Storage failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to persist changes"})
	default:
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
