package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/skylar-games/case-opener/internal/domain/error"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/dto"
)

// httpStatus maps a domain error to the HTTP status code of its family
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrSpinInProgress):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsStorageQuotaError(err):
		return http.StatusInsufficientStorage
	case errors.Is(err, domainerr.ErrStorage):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error as a JSON error response
func writeError(c *gin.Context, err error) {
	c.JSON(httpStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
