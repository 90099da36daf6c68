package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-manager/internal/service"
)

// Map converts service-layer failures to their HTTP status. Anything outside
// the domain taxonomy is an infrastructure fault and maps to 500 with the
// fallback message.
func Map(err error, fallback string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrTransactionNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEditWindowExpired):
		return huma.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInsufficientBalance):
		return huma.NewError(http.StatusBadRequest, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
