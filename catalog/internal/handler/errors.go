package handler

import (
	"net/http"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// validationError renders as {"message", "errors": {field: [msgs]}} with status 400.
// An *echo.HTTPError internal is unwrapped, otherwise echo would render it instead.
func validationError(fields map[string][]string, internal error) *echo.HTTPError {
	if he, ok := internal.(*echo.HTTPError); ok {
		internal = he.Internal
	}
	return &echo.HTTPError{
		Code: http.StatusBadRequest,
		Message: errs.ValidationErrorResponse{
			Message: errs.ErrValidation.Error(),
			Errors:  fields,
		},
		Internal: internal,
	}
}

// httpError maps service errors onto HTTP statuses.
func (h *Handler) httpError(err error) error {
	var (
		httpErr *echo.HTTPError
		verr    *errs.ValidationError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &verr):
		return validationError(map[string][]string{verr.Field: {verr.Message}}, err)
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrProtected):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrPermissionDenied):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if fields, ok := validate.FieldErrors(err); ok {
		return validationError(fields, err)
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	return c.Validate(req)
}
