package handler

import (
	"net/http"

	"github.com/Astemirdum/local-library/catalog/internal/errs"
	"github.com/Astemirdum/local-library/catalog/internal/model"
	"github.com/Astemirdum/local-library/pkg/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const borrowedURL = "/borrowed/"

// MyBooks lists the caller's loans.
func (h *Handler) MyBooks(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return h.httpError(err)
	}
	ctx := c.Request().Context()
	loans, err := h.loanSvc.ListLoanedByUser(ctx, auth.FromContext(ctx), page)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// Borrowed lists every loan, for staff.
func (h *Handler) Borrowed(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return h.httpError(err)
	}
	ctx := c.Request().Context()
	loans, err := h.loanSvc.ListLoaned(ctx, auth.FromContext(ctx), page)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) RenewalForm(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	form, err := h.loanSvc.RenewalForm(ctx, auth.FromContext(ctx), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, form)
}

// Renew takes renewal_date as a form field or JSON and redirects to the staff
// loan list on success.
func (h *Handler) Renew(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}
	var req model.RenewBookRequest
	if err := c.Bind(&req); err != nil {
		return validationError(map[string][]string{"renewal_date": {"Enter a valid date."}}, err)
	}
	ctx := c.Request().Context()
	if err := h.loanSvc.Renew(ctx, auth.FromContext(ctx), id, req.RenewalDate); err != nil {
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, borrowedURL)
}

func uuidParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return id, nil
}
